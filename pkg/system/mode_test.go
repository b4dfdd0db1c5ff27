package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuntimeModeString(t *testing.T) {
	assert.Equal(t, "debug", ModeDebug.String())
	assert.Equal(t, "development", ModeDevelopment.String())
	assert.Equal(t, "production", ModeProduction.String())
	assert.Equal(t, "unknown", RuntimeMode(99).String())
}

func TestParseRuntimeMode(t *testing.T) {
	tests := []struct {
		input    string
		expected RuntimeMode
	}{
		{"debug", ModeDebug},
		{"DEBUG", ModeDebug},
		{"development", ModeDevelopment},
		{"dev", ModeDevelopment},
		{"production", ModeProduction},
		{"prod", ModeProduction},
		{"Production", ModeProduction},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			mode, err := ParseRuntimeMode(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, mode)
		})
	}
}

func TestParseRuntimeModeInvalid(t *testing.T) {
	_, err := ParseRuntimeMode("staging")
	require.Error(t, err)

	var modeErr *InvalidRuntimeModeError
	require.ErrorAs(t, err, &modeErr)
	assert.Equal(t, "staging", modeErr.Mode)
	assert.Equal(t, "invalid runtime mode: staging", err.Error())
}
