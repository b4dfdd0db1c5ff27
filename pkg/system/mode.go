package system

import "strings"

// RuntimeMode selects how an assembled runtime behaves. It is resolved once
// when the Assembler is constructed and propagated read-only into every
// lifecycle context.
type RuntimeMode int

const (
	ModeDebug RuntimeMode = iota
	ModeDevelopment
	ModeProduction
)

// String renders the lowercase mode name.
func (m RuntimeMode) String() string {
	switch m {
	case ModeDebug:
		return "debug"
	case ModeDevelopment:
		return "development"
	case ModeProduction:
		return "production"
	default:
		return "unknown"
	}
}

// ParseRuntimeMode resolves a configuration string into a RuntimeMode.
// Matching is case-insensitive and accepts the short forms "dev" and "prod".
// Any other input yields an InvalidRuntimeModeError carrying the offending
// string.
func ParseRuntimeMode(mode string) (RuntimeMode, error) {
	switch strings.ToLower(mode) {
	case "debug":
		return ModeDebug, nil
	case "development", "dev":
		return ModeDevelopment, nil
	case "production", "prod":
		return ModeProduction, nil
	default:
		return ModeDebug, &InvalidRuntimeModeError{Mode: mode}
	}
}
