package system

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderDeclarations(t *testing.T) {
	assembly := NewAssembly("Cache").
		ProvidesTypes(cacheKey).
		RequiresTypes(storeKey, apiKey).
		Build()

	assert.Equal(t, "Cache", assembly.Name())
	assert.Equal(t, []ServiceType{cacheKey}, assembly.Provides())
	assert.Equal(t, []ServiceType{storeKey, apiKey}, assembly.Requires())
}

func TestBuilderOmittedHooksAreNoOps(t *testing.T) {
	assembly := NewAssembly("Bare").Build()

	require.NoError(t, assembly.Init(&InitContext{}))
	require.NoError(t, assembly.Prepare(&InitContext{}))
	require.NoError(t, assembly.Start(&StartContext{}))
	require.NoError(t, assembly.Finalize())
	require.NoError(t, assembly.Shutdown())
	assert.Empty(t, assembly.Provides())
	assert.Empty(t, assembly.Requires())
}

func TestBuilderHooksAreInvoked(t *testing.T) {
	var calls []string
	assembly := NewAssembly("Tracked").
		OnInit(func(*InitContext) error {
			calls = append(calls, "init")
			return nil
		}).
		OnPrepare(func(*InitContext) error {
			calls = append(calls, "prepare")
			return nil
		}).
		OnStart(func(*StartContext) error {
			calls = append(calls, "start")
			return nil
		}).
		OnFinalize(func() error {
			calls = append(calls, "finalize")
			return nil
		}).
		OnShutdown(func() error {
			calls = append(calls, "shutdown")
			return nil
		}).
		Build()

	require.NoError(t, assembly.Init(&InitContext{}))
	require.NoError(t, assembly.Prepare(&InitContext{}))
	require.NoError(t, assembly.Start(&StartContext{}))
	require.NoError(t, assembly.Finalize())
	require.NoError(t, assembly.Shutdown())

	assert.Equal(t, []string{"init", "prepare", "start", "finalize", "shutdown"}, calls)
}

func TestBuilderHookErrorsPropagate(t *testing.T) {
	boom := errors.New("init failed")
	assembly := NewAssembly("Failing").
		OnInit(func(*InitContext) error { return boom }).
		Build()

	assert.ErrorIs(t, assembly.Init(&InitContext{}), boom)
}

func TestBuilderCopiesDeclarations(t *testing.T) {
	builder := NewAssembly("Copied").ProvidesTypes(storeKey)
	assembly := builder.Build()

	// Mutating the builder after Build must not affect the assembly.
	builder.ProvidesTypes(cacheKey)
	assert.Equal(t, []ServiceType{storeKey}, assembly.Provides())
}

func TestDefaultServiceAssemblyHooks(t *testing.T) {
	base := DefaultServiceAssembly{}

	require.NoError(t, base.Init(&InitContext{}))
	require.NoError(t, base.Prepare(&InitContext{}))
	require.NoError(t, base.Start(&StartContext{}))
	require.NoError(t, base.Finalize())
	require.NoError(t, base.Shutdown())
	assert.Nil(t, base.Provides())
	assert.Nil(t, base.Requires())
}
