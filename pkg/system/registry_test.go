package system

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testServiceKey ServiceType = "test:Service"

func TestRegistryRegisterAndResolve(t *testing.T) {
	registry := NewServiceRegistry()
	registry.Register(testServiceKey, "instance")

	resolved := registry.Resolve(testServiceKey)
	assert.Equal(t, "instance", resolved)
	assert.True(t, registry.Contains(testServiceKey))
}

func TestRegistryResolvePanicsOnMissing(t *testing.T) {
	registry := NewServiceRegistry()

	assert.PanicsWithValue(t, "no service registered for type test:Service", func() {
		registry.Resolve(testServiceKey)
	})
}

func TestRegistryLastWriterWins(t *testing.T) {
	registry := NewServiceRegistry()
	registry.Register(testServiceKey, "first")
	registry.Register(testServiceKey, "second")

	assert.Equal(t, "second", registry.Resolve(testServiceKey))
}

func TestRegistryClear(t *testing.T) {
	registry := NewServiceRegistry()
	registry.Register(testServiceKey, "instance")
	registry.Clear()

	assert.False(t, registry.Contains(testServiceKey))
}

func TestRegistryTypeAssertedResolution(t *testing.T) {
	type store struct{ name string }

	registry := NewServiceRegistry()
	registry.Register(testServiceKey, &store{name: "items"})

	resolved, ok := registry.Resolve(testServiceKey).(*store)
	require.True(t, ok)
	assert.Equal(t, "items", resolved.name)
}

func TestWriteHandleSharesBackingStore(t *testing.T) {
	registry := NewServiceRegistry()
	handle := NewRegistryWriteHandle(registry)

	handle.Register(testServiceKey, "via-handle")

	// Visible through the registry and any other handle.
	assert.Equal(t, "via-handle", registry.Resolve(testServiceKey))
	other := NewRegistryWriteHandle(registry)
	assert.True(t, other.Contains(testServiceKey))
	assert.Equal(t, "via-handle", other.Resolve(testServiceKey))
}

func TestRegistryConcurrentAccess(t *testing.T) {
	registry := NewServiceRegistry()
	registry.Register(testServiceKey, 0)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			registry.Register(testServiceKey, n)
		}(i)
		go func() {
			defer wg.Done()
			_ = registry.Resolve(testServiceKey)
		}()
	}
	wg.Wait()

	assert.True(t, registry.Contains(testServiceKey))
}
