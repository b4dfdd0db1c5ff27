package system

import (
	"fmt"
	"sync"
)

// ServiceRegistry is a concurrently shared store of service instances, at
// most one per ServiceType. Assemblies publish instances during init/prepare
// and consume them in later phases or at runtime.
//
// All operations take the internal lock (read for lookups, write for
// mutation), so a registry may be shared freely across goroutines.
type ServiceRegistry struct {
	mu       sync.RWMutex
	services map[ServiceType]any
}

// NewServiceRegistry creates an empty registry.
func NewServiceRegistry() *ServiceRegistry {
	return &ServiceRegistry{services: make(map[ServiceType]any)}
}

// Register stores an instance under the given key, replacing any prior entry.
// Last writer wins; there are no append semantics.
func (r *ServiceRegistry) Register(key ServiceType, service any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.services[key] = service
}

// Resolve returns the instance registered under key. Callers type-assert the
// result:
//
//	store := ctx.Registry.Resolve(ItemStoreKey).(ItemStore)
//
// Resolving an unregistered key is a programming error, not a recoverable
// condition: it panics. Assembly authors must declare the key in Requires so
// the provider is guaranteed to have initialized first.
func (r *ServiceRegistry) Resolve(key ServiceType) any {
	r.mu.RLock()
	defer r.mu.RUnlock()
	service, ok := r.services[key]
	if !ok {
		panic(fmt.Sprintf("no service registered for type %s", key))
	}
	return service
}

// Contains reports whether an instance is registered under key without
// panicking.
func (r *ServiceRegistry) Contains(key ServiceType) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.services[key]
	return ok
}

// Clear removes every registered instance.
func (r *ServiceRegistry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.services)
}

// RegistryWriteHandle is a write-capable view onto a registry. It shares the
// backing store with the registry it was created from: a write through the
// handle is visible through the registry and every other handle as soon as
// the lock is released. The type exists to mark which lifecycle phases may
// mutate the store; it never holds a private copy.
type RegistryWriteHandle struct {
	registry *ServiceRegistry
}

// NewRegistryWriteHandle wraps the given registry.
func NewRegistryWriteHandle(registry *ServiceRegistry) *RegistryWriteHandle {
	return &RegistryWriteHandle{registry: registry}
}

// Register stores an instance in the underlying registry. See
// ServiceRegistry.Register.
func (h *RegistryWriteHandle) Register(key ServiceType, service any) {
	h.registry.Register(key, service)
}

// Resolve returns the instance registered under key. See
// ServiceRegistry.Resolve.
func (h *RegistryWriteHandle) Resolve(key ServiceType) any {
	return h.registry.Resolve(key)
}

// Contains reports whether an instance is registered under key.
func (h *RegistryWriteHandle) Contains(key ServiceType) bool {
	return h.registry.Contains(key)
}
