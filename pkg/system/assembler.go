package system

import (
	"fmt"
	"strings"
	"sync"

	"github.com/Metaform/assemblr/pkg/dag"
)

// Assembler orchestrates registration, dependency-aware ordering and the
// full lifecycle of a set of service assemblies. It is the single owner of
// the service registry the assemblies publish into.
//
// Assemble drives init -> prepare -> start in dependency order and is
// fail-fast: the first error aborts the call with no rollback of hooks that
// already ran. Shutdown drives finalize -> shutdown in reverse order and is
// best-effort: every hook is attempted and all failures are aggregated.
type Assembler struct {
	mu         sync.RWMutex
	assemblies []ServiceAssembly
	registry   *ServiceRegistry
	monitor    LogMonitor
	mode       RuntimeMode
}

// NewAssembler creates an assembler with an empty registry. The monitor and
// mode are propagated into every lifecycle context.
func NewAssembler(monitor LogMonitor, mode RuntimeMode) *Assembler {
	return &Assembler{
		registry: NewServiceRegistry(),
		monitor:  monitor,
		mode:     mode,
	}
}

// Register adds a service assembly. Registration order is irrelevant;
// Assemble computes the execution order from the declared capabilities.
func (a *Assembler) Register(assembly ServiceAssembly) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.assemblies = append(a.assemblies, assembly)
}

// Registry returns the shared service registry. Useful for resolving
// services from outside the lifecycle, e.g. in the hosting application after
// Assemble has completed.
func (a *Assembler) Registry() *ServiceRegistry {
	return a.registry
}

// Mode returns the runtime mode the assembler was constructed with.
func (a *Assembler) Mode() RuntimeMode {
	return a.mode
}

// Assemblies returns a snapshot of the registered assemblies. After a
// successful Assemble the slice reflects the computed dependency order.
func (a *Assembler) Assemblies() []ServiceAssembly {
	a.mu.RLock()
	defer a.mu.RUnlock()
	snapshot := make([]ServiceAssembly, len(a.assemblies))
	copy(snapshot, a.assemblies)
	return snapshot
}

// Plan computes the dependency-first execution order without invoking any
// lifecycle hook. It surfaces the same MissingDependencyError and
// CyclicDependencyError an Assemble call would.
func (a *Assembler) Plan() ([]string, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.resolveOrder(a.assemblies)
}

// Assemble initializes, prepares and starts the registered assemblies in
// dependency order.
//
// The assembly-list lock is held in write mode for the entire call, so
// concurrent Register, Assemble and Shutdown calls serialize against it. On
// success the stored assembly list is replaced with the ordered list, making
// the call re-entrant (though not idempotent with respect to hook side
// effects). On failure the assembler remains usable for a later retry with
// the same registered set.
func (a *Assembler) Assemble() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	order, err := a.resolveOrder(a.assemblies)
	if err != nil {
		return err
	}

	ordered := make([]ServiceAssembly, 0, len(order))
	for _, name := range order {
		for _, assembly := range a.assemblies {
			if assembly.Name() == name {
				ordered = append(ordered, assembly)
				break
			}
		}
	}

	initContext := &InitContext{
		Registry:   NewRegistryWriteHandle(a.registry),
		LogMonitor: a.monitor,
		Mode:       a.mode,
	}
	for _, assembly := range ordered {
		if err := assembly.Init(initContext); err != nil {
			return err
		}
		a.monitor.Debug(fmt.Sprintf("Initialized: %s", assembly.Name()))
	}

	prepareContext := &InitContext{
		Registry:   NewRegistryWriteHandle(a.registry),
		LogMonitor: a.monitor,
		Mode:       a.mode,
	}
	for _, assembly := range ordered {
		if err := assembly.Prepare(prepareContext); err != nil {
			return err
		}
		a.monitor.Debug(fmt.Sprintf("Prepared: %s", assembly.Name()))
	}

	startContext := &StartContext{
		Registry:   a.registry,
		LogMonitor: a.monitor,
		Mode:       a.mode,
	}
	for _, assembly := range ordered {
		if err := assembly.Start(startContext); err != nil {
			return err
		}
		a.monitor.Debug(fmt.Sprintf("Started: %s", assembly.Name()))
	}

	a.assemblies = ordered
	return nil
}

// Shutdown finalizes and shuts down assemblies in reverse of the stored
// order, most-dependent first. Unlike Assemble it degrades gracefully:
// every finalize hook is attempted regardless of earlier failures, then every
// shutdown hook, and all captured errors are returned as one aggregated
// error. Calling Shutdown before Assemble ever succeeded is legal and
// iterates over whatever was registered.
func (a *Assembler) Shutdown() error {
	a.mu.RLock()
	defer a.mu.RUnlock()

	var errs []string

	for i := len(a.assemblies) - 1; i >= 0; i-- {
		assembly := a.assemblies[i]
		if err := assembly.Finalize(); err != nil {
			errs = append(errs, fmt.Sprintf("Finalize: '%s': %s", assembly.Name(), err))
			continue
		}
		a.monitor.Debug(fmt.Sprintf("Finalized: %s", assembly.Name()))
	}

	for i := len(a.assemblies) - 1; i >= 0; i-- {
		assembly := a.assemblies[i]
		if err := assembly.Shutdown(); err != nil {
			errs = append(errs, fmt.Sprintf("Shutdown: '%s': %s", assembly.Name(), err))
			continue
		}
		a.monitor.Debug(fmt.Sprintf("Shutdown: %s", assembly.Name()))
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors shutting down:\n%s", strings.Join(errs, "\n"))
	}
	return nil
}

// resolveOrder builds the dependency graph from the declared capability sets
// and returns the dependency-first execution order. Callers must hold the
// assembly-list lock.
func (a *Assembler) resolveOrder(assemblies []ServiceAssembly) ([]string, error) {
	graph := dag.New[string]()
	providers := make(map[ServiceType]string)

	for _, assembly := range assemblies {
		name := assembly.Name()
		graph.AddVertex(name, name)
		for _, provided := range assembly.Provides() {
			// Last registration providing a capability wins; earlier
			// providers are silently overridden.
			providers[provided] = name
		}
	}

	for _, assembly := range assemblies {
		name := assembly.Name()
		for _, required := range assembly.Requires() {
			provider, ok := providers[required]
			if !ok {
				message := fmt.Sprintf("required assembly not found for service: %s", required)
				a.monitor.Error(fmt.Sprintf("Failed to resolve dependency in %s: %s", name, message))
				return nil, &MissingDependencyError{Assembly: name, Message: message}
			}
			graph.AddEdge(name, provider)
		}
	}

	result := graph.TopologicalSort()
	if result.HasCycle {
		err := &CyclicDependencyError{Path: result.CyclePath}
		a.monitor.Error(err.Error())
		return nil, err
	}

	// The sort yields dependents first; reverse for dependencies first.
	order := make([]string, 0, len(result.SortedOrder))
	for i := len(result.SortedOrder) - 1; i >= 0; i-- {
		order = append(order, result.SortedOrder[i])
	}
	return order, nil
}
