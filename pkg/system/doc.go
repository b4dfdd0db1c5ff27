// Package system is the assemblr orchestration core: it bootstraps a set of
// pluggable service assemblies into a running process in an order that
// respects their declared capability dependencies, and tears them down
// safely in reverse.
//
// # Core Concepts
//
// ServiceType: an opaque string token identifying a service capability. Keys
// are author-assigned constants and serve as both dependency-graph edges and
// registry lookup keys.
//
// ServiceAssembly: a named participant that provides and/or requires
// capabilities and implements lifecycle hooks. Assemblies register with an
// Assembler in any order.
//
// ServiceRegistry: a concurrently shared, capability-keyed store holding at
// most one instance per ServiceType. Mutable lifecycle phases receive a
// RegistryWriteHandle aliasing the same backing store.
//
// Assembler: builds a dependency graph from the declared provides/requires
// sets, computes a dependencies-first order, and drives the phases.
//
// # Lifecycle
//
// Assemble walks every assembly through three forward phases, each completed
// for all assemblies before the next begins:
//
//	init    (InitContext, registry writable)
//	prepare (InitContext, registry writable)
//	start   (StartContext, registry read-only)
//
// Assemble is fail-fast: the first error aborts the call, and hooks that
// already ran are not rolled back. Shutdown walks finalize then shutdown in
// exact reverse order and is best-effort: every hook is attempted and all
// failures are aggregated into a single error.
//
// # Failure modes
//
// A required capability with no registered provider fails with
// MissingDependencyError before any hook runs. A dependency cycle fails with
// CyclicDependencyError carrying the reconstructed cycle path. Resolving an
// absent capability from the registry panics: correct ordering is the
// assembly author's responsibility, enforced by declaring Requires.
package system
