package system

// ServiceType identifies a service capability. Assemblies declare the
// capabilities they publish and consume as ServiceType values, and the
// registry stores one instance per ServiceType.
//
// Keys are author-assigned exported constants, typically namespaced:
//
//	const ItemStoreKey system.ServiceType = "store:ItemStore"
//
// Equality is plain string equality, so two independently declared keys with
// the same value identify the same capability.
type ServiceType string

// LogMonitor is the logging collaborator passed to lifecycle phases. The
// pkg/logging package provides an slog-backed implementation; NoopMonitor
// discards everything.
type LogMonitor interface {
	Debug(message string)
	Info(message string)
	Warn(message string)
	Error(message string)
}

// NoopMonitor is a LogMonitor that discards all messages. Useful in tests and
// when logging is disabled.
type NoopMonitor struct{}

func (NoopMonitor) Debug(string) {}
func (NoopMonitor) Info(string)  {}
func (NoopMonitor) Warn(string)  {}
func (NoopMonitor) Error(string) {}

// InitContext is passed to the init and prepare phases. It carries a
// write-capable registry handle so assemblies can publish the services they
// provide.
type InitContext struct {
	Registry   *RegistryWriteHandle
	LogMonitor LogMonitor
	Mode       RuntimeMode
}

// StartContext is passed to the start phase. The registry reference is
// read-only by convention: all registration must have happened during init or
// prepare.
type StartContext struct {
	Registry   *ServiceRegistry
	LogMonitor LogMonitor
	Mode       RuntimeMode
}

// ServiceAssembly is a subsystem that contributes services to a runtime.
//
// The Assembler walks registered assemblies through init -> prepare -> start
// in dependency order, and finalize -> shutdown in reverse order. Init is the
// only hook an assembly must implement meaningfully; embedding
// DefaultServiceAssembly supplies no-op implementations for the rest.
type ServiceAssembly interface {
	// Name identifies the assembly in the dependency graph and in error
	// messages. Names should be unique; assemblies sharing a name collapse
	// onto one graph vertex.
	Name() string

	// Provides lists the capabilities this assembly publishes to the
	// registry, in declaration order.
	Provides() []ServiceType

	// Requires lists the capabilities this assembly consumes. Every entry
	// must be provided by some registered assembly or Assemble fails.
	Requires() []ServiceType

	// Init creates and registers this assembly's services. Runs after every
	// assembly this one requires has been initialized.
	Init(context *InitContext) error

	// Prepare runs after all assemblies have initialized, still with write
	// access to the registry.
	Prepare(context *InitContext) error

	// Start activates the assembly. The registry is read-only at this point.
	Start(context *StartContext) error

	// Finalize runs first during teardown, in reverse dependency order.
	Finalize() error

	// Shutdown releases the assembly's resources. Runs after every
	// assembly's Finalize has been attempted.
	Shutdown() error
}

// DefaultServiceAssembly is an embeddable base supplying empty capability
// sets and no-op lifecycle hooks. Embedders override Name, Init and whatever
// else they need:
//
//	type storeAssembly struct {
//		system.DefaultServiceAssembly
//	}
//
//	func (storeAssembly) Name() string { return "Item Store" }
//	func (storeAssembly) Provides() []system.ServiceType {
//		return []system.ServiceType{ItemStoreKey}
//	}
//	func (storeAssembly) Init(ctx *system.InitContext) error {
//		ctx.Registry.Register(ItemStoreKey, newItemStore())
//		return nil
//	}
type DefaultServiceAssembly struct{}

func (DefaultServiceAssembly) Provides() []ServiceType    { return nil }
func (DefaultServiceAssembly) Requires() []ServiceType    { return nil }
func (DefaultServiceAssembly) Init(*InitContext) error    { return nil }
func (DefaultServiceAssembly) Prepare(*InitContext) error { return nil }
func (DefaultServiceAssembly) Start(*StartContext) error  { return nil }
func (DefaultServiceAssembly) Finalize() error            { return nil }
func (DefaultServiceAssembly) Shutdown() error            { return nil }
