package system

// AssemblyBuilder declares an assembly fluently, as an alternative to
// implementing ServiceAssembly on a struct. It covers the common case of an
// assembly whose hooks are closures:
//
//	assembly := system.NewAssembly("Cache").
//		ProvidesTypes(CacheKey).
//		RequiresTypes(ItemStoreKey).
//		OnInit(func(ctx *system.InitContext) error {
//			store := ctx.Registry.Resolve(ItemStoreKey).(ItemStore)
//			ctx.Registry.Register(CacheKey, newCache(store))
//			return nil
//		}).
//		Build()
//
// Omitted hooks are no-ops; empty capability lists are valid. Provides and
// Requires are returned in declaration order.
type AssemblyBuilder struct {
	name     string
	provides []ServiceType
	requires []ServiceType
	init     func(*InitContext) error
	prepare  func(*InitContext) error
	start    func(*StartContext) error
	finalize func() error
	shutdown func() error
}

// NewAssembly starts building an assembly with the given name.
func NewAssembly(name string) *AssemblyBuilder {
	return &AssemblyBuilder{name: name}
}

// ProvidesTypes appends capabilities this assembly publishes.
func (b *AssemblyBuilder) ProvidesTypes(keys ...ServiceType) *AssemblyBuilder {
	b.provides = append(b.provides, keys...)
	return b
}

// RequiresTypes appends capabilities this assembly consumes.
func (b *AssemblyBuilder) RequiresTypes(keys ...ServiceType) *AssemblyBuilder {
	b.requires = append(b.requires, keys...)
	return b
}

// OnInit sets the init hook.
func (b *AssemblyBuilder) OnInit(fn func(*InitContext) error) *AssemblyBuilder {
	b.init = fn
	return b
}

// OnPrepare sets the prepare hook.
func (b *AssemblyBuilder) OnPrepare(fn func(*InitContext) error) *AssemblyBuilder {
	b.prepare = fn
	return b
}

// OnStart sets the start hook.
func (b *AssemblyBuilder) OnStart(fn func(*StartContext) error) *AssemblyBuilder {
	b.start = fn
	return b
}

// OnFinalize sets the finalize hook.
func (b *AssemblyBuilder) OnFinalize(fn func() error) *AssemblyBuilder {
	b.finalize = fn
	return b
}

// OnShutdown sets the shutdown hook.
func (b *AssemblyBuilder) OnShutdown(fn func() error) *AssemblyBuilder {
	b.shutdown = fn
	return b
}

// Build returns the declared assembly. The builder can be discarded
// afterwards; the assembly holds its own copies of the declarations.
func (b *AssemblyBuilder) Build() ServiceAssembly {
	assembly := &builtAssembly{
		name:     b.name,
		provides: make([]ServiceType, len(b.provides)),
		requires: make([]ServiceType, len(b.requires)),
		init:     b.init,
		prepare:  b.prepare,
		start:    b.start,
		finalize: b.finalize,
		shutdown: b.shutdown,
	}
	copy(assembly.provides, b.provides)
	copy(assembly.requires, b.requires)
	return assembly
}

type builtAssembly struct {
	name     string
	provides []ServiceType
	requires []ServiceType
	init     func(*InitContext) error
	prepare  func(*InitContext) error
	start    func(*StartContext) error
	finalize func() error
	shutdown func() error
}

func (a *builtAssembly) Name() string            { return a.name }
func (a *builtAssembly) Provides() []ServiceType { return a.provides }
func (a *builtAssembly) Requires() []ServiceType { return a.requires }

func (a *builtAssembly) Init(context *InitContext) error {
	if a.init == nil {
		return nil
	}
	return a.init(context)
}

func (a *builtAssembly) Prepare(context *InitContext) error {
	if a.prepare == nil {
		return nil
	}
	return a.prepare(context)
}

func (a *builtAssembly) Start(context *StartContext) error {
	if a.start == nil {
		return nil
	}
	return a.start(context)
}

func (a *builtAssembly) Finalize() error {
	if a.finalize == nil {
		return nil
	}
	return a.finalize()
}

func (a *builtAssembly) Shutdown() error {
	if a.shutdown == nil {
		return nil
	}
	return a.shutdown()
}
