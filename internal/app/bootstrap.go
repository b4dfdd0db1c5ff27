package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/Metaform/assemblr/internal/config"
	"github.com/Metaform/assemblr/pkg/logging"
	"github.com/Metaform/assemblr/pkg/system"
)

// Application bootstraps and runs an assembled runtime. It follows a
// two-phase pattern:
//
//  1. Bootstrap phase: initialize logging, load configuration, resolve the
//     runtime mode, construct the assembler and register the assemblies.
//  2. Execution phase: assemble, block until the process is signalled, then
//     shut down in reverse dependency order.
//
// Example usage:
//
//	cfg := app.NewConfig(false, false, "")
//	application, err := app.NewApplication(cfg, assemblies...)
//	if err != nil {
//		return err
//	}
//	return application.Run(ctx)
type Application struct {
	config    *Config
	assembler *system.Assembler
}

// NewApplication performs the bootstrap phase: logging is configured from
// the flags and config file, the mode string is resolved, and every given
// assembly is registered with a fresh assembler. An unrecognized mode string
// surfaces as a system.InvalidRuntimeModeError.
func NewApplication(cfg *Config, assemblies ...system.ServiceAssembly) (*Application, error) {
	// Logging comes up twice: once with flag-derived settings so config
	// loading itself logs properly, then again once the configured level is
	// known.
	var logOutput io.Writer = os.Stdout
	if cfg.Silent {
		logOutput = io.Discard
	}
	logging.Init(logging.LevelInfo, logOutput)

	configPath := cfg.ConfigPath
	if configPath == "" {
		defaultPath, err := config.DefaultConfigPath()
		if err != nil {
			return nil, err
		}
		configPath = defaultPath
	}

	assemblrCfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load assemblr configuration: %w", err)
	}
	cfg.AssemblrConfig = &assemblrCfg

	logLevel := logging.ParseLevel(assemblrCfg.LogLevel)
	if cfg.Debug {
		logLevel = logging.LevelDebug
	}
	if assemblrCfg.Silent {
		logOutput = io.Discard
	}
	logging.Init(logLevel, logOutput)

	mode, err := system.ParseRuntimeMode(assemblrCfg.Mode)
	if err != nil {
		logging.Error("Bootstrap", err, "Invalid runtime mode in configuration: %s", assemblrCfg.Mode)
		return nil, err
	}

	assembler := system.NewAssembler(logging.NewMonitor("Assembler"), mode)
	for _, assembly := range assemblies {
		assembler.Register(assembly)
	}
	logging.Info("Bootstrap", "Registered %d assemblies (mode: %s)", len(assemblies), mode)

	return &Application{
		config:    cfg,
		assembler: assembler,
	}, nil
}

// Assembler returns the assembler built during bootstrap.
func (a *Application) Assembler() *system.Assembler {
	return a.assembler
}

// Run executes the application: assemble all registered assemblies, block
// until the context is cancelled or a termination signal arrives, then shut
// down. Shutdown errors are aggregated and returned.
func (a *Application) Run(ctx context.Context) error {
	if err := a.assembler.Assemble(); err != nil {
		logging.Error("App", err, "Assembly failed")
		return err
	}
	logging.Info("App", "Runtime assembled. Press Ctrl+C to shut down.")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case <-ctx.Done():
	case <-sigChan:
	}

	logging.Info("App", "Shutting down assemblies")
	if err := a.assembler.Shutdown(); err != nil {
		logging.Error("App", err, "Shutdown completed with errors")
		return err
	}
	return nil
}
