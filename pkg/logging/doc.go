// Package logging provides the slog-backed logging used across assemblr.
//
// Messages are tagged with a subsystem name so output from different parts
// of a runtime can be filtered:
//
//	logging.Init(logging.LevelInfo, os.Stdout)
//	logging.Info("Assembler", "Assembled %d assemblies", n)
//
// Monitor adapts this package to the system.LogMonitor contract so the
// orchestration core stays decoupled from the sink implementation.
package logging
