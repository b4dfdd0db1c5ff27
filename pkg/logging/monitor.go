package logging

// Monitor adapts the package-level logging functions to the
// system.LogMonitor contract. Every message is tagged with the subsystem the
// monitor was created for.
type Monitor struct {
	subsystem string
}

// NewMonitor creates a monitor logging under the given subsystem tag.
func NewMonitor(subsystem string) *Monitor {
	return &Monitor{subsystem: subsystem}
}

// Debug logs a debug message.
func (m *Monitor) Debug(message string) {
	Debug(m.subsystem, "%s", message)
}

// Info logs an informational message.
func (m *Monitor) Info(message string) {
	Info(m.subsystem, "%s", message)
}

// Warn logs a warning message.
func (m *Monitor) Warn(message string) {
	Warn(m.subsystem, "%s", message)
}

// Error logs an error message.
func (m *Monitor) Error(message string) {
	Error(m.subsystem, nil, "%s", message)
}
