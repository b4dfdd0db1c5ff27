package system

import (
	"fmt"
	"strings"
)

// InvalidRuntimeModeError reports an unrecognized runtime mode string.
type InvalidRuntimeModeError struct {
	Mode string
}

func (e *InvalidRuntimeModeError) Error() string {
	return fmt.Sprintf("invalid runtime mode: %s", e.Mode)
}

// MissingDependencyError reports that an assembly requires a capability no
// registered assembly provides.
type MissingDependencyError struct {
	Assembly string
	Message  string
}

func (e *MissingDependencyError) Error() string {
	return fmt.Sprintf("assembly '%s' error: %s", e.Assembly, e.Message)
}

// CyclicDependencyError reports a cycle in the assembly graph. Path holds the
// reconstructed cycle with the shared vertex at both ends, e.g.
// [Assembly1 Assembly2 Assembly1].
type CyclicDependencyError struct {
	Path []string
}

func (e *CyclicDependencyError) Error() string {
	return fmt.Sprintf("cyclic dependency detected in assembly graph (%s)", e.cycleInfo())
}

func (e *CyclicDependencyError) cycleInfo() string {
	if len(e.Path) == 0 {
		return "unknown cycle"
	}
	return "cycle path: " + strings.Join(e.Path, " -> ")
}
