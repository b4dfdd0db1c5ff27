package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Metaform/assemblr/pkg/system"
)

var version = "dev"

// SetVersion sets the version for the CLI.
func SetVersion(v string) {
	version = v
}

// GetVersion returns the current version.
func GetVersion() string {
	return version
}

// registeredAssemblies holds the assemblies an embedding binary wants the
// CLI to run. Populate via RegisterAssemblies before calling Execute.
var registeredAssemblies []system.ServiceAssembly

// RegisterAssemblies records the assemblies the up and plan commands operate
// on. Call before Execute.
func RegisterAssemblies(assemblies ...system.ServiceAssembly) {
	registeredAssemblies = append(registeredAssemblies, assemblies...)
}

var rootCmd = &cobra.Command{
	Use:   "assemblr",
	Short: "Dependency-ordered service assembly runtime",
	Long: `Assemblr wires a set of service assemblies into a running process.

Each assembly declares the service capabilities it provides and requires.
Assemblr computes a dependency-first order, drives every assembly through
its lifecycle (init, prepare, start), and shuts everything down in reverse
order on termination.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
