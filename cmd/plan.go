package cmd

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/Metaform/assemblr/pkg/system"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show the assembly order without running anything",
	Long: `Resolve the dependency graph of the registered assemblies and print
the order in which they would be assembled. No lifecycle hooks are
invoked.`,
	RunE: runPlan,
}

func init() {
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	assembler := system.NewAssembler(system.NoopMonitor{}, system.ModeDevelopment)
	for _, assembly := range registeredAssemblies {
		assembler.Register(assembly)
	}

	order, err := assembler.Plan()
	if err != nil {
		return fmt.Errorf("failed to resolve assembly order: %w", err)
	}

	byName := make(map[string]system.ServiceAssembly, len(registeredAssemblies))
	for _, assembly := range registeredAssemblies {
		if _, ok := byName[assembly.Name()]; !ok {
			byName[assembly.Name()] = assembly
		}
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"#", "Assembly", "Provides", "Requires"})
	for i, name := range order {
		assembly := byName[name]
		t.AppendRow(table.Row{
			i + 1,
			name,
			formatTypes(assembly.Provides()),
			formatTypes(assembly.Requires()),
		})
	}
	t.SetStyle(table.StyleLight)
	t.Style().Format.Header = text.FormatTitle
	t.Render()
	return nil
}

func formatTypes(types []system.ServiceType) string {
	if len(types) == 0 {
		return "-"
	}
	out := ""
	for i, st := range types {
		if i > 0 {
			out += ", "
		}
		out += string(st)
	}
	return out
}
