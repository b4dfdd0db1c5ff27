package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Metaform/assemblr/internal/app"
)

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Assemble and run the registered assemblies",
	Long: `Assemble all registered assemblies in dependency order and keep the
process running until it receives SIGINT or SIGTERM, then shut the
assemblies down in reverse order.`,
	RunE: runUp,
}

var (
	upConfigPath string
	upDebug      bool
	upSilent     bool
)

func init() {
	upCmd.Flags().StringVar(&upConfigPath, "config-path", "", "Custom configuration directory (default: ~/.config/assemblr)")
	upCmd.Flags().BoolVar(&upDebug, "debug", false, "Enable debug logging")
	upCmd.Flags().BoolVar(&upSilent, "silent", false, "Suppress all log output")
	rootCmd.AddCommand(upCmd)
}

func runUp(cmd *cobra.Command, args []string) error {
	cfg := app.NewConfig(upDebug, upSilent, upConfigPath)
	application, err := app.NewApplication(cfg, registeredAssemblies...)
	if err != nil {
		return err
	}
	return application.Run(context.Background())
}
