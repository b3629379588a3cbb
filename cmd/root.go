package cmd

import (
	"fmt"
	"os"

	"github.com/mcheemaa/axpilot/internal/ax"
	"github.com/mcheemaa/axpilot/internal/output"
	"github.com/mcheemaa/axpilot/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "axpilot",
	Short: "Perceive and act on desktop UI elements",
	Long:  "A CLI that lets AI agents perceive a GUI application's accessibility structure and act on it reliably, without pixel-based inference.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "yaml", "Output format: yaml, json")
	rootCmd.PersistentFlags().String("roles-config", "", "YAML file overriding the tunnel/interactive/container role sets")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if ax.RequestPermissionsFunc != nil {
			ax.RequestPermissionsFunc()
		}

		format, _ := rootCmd.PersistentFlags().GetString("format")
		switch format {
		case "yaml":
			output.OutputFormat = output.FormatYAML
		case "json":
			output.OutputFormat = output.FormatJSON
		default:
			return fmt.Errorf("unsupported format: %s (use yaml or json)", format)
		}
		if prettyFlag := cmd.Flags().Lookup("pretty"); prettyFlag != nil {
			if pretty, err := cmd.Flags().GetBool("pretty"); err == nil && pretty {
				output.PrettyOutput = true
			}
		}
		return nil
	}
}
