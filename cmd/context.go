package cmd

import (
	"github.com/mcheemaa/axpilot/internal/action"
	"github.com/mcheemaa/axpilot/internal/ax"
	"github.com/mcheemaa/axpilot/internal/output"
	"github.com/spf13/cobra"
)

var contextCmd = &cobra.Command{
	Use:   "context",
	Short: "Capture a compact situational snapshot",
	Long:  "Report the active app, window title, URL, focused element, and nearby interactive elements: enough for an agent to decide its next step.",
	RunE:  runContext,
}

func init() {
	rootCmd.AddCommand(contextCmd)
	contextCmd.Flags().String("app", "", "Application name (default: frontmost)")
}

func runContext(cmd *cobra.Command, args []string) error {
	provider, err := ax.NewProvider()
	if err != nil {
		return err
	}
	sets, err := loadRoleSets(cmd)
	if err != nil {
		return err
	}
	appName, _ := cmd.Flags().GetString("app")

	ctx, err := action.Capture(provider.Driver, appName, sets)
	if err != nil {
		return err
	}
	return output.Print(ctx)
}
