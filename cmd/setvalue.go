package cmd

import (
	"fmt"

	"github.com/mcheemaa/axpilot/internal/action"
	"github.com/mcheemaa/axpilot/internal/output"
	"github.com/spf13/cobra"
)

var setValueCmd = &cobra.Command{
	Use:   "set-value",
	Short: "Set the value of a field directly",
	Long: `Resolve a text field and write its value through the accessibility API.
The value is read back after the write; if the field silently dropped it,
the dispatcher falls back to focusing the field and typing the text.`,
	RunE: runSetValue,
}

func init() {
	rootCmd.AddCommand(setValueCmd)
	addActionFlags(setValueCmd)
	setValueCmd.Flags().String("value", "", "Value to set on the field")
}

func runSetValue(cmd *cobra.Command, args []string) error {
	d, err := newDispatcher(cmd)
	if err != nil {
		return err
	}

	appName, _ := cmd.Flags().GetString("app")
	query, _ := cmd.Flags().GetString("query")
	roleHint, _ := cmd.Flags().GetString("role")
	value, _ := cmd.Flags().GetString("value")

	if query == "" {
		return fmt.Errorf("provide --query to name the field")
	}

	target := action.Target{Query: query, RoleHint: roleHint, Text: value}
	return output.Print(d.Dispatch(action.SetValue, target, appName))
}
