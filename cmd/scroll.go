package cmd

import (
	"fmt"

	"github.com/mcheemaa/axpilot/internal/action"
	"github.com/mcheemaa/axpilot/internal/ax"
	"github.com/mcheemaa/axpilot/internal/output"
	"github.com/spf13/cobra"
)

var scrollCmd = &cobra.Command{
	Use:   "scroll",
	Short: "Scroll at an element or at coordinates",
	Long: `Dispatch synthetic scroll wheel input at the resolved element's center,
or at explicit --x/--y coordinates. Positive --dy scrolls down, negative up.`,
	RunE: runScroll,
}

func init() {
	rootCmd.AddCommand(scrollCmd)
	addActionFlags(scrollCmd)
	scrollCmd.Flags().Int("x", -1, "Scroll at absolute X screen coordinate")
	scrollCmd.Flags().Int("y", -1, "Scroll at absolute Y screen coordinate")
	scrollCmd.Flags().Int("dx", 0, "Horizontal scroll amount")
	scrollCmd.Flags().Int("dy", 0, "Vertical scroll amount")
}

func runScroll(cmd *cobra.Command, args []string) error {
	d, err := newDispatcher(cmd)
	if err != nil {
		return err
	}

	appName, _ := cmd.Flags().GetString("app")
	query, _ := cmd.Flags().GetString("query")
	roleHint, _ := cmd.Flags().GetString("role")
	x, _ := cmd.Flags().GetInt("x")
	y, _ := cmd.Flags().GetInt("y")
	dx, _ := cmd.Flags().GetInt("dx")
	dy, _ := cmd.Flags().GetInt("dy")

	if dx == 0 && dy == 0 {
		return fmt.Errorf("provide --dx and/or --dy")
	}

	target := action.Target{Query: query, RoleHint: roleHint, ScrollDX: dx, ScrollDY: dy}
	if x >= 0 && y >= 0 {
		target.Point = &ax.Point{X: x, Y: y}
	} else if query == "" {
		return fmt.Errorf("provide --query or both --x and --y")
	}

	return output.Print(d.Dispatch(action.Scroll, target, appName))
}
