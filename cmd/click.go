package cmd

import (
	"fmt"

	"github.com/mcheemaa/axpilot/internal/action"
	"github.com/mcheemaa/axpilot/internal/ax"
	"github.com/mcheemaa/axpilot/internal/output"
	"github.com/spf13/cobra"
)

var clickCmd = &cobra.Command{
	Use:   "click",
	Short: "Click an element by query or at coordinates",
	Long: `Resolve the target with the fuzzy resolver and click it: the native press
action is tried first and verified against a before/after context comparison;
synthetic input is the fallback. With --x/--y, synthetic input is dispatched
directly at the point.`,
	RunE: runClick,
}

func init() {
	rootCmd.AddCommand(clickCmd)
	addActionFlags(clickCmd)
	clickCmd.Flags().Int("x", -1, "Click at absolute X screen coordinate")
	clickCmd.Flags().Int("y", -1, "Click at absolute Y screen coordinate")
	clickCmd.Flags().Bool("double", false, "Double-click")
	clickCmd.Flags().Bool("right", false, "Right-click")
}

func runClick(cmd *cobra.Command, args []string) error {
	d, err := newDispatcher(cmd)
	if err != nil {
		return err
	}

	appName, _ := cmd.Flags().GetString("app")
	query, _ := cmd.Flags().GetString("query")
	roleHint, _ := cmd.Flags().GetString("role")
	x, _ := cmd.Flags().GetInt("x")
	y, _ := cmd.Flags().GetInt("y")
	double, _ := cmd.Flags().GetBool("double")
	right, _ := cmd.Flags().GetBool("right")

	target := action.Target{Query: query, RoleHint: roleHint}
	if x >= 0 && y >= 0 {
		target.Point = &ax.Point{X: x, Y: y}
	} else if query == "" {
		return fmt.Errorf("provide --query or both --x and --y")
	}

	kind := action.Click
	if double {
		kind = action.DoubleClick
	} else if right {
		kind = action.RightClick
	}

	return output.Print(d.Dispatch(kind, target, appName))
}
