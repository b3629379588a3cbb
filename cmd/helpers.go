package cmd

import (
	"fmt"
	"time"

	"github.com/mcheemaa/axpilot/internal/action"
	"github.com/mcheemaa/axpilot/internal/ax"
	"github.com/mcheemaa/axpilot/internal/model"
	"github.com/mcheemaa/axpilot/internal/tree"
	"github.com/spf13/cobra"
)

// loadRoleSets reads the --roles-config override, or returns the defaults.
func loadRoleSets(cmd *cobra.Command) (*model.RoleSets, error) {
	path, _ := rootCmd.PersistentFlags().GetString("roles-config")
	if path == "" {
		return model.DefaultRoleSets(), nil
	}
	return model.LoadRoleSets(path)
}

// resolveContentRoot finds the app and its content root for a command scope.
func resolveContentRoot(provider *ax.Provider, appHint string) (ax.App, ax.Element, error) {
	if provider.Driver == nil {
		return nil, nil, fmt.Errorf("accessibility driver not available on this platform")
	}
	var app ax.App
	var err error
	if appHint != "" {
		app, err = provider.Driver.AppNamed(appHint)
	} else {
		app, err = provider.Driver.FrontmostApp()
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve app: %w", err)
	}
	root := tree.ContentRoot(app)
	if root == nil {
		return app, nil, fmt.Errorf("no content root for app %q", app.Name())
	}
	return app, root, nil
}

// addWalkFlags adds the traversal budget flags shared by perception commands.
func addWalkFlags(cmd *cobra.Command) {
	cmd.Flags().Int("budget", 0, "Semantic depth budget (0 = default)")
	cmd.Flags().Int("max-depth", 0, "Hard structural depth ceiling (0 = default)")
	cmd.Flags().Int("deadline", 0, "Walk deadline in milliseconds (0 = default)")
}

// getWalkOptions reads the traversal flags into WalkOptions.
func getWalkOptions(cmd *cobra.Command, sets *model.RoleSets) tree.WalkOptions {
	budget, _ := cmd.Flags().GetInt("budget")
	maxDepth, _ := cmd.Flags().GetInt("max-depth")
	deadlineMs, _ := cmd.Flags().GetInt("deadline")
	return tree.WalkOptions{
		Budget:        budget,
		MaxStructural: maxDepth,
		Deadline:      time.Duration(deadlineMs) * time.Millisecond,
		Sets:          sets,
	}
}

// newDispatcher builds a dispatcher for action commands.
func newDispatcher(cmd *cobra.Command) (*action.Dispatcher, error) {
	provider, err := ax.NewProvider()
	if err != nil {
		return nil, err
	}
	sets, err := loadRoleSets(cmd)
	if err != nil {
		return nil, err
	}
	d := action.NewDispatcher(provider)
	d.Sets = sets
	d.Walk = getWalkOptionsIfPresent(cmd, sets)
	if debug, err := cmd.Flags().GetBool("debug-screenshot"); err == nil && debug {
		d.Debug = true
	}
	return d, nil
}

func getWalkOptionsIfPresent(cmd *cobra.Command, sets *model.RoleSets) tree.WalkOptions {
	if cmd.Flags().Lookup("budget") != nil {
		return getWalkOptions(cmd, sets)
	}
	return tree.WalkOptions{Sets: sets}
}

// addActionFlags adds the flags shared by action commands.
func addActionFlags(cmd *cobra.Command) {
	cmd.Flags().String("app", "", "Scope to application (default: frontmost)")
	cmd.Flags().String("query", "", "Find target element by fuzzy query")
	cmd.Flags().String("role", "", "Role hint for the query (e.g. button, link, input)")
	cmd.Flags().Bool("debug-screenshot", false, "Attach a screen capture to failure results")
	addWalkFlags(cmd)
}
