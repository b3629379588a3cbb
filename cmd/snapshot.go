package cmd

import (
	"time"

	"github.com/mcheemaa/axpilot/internal/ax"
	"github.com/mcheemaa/axpilot/internal/model"
	"github.com/mcheemaa/axpilot/internal/output"
	"github.com/mcheemaa/axpilot/internal/tree"
	"github.com/spf13/cobra"
)

// SnapshotResult is the top-level output of the snapshot command.
type SnapshotResult struct {
	App   string           `yaml:"app,omitempty"  json:"app,omitempty"`
	PID   int              `yaml:"pid,omitempty"  json:"pid,omitempty"`
	TS    int64            `yaml:"ts"             json:"ts"`
	Nodes int              `yaml:"nodes"          json:"nodes"`
	Tree  *model.Node      `yaml:"tree,omitempty" json:"tree,omitempty"`
	Flat  []model.FlatNode `yaml:"flat,omitempty" json:"flat,omitempty"`
}

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Build a bounded snapshot of an app's UI element tree",
	Long:  "Walk the live accessibility graph from the app's content root and produce a bounded, cycle-safe Node snapshot tree.",
	RunE:  runSnapshot,
}

func init() {
	rootCmd.AddCommand(snapshotCmd)
	snapshotCmd.Flags().String("app", "", "Application name (default: frontmost)")
	snapshotCmd.Flags().Int("depth", 0, "Max recursion depth (0 = default)")
	snapshotCmd.Flags().Int("max-children", 0, "Max children per node (0 = default)")
	snapshotCmd.Flags().Bool("flat", false, "Output a flat list with path breadcrumbs instead of a tree")
	snapshotCmd.Flags().Bool("pretty", false, "Pretty-print JSON output")
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	provider, err := ax.NewProvider()
	if err != nil {
		return err
	}
	sets, err := loadRoleSets(cmd)
	if err != nil {
		return err
	}

	appName, _ := cmd.Flags().GetString("app")
	depth, _ := cmd.Flags().GetInt("depth")
	maxChildren, _ := cmd.Flags().GetInt("max-children")
	flat, _ := cmd.Flags().GetBool("flat")

	app, root, err := resolveContentRoot(provider, appName)
	if err != nil {
		return err
	}

	node := tree.Builder{MaxDepth: depth, MaxChildren: maxChildren, Sets: sets}.Build(root)

	result := SnapshotResult{
		App:   app.Name(),
		PID:   app.PID(),
		TS:    time.Now().Unix(),
		Nodes: model.CountNodes(node),
	}
	if flat {
		result.Flat = model.Flatten(node)
	} else {
		result.Tree = node
	}
	return output.Print(result)
}
