package cmd

import (
	"fmt"

	"github.com/mcheemaa/axpilot/internal/ax"
	"github.com/mcheemaa/axpilot/internal/model"
	"github.com/mcheemaa/axpilot/internal/output"
	"github.com/mcheemaa/axpilot/internal/tree"
	"github.com/spf13/cobra"
)

var findCmd = &cobra.Command{
	Use:   "find",
	Short: "Exact/substring search in a snapshot tree",
	Long:  "Build a snapshot and return every node whose label or value matches the query, without fuzzy scoring. Use resolve for ranked matching.",
	RunE:  runFind,
}

func init() {
	rootCmd.AddCommand(findCmd)
	findCmd.Flags().String("app", "", "Application name (default: frontmost)")
	findCmd.Flags().String("text", "", "Text to search for (case-insensitive substring)")
	findCmd.Flags().String("role", "", "Filter by role (e.g. btn, input, lnk)")
	findCmd.Flags().Int("depth", 0, "Max snapshot depth (0 = default)")
	findCmd.Flags().Int("limit", 20, "Max matching nodes to return")
}

// findResult is the top-level output of the find command.
type findResult struct {
	OK      bool         `yaml:"ok"      json:"ok"`
	Action  string       `yaml:"action"  json:"action"`
	Text    string       `yaml:"text"    json:"text"`
	Total   int          `yaml:"total"   json:"total"`
	Matches []model.Node `yaml:"matches" json:"matches"`
}

func runFind(cmd *cobra.Command, args []string) error {
	text, _ := cmd.Flags().GetString("text")
	if text == "" {
		return fmt.Errorf("--text is required")
	}
	roleStr, _ := cmd.Flags().GetString("role")
	appName, _ := cmd.Flags().GetString("app")
	depth, _ := cmd.Flags().GetInt("depth")
	limit, _ := cmd.Flags().GetInt("limit")

	provider, err := ax.NewProvider()
	if err != nil {
		return err
	}
	sets, err := loadRoleSets(cmd)
	if err != nil {
		return err
	}
	_, root, err := resolveContentRoot(provider, appName)
	if err != nil {
		return err
	}

	node := tree.Builder{MaxDepth: depth, Sets: sets}.Build(root)

	var role model.Role
	if roleStr != "" {
		role = model.NormalizeHint(roleStr)
	}
	found := model.FindInTree(node, text, role)
	total := len(found)
	if limit > 0 && len(found) > limit {
		found = found[:limit]
	}

	// Strip children from matches: the caller asked where the text is,
	// not for whole subtrees.
	matches := make([]model.Node, len(found))
	for i, n := range found {
		matches[i] = *n
		matches[i].Children = nil
	}

	return output.Print(findResult{
		OK:      total > 0,
		Action:  "find",
		Text:    text,
		Total:   total,
		Matches: matches,
	})
}
