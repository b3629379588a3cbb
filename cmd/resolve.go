package cmd

import (
	"fmt"
	"os"

	"github.com/mcheemaa/axpilot/internal/ax"
	"github.com/mcheemaa/axpilot/internal/model"
	"github.com/mcheemaa/axpilot/internal/output"
	"github.com/mcheemaa/axpilot/internal/resolve"
	"github.com/mcheemaa/axpilot/internal/tree"
	"github.com/spf13/cobra"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Fuzzy-rank elements against a natural-language query",
	Long: `Score every element in the app's content tree against the query and an
optional role hint, returning ranked candidates above the noise floor with a
per-rule reason string for each score.`,
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
	resolveCmd.Flags().String("app", "", "Application name (default: frontmost)")
	resolveCmd.Flags().String("query", "", "Query text")
	resolveCmd.Flags().String("role", "", "Role hint (e.g. button, link, input)")
	resolveCmd.Flags().Int("limit", 5, "Max matches to return")
	resolveCmd.Flags().Int("depth", 0, "Max snapshot depth (0 = default)")
	resolveCmd.Flags().String("annotate", "", "Write a PNG with candidate boxes drawn on a screen capture")
}

// matchInfo is a compact view of one ranked match.
type matchInfo struct {
	ID     string     `yaml:"id"              json:"id"`
	Role   model.Role `yaml:"role"            json:"role"`
	Label  string     `yaml:"label,omitempty" json:"label,omitempty"`
	Score  int        `yaml:"score"           json:"score"`
	Reason string     `yaml:"reason"          json:"reason"`
}

// resolveResult is the top-level output of the resolve command.
type resolveResult struct {
	OK      bool        `yaml:"ok"                 json:"ok"`
	Action  string      `yaml:"action"             json:"action"`
	Query   string      `yaml:"query"              json:"query"`
	Matches []matchInfo `yaml:"matches"            json:"matches"`
	Saved   string      `yaml:"saved,omitempty"    json:"saved,omitempty"`
}

func runResolve(cmd *cobra.Command, args []string) error {
	query, _ := cmd.Flags().GetString("query")
	if query == "" {
		return fmt.Errorf("--query is required")
	}
	roleHint, _ := cmd.Flags().GetString("role")
	appName, _ := cmd.Flags().GetString("app")
	limit, _ := cmd.Flags().GetInt("limit")
	depth, _ := cmd.Flags().GetInt("depth")
	annotatePath, _ := cmd.Flags().GetString("annotate")

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
	matches := resolve.New(sets).Resolve(query, roleHint, node, limit)

	result := resolveResult{
		OK:     len(matches) > 0,
		Action: "resolve",
		Query:  query,
	}
	for _, m := range matches {
		result.Matches = append(result.Matches, matchInfo{
			ID:     m.Node.ID,
			Role:   m.Node.Role,
			Label:  m.Node.Label,
			Score:  m.Score,
			Reason: m.Reason,
		})
	}

	if annotatePath != "" && provider.Screenshotter != nil {
		png, err := annotateMatches(provider.Screenshotter, matches)
		if err != nil {
			return fmt.Errorf("annotate: %w", err)
		}
		if err := os.WriteFile(annotatePath, png, 0644); err != nil {
			return fmt.Errorf("write %s: %w", annotatePath, err)
		}
		result.Saved = annotatePath
	}

	return output.Print(result)
}
