package cmd

import (
	"github.com/mcheemaa/axpilot/internal/ax"
	"github.com/mcheemaa/axpilot/internal/model"
	"github.com/mcheemaa/axpilot/internal/output"
	"github.com/mcheemaa/axpilot/internal/tree"
	"github.com/spf13/cobra"
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Extract readable content from an app's content root",
	Long: `Walk the content tree under a semantic depth budget and return a flat
reading view: headings, links, buttons, inputs, and text, with wrapper noise
tunneled through for free.`,
	RunE: runContent,
}

func init() {
	rootCmd.AddCommand(contentCmd)
	contentCmd.Flags().String("app", "", "Application name (default: frontmost)")
	contentCmd.Flags().Int("max-items", 0, "Max content lines (0 = default)")
	contentCmd.Flags().Int("max-text", 0, "Max characters per line (0 = default)")
	addWalkFlags(contentCmd)
}

// contentResult is the top-level output of the content command.
type contentResult struct {
	App   string              `yaml:"app,omitempty" json:"app,omitempty"`
	URL   string              `yaml:"url,omitempty" json:"url,omitempty"`
	Items []model.ContentItem `yaml:"items"         json:"items"`
}

func runContent(cmd *cobra.Command, args []string) error {
	provider, err := ax.NewProvider()
	if err != nil {
		return err
	}
	sets, err := loadRoleSets(cmd)
	if err != nil {
		return err
	}
	appName, _ := cmd.Flags().GetString("app")
	maxItems, _ := cmd.Flags().GetInt("max-items")
	maxText, _ := cmd.Flags().GetInt("max-text")

	app, root, err := resolveContentRoot(provider, appName)
	if err != nil {
		return err
	}

	items := tree.Extract(root, tree.ExtractOptions{
		Walk:       getWalkOptions(cmd, sets),
		MaxItems:   maxItems,
		MaxTextLen: maxText,
	})

	return output.Print(contentResult{
		App:   app.Name(),
		URL:   root.URL(),
		Items: items,
	})
}
