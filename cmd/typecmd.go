package cmd

import (
	"fmt"
	"strings"

	"github.com/mcheemaa/axpilot/internal/action"
	"github.com/mcheemaa/axpilot/internal/output"
	"github.com/spf13/cobra"
)

var typeCmd = &cobra.Command{
	Use:   "type",
	Short: "Type text into an element or press a key combo",
	Long: `With --query, the native value-set path is tried first and read back to
confirm it stuck; focusing plus character-by-character synthetic typing is
the fallback. Without --query, text is typed at the current focus. With
--key, a key combo (e.g. cmd+c, enter) is pressed instead.`,
	RunE: runType,
}

func init() {
	rootCmd.AddCommand(typeCmd)
	addActionFlags(typeCmd)
	typeCmd.Flags().String("text", "", "Text to type")
	typeCmd.Flags().String("key", "", "Key combo, + separated (e.g. cmd+c, enter, tab)")
}

func runType(cmd *cobra.Command, args []string) error {
	d, err := newDispatcher(cmd)
	if err != nil {
		return err
	}

	appName, _ := cmd.Flags().GetString("app")
	query, _ := cmd.Flags().GetString("query")
	roleHint, _ := cmd.Flags().GetString("role")
	text, _ := cmd.Flags().GetString("text")
	key, _ := cmd.Flags().GetString("key")

	if text == "" && key == "" {
		return fmt.Errorf("provide --text or --key")
	}

	if key != "" {
		target := action.Target{Keys: strings.Split(key, "+")}
		return output.Print(d.Dispatch(action.KeyCombo, target, appName))
	}

	target := action.Target{Query: query, RoleHint: roleHint, Text: text}
	return output.Print(d.Dispatch(action.TypeText, target, appName))
}
