package cmd

import (
	"time"

	"github.com/mcheemaa/axpilot/internal/action"
	"github.com/mcheemaa/axpilot/internal/output"
	"github.com/spf13/cobra"
)

var waitCmd = &cobra.Command{
	Use:   "wait",
	Short: "Wait for a UI condition",
	Long: `Poll the app until a condition is met or the timeout elapses. Conditions:
url-contains, title-contains, element-exists, element-gone, url-changed,
title-changed. Timeouts are reported as an ordinary failure result.

The changed conditions compare against the state at the first poll. When
chaining after an action, prefer 'wait' immediately after the action commits
so a fast transition is not missed.`,
	RunE: runWait,
}

func init() {
	rootCmd.AddCommand(waitCmd)
	waitCmd.Flags().String("app", "", "Scope to application (default: frontmost)")
	waitCmd.Flags().String("for", "", "Condition kind (required)")
	waitCmd.Flags().String("value", "", "Condition value (query text, URL or title fragment)")
	waitCmd.Flags().Int("timeout", 0, "Timeout in seconds (0 = default 30)")
	waitCmd.Flags().Int("interval", 0, "Poll interval in milliseconds (0 = default 500)")
	waitCmd.MarkFlagRequired("for")
	addWalkFlags(waitCmd)
}

func runWait(cmd *cobra.Command, args []string) error {
	d, err := newDispatcher(cmd)
	if err != nil {
		return err
	}

	appName, _ := cmd.Flags().GetString("app")
	condStr, _ := cmd.Flags().GetString("for")
	value, _ := cmd.Flags().GetString("value")
	timeoutSec, _ := cmd.Flags().GetInt("timeout")
	intervalMs, _ := cmd.Flags().GetInt("interval")

	opts := action.WaitOptions{
		Timeout:  time.Duration(timeoutSec) * time.Second,
		Interval: time.Duration(intervalMs) * time.Millisecond,
		AppHint:  appName,
	}
	return output.Print(d.Wait(action.Condition(condStr), value, opts))
}
