// ABOUTME: CLI commands for logging daily goal completions.
// ABOUTME: Logging is idempotent per local calendar day; clear wipes a goal's days.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var logCmd = &cobra.Command{
	Use:   "log <goal-id>",
	Short: "Log today's completion for a goal",
	Long: `Log that you completed a goal today.

Logging is idempotent per calendar day: the first call today records the
day, later calls are a no-op. Goal IDs may be given as a unique prefix.

Examples:
  grata log a1b2c3d4
  grata log a1b2c3d4      # second call same day: already logged`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := repo.GetGoal(args[0])
		if err != nil {
			return fmt.Errorf("failed to find goal: %w", err)
		}

		inserted, err := ledger.LogToday(g.ID)
		if err != nil {
			return fmt.Errorf("failed to log progress: %w", err)
		}

		count, err := ledger.LoggedCount(g.ID)
		if err != nil {
			return fmt.Errorf("failed to read progress: %w", err)
		}

		if inserted {
			color.Green("✓ Logged %q (%d/%d days)", g.Title, count, cfg.GetTargetDays())
		} else {
			color.Yellow("Already logged %q today (%d/%d days)", g.Title, count, cfg.GetTargetDays())
		}
		return nil
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear <goal-id>",
	Short: "Clear all logged days for a goal",
	Long: `Remove every logged day for a goal, resetting its progress to zero.

The goal itself is kept; only the ledger entries go.

Examples:
  grata clear a1b2c3d4`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := repo.GetGoal(args[0])
		if err != nil {
			return fmt.Errorf("failed to find goal: %w", err)
		}

		if err := ledger.ClearAllLogs(g.ID); err != nil {
			return fmt.Errorf("failed to clear progress: %w", err)
		}

		color.Green("✓ Cleared all logged days for %q", g.Title)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(clearCmd)
}
