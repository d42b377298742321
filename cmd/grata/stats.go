// ABOUTME: CLI command for the cross-goal analytics card.
// ABOUTME: Renders active/completed split, average progress, and weekly activity.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/TanmayDabhade/grata/internal/progress"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show cross-goal analytics",
	Long: `Show aggregate statistics across all goals.

ACTIVE vs COMPLETED:

  A goal with fewer logged days than the target (default 30) is active;
  at or past the target it counts as completed.

Examples:
  grata stats`,
	RunE: func(cmd *cobra.Command, args []string) error {
		goals, err := repo.ListGoals()
		if err != nil {
			return fmt.Errorf("failed to list goals: %w", err)
		}

		analytics := progress.NewAnalytics(ledger)
		stats := analytics.Snapshot(goals, cfg.GetTargetDays(), time.Now())

		bold := color.New(color.Bold)
		bold.Println("Your Progress")
		fmt.Println()
		fmt.Printf("  Active goals:     %d\n", stats.ActiveGoals)
		fmt.Printf("  Completed goals:  %d\n", stats.CompletedGoals)
		fmt.Printf("  Average progress: %.0f%%\n", stats.AverageProgress*100)
		fmt.Printf("  Total days logged: %d\n", stats.TotalDaysLogged)
		fmt.Printf("  Active this week: %d\n", stats.WeeklyActive)

		if stats.CompletedGoals > 0 {
			fmt.Println()
			color.Green("🎉 %d goal(s) completed. Keep it up!", stats.CompletedGoals)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
