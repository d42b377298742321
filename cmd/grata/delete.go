// ABOUTME: CLI command for deleting goals.
// ABOUTME: Removes the goal row, its comments (cascade), and its ledger days.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <goal-id>",
	Aliases: []string{"rm", "del"},
	Short:   "Delete a goal",
	Long: `Delete a goal along with its comments and logged days.

Examples:
  grata delete a1b2c3d4
  grata rm a1b2c3d4`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := repo.GetGoal(args[0])
		if err != nil {
			return fmt.Errorf("failed to find goal: %w", err)
		}

		if err := repo.DeleteGoal(g.ID.String()); err != nil {
			return fmt.Errorf("failed to delete goal: %w", err)
		}

		// The ledger has no view of goal lifecycle, so drop its days here.
		if err := ledger.ClearAllLogs(g.ID); err != nil {
			return fmt.Errorf("goal deleted but failed to clear progress: %w", err)
		}

		color.Green("✓ Deleted goal %q", g.Title)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
