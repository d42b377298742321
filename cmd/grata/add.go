// ABOUTME: CLI command for creating goals.
// ABOUTME: Goals get a stable UUID used as the progress ledger key.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/TanmayDabhade/grata/internal/models"
)

var addDetail string

var addCmd = &cobra.Command{
	Use:     "add <title>",
	Aliases: []string{"a"},
	Short:   "Add a goal",
	Long: `Add a new goal to track daily.

Examples:
  grata add "Read every day"
  grata add "Meditate" --detail "10 minutes before work"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := args[0]
		if title == "" {
			return fmt.Errorf("goal title cannot be empty")
		}

		g := models.NewGoal(title)
		if addDetail != "" {
			g.WithDetail(addDetail)
		}

		if err := repo.CreateGoal(g); err != nil {
			return fmt.Errorf("failed to create goal: %w", err)
		}

		color.Green("✓ Added goal %q", g.Title)
		fmt.Printf("  %s day 1 of %d\n",
			color.New(color.Faint).Sprint(g.ID.String()[:8]),
			cfg.GetTargetDays())

		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&addDetail, "detail", "", "detail text for the goal")
	rootCmd.AddCommand(addCmd)
}
