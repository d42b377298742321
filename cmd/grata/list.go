// ABOUTME: CLI command for listing goals with progress.
// ABOUTME: Shows per-goal progress bar, logged days, and today's log state.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List goals",
	Long: `List goals with their progress, newest first.

OUTPUT FORMAT:

  Each line shows: ID  PROGRESS BAR  LOGGED/TARGET  TITLE  [today marker]

  The ID is an 8-character prefix you can use with log, clear, and
  delete commands. A ✓ at the end of the line means the goal has
  already been logged today.

EXAMPLES:

  grata list       # All goals, newest first
  grata ls         # Same thing`,
	RunE: func(cmd *cobra.Command, args []string) error {
		goals, err := repo.ListGoals()
		if err != nil {
			return fmt.Errorf("failed to list goals: %w", err)
		}

		if len(goals) == 0 {
			fmt.Println("No goals yet. Create one with 'grata add <title>'.")
			return nil
		}

		targetDays := cfg.GetTargetDays()
		faint := color.New(color.Faint)
		green := color.New(color.FgGreen)

		for _, g := range goals {
			count, err := ledger.LoggedCount(g.ID)
			if err != nil {
				color.Yellow("⚠ could not read progress for %s: %v", g.ID.String()[:8], err)
				count = 0
			}
			frac, err := ledger.Progress(g.ID, targetDays)
			if err != nil {
				frac = 0
			}
			loggedToday, err := ledger.IsLoggedToday(g.ID)
			if err != nil {
				loggedToday = false
			}

			today := ""
			if loggedToday {
				today = green.Sprint(" ✓ today")
			}

			fmt.Printf("%s %s %s %s  day %d%s\n",
				faint.Sprint(g.ID.String()[:8]),
				renderBar(frac, 10),
				fmt.Sprintf("%2d/%d", count, targetDays),
				g.Title,
				g.CurrentDay(time.Now()),
				today)
		}

		return nil
	},
}

// renderBar draws a fixed-width progress bar for a fraction in [0, 1].
func renderBar(frac float64, width int) string {
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	filled := int(frac * float64(width))
	return "[" + strings.Repeat("█", filled) + strings.Repeat("·", width-filled) + "]"
}

func init() {
	rootCmd.AddCommand(listCmd)
}
