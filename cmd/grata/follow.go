// ABOUTME: CLI command for following another user.
// ABOUTME: Appends a follow entry to the notification feed.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/TanmayDabhade/grata/internal/models"
)

var followAs string

var followCmd = &cobra.Command{
	Use:   "follow <username>",
	Short: "Follow a user",
	Long: `Follow another user. The follow shows up in the notification feed.

Examples:
  grata follow harper`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target := args[0]
		if target == "" {
			return fmt.Errorf("username cannot be empty")
		}

		n := models.NewNotification(models.NotificationFollow,
			followAs, target, "👤",
			fmt.Sprintf("%s started following %s", followAs, target))
		if err := repo.CreateNotification(n); err != nil {
			return fmt.Errorf("failed to record follow: %w", err)
		}

		color.Green("✓ Following %s", target)
		return nil
	},
}

func init() {
	followCmd.Flags().StringVar(&followAs, "as", "you", "username to act as")
	rootCmd.AddCommand(followCmd)
}
