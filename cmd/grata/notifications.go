// ABOUTME: CLI command for the notification feed.
// ABOUTME: Lists comment/follow/like activity and marks entries read.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	notificationsUnread bool
	notificationsLimit  int
)

var notificationsCmd = &cobra.Command{
	Use:     "notifications",
	Aliases: []string{"notif", "n"},
	Short:   "Show the activity feed",
	Long: `Show comment, follow, and like notifications, newest first.

Examples:
  grata notifications
  grata notifications --unread
  grata notifications read e5f6a7b8`,
	RunE: func(cmd *cobra.Command, args []string) error {
		notifs, err := repo.ListNotifications(notificationsUnread, notificationsLimit)
		if err != nil {
			return fmt.Errorf("failed to list notifications: %w", err)
		}
		if len(notifs) == 0 {
			fmt.Println("No notifications.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, n := range notifs {
			marker := " "
			if !n.Read {
				marker = color.New(color.FgCyan).Sprint("●")
			}
			fmt.Printf("%s %s %s  %s %s\n",
				marker, n.Icon, n.Message,
				faint.Sprint(n.CreatedAt.Format("2006-01-02 15:04")),
				faint.Sprint(n.ID.String()[:8]))
		}
		return nil
	},
}

var notificationsReadCmd = &cobra.Command{
	Use:   "read <notification-id>",
	Short: "Mark a notification as read",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := repo.MarkNotificationRead(args[0]); err != nil {
			return fmt.Errorf("failed to mark notification read: %w", err)
		}
		color.Green("✓ Marked read")
		return nil
	},
}

func init() {
	notificationsCmd.Flags().BoolVar(&notificationsUnread, "unread", false, "only show unread notifications")
	notificationsCmd.Flags().IntVar(&notificationsLimit, "limit", 50, "maximum notifications to show")
	notificationsCmd.AddCommand(notificationsReadCmd)
	rootCmd.AddCommand(notificationsCmd)
}
