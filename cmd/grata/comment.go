// ABOUTME: CLI commands for goal comments: add, reply, list, like, report.
// ABOUTME: Comment and like actions also append to the notification feed.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/TanmayDabhade/grata/internal/models"
)

var (
	commentUsername string
	commentMedia    []string
)

var commentCmd = &cobra.Command{
	Use:     "comment",
	Aliases: []string{"c"},
	Short:   "Manage goal comments",
	Long: `Add, reply to, list, like, and report comments on goals.

Examples:
  grata comment add a1b2c3d4 "Day 10 done!"
  grata comment reply e5f6a7b8 "Nice streak"
  grata comment list a1b2c3d4
  grata comment like e5f6a7b8
  grata comment report e5f6a7b8`,
}

var commentAddCmd = &cobra.Command{
	Use:   "add <goal-id> <text>",
	Short: "Comment on a goal",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := repo.GetGoal(args[0])
		if err != nil {
			return fmt.Errorf("failed to find goal: %w", err)
		}
		text := args[1]
		if text == "" {
			return fmt.Errorf("comment text cannot be empty")
		}

		c := models.NewComment(g.ID, commentUsername, text)
		if len(commentMedia) > 0 {
			c.WithMediaURLs(commentMedia)
		}
		if err := repo.CreateComment(c); err != nil {
			return fmt.Errorf("failed to create comment: %w", err)
		}

		n := models.NewNotification(models.NotificationComment,
			commentUsername, g.Title, "💬",
			fmt.Sprintf("%s commented on %q", commentUsername, g.Title))
		if err := repo.CreateNotification(n); err != nil {
			return fmt.Errorf("comment saved but failed to record notification: %w", err)
		}

		color.Green("✓ Commented on %q", g.Title)
		return nil
	},
}

var commentReplyCmd = &cobra.Command{
	Use:   "reply <comment-id> <text>",
	Short: "Reply to a comment",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		parent, err := repo.GetComment(args[0])
		if err != nil {
			return fmt.Errorf("failed to find comment: %w", err)
		}
		text := args[1]
		if text == "" {
			return fmt.Errorf("reply text cannot be empty")
		}

		c := models.NewComment(parent.GoalID, commentUsername, text).WithParent(parent.ID)
		if err := repo.CreateComment(c); err != nil {
			return fmt.Errorf("failed to create reply: %w", err)
		}

		n := models.NewNotification(models.NotificationComment,
			commentUsername, parent.Username, "💬",
			fmt.Sprintf("%s replied to %s", commentUsername, parent.Username))
		if err := repo.CreateNotification(n); err != nil {
			return fmt.Errorf("reply saved but failed to record notification: %w", err)
		}

		color.Green("✓ Replied to %s", parent.Username)
		return nil
	},
}

var commentListCmd = &cobra.Command{
	Use:     "list <goal-id>",
	Aliases: []string{"ls"},
	Short:   "List a goal's comments",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := repo.GetGoal(args[0])
		if err != nil {
			return fmt.Errorf("failed to find goal: %w", err)
		}
		comments, err := repo.ListComments(g.ID)
		if err != nil {
			return fmt.Errorf("failed to list comments: %w", err)
		}
		if len(comments) == 0 {
			fmt.Printf("No comments on %q yet.\n", g.Title)
			return nil
		}

		bold := color.New(color.Bold)
		bold.Printf("Comments on %q\n\n", g.Title)
		for _, c := range comments {
			printComment(c, 0)
		}
		return nil
	},
}

var commentLikeCmd = &cobra.Command{
	Use:   "like <comment-id>",
	Short: "Like a comment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := repo.LikeComment(args[0])
		if err != nil {
			return fmt.Errorf("failed to like comment: %w", err)
		}

		n := models.NewNotification(models.NotificationLike,
			commentUsername, c.Username, "❤️",
			fmt.Sprintf("%s liked %s's comment", commentUsername, c.Username))
		if err := repo.CreateNotification(n); err != nil {
			return fmt.Errorf("like saved but failed to record notification: %w", err)
		}

		color.Green("✓ Liked comment by %s (%d likes)", c.Username, c.Likes)
		return nil
	},
}

var commentReportCmd = &cobra.Command{
	Use:   "report <comment-id>",
	Short: "Report a comment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := repo.ReportComment(args[0]); err != nil {
			return fmt.Errorf("failed to report comment: %w", err)
		}
		color.Yellow("⚠ Comment reported")
		return nil
	},
}

// printComment renders one comment and its replies, indented per depth.
func printComment(c *models.Comment, depth int) {
	indent := strings.Repeat("  ", depth)
	faint := color.New(color.Faint)

	flags := ""
	if c.Likes > 0 {
		flags = fmt.Sprintf(" ♥%d", c.Likes)
	}
	if c.Reported {
		flags += " [reported]"
	}

	fmt.Printf("%s%s %s%s\n", indent,
		color.New(color.Bold).Sprint(c.Username), faint.Sprint(c.ID.String()[:8]), flags)
	fmt.Printf("%s%s\n", indent, c.Text)
	for _, url := range c.MediaURLs {
		fmt.Printf("%s%s\n", indent, faint.Sprint(url))
	}
	for _, reply := range c.Replies {
		printComment(reply, depth+1)
	}
}

func init() {
	commentCmd.PersistentFlags().StringVar(&commentUsername, "as", "you", "username to act as")
	commentAddCmd.Flags().StringSliceVar(&commentMedia, "media", nil, "media URLs to attach")

	commentCmd.AddCommand(commentAddCmd)
	commentCmd.AddCommand(commentReplyCmd)
	commentCmd.AddCommand(commentListCmd)
	commentCmd.AddCommand(commentLikeCmd)
	commentCmd.AddCommand(commentReportCmd)
	rootCmd.AddCommand(commentCmd)
}
