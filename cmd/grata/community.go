// ABOUTME: CLI commands for browsing and joining goal communities.
// ABOUTME: Search matches title, detail, and group case-insensitively.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/TanmayDabhade/grata/internal/models"
)

var (
	communitySearch string
	communityGroup  string
	communityDetail string
)

var communityCmd = &cobra.Command{
	Use:     "community",
	Aliases: []string{"communities"},
	Short:   "Browse and join communities",
	Long: `Browse goal communities, search them, and join or leave.

Examples:
  grata community list
  grata community list --search fitness
  grata community join a1b2c3d4
  grata community leave a1b2c3d4`,
}

var communityListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List communities",
	RunE: func(cmd *cobra.Command, args []string) error {
		communities, err := repo.ListCommunities(communitySearch)
		if err != nil {
			return fmt.Errorf("failed to list communities: %w", err)
		}
		if len(communities) == 0 {
			if communitySearch != "" {
				fmt.Printf("No communities match %q.\n", communitySearch)
			} else {
				fmt.Println("No communities yet. Create one with 'grata community add'.")
			}
			return nil
		}

		faint := color.New(color.Faint)
		green := color.New(color.FgGreen)
		for _, c := range communities {
			joined := ""
			if c.Joined {
				joined = green.Sprint(" ✓ joined")
			}
			fmt.Printf("%s %s %s%s\n",
				faint.Sprint(c.ID.String()[:8]),
				color.New(color.Bold).Sprint(c.Title),
				faint.Sprintf("(%s)", c.Group),
				joined)
			if c.Detail != "" {
				fmt.Printf("         %s\n", c.Detail)
			}
		}
		return nil
	},
}

var communityAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Create a community",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := models.NewCommunity(args[0], communityDetail, communityGroup)
		if err := repo.CreateCommunity(c); err != nil {
			return fmt.Errorf("failed to create community: %w", err)
		}
		color.Green("✓ Created community %q", c.Title)
		return nil
	},
}

var communityJoinCmd = &cobra.Command{
	Use:   "join <community-id>",
	Short: "Join a community",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := repo.SetCommunityJoined(args[0], true)
		if err != nil {
			return fmt.Errorf("failed to join community: %w", err)
		}
		color.Green("✓ Joined %q", c.Title)
		return nil
	},
}

var communityLeaveCmd = &cobra.Command{
	Use:   "leave <community-id>",
	Short: "Leave a community",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := repo.SetCommunityJoined(args[0], false)
		if err != nil {
			return fmt.Errorf("failed to leave community: %w", err)
		}
		color.Yellow("Left %q", c.Title)
		return nil
	},
}

func init() {
	communityListCmd.Flags().StringVar(&communitySearch, "search", "", "filter by title, detail, or group")
	communityAddCmd.Flags().StringVar(&communityGroup, "group", "general", "community group")
	communityAddCmd.Flags().StringVar(&communityDetail, "detail", "", "community description")

	communityCmd.AddCommand(communityListCmd)
	communityCmd.AddCommand(communityAddCmd)
	communityCmd.AddCommand(communityJoinCmd)
	communityCmd.AddCommand(communityLeaveCmd)
	rootCmd.AddCommand(communityCmd)
}
