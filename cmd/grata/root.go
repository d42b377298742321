// ABOUTME: Root Cobra command for grata CLI.
// ABOUTME: Owns repository and ledger lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TanmayDabhade/grata/internal/config"
	"github.com/TanmayDabhade/grata/internal/kv"
	"github.com/TanmayDabhade/grata/internal/progress"
	"github.com/TanmayDabhade/grata/internal/storage"
)

var (
	cfg           *config.Config
	repo          storage.Repository
	progressStore *kv.Store
	ledger        *progress.Ledger
)

var rootCmd = &cobra.Command{
	Use:   "grata",
	Short: "Daily goal and habit tracker",
	Long: `Grata is a CLI tool for building habits: create goals, log each day
you follow through, and watch your progress add up.

QUICK START:

  $ grata add "Read every day" --detail "20 pages"   # Create a goal
  $ grata list                                       # See goals and progress
  $ grata log a1b2c3d4                               # Log today's completion
  $ grata stats                                      # Cross-goal analytics

PROGRESS:

  Each goal tracks which calendar days you logged it. Logging twice in one
  day is a no-op; progress is logged days against a target (default 30).

  $ grata log a1b2c3d4       # First call today: logged
  $ grata log a1b2c3d4       # Second call today: already logged
  $ grata clear a1b2c3d4     # Wipe a goal's logged days

SOCIAL:

  $ grata comment add a1b2c3d4 "Day 10 done!"   # Comment on a goal
  $ grata community list --search fitness       # Browse communities
  $ grata follow harper                         # Follow a user
  $ grata notifications                         # Activity feed

MCP INTEGRATION:

  Run 'grata mcp' to start the Model Context Protocol server for use with
  Claude Desktop or other MCP-compatible AI assistants. Add to your Claude
  config:

  {
    "mcpServers": {
      "grata": { "command": "grata", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Goals and social data live in SQLite at ~/.local/share/grata/grata.db.
  Daily progress logs live in a local key-value store next to it.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip storage init for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		repo, err = cfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}

		progressStore, err = cfg.OpenProgressStore()
		if err != nil {
			_ = repo.Close()
			return fmt.Errorf("failed to open progress store: %w", err)
		}

		ledger = progress.NewLedger(progressStore)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if progressStore != nil {
			if err := progressStore.Close(); err != nil {
				return err
			}
		}
		if repo != nil {
			return repo.Close()
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
