// ABOUTME: CLI commands for exporting and importing all grata data.
// ABOUTME: Export bundles relational data plus per-goal ledger day sets.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/TanmayDabhade/grata/internal/storage"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export <json|yaml>",
	Short: "Export all data",
	Long: `Export goals, comments, notifications, communities, and logged days.

Examples:
  grata export json                 # Print JSON to stdout
  grata export yaml -o backup.yaml  # Write YAML to a file`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format := strings.ToLower(args[0])
		if format != "json" && format != "yaml" {
			return fmt.Errorf("unsupported export format %q (want json or yaml)", format)
		}

		data, err := repo.GetAllData()
		if err != nil {
			return fmt.Errorf("failed to gather data: %w", err)
		}

		data.Progress = make(map[string][]string, len(data.Goals))
		for _, g := range data.Goals {
			days, err := ledger.Days(g.ID)
			if err != nil {
				return fmt.Errorf("failed to read progress for %s: %w", g.ID, err)
			}
			if len(days) > 0 {
				data.Progress[g.ID.String()] = days
			}
		}

		var out []byte
		switch format {
		case "json":
			out, err = storage.ExportJSON(data)
		case "yaml":
			out, err = storage.ExportYAML(data)
		}
		if err != nil {
			return fmt.Errorf("failed to serialize export: %w", err)
		}

		if exportOutput == "" {
			fmt.Println(string(out))
			return nil
		}
		if err := os.WriteFile(exportOutput, out, 0600); err != nil {
			return fmt.Errorf("failed to write export file: %w", err)
		}
		color.Green("✓ Exported %d goals to %s", len(data.Goals), exportOutput)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import data from an export file",
	Long: `Import a previous export. The file format is detected from its
extension (.json or .yaml/.yml).

Examples:
  grata import backup.json
  grata import backup.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read import file: %w", err)
		}

		var data storage.ExportData
		switch {
		case strings.HasSuffix(args[0], ".yaml"), strings.HasSuffix(args[0], ".yml"):
			err = yaml.Unmarshal(raw, &data)
		default:
			err = json.Unmarshal(raw, &data)
		}
		if err != nil {
			return fmt.Errorf("failed to parse import file: %w", err)
		}

		if err := repo.ImportData(&data); err != nil {
			return fmt.Errorf("failed to import data: %w", err)
		}

		for id, days := range data.Progress {
			goalID, err := uuid.Parse(id)
			if err != nil {
				return fmt.Errorf("invalid goal id %q in progress data: %w", id, err)
			}
			if err := ledger.RestoreDays(goalID, days); err != nil {
				return fmt.Errorf("failed to restore progress: %w", err)
			}
		}

		color.Green("✓ Imported %d goals, %d comments, %d communities",
			len(data.Goals), len(data.Comments), len(data.Communities))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
