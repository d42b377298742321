// ABOUTME: Export and import functionality for goal and social data.
// ABOUTME: Supports JSON and YAML export formats.
package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/TanmayDabhade/grata/internal/models"
)

// ExportData represents the full export format for grata data.
// Progress day sets are exported alongside so a backup restores both the
// goal list and the ledger.
type ExportData struct {
	Version       string                 `json:"version" yaml:"version"`
	ExportedAt    time.Time              `json:"exported_at" yaml:"exported_at"`
	Tool          string                 `json:"tool" yaml:"tool"`
	Goals         []*models.Goal         `json:"goals" yaml:"goals"`
	Comments      []*models.Comment      `json:"comments" yaml:"comments"`
	Notifications []*models.Notification `json:"notifications" yaml:"notifications"`
	Communities   []*models.Community    `json:"communities" yaml:"communities"`
	Progress      map[string][]string    `json:"progress,omitempty" yaml:"progress,omitempty"`
}

// GetAllData retrieves all repository data for export. Progress day sets
// are filled in by the caller, which owns the ledger.
func (d *DB) GetAllData() (*ExportData, error) {
	goals, err := d.ListGoals()
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}

	var comments []*models.Comment
	for _, g := range goals {
		goalComments, err := d.ListComments(g.ID)
		if err != nil {
			return nil, fmt.Errorf("list comments: %w", err)
		}
		comments = append(comments, flattenComments(goalComments)...)
	}

	notifications, err := d.ListNotifications(false, 0)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}

	communities, err := d.ListCommunities("")
	if err != nil {
		return nil, fmt.Errorf("list communities: %w", err)
	}

	return &ExportData{
		Version:       "1.0",
		ExportedAt:    time.Now(),
		Tool:          "grata",
		Goals:         goals,
		Comments:      comments,
		Notifications: notifications,
		Communities:   communities,
	}, nil
}

// ImportData imports data from an export file. Progress day sets in the
// export are restored by the caller, which owns the ledger.
func (d *DB) ImportData(data *ExportData) error {
	for _, g := range data.Goals {
		if err := d.CreateGoal(g); err != nil {
			return fmt.Errorf("import goal: %w", err)
		}
	}

	// Parents must exist before replies for foreign keys to hold.
	var replies []*models.Comment
	for _, c := range data.Comments {
		if c.ParentID != nil {
			replies = append(replies, c)
			continue
		}
		if err := d.CreateComment(c); err != nil {
			return fmt.Errorf("import comment: %w", err)
		}
	}
	for _, c := range replies {
		if err := d.CreateComment(c); err != nil {
			return fmt.Errorf("import comment: %w", err)
		}
	}

	for _, n := range data.Notifications {
		if err := d.CreateNotification(n); err != nil {
			return fmt.Errorf("import notification: %w", err)
		}
	}

	for _, c := range data.Communities {
		if err := d.CreateCommunity(c); err != nil {
			return fmt.Errorf("import community: %w", err)
		}
	}
	return nil
}

// ExportJSON serializes export data as indented JSON.
func ExportJSON(data *ExportData) ([]byte, error) {
	return json.MarshalIndent(data, "", "  ")
}

// ExportYAML serializes export data as YAML.
func ExportYAML(data *ExportData) ([]byte, error) {
	return yaml.Marshal(data)
}

// flattenComments returns comments and all nested replies as a flat list.
// Replies are detached so each comment appears exactly once in the export.
func flattenComments(comments []*models.Comment) []*models.Comment {
	var out []*models.Comment
	for _, c := range comments {
		cp := *c
		cp.Replies = nil
		out = append(out, &cp)
		out = append(out, flattenComments(c.Replies)...)
	}
	return out
}
