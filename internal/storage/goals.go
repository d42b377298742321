// ABOUTME: Goal CRUD operations for SQLite storage.
// ABOUTME: Implements Repository interface methods for goals.
package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/TanmayDabhade/grata/internal/models"
)

// CreateGoal stores a new goal in the database.
func (d *DB) CreateGoal(g *models.Goal) error {
	query := `
		INSERT INTO goals (id, title, detail, date_created, created_at)
		VALUES (?, ?, ?, ?, ?)
	`
	_, err := d.db.Exec(query,
		g.ID.String(),
		g.Title,
		g.Detail,
		g.DateCreated.Format(time.RFC3339),
		g.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("create goal: %w", err)
	}
	return nil
}

// GetGoal retrieves a goal by ID or ID prefix.
func (d *DB) GetGoal(idOrPrefix string) (*models.Goal, error) {
	id, err := d.resolveID("goals", idOrPrefix)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, title, detail, date_created, created_at
		FROM goals
		WHERE id = ?
	`
	return d.scanGoal(d.db.QueryRow(query, id))
}

// ListGoals retrieves all goals sorted by creation date descending
// (newest first).
func (d *DB) ListGoals() ([]*models.Goal, error) {
	query := `
		SELECT id, title, detail, date_created, created_at
		FROM goals
		ORDER BY date_created DESC
	`
	rows, err := d.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	defer rows.Close()

	var goals []*models.Goal
	for rows.Next() {
		g, err := d.scanGoalRows(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

// DeleteGoal removes a goal by ID or prefix. Comments on the goal cascade.
// The caller is responsible for clearing the goal's progress logs; the
// repository has no view of the ledger.
func (d *DB) DeleteGoal(idOrPrefix string) error {
	id, err := d.resolveID("goals", idOrPrefix)
	if err != nil {
		return fmt.Errorf("delete goal: %w", err)
	}

	result, err := d.db.Exec("DELETE FROM goals WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete goal: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete goal: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("not found: %s", idOrPrefix)
	}
	return nil
}

// resolveID finds the full ID from a prefix in the given table.
func (d *DB) resolveID(table, idOrPrefix string) (string, error) {
	// If it looks like a full UUID, use it directly
	if len(idOrPrefix) == 36 && strings.Count(idOrPrefix, "-") == 4 {
		return idOrPrefix, nil
	}

	// Search by prefix
	query := fmt.Sprintf(`SELECT id FROM %s WHERE id LIKE ? || '%%'`, table)
	rows, err := d.db.Query(query, idOrPrefix)
	if err != nil {
		return "", fmt.Errorf("resolve id: %w", err)
	}
	defer rows.Close()

	var matches []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return "", fmt.Errorf("resolve id: %w", err)
		}
		matches = append(matches, id)
	}
	if err := rows.Err(); err != nil {
		return "", fmt.Errorf("resolve id: %w", err)
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("not found: %s", idOrPrefix)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("ambiguous prefix %s matches %d ids", idOrPrefix, len(matches))
	}
}

func (d *DB) scanGoal(row *sql.Row) (*models.Goal, error) {
	var g models.Goal
	var idStr, dateCreated, createdAt string

	err := row.Scan(&idStr, &g.Title, &g.Detail, &dateCreated, &createdAt)
	if err != nil {
		return nil, err
	}
	return d.finishGoal(&g, idStr, dateCreated, createdAt)
}

func (d *DB) scanGoalRows(rows *sql.Rows) (*models.Goal, error) {
	var g models.Goal
	var idStr, dateCreated, createdAt string

	err := rows.Scan(&idStr, &g.Title, &g.Detail, &dateCreated, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("scan goal: %w", err)
	}
	return d.finishGoal(&g, idStr, dateCreated, createdAt)
}

func (d *DB) finishGoal(g *models.Goal, idStr, dateCreated, createdAt string) (*models.Goal, error) {
	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, fmt.Errorf("parse goal id: %w", err)
	}
	g.ID = id

	g.DateCreated, err = parseTimestamp(dateCreated)
	if err != nil {
		return nil, fmt.Errorf("parse date_created: %w", err)
	}
	g.CreatedAt, err = parseTimestamp(createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	return g, nil
}

// parseTimestamp parses timestamps written by this store (RFC3339) as well
// as SQLite's CURRENT_TIMESTAMP default format.
func parseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02 15:04:05", s)
}
