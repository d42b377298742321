// ABOUTME: Community operations for SQLite storage.
// ABOUTME: Supports listing with case-insensitive search and join/leave toggling.
package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/TanmayDabhade/grata/internal/models"
)

// CreateCommunity stores a new community in the database.
func (d *DB) CreateCommunity(c *models.Community) error {
	query := `
		INSERT INTO communities (id, title, detail, grp, joined, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err := d.db.Exec(query,
		c.ID.String(),
		c.Title,
		c.Detail,
		c.Group,
		c.Joined,
		c.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("create community: %w", err)
	}
	return nil
}

// ListCommunities retrieves communities sorted by title. A non-empty search
// term filters case-insensitively on title, detail, and group.
func (d *DB) ListCommunities(search string) ([]*models.Community, error) {
	query := `
		SELECT id, title, detail, grp, joined, created_at
		FROM communities
	`
	var args []interface{}
	if search != "" {
		query += `
		WHERE title LIKE '%' || ? || '%' COLLATE NOCASE
		   OR detail LIKE '%' || ? || '%' COLLATE NOCASE
		   OR grp LIKE '%' || ? || '%' COLLATE NOCASE
		`
		args = append(args, search, search, search)
	}
	query += " ORDER BY title ASC"

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list communities: %w", err)
	}
	defer rows.Close()

	var communities []*models.Community
	for rows.Next() {
		var c models.Community
		var idStr, createdAt string

		err := rows.Scan(&idStr, &c.Title, &c.Detail, &c.Group, &c.Joined, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("scan community: %w", err)
		}

		id, err := uuid.Parse(idStr)
		if err != nil {
			return nil, fmt.Errorf("parse community id: %w", err)
		}
		c.ID = id

		c.CreatedAt, err = parseTimestamp(createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}

		communities = append(communities, &c)
	}
	return communities, rows.Err()
}

// SetCommunityJoined sets membership on a community and returns the updated
// record.
func (d *DB) SetCommunityJoined(idOrPrefix string, joined bool) (*models.Community, error) {
	id, err := d.resolveID("communities", idOrPrefix)
	if err != nil {
		return nil, fmt.Errorf("set community joined: %w", err)
	}

	if _, err := d.db.Exec("UPDATE communities SET joined = ? WHERE id = ?", joined, id); err != nil {
		return nil, fmt.Errorf("set community joined: %w", err)
	}

	communities, err := d.ListCommunities("")
	if err != nil {
		return nil, err
	}
	for _, c := range communities {
		if c.ID.String() == id {
			return c, nil
		}
	}
	return nil, fmt.Errorf("not found: %s", idOrPrefix)
}
