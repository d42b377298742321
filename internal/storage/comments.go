// ABOUTME: Comment CRUD operations for SQLite storage.
// ABOUTME: Supports replies, likes, and reporting on goal comments.
package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/TanmayDabhade/grata/internal/models"
)

// CreateComment stores a new comment in the database.
func (d *DB) CreateComment(c *models.Comment) error {
	var parentID *string
	if c.ParentID != nil {
		s := c.ParentID.String()
		parentID = &s
	}

	mediaURLs, err := encodeMediaURLs(c.MediaURLs)
	if err != nil {
		return fmt.Errorf("create comment: %w", err)
	}

	query := `
		INSERT INTO comments (id, goal_id, parent_id, username, avatar_url, body, likes, reported, media_urls, posted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = d.db.Exec(query,
		c.ID.String(),
		c.GoalID.String(),
		parentID,
		c.Username,
		c.AvatarURL,
		c.Text,
		c.Likes,
		c.Reported,
		mediaURLs,
		c.PostedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("create comment: %w", err)
	}
	return nil
}

// GetComment retrieves a comment by ID or ID prefix.
func (d *DB) GetComment(idOrPrefix string) (*models.Comment, error) {
	id, err := d.resolveID("comments", idOrPrefix)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, goal_id, parent_id, username, avatar_url, body, likes, reported, media_urls, posted_at
		FROM comments
		WHERE id = ?
	`
	rows, err := d.db.Query(query, id)
	if err != nil {
		return nil, fmt.Errorf("get comment: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, fmt.Errorf("not found: %s", idOrPrefix)
	}
	return d.scanComment(rows)
}

// ListComments retrieves a goal's comments in posting order. Replies are
// attached to their parent comment; only top-level comments are returned
// at the slice level.
func (d *DB) ListComments(goalID uuid.UUID) ([]*models.Comment, error) {
	query := `
		SELECT id, goal_id, parent_id, username, avatar_url, body, likes, reported, media_urls, posted_at
		FROM comments
		WHERE goal_id = ?
		ORDER BY posted_at ASC
	`
	rows, err := d.db.Query(query, goalID.String())
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	var all []*models.Comment
	for rows.Next() {
		c, err := d.scanComment(rows)
		if err != nil {
			return nil, err
		}
		all = append(all, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	// Thread replies under their parents, preserving posting order.
	byID := make(map[uuid.UUID]*models.Comment, len(all))
	for _, c := range all {
		byID[c.ID] = c
	}
	var topLevel []*models.Comment
	for _, c := range all {
		if c.ParentID != nil {
			if parent, ok := byID[*c.ParentID]; ok {
				parent.Replies = append(parent.Replies, c)
				continue
			}
		}
		topLevel = append(topLevel, c)
	}
	return topLevel, nil
}

// LikeComment increments a comment's like count and returns the updated
// comment.
func (d *DB) LikeComment(idOrPrefix string) (*models.Comment, error) {
	id, err := d.resolveID("comments", idOrPrefix)
	if err != nil {
		return nil, fmt.Errorf("like comment: %w", err)
	}

	if _, err := d.db.Exec("UPDATE comments SET likes = likes + 1 WHERE id = ?", id); err != nil {
		return nil, fmt.Errorf("like comment: %w", err)
	}
	return d.GetComment(id)
}

// ReportComment flags a comment as reported.
func (d *DB) ReportComment(idOrPrefix string) error {
	id, err := d.resolveID("comments", idOrPrefix)
	if err != nil {
		return fmt.Errorf("report comment: %w", err)
	}

	if _, err := d.db.Exec("UPDATE comments SET reported = 1 WHERE id = ?", id); err != nil {
		return fmt.Errorf("report comment: %w", err)
	}
	return nil
}

func (d *DB) scanComment(rows *sql.Rows) (*models.Comment, error) {
	var c models.Comment
	var idStr, goalIDStr, postedAt string
	var parentIDStr, mediaURLs *string

	err := rows.Scan(&idStr, &goalIDStr, &parentIDStr, &c.Username, &c.AvatarURL,
		&c.Text, &c.Likes, &c.Reported, &mediaURLs, &postedAt)
	if err != nil {
		return nil, fmt.Errorf("scan comment: %w", err)
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, fmt.Errorf("parse comment id: %w", err)
	}
	c.ID = id

	goalID, err := uuid.Parse(goalIDStr)
	if err != nil {
		return nil, fmt.Errorf("parse comment goal id: %w", err)
	}
	c.GoalID = goalID

	if parentIDStr != nil {
		parentID, err := uuid.Parse(*parentIDStr)
		if err != nil {
			return nil, fmt.Errorf("parse comment parent id: %w", err)
		}
		c.ParentID = &parentID
	}

	if mediaURLs != nil && *mediaURLs != "" {
		if err := json.Unmarshal([]byte(*mediaURLs), &c.MediaURLs); err != nil {
			return nil, fmt.Errorf("decode media urls: %w", err)
		}
	}

	c.PostedAt, err = parseTimestamp(postedAt)
	if err != nil {
		return nil, fmt.Errorf("parse posted_at: %w", err)
	}
	return &c, nil
}

// encodeMediaURLs serializes media URLs as a JSON array, or nil when empty.
func encodeMediaURLs(urls []string) (*string, error) {
	if len(urls) == 0 {
		return nil, nil
	}
	data, err := json.Marshal(urls)
	if err != nil {
		return nil, fmt.Errorf("encode media urls: %w", err)
	}
	s := string(data)
	return &s, nil
}
