// ABOUTME: Notification feed operations for SQLite storage.
// ABOUTME: Notifications record comment, follow, and like activity.
package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/TanmayDabhade/grata/internal/models"
)

// CreateNotification stores a new notification in the database.
func (d *DB) CreateNotification(n *models.Notification) error {
	query := `
		INSERT INTO notifications (id, type, sender, target, icon, message, read, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := d.db.Exec(query,
		n.ID.String(),
		string(n.Type),
		n.Sender,
		n.Target,
		n.Icon,
		n.Message,
		n.Read,
		n.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("create notification: %w", err)
	}
	return nil
}

// ListNotifications retrieves notifications, newest first, optionally
// restricted to unread entries.
func (d *DB) ListNotifications(unreadOnly bool, limit int) ([]*models.Notification, error) {
	query := `
		SELECT id, type, sender, target, icon, message, read, created_at
		FROM notifications
	`
	if unreadOnly {
		query += " WHERE read = 0"
	}
	query += " ORDER BY created_at DESC"

	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	var notifications []*models.Notification
	for rows.Next() {
		var n models.Notification
		var idStr, ntype, createdAt string

		err := rows.Scan(&idStr, &ntype, &n.Sender, &n.Target, &n.Icon, &n.Message, &n.Read, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}

		id, err := uuid.Parse(idStr)
		if err != nil {
			return nil, fmt.Errorf("parse notification id: %w", err)
		}
		n.ID = id
		n.Type = models.NotificationType(ntype)

		n.CreatedAt, err = parseTimestamp(createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}

		notifications = append(notifications, &n)
	}
	return notifications, rows.Err()
}

// MarkNotificationRead marks a notification as read by ID or prefix.
func (d *DB) MarkNotificationRead(idOrPrefix string) error {
	id, err := d.resolveID("notifications", idOrPrefix)
	if err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}

	if _, err := d.db.Exec("UPDATE notifications SET read = 1 WHERE id = ?", id); err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	return nil
}
