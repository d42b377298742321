// ABOUTME: Comment, Notification, and Community models for social features.
// ABOUTME: Comments are goal-scoped; notifications record comment/follow/like activity.
package models

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType categorizes a notification feed entry.
type NotificationType string

const (
	NotificationComment NotificationType = "comment"
	NotificationFollow  NotificationType = "follow"
	NotificationLike    NotificationType = "like"
)

// AllNotificationTypes returns all valid notification types.
var AllNotificationTypes = []NotificationType{
	NotificationComment, NotificationFollow, NotificationLike,
}

// IsValidNotificationType checks if a string is a valid notification type.
func IsValidNotificationType(s string) bool {
	for _, nt := range AllNotificationTypes {
		if string(nt) == s {
			return true
		}
	}
	return false
}

// Comment represents a comment on a goal. A comment with a ParentID is a
// reply to another comment on the same goal.
type Comment struct {
	ID        uuid.UUID
	GoalID    uuid.UUID
	ParentID  *uuid.UUID
	Username  string
	AvatarURL *string
	Text      string
	Likes     int
	Reported  bool
	MediaURLs []string
	PostedAt  time.Time
	Replies   []*Comment // Populated when listing a goal's comments
}

// NewComment creates a new Comment with generated UUID and current timestamp.
func NewComment(goalID uuid.UUID, username, text string) *Comment {
	return &Comment{
		ID:       uuid.New(),
		GoalID:   goalID,
		Username: username,
		Text:     text,
		PostedAt: time.Now(),
	}
}

// WithAvatarURL sets the commenter's avatar URL.
func (c *Comment) WithAvatarURL(url string) *Comment {
	c.AvatarURL = &url
	return c
}

// WithParent marks the comment as a reply to another comment.
func (c *Comment) WithParent(parentID uuid.UUID) *Comment {
	c.ParentID = &parentID
	return c
}

// WithMediaURLs attaches media URLs to the comment.
func (c *Comment) WithMediaURLs(urls []string) *Comment {
	c.MediaURLs = urls
	return c
}

// Notification represents an entry in the activity feed.
type Notification struct {
	ID        uuid.UUID
	Type      NotificationType
	Sender    string
	Target    string
	Icon      string
	Message   string
	Read      bool
	CreatedAt time.Time
}

// NewNotification creates a new unread Notification.
func NewNotification(ntype NotificationType, sender, target, icon, message string) *Notification {
	return &Notification{
		ID:        uuid.New(),
		Type:      ntype,
		Sender:    sender,
		Target:    target,
		Icon:      icon,
		Message:   message,
		CreatedAt: time.Now(),
	}
}

// Community represents a joinable goal community.
type Community struct {
	ID        uuid.UUID
	Title     string
	Detail    string
	Group     string
	Joined    bool
	CreatedAt time.Time
}

// NewCommunity creates a new Community with generated UUID.
func NewCommunity(title, detail, group string) *Community {
	return &Community{
		ID:        uuid.New(),
		Title:     title,
		Detail:    detail,
		Group:     group,
		CreatedAt: time.Now(),
	}
}
