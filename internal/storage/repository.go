// ABOUTME: Repository interface for goal and social data storage.
// ABOUTME: Defines contract for goals, comments, notifications, and communities.
package storage

import (
	"github.com/google/uuid"

	"github.com/TanmayDabhade/grata/internal/models"
)

// Repository defines the storage interface for goal and social data.
// This interface allows swapping implementations (e.g., for testing).
type Repository interface {
	// Goal operations
	CreateGoal(g *models.Goal) error
	GetGoal(idOrPrefix string) (*models.Goal, error)
	ListGoals() ([]*models.Goal, error)
	DeleteGoal(idOrPrefix string) error

	// Comment operations
	CreateComment(c *models.Comment) error
	GetComment(idOrPrefix string) (*models.Comment, error)
	ListComments(goalID uuid.UUID) ([]*models.Comment, error)
	LikeComment(idOrPrefix string) (*models.Comment, error)
	ReportComment(idOrPrefix string) error

	// Notification operations
	CreateNotification(n *models.Notification) error
	ListNotifications(unreadOnly bool, limit int) ([]*models.Notification, error)
	MarkNotificationRead(idOrPrefix string) error

	// Community operations
	CreateCommunity(c *models.Community) error
	ListCommunities(search string) ([]*models.Community, error)
	SetCommunityJoined(idOrPrefix string, joined bool) (*models.Community, error)

	// Export/Import
	GetAllData() (*ExportData, error)
	ImportData(data *ExportData) error

	// Lifecycle
	Close() error
}
