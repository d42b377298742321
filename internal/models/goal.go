// ABOUTME: Goal model for habit tracking.
// ABOUTME: Goals carry a stable UUID used as the progress ledger key.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Goal represents a habit the user is building.
// Every goal has a stable UUID assigned at creation; the progress
// ledger keys its daily logs on that identity.
type Goal struct {
	ID          uuid.UUID
	Title       string
	Detail      *string
	DateCreated time.Time
	CreatedAt   time.Time
}

// NewGoal creates a new Goal with generated UUID and current timestamp.
func NewGoal(title string) *Goal {
	now := time.Now()
	return &Goal{
		ID:          uuid.New(),
		Title:       title,
		DateCreated: now,
		CreatedAt:   now,
	}
}

// WithDetail sets the detail text on the goal.
func (g *Goal) WithDetail(detail string) *Goal {
	g.Detail = &detail
	return g
}

// WithDateCreated sets a custom creation timestamp.
func (g *Goal) WithDateCreated(t time.Time) *Goal {
	g.DateCreated = t
	return g
}

// CurrentDay returns the 1-based day number since the goal was created,
// measured in whole days up to now.
func (g *Goal) CurrentDay(now time.Time) int {
	days := int(now.Sub(g.DateCreated).Hours() / 24)
	if days < 0 {
		days = 0
	}
	return days + 1
}
