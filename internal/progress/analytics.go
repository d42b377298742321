// ABOUTME: Cross-goal analytics derived from the progress ledger.
// ABOUTME: Pure read-side aggregation; never mutates ledger state.
package progress

import (
	"time"

	"github.com/TanmayDabhade/grata/internal/models"
)

// Analytics derives display-ready aggregates from a goal list and a Ledger.
// All methods are pure functions of their inputs plus current ledger state.
// A goal whose progress cannot be read counts as zero progress, matching
// the UI default of showing nothing rather than failing the whole card.
type Analytics struct {
	ledger *Ledger
}

// NewAnalytics creates an Analytics view over the given ledger.
func NewAnalytics(ledger *Ledger) *Analytics {
	return &Analytics{ledger: ledger}
}

// Stats is an immutable snapshot of the aggregates the analytics card shows.
type Stats struct {
	ActiveGoals     int     `json:"active_goals"`
	CompletedGoals  int     `json:"completed_goals"`
	AverageProgress float64 `json:"average_progress"`
	TotalDaysLogged int     `json:"total_days_logged"`
	WeeklyActive    int     `json:"weekly_active"`
}

// Snapshot computes all aggregates at once for display.
func (a *Analytics) Snapshot(goals []*models.Goal, targetDays int, now time.Time) Stats {
	return Stats{
		ActiveGoals:     a.ActiveGoalsCount(goals, targetDays),
		CompletedGoals:  a.CompletedGoalsCount(goals, targetDays),
		AverageProgress: a.AverageProgress(goals, targetDays),
		TotalDaysLogged: a.TotalDaysLogged(goals),
		WeeklyActive:    a.WeeklyActiveCount(goals, now),
	}
}

// ActiveGoalsCount counts goals still short of the target. A goal at
// exactly targetDays is completed, not active.
func (a *Analytics) ActiveGoalsCount(goals []*models.Goal, targetDays int) int {
	count := 0
	for _, g := range goals {
		if a.loggedCount(g) < targetDays {
			count++
		}
	}
	return count
}

// CompletedGoalsCount counts goals at or past the target. Together with
// ActiveGoalsCount it partitions the goal list.
func (a *Analytics) CompletedGoalsCount(goals []*models.Goal, targetDays int) int {
	count := 0
	for _, g := range goals {
		if a.loggedCount(g) >= targetDays {
			count++
		}
	}
	return count
}

// AverageProgress returns the arithmetic mean of per-goal progress in
// [0, 1]. An empty goal list reads as zero.
func (a *Analytics) AverageProgress(goals []*models.Goal, targetDays int) float64 {
	if len(goals) == 0 {
		return 0
	}
	total := 0.0
	for _, g := range goals {
		frac, err := a.ledger.Progress(g.ID, targetDays)
		if err != nil {
			continue
		}
		total += frac
	}
	return total / float64(len(goals))
}

// TotalDaysLogged sums logged days across goals. A day logged on two goals
// counts twice; this is a volume measure, not a distinct-day count.
func (a *Analytics) TotalDaysLogged(goals []*models.Goal) int {
	total := 0
	for _, g := range goals {
		total += a.loggedCount(g)
	}
	return total
}

// WeeklyActiveCount counts goals created less than 7 whole days before the
// reference instant. This is a creation-recency signal, not a measure of
// which days were actually logged this week.
func (a *Analytics) WeeklyActiveCount(goals []*models.Goal, reference time.Time) int {
	count := 0
	for _, g := range goals {
		days := int(reference.Sub(g.DateCreated).Hours() / 24)
		if days < 7 {
			count++
		}
	}
	return count
}

func (a *Analytics) loggedCount(g *models.Goal) int {
	count, err := a.ledger.LoggedCount(g.ID)
	if err != nil {
		return 0
	}
	return count
}
