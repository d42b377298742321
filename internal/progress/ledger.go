// ABOUTME: Per-goal daily completion ledger backed by a string-set KV store.
// ABOUTME: Owns day-key canonicalization and the idempotent log-today operation.
package progress

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// keyPrefix namespaces ledger entries in the underlying KV store.
const keyPrefix = "goal_progress_"

// DefaultTargetDays is the default completion target for a goal.
const DefaultTargetDays = 30

// SetStore is the key-value persistence the ledger needs: a named set of
// strings per key. A missing key reads as an empty set.
type SetStore interface {
	GetStringSet(key string) (map[string]struct{}, error)
	SetStringSet(key string, set map[string]struct{}) error
	DeleteKey(key string) error
}

// Ledger records which calendar days each goal was logged on. Logging is
// idempotent per local calendar day: the first LogToday of a day inserts,
// every later call that day is a no-op.
//
// All mutations are serialized by a single mutex, so two concurrent
// LogToday calls for the same goal cannot both observe "not yet logged".
type Ledger struct {
	store SetStore
	clock Clock
	bus   *Bus

	mu sync.Mutex
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithClock overrides the wall clock. Tests use this to pin the day.
func WithClock(c Clock) Option {
	return func(l *Ledger) { l.clock = c }
}

// WithBus sets the event bus progress changes are published to.
func WithBus(b *Bus) Option {
	return func(l *Ledger) { l.bus = b }
}

// NewLedger creates a Ledger over the given store. By default it uses the
// system clock and owns a fresh event bus.
func NewLedger(store SetStore, opts ...Option) *Ledger {
	l := &Ledger{
		store: store,
		clock: systemClock{},
		bus:   NewBus(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Bus returns the event bus progress changes are published to.
func (l *Ledger) Bus() *Bus {
	return l.bus
}

// DayKey canonicalizes an instant to its calendar day in the instant's
// location, formatted as YYYY-MM-DD. Two instants within the same local
// calendar day always yield an identical key; instants on opposite sides
// of local midnight never do.
func DayKey(t time.Time) string {
	y, m, d := t.Date()
	return fmt.Sprintf("%04d-%02d-%02d", y, int(m), d)
}

// LoggedCount returns the number of distinct days logged for a goal.
// An unknown goal reads as zero.
func (l *Ledger) LoggedCount(goalID uuid.UUID) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	set, err := l.store.GetStringSet(key(goalID))
	if err != nil {
		return 0, fmt.Errorf("read progress for %s: %w", goalID, err)
	}
	return len(set), nil
}

// IsLoggedToday reports whether the goal was already logged on the current
// local calendar day.
func (l *Ledger) IsLoggedToday(goalID uuid.UUID) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	set, err := l.store.GetStringSet(key(goalID))
	if err != nil {
		return false, fmt.Errorf("read progress for %s: %w", goalID, err)
	}
	_, ok := set[DayKey(l.clock.Now())]
	return ok, nil
}

// LogToday records a completion for the current local calendar day.
// It returns true if a new day was inserted, false if today was already
// logged (no mutation). Calling it N times in one day mutates the store at
// most once and returns true exactly once.
func (l *Ledger) LogToday(goalID uuid.UUID) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	k := key(goalID)
	today := DayKey(l.clock.Now())

	set, err := l.store.GetStringSet(k)
	if err != nil {
		return false, fmt.Errorf("read progress for %s: %w", goalID, err)
	}
	if _, ok := set[today]; ok {
		return false, nil
	}

	set[today] = struct{}{}
	if err := l.store.SetStringSet(k, set); err != nil {
		return false, fmt.Errorf("write progress for %s: %w", goalID, err)
	}

	// Publish under the lock so same-goal events observe commit order.
	l.bus.Publish(Event{GoalID: goalID, Day: today})
	return true, nil
}

// Progress returns the goal's completion fraction against targetDays,
// clamped to [0, 1]. A non-positive target reads as zero rather than
// dividing by it.
func (l *Ledger) Progress(goalID uuid.UUID, targetDays int) (float64, error) {
	if targetDays <= 0 {
		return 0, nil
	}
	count, err := l.LoggedCount(goalID)
	if err != nil {
		return 0, err
	}
	frac := float64(count) / float64(targetDays)
	if frac > 1 {
		frac = 1
	}
	return frac, nil
}

// Days returns the goal's logged day keys in ascending order. Export uses
// this to serialize the ledger alongside the relational data.
func (l *Ledger) Days(goalID uuid.UUID) ([]string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	set, err := l.store.GetStringSet(key(goalID))
	if err != nil {
		return nil, fmt.Errorf("read progress for %s: %w", goalID, err)
	}
	days := make([]string, 0, len(set))
	for d := range set {
		days = append(days, d)
	}
	sort.Strings(days)
	return days, nil
}

// RestoreDays replaces the goal's day set wholesale. Import uses this to
// rehydrate the ledger; normal logging goes through LogToday.
func (l *Ledger) RestoreDays(goalID uuid.UUID, days []string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	set := make(map[string]struct{}, len(days))
	for _, d := range days {
		set[d] = struct{}{}
	}
	if err := l.store.SetStringSet(key(goalID), set); err != nil {
		return fmt.Errorf("write progress for %s: %w", goalID, err)
	}
	l.bus.Publish(Event{GoalID: goalID})
	return nil
}

// ClearAllLogs removes the goal's entire day set. Subsequent reads return
// zero. The caller wires this to goal deletion; the ledger has no view of
// goal lifecycle.
func (l *Ledger) ClearAllLogs(goalID uuid.UUID) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.store.DeleteKey(key(goalID)); err != nil {
		return fmt.Errorf("clear progress for %s: %w", goalID, err)
	}
	l.bus.Publish(Event{GoalID: goalID})
	return nil
}

func key(goalID uuid.UUID) string {
	return keyPrefix + goalID.String()
}
