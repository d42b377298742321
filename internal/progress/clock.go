// ABOUTME: Clock abstraction for the progress ledger.
// ABOUTME: Lets tests pin specific instants and time zones deterministically.
package progress

import "time"

// Clock supplies the current instant. The ledger derives day keys from the
// calendar date of Now() in its location, so a fixed clock in a test controls
// both the instant and the time zone.
type Clock interface {
	Now() time.Time
}

// systemClock is the default Clock backed by the wall clock in local time.
type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// fixedClock returns a constant instant. Used by tests.
type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time {
	return c.t
}
