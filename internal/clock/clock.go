// Package clock provides an injectable time source so invoice dates
// stay deterministic under test.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// NewSystem returns a Clock backed by time.Now.
func NewSystem() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

type fixedClock struct {
	instant time.Time
}

// NewFixed returns a Clock pinned to a single instant, for tests.
func NewFixed(t time.Time) Clock {
	return fixedClock{instant: t}
}

func (f fixedClock) Now() time.Time {
	return f.instant
}
