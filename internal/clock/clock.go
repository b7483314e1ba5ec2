// Package clock abstracts "now" so that date comparisons are testable.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

// System is the wall clock.
type System struct{}

func (System) Now() time.Time {
	return time.Now()
}

// Fixed always returns the same instant. It is used in tests.
type Fixed struct {
	FixedNow time.Time
}

func (f *Fixed) Now() time.Time {
	return f.FixedNow
}

func (f *Fixed) SetNow(now time.Time) {
	f.FixedNow = now
}
