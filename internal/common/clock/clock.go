package clock

import "time"

// Clock reports the current time. Game timestamps are taken through it so
// tests can pin them.
type Clock interface {
	Now() time.Time
}

// System reads the wall clock, normalised to UTC.
type System struct{}

// Now returns the current UTC time
func (System) Now() time.Time {
	return time.Now().UTC()
}

// Fixed always reports the same instant.
type Fixed time.Time

// Now returns the fixed instant
func (f Fixed) Now() time.Time {
	return time.Time(f)
}
