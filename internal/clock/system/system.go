// Package system provides analyzer.Clock implementations.
package system

import "time"

// Clock reads the wall clock in UTC so analyzed_at stamps do not depend on
// the host time zone.
type Clock struct{}

// New creates a Clock.
func New() *Clock {
	return &Clock{}
}

// Now returns the current UTC time.
func (Clock) Now() time.Time {
	return time.Now().UTC()
}

// Frozen always reports the same instant.
type Frozen struct {
	At time.Time
}

// NewFrozen returns a clock stuck at at.
func NewFrozen(at time.Time) *Frozen {
	return &Frozen{At: at}
}

// Now returns the frozen instant.
func (f *Frozen) Now() time.Time {
	return f.At
}
