// Package clock lets stores stamp documents with an injectable time source
package clock

import "time"

//go:generate mockgen -destination=mock/mock.go -package=mockclock github.com/KirkDiggler/statblock-importer/internal/pkg/clock Clock

// Clock reports the current instant
type Clock interface {
	Now() time.Time
}

// System reads the wall clock
type System struct{}

func (System) Now() time.Time {
	return time.Now()
}

// New returns the system clock
func New() Clock {
	return System{}
}

// Fixed reports At forever. Tests use it for deterministic CreatedAt stamps.
type Fixed struct {
	At time.Time
}

func (c *Fixed) Now() time.Time {
	return c.At
}
