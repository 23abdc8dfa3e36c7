// Package clock implements the system clock adapter.
package clock

import (
	"time"

	"go.trai.ch/evry/internal/core/domain"
)

// Clock implements ports.Clock against the system wall clock.
type Clock struct{}

// New creates a system Clock.
func New() *Clock {
	return &Clock{}
}

// Now returns the current time as epoch milliseconds.
func (c *Clock) Now() domain.Milliseconds {
	return domain.Milliseconds(time.Now().UnixMilli())
}
