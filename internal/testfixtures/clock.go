package testfixtures

import (
	"sync"
	"time"
)

// ReferenceTime is the canonical "now" used by fixtures: Wednesday 2026-10-21 08:00 UTC.
var ReferenceTime = time.Date(2026, time.October, 21, 8, 0, 0, 0, time.UTC)

// SalonZone is a fixed UTC+7 zone for tests where the salon calendar differs from UTC.
var SalonZone = time.FixedZone("UTC+7", 7*60*60)

// Clock provides a controllable time source for tests.
type Clock struct {
	mu      sync.Mutex
	current time.Time
}

// NewClock returns a clock initialised to start, or ReferenceTime when start is zero.
func NewClock(start time.Time) *Clock {
	if start.IsZero() {
		start = ReferenceTime
	}
	return &Clock{current: start}
}

// Now returns the current instant tracked by the clock.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Set updates the clock to the provided time.
func (c *Clock) Set(t time.Time) {
	c.mu.Lock()
	c.current = t
	c.mu.Unlock()
}

// Advance moves the clock forward by d and returns the updated time.
func (c *Clock) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	c.current = c.current.Add(d)
	updated := c.current
	c.mu.Unlock()
	return updated
}

// Date returns the calendar date offset by days from ReferenceTime.
func Date(days int) time.Time {
	y, m, d := ReferenceTime.AddDate(0, 0, days).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
