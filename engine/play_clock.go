package engine

import (
	"sync"
	"time"
)

// PlayClock measures play time, excluding time spent paused
type PlayClock struct {
	mu  sync.Mutex
	now func() time.Time

	start       time.Time
	pausedAt    time.Time // Zero while running
	totalPaused time.Duration
}

// NewPlayClock starts a running clock
func NewPlayClock() *PlayClock {
	return newPlayClock(time.Now)
}

func newPlayClock(now func() time.Time) *PlayClock {
	return &PlayClock{now: now, start: now()}
}

// Elapsed returns play time; frozen at the pause point while paused
func (c *PlayClock) Elapsed() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	end := c.now()
	if !c.pausedAt.IsZero() {
		end = c.pausedAt
	}
	return end.Sub(c.start) - c.totalPaused
}

// Pause stops the clock. No-op if already paused
func (c *PlayClock) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pausedAt.IsZero() {
		c.pausedAt = c.now()
	}
}

// Resume restarts the clock and accumulates the pause. No-op if running
func (c *PlayClock) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.pausedAt.IsZero() {
		c.totalPaused += c.now().Sub(c.pausedAt)
		c.pausedAt = time.Time{}
	}
}
