package service

import (
	"sync"
	"time"

	"economy/models"
)

type cooldownKey struct {
	action models.GameType
	userID int64
}

// cooldownTracker records the last use of each gated action.
// Entries are never evicted.
type cooldownTracker struct {
	mu       sync.Mutex
	lastUsed map[cooldownKey]time.Time
}

func newCooldownTracker() *cooldownTracker {
	return &cooldownTracker{
		lastUsed: make(map[cooldownKey]time.Time),
	}
}

// remaining returns how long the user must still wait, or zero if the action is available
func (c *cooldownTracker) remaining(action models.GameType, userID int64, window time.Duration, now time.Time) time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	last, ok := c.lastUsed[cooldownKey{action, userID}]
	if !ok {
		return 0
	}
	elapsed := now.Sub(last)
	if elapsed >= window {
		return 0
	}
	// Whole seconds elapsed are subtracted, so the wait rounds up
	return window - elapsed.Truncate(time.Second)
}

func (c *cooldownTracker) stamp(action models.GameType, userID int64, now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lastUsed[cooldownKey{action, userID}] = now
}

// check returns a CooldownError if the action is gated, otherwise stamps it
func (c *cooldownTracker) check(action models.GameType, userID int64, window time.Duration, now time.Time) error {
	if wait := c.remaining(action, userID, window, now); wait > 0 {
		return &CooldownError{Action: action, Remaining: wait}
	}
	c.stamp(action, userID, now)
	return nil
}
