package clock

import (
	"sync"
	"time"
)

// TestClock is a manually-advanced Clock for deterministic tests.
type TestClock struct {
	mu  sync.Mutex
	now time.Time

	waiters []waiter
}

type waiter struct {
	expiry time.Time
	ch     chan time.Time
}

// NewTestClock starts a TestClock at now.
func NewTestClock(now time.Time) *TestClock {
	return &TestClock{now: now}
}

func (c *TestClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// TickAfter returns a channel that fires once SetTime advances past d from
// the current time.
func (c *TestClock) TickAfter(d time.Duration) <-chan time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	ch := make(chan time.Time, 1)
	c.waiters = append(c.waiters, waiter{expiry: c.now.Add(d), ch: ch})
	return ch
}

// SetTime advances the clock to now, firing every waiter whose expiry has
// passed.
func (c *TestClock) SetTime(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = now
	remaining := c.waiters[:0]
	for _, w := range c.waiters {
		if !now.Before(w.expiry) {
			w.ch <- now
			continue
		}
		remaining = append(remaining, w)
	}
	c.waiters = remaining
}
