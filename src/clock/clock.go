package clock

import (
	"sync"
	"time"
)

// Clock interface for testable time control
type Clock interface {
	Now() time.Time
}

// Real implements Clock using the time package
type Real struct{}

func (Real) Now() time.Time { return time.Now() }

// Mock allows manual control of time for testing.
type Mock struct {
	mu  sync.Mutex
	now time.Time
}

// NewMock creates a Mock starting at the given time.
func NewMock(start time.Time) *Mock {
	return &Mock{now: start}
}

func (c *Mock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *Mock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// Set jumps the clock to t.
func (c *Mock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}
