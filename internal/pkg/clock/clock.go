// Package clock abstracts the current time so that date comparisons in jobs
// and use cases can be tested deterministically.
package clock

import (
	"sync"
	"time"
)

// Clock returns the current time.
type Clock interface {
	Now() time.Time
}

// System reads the wall clock, optionally converted to a fixed location.
type System struct {
	loc *time.Location
}

func NewSystem(loc *time.Location) System {
	return System{loc: loc}
}

func (s System) Now() time.Time {
	if s.loc == nil {
		return time.Now()
	}
	return time.Now().In(s.loc)
}

// Fixed is a manually driven clock for tests.
type Fixed struct {
	mu  sync.RWMutex
	now time.Time
}

func NewFixed(now time.Time) *Fixed {
	return &Fixed{now: now}
}

func (f *Fixed) Now() time.Time {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.now
}

func (f *Fixed) Set(now time.Time) {
	f.mu.Lock()
	f.now = now
	f.mu.Unlock()
}

func (f *Fixed) Advance(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)
	f.mu.Unlock()
}
