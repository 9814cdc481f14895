package utils

import (
	"sync"
	"time"
)

// DefaultDebounceDelay is used by Debounce when no positive interval is given.
const DefaultDebounceDelay = 500 * time.Millisecond

// Debouncer delays calls to fn until interval has passed without another call.
// Only the arguments of the last call are delivered. Safe for concurrent use.
type Debouncer[T any] struct {
	mu       sync.Mutex
	fn       func(T)
	interval time.Duration
	timer    *time.Timer
}

// Debounce wraps fn so that bursts of calls collapse into a single call.
func Debounce[T any](fn func(T), interval time.Duration) *Debouncer[T] {
	if interval <= 0 {
		interval = DefaultDebounceDelay
	}
	return &Debouncer[T]{fn: fn, interval: interval}
}

// Call schedules fn(v), replacing any pending call.
func (d *Debouncer[T]) Call(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, func() { d.fn(v) })
}

// Stop cancels a pending call, if any.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
