package services

import (
	"sync"
	"time"
)

// TimerHandle is the disarm handle returned by a timer factory.
type TimerHandle interface {
	// Stop disarms the timer. It reports whether the timer was stopped
	// before firing.
	Stop() bool
}

// TimerFactory arms a one-shot timer that invokes fn after d.
// The default factory wraps time.AfterFunc; tests substitute a manual
// factory to fire timers deterministically.
type TimerFactory func(d time.Duration, fn func()) TimerHandle

// StdTimerFactory is the production timer factory.
func StdTimerFactory(d time.Duration, fn func()) TimerHandle {
	return time.AfterFunc(d, fn)
}

// DebounceScheduler coalesces rapid calls into a single deferred
// invocation: each Schedule cancels the previously armed timer, so only
// the last call within the quiet period fires.
type DebounceScheduler struct {
	mu       sync.Mutex
	handle   TimerHandle
	newTimer TimerFactory
}

// NewDebounceScheduler creates a scheduler using the given timer factory.
// A nil factory defaults to StdTimerFactory.
func NewDebounceScheduler(factory TimerFactory) *DebounceScheduler {
	if factory == nil {
		factory = StdTimerFactory
	}
	return &DebounceScheduler{newTimer: factory}
}

// Schedule cancels any pending invocation and arms a new timer that
// invokes fn exactly once after delay.
func (d *DebounceScheduler) Schedule(delay time.Duration, fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.handle != nil {
		d.handle.Stop()
	}
	d.handle = d.newTimer(delay, fn)
}

// Cancel disarms the pending timer, if any, without invoking it.
func (d *DebounceScheduler) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.handle != nil {
		d.handle.Stop()
		d.handle = nil
	}
}
