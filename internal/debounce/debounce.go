// Package debounce delays a rapidly changing value until it has been stable
// for a quiet period.
//
// A Debouncer owns at most one pending timer. Every Push cancels the pending
// emission and schedules a new one, so only the last value of a burst is
// delivered. Stop releases the timer for good; it must be called when the
// owner is torn down so no callback runs against a dead consumer.
//
// Timers fire on their own goroutine. A timer that has already fired but lost
// the race with a newer Push (or with Stop) is recognised by its generation
// number and dropped, so a stale value is never emitted after a newer one.
package debounce

import (
	"sync"
	"time"
)

// DefaultDelay is used when a non-positive delay is supplied.
const DefaultDelay = 120 * time.Millisecond

// Timer is a scheduled callback that can be cancelled.
type Timer interface {
	// Stop cancels the callback. It reports false if the callback already ran
	// or was stopped.
	Stop() bool
}

// Scheduler runs f once after d.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type wallClock struct{}

func (wallClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Option customises a Debouncer.
type Option func(*settings)

type settings struct {
	scheduler Scheduler
}

// WithScheduler replaces the wall-clock scheduler, mainly for tests.
func WithScheduler(s Scheduler) Option {
	return func(cfg *settings) {
		if s != nil {
			cfg.scheduler = s
		}
	}
}

// Debouncer emits the latest pushed value once no newer value has arrived for
// the configured delay.
type Debouncer[T any] struct {
	mu        sync.Mutex
	delay     time.Duration
	emit      func(T)
	scheduler Scheduler
	timer     Timer
	gen       uint64
	stopped   bool
}

// New returns a Debouncer that calls emit with settled values.
func New[T any](delay time.Duration, emit func(T), opts ...Option) *Debouncer[T] {
	cfg := settings{scheduler: wallClock{}}
	for _, opt := range opts {
		opt(&cfg)
	}
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Debouncer[T]{
		delay:     delay,
		emit:      emit,
		scheduler: cfg.scheduler,
	}
}

// Delay returns the quiet period.
func (d *Debouncer[T]) Delay() time.Duration {
	return d.delay
}

// Push supersedes any pending value with v.
func (d *Debouncer[T]) Push(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.timer = d.scheduler.AfterFunc(d.delay, func() {
		d.fire(gen, v)
	})
}

// Pending reports whether an emission is scheduled.
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// Stop cancels the pending emission and disables the Debouncer. Safe to call
// more than once.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

func (d *Debouncer[T]) fire(gen uint64, v T) {
	d.mu.Lock()
	if d.stopped || gen != d.gen {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	d.mu.Unlock()

	if d.emit != nil {
		d.emit(v)
	}
}
