package services

import (
	"sync"
	"time"
)

// Debouncer runs a function once a quiet interval has elapsed since the
// last Schedule call. Each Schedule cancels any pending unfired run, so
// at most one run is pending at a time. Flush fires a pending run
// synchronously, which keeps tests off the wall clock and lets the
// session force a save on document switch.
//
// A zero delay makes Schedule run the function synchronously.
type Debouncer struct {
	delay time.Duration

	mu      sync.Mutex
	gen     uint64
	timer   *time.Timer
	pending func()
}

// NewDebouncer creates a debouncer with the given quiet interval.
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Schedule replaces any pending run with fn, to fire after the quiet
// interval.
func (d *Debouncer) Schedule(fn func()) {
	if d.delay == 0 {
		fn()
		return
	}

	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.pending = fn
	d.timer = time.AfterFunc(d.delay, func() { d.fire(gen) })
	d.mu.Unlock()
}

// Cancel discards any pending run.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
	d.pending = nil
	d.mu.Unlock()
}

// Flush runs the pending function immediately, if any.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	fn := d.pending
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
	d.pending = nil
	d.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// Pending reports whether a run is scheduled but not yet fired.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending != nil
}

// fire runs from the timer goroutine. The generation check discards a
// fire that lost the race with a Schedule, Cancel, or Flush.
func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	if gen != d.gen {
		d.mu.Unlock()
		return
	}
	fn := d.pending
	d.pending = nil
	d.timer = nil
	d.mu.Unlock()

	if fn != nil {
		fn()
	}
}
