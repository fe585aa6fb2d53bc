package pager

import (
	"sync"
	"time"
)

// Debouncer coalesces bursts of triggers: each Trigger cancels the pending
// callback and schedules the new one after the quiet window, so only the
// most recent value survives. It is a delay-and-coalesce slot, not a queue.
// A zero window runs callbacks synchronously.
type Debouncer struct {
	mu     sync.Mutex
	window time.Duration
	timer  *time.Timer
}

func NewDebouncer(window time.Duration) *Debouncer {
	return &Debouncer{window: window}
}

func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	if d.window <= 0 {
		d.mu.Unlock()
		fn()
		return
	}
	d.timer = time.AfterFunc(d.window, fn)
	d.mu.Unlock()
}

// Stop cancels any pending callback.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.mu.Unlock()
}
