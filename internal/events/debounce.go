package events

import (
	"context"
	"time"
)

// DefaultDebounceInterval is the quiescent period before a debounced task runs
const DefaultDebounceInterval = 750 * time.Millisecond

// Debouncer runs a task once no reschedule happened for a quiescent interval.
// Schedule and Cancel must be called from the queue goroutine; the task also
// runs there, posted through dispatch.
type Debouncer struct {
	scheduler  Scheduler
	interval   time.Duration
	dispatch   func(Task)
	timer      Timer
	generation uint64
}

// NewDebouncer creates a Debouncer. A non-positive interval uses DefaultDebounceInterval.
func NewDebouncer(scheduler Scheduler, interval time.Duration, dispatch func(Task)) *Debouncer {
	if interval <= 0 {
		interval = DefaultDebounceInterval
	}
	return &Debouncer{
		scheduler: scheduler,
		interval:  interval,
		dispatch:  dispatch,
	}
}

// Schedule cancels any pending run and arms a new one for task
func (d *Debouncer) Schedule(task Task) {
	d.Cancel()

	gen := d.generation
	d.timer = d.scheduler.AfterFunc(d.interval, func() {
		d.dispatch(func(ctx context.Context) {
			// A fire may already be queued when Cancel runs
			if d.generation != gen {
				return
			}
			d.timer = nil
			task(ctx)
		})
	})
}

// Cancel disarms the pending run, if any
func (d *Debouncer) Cancel() {
	d.generation++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Pending reports whether a run is armed
func (d *Debouncer) Pending() bool {
	return d.timer != nil
}

// Interval returns the quiescent interval
func (d *Debouncer) Interval() time.Duration {
	return d.interval
}
