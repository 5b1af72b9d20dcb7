package loop

import (
	"context"
	"time"
)

// task is one periodic callback.
type task struct {
	name   string
	period time.Duration
	next   time.Time
	fn     func(now time.Time)
}

// Scheduler runs periodic tasks on a single goroutine. Tasks never run
// concurrently with each other, so the state they share needs no locks.
// A task that falls behind skips the ticks it missed instead of running
// them back to back.
type Scheduler struct {
	tasks   []*task
	now     func() time.Time
	stopped bool
}

// NewScheduler creates a scheduler reading time from now. A nil now uses
// time.Now.
func NewScheduler(now func() time.Time) *Scheduler {
	if now == nil {
		now = time.Now
	}
	return &Scheduler{now: now}
}

// Add registers fn to run every period. The first run is one period from now.
func (s *Scheduler) Add(name string, period time.Duration, fn func(now time.Time)) {
	s.tasks = append(s.tasks, &task{
		name:   name,
		period: period,
		next:   s.now().Add(period),
		fn:     fn,
	})
}

// Step runs every task due at now, in the order they were added.
func (s *Scheduler) Step(now time.Time) {
	for _, t := range s.tasks {
		if s.stopped {
			return
		}
		if now.Before(t.next) {
			continue
		}
		t.fn(now)

		t.next = t.next.Add(t.period)
		if !t.next.After(now) {
			// Behind by more than a period; drop the missed ticks.
			t.next = now.Add(t.period)
		}
	}
}

// Next returns the earliest deadline, or the zero time with no tasks.
func (s *Scheduler) Next() time.Time {
	var next time.Time
	for _, t := range s.tasks {
		if next.IsZero() || t.next.Before(next) {
			next = t.next
		}
	}
	return next
}

// Run sleeps until the next deadline and steps, until Stop is called from a
// task or ctx is done.
func (s *Scheduler) Run(ctx context.Context) error {
	timer := time.NewTimer(time.Hour)
	defer timer.Stop()

	for !s.stopped {
		if len(s.tasks) == 0 {
			<-ctx.Done()
			return ctx.Err()
		}

		timer.Reset(max(s.Next().Sub(s.now()), 0))
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
		s.Step(s.now())
	}
	return nil
}

// Stop ends Run after the current task returns. It must be called from the
// scheduler goroutine.
func (s *Scheduler) Stop() {
	s.stopped = true
}

// Stopped reports whether Stop was called.
func (s *Scheduler) Stopped() bool {
	return s.stopped
}
