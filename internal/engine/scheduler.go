package engine

import (
	"slices"
	"time"
)

// Timer is a handle to a callback scheduled on a Scheduler.
type Timer struct {
	deadline time.Duration
	seq      uint64
	fn       func()
	canceled bool
	fired    bool
}

// Cancel prevents the callback from ever running. Safe to call more than once
// and after the timer fired.
func (t *Timer) Cancel() {
	if t == nil {
		return
	}
	t.canceled = true
}

// Pending reports whether the callback is still due to run.
func (t *Timer) Pending() bool {
	return t != nil && !t.canceled && !t.fired
}

// Scheduler runs deferred callbacks on the tick path. It has no goroutines;
// time only moves when Advance is called.
type Scheduler struct {
	now    time.Duration
	seq    uint64
	timers []*Timer
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the scheduler clock.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After schedules fn to run once delay has elapsed on the scheduler clock.
func (s *Scheduler) After(delay time.Duration, fn func()) *Timer {
	if delay < 0 {
		delay = 0
	}
	s.seq++
	t := &Timer{deadline: s.now + delay, seq: s.seq, fn: fn}
	s.timers = append(s.timers, t)
	return t
}

// Advance moves the clock forward by deltaTime seconds and fires every due
// timer in deadline order. Timers scheduled by a firing callback wait for the
// next Advance.
func (s *Scheduler) Advance(deltaTime float32) {
	s.now += time.Duration(float64(deltaTime) * float64(time.Second))

	var due []*Timer
	kept := s.timers[:0]
	for _, t := range s.timers {
		switch {
		case t.canceled:
		case t.deadline <= s.now:
			due = append(due, t)
		default:
			kept = append(kept, t)
		}
	}
	clear(s.timers[len(kept):])
	s.timers = kept

	slices.SortFunc(due, func(a, b *Timer) int {
		if a.deadline != b.deadline {
			if a.deadline < b.deadline {
				return -1
			}
			return 1
		}
		if a.seq < b.seq {
			return -1
		}
		return 1
	})

	for _, t := range due {
		// an earlier callback in this batch may have canceled t
		if t.canceled {
			continue
		}
		t.fired = true
		if t.fn != nil {
			t.fn()
		}
	}
}

// PendingCount returns the number of timers still waiting to fire.
func (s *Scheduler) PendingCount() int {
	n := 0
	for _, t := range s.timers {
		if t.Pending() {
			n++
		}
	}
	return n
}
