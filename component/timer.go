package component

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// Timer is a scheduled fire-once callback.
type Timer interface {
	// Stop prevents the callback from running. It reports false when the
	// callback already started or the timer was stopped before.
	Stop() bool
}

// Scheduler creates fire-once timers.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// ClockScheduler schedules callbacks on the wall clock.
type ClockScheduler struct{}

// AfterFunc runs fn on its own goroutine once d elapsed.
func (ClockScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	t := &clockTimer{}
	t.timer = time.AfterFunc(d, func() {
		// a concurrent Stop wins over a late fire
		if t.fired.CompareAndSwap(false, true) {
			fn()
		}
	})
	return t
}

type clockTimer struct {
	timer *time.Timer
	fired atomic.Bool
}

func (t *clockTimer) Stop() bool {
	if !t.fired.CompareAndSwap(false, true) {
		return false
	}
	t.timer.Stop()
	return true
}

// ManualScheduler is a virtual clock. Callbacks only run inside Advance, on
// the caller's goroutine, in deadline order.
type ManualScheduler struct {
	mu      sync.Mutex
	now     time.Duration
	seq     uint64
	pending []*manualTimer
}

// NewManualScheduler returns a virtual clock positioned at zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

type manualTimer struct {
	sched   *ManualScheduler
	due     time.Duration
	seq     uint64
	fn      func()
	stopped bool
	fired   bool
}

// AfterFunc schedules fn to run once the clock advanced by d.
func (s *ManualScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	if d < 0 {
		d = 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	t := &manualTimer{sched: s, due: s.now + d, seq: s.seq, fn: fn}
	s.pending = append(s.pending, t)
	return t
}

func (t *manualTimer) Stop() bool {
	t.sched.mu.Lock()
	defer t.sched.mu.Unlock()
	if t.fired || t.stopped {
		return false
	}
	t.stopped = true
	t.sched.removeLocked(t)
	return true
}

func (s *ManualScheduler) removeLocked(t *manualTimer) {
	for i, p := range s.pending {
		if p == t {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return
		}
	}
}

// Now is the virtual time elapsed since creation.
func (s *ManualScheduler) Now() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

// Pending counts timers that are armed and have not fired.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Advance moves the clock forward by d, firing every timer that falls due,
// including timers scheduled by callbacks fired during this call.
func (s *ManualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	target := s.now + d
	s.mu.Unlock()
	for {
		s.mu.Lock()
		next := s.nextDueLocked(target)
		if next == nil {
			s.now = target
			s.mu.Unlock()
			return
		}
		s.now = next.due
		next.fired = true
		s.removeLocked(next)
		s.mu.Unlock()
		next.fn()
	}
}

func (s *ManualScheduler) nextDueLocked(target time.Duration) *manualTimer {
	if len(s.pending) == 0 {
		return nil
	}
	sort.SliceStable(s.pending, func(i, j int) bool {
		if s.pending[i].due == s.pending[j].due {
			return s.pending[i].seq < s.pending[j].seq
		}
		return s.pending[i].due < s.pending[j].due
	})
	if s.pending[0].due > target {
		return nil
	}
	return s.pending[0]
}

// timerSlot owns at most one pending timer. Arming or cancelling bumps the
// generation, so a callback that already left the scheduler when it was
// cancelled finds a stale generation and does nothing.
// Callers hold the owning component's lock.
type timerSlot struct {
	timer Timer
	gen   uint64
}

func (s *timerSlot) arm(sched Scheduler, d time.Duration, fire func(gen uint64)) {
	s.cancel()
	gen := s.gen
	s.timer = sched.AfterFunc(d, func() { fire(gen) })
}

func (s *timerSlot) cancel() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.gen++
}

func (s *timerSlot) active() bool {
	return s.timer != nil
}

// claim reports whether a firing callback of generation gen is still current
// and releases the slot if so.
func (s *timerSlot) claim(gen uint64) bool {
	if s.timer == nil || gen != s.gen {
		return false
	}
	s.timer = nil
	s.gen++
	return true
}
