// Package scheduler tracks the time until the next reminder and fires a
// callback when it is due.
package scheduler

import (
	"math/rand"
	"sync"
	"time"
)

// MinDelay is the floor applied to every computed delay so a zero or
// misconfigured interval cannot busy-fire.
const MinDelay = time.Second

// Delay computes the wait until the next reminder: interval plus a uniformly
// random jitter in [0, jitter]. Values below MinDelay are raised to it.
func Delay(interval, jitter time.Duration, rng *rand.Rand) time.Duration {
	d := interval
	if jitter > 0 {
		d += time.Duration(rng.Int63n(int64(jitter) + 1))
	}
	if d < MinDelay {
		d = MinDelay
	}
	return d
}

// Trigger identifies what caused a reminder to fire.
type Trigger int

// Trigger values passed to the fire callback.
const (
	TriggerScheduled Trigger = iota
	TriggerManual
)

// Scheduler owns the reminder timer. The fire callback runs on a timer
// goroutine; callers that touch UI state must hop to the UI thread
// themselves.
type Scheduler struct {
	mu       sync.Mutex
	interval time.Duration
	jitter   time.Duration
	rng      *rand.Rand
	timer    *time.Timer
	nextFire time.Time
	paused   bool
	stopped  bool
	onFire   func(Trigger)
}

// New creates a scheduler. The callback fires for both scheduled and manual
// triggers; the schedule is always recomputed before the callback runs.
func New(interval, jitter time.Duration, onFire func(Trigger)) *Scheduler {
	return &Scheduler{
		interval: interval,
		jitter:   jitter,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		onFire:   onFire,
	}
}

// Start arms the timer for the first reminder.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = false
	s.scheduleLocked()
}

// Stop cancels the pending reminder permanently (for shutdown).
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	s.stopTimerLocked()
}

// Configure updates interval and jitter and restarts the wait from now.
func (s *Scheduler) Configure(interval, jitter time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.interval = interval
	s.jitter = jitter
	if !s.paused && !s.stopped {
		s.scheduleLocked()
	}
}

// Reset restarts the countdown from this moment, e.g. after the user
// dismissed the overlay.
func (s *Scheduler) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.paused || s.stopped {
		return
	}
	s.scheduleLocked()
}

// TriggerNow bypasses the wait: the callback fires immediately and the
// schedule restarts from this moment.
func (s *Scheduler) TriggerNow() {
	s.mu.Lock()
	if !s.paused && !s.stopped {
		s.scheduleLocked()
	}
	cb := s.onFire
	s.mu.Unlock()

	if cb != nil {
		cb(TriggerManual)
	}
}

// Pause suspends reminders until Resume. Settings are untouched.
func (s *Scheduler) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.paused {
		return
	}
	s.paused = true
	s.stopTimerLocked()
}

// Resume restarts the schedule from now.
func (s *Scheduler) Resume() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.paused {
		return
	}
	s.paused = false
	if !s.stopped {
		s.scheduleLocked()
	}
}

// Paused reports whether reminders are suspended.
func (s *Scheduler) Paused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paused
}

// Remaining returns the time until the next reminder. Zero while paused or
// once the fire moment has passed.
func (s *Scheduler) Remaining() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.paused || s.stopped || s.nextFire.IsZero() {
		return 0
	}
	d := time.Until(s.nextFire)
	if d < 0 {
		return 0
	}
	return d
}

// NextFire returns the timestamp of the next scheduled reminder.
func (s *Scheduler) NextFire() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nextFire
}

func (s *Scheduler) fire() {
	s.mu.Lock()
	if s.paused || s.stopped {
		s.mu.Unlock()
		return
	}
	s.scheduleLocked()
	cb := s.onFire
	s.mu.Unlock()

	if cb != nil {
		cb(TriggerScheduled)
	}
}

func (s *Scheduler) scheduleLocked() {
	s.stopTimerLocked()
	d := Delay(s.interval, s.jitter, s.rng)
	s.nextFire = time.Now().Add(d)
	s.timer = time.AfterFunc(d, s.fire)
}

func (s *Scheduler) stopTimerLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
