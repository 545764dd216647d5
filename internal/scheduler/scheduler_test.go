package scheduler

import (
	"math/rand"
	"sync/atomic"
	"testing"
	"time"
)

func TestDelayWithinJitterBound(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	tests := []struct {
		name     string
		interval time.Duration
		jitter   time.Duration
	}{
		{"no jitter", 45 * time.Minute, 0},
		{"small jitter", 10 * time.Minute, 30 * time.Second},
		{"jitter larger than interval", 2 * time.Second, time.Hour},
		{"one hour each", time.Hour, time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 1000; i++ {
				d := Delay(tt.interval, tt.jitter, rng)
				if d < tt.interval || d > tt.interval+tt.jitter {
					t.Fatalf("Delay(%v, %v) = %v, outside [I, I+J]", tt.interval, tt.jitter, d)
				}
			}
		})
	}
}

func TestDelayExactWithoutJitter(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if d := Delay(45*time.Minute, 0, rng); d != 45*time.Minute {
		t.Errorf("Delay(45m, 0) = %v, want exactly 45m", d)
	}
}

func TestDelayFloor(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if d := Delay(0, 0, rng); d != MinDelay {
		t.Errorf("Delay(0, 0) = %v, want floor %v", d, MinDelay)
	}
}

func TestRemainingAfterStart(t *testing.T) {
	s := New(45*time.Minute, 0, nil)
	s.Start()
	defer s.Stop()

	remaining := s.Remaining()
	if remaining <= 44*time.Minute || remaining > 45*time.Minute {
		t.Errorf("Remaining() = %v, want just under 45m", remaining)
	}
}

func TestManualTriggerFiresAndReschedules(t *testing.T) {
	var fired atomic.Int32
	var gotTrigger atomic.Int32
	s := New(45*time.Minute, 0, func(tr Trigger) {
		fired.Add(1)
		gotTrigger.Store(int32(tr))
	})
	s.Start()
	defer s.Stop()

	before := s.NextFire()
	time.Sleep(10 * time.Millisecond)
	s.TriggerNow()

	if fired.Load() != 1 {
		t.Fatalf("fired = %d, want 1", fired.Load())
	}
	if Trigger(gotTrigger.Load()) != TriggerManual {
		t.Errorf("trigger = %v, want TriggerManual", gotTrigger.Load())
	}
	if !s.NextFire().After(before) {
		t.Error("manual trigger did not reschedule from the trigger moment")
	}
}

func TestScheduledFire(t *testing.T) {
	fired := make(chan Trigger, 1)
	// Interval below the floor: fires after MinDelay.
	s := New(0, 0, func(tr Trigger) {
		select {
		case fired <- tr:
		default:
		}
	})
	s.Start()
	defer s.Stop()

	select {
	case tr := <-fired:
		if tr != TriggerScheduled {
			t.Errorf("trigger = %v, want TriggerScheduled", tr)
		}
	case <-time.After(3 * MinDelay):
		t.Fatal("scheduler did not fire")
	}

	// The schedule restarts after every fire.
	if s.Remaining() == 0 {
		t.Error("Remaining() = 0 after fire, want a fresh countdown")
	}
}

func TestPauseSuspendsFiring(t *testing.T) {
	var fired atomic.Int32
	s := New(0, 0, func(Trigger) { fired.Add(1) })
	s.Start()
	s.Pause()
	defer s.Stop()

	if !s.Paused() {
		t.Fatal("Paused() = false after Pause")
	}
	if s.Remaining() != 0 {
		t.Errorf("Remaining() = %v while paused, want 0", s.Remaining())
	}

	time.Sleep(MinDelay + 200*time.Millisecond)
	if fired.Load() != 0 {
		t.Errorf("fired %d times while paused", fired.Load())
	}

	s.Resume()
	if s.Paused() {
		t.Error("Paused() = true after Resume")
	}
	if s.Remaining() == 0 {
		t.Error("Remaining() = 0 after Resume, want a fresh countdown")
	}
}

func TestResetRestartsCountdown(t *testing.T) {
	s := New(45*time.Minute, 0, nil)
	s.Start()
	defer s.Stop()

	first := s.NextFire()
	time.Sleep(20 * time.Millisecond)
	s.Reset()

	if !s.NextFire().After(first) {
		t.Error("Reset did not move the next fire time forward")
	}
}

func TestConfigureReschedules(t *testing.T) {
	s := New(45*time.Minute, 0, nil)
	s.Start()
	defer s.Stop()

	s.Configure(10*time.Minute, 0)
	remaining := s.Remaining()
	if remaining > 10*time.Minute {
		t.Errorf("Remaining() = %v after Configure(10m), want <= 10m", remaining)
	}
}
