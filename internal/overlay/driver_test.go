package overlay

import (
	"image"
	"sync"
	"testing"
	"time"

	"github.com/hydrate-app/hydrate/internal/assets"
)

func testSequence(n int) *assets.Sequence {
	frames := make([]image.Image, n)
	for i := range frames {
		frames[i] = image.NewRGBA(image.Rect(0, 0, 2, 2))
	}
	return &assets.Sequence{Frames: frames}
}

func TestDriverStartsAtFirstFrame(t *testing.T) {
	var mu sync.Mutex
	var delivered int

	d := NewDriver(testSequence(3), 50*time.Millisecond, func(image.Image) {
		mu.Lock()
		delivered++
		mu.Unlock()
	})
	d.Start()
	defer d.Stop()

	if d.FrameIndex() != 0 {
		t.Errorf("FrameIndex after Start = %d, want 0", d.FrameIndex())
	}
	mu.Lock()
	n := delivered
	mu.Unlock()
	if n != 1 {
		t.Errorf("delivered = %d immediately after Start, want 1", n)
	}
}

func TestDriverLoops(t *testing.T) {
	d := NewDriver(testSequence(3), 20*time.Millisecond, func(image.Image) {})
	d.Start()
	defer d.Stop()

	deadline := time.After(2 * time.Second)
	seen := make(map[int]bool)
	for len(seen) < 3 {
		select {
		case <-deadline:
			t.Fatalf("saw frames %v, want all of 0..2", seen)
		default:
		}
		seen[d.FrameIndex()] = true
		time.Sleep(5 * time.Millisecond)
	}
}

func TestDriverRestartsFromZero(t *testing.T) {
	d := NewDriver(testSequence(4), 10*time.Millisecond, func(image.Image) {})
	d.Start()

	// Let it advance, then stop and restart.
	time.Sleep(50 * time.Millisecond)
	d.Stop()

	d.Start()
	defer d.Stop()
	if d.FrameIndex() != 0 {
		t.Errorf("FrameIndex after restart = %d, want 0", d.FrameIndex())
	}
}

func TestDriverStopHaltsAdvancing(t *testing.T) {
	d := NewDriver(testSequence(4), 10*time.Millisecond, func(image.Image) {})
	d.Start()
	d.Stop()

	idx := d.FrameIndex()
	time.Sleep(60 * time.Millisecond)
	if d.FrameIndex() != idx {
		t.Errorf("frame advanced after Stop: %d -> %d", idx, d.FrameIndex())
	}
}

func TestDriverSingleFrameDoesNotCycle(t *testing.T) {
	d := NewDriver(testSequence(1), 10*time.Millisecond, func(image.Image) {})
	d.Start()
	defer d.Stop()

	time.Sleep(50 * time.Millisecond)
	if d.FrameIndex() != 0 {
		t.Errorf("single-frame sequence advanced to %d", d.FrameIndex())
	}
}

func TestDriverSetSequenceResets(t *testing.T) {
	d := NewDriver(testSequence(4), 10*time.Millisecond, func(image.Image) {})
	d.Start()
	defer d.Stop()

	time.Sleep(35 * time.Millisecond)
	d.SetSequence(testSequence(2))
	if idx := d.FrameIndex(); idx > 1 {
		t.Errorf("FrameIndex after SetSequence = %d, out of range for 2 frames", idx)
	}
}

func TestDriverEmptySequence(t *testing.T) {
	d := NewDriver(&assets.Sequence{}, 10*time.Millisecond, func(image.Image) {
		t.Error("callback fired for empty sequence")
	})
	d.Start()
	defer d.Stop()
	time.Sleep(30 * time.Millisecond)
}
