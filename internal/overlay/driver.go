package overlay

import (
	"image"
	"sync"
	"time"

	"github.com/hydrate-app/hydrate/internal/assets"
)

// Driver cycles through an animation sequence while the overlay is visible.
// Frames are delivered to the callback from a timer goroutine; the display
// layer is responsible for hopping onto the UI thread.
type Driver struct {
	mu       sync.Mutex
	seq      *assets.Sequence
	interval time.Duration
	index    int
	running  bool
	timer    *time.Timer
	onFrame  func(image.Image)
}

// NewDriver creates a driver for the given sequence and configured cadence.
func NewDriver(seq *assets.Sequence, interval time.Duration, onFrame func(image.Image)) *Driver {
	return &Driver{
		seq:      seq,
		interval: interval,
		onFrame:  onFrame,
	}
}

// Start restarts the animation from the first frame and begins cycling.
// The first frame is delivered synchronously.
func (d *Driver) Start() {
	d.mu.Lock()
	d.stopTimerLocked()
	d.index = 0
	d.running = true
	frame, cb := d.currentLocked()
	d.armLocked()
	d.mu.Unlock()

	if cb != nil && frame != nil {
		cb(frame)
	}
}

// Stop halts frame cycling. The current frame stays on screen.
func (d *Driver) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.running = false
	d.stopTimerLocked()
}

// SetSequence swaps the animation, restarting from the first frame if the
// driver is running.
func (d *Driver) SetSequence(seq *assets.Sequence) {
	d.mu.Lock()
	d.seq = seq
	d.index = 0
	running := d.running
	frame, cb := d.currentLocked()
	if running {
		d.stopTimerLocked()
		d.armLocked()
	}
	d.mu.Unlock()

	if cb != nil && frame != nil {
		cb(frame)
	}
}

// SetInterval updates the configured cadence. Takes effect from the next
// frame.
func (d *Driver) SetInterval(interval time.Duration) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.interval = interval
}

// FrameIndex returns the index of the frame currently displayed.
func (d *Driver) FrameIndex() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.index
}

func (d *Driver) advance() {
	d.mu.Lock()
	if !d.running || d.seq == nil || len(d.seq.Frames) == 0 {
		d.mu.Unlock()
		return
	}
	d.index = (d.index + 1) % len(d.seq.Frames)
	frame, cb := d.currentLocked()
	d.armLocked()
	d.mu.Unlock()

	if cb != nil && frame != nil {
		cb(frame)
	}
}

// currentLocked returns the current frame and callback. Caller holds d.mu.
func (d *Driver) currentLocked() (image.Image, func(image.Image)) {
	if d.seq == nil || len(d.seq.Frames) == 0 {
		return nil, nil
	}
	return d.seq.Frames[d.index], d.onFrame
}

// armLocked schedules the next frame. GIF sequences carry their own per-frame
// delays; PNG series use the configured cadence. Caller holds d.mu.
func (d *Driver) armLocked() {
	if !d.running || d.seq == nil || len(d.seq.Frames) < 2 {
		return
	}
	delay := d.interval
	if d.seq.Delays != nil && d.index < len(d.seq.Delays) {
		delay = d.seq.Delays[d.index]
	}
	if delay < 10*time.Millisecond {
		delay = 10 * time.Millisecond
	}
	d.timer = time.AfterFunc(delay, d.advance)
}

func (d *Driver) stopTimerLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
