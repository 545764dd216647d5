package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hydrate-app/hydrate/internal/config"
)

func testWatcher(t *testing.T) (*Watcher, *config.Storage) {
	t.Helper()

	storage := config.StorageAt(t.TempDir())
	if err := storage.EnsureTree(); err != nil {
		t.Fatalf("EnsureTree: %v", err)
	}

	w, err := New(storage)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	t.Cleanup(w.Stop)

	return w, storage
}

func waitForEvent(t *testing.T, w *Watcher, want EventType) Event {
	t.Helper()

	deadline := time.After(3 * time.Second)
	for {
		select {
		case ev := <-w.Events():
			if ev.Type == want {
				return ev
			}
		case <-deadline:
			t.Fatalf("timed out waiting for event type %d", want)
		}
	}
}

func TestWatcherReportsFrameChanges(t *testing.T) {
	w, storage := testWatcher(t)

	path := filepath.Join(storage.AssetsDir(), "frame1.png")
	if err := os.WriteFile(path, []byte("not a real png"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	ev := waitForEvent(t, w, EventFramesChanged)
	if ev.Path != path {
		t.Errorf("event path = %q, want %q", ev.Path, path)
	}
}

func TestWatcherReportsSettingsChanges(t *testing.T) {
	w, storage := testWatcher(t)

	if err := os.WriteFile(storage.SettingsFile(), []byte("{}"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	waitForEvent(t, w, EventSettingsChanged)
}

func TestWatcherCoalescesBursts(t *testing.T) {
	w, storage := testWatcher(t)

	path := filepath.Join(storage.AssetsDir(), "frame2.png")
	for i := 0; i < 5; i++ {
		if err := os.WriteFile(path, []byte{byte(i)}, 0o644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}

	waitForEvent(t, w, EventFramesChanged)

	// The burst should collapse into a single event.
	select {
	case ev := <-w.Events():
		if ev.Type == EventFramesChanged {
			t.Errorf("unexpected second frames event for %q", ev.Path)
		}
	case <-time.After(2 * debounceDelay):
	}
}

func TestIsFrameAsset(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"frame1.png", true},
		{"animation.gif", true},
		{"animation.webp", true},
		{"animation.apng", false},
		{"Frame1.PNG", true},
		{"notes.txt", false},
		{"settings.json", false},
	}

	for _, tt := range tests {
		if got := isFrameAsset(tt.name); got != tt.want {
			t.Errorf("isFrameAsset(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
