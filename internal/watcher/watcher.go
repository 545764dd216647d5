// Package watcher observes the on-disk assets and settings for changes.
package watcher

import (
	"log"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/hydrate-app/hydrate/internal/config"
)

// EventType represents the type of file system event.
type EventType int

// Event types for file system changes.
const (
	EventFramesChanged EventType = iota
	EventSettingsChanged
)

// Event represents a file system change event.
type Event struct {
	Type EventType
	Path string
}

// debounceDelay coalesces bursts of writes (editors and image tools often
// write several times when saving a file).
const debounceDelay = 250 * time.Millisecond

// Watcher watches the storage tree for changes to animation frames and
// the settings file.
type Watcher struct {
	fsWatcher  *fsnotify.Watcher
	storage    *config.Storage
	eventsChan chan Event
	done       chan struct{}
	debounce   map[EventType]*time.Timer
	debounceMu sync.Mutex
}

// New creates a new file system watcher over the given storage tree.
func New(storage *config.Storage) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsWatcher:  fsWatcher,
		storage:    storage,
		eventsChan: make(chan Event, 16),
		done:       make(chan struct{}),
		debounce:   make(map[EventType]*time.Timer),
	}

	return w, nil
}

// Events returns the channel for receiving events.
func (w *Watcher) Events() <-chan Event {
	return w.eventsChan
}

// Start begins watching the assets directory and the settings file's
// directory.
func (w *Watcher) Start() error {
	if err := w.fsWatcher.Add(w.storage.AssetsDir()); err != nil {
		return err
	}
	if err := w.fsWatcher.Add(w.storage.Root); err != nil {
		log.Printf("Warning: failed to watch config dir: %v", err)
	}

	go w.processEvents()

	return nil
}

// Stop stops the watcher.
func (w *Watcher) Stop() {
	close(w.done)
	_ = w.fsWatcher.Close()
}

// processEvents processes file system events.
func (w *Watcher) processEvents() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.Printf("Watcher error: %v", err)
		}
	}
}

// handleEvent classifies and debounces a single file system event.
func (w *Watcher) handleEvent(event fsnotify.Event) {
	// Accept write, create, remove, and rename events. Rename matters for
	// atomic saves (write tmp, rename over target), which only produce a
	// Rename on the destination.
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return
	}

	filename := filepath.Base(event.Name)
	dir := filepath.Dir(event.Name)

	switch {
	case dir == w.storage.AssetsDir() && isFrameAsset(filename):
		w.debounceEvent(EventFramesChanged, event.Name)
	case filename == config.SettingsFileName:
		w.debounceEvent(EventSettingsChanged, event.Name)
	}
}

// isFrameAsset reports whether a filename could feed the animation loader.
func isFrameAsset(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png", ".gif", ".webp":
		return true
	}
	return false
}

// debounceEvent coalesces events of the same type.
func (w *Watcher) debounceEvent(eventType EventType, path string) {
	w.debounceMu.Lock()
	defer w.debounceMu.Unlock()

	if timer, ok := w.debounce[eventType]; ok {
		timer.Stop()
	}

	w.debounce[eventType] = time.AfterFunc(debounceDelay, func() {
		w.debounceMu.Lock()
		delete(w.debounce, eventType)
		w.debounceMu.Unlock()

		select {
		case w.eventsChan <- Event{Type: eventType, Path: path}:
		case <-w.done:
		}
	})
}
