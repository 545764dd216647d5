// Package config handles settings persistence, storage paths, the
// single-instance guard, and the reminder history log.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// AppDirName is the name of the per-user Hydrate directory.
	AppDirName = "hydrate"

	// FallbackDirName is the hidden home-directory fallback used when the
	// preferred per-user config location is not writable.
	FallbackDirName = ".hydrate"

	// AssetsDirName is the directory holding the animation frames.
	AssetsDirName = "assets"
)

// File names inside the storage root.
const (
	SettingsFileName = "settings.json"
	InstanceFileName = "instance.json"
	HistoryFileName  = "history.jsonl"
)

// Storage is a resolved per-user storage root. All persisted state lives
// under it.
type Storage struct {
	Root string
}

// ResolveStorage picks the storage root: the OS per-user config directory if
// writable, otherwise a dotdir in the home directory. It creates the chosen
// directory. An error means no writable location exists at all.
func ResolveStorage() (*Storage, error) {
	var candidates []string

	if cfgDir, err := os.UserConfigDir(); err == nil {
		candidates = append(candidates, filepath.Join(cfgDir, AppDirName))
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, FallbackDirName))
	}

	var lastErr error
	for _, dir := range candidates {
		if err := ensureWritableDir(dir); err != nil {
			lastErr = err
			continue
		}
		return &Storage{Root: dir}, nil
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("no storage location available")
	}
	return nil, fmt.Errorf("failed to create a writable storage directory: %w", lastErr)
}

// StorageAt returns a Storage rooted at an explicit directory.
func StorageAt(root string) *Storage {
	return &Storage{Root: root}
}

// SettingsFile returns the path to settings.json.
func (s *Storage) SettingsFile() string {
	return filepath.Join(s.Root, SettingsFileName)
}

// InstanceFile returns the path to the instance.json single-instance guard.
func (s *Storage) InstanceFile() string {
	return filepath.Join(s.Root, InstanceFileName)
}

// HistoryFile returns the path to the reminder history log.
func (s *Storage) HistoryFile() string {
	return filepath.Join(s.Root, HistoryFileName)
}

// AssetsDir returns the path to the user asset directory.
func (s *Storage) AssetsDir() string {
	return filepath.Join(s.Root, AssetsDirName)
}

// EnsureTree creates the storage root and the assets directory.
func (s *Storage) EnsureTree() error {
	if err := os.MkdirAll(s.Root, 0o755); err != nil {
		return fmt.Errorf("failed to create storage root %s: %w", s.Root, err)
	}
	if err := os.MkdirAll(s.AssetsDir(), 0o755); err != nil {
		return fmt.Errorf("failed to create assets directory: %w", err)
	}
	return nil
}

// ensureWritableDir creates dir if needed and verifies files can be created
// in it by writing and removing a probe file.
func ensureWritableDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	probe := filepath.Join(dir, ".write-probe")
	if err := os.WriteFile(probe, nil, 0o644); err != nil {
		return err
	}
	return os.Remove(probe)
}
