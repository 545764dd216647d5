package config

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hydrate-app/hydrate/internal/models"
)

// maxHistoryEntries caps the history log; the oldest lines are dropped when
// the cap is exceeded.
const maxHistoryEntries = 500

// AppendHistory appends one reminder record to history.jsonl, trimming the
// file when it grows past the cap.
func AppendHistory(storage *Storage, entry *models.HistoryEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal history entry: %w", err)
	}

	path := storage.HistoryFile()
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open history log: %w", err)
	}
	if _, err := f.Write(append(data, '\n')); err != nil {
		f.Close()
		return fmt.Errorf("failed to append history entry: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	entries, err := ListHistory(storage)
	if err != nil {
		return err
	}
	if len(entries) > maxHistoryEntries {
		return rewriteHistory(path, entries[len(entries)-maxHistoryEntries:])
	}
	return nil
}

// ListHistory reads all history entries, oldest first. Corrupt lines are
// skipped.
func ListHistory(storage *Storage) ([]*models.HistoryEntry, error) {
	f, err := os.Open(storage.HistoryFile())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	var entries []*models.HistoryEntry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var entry models.HistoryEntry
		if err := json.Unmarshal(line, &entry); err != nil {
			continue
		}
		entries = append(entries, &entry)
	}
	return entries, scanner.Err()
}

// LastReminder returns the most recent history entry, or nil if none exists.
func LastReminder(storage *Storage) (*models.HistoryEntry, error) {
	entries, err := ListHistory(storage)
	if err != nil || len(entries) == 0 {
		return nil, err
	}
	return entries[len(entries)-1], nil
}

func rewriteHistory(path string, entries []*models.HistoryEntry) error {
	f, err := os.CreateTemp(filepath.Dir(path), "history-*")
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	for _, entry := range entries {
		data, err := json.Marshal(entry)
		if err != nil {
			f.Close()
			os.Remove(f.Name())
			return err
		}
		w.Write(data)
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		f.Close()
		os.Remove(f.Name())
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return err
	}
	return os.Rename(f.Name(), path)
}
