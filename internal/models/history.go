package models

import (
	"time"

	"github.com/google/uuid"
)

// Reminder trigger sources recorded in the history log.
const (
	TriggerScheduled = "scheduled"
	TriggerManual    = "manual"
	TriggerPreview   = "preview"
)

// HistoryEntry records one displayed reminder.
type HistoryEntry struct {
	ID      string    `json:"id"`
	ShownAt time.Time `json:"shown_at"`
	Trigger string    `json:"trigger"`
}

// NewHistoryEntry creates a history entry for a reminder shown now.
func NewHistoryEntry(trigger string) *HistoryEntry {
	return &HistoryEntry{
		ID:      uuid.NewString(),
		ShownAt: time.Now().UTC(),
		Trigger: trigger,
	}
}
