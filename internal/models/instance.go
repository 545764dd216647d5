package models

import "time"

// InstanceInfo records the running application instance.
// This corresponds to <storage root>/instance.json.
type InstanceInfo struct {
	PID       int       `json:"pid"`
	StartedAt time.Time `json:"started_at"`
	Version   string    `json:"version"`
}

// NewInstanceInfo creates instance info for the current process.
func NewInstanceInfo(pid int, version string) *InstanceInfo {
	return &InstanceInfo{
		PID:       pid,
		StartedAt: time.Now().UTC(),
		Version:   version,
	}
}
