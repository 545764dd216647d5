package config

import (
	"os"

	"github.com/hydrate-app/hydrate/internal/models"
)

// LoadInstanceInfo loads the running-instance record from instance.json.
// Returns nil if the file doesn't exist.
func LoadInstanceInfo(storage *Storage) (*models.InstanceInfo, error) {
	path := storage.InstanceFile()
	if !FileExists(path) {
		return nil, nil
	}

	var info models.InstanceInfo
	if err := LoadJSON(path, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// SaveInstanceInfo records the current process in instance.json.
func SaveInstanceInfo(storage *Storage, info *models.InstanceInfo) error {
	return SaveJSON(storage.InstanceFile(), info)
}

// RemoveInstanceInfo removes the instance.json file.
func RemoveInstanceInfo(storage *Storage) error {
	path := storage.InstanceFile()
	if !FileExists(path) {
		return nil
	}
	return os.Remove(path)
}

// IsInstanceRunning checks whether another Hydrate process is already
// running. Returns true if instance.json exists and the PID is alive.
// A stale file (dead PID) is cleaned up.
func IsInstanceRunning(storage *Storage) (bool, *models.InstanceInfo, error) {
	info, err := LoadInstanceInfo(storage)
	if err != nil {
		return false, nil, err
	}
	if info == nil {
		return false, nil, nil
	}

	if !processAlive(info.PID) {
		_ = RemoveInstanceInfo(storage)
		return false, info, nil
	}

	return true, info, nil
}
