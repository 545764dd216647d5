package config

import (
	"log"

	"github.com/hydrate-app/hydrate/internal/models"
)

// LoadSettings loads settings.json from the storage root. Missing keys keep
// their default values; a missing or malformed file yields full defaults.
// The second return value reports whether a settings file existed (false
// means first run).
func LoadSettings(storage *Storage) (*models.Settings, bool) {
	path := storage.SettingsFile()
	settings := models.NewSettings()

	if !FileExists(path) {
		return settings, false
	}

	// Unmarshalling into the defaults struct merges: keys present in the
	// file overwrite, absent keys keep defaults.
	if err := LoadJSON(path, settings); err != nil {
		log.Printf("Ignoring unreadable settings file: %v", err)
		return models.NewSettings(), true
	}

	return settings.Normalize(), true
}

// SaveSettings writes the settings to settings.json synchronously.
func SaveSettings(storage *Storage, settings *models.Settings) error {
	return SaveJSON(storage.SettingsFile(), settings)
}
