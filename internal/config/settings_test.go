package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hydrate-app/hydrate/internal/models"
)

func testStorage(t *testing.T) *Storage {
	t.Helper()
	storage := StorageAt(t.TempDir())
	if err := storage.EnsureTree(); err != nil {
		t.Fatalf("EnsureTree: %v", err)
	}
	return storage
}

func TestLoadSettingsFirstRun(t *testing.T) {
	storage := testStorage(t)

	settings, existed := LoadSettings(storage)
	if existed {
		t.Error("existed = true for empty storage, want false")
	}
	if settings.ReminderIntervalMS != models.NewSettings().ReminderIntervalMS {
		t.Errorf("first-run settings are not defaults: %+v", settings)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	storage := testStorage(t)

	orig := models.NewSettings()
	orig.ReminderIntervalMS = 20 * 60 * 1000
	orig.AutoHideMS = 9000
	orig.Position = models.PositionTopLeft
	orig.OverlayOpacity = 0.4
	orig.MonitorID = "DP-2"
	orig.EntryAnimation = models.EntrySlide
	orig.CountdownTemplate = "T minus {remaining}"
	orig.GradientTop = models.Color{R: 10, G: 20, B: 30, A: 40}

	if err := SaveSettings(storage, orig); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}

	got, existed := LoadSettings(storage)
	if !existed {
		t.Fatal("existed = false after save")
	}
	if *got != *orig {
		t.Errorf("round trip mismatch:\n got  %+v\n want %+v", *got, *orig)
	}
}

func TestLoadSettingsMergesDefaults(t *testing.T) {
	storage := testStorage(t)

	// Partial file: only two keys set.
	partial := `{"reminder_interval_ms": 1800000, "position": "top_right"}`
	if err := os.WriteFile(storage.SettingsFile(), []byte(partial), 0o644); err != nil {
		t.Fatal(err)
	}

	settings, existed := LoadSettings(storage)
	if !existed {
		t.Fatal("existed = false")
	}
	if settings.ReminderIntervalMS != 1800000 {
		t.Errorf("interval = %d, want 1800000", settings.ReminderIntervalMS)
	}
	if settings.Position != models.PositionTopRight {
		t.Errorf("position = %q, want top_right", settings.Position)
	}

	defaults := models.NewSettings()
	if settings.AutoHideMS != defaults.AutoHideMS {
		t.Errorf("auto-hide = %d, want default %d", settings.AutoHideMS, defaults.AutoHideMS)
	}
	if settings.TitleText != defaults.TitleText {
		t.Errorf("title = %q, want default %q", settings.TitleText, defaults.TitleText)
	}
}

func TestLoadSettingsMalformedFallsBackToDefaults(t *testing.T) {
	storage := testStorage(t)

	if err := os.WriteFile(storage.SettingsFile(), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	settings, existed := LoadSettings(storage)
	if !existed {
		t.Error("existed = false, want true (file was present)")
	}
	if *settings != *models.NewSettings() {
		t.Errorf("malformed file did not fall back to defaults: %+v", settings)
	}
}

func TestLoadSettingsClampsStoredValues(t *testing.T) {
	storage := testStorage(t)

	stored := `{"overlay_opacity": 7.5, "position": "middle", "overlay_width": 5}`
	if err := os.WriteFile(storage.SettingsFile(), []byte(stored), 0o644); err != nil {
		t.Fatal(err)
	}

	settings, _ := LoadSettings(storage)
	if settings.OverlayOpacity != 1.0 {
		t.Errorf("opacity = %v, want clamped 1.0", settings.OverlayOpacity)
	}
	if settings.Position != models.PositionBottomRight {
		t.Errorf("position = %q, want fallback", settings.Position)
	}
	if settings.OverlayWidth != models.MinOverlayWidth {
		t.Errorf("width = %d, want minimum %d", settings.OverlayWidth, models.MinOverlayWidth)
	}
}

func TestEnsureTreeCreatesAssetsDir(t *testing.T) {
	storage := StorageAt(filepath.Join(t.TempDir(), "nested", "root"))
	if err := storage.EnsureTree(); err != nil {
		t.Fatalf("EnsureTree: %v", err)
	}
	info, err := os.Stat(storage.AssetsDir())
	if err != nil || !info.IsDir() {
		t.Errorf("assets dir missing after EnsureTree: %v", err)
	}
}
