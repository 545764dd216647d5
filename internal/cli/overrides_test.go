package cli

import (
	"testing"

	"github.com/hydrate-app/hydrate/internal/models"
)

func float64Ptr(v float64) *float64 { return &v }
func intPtr(v int) *int             { return &v }
func stringPtr(v string) *string    { return &v }

func TestOverridesEmpty(t *testing.T) {
	if !(Overrides{}).Empty() {
		t.Error("zero Overrides should be empty")
	}
	if (Overrides{Opacity: float64Ptr(0.5)}).Empty() {
		t.Error("Overrides with opacity should not be empty")
	}
	if (Overrides{NoPreview: true}).Empty() {
		t.Error("Overrides with no-preview should not be empty")
	}
}

func TestApplyLeavesUnsetFieldsAlone(t *testing.T) {
	settings := models.NewSettings()
	want := settings.Clone()

	(Overrides{}).Apply(settings)

	if *settings != *want {
		t.Errorf("settings changed without overrides:\ngot  %+v\nwant %+v", settings, want)
	}
}

func TestApplyUnitConversion(t *testing.T) {
	settings := models.NewSettings()

	o := Overrides{
		IntervalMinutes:  float64Ptr(30),
		AutoHideSeconds:  float64Ptr(10),
		AnimationSeconds: float64Ptr(0.1),
		RandomSeconds:    intPtr(90),
	}
	o.Apply(settings)

	if settings.ReminderIntervalMS != 30*60*1000 {
		t.Errorf("ReminderIntervalMS = %d, want %d", settings.ReminderIntervalMS, 30*60*1000)
	}
	if settings.AutoHideMS != 10_000 {
		t.Errorf("AutoHideMS = %d, want 10000", settings.AutoHideMS)
	}
	if settings.AnimationIntervalMS != 100 {
		t.Errorf("AnimationIntervalMS = %d, want 100", settings.AnimationIntervalMS)
	}
	if settings.RandomOffsetMS != 90_000 {
		t.Errorf("RandomOffsetMS = %d, want 90000", settings.RandomOffsetMS)
	}
}

func TestApplyClampsOutOfRangeValues(t *testing.T) {
	settings := models.NewSettings()

	o := Overrides{
		IntervalMinutes:  float64Ptr(0.01),
		AutoHideSeconds:  float64Ptr(0.2),
		AnimationSeconds: float64Ptr(0.001),
		RandomSeconds:    intPtr(-5),
		Width:            intPtr(10),
		Height:           intPtr(10),
		Opacity:          float64Ptr(3.0),
		MarginX:          intPtr(-4),
	}
	o.Apply(settings)

	if settings.ReminderIntervalMS != 60_000 {
		t.Errorf("ReminderIntervalMS = %d, want 60000", settings.ReminderIntervalMS)
	}
	if settings.AutoHideMS != 1000 {
		t.Errorf("AutoHideMS = %d, want 1000", settings.AutoHideMS)
	}
	if settings.AnimationIntervalMS != 50 {
		t.Errorf("AnimationIntervalMS = %d, want 50", settings.AnimationIntervalMS)
	}
	if settings.RandomOffsetMS != 0 {
		t.Errorf("RandomOffsetMS = %d, want 0", settings.RandomOffsetMS)
	}
	if settings.OverlayWidth != models.MinOverlayWidth {
		t.Errorf("OverlayWidth = %d, want %d", settings.OverlayWidth, models.MinOverlayWidth)
	}
	if settings.OverlayHeight != models.MinOverlayHeight {
		t.Errorf("OverlayHeight = %d, want %d", settings.OverlayHeight, models.MinOverlayHeight)
	}
	if settings.OverlayOpacity != 1.0 {
		t.Errorf("OverlayOpacity = %v, want 1.0", settings.OverlayOpacity)
	}
	if settings.MarginX != 0 {
		t.Errorf("MarginX = %d, want 0", settings.MarginX)
	}
}

func TestApplyEnumAndPreviewOverrides(t *testing.T) {
	settings := models.NewSettings()

	o := Overrides{
		Position:       stringPtr(models.PositionTopLeft),
		EntryAnimation: stringPtr(models.EntrySlide),
		Monitor:        stringPtr("DP-2"),
		NoPreview:      true,
	}
	o.Apply(settings)

	if settings.Position != models.PositionTopLeft {
		t.Errorf("Position = %q, want %q", settings.Position, models.PositionTopLeft)
	}
	if settings.EntryAnimation != models.EntrySlide {
		t.Errorf("EntryAnimation = %q, want %q", settings.EntryAnimation, models.EntrySlide)
	}
	if settings.MonitorID != "DP-2" {
		t.Errorf("MonitorID = %q, want DP-2", settings.MonitorID)
	}
	if settings.ShowPreviewOnLaunch {
		t.Error("ShowPreviewOnLaunch should be false after --no-preview")
	}
}

func TestApplyInvalidEnumFallsBackToDefault(t *testing.T) {
	settings := models.NewSettings()

	(Overrides{Position: stringPtr("center")}).Apply(settings)

	if settings.Position != models.PositionBottomRight {
		t.Errorf("Position = %q, want %q", settings.Position, models.PositionBottomRight)
	}
}
