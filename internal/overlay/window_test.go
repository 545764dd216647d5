package overlay

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/hydrate-app/hydrate/internal/models"
)

func testWindow(t *testing.T, settings *models.Settings) *Window {
	t.Helper()

	app := test.NewApp()
	w := NewWindow(app, settings, nil, nil, nil)
	t.Cleanup(w.Close)
	return w
}

func TestApplySettingsPlacesPanelInConfiguredCorner(t *testing.T) {
	area := Rect{X: 0, Y: 0, W: 1920, H: 1040}

	settings := models.NewSettings()
	settings.Position = models.PositionBottomRight
	settings.MarginX = 24
	settings.MarginY = 32

	w := testWindow(t, settings)
	w.screens = func() []Screen {
		return []Screen{{ID: "DISPLAY1", WorkArea: area, Primary: true}}
	}
	w.ApplySettings(settings)

	if w.winSize.Width != float32(area.W) || w.winSize.Height != float32(area.H) {
		t.Errorf("window size = %v, want the %dx%d work area", w.winSize, area.W, area.H)
	}

	wantX := float32(area.W - int(w.panelSize.Width) - settings.MarginX)
	wantY := float32(area.H - int(w.panelSize.Height) - settings.MarginY)
	pos := w.panel.Position()
	if pos.X != wantX || pos.Y != wantY {
		t.Errorf("panel position = %v, want (%v,%v)", pos, wantX, wantY)
	}
}

func TestApplySettingsOffsetScreenYieldsWindowRelativePosition(t *testing.T) {
	// The secondary screen starts at x=1920; panel coordinates are
	// relative to the window spanning that screen's work area.
	settings := models.NewSettings()
	settings.Position = models.PositionTopLeft
	settings.MarginX = 10
	settings.MarginY = 10
	settings.MonitorID = "DP-2"

	w := testWindow(t, settings)
	w.screens = func() []Screen {
		return []Screen{
			{ID: "HDMI-1", WorkArea: Rect{X: 0, Y: 0, W: 1920, H: 1040}, Primary: true},
			{ID: "DP-2", WorkArea: Rect{X: 1920, Y: 0, W: 2560, H: 1400}},
		}
	}
	w.ApplySettings(settings)

	pos := w.panel.Position()
	if pos.X != 10 || pos.Y != 10 {
		t.Errorf("panel position = %v, want (10,10)", pos)
	}
}

func TestApplySettingsWithoutScreensFallsBackToPanelSizedWindow(t *testing.T) {
	settings := models.NewSettings()

	w := testWindow(t, settings)
	w.screens = func() []Screen { return nil }
	w.ApplySettings(settings)

	if w.winSize != w.panelSize {
		t.Errorf("window size = %v, want panel size %v", w.winSize, w.panelSize)
	}
	if pos := w.panel.Position(); pos.X != 0 || pos.Y != 0 {
		t.Errorf("panel position = %v, want (0,0)", pos)
	}
}

func TestApplySettingsKeepsAnIsolatedCopy(t *testing.T) {
	settings := models.NewSettings()
	w := testWindow(t, settings)

	// Edits to the caller's struct must not leak into the window until
	// the next ApplySettings; timers read the window's copy concurrently.
	settings.AutoHideMS = 123456
	if got := w.snapshot().AutoHideMS; got == settings.AutoHideMS {
		t.Fatalf("window shares the caller's settings struct (AutoHideMS = %d)", got)
	}

	w.ApplySettings(settings)
	if got := w.snapshot().AutoHideMS; got != settings.AutoHideMS {
		t.Errorf("AutoHideMS after ApplySettings = %d, want %d", got, settings.AutoHideMS)
	}
}

func TestShowAndDismissTrackVisibility(t *testing.T) {
	settings := models.NewSettings()
	settings.AnimationEnabled = false
	settings.CountdownEnabled = false

	w := testWindow(t, settings)
	w.ApplySettings(settings)

	if w.Visible() {
		t.Fatal("new window reports visible")
	}
	w.Show()
	if !w.Visible() {
		t.Fatal("Visible() = false after Show")
	}
	w.Show() // extends the visible period, stays shown
	if !w.Visible() {
		t.Fatal("Visible() = false after second Show")
	}
	w.Dismiss()
	if w.Visible() {
		t.Fatal("Visible() = true after Dismiss")
	}
}
