// Package overlay implements the reminder overlay: screen placement,
// frame-cycling animation, entry/exit transitions, and the window itself.
package overlay

import (
	"strings"

	"github.com/hydrate-app/hydrate/internal/models"
)

// Rect is an integer rectangle in screen coordinates.
type Rect struct {
	X, Y, W, H int
}

// Screen describes one attached monitor.
type Screen struct {
	ID       string
	WorkArea Rect
	Primary  bool
}

// PickScreen resolves the configured monitor identifier against the attached
// screens. An absent or unknown monitor falls back to the primary screen,
// then to the first screen. Returns the zero Screen only when none are
// attached.
func PickScreen(screens []Screen, monitorID string) Screen {
	if len(screens) == 0 {
		return Screen{}
	}

	if monitorID != models.MonitorAuto {
		for _, s := range screens {
			if s.ID == monitorID {
				return s
			}
		}
	}

	for _, s := range screens {
		if s.Primary {
			return s
		}
	}
	return screens[0]
}

// PanelSize computes the final overlay size: the configured size, expanded
// when the measured content does not fit, never below the configured
// minimums.
func PanelSize(configuredW, configuredH, contentW, contentH int) (int, int) {
	w, h := configuredW, configuredH
	if contentW > w {
		w = contentW
	}
	if contentH > h {
		h = contentH
	}
	if w < models.MinOverlayWidth {
		w = models.MinOverlayWidth
	}
	if h < models.MinOverlayHeight {
		h = models.MinOverlayHeight
	}
	return w, h
}

// Place computes the overlay's top-left corner inside the screen work area
// for the configured corner anchor and margins, clamped so the panel stays
// fully on screen.
func Place(area Rect, w, h int, position string, marginX, marginY int) (int, int) {
	if marginX < 0 {
		marginX = 0
	}
	if marginY < 0 {
		marginY = 0
	}

	var x, y int
	if strings.Contains(position, "right") {
		x = area.X + area.W - w - marginX
	} else {
		x = area.X + marginX
	}
	if strings.Contains(position, "bottom") {
		y = area.Y + area.H - h - marginY
	} else {
		y = area.Y + marginY
	}

	x = clamp(x, area.X, area.X+area.W-w)
	y = clamp(y, area.Y, area.Y+area.H-h)
	return x, y
}

// Layout resolves the configured monitor and corner into a work area and
// the panel's top-left position inside it. ok is false when no screen
// geometry is available; the caller falls back to the driver's default
// placement.
func Layout(screens []Screen, settings *models.Settings, panelW, panelH int) (Screen, int, int, bool) {
	screen := PickScreen(screens, settings.MonitorID)
	if screen.WorkArea.W <= 0 || screen.WorkArea.H <= 0 {
		return Screen{}, 0, 0, false
	}
	x, y := Place(screen.WorkArea, panelW, panelH, settings.Position, settings.MarginX, settings.MarginY)
	return screen, x, y, true
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
