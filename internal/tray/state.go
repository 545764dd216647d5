// Package tray implements the system tray icon and menu.
package tray

import "time"

// AppState provides the tray's view of the running application and the
// actions its menu items invoke.
type AppState interface {
	Remaining() time.Duration
	Paused() bool
	AutostartEnabled() bool

	ShowNow()
	OpenSettings()
	SetPaused(paused bool)
	SetAutostart(enabled bool) error
	RequestQuit()
}
