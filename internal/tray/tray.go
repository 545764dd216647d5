package tray

import (
	"fmt"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/hydrate-app/hydrate/internal/models"
)

// refreshEvery is how often the remaining-time line is redrawn.
const refreshEvery = time.Second

// Tray owns the system tray menu. All menu mutation happens on the fyne
// main loop via fyne.Do.
type Tray struct {
	state AppState
	menu  *fyne.Menu

	remainingItem *fyne.MenuItem
	pauseItem     *fyne.MenuItem
	autostartItem *fyne.MenuItem

	done chan struct{}
}

// Setup installs the tray icon and menu. Returns nil when the current
// driver has no system tray support (mobile, some Wayland setups); the
// overlay still works without it.
func Setup(app fyne.App, state AppState, icon fyne.Resource) *Tray {
	desk, ok := app.(desktop.App)
	if !ok {
		log.Println("Warning: no system tray support on this platform")
		return nil
	}

	t := &Tray{
		state: state,
		done:  make(chan struct{}),
	}

	header := fyne.NewMenuItem("Hydrate", nil)
	header.Disabled = true

	t.remainingItem = fyne.NewMenuItem(remainingLabel(state.Remaining(), state.Paused()), nil)
	t.remainingItem.Disabled = true

	showItem := fyne.NewMenuItem("Remind me now", state.ShowNow)
	settingsItem := fyne.NewMenuItem("Settings…", state.OpenSettings)

	t.pauseItem = fyne.NewMenuItem("Pause reminders", func() {
		state.SetPaused(!state.Paused())
		t.Refresh()
	})

	t.autostartItem = fyne.NewMenuItem("Start at login", func() {
		if err := state.SetAutostart(!state.AutostartEnabled()); err != nil {
			log.Printf("Warning: autostart toggle failed: %v", err)
		}
		t.Refresh()
	})
	t.autostartItem.Checked = state.AutostartEnabled()

	quitItem := fyne.NewMenuItem("Quit", state.RequestQuit)
	quitItem.IsQuit = true

	t.menu = fyne.NewMenu("Hydrate",
		header,
		t.remainingItem,
		fyne.NewMenuItemSeparator(),
		showItem,
		settingsItem,
		fyne.NewMenuItemSeparator(),
		t.pauseItem,
		t.autostartItem,
		fyne.NewMenuItemSeparator(),
		quitItem,
	)

	desk.SetSystemTrayMenu(t.menu)
	if icon != nil {
		desk.SetSystemTrayIcon(icon)
	}

	go t.refreshLoop()

	return t
}

// Stop ends the periodic menu refresh.
func (t *Tray) Stop() {
	if t == nil {
		return
	}
	close(t.done)
}

// Refresh redraws the dynamic menu items from the current state.
func (t *Tray) Refresh() {
	if t == nil {
		return
	}
	fyne.Do(func() {
		t.remainingItem.Label = remainingLabel(t.state.Remaining(), t.state.Paused())
		if t.state.Paused() {
			t.pauseItem.Label = "Resume reminders"
		} else {
			t.pauseItem.Label = "Pause reminders"
		}
		t.autostartItem.Checked = t.state.AutostartEnabled()
		t.menu.Refresh()
	})
}

func (t *Tray) refreshLoop() {
	ticker := time.NewTicker(refreshEvery)
	defer ticker.Stop()

	for {
		select {
		case <-t.done:
			return
		case <-ticker.C:
			t.Refresh()
		}
	}
}

// remainingLabel renders the countdown line shown at the top of the menu.
func remainingLabel(remaining time.Duration, paused bool) string {
	if paused {
		return "Reminders paused"
	}
	if remaining <= 0 {
		return "Reminder due now"
	}
	return fmt.Sprintf("Next reminder in %s", models.FormatRemaining(remaining))
}
