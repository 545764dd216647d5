// Package app wires the scheduler, overlay, tray, watcher and settings
// window into the running application.
package app

import (
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"

	"github.com/hydrate-app/hydrate/internal/assets"
	"github.com/hydrate-app/hydrate/internal/autostart"
	"github.com/hydrate-app/hydrate/internal/buildinfo"
	"github.com/hydrate-app/hydrate/internal/cli"
	"github.com/hydrate-app/hydrate/internal/config"
	"github.com/hydrate-app/hydrate/internal/models"
	"github.com/hydrate-app/hydrate/internal/notify"
	"github.com/hydrate-app/hydrate/internal/overlay"
	"github.com/hydrate-app/hydrate/internal/scheduler"
	"github.com/hydrate-app/hydrate/internal/theme"
	"github.com/hydrate-app/hydrate/internal/tray"
	"github.com/hydrate-app/hydrate/internal/ui"
	"github.com/hydrate-app/hydrate/internal/watcher"
)

const appID = "app.hydrate.reminder"

// selfChangeWindow suppresses watcher settings events caused by our own
// saves.
const selfChangeWindow = 2 * time.Second

// App owns the long-lived pieces of the running program.
type App struct {
	storage  *config.Storage
	settings *models.Settings
	presets  []theme.Preset

	fyneApp fyne.App
	sched   *scheduler.Scheduler
	window  *overlay.Window
	tray    *tray.Tray
	watch   *watcher.Watcher

	saveMu   sync.Mutex
	lastSave time.Time

	firstRun bool
}

// Run is the entry point behind the CLI: it loads settings, applies the
// command line overrides and runs the fyne main loop until quit.
func Run(overrides cli.Overrides) error {
	storage, err := config.ResolveStorage()
	if err != nil {
		notify.Fatal(fmt.Sprintf("No writable settings directory: %v", err))
	}

	if running, info, _ := config.IsInstanceRunning(storage); running {
		log.Printf("Already running (pid %d), exiting", info.PID)
		return nil
	}

	a := &App{storage: storage}

	settings, existed := config.LoadSettings(storage)
	a.settings = settings
	a.firstRun = !existed

	if !overrides.Empty() {
		overrides.Apply(settings)
	}

	// The stored flag mirrors the actual OS registration.
	settings.AutostartEnabled = autostart.IsEnabled()

	// Persist defaults, merged keys and overrides before any UI starts.
	if err := a.persist(); err != nil {
		notify.Fatal(fmt.Sprintf("Cannot write settings: %v", err))
	}

	if err := config.SaveInstanceInfo(storage, models.NewInstanceInfo(os.Getpid(), buildinfo.Version)); err != nil {
		log.Printf("Warning: instance file: %v", err)
	}
	defer func() {
		if err := config.RemoveInstanceInfo(storage); err != nil {
			log.Printf("Warning: instance cleanup: %v", err)
		}
	}()

	if last, lerr := config.LastReminder(storage); lerr == nil && last != nil {
		log.Printf("Last reminder was at %s", last.ShownAt.Local().Format("2006-01-02 15:04:05"))
	}

	if err := assets.SeedDefaults(storage.AssetsDir()); err != nil {
		log.Printf("Warning: asset seeding failed: %v", err)
	}
	seq := assets.Load(storage.AssetsDir())
	log.Printf("Loaded %d animation frames", seq.FrameCount())

	presets, err := theme.Load(storage.Root)
	if err != nil {
		log.Printf("Warning: user theme presets ignored: %v", err)
	}
	a.presets = presets
	if a.firstRun {
		theme.Apply(settings, theme.Find(presets, settings.Theme))
	}

	a.fyneApp = fyneapp.NewWithID(appID)

	a.sched = scheduler.New(settings.ReminderInterval(), settings.RandomOffset(), func(t scheduler.Trigger) {
		source := models.TriggerScheduled
		if t == scheduler.TriggerManual {
			source = models.TriggerManual
		}
		a.showReminder(source)
	})

	a.window = overlay.NewWindow(a.fyneApp, settings, seq, a.Remaining, a.reminderDismissed)

	if icon := assets.TrayIcon(storage.AssetsDir()); icon != nil {
		a.tray = tray.Setup(a.fyneApp, a, fyne.NewStaticResource("hydrate.png", icon))
	} else {
		a.tray = tray.Setup(a.fyneApp, a, nil)
	}

	if w, err := watcher.New(storage); err == nil {
		a.watch = w
		if err := w.Start(); err != nil {
			log.Printf("Warning: asset watching disabled: %v", err)
			w.Stop()
			a.watch = nil
		} else {
			go a.watchLoop()
		}
	} else {
		log.Printf("Warning: asset watching unavailable: %v", err)
	}

	a.sched.Start()

	if settings.ShowPreviewOnLaunch {
		time.AfterFunc(settings.PreviewDelay(), func() {
			a.showReminder(models.TriggerPreview)
		})
	}
	if a.firstRun {
		a.OpenSettings()
	}

	a.fyneApp.Run()

	a.shutdown()
	return nil
}

// showReminder presents the overlay (or the notification fallback) and
// records the event in the history log.
func (a *App) showReminder(source string) {
	if a.window != nil {
		// A trigger while the overlay is already up just extends it;
		// no extra history line.
		if a.window.Visible() {
			a.window.Show()
			a.tray.Refresh()
			return
		}
		a.window.Show()
	} else {
		notify.Reminder(a.settings, "")
	}

	if err := config.AppendHistory(a.storage, models.NewHistoryEntry(source)); err != nil {
		log.Printf("Warning: history append failed: %v", err)
	}
	a.tray.Refresh()
}

// reminderDismissed runs after the overlay hides, by click or auto-hide.
func (a *App) reminderDismissed() {
	a.sched.Reset()
	a.tray.Refresh()
}

func (a *App) watchLoop() {
	for ev := range a.watch.Events() {
		switch ev.Type {
		case watcher.EventFramesChanged:
			log.Printf("Asset change detected, reloading frames")
			a.window.SetSequence(assets.Load(a.storage.AssetsDir()))
		case watcher.EventSettingsChanged:
			a.saveMu.Lock()
			ownSave := time.Since(a.lastSave) < selfChangeWindow
			a.saveMu.Unlock()
			if ownSave {
				continue
			}
			log.Printf("Settings edited on disk, reloading")
			fresh, _ := config.LoadSettings(a.storage)
			// All writes to the shared settings struct happen on the
			// main loop; the settings window edits it there too.
			fyne.DoAndWait(func() {
				*a.settings = *fresh
			})
			a.applySettings()
		}
	}
}

// persist writes the settings file and remembers when, so the watcher can
// tell our own writes from external edits.
func (a *App) persist() error {
	a.saveMu.Lock()
	defer a.saveMu.Unlock()
	a.lastSave = time.Now()
	return config.SaveSettings(a.storage, a.settings)
}

// applySettings pushes the current settings into the scheduler and overlay.
func (a *App) applySettings() {
	a.sched.Configure(a.settings.ReminderInterval(), a.settings.RandomOffset())
	if a.window != nil {
		fyne.Do(func() {
			a.window.ApplySettings(a.settings)
		})
	}
	a.tray.Refresh()
}

// settingsChanged persists and applies after an edit in the settings window.
func (a *App) settingsChanged() {
	if err := a.persist(); err != nil {
		log.Printf("Warning: settings save failed: %v", err)
	}
	if a.settings.AutostartEnabled != autostart.IsEnabled() {
		if err := autostart.Set(a.settings.AutostartEnabled); err != nil {
			log.Printf("Warning: autostart update failed: %v", err)
			a.settings.AutostartEnabled = autostart.IsEnabled()
		}
	}
	a.applySettings()
}

func (a *App) shutdown() {
	if a.watch != nil {
		a.watch.Stop()
	}
	a.tray.Stop()
	a.sched.Stop()
}

// Remaining implements tray.AppState.
func (a *App) Remaining() time.Duration {
	return a.sched.Remaining()
}

// Paused implements tray.AppState.
func (a *App) Paused() bool {
	return a.sched.Paused()
}

// AutostartEnabled implements tray.AppState.
func (a *App) AutostartEnabled() bool {
	return a.settings.AutostartEnabled
}

// ShowNow implements tray.AppState.
func (a *App) ShowNow() {
	a.sched.TriggerNow()
}

// OpenSettings implements tray.AppState.
func (a *App) OpenSettings() {
	fyne.Do(func() {
		ui.Show(a.fyneApp, a.settings, a.presets, a.monitorOptions(),
			a.settingsChanged,
			func() { a.showReminder(models.TriggerPreview) },
			nil)
	})
}

// monitorOptions lists the attached screens for the settings window's
// monitor picker. The stored monitor stays selectable even when it is not
// currently attached, so opening the window never rewrites the choice.
func (a *App) monitorOptions() []string {
	var options []string
	for i, s := range overlay.DetectScreens() {
		options = append(options, ui.MonitorLabel(i, s.ID))
	}
	stored := a.settings.MonitorID
	if stored != models.MonitorAuto && stored != "" {
		found := false
		for _, o := range options {
			if o == stored {
				found = true
				break
			}
		}
		if !found {
			options = append(options, stored)
		}
	}
	return options
}

// SetPaused implements tray.AppState.
func (a *App) SetPaused(paused bool) {
	if paused {
		a.sched.Pause()
	} else {
		a.sched.Resume()
	}
}

// SetAutostart implements tray.AppState.
func (a *App) SetAutostart(enabled bool) error {
	if err := autostart.Set(enabled); err != nil {
		return err
	}
	a.settings.AutostartEnabled = enabled
	if err := a.persist(); err != nil {
		log.Printf("Warning: settings save failed: %v", err)
	}
	return nil
}

// RequestQuit implements tray.AppState.
func (a *App) RequestQuit() {
	if a.window != nil {
		a.window.Close()
	}
	a.fyneApp.Quit()
}
