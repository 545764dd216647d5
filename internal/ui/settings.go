// Package ui implements the settings window. Every control persists and
// applies its value as soon as it changes; there is no save button.
package ui

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/hydrate-app/hydrate/internal/models"
	"github.com/hydrate-app/hydrate/internal/theme"
)

// positionLabels maps the stored position values to menu labels.
var positionLabels = []struct {
	value string
	label string
}{
	{models.PositionBottomRight, "Bottom right"},
	{models.PositionBottomLeft, "Bottom left"},
	{models.PositionTopRight, "Top right"},
	{models.PositionTopLeft, "Top left"},
}

var animationLabels = []struct {
	value string
	label string
}{
	{models.EntryFade, "Fade"},
	{models.EntrySlide, "Slide"},
	{models.EntryPop, "Pop"},
}

// SettingsWindow edits the live settings object. The change callback runs
// after every edit, once the new values are already in the settings.
type SettingsWindow struct {
	win       fyne.Window
	settings  *models.Settings
	presets   []theme.Preset
	monitors  []string
	onChange  func()
	onPreview func()
	onClosed  func()
}

var current *SettingsWindow

// Show opens the settings window, or focuses it when already open.
func Show(app fyne.App, settings *models.Settings, presets []theme.Preset, monitors []string, onChange, onPreview, onClosed func()) {
	if current != nil {
		current.win.RequestFocus()
		return
	}

	sw := &SettingsWindow{
		settings:  settings,
		presets:   presets,
		monitors:  monitors,
		onChange:  onChange,
		onPreview: onPreview,
		onClosed:  onClosed,
	}
	current = sw

	w := app.NewWindow("Hydrate Settings")
	sw.win = w
	w.SetOnClosed(func() {
		current = nil
		if sw.onClosed != nil {
			sw.onClosed()
		}
	})

	tabs := container.NewAppTabs(
		container.NewTabItem("Timing", sw.timingTab()),
		container.NewTabItem("Appearance", sw.appearanceTab()),
		container.NewTabItem("Text", sw.textTab()),
		container.NewTabItem("System", sw.systemTab()),
	)

	preview := widget.NewButton("Preview reminder", func() {
		if sw.onPreview != nil {
			sw.onPreview()
		}
	})

	w.SetContent(container.NewPadded(container.NewBorder(nil, preview, nil, nil, tabs)))
	w.Resize(fyne.NewSize(460, 420))
	w.CenterOnScreen()
	w.Show()
}

func (sw *SettingsWindow) changed() {
	sw.settings.Normalize()
	if sw.onChange != nil {
		sw.onChange()
	}
}

// intEntry is a numeric field that writes through to a settings field on
// every valid edit.
func (sw *SettingsWindow) intEntry(value int, apply func(int)) *widget.Entry {
	e := widget.NewEntry()
	e.SetText(strconv.Itoa(value))
	e.OnChanged = func(s string) {
		if v, err := strconv.Atoi(s); err == nil {
			apply(v)
			sw.changed()
		}
	}
	return e
}

func (sw *SettingsWindow) floatEntry(value float64, apply func(float64)) *widget.Entry {
	e := widget.NewEntry()
	e.SetText(strconv.FormatFloat(value, 'f', -1, 64))
	e.OnChanged = func(s string) {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			apply(v)
			sw.changed()
		}
	}
	return e
}

func (sw *SettingsWindow) timingTab() fyne.CanvasObject {
	s := sw.settings

	interval := sw.intEntry(s.ReminderIntervalMS/60_000, func(v int) {
		s.ReminderIntervalMS = v * 60_000
	})
	autoHide := sw.intEntry(s.AutoHideMS/1000, func(v int) {
		s.AutoHideMS = v * 1000
	})
	random := sw.intEntry(s.RandomOffsetMS/1000, func(v int) {
		s.RandomOffsetMS = v * 1000
	})

	preview := widget.NewCheck("Show a preview reminder on launch", func(b bool) {
		s.ShowPreviewOnLaunch = b
		sw.changed()
	})
	preview.SetChecked(s.ShowPreviewOnLaunch)

	previewDelay := sw.intEntry(s.PreviewDelayMS, func(v int) {
		s.PreviewDelayMS = v
	})

	return container.NewVBox(
		widget.NewForm(
			widget.NewFormItem("Reminder interval (min)", interval),
			widget.NewFormItem("Auto-hide after (s)", autoHide),
			widget.NewFormItem("Random extra delay (s)", random),
			widget.NewFormItem("Preview delay (ms)", previewDelay),
		),
		preview,
	)
}

func (sw *SettingsWindow) appearanceTab() fyne.CanvasObject {
	s := sw.settings

	position := widget.NewSelect(labelsOf(positionLabels), func(label string) {
		s.Position = valueFor(positionLabels, label, s.Position)
		sw.changed()
	})
	position.SetSelected(labelFor(positionLabels, s.Position))

	animation := widget.NewSelect(labelsOf(animationLabels), func(label string) {
		s.EntryAnimation = valueFor(animationLabels, label, s.EntryAnimation)
		sw.changed()
	})
	animation.SetSelected(labelFor(animationLabels, s.EntryAnimation))

	themeSelect := widget.NewSelect(theme.Names(sw.presets), func(name string) {
		s.Theme = name
		theme.Apply(s, theme.Find(sw.presets, name))
		sw.changed()
	})
	themeSelect.SetSelected(s.Theme)

	opacity := widget.NewSlider(0.1, 1.0)
	opacity.Step = 0.05
	opacity.SetValue(s.OverlayOpacity)
	opacity.OnChanged = func(v float64) {
		s.OverlayOpacity = v
		sw.changed()
	}

	marginX := sw.intEntry(s.MarginX, func(v int) { s.MarginX = v })
	marginY := sw.intEntry(s.MarginY, func(v int) { s.MarginY = v })
	width := sw.intEntry(s.OverlayWidth, func(v int) { s.OverlayWidth = v })
	height := sw.intEntry(s.OverlayHeight, func(v int) { s.OverlayHeight = v })
	radius := sw.intEntry(s.BackgroundRadius, func(v int) { s.BackgroundRadius = v })

	animEnabled := widget.NewCheck("Animate the reminder image", func(b bool) {
		s.AnimationEnabled = b
		sw.changed()
	})
	animEnabled.SetChecked(s.AnimationEnabled)

	animSpeed := sw.intEntry(s.AnimationIntervalMS, func(v int) {
		s.AnimationIntervalMS = v
	})

	return container.NewVBox(
		widget.NewForm(
			widget.NewFormItem("Theme", themeSelect),
			widget.NewFormItem("Corner", position),
			widget.NewFormItem("Entry animation", animation),
			widget.NewFormItem("Margin X (px)", marginX),
			widget.NewFormItem("Margin Y (px)", marginY),
			widget.NewFormItem("Width (px)", width),
			widget.NewFormItem("Height (px)", height),
			widget.NewFormItem("Corner radius (px)", radius),
			widget.NewFormItem("Opacity", opacity),
			widget.NewFormItem("Frame interval (ms)", animSpeed),
		),
		animEnabled,
	)
}

func (sw *SettingsWindow) textTab() fyne.CanvasObject {
	s := sw.settings

	title := widget.NewEntry()
	title.SetText(s.TitleText)
	title.OnChanged = func(v string) {
		s.TitleText = v
		sw.changed()
	}

	message := widget.NewMultiLineEntry()
	message.SetText(s.MessageTemplate)
	message.OnChanged = func(v string) {
		s.MessageTemplate = v
		sw.changed()
	}

	countdownTemplate := widget.NewEntry()
	countdownTemplate.SetText(s.CountdownTemplate)
	countdownTemplate.OnChanged = func(v string) {
		s.CountdownTemplate = v
		sw.changed()
	}

	countdown := widget.NewCheck("Show the next-reminder countdown", func(b bool) {
		s.CountdownEnabled = b
		sw.changed()
	})
	countdown.SetChecked(s.CountdownEnabled)

	titleSize := sw.intEntry(s.TitleFontSize, func(v int) { s.TitleFontSize = v })
	messageSize := sw.intEntry(s.MessageFontSize, func(v int) { s.MessageFontSize = v })
	countdownSize := sw.intEntry(s.CountdownFontSize, func(v int) { s.CountdownFontSize = v })

	textOpacity := widget.NewSlider(0.1, 1.0)
	textOpacity.Step = 0.05
	textOpacity.SetValue(s.TextOpacity)
	textOpacity.OnChanged = func(v float64) {
		s.TextOpacity = v
		sw.changed()
	}

	hint := widget.NewLabel("Use {interval} in the message and {remaining} in the countdown.")
	hint.TextStyle = fyne.TextStyle{Italic: true}

	return container.NewVBox(
		widget.NewForm(
			widget.NewFormItem("Title", title),
			widget.NewFormItem("Message", message),
			widget.NewFormItem("Countdown", countdownTemplate),
			widget.NewFormItem("Title size", titleSize),
			widget.NewFormItem("Message size", messageSize),
			widget.NewFormItem("Countdown size", countdownSize),
			widget.NewFormItem("Text opacity", textOpacity),
		),
		countdown,
		hint,
	)
}

func (sw *SettingsWindow) systemTab() fyne.CanvasObject {
	s := sw.settings

	monitors := append([]string{models.MonitorAuto}, sw.monitors...)
	monitor := widget.NewSelect(monitors, func(name string) {
		s.MonitorID = name
		sw.changed()
	})
	if containsString(monitors, s.MonitorID) {
		monitor.SetSelected(s.MonitorID)
	} else {
		monitor.SetSelected(models.MonitorAuto)
	}

	autostart := widget.NewCheck("Start Hydrate when I log in", func(b bool) {
		s.AutostartEnabled = b
		sw.changed()
	})
	autostart.SetChecked(s.AutostartEnabled)

	fallback := widget.NewCheck("Fall back to a system notification", func(b bool) {
		s.NotifyFallback = b
		sw.changed()
	})
	fallback.SetChecked(s.NotifyFallback)

	return container.NewVBox(
		widget.NewForm(
			widget.NewFormItem("Monitor", monitor),
		),
		autostart,
		fallback,
	)
}

func labelsOf(pairs []struct{ value, label string }) []string {
	labels := make([]string, len(pairs))
	for i, p := range pairs {
		labels[i] = p.label
	}
	return labels
}

func labelFor(pairs []struct{ value, label string }, value string) string {
	for _, p := range pairs {
		if p.value == value {
			return p.label
		}
	}
	return pairs[0].label
}

func valueFor(pairs []struct{ value, label string }, label, fallback string) string {
	for _, p := range pairs {
		if p.label == label {
			return p.value
		}
	}
	return fallback
}

func containsString(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

// MonitorLabel renders a monitor entry for the System tab select.
func MonitorLabel(index int, name string) string {
	if name == "" {
		return fmt.Sprintf("Display %d", index+1)
	}
	return name
}
