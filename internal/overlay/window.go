package overlay

import (
	"image"
	"image/color"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/hydrate-app/hydrate/internal/assets"
	"github.com/hydrate-app/hydrate/internal/models"
)

// Window is the borderless reminder panel. It owns the frame driver, the
// auto-hide timer and the entry/exit transitions. All fyne calls happen on
// the main loop; timer callbacks hop there via fyne.Do.
type Window struct {
	win     fyne.Window
	screens func() []Screen

	background *canvas.LinearGradient
	border     *canvas.Rectangle
	frame      *canvas.Image
	title      *canvas.Text
	message    *fyne.Container
	countdown  *canvas.Text
	panel      *fyne.Container
	root       *fyne.Container

	driver *Driver

	// settings is the window's own copy, guarded by mu so the timer and
	// scheduler goroutines can read it while the main loop applies edits.
	mu        sync.Mutex
	settings  models.Settings
	visible   bool
	hideTimer *time.Timer
	tickStop  chan struct{}

	remaining func() time.Duration
	onDismiss func()

	panelSize fyne.Size
	panelPos  fyne.Position
	winSize   fyne.Size
}

// NewWindow builds the overlay against the given app. remaining supplies
// the countdown line; onDismiss runs after the panel is hidden, whether by
// click or by the auto-hide timer.
func NewWindow(app fyne.App, settings *models.Settings, seq *assets.Sequence, remaining func() time.Duration, onDismiss func()) *Window {
	w := &Window{
		screens:   DetectScreens,
		remaining: remaining,
		onDismiss: onDismiss,
	}

	if drv, ok := app.Driver().(desktop.Driver); ok {
		w.win = drv.CreateSplashWindow()
	} else {
		w.win = app.NewWindow("Hydrate")
	}
	w.win.SetPadded(false)

	w.background = canvas.NewVerticalGradient(color.Transparent, color.Transparent)
	w.border = canvas.NewRectangle(color.Transparent)
	w.border.StrokeWidth = 1

	w.frame = canvas.NewImageFromImage(firstFrame(seq))
	w.frame.FillMode = canvas.ImageFillContain
	w.frame.SetMinSize(fyne.NewSize(96, 96))

	w.title = canvas.NewText("", color.White)
	w.title.TextStyle = fyne.TextStyle{Bold: true}

	w.message = container.NewVBox()
	w.countdown = canvas.NewText("", color.White)

	text := container.NewVBox(w.title, w.message, w.countdown)
	body := container.NewPadded(container.NewBorder(nil, nil, w.frame, nil, text))

	w.panel = container.NewStack(w.background, w.border, body, newClickCatcher(w.Dismiss))
	w.root = container.NewWithoutLayout(w.panel)
	w.win.SetContent(w.root)

	w.driver = NewDriver(seq, settings.AnimationInterval(), func(frame image.Image) {
		fyne.Do(func() {
			w.frame.Image = frame
			w.frame.Refresh()
		})
	})

	w.ApplySettings(settings)

	return w
}

// ApplySettings re-renders colors, texts, size and screen placement from
// the settings. Runs on the fyne main loop; safe to call while the overlay
// is visible, the change shows immediately.
func (w *Window) ApplySettings(settings *models.Settings) {
	w.mu.Lock()
	w.settings = *settings
	w.mu.Unlock()

	width, height := PanelSize(settings.OverlayWidth, settings.OverlayHeight,
		int(w.panel.MinSize().Width), int(w.panel.MinSize().Height))
	w.panelSize = fyne.NewSize(float32(width), float32(height))

	// Span the chosen screen's work area and park the panel in the
	// configured corner. Without screen geometry the window stays
	// panel-sized and the driver centers it.
	if screen, x, y, ok := Layout(w.screens(), settings, width, height); ok {
		w.winSize = fyne.NewSize(float32(screen.WorkArea.W), float32(screen.WorkArea.H))
		w.panelPos = fyne.NewPos(float32(x-screen.WorkArea.X), float32(y-screen.WorkArea.Y))
	} else {
		w.winSize = w.panelSize
		w.panelPos = fyne.NewPos(0, 0)
	}

	w.border.CornerRadius = float32(settings.BackgroundRadius)

	w.title.Text = settings.TitleText
	w.title.TextSize = float32(settings.TitleFontSize)

	intervalText := models.FormatInterval(settings.ReminderInterval())
	messageText := models.ExpandTemplate(settings.MessageTemplate, "interval", intervalText)
	w.message.Objects = nil
	for _, line := range strings.Split(messageText, "\n") {
		t := canvas.NewText(line, color.White)
		t.TextSize = float32(settings.MessageFontSize)
		w.message.Add(t)
	}

	w.countdown.TextSize = float32(settings.CountdownFontSize)
	if settings.CountdownEnabled {
		w.countdown.Show()
	} else {
		w.countdown.Hide()
	}
	w.updateCountdown()

	w.driver.SetInterval(settings.AnimationInterval())

	w.applyTransform(Transform{Opacity: 1, OffsetY: 0, Scale: 1})
	w.win.Resize(w.winSize)
}

// snapshot returns the window's current copy of the settings.
func (w *Window) snapshot() models.Settings {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.settings
}

// SetSequence swaps the animation frames, for asset directory changes.
func (w *Window) SetSequence(seq *assets.Sequence) {
	w.driver.SetSequence(seq)
}

// Visible reports whether the overlay is currently shown.
func (w *Window) Visible() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.visible
}

// Show presents the overlay with the configured entry transition, starts
// the frame animation and arms the auto-hide timer.
func (w *Window) Show() {
	w.mu.Lock()
	if w.visible {
		// Re-showing extends the visible period.
		w.armHideTimerLocked()
		w.mu.Unlock()
		return
	}
	w.visible = true
	w.armHideTimerLocked()
	w.tickStop = make(chan struct{})
	go w.countdownLoop(w.tickStop)
	w.mu.Unlock()

	animate := w.snapshot().AnimationEnabled
	fyne.Do(func() {
		w.updateCountdown()
		if animate {
			w.driver.Start()
		}
		w.win.Resize(w.winSize)
		w.win.Show()
		w.playEntry()
	})
}

// Dismiss plays the exit transition and hides the overlay. The dismiss
// callback fires once the panel is gone.
func (w *Window) Dismiss() {
	w.mu.Lock()
	if !w.visible {
		w.mu.Unlock()
		return
	}
	w.visible = false
	w.disarmHideTimerLocked()
	if w.tickStop != nil {
		close(w.tickStop)
		w.tickStop = nil
	}
	w.mu.Unlock()

	fyne.Do(w.playExit)
}

// Close tears the overlay down without transitions.
func (w *Window) Close() {
	w.mu.Lock()
	w.visible = false
	w.disarmHideTimerLocked()
	if w.tickStop != nil {
		close(w.tickStop)
		w.tickStop = nil
	}
	w.mu.Unlock()

	w.driver.Stop()
	fyne.Do(w.win.Close)
}

func (w *Window) armHideTimerLocked() {
	w.disarmHideTimerLocked()
	w.hideTimer = time.AfterFunc(w.settings.AutoHide(), w.Dismiss)
}

func (w *Window) disarmHideTimerLocked() {
	if w.hideTimer != nil {
		w.hideTimer.Stop()
		w.hideTimer = nil
	}
}

func (w *Window) countdownLoop(stop chan struct{}) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			fyne.Do(w.updateCountdown)
		}
	}
}

func (w *Window) updateCountdown() {
	s := w.snapshot()
	if !s.CountdownEnabled || w.remaining == nil {
		return
	}
	text := models.ExpandTemplate(s.CountdownTemplate, "remaining",
		models.FormatRemaining(w.remaining()))
	w.countdown.Text = text
	w.countdown.Refresh()
}

func (w *Window) playEntry() {
	style := w.snapshot().EntryAnimation
	duration := EntryDuration(style)
	if duration == 0 {
		w.applyTransform(Transform{Opacity: 1, OffsetY: 0, Scale: 1})
		return
	}

	anim := fyne.NewAnimation(duration, func(p float32) {
		w.applyTransform(EntryTransform(style, float64(p)))
	})
	// The transform functions carry their own easing.
	anim.Curve = fyne.AnimationLinear
	anim.Start()
}

func (w *Window) playExit() {
	style := w.snapshot().EntryAnimation
	duration := ExitDuration(style)
	if duration == 0 {
		w.finishHide()
		return
	}

	anim := fyne.NewAnimation(duration, func(p float32) {
		w.applyTransform(ExitTransform(style, float64(p)))
		if p >= 1 {
			w.finishHide()
		}
	})
	anim.Curve = fyne.AnimationLinear
	anim.Start()
}

func (w *Window) finishHide() {
	w.driver.Stop()
	w.win.Hide()
	w.applyTransform(Transform{Opacity: 1, OffsetY: 0, Scale: 1})
	if w.onDismiss != nil {
		go w.onDismiss()
	}
}

// applyTransform renders one step of an entry or exit transition. Opacity
// multiplies the configured overlay and text opacities; offset and scale
// move and shrink the panel inside the window.
func (w *Window) applyTransform(t Transform) {
	s := w.snapshot()
	panelAlpha := models.ClampOpacity(s.OverlayOpacity) * t.Opacity
	textAlpha := models.ClampOpacity(s.TextOpacity) * t.Opacity

	w.background.StartColor = nrgba(s.GradientTop, panelAlpha)
	w.background.EndColor = nrgba(s.GradientBottom, panelAlpha)
	w.border.StrokeColor = nrgba(s.BorderColor, panelAlpha)

	w.frame.Translucency = 1 - t.Opacity
	w.title.Color = nrgba(s.TitleColor, textAlpha)
	for _, obj := range w.message.Objects {
		if line, ok := obj.(*canvas.Text); ok {
			line.Color = nrgba(s.TextColor, textAlpha)
		}
	}
	w.countdown.Color = nrgba(s.CountdownColor, textAlpha)

	size := fyne.NewSize(w.panelSize.Width*float32(t.Scale), w.panelSize.Height*float32(t.Scale))
	w.panel.Resize(size)
	w.panel.Move(fyne.NewPos(
		w.panelPos.X+(w.panelSize.Width-size.Width)/2,
		w.panelPos.Y+(w.panelSize.Height-size.Height)/2+float32(t.OffsetY),
	))

	w.panel.Refresh()
}

// nrgba converts a stored color, scaling its alpha by the given opacity.
func nrgba(c models.Color, opacity float64) color.NRGBA {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(float64(c.A) * opacity)}
}

func firstFrame(seq *assets.Sequence) image.Image {
	if seq == nil || len(seq.Frames) == 0 {
		return assets.Placeholder(96)
	}
	return seq.Frames[0]
}

// clickCatcher is an invisible widget stacked over the panel so a click
// anywhere dismisses the reminder.
type clickCatcher struct {
	widget.BaseWidget
	onTapped func()
}

func newClickCatcher(onTapped func()) *clickCatcher {
	c := &clickCatcher{onTapped: onTapped}
	c.ExtendBaseWidget(c)
	return c
}

func (c *clickCatcher) Tapped(_ *fyne.PointEvent) {
	if c.onTapped != nil {
		c.onTapped()
	}
}

func (c *clickCatcher) Cursor() desktop.Cursor {
	return desktop.PointerCursor
}

func (c *clickCatcher) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(canvas.NewRectangle(color.Transparent))
}
