// Package models defines the persisted data structures for Hydrate.
package models

import "time"

// Overlay position constants. The position names the screen corner the
// overlay is anchored to.
const (
	PositionBottomRight = "bottom_right"
	PositionBottomLeft  = "bottom_left"
	PositionTopRight    = "top_right"
	PositionTopLeft     = "top_left"
)

// Entry animation styles.
const (
	EntryFade  = "fade"
	EntrySlide = "slide"
	EntryPop   = "pop"
)

// MonitorAuto selects whichever screen currently hosts the cursor.
const MonitorAuto = "auto"

// Positions lists the valid overlay positions.
var Positions = []string{PositionBottomRight, PositionBottomLeft, PositionTopRight, PositionTopLeft}

// EntryAnimations lists the valid entry animation styles.
var EntryAnimations = []string{EntryFade, EntrySlide, EntryPop}

// Minimum overlay dimensions. The configured size never shrinks below these.
const (
	MinOverlayWidth  = 180
	MinOverlayHeight = 120
)

// Color is an RGBA color persisted as a flat JSON object.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// WithAlpha returns a copy of the color with the given alpha.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// Settings represents the full application configuration.
// This corresponds to <storage root>/settings.json, a single flat object.
type Settings struct {
	ReminderIntervalMS  int  `json:"reminder_interval_ms"`
	AutoHideMS          int  `json:"auto_hide_ms"`
	AnimationIntervalMS int  `json:"animation_interval_ms"`
	RandomOffsetMS      int  `json:"random_offset_ms"`
	ShowPreviewOnLaunch bool `json:"show_preview_on_launch"`
	PreviewDelayMS      int  `json:"preview_delay_ms"`

	Position string `json:"position"`
	MarginX  int    `json:"margin_x"`
	MarginY  int    `json:"margin_y"`

	OverlayWidth     int     `json:"overlay_width"`
	OverlayHeight    int     `json:"overlay_height"`
	OverlayOpacity   float64 `json:"overlay_opacity"`
	BackgroundRadius int     `json:"background_radius"`

	GradientTop    Color `json:"gradient_top"`
	GradientBottom Color `json:"gradient_bottom"`
	BorderColor    Color `json:"border_color"`

	TitleText       string  `json:"title_text"`
	TitleFontSize   int     `json:"title_font_size"`
	TitleColor      Color   `json:"title_color"`
	MessageTemplate string  `json:"message_template"`
	MessageFontSize int     `json:"message_font_size"`
	TextOpacity     float64 `json:"text_opacity"`
	TextColor       Color   `json:"text_color"`

	CountdownEnabled  bool   `json:"countdown_enabled"`
	CountdownTemplate string `json:"countdown_template"`
	CountdownFontSize int    `json:"countdown_font_size"`
	CountdownColor    Color  `json:"countdown_color"`

	AnimationEnabled bool   `json:"animation_enabled"`
	EntryAnimation   string `json:"entry_animation"`
	MonitorID        string `json:"monitor_id"`
	Theme            string `json:"theme"`

	AutostartEnabled bool `json:"autostart_enabled"`
	NotifyFallback   bool `json:"notify_fallback"`
}

// NewSettings creates settings with default values.
func NewSettings() *Settings {
	return &Settings{
		ReminderIntervalMS:  45 * 60 * 1000,
		AutoHideMS:          15 * 1000,
		AnimationIntervalMS: 200,
		RandomOffsetMS:      0,
		ShowPreviewOnLaunch: true,
		PreviewDelayMS:      2000,

		Position: PositionBottomRight,
		MarginX:  16,
		MarginY:  16,

		OverlayWidth:     360,
		OverlayHeight:    180,
		OverlayOpacity:   1.0,
		BackgroundRadius: 24,

		GradientTop:    Color{R: 28, G: 116, B: 235, A: 235},
		GradientBottom: Color{R: 80, G: 170, B: 255, A: 235},
		BorderColor:    Color{R: 255, G: 255, B: 255, A: 200},

		TitleText:       "Hydration break",
		TitleFontSize:   22,
		TitleColor:      Color{R: 255, G: 255, B: 255, A: 255},
		MessageTemplate: "It's time to take a sip of water.\nEvery {interval}",
		MessageFontSize: 14,
		TextOpacity:     0.95,
		TextColor:       Color{R: 235, G: 238, B: 245, A: 255},

		CountdownEnabled:  true,
		CountdownTemplate: "Next reminder in {remaining}.",
		CountdownFontSize: 12,
		CountdownColor:    Color{R: 255, G: 255, B: 255, A: 255},

		AnimationEnabled: true,
		EntryAnimation:   EntryFade,
		MonitorID:        MonitorAuto,
		Theme:            "ocean",

		AutostartEnabled: false,
		NotifyFallback:   true,
	}
}

// Normalize clamps all values into their documented ranges, replacing
// anything out of range or unrecognized with a safe value. It returns the
// receiver for chaining.
func (s *Settings) Normalize() *Settings {
	if s.ReminderIntervalMS < 60_000 {
		s.ReminderIntervalMS = 60_000
	}
	if s.AutoHideMS < 1000 {
		s.AutoHideMS = 1000
	}
	if s.AnimationIntervalMS < 50 {
		s.AnimationIntervalMS = 50
	}
	if s.RandomOffsetMS < 0 {
		s.RandomOffsetMS = 0
	}
	if s.PreviewDelayMS < 0 {
		s.PreviewDelayMS = 0
	}
	if !validChoice(s.Position, Positions) {
		s.Position = PositionBottomRight
	}
	if s.MarginX < 0 {
		s.MarginX = 0
	}
	if s.MarginY < 0 {
		s.MarginY = 0
	}
	if s.OverlayWidth < MinOverlayWidth {
		s.OverlayWidth = MinOverlayWidth
	}
	if s.OverlayHeight < MinOverlayHeight {
		s.OverlayHeight = MinOverlayHeight
	}
	s.OverlayOpacity = ClampOpacity(s.OverlayOpacity)
	s.TextOpacity = ClampOpacity(s.TextOpacity)
	if s.BackgroundRadius < 0 {
		s.BackgroundRadius = 0
	}
	if !validChoice(s.EntryAnimation, EntryAnimations) {
		s.EntryAnimation = EntryFade
	}
	if s.MonitorID == "" {
		s.MonitorID = MonitorAuto
	}
	if s.TitleFontSize <= 0 {
		s.TitleFontSize = 22
	}
	if s.MessageFontSize <= 0 {
		s.MessageFontSize = 14
	}
	if s.CountdownFontSize <= 0 {
		s.CountdownFontSize = 12
	}
	return s
}

// ClampOpacity clamps an opacity value to the supported [0.1, 1.0] range.
func ClampOpacity(v float64) float64 {
	if v < 0.1 {
		return 0.1
	}
	if v > 1.0 {
		return 1.0
	}
	return v
}

// ReminderInterval returns the reminder interval as a duration.
func (s *Settings) ReminderInterval() time.Duration {
	return time.Duration(s.ReminderIntervalMS) * time.Millisecond
}

// AutoHide returns the overlay auto-hide timeout as a duration.
func (s *Settings) AutoHide() time.Duration {
	return time.Duration(s.AutoHideMS) * time.Millisecond
}

// AnimationInterval returns the frame cadence as a duration.
func (s *Settings) AnimationInterval() time.Duration {
	return time.Duration(s.AnimationIntervalMS) * time.Millisecond
}

// RandomOffset returns the jitter bound as a duration.
func (s *Settings) RandomOffset() time.Duration {
	return time.Duration(s.RandomOffsetMS) * time.Millisecond
}

// PreviewDelay returns the launch preview delay as a duration.
func (s *Settings) PreviewDelay() time.Duration {
	return time.Duration(s.PreviewDelayMS) * time.Millisecond
}

// Clone returns a deep copy of the settings.
func (s *Settings) Clone() *Settings {
	c := *s
	return &c
}

func validChoice(v string, choices []string) bool {
	for _, c := range choices {
		if v == c {
			return true
		}
	}
	return false
}
