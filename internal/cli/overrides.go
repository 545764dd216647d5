package cli

import (
	"github.com/hydrate-app/hydrate/internal/models"
)

// Overrides carries command line values that take precedence over stored
// settings. Nil fields were not supplied on the command line.
type Overrides struct {
	IntervalMinutes  *float64
	AutoHideSeconds  *float64
	AnimationSeconds *float64
	RandomSeconds    *int
	Position         *string
	MarginX          *int
	MarginY          *int
	Width            *int
	Height           *int
	Opacity          *float64
	Monitor          *string
	EntryAnimation   *string
	NoPreview        bool
}

// Empty reports whether no override was supplied.
func (o Overrides) Empty() bool {
	return o.IntervalMinutes == nil &&
		o.AutoHideSeconds == nil &&
		o.AnimationSeconds == nil &&
		o.RandomSeconds == nil &&
		o.Position == nil &&
		o.MarginX == nil &&
		o.MarginY == nil &&
		o.Width == nil &&
		o.Height == nil &&
		o.Opacity == nil &&
		o.Monitor == nil &&
		o.EntryAnimation == nil &&
		!o.NoPreview
}

// Apply writes the supplied overrides into settings. Values are converted
// from the human-friendly flag units (minutes, seconds) into milliseconds
// and clamped the same way the settings loader clamps stored values.
func (o Overrides) Apply(s *models.Settings) {
	if o.IntervalMinutes != nil {
		minutes := *o.IntervalMinutes
		if minutes < 1 {
			minutes = 1
		}
		s.ReminderIntervalMS = int(minutes * 60_000)
	}
	if o.AutoHideSeconds != nil {
		seconds := *o.AutoHideSeconds
		if seconds < 1 {
			seconds = 1
		}
		s.AutoHideMS = int(seconds * 1000)
	}
	if o.AnimationSeconds != nil {
		seconds := *o.AnimationSeconds
		if seconds < 0.05 {
			seconds = 0.05
		}
		s.AnimationIntervalMS = int(seconds * 1000)
	}
	if o.RandomSeconds != nil {
		seconds := *o.RandomSeconds
		if seconds < 0 {
			seconds = 0
		}
		s.RandomOffsetMS = seconds * 1000
	}
	if o.Position != nil {
		s.Position = *o.Position
	}
	if o.MarginX != nil {
		s.MarginX = *o.MarginX
	}
	if o.MarginY != nil {
		s.MarginY = *o.MarginY
	}
	if o.Width != nil {
		s.OverlayWidth = *o.Width
	}
	if o.Height != nil {
		s.OverlayHeight = *o.Height
	}
	if o.Opacity != nil {
		s.OverlayOpacity = *o.Opacity
	}
	if o.Monitor != nil {
		s.MonitorID = *o.Monitor
	}
	if o.EntryAnimation != nil {
		s.EntryAnimation = *o.EntryAnimation
	}
	if o.NoPreview {
		s.ShowPreviewOnLaunch = false
	}

	s.Normalize()
}
