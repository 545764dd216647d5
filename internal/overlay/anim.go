package overlay

import (
	"math"
	"time"

	"github.com/hydrate-app/hydrate/internal/models"
)

// Transform describes the overlay's visual state at one point of an entry or
// exit transition. Opacity is a multiplier on the configured overlay
// opacity; OffsetY shifts the panel vertically in pixels; Scale shrinks the
// panel around its center.
type Transform struct {
	Opacity float64
	OffsetY float64
	Scale   float64
}

// Transition durations per style, matching the snappy feel of the overlay.
var entryDurations = map[string]time.Duration{
	models.EntryFade:  280 * time.Millisecond,
	models.EntrySlide: 320 * time.Millisecond,
	models.EntryPop:   250 * time.Millisecond,
}

var exitDurations = map[string]time.Duration{
	models.EntryFade:  200 * time.Millisecond,
	models.EntrySlide: 240 * time.Millisecond,
	models.EntryPop:   200 * time.Millisecond,
}

const (
	slideEntryDistance = 60
	slideExitDistance  = 80
	popStartScale      = 0.9
)

// EntryDuration returns how long the entry transition for a style runs.
// Unknown styles have no transition.
func EntryDuration(style string) time.Duration {
	return entryDurations[style]
}

// ExitDuration returns how long the exit transition for a style runs.
func ExitDuration(style string) time.Duration {
	return exitDurations[style]
}

// EntryTransform computes the overlay transform at progress p in [0, 1] of
// the entry transition. p = 1 is always the resting state.
func EntryTransform(style string, p float64) Transform {
	p = clampProgress(p)
	eased := easeOutCubic(p)

	switch style {
	case models.EntryFade:
		return Transform{Opacity: eased, OffsetY: 0, Scale: 1}
	case models.EntrySlide:
		return Transform{Opacity: 1, OffsetY: slideEntryDistance * (1 - eased), Scale: 1}
	case models.EntryPop:
		return Transform{Opacity: 1, OffsetY: 0, Scale: popStartScale + (1-popStartScale)*eased}
	default:
		return Transform{Opacity: 1, OffsetY: 0, Scale: 1}
	}
}

// ExitTransform computes the overlay transform at progress p in [0, 1] of
// the exit transition. p = 0 is the resting state, p = 1 fully hidden.
func ExitTransform(style string, p float64) Transform {
	p = clampProgress(p)

	switch style {
	case models.EntryFade:
		return Transform{Opacity: 1 - easeInQuad(p), OffsetY: 0, Scale: 1}
	case models.EntrySlide:
		return Transform{Opacity: 1, OffsetY: slideExitDistance * easeInCubic(p), Scale: 1}
	case models.EntryPop:
		return Transform{Opacity: 1, OffsetY: 0, Scale: 1 - (1-popStartScale)*easeInBack(p)}
	default:
		return Transform{Opacity: 1, OffsetY: 0, Scale: 1}
	}
}

func clampProgress(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

func easeOutCubic(p float64) float64 {
	return 1 - math.Pow(1-p, 3)
}

func easeInQuad(p float64) float64 {
	return p * p
}

func easeInCubic(p float64) float64 {
	return p * p * p
}

func easeInBack(p float64) float64 {
	const c1 = 1.70158
	return (c1+1)*p*p*p - c1*p*p
}
