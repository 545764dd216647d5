package models

import (
	"fmt"
	"strings"
	"time"
)

// FormatInterval renders a large interval (e.g. 45 minutes) as readable text
// for the overlay message, like "45 minutes" or "1 hour 30 minutes".
func FormatInterval(d time.Duration) string {
	minutesTotal := int(d.Minutes())
	if minutesTotal < 0 {
		minutesTotal = 0
	}
	hours := minutesTotal / 60
	minutes := minutesTotal % 60

	var parts []string
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%d hour%s", hours, plural(hours)))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%d minute%s", minutes, plural(minutes)))
	}
	if len(parts) == 0 {
		return "less than a minute"
	}
	return strings.Join(parts, " ")
}

// FormatRemaining renders a countdown as short h/m/s text, like "1h 5m" or
// "42s". Non-positive durations render as "now".
func FormatRemaining(d time.Duration) string {
	if d <= 0 {
		return "now"
	}

	secondsTotal := int(d.Seconds())
	hours := secondsTotal / 3600
	minutes := (secondsTotal % 3600) / 60
	seconds := secondsTotal % 60

	var parts []string
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 || hours > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	if hours == 0 {
		parts = append(parts, fmt.Sprintf("%ds", seconds))
	}
	return strings.Join(parts, " ")
}

// ExpandTemplate substitutes a single {placeholder} occurrence in a user
// template. Unknown placeholders are left alone.
func ExpandTemplate(template, placeholder, value string) string {
	return strings.ReplaceAll(template, "{"+placeholder+"}", value)
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
