//go:build !windows

package overlay

// DetectScreens reports no screens. X11 and Wayland expose no portable
// work-area query outside the toolkit, so placement falls back to the
// driver's centered splash position there.
func DetectScreens() []Screen {
	return nil
}
