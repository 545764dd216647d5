// Package cli implements the hydrate command line interface.
package cli

import (
	"github.com/spf13/cobra"
)

// RunFunc starts the application with the parsed overrides.
type RunFunc func(Overrides) error

var runApp RunFunc

var rootCmd = &cobra.Command{
	Use:   "hydrate",
	Short: "Desktop hydration reminder overlay",
	Long: `Hydrate shows a small animated overlay at a configurable interval to
remind you to drink water. Flags override the stored settings and the new
values are persisted before the overlay starts.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(collectOverrides(cmd))
	},
}

var flagValues struct {
	intervalMinutes  float64
	autoHideSeconds  float64
	animationSeconds float64
	randomSeconds    int
	position         string
	marginX          int
	marginY          int
	width            int
	height           int
	opacity          float64
	monitor          string
	entryAnimation   string
	noPreview        bool
}

// Execute parses the command line and runs the selected command. The run
// callback is invoked for the bare invocation (no subcommand).
func Execute(run RunFunc) error {
	runApp = run
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.Flags()
	flags.Float64Var(&flagValues.intervalMinutes, "interval", 0, "Reminder interval in minutes (default: 45)")
	flags.Float64Var(&flagValues.autoHideSeconds, "autohide", 0, "Auto-hide delay in seconds (default: 15)")
	flags.Float64Var(&flagValues.animationSeconds, "animation-speed", 0, "Animation frame interval in seconds (default: 0.2)")
	flags.IntVar(&flagValues.randomSeconds, "random", 0, "Random delay in seconds added to each reminder interval")
	flags.StringVar(&flagValues.position, "position", "", "Overlay corner: bottom_right, bottom_left, top_right, top_left")
	flags.IntVar(&flagValues.marginX, "margin-x", 0, "Horizontal margin from the screen edge in pixels")
	flags.IntVar(&flagValues.marginY, "margin-y", 0, "Vertical margin from the screen edge in pixels")
	flags.IntVar(&flagValues.width, "width", 0, "Overlay width in pixels")
	flags.IntVar(&flagValues.height, "height", 0, "Overlay height in pixels")
	flags.Float64Var(&flagValues.opacity, "opacity", 0, "Overlay opacity between 0.1 and 1.0")
	flags.StringVar(&flagValues.monitor, "monitor", "", "Monitor name to force the overlay onto")
	flags.StringVar(&flagValues.entryAnimation, "entry-animation", "", "Entry animation: fade, slide, pop")
	flags.BoolVar(&flagValues.noPreview, "no-preview", false, "Skip the preview reminder on launch")

	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// collectOverrides turns the flags the user actually passed into overrides.
func collectOverrides(cmd *cobra.Command) Overrides {
	var o Overrides

	flags := cmd.Flags()
	if flags.Changed("interval") {
		o.IntervalMinutes = &flagValues.intervalMinutes
	}
	if flags.Changed("autohide") {
		o.AutoHideSeconds = &flagValues.autoHideSeconds
	}
	if flags.Changed("animation-speed") {
		o.AnimationSeconds = &flagValues.animationSeconds
	}
	if flags.Changed("random") {
		o.RandomSeconds = &flagValues.randomSeconds
	}
	if flags.Changed("position") {
		o.Position = &flagValues.position
	}
	if flags.Changed("margin-x") {
		o.MarginX = &flagValues.marginX
	}
	if flags.Changed("margin-y") {
		o.MarginY = &flagValues.marginY
	}
	if flags.Changed("width") {
		o.Width = &flagValues.width
	}
	if flags.Changed("height") {
		o.Height = &flagValues.height
	}
	if flags.Changed("opacity") {
		o.Opacity = &flagValues.opacity
	}
	if flags.Changed("monitor") {
		o.Monitor = &flagValues.monitor
	}
	if flags.Changed("entry-animation") {
		o.EntryAnimation = &flagValues.entryAnimation
	}
	o.NoPreview = flagValues.noPreview

	return o
}
