// Package assets loads the overlay animation frames and seeds the user asset
// directory with the bundled defaults.
package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/image/webp"
)

//go:embed defaults/*.png
var defaultFrames embed.FS

//go:embed bottle.gif
var bottleGIF []byte

// maxFrames bounds the frameN.png scan.
const maxFrames = 24

// Fallback animation files probed in order when no PNG sequence exists.
// GIF carries its own frame timing; WebP loads as a single still frame.
var fallbackLoaders = []struct {
	name string
	load func(path string) *Sequence
}{
	{"animation.gif", loadGIF},
	{"animation.webp", loadWebP},
}

// Sequence is an ordered set of animation frames. Delays is non-nil only for
// animations that carry their own timing (GIF); otherwise the configured
// cadence applies.
type Sequence struct {
	Frames []image.Image
	Delays []time.Duration
	// Placeholder marks the generated fallback image used when no usable
	// asset was found.
	Placeholder bool
}

// FrameCount returns the number of frames in the sequence.
func (s *Sequence) FrameCount() int {
	return len(s.Frames)
}

// SeedDefaults copies the bundled default frames into dir for any frame file
// that does not already exist. The directory must already exist.
func SeedDefaults(dir string) error {
	entries, err := defaultFrames.ReadDir("defaults")
	if err != nil {
		return fmt.Errorf("failed to read bundled assets: %w", err)
	}

	for _, entry := range entries {
		dest := filepath.Join(dir, entry.Name())
		if fileExists(dest) {
			continue
		}
		data, err := defaultFrames.ReadFile("defaults/" + entry.Name())
		if err != nil {
			return fmt.Errorf("failed to read bundled asset %s: %w", entry.Name(), err)
		}
		if err := os.WriteFile(dest, data, 0o644); err != nil {
			return fmt.Errorf("failed to seed asset %s: %w", dest, err)
		}
	}
	return nil
}

// Load returns the animation sequence for the asset directory: the
// frameN.png series if present, otherwise an animated fallback file,
// otherwise the bundled bottle animation, otherwise a generated placeholder.
// Load never fails; corrupt assets degrade to the next candidate.
func Load(dir string) *Sequence {
	if frames := loadFrameSeries(dir); len(frames) > 0 {
		return &Sequence{Frames: frames}
	}

	for _, fb := range fallbackLoaders {
		if seq := fb.load(filepath.Join(dir, fb.name)); seq != nil {
			return seq
		}
	}

	if seq := decodeGIF(bottleGIF); seq != nil {
		return seq
	}

	return &Sequence{Frames: []image.Image{Placeholder(120)}, Placeholder: true}
}

// TrayIcon returns PNG bytes for the tray icon: frame1.png from the asset
// directory when readable, else the first bundled frame.
func TrayIcon(dir string) []byte {
	if data, err := os.ReadFile(filepath.Join(dir, "frame1.png")); err == nil {
		if _, derr := png.Decode(bytes.NewReader(data)); derr == nil {
			return data
		}
	}
	data, err := defaultFrames.ReadFile("defaults/frame1.png")
	if err != nil {
		return nil
	}
	return data
}

// loadFrameSeries reads frame1.png, frame2.png, … until the first gap.
// A missing frame1 alone is tolerated (the series may start at frame2).
func loadFrameSeries(dir string) []image.Image {
	var frames []image.Image
	for i := 1; i <= maxFrames; i++ {
		path := filepath.Join(dir, fmt.Sprintf("frame%d.png", i))
		data, err := os.ReadFile(path)
		if err != nil {
			if i == 1 {
				continue
			}
			break
		}
		img, err := png.Decode(bytes.NewReader(data))
		if err != nil {
			// Corrupt frame: skip it, keep the series going.
			continue
		}
		frames = append(frames, img)
	}
	return frames
}

func loadGIF(path string) *Sequence {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	return decodeGIF(data)
}

func loadWebP(path string) *Sequence {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	img, err := webp.Decode(f)
	if err != nil {
		return nil
	}
	return &Sequence{Frames: []image.Image{img}}
}

func decodeGIF(data []byte) *Sequence {
	g, err := gif.DecodeAll(bytes.NewReader(data))
	if err != nil || len(g.Image) == 0 {
		return nil
	}

	seq := &Sequence{
		Frames: make([]image.Image, 0, len(g.Image)),
		Delays: make([]time.Duration, 0, len(g.Image)),
	}
	for i, img := range g.Image {
		seq.Frames = append(seq.Frames, img)
		delay := 100 * time.Millisecond
		if i < len(g.Delay) && g.Delay[i] > 0 {
			delay = time.Duration(g.Delay[i]) * 10 * time.Millisecond
		}
		seq.Delays = append(seq.Delays, delay)
	}
	return seq
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
