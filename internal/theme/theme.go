// Package theme provides named color presets for the overlay. Built-in
// presets ship embedded; users can add or override presets with a
// presets.yaml in the storage root.
package theme

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/hydrate-app/hydrate/internal/models"
)

//go:embed presets.yaml
var builtinPresets []byte

// UserPresetsFileName is the optional per-user presets file in the storage
// root.
const UserPresetsFileName = "presets.yaml"

// DefaultPreset is applied when the configured theme is unknown.
const DefaultPreset = "ocean"

// Preset is one named color scheme.
type Preset struct {
	Name           string       `yaml:"name"`
	GradientTop    models.Color `yaml:"gradient_top"`
	GradientBottom models.Color `yaml:"gradient_bottom"`
	Border         models.Color `yaml:"border"`
	Title          models.Color `yaml:"title"`
	Text           models.Color `yaml:"text"`
}

type presetFile struct {
	Presets []Preset `yaml:"presets"`
}

// Load returns the built-in presets overlaid with any user presets from the
// storage root. User presets with a built-in name replace the built-in one;
// new names are appended. A missing user file is not an error.
func Load(storageRoot string) ([]Preset, error) {
	presets, err := parse(builtinPresets)
	if err != nil {
		return nil, fmt.Errorf("failed to parse built-in presets: %w", err)
	}

	userPath := filepath.Join(storageRoot, UserPresetsFileName)
	data, err := os.ReadFile(userPath)
	if err != nil {
		if os.IsNotExist(err) {
			return presets, nil
		}
		return presets, fmt.Errorf("failed to read user presets: %w", err)
	}

	user, err := parse(data)
	if err != nil {
		// A broken user file must not take the built-ins down with it.
		return presets, fmt.Errorf("failed to parse user presets: %w", err)
	}

	return merge(presets, user), nil
}

// Find returns the preset with the given name, falling back to the default
// preset for unknown names.
func Find(presets []Preset, name string) Preset {
	for _, p := range presets {
		if p.Name == name {
			return p
		}
	}
	for _, p := range presets {
		if p.Name == DefaultPreset {
			return p
		}
	}
	if len(presets) > 0 {
		return presets[0]
	}
	return Preset{Name: DefaultPreset}
}

// Apply copies a preset's colors into the settings and records the preset
// name.
func Apply(settings *models.Settings, p Preset) {
	settings.Theme = p.Name
	settings.GradientTop = p.GradientTop
	settings.GradientBottom = p.GradientBottom
	settings.BorderColor = p.Border
	settings.TitleColor = p.Title
	settings.TextColor = p.Text
}

// Names returns the preset names in order.
func Names(presets []Preset) []string {
	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = p.Name
	}
	return names
}

func parse(data []byte) ([]Preset, error) {
	var f presetFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return f.Presets, nil
}

func merge(base, extra []Preset) []Preset {
	out := make([]Preset, len(base))
	copy(out, base)

	for _, p := range extra {
		replaced := false
		for i, b := range out {
			if b.Name == p.Name {
				out[i] = p
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, p)
		}
	}
	return out
}
