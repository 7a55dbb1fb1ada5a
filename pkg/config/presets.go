// Package config loads named animation presets from YAML files.
//
// A preset names one variant and overrides a subset of its parameters;
// everything left at its zero value keeps the variant's default. File
// location and embedding are the caller's concern: the showcase binary
// embeds its defaults and merges a user file over them.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/decker502/whirl/pkg/shapes"
	"github.com/decker502/whirl/pkg/timing"
)

// Variant names accepted in preset files.
const (
	VariantRotatingArcs  = "rotating_arcs"
	VariantInfinityArcs  = "infinity_arcs"
	VariantHexPulseRings = "hex_pulse_rings"
)

// PresetFile is the root of a preset YAML document.
type PresetFile struct {
	Presets []Preset `yaml:"presets"`
}

// PulseParams configures one pulse descriptor.
type PulseParams struct {
	Style     string  `yaml:"style"`
	Delay     float64 `yaml:"delay"`
	Intensity float64 `yaml:"intensity"`
}

// Preset is one named animation configuration. Fields not used by the
// selected variant are ignored; zero-valued fields keep the variant's
// built-in default.
type Preset struct {
	Name    string `yaml:"name"`
	Variant string `yaml:"variant"`

	// Shared timing
	CycleDurationMs float64 `yaml:"cycleDurationMs"`
	FPS             float64 `yaml:"fps"`
	Rest            float64 `yaml:"rest"`
	Iterations      int     `yaml:"iterations"`
	Timing          string  `yaml:"timing"`

	// Shared appearance
	Colors       []string `yaml:"colors"`
	Opacity      float64  `yaml:"opacity"`
	OpacityDelta float64  `yaml:"opacityDelta"`
	Background   string   `yaml:"background"`

	// Arc variants
	Arcs        int     `yaml:"arcs"`
	Radius      float64 `yaml:"radius"`
	RadiusDelta float64 `yaml:"radiusDelta"`
	Width       float64 `yaml:"width"`
	WidthDelta  float64 `yaml:"widthDelta"`
	Anchor      string  `yaml:"anchor"`
	LineCap     string  `yaml:"lineCap"`
	ArcDelay    float64 `yaml:"arcDelay"`
	TailDelay   float64 `yaml:"tailDelay"`
	Rotations   float64 `yaml:"rotations"`
	TrackColor  string  `yaml:"trackColor"`
	BorderColor string  `yaml:"borderColor"`
	BorderWidth float64 `yaml:"borderWidth"`

	// Infinity variant
	XOff float64 `yaml:"xOff"`

	// Hex pulse variant
	SideLength    int          `yaml:"sideLength"`
	DotRadius     float64      `yaml:"dotRadius"`
	Spacing       float64      `yaml:"spacing"`
	RingDelay     float64      `yaml:"ringDelay"`
	AlternateSpin bool         `yaml:"alternateSpin"`
	OpacityPulse  *PulseParams `yaml:"opacityPulse"`
	RadiusPulse   *PulseParams `yaml:"radiusPulse"`
}

// LoadPresetFile reads and parses a preset YAML file.
func LoadPresetFile(path string) (*PresetFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("presets: failed to read %s: %w", path, err)
	}
	f, err := ParsePresetFile(data)
	if err != nil {
		return nil, fmt.Errorf("presets: %s: %w", path, err)
	}
	return f, nil
}

// ParsePresetFile parses preset YAML data (e.g. from an embedded file).
func ParsePresetFile(data []byte) (*PresetFile, error) {
	var f PresetFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse presets: %w", err)
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *PresetFile) validate() error {
	if len(f.Presets) == 0 {
		return fmt.Errorf("preset file defines no presets")
	}
	seen := make(map[string]bool, len(f.Presets))
	for i, p := range f.Presets {
		if p.Name == "" {
			return fmt.Errorf("preset %d has no name", i)
		}
		if seen[p.Name] {
			return fmt.Errorf("duplicate preset name %q", p.Name)
		}
		seen[p.Name] = true
		switch p.Variant {
		case VariantRotatingArcs, VariantInfinityArcs, VariantHexPulseRings:
		default:
			return fmt.Errorf("preset %q: unknown variant %q", p.Name, p.Variant)
		}
	}
	return nil
}

// Find returns the preset with the given name.
func (f *PresetFile) Find(name string) (Preset, bool) {
	for _, p := range f.Presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

// Names returns all preset names in file order.
func (f *PresetFile) Names() []string {
	names := make([]string, len(f.Presets))
	for i, p := range f.Presets {
		names[i] = p.Name
	}
	return names
}

// Build constructs the variant the preset describes. Validation errors
// from the variant constructors pass through unchanged.
func (p Preset) Build() (shapes.Variant, error) {
	switch p.Variant {
	case VariantRotatingArcs:
		cfg := shapes.DefaultRotatingArcsConfig()
		p.applyShared(&cfg.CycleDuration, &cfg.FPS, &cfg.Rest, &cfg.Iterations,
			&cfg.Colors, &cfg.Opacity, &cfg.OpacityDelta, &cfg.Background)
		if p.Timing != "" {
			cfg.Timing = timing.TimingFunction(p.Timing)
		}
		setNonZeroInt(&cfg.Arcs, p.Arcs)
		setNonZero(&cfg.Radius, p.Radius)
		setNonZero(&cfg.RadiusDelta, p.RadiusDelta)
		setNonZero(&cfg.Width, p.Width)
		setNonZero(&cfg.WidthDelta, p.WidthDelta)
		if p.Anchor != "" {
			cfg.Anchor = shapes.Anchor(p.Anchor)
		}
		if p.LineCap != "" {
			cfg.Cap = shapes.LineCap(p.LineCap)
		}
		setNonZero(&cfg.ArcDelay, p.ArcDelay)
		setNonZero(&cfg.TailDelay, p.TailDelay)
		setNonZero(&cfg.Rotations, p.Rotations)
		cfg.TrackColor = p.TrackColor
		cfg.BorderColor = p.BorderColor
		setNonZero(&cfg.BorderWidth, p.BorderWidth)
		return shapes.NewRotatingArcs(cfg)

	case VariantInfinityArcs:
		cfg := shapes.DefaultInfinityArcsConfig()
		p.applyShared(&cfg.CycleDuration, &cfg.FPS, &cfg.Rest, &cfg.Iterations,
			&cfg.Colors, &cfg.Opacity, &cfg.OpacityDelta, &cfg.Background)
		if p.Timing != "" {
			cfg.Timing = timing.TimingFunction(p.Timing)
		}
		setNonZeroInt(&cfg.Arcs, p.Arcs)
		setNonZero(&cfg.Radius, p.Radius)
		setNonZero(&cfg.XOff, p.XOff)
		setNonZero(&cfg.Width, p.Width)
		setNonZero(&cfg.WidthDelta, p.WidthDelta)
		if p.Anchor != "" {
			cfg.Anchor = shapes.Anchor(p.Anchor)
		}
		if p.LineCap != "" {
			cfg.Cap = shapes.LineCap(p.LineCap)
		}
		setNonZero(&cfg.ArcDelay, p.ArcDelay)
		setNonZero(&cfg.TailDelay, p.TailDelay)
		return shapes.NewInfinityArcs(cfg)

	case VariantHexPulseRings:
		cfg := shapes.DefaultHexPulseRingsConfig()
		p.applyShared(&cfg.CycleDuration, &cfg.FPS, &cfg.Rest, &cfg.Iterations,
			&cfg.Colors, &cfg.Opacity, &cfg.OpacityDelta, &cfg.Background)
		if p.Timing != "" {
			cfg.Timing = timing.TimingFunction(p.Timing)
		}
		setNonZeroInt(&cfg.SideLength, p.SideLength)
		setNonZero(&cfg.DotRadius, p.DotRadius)
		setNonZero(&cfg.Spacing, p.Spacing)
		setNonZero(&cfg.RingDelay, p.RingDelay)
		setNonZero(&cfg.Rotations, p.Rotations)
		cfg.AlternateSpin = p.AlternateSpin
		if p.OpacityPulse != nil {
			cfg.OpacityPulse = p.OpacityPulse.descriptor()
		}
		if p.RadiusPulse != nil {
			cfg.RadiusPulse = p.RadiusPulse.descriptor()
		}
		return shapes.NewHexPulseRings(cfg)
	}
	return nil, fmt.Errorf("presets: unknown variant %q", p.Variant)
}

func (pp PulseParams) descriptor() shapes.PulseDescriptor {
	return shapes.PulseDescriptor{
		Style:     shapes.PulseStyle(pp.Style),
		Delay:     pp.Delay,
		Intensity: pp.Intensity,
	}
}

func (p Preset) applyShared(cycle, fps, rest *float64, iterations *int,
	colors *[]string, opacity, opacityDelta *float64, background *string) {
	setNonZero(cycle, p.CycleDurationMs)
	setNonZero(fps, p.FPS)
	setNonZero(rest, p.Rest)
	setNonZeroInt(iterations, p.Iterations)
	if len(p.Colors) > 0 {
		*colors = append([]string(nil), p.Colors...)
	}
	setNonZero(opacity, p.Opacity)
	setNonZero(opacityDelta, p.OpacityDelta)
	if p.Background != "" {
		*background = p.Background
	}
}

func setNonZero(dst *float64, v float64) {
	if v != 0 {
		*dst = v
	}
}

func setNonZeroInt(dst *int, v int) {
	if v != 0 {
		*dst = v
	}
}
