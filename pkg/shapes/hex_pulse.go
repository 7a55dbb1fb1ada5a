package shapes

import (
	"fmt"
	"math"

	"github.com/decker502/whirl/pkg/geom"
	"github.com/decker502/whirl/pkg/render"
	"github.com/decker502/whirl/pkg/timing"
)

// PulseStyle selects how a ring pulse is phase-keyed across rings.
type PulseStyle string

const (
	// PulseOff disables the pulse.
	PulseOff PulseStyle = "off"
	// PulseDisperse phases the pulse outward from the center.
	PulseDisperse PulseStyle = "disperse"
	// PulseCoalesce phases the pulse inward toward the center.
	PulseCoalesce PulseStyle = "coalesce"
)

// ValidatePulseStyle rejects unrecognized pulse styles. The empty
// string selects off.
func ValidatePulseStyle(s PulseStyle) error {
	switch s {
	case PulseOff, PulseDisperse, PulseCoalesce, "":
		return nil
	default:
		return fmt.Errorf("shapes: unknown pulse style %q", s)
	}
}

// PulseDescriptor describes one per-ring periodic modulation. It is a
// value type: configurations copy it on assignment, so a caller
// mutating its own descriptor after reconfiguration cannot reach into
// a running animation.
type PulseDescriptor struct {
	Style PulseStyle

	// Delay staggers the pulse phase between neighboring rings, as a
	// fraction of a cycle.
	Delay float64

	// Intensity scales the modulation depth; 1 fades to nothing at the
	// trough.
	Intensity float64
}

// modifier returns the relative modulation for a ring at the given raw
// progress: a triangular wave running 0 -> -Intensity -> 0 over one
// cycle, phase-keyed by ring index according to the style.
func (d PulseDescriptor) modifier(sideLength, ring int, progress float64) float64 {
	var phase float64
	switch d.Style {
	case PulseDisperse:
		phase = -float64(sideLength-1-ring) * d.Delay
	case PulseCoalesce:
		phase = -float64(ring) * d.Delay
	default:
		return 0
	}
	pp := timing.WrapProgress(progress, phase)
	var wave float64
	if pp < 0.5 {
		wave = -pp * 2
	} else {
		wave = -2 + pp*2
	}
	return wave * d.Intensity
}

// HexPulseRingsConfig configures the hexagonal dot-ring loader.
type HexPulseRingsConfig struct {
	// SideLength is the number of concentric hexagonal rings including
	// the single center dot.
	SideLength int

	// DotRadius is each dot's radius; Spacing the radial distance
	// between consecutive rings.
	DotRadius float64
	Spacing   float64

	Colors       []string
	Opacity      float64
	OpacityDelta float64

	// RingDelay staggers each ring's eased progress behind the previous
	// ring.
	RingDelay float64

	// Rotations spins the rings; AlternateSpin reverses the direction
	// of even-indexed rings.
	Rotations     float64
	AlternateSpin bool

	// OpacityPulse and RadiusPulse modulate dot opacity and dot radius
	// independently.
	OpacityPulse PulseDescriptor
	RadiusPulse  PulseDescriptor

	Background string

	Timing       timing.TimingFunction
	CustomTiming timing.CustomTimingFunc

	CycleDuration    float64
	FPS              float64
	Rest             float64
	Iterations       int
	MutationInterval float64

	Mutator func(*HexPulseRings)
}

// DefaultHexPulseRingsConfig returns the stock four-ring pulse grid.
func DefaultHexPulseRingsConfig() HexPulseRingsConfig {
	return HexPulseRingsConfig{
		SideLength:    4,
		DotRadius:     4,
		Spacing:       14,
		Colors:        []string{"#3f88f8"},
		Opacity:       1,
		RingDelay:     0.06,
		Rotations:     1,
		OpacityPulse:  PulseDescriptor{Style: PulseDisperse, Delay: 0.08, Intensity: 0.6},
		Timing:        timing.TimingSinusoidal,
		CycleDuration: 2600,
		FPS:           60,
	}
}

func (c HexPulseRingsConfig) validate() error {
	if c.SideLength < 1 {
		return fmt.Errorf("hex pulse rings: side length must be at least 1, got %d", c.SideLength)
	}
	if err := ValidatePulseStyle(c.OpacityPulse.Style); err != nil {
		return err
	}
	if err := ValidatePulseStyle(c.RadiusPulse.Style); err != nil {
		return err
	}
	pal := render.Palette{Colors: c.Colors, Opacity: c.Opacity, OpacityDelta: c.OpacityDelta}
	if err := pal.Validate(); err != nil {
		return err
	}
	if _, err := timing.ResolveTiming(c.Timing, c.CustomTiming); err != nil {
		return err
	}
	return nil
}

// HexPulseRings animates concentric hexagonal rings of dots. Unlike the
// arc variants it needs no path builder: every dot is a plain filled
// circle.
type HexPulseRings struct {
	cfg     HexPulseRingsConfig
	ease    timing.EasingFunc
	palette render.Palette
}

// NewHexPulseRings validates the configuration and builds the variant.
func NewHexPulseRings(cfg HexPulseRingsConfig) (*HexPulseRings, error) {
	v := &HexPulseRings{}
	if err := v.apply(cfg); err != nil {
		return nil, err
	}
	return v, nil
}

func (v *HexPulseRings) apply(cfg HexPulseRingsConfig) error {
	if err := cfg.validate(); err != nil {
		return err
	}
	ease, err := timing.ResolveTiming(cfg.Timing, cfg.CustomTiming)
	if err != nil {
		return err
	}
	v.cfg = cfg
	v.ease = ease
	v.palette = render.Palette{
		Colors:       cfg.Colors,
		Opacity:      cfg.Opacity,
		OpacityDelta: cfg.OpacityDelta,
	}
	return nil
}

// Config returns a copy of the current configuration.
func (v *HexPulseRings) Config() HexPulseRingsConfig { return v.cfg }

// ClockOptions implements Variant.
func (v *HexPulseRings) ClockOptions() timing.ClockOptions {
	return timing.ClockOptions{
		CycleDuration:    v.cfg.CycleDuration,
		FPS:              v.cfg.FPS,
		Rest:             v.cfg.Rest,
		Iterations:       v.cfg.Iterations,
		MutationInterval: v.cfg.MutationInterval,
	}
}

// Mutate implements Variant.
func (v *HexPulseRings) Mutate() {
	if v.cfg.Mutator != nil {
		v.cfg.Mutator(v)
	}
}

// Draw implements Variant. Rings are drawn outside-in so the center
// dot lands on top.
func (v *HexPulseRings) Draw(ctx render.Context, clock *timing.Clock) error {
	BaseDraw(ctx, v.cfg.Background)

	w, h := ctx.Size()
	center := geom.Vec(w/2, h/2)
	prog := clock.Progress()
	iter := float64(clock.Iteration())

	for ring := v.cfg.SideLength - 1; ring >= 0; ring-- {
		eased := v.ease(prog, v.cfg.Rest, -float64(ring)*v.cfg.RingDelay)
		dir := 1.0
		if v.cfg.AlternateSpin && ring%2 == 0 {
			dir = -1
		}
		rot := dir * (iter + eased) * v.cfg.Rotations * 2 * math.Pi

		opacityMod := v.cfg.OpacityPulse.modifier(v.cfg.SideLength, ring, prog)
		radiusMod := v.cfg.RadiusPulse.modifier(v.cfg.SideLength, ring, prog)
		dotRadius := math.Max(0, v.cfg.DotRadius*(1+radiusMod))
		ctx.SetFillStyle(v.palette.ColorWithModifier(len(v.cfg.Colors)-1-ring, opacityMod))

		if ring == 0 {
			v.drawDot(ctx, center, dotRadius)
			continue
		}

		var axes [6]geom.Vector2
		for j := 0; j < 6; j++ {
			angle := rot + float64(j)*math.Pi/3
			axes[j] = center.Add(geom.FromAngle(angle).Scale(float64(ring) * v.cfg.Spacing))
		}
		for j := 0; j < 6; j++ {
			v.drawDot(ctx, axes[j], dotRadius)
			next := axes[(j+1)%6]
			// ring-1 interpolated dots fill each hexagon edge so every
			// side holds ring+1 evenly spaced dots.
			for m := 1; m < ring; m++ {
				t := float64(m) / float64(ring)
				v.drawDot(ctx, axes[j].Add(next.Sub(axes[j]).Scale(t)), dotRadius)
			}
		}
	}
	return nil
}

func (v *HexPulseRings) drawDot(ctx render.Context, p geom.Vector2, radius float64) {
	if radius <= 0 {
		return
	}
	ctx.BeginPath()
	ctx.Arc(p, radius, 0, 2*math.Pi, false)
	ctx.Fill()
}
