package shapes

import (
	"fmt"
	"math"

	"github.com/decker502/whirl/pkg/geom"
	"github.com/decker502/whirl/pkg/render"
	"github.com/decker502/whirl/pkg/timing"
)

// RotatingArcsConfig configures the circular arc loader. The struct is
// immutable during a frame; Reconfigure swaps in a validated copy
// between frames.
type RotatingArcsConfig struct {
	// Arcs is the number of concentric arcs. Index 0 is the primary
	// arc, drawn visually on top.
	Arcs int

	// Radius is the primary arc's nominal radius in pixels;
	// RadiusDelta shrinks each further arc's radius per index.
	Radius      float64
	RadiusDelta float64

	// Width is the primary arc's stroke width; WidthDelta shrinks each
	// further arc's width per index.
	Width      float64
	WidthDelta float64

	// Anchor aligns arcs of differing width radially.
	Anchor Anchor

	// Cap is the arc end-cap style.
	Cap LineCap

	Colors       []string
	Opacity      float64
	OpacityDelta float64

	// ArcDelay staggers each arc behind the previous one by a fraction
	// of a cycle; TailDelay is how far the tail trails the lead.
	ArcDelay  float64
	TailDelay float64

	// Rotations is how many full extra revolutions the whole shape
	// accumulates per cycle.
	Rotations float64

	// TrackColor, when set, draws a full background ring under each
	// arc. BorderColor adds thin rings hugging the outer and inner arc
	// edges.
	TrackColor  string
	BorderColor string
	BorderWidth float64

	// Background fills the surface before drawing; empty leaves it
	// transparent.
	Background string

	Timing       timing.TimingFunction
	CustomTiming timing.CustomTimingFunc

	CycleDuration    float64
	FPS              float64
	Rest             float64
	Iterations       int
	MutationInterval float64

	// Mutator, when set, runs at every mutation interval.
	Mutator func(*RotatingArcs)
}

// DefaultRotatingArcsConfig returns the stock three-arc spinner.
func DefaultRotatingArcsConfig() RotatingArcsConfig {
	return RotatingArcsConfig{
		Arcs:          1,
		Radius:        40,
		Width:         8,
		Anchor:        AnchorCenter,
		Cap:           LineCapRound,
		Colors:        []string{"#3f88f8"},
		Opacity:       1,
		ArcDelay:      0.08,
		TailDelay:     0.35,
		Rotations:     1,
		Timing:        timing.TimingSinusoidal,
		CycleDuration: 1500,
		FPS:           60,
		BorderWidth:   1,
	}
}

func (c RotatingArcsConfig) validate() error {
	if c.Arcs < 1 {
		return fmt.Errorf("rotating arcs: arcs must be at least 1, got %d", c.Arcs)
	}
	if err := ValidateAnchor(c.Anchor); err != nil {
		return err
	}
	if err := ValidateLineCap(c.Cap); err != nil {
		return err
	}
	pal := render.Palette{Colors: c.Colors, Opacity: c.Opacity, OpacityDelta: c.OpacityDelta}
	if err := pal.Validate(); err != nil {
		return err
	}
	if c.TrackColor != "" {
		if err := render.ValidateHex(c.TrackColor); err != nil {
			return err
		}
	}
	if c.BorderColor != "" {
		if err := render.ValidateHex(c.BorderColor); err != nil {
			return err
		}
	}
	if _, err := timing.ResolveTiming(c.Timing, c.CustomTiming); err != nil {
		return err
	}
	return nil
}

// RotatingArcs animates one or more arcs sweeping around a circle.
type RotatingArcs struct {
	cfg     RotatingArcsConfig
	ease    timing.EasingFunc
	palette render.Palette
}

// NewRotatingArcs validates the configuration and builds the variant.
func NewRotatingArcs(cfg RotatingArcsConfig) (*RotatingArcs, error) {
	v := &RotatingArcs{}
	if err := v.apply(cfg); err != nil {
		return nil, err
	}
	return v, nil
}

func (v *RotatingArcs) apply(cfg RotatingArcsConfig) error {
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
func (v *RotatingArcs) Config() RotatingArcsConfig { return v.cfg }

// ClockOptions implements Variant.
func (v *RotatingArcs) ClockOptions() timing.ClockOptions {
	return timing.ClockOptions{
		CycleDuration:    v.cfg.CycleDuration,
		FPS:              v.cfg.FPS,
		Rest:             v.cfg.Rest,
		Iterations:       v.cfg.Iterations,
		MutationInterval: v.cfg.MutationInterval,
	}
}

// Mutate implements Variant.
func (v *RotatingArcs) Mutate() {
	if v.cfg.Mutator != nil {
		v.cfg.Mutator(v)
	}
}

// Draw implements Variant. Arcs are drawn back to front so that lower
// indexes land on top.
func (v *RotatingArcs) Draw(ctx render.Context, clock *timing.Clock) error {
	BaseDraw(ctx, v.cfg.Background)

	w, h := ctx.Size()
	center := geom.Vec(w/2, h/2)
	prog := clock.Progress()
	rotation := (float64(clock.Iteration())+prog)*v.cfg.Rotations*2*math.Pi - math.Pi/2

	for i := v.cfg.Arcs - 1; i >= 0; i-- {
		delay := -float64(i) * v.cfg.ArcDelay
		lead := v.ease(prog, v.cfg.Rest, delay)
		tail := v.ease(prog, v.cfg.Rest, delay-v.cfg.TailDelay)

		width := math.Max(0, v.cfg.Width-float64(i)*v.cfg.WidthDelta)
		base := v.cfg.Radius - float64(i)*v.cfg.RadiusDelta
		outer, mid, inner, err := radialOffsets(v.cfg.Anchor, base, v.cfg.Width, width)
		if err != nil {
			return err
		}

		track := circleTrack{center: center, rotation: rotation}

		if v.cfg.TrackColor != "" {
			v.strokeRing(ctx, center, mid, v.cfg.TrackColor, width)
		}

		ctx.SetFillStyle(v.palette.Color(len(v.cfg.Colors) - 1 - i))
		sweep := newArcSweep(track, outer, mid, inner, v.cfg.Cap)
		if err := sweep.buildPath(ctx, lead, tail); err != nil {
			return err
		}
		ctx.Fill()

		if v.cfg.BorderColor != "" {
			bw := v.cfg.BorderWidth
			if bw <= 0 {
				bw = 1
			}
			v.strokeRing(ctx, center, outer+bw/2, v.cfg.BorderColor, bw)
			if r := inner - bw/2; r > 0 {
				v.strokeRing(ctx, center, r, v.cfg.BorderColor, bw)
			}
		}
	}
	return nil
}

func (v *RotatingArcs) strokeRing(ctx render.Context, center geom.Vector2, radius float64, color string, width float64) {
	if radius <= 0 || width <= 0 {
		return
	}
	ctx.BeginPath()
	ctx.Arc(center, radius, 0, 2*math.Pi, false)
	ctx.SetStrokeStyle(color)
	ctx.SetLineWidth(width)
	ctx.Stroke()
}
