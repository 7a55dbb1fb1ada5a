package shapes

import (
	"fmt"
	"math"

	"github.com/decker502/whirl/pkg/geom"
	"github.com/decker502/whirl/pkg/render"
	"github.com/decker502/whirl/pkg/timing"
)

// InfinityArcsConfig configures the lemniscate loader: arcs sweeping
// along a figure-eight made of two circles joined through the origin.
type InfinityArcsConfig struct {
	// Arcs is the number of staggered arcs on the path.
	Arcs int

	// Radius is the radius of each loop circle; XOff is the horizontal
	// distance of the loop centers from the crossing. XOff must exceed
	// Radius or no origin-crossing tangent exists.
	Radius float64
	XOff   float64

	Width      float64
	WidthDelta float64

	Anchor Anchor
	Cap    LineCap

	Colors       []string
	Opacity      float64
	OpacityDelta float64

	ArcDelay  float64
	TailDelay float64

	Background string

	Timing       timing.TimingFunction
	CustomTiming timing.CustomTimingFunc

	CycleDuration    float64
	FPS              float64
	Rest             float64
	Iterations       int
	MutationInterval float64

	Mutator func(*InfinityArcs)
}

// DefaultInfinityArcsConfig returns the stock single-arc infinity
// loader.
func DefaultInfinityArcsConfig() InfinityArcsConfig {
	return InfinityArcsConfig{
		Arcs:          1,
		Radius:        30,
		XOff:          50,
		Width:         8,
		Anchor:        AnchorCenter,
		Cap:           LineCapRound,
		Colors:        []string{"#3f88f8"},
		Opacity:       1,
		ArcDelay:      0.08,
		TailDelay:     0.25,
		Timing:        timing.TimingSinusoidal,
		CycleDuration: 2200,
		FPS:           60,
	}
}

func (c InfinityArcsConfig) validate() error {
	if c.Arcs < 1 {
		return fmt.Errorf("infinity arcs: arcs must be at least 1, got %d", c.Arcs)
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
	if _, err := timing.ResolveTiming(c.Timing, c.CustomTiming); err != nil {
		return err
	}
	return nil
}

// InfinityArcs animates arcs along a lemniscate path.
type InfinityArcs struct {
	cfg      InfinityArcsConfig
	ease     timing.EasingFunc
	palette  render.Palette
	geometry *lemniscateGeometry
}

// NewInfinityArcs validates the configuration, derives the cached
// lemniscate geometry, and builds the variant. Construction fails for
// XOff <= Radius.
func NewInfinityArcs(cfg InfinityArcsConfig) (*InfinityArcs, error) {
	v := &InfinityArcs{}
	if err := v.apply(cfg); err != nil {
		return nil, err
	}
	return v, nil
}

func (v *InfinityArcs) apply(cfg InfinityArcsConfig) error {
	if err := cfg.validate(); err != nil {
		return err
	}
	ease, err := timing.ResolveTiming(cfg.Timing, cfg.CustomTiming)
	if err != nil {
		return err
	}
	// The derived geometry only depends on radius and xOff; keep the
	// cached one across reconfigurations that change neither.
	g := v.geometry
	if g == nil || g.radius != cfg.Radius || g.xOff != cfg.XOff {
		g, err = deriveLemniscate(cfg.Radius, cfg.XOff)
		if err != nil {
			return err
		}
	}
	v.cfg = cfg
	v.ease = ease
	v.geometry = g
	v.palette = render.Palette{
		Colors:       cfg.Colors,
		Opacity:      cfg.Opacity,
		OpacityDelta: cfg.OpacityDelta,
	}
	return nil
}

// Config returns a copy of the current configuration.
func (v *InfinityArcs) Config() InfinityArcsConfig { return v.cfg }

// ClockOptions implements Variant.
func (v *InfinityArcs) ClockOptions() timing.ClockOptions {
	return timing.ClockOptions{
		CycleDuration:    v.cfg.CycleDuration,
		FPS:              v.cfg.FPS,
		Rest:             v.cfg.Rest,
		Iterations:       v.cfg.Iterations,
		MutationInterval: v.cfg.MutationInterval,
	}
}

// Mutate implements Variant.
func (v *InfinityArcs) Mutate() {
	if v.cfg.Mutator != nil {
		v.cfg.Mutator(v)
	}
}

// Draw implements Variant.
func (v *InfinityArcs) Draw(ctx render.Context, clock *timing.Clock) error {
	BaseDraw(ctx, v.cfg.Background)

	w, h := ctx.Size()
	track := lemnTrack{g: v.geometry, center: geom.Vec(w/2, h/2)}
	prog := clock.Progress()

	for i := v.cfg.Arcs - 1; i >= 0; i-- {
		delay := -float64(i) * v.cfg.ArcDelay
		lead := v.ease(prog, v.cfg.Rest, delay)
		tail := v.ease(prog, v.cfg.Rest, delay-v.cfg.TailDelay)

		width := math.Max(0, v.cfg.Width-float64(i)*v.cfg.WidthDelta)
		outer, mid, inner, err := radialOffsets(v.cfg.Anchor, v.cfg.Radius, v.cfg.Width, width)
		if err != nil {
			return err
		}

		ctx.SetFillStyle(v.palette.Color(len(v.cfg.Colors) - 1 - i))
		sweep := newArcSweep(track, outer, mid, inner, v.cfg.Cap)
		if err := sweep.buildPath(ctx, lead, tail); err != nil {
			return err
		}
		ctx.Fill()
	}
	return nil
}
