package shapes

import "github.com/decker502/whirl/pkg/timing"

// Reconfiguration is a shallow, last-write-wins merge: every patch
// field is optional and an omitted (nil) field keeps its prior value.
// The merged configuration is validated as a whole before it replaces
// the running one, so a rejected patch leaves the variant untouched.

// RotatingArcsPatch is a partial update for RotatingArcsConfig.
type RotatingArcsPatch struct {
	Arcs         *int
	Radius       *float64
	RadiusDelta  *float64
	Width        *float64
	WidthDelta   *float64
	Anchor       *Anchor
	Cap          *LineCap
	Colors       []string
	Opacity      *float64
	OpacityDelta *float64
	ArcDelay     *float64
	TailDelay    *float64
	Rotations    *float64
	TrackColor   *string
	BorderColor  *string
	BorderWidth  *float64
	Background   *string
	Timing       *timing.TimingFunction
	CustomTiming timing.CustomTimingFunc

	CycleDuration    *float64
	FPS              *float64
	Rest             *float64
	Iterations       *int
	MutationInterval *float64
	Mutator          func(*RotatingArcs)
}

// Reconfigure merges the patch into the current configuration and
// revalidates. Safe between frames only; never call it mid-draw.
func (v *RotatingArcs) Reconfigure(p RotatingArcsPatch) error {
	cfg := v.cfg
	setInt(&cfg.Arcs, p.Arcs)
	setFloat(&cfg.Radius, p.Radius)
	setFloat(&cfg.RadiusDelta, p.RadiusDelta)
	setFloat(&cfg.Width, p.Width)
	setFloat(&cfg.WidthDelta, p.WidthDelta)
	if p.Anchor != nil {
		cfg.Anchor = *p.Anchor
	}
	if p.Cap != nil {
		cfg.Cap = *p.Cap
	}
	if p.Colors != nil {
		cfg.Colors = append([]string(nil), p.Colors...)
	}
	setFloat(&cfg.Opacity, p.Opacity)
	setFloat(&cfg.OpacityDelta, p.OpacityDelta)
	setFloat(&cfg.ArcDelay, p.ArcDelay)
	setFloat(&cfg.TailDelay, p.TailDelay)
	setFloat(&cfg.Rotations, p.Rotations)
	setString(&cfg.TrackColor, p.TrackColor)
	setString(&cfg.BorderColor, p.BorderColor)
	setFloat(&cfg.BorderWidth, p.BorderWidth)
	setString(&cfg.Background, p.Background)
	if p.Timing != nil {
		cfg.Timing = *p.Timing
	}
	if p.CustomTiming != nil {
		cfg.CustomTiming = p.CustomTiming
	}
	setFloat(&cfg.CycleDuration, p.CycleDuration)
	setFloat(&cfg.FPS, p.FPS)
	setFloat(&cfg.Rest, p.Rest)
	setInt(&cfg.Iterations, p.Iterations)
	setFloat(&cfg.MutationInterval, p.MutationInterval)
	if p.Mutator != nil {
		cfg.Mutator = p.Mutator
	}
	return v.apply(cfg)
}

// InfinityArcsPatch is a partial update for InfinityArcsConfig.
type InfinityArcsPatch struct {
	Arcs         *int
	Radius       *float64
	XOff         *float64
	Width        *float64
	WidthDelta   *float64
	Anchor       *Anchor
	Cap          *LineCap
	Colors       []string
	Opacity      *float64
	OpacityDelta *float64
	ArcDelay     *float64
	TailDelay    *float64
	Background   *string
	Timing       *timing.TimingFunction
	CustomTiming timing.CustomTimingFunc

	CycleDuration    *float64
	FPS              *float64
	Rest             *float64
	Iterations       *int
	MutationInterval *float64
	Mutator          func(*InfinityArcs)
}

// Reconfigure merges the patch, re-deriving the cached lemniscate
// geometry when radius or xOff change; geometric infeasibility rejects
// the whole patch.
func (v *InfinityArcs) Reconfigure(p InfinityArcsPatch) error {
	cfg := v.cfg
	setInt(&cfg.Arcs, p.Arcs)
	setFloat(&cfg.Radius, p.Radius)
	setFloat(&cfg.XOff, p.XOff)
	setFloat(&cfg.Width, p.Width)
	setFloat(&cfg.WidthDelta, p.WidthDelta)
	if p.Anchor != nil {
		cfg.Anchor = *p.Anchor
	}
	if p.Cap != nil {
		cfg.Cap = *p.Cap
	}
	if p.Colors != nil {
		cfg.Colors = append([]string(nil), p.Colors...)
	}
	setFloat(&cfg.Opacity, p.Opacity)
	setFloat(&cfg.OpacityDelta, p.OpacityDelta)
	setFloat(&cfg.ArcDelay, p.ArcDelay)
	setFloat(&cfg.TailDelay, p.TailDelay)
	setString(&cfg.Background, p.Background)
	if p.Timing != nil {
		cfg.Timing = *p.Timing
	}
	if p.CustomTiming != nil {
		cfg.CustomTiming = p.CustomTiming
	}
	setFloat(&cfg.CycleDuration, p.CycleDuration)
	setFloat(&cfg.FPS, p.FPS)
	setFloat(&cfg.Rest, p.Rest)
	setInt(&cfg.Iterations, p.Iterations)
	setFloat(&cfg.MutationInterval, p.MutationInterval)
	if p.Mutator != nil {
		cfg.Mutator = p.Mutator
	}
	return v.apply(cfg)
}

// HexPulseRingsPatch is a partial update for HexPulseRingsConfig.
type HexPulseRingsPatch struct {
	SideLength    *int
	DotRadius     *float64
	Spacing       *float64
	Colors        []string
	Opacity       *float64
	OpacityDelta  *float64
	RingDelay     *float64
	Rotations     *float64
	AlternateSpin *bool
	// Pulse descriptors are copied by value, so later caller-side
	// mutation of the patch cannot reach the running configuration.
	OpacityPulse *PulseDescriptor
	RadiusPulse  *PulseDescriptor
	Background   *string
	Timing       *timing.TimingFunction
	CustomTiming timing.CustomTimingFunc

	CycleDuration    *float64
	FPS              *float64
	Rest             *float64
	Iterations       *int
	MutationInterval *float64
	Mutator          func(*HexPulseRings)
}

// Reconfigure merges the patch into the current configuration and
// revalidates.
func (v *HexPulseRings) Reconfigure(p HexPulseRingsPatch) error {
	cfg := v.cfg
	setInt(&cfg.SideLength, p.SideLength)
	setFloat(&cfg.DotRadius, p.DotRadius)
	setFloat(&cfg.Spacing, p.Spacing)
	if p.Colors != nil {
		cfg.Colors = append([]string(nil), p.Colors...)
	}
	setFloat(&cfg.Opacity, p.Opacity)
	setFloat(&cfg.OpacityDelta, p.OpacityDelta)
	setFloat(&cfg.RingDelay, p.RingDelay)
	setFloat(&cfg.Rotations, p.Rotations)
	if p.AlternateSpin != nil {
		cfg.AlternateSpin = *p.AlternateSpin
	}
	if p.OpacityPulse != nil {
		cfg.OpacityPulse = *p.OpacityPulse
	}
	if p.RadiusPulse != nil {
		cfg.RadiusPulse = *p.RadiusPulse
	}
	setString(&cfg.Background, p.Background)
	if p.Timing != nil {
		cfg.Timing = *p.Timing
	}
	if p.CustomTiming != nil {
		cfg.CustomTiming = p.CustomTiming
	}
	setFloat(&cfg.CycleDuration, p.CycleDuration)
	setFloat(&cfg.FPS, p.FPS)
	setFloat(&cfg.Rest, p.Rest)
	setInt(&cfg.Iterations, p.Iterations)
	setFloat(&cfg.MutationInterval, p.MutationInterval)
	if p.Mutator != nil {
		cfg.Mutator = p.Mutator
	}
	return v.apply(cfg)
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func setFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
