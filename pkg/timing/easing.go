// Package timing owns the animation progress engine: the cycle clock
// mapping wall-clock time to normalized progress, the easing functions
// applied to that progress, and the frame scheduler abstraction the
// clock re-arms itself with.
package timing

import (
	"fmt"
	"math"

	"github.com/decker502/whirl/pkg/geom"
)

// TimingFunction names a built-in easing curve.
type TimingFunction string

const (
	TimingLinear     TimingFunction = "linear"
	TimingSinusoidal TimingFunction = "sinusoidal"
	TimingQuadratic  TimingFunction = "quadratic"
	TimingCubic      TimingFunction = "cubic"
	// TimingCustom delegates to a caller-supplied function. Selecting it
	// without supplying one is a configuration error.
	TimingCustom TimingFunction = "custom"
)

// EasingFunc maps raw linear progress to eased progress.
//
// rest is the fraction of the cycle spent static at the start of each
// loop, in [0, 1). offset is a cyclic phase shift: negative values delay
// the curve, which is how successive arcs or rings are staggered.
// All built-in curves return 0 at progress 0 and 1 at progress 1-rest
// (and stay at 1 through the rest plateau boundary).
type EasingFunc func(progress, rest, offset float64) float64

// CustomTimingFunc is a caller-supplied easing curve over [0, 1].
type CustomTimingFunc func(progress float64) float64

// WrapProgress applies a cyclic phase offset to progress, keeping the
// result in [0, 1). An offset of -d delays the curve by the fraction d
// of a cycle.
func WrapProgress(progress, offset float64) float64 {
	return geom.Modulo(progress+1+offset, 1)
}

// easeBase computes the shared pre-eased value: offset-shifted progress
// stretched over the non-resting part of the cycle and capped at 1.
func easeBase(progress, rest, offset float64) float64 {
	return math.Min(1, WrapProgress(progress, offset)/(1-rest))
}

// EaseLinear is constant-rate progress with the rest plateau applied.
func EaseLinear(progress, rest, offset float64) float64 {
	return easeBase(progress, rest, offset)
}

// EaseQuadratic squares the linear base value (slow start, fast end).
func EaseQuadratic(progress, rest, offset float64) float64 {
	x := easeBase(progress, rest, offset)
	return x * x
}

// EaseCubic cubes the linear base value (slower start, faster end).
func EaseCubic(progress, rest, offset float64) float64 {
	x := easeBase(progress, rest, offset)
	return x * x * x
}

// EaseSinusoidal is the smooth S-curve 0.5 + sin((x-0.5)*pi)/2, the
// default for most shapes.
func EaseSinusoidal(progress, rest, offset float64) float64 {
	x := easeBase(progress, rest, offset)
	return 0.5 + math.Sin((x-0.5)*math.Pi)/2
}

// ResolveTiming maps a timing function name to its implementation.
// TimingCustom wraps the supplied function, ignoring rest and applying
// only the phase offset. An unknown name, or TimingCustom without a
// function, is a configuration error.
func ResolveTiming(name TimingFunction, custom CustomTimingFunc) (EasingFunc, error) {
	switch name {
	case TimingLinear:
		return EaseLinear, nil
	case TimingQuadratic:
		return EaseQuadratic, nil
	case TimingCubic:
		return EaseCubic, nil
	case TimingSinusoidal, "":
		return EaseSinusoidal, nil
	case TimingCustom:
		if custom == nil {
			return nil, fmt.Errorf("timing: custom timing function selected but not supplied")
		}
		return func(progress, rest, offset float64) float64 {
			return custom(WrapProgress(progress, offset))
		}, nil
	default:
		return nil, fmt.Errorf("timing: unknown timing function %q", name)
	}
}
