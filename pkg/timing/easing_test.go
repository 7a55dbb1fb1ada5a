package timing

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestWrapProgress(t *testing.T) {
	tests := []struct {
		name             string
		progress, offset float64
		want             float64
	}{
		{"no offset", 0.3, 0, 0.3},
		{"negative offset delays", 0.3, -0.1, 0.2},
		{"delay wraps backwards", 0.05, -0.1, 0.95},
		{"positive offset advances", 0.95, 0.1, 0.05},
		{"full cycle offset", 0.3, -1, 0.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapProgress(tt.progress, tt.offset)
			if math.Abs(got-tt.want) > eps {
				t.Errorf("WrapProgress(%v, %v) = %v, want %v", tt.progress, tt.offset, got, tt.want)
			}
		})
	}
}

// Every built-in curve must start at 0, end at 1, and hold 1 through
// the rest plateau.
func TestEasingBoundaries(t *testing.T) {
	curves := []struct {
		name string
		fn   EasingFunc
	}{
		{"linear", EaseLinear},
		{"quadratic", EaseQuadratic},
		{"cubic", EaseCubic},
		{"sinusoidal", EaseSinusoidal},
	}

	for _, c := range curves {
		t.Run(c.name, func(t *testing.T) {
			if got := c.fn(0, 0, 0); math.Abs(got) > eps {
				t.Errorf("%s(0) = %v, want 0", c.name, got)
			}
			if got := c.fn(0, 0.2, 0); math.Abs(got) > eps {
				t.Errorf("%s(0) with rest = %v, want 0", c.name, got)
			}
			// With rest=0.2 the curve completes at progress 0.8 and
			// plateaus at 1 for the remainder of the cycle.
			for _, p := range []float64{0.8, 0.9, 0.99} {
				if got := c.fn(p, 0.2, 0); math.Abs(got-1) > eps {
					t.Errorf("%s(%v) with rest 0.2 = %v, want 1", c.name, p, got)
				}
			}
		})
	}
}

func TestEasingShapes(t *testing.T) {
	tests := []struct {
		name     string
		fn       EasingFunc
		progress float64
		want     float64
	}{
		{"linear midpoint", EaseLinear, 0.5, 0.5},
		{"quadratic midpoint", EaseQuadratic, 0.5, 0.25},
		{"cubic midpoint", EaseCubic, 0.5, 0.125},
		{"sinusoidal midpoint", EaseSinusoidal, 0.5, 0.5},
		{"sinusoidal quarter", EaseSinusoidal, 0.25, 0.5 - math.Sqrt2/4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.fn(tt.progress, 0, 0)
			if math.Abs(got-tt.want) > eps {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

// A negative offset shifts the whole curve later in the cycle; with a
// linear curve the shift is exactly the offset.
func TestEasingOffsetStagger(t *testing.T) {
	if got := EaseLinear(0.3, 0, -0.1); math.Abs(got-0.2) > eps {
		t.Errorf("delayed linear = %v, want 0.2", got)
	}
	if got := EaseLinear(0.05, 0, -0.1); math.Abs(got-0.95) > eps {
		t.Errorf("wrapped delayed linear = %v, want 0.95", got)
	}
}

func TestResolveTiming(t *testing.T) {
	for _, name := range []TimingFunction{TimingLinear, TimingQuadratic, TimingCubic, TimingSinusoidal} {
		if _, err := ResolveTiming(name, nil); err != nil {
			t.Errorf("ResolveTiming(%q) error: %v", name, err)
		}
	}

	// Empty name defaults to sinusoidal.
	fn, err := ResolveTiming("", nil)
	if err != nil {
		t.Fatalf("ResolveTiming(\"\") error: %v", err)
	}
	if got, want := fn(0.5, 0, 0), 0.5; math.Abs(got-want) > eps {
		t.Errorf("default curve midpoint = %v, want %v", got, want)
	}

	if _, err := ResolveTiming(TimingCustom, nil); err == nil {
		t.Error("expected error for custom timing without a function")
	}
	if _, err := ResolveTiming("bounce", nil); err == nil {
		t.Error("expected error for unknown timing name")
	}
}

func TestResolveTimingCustom(t *testing.T) {
	fn, err := ResolveTiming(TimingCustom, func(p float64) float64 { return p * p })
	if err != nil {
		t.Fatalf("ResolveTiming(custom) error: %v", err)
	}
	// Custom curves ignore rest but honor the phase offset.
	if got := fn(0.5, 0.3, 0); math.Abs(got-0.25) > eps {
		t.Errorf("custom(0.5) = %v, want 0.25", got)
	}
	if got := fn(0.6, 0, -0.1); math.Abs(got-0.25) > eps {
		t.Errorf("custom(0.6) with offset -0.1 = %v, want 0.25", got)
	}
}
