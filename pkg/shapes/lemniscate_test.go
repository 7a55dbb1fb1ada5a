package shapes

import (
	"math"
	"testing"

	"github.com/decker502/whirl/pkg/geom"
	"github.com/decker502/whirl/pkg/render"
)

func TestDeriveLemniscateRejectsBadGeometry(t *testing.T) {
	tests := []struct {
		name         string
		radius, xOff float64
	}{
		{"zero radius", 0, 50},
		{"negative radius", -5, 50},
		{"xOff equals radius", 30, 30},
		{"xOff below radius", 30, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := deriveLemniscate(tt.radius, tt.xOff); err == nil {
				t.Errorf("deriveLemniscate(%v, %v) succeeded, want error", tt.radius, tt.xOff)
			}
		})
	}
}

func TestLemniscateCheckpoints(t *testing.T) {
	g, err := deriveLemniscate(30, 50)
	if err != nil {
		t.Fatalf("deriveLemniscate: %v", err)
	}

	prev := 0.0
	for i, cp := range g.checkpoints {
		if cp <= prev {
			t.Errorf("checkpoint %d = %v, not above %v", i, cp, prev)
		}
		if cp > 1 {
			t.Errorf("checkpoint %d = %v, above 1", i, cp)
		}
		prev = cp
	}
	if g.checkpoints[7] != 1 {
		t.Errorf("final checkpoint = %v, want exactly 1", g.checkpoints[7])
	}

	// Straight and arc region lengths mirror across the two loops, so
	// opposite checkpoint gaps must match.
	gap := func(i int) float64 {
		if i == 0 {
			return g.checkpoints[0]
		}
		return g.checkpoints[i] - g.checkpoints[i-1]
	}
	for i := 0; i < 4; i++ {
		if math.Abs(gap(i)-gap(i+4)) > 1e-12 {
			t.Errorf("gap %d (%v) differs from gap %d (%v)", i, gap(i), i+4, gap(i+4))
		}
	}
}

func TestLemnTrackSectionClassification(t *testing.T) {
	g, err := deriveLemniscate(30, 50)
	if err != nil {
		t.Fatalf("deriveLemniscate: %v", err)
	}
	track := lemnTrack{g: g, center: geom.Vec(0, 0)}

	if got := track.SectionCount(); got != 8 {
		t.Fatalf("SectionCount = %d, want 8", got)
	}
	for i := 0; i < 8; i++ {
		start, end := track.SectionRange(i)
		if got := track.SectionIndex((start + end) / 2); got != i {
			t.Errorf("SectionIndex(mid of %d) = %d", i, got)
		}
	}
}

// The spine (offset == radius) starts at the crossing, reaches the
// loop extremes at the arc midpoints, and stays continuous across
// every region boundary.
func TestLemnTrackSpineGeometry(t *testing.T) {
	const radius, xOff = 30.0, 50.0
	g, err := deriveLemniscate(radius, xOff)
	if err != nil {
		t.Fatalf("deriveLemniscate: %v", err)
	}
	center := geom.Vec(100, 100)
	track := lemnTrack{g: g, center: center}

	if p := track.PointAt(0, radius); p.Sub(center).Length() > 1e-9 {
		t.Errorf("PointAt(0) = %+v, want the crossing at %+v", p, center)
	}

	// Boundary of regions 1/2 is the rightmost point of the right loop.
	right := track.PointAt(g.checkpoints[1], radius)
	if math.Abs(right.X-(100+xOff+radius)) > 1e-9 || math.Abs(right.Y-100) > 1e-9 {
		t.Errorf("rightmost point = %+v, want {%v 100}", right, 100+xOff+radius)
	}

	// Boundary of regions 5/6 is the leftmost point of the left loop.
	left := track.PointAt(g.checkpoints[5], radius)
	if math.Abs(left.X-(100-xOff-radius)) > 1e-9 || math.Abs(left.Y-100) > 1e-9 {
		t.Errorf("leftmost point = %+v, want {%v 100}", left, 100-xOff-radius)
	}
}

func TestLemnTrackContinuity(t *testing.T) {
	g, err := deriveLemniscate(30, 50)
	if err != nil {
		t.Fatalf("deriveLemniscate: %v", err)
	}
	track := lemnTrack{g: g, center: geom.Vec(0, 0)}

	const e = 1e-7
	for _, offset := range []float64{30, 25, 36} {
		for i, cp := range g.checkpoints {
			before := track.PointAt(cp-e, offset)
			after := track.PointAt(geom.Modulo(cp+e, 1), offset)
			if d := after.Sub(before).Length(); d > 1e-3 {
				t.Errorf("offset %v: gap %v at checkpoint %d (%v)", offset, d, i, cp)
			}
		}
	}
}

// The ribbon boundary swaps sides at the crossing: an offset above the
// loop radius moves outward on the right loop but inward on the left.
func TestLemnTrackLateralFlip(t *testing.T) {
	const radius, xOff, s = 30.0, 50.0, 5.0
	g, err := deriveLemniscate(radius, xOff)
	if err != nil {
		t.Fatalf("deriveLemniscate: %v", err)
	}
	track := lemnTrack{g: g, center: geom.Vec(0, 0)}

	right := track.PointAt(g.checkpoints[1], radius+s)
	if math.Abs(right.X-(xOff+radius+s)) > 1e-9 {
		t.Errorf("right loop at offset +%v: x = %v, want %v", s, right.X, xOff+radius+s)
	}

	left := track.PointAt(g.checkpoints[5], radius+s)
	if math.Abs(left.X-(-xOff-radius+s)) > 1e-9 {
		t.Errorf("left loop at offset +%v: x = %v, want %v", s, left.X, -xOff-radius+s)
	}
}

func TestLemnTrackTangentContinuity(t *testing.T) {
	g, err := deriveLemniscate(30, 50)
	if err != nil {
		t.Fatalf("deriveLemniscate: %v", err)
	}
	track := lemnTrack{g: g, center: geom.Vec(0, 0)}

	const e = 1e-7
	for i, cp := range g.checkpoints {
		before := track.Tangent(cp - e)
		after := track.Tangent(geom.Modulo(cp+e, 1))
		if math.Abs(before.Length()-1) > 1e-9 {
			t.Errorf("tangent before checkpoint %d not unit: %v", i, before.Length())
		}
		if d := after.Sub(before).Length(); d > 1e-3 {
			t.Errorf("tangent jump %v at checkpoint %d", d, i)
		}
	}
}

// A half-arc region sweeps more than 120 degrees whenever xOff is below
// twice the radius (126.9 degrees at 30/50), which is past what one
// cubic approximates cleanly. Edge must subdivide such spans and keep
// every emitted curve close to the loop circle.
func TestLemnTrackEdgeSubdividesWideArcs(t *testing.T) {
	g, err := deriveLemniscate(30, 50)
	if err != nil {
		t.Fatalf("deriveLemniscate: %v", err)
	}
	track := lemnTrack{g: g, center: geom.Vec(0, 0)}

	r := render.NewRecorder(200, 200)
	track.Edge(r, g.checkpoints[0], g.checkpoints[1], g.radius)
	if got := r.Count(render.OpBezierCurveTo); got != 2 {
		t.Fatalf("bezier count = %d, want 2 for a %v degree sweep", got, g.theta*180/math.Pi)
	}

	// Sampled curve points must stay on the right loop circle within
	// the approximation tolerance of a sub-120-degree cubic.
	arcCenter := geom.Vec(g.xOff, 0)
	prev := track.PointAt(g.checkpoints[0], g.radius)
	for _, c := range r.Commands {
		if c.Op != render.OpBezierCurveTo {
			continue
		}
		for _, bt := range []float64{0.25, 0.5, 0.75} {
			p := cubicAt(prev, c.Points[0], c.Points[1], c.Points[2], bt)
			if d := math.Abs(p.Sub(arcCenter).Length() - g.radius); d > 0.05 {
				t.Errorf("curve point %v is %v off the loop circle", p, d)
			}
		}
		prev = c.Points[2]
	}

	// A wider lemniscate keeps its half-arcs under the bound and needs
	// no subdivision.
	g2, err := deriveLemniscate(30, 70)
	if err != nil {
		t.Fatalf("deriveLemniscate: %v", err)
	}
	track2 := lemnTrack{g: g2, center: geom.Vec(0, 0)}
	r2 := render.NewRecorder(200, 200)
	track2.Edge(r2, g2.checkpoints[0], g2.checkpoints[1], g2.radius)
	if got := r2.Count(render.OpBezierCurveTo); got != 1 {
		t.Errorf("bezier count = %d, want 1 for a %v degree sweep", got, g2.theta*180/math.Pi)
	}
}

func cubicAt(p0, p1, p2, p3 geom.Vector2, t float64) geom.Vector2 {
	u := 1 - t
	a := p0.Scale(u * u * u)
	b := p1.Scale(3 * u * u * t)
	c := p2.Scale(3 * u * t * t)
	d := p3.Scale(t * t * t)
	return a.Add(b).Add(c).Add(d)
}

// An arc sweep must build on the lemniscate track exactly as it does on
// the circle: one subpath, bounded error-free walk, wherever the lead
// and tail fall.
func TestBuildPathOnLemniscate(t *testing.T) {
	g, err := deriveLemniscate(30, 50)
	if err != nil {
		t.Fatalf("deriveLemniscate: %v", err)
	}
	track := lemnTrack{g: g, center: geom.Vec(100, 100)}
	s := newArcSweep(track, 34, 30, 26, LineCapRound)

	cases := []struct {
		name       string
		lead, tail float64
	}{
		{"contained in first straight", 0.08, 0.02},
		{"across the right loop", 0.45, 0.1},
		{"across the crossing", 0.6, 0.4},
		{"wrapped", 0.05, 0.85},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			r := render.NewRecorder(200, 200)
			if err := s.buildPath(r, tt.lead, tt.tail); err != nil {
				t.Fatalf("buildPath: %v", err)
			}
			if got := r.Count(render.OpMoveTo); got != 1 {
				t.Errorf("moveTo count = %d, want 1", got)
			}
		})
	}
}
