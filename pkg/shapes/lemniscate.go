package shapes

import (
	"fmt"
	"math"

	"github.com/decker502/whirl/pkg/geom"
	"github.com/decker502/whirl/pkg/render"
)

// lemniscateGeometry is the one-time derived geometry of an infinity
// path: two circles of the given radius centered at (±xOff, 0), joined
// by the tangent lines through the origin. It depends only on radius
// and xOff, never on progress, and its derivation involves square roots
// and inverse trigonometry, so variants cache it per configuration.
//
// The path is decomposed into 8 regions (4 straight tangent segments
// and 4 half-arcs) delimited by cumulative path-fraction checkpoints.
// Splitting each loop arc in half bounds every curved region below 180
// degrees; a half-arc still sweeps more than the ~120 degrees a single
// cubic tolerates whenever xOff < 2*radius, so edge emission subdivides
// again when needed.
type lemniscateGeometry struct {
	radius float64
	xOff   float64

	k      float64 // tangent slope magnitude
	segLen float64 // origin to tangent point
	theta  float64 // half-sweep of one loop arc

	checkpoints [8]float64
	regions     [8]lemnRegion
}

type lemnRegionKind int

const (
	regionStraight lemnRegionKind = iota
	regionArc
)

// lemnRegion is one of the 8 path regions in local lemniscate
// coordinates (origin at the crossing).
type lemnRegion struct {
	kind     lemnRegionKind
	from, to float64 // cumulative progress bounds

	// straight segments
	start  geom.Vector2
	dir    geom.Vector2 // unit travel direction
	length float64

	// arc segments
	center     geom.Vector2
	startAngle float64
	endAngle   float64
	leftLoop   bool // lateral offset sign flips on the left loop
}

// deriveLemniscate computes the cached geometry. xOff must exceed
// radius: at xOff <= radius the circles touch or overlap the crossing
// and no tangent line through the origin exists (the slope goes
// non-real), so the configuration is rejected.
func deriveLemniscate(radius, xOff float64) (*lemniscateGeometry, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("lemniscate: radius must be positive, got %v", radius)
	}
	if xOff <= radius {
		return nil, fmt.Errorf("lemniscate: xOff (%v) must exceed radius (%v)", xOff, radius)
	}

	r2 := radius * radius
	k := math.Sqrt(r2 / (xOff*xOff - r2))
	norm := math.Sqrt(1 + k*k)
	segLen := xOff / norm
	alpha := math.Atan2(1, k) // tangent-point angle on the left loop
	theta := math.Pi - alpha  // half-sweep of each loop arc
	arcLen := radius * theta

	// Tangent points: feet of the perpendiculars from the circle
	// centers onto the tangent lines through the origin.
	tangentPt := func(sx, sy float64) geom.Vector2 {
		return geom.Vec(sx*xOff/(1+k*k), sy*xOff*k/(1+k*k))
	}
	t2 := tangentPt(1, -1)
	t4 := tangentPt(-1, -1)

	centerR := geom.Vec(xOff, 0)
	centerL := geom.Vec(-xOff, 0)
	// Travel directions: dirOut serves origin->right loop and the
	// return from T4; dirBack serves T2->origin and origin->left loop.
	dirOut := geom.Vec(1, k).Scale(1 / norm)
	dirBack := geom.Vec(-1, k).Scale(1 / norm)

	g := &lemniscateGeometry{
		radius: radius,
		xOff:   xOff,
		k:      k,
		segLen: segLen,
		theta:  theta,
	}

	lengths := [8]float64{segLen, arcLen, arcLen, segLen, segLen, arcLen, arcLen, segLen}
	g.regions = [8]lemnRegion{
		{kind: regionStraight, start: geom.Vec(0, 0), dir: dirOut, length: segLen},
		{kind: regionArc, center: centerR, startAngle: theta, endAngle: 0},
		{kind: regionArc, center: centerR, startAngle: 0, endAngle: -theta},
		{kind: regionStraight, start: t2, dir: dirBack, length: segLen},
		{kind: regionStraight, start: geom.Vec(0, 0), dir: dirBack, length: segLen},
		{kind: regionArc, center: centerL, startAngle: alpha, endAngle: math.Pi, leftLoop: true},
		{kind: regionArc, center: centerL, startAngle: math.Pi, endAngle: 2*math.Pi - alpha, leftLoop: true},
		{kind: regionStraight, start: t4, dir: dirOut, length: segLen},
	}

	total := 0.0
	for _, l := range lengths {
		total += l
	}
	sum := 0.0
	for i, l := range lengths {
		sum += l
		g.checkpoints[i] = sum / total
	}
	g.checkpoints[7] = 1

	prev := 0.0
	for i := range g.regions {
		g.regions[i].from = prev
		g.regions[i].to = g.checkpoints[i]
		prev = g.checkpoints[i]
	}
	return g, nil
}

// lemnTrack adapts a cached lemniscate geometry to the Track interface,
// translated to a canvas position. Offsets are radius-like: the loop
// radius maps an offset of `radius` onto the spine, larger offsets move
// outward on the right loop and, because the ribbon boundary swaps at
// the crossing, inward on the left loop.
type lemnTrack struct {
	g      *lemniscateGeometry
	center geom.Vector2
}

func (t lemnTrack) SectionCount() int { return 8 }

func (t lemnTrack) SectionIndex(p float64) int {
	p = geom.Modulo(p, 1)
	for i, cp := range t.g.checkpoints {
		if p < cp {
			return i
		}
	}
	return -1
}

func (t lemnTrack) SectionRange(i int) (float64, float64) {
	if i == 0 {
		return 0, t.g.checkpoints[0]
	}
	return t.g.checkpoints[i-1], t.g.checkpoints[i]
}

func (t lemnTrack) regionAt(p float64) lemnRegion {
	i := t.SectionIndex(p)
	if i < 0 {
		i = 7
	}
	return t.g.regions[i]
}

func (t lemnTrack) localPoint(reg lemnRegion, p, offset float64) geom.Vector2 {
	tt := (geom.Modulo(p, 1) - reg.from) / (reg.to - reg.from)
	lateral := offset - t.g.radius
	if reg.kind == regionStraight {
		return reg.start.
			Add(reg.dir.Scale(tt * reg.length)).
			Add(reg.dir.Perp().Scale(lateral))
	}
	angle := reg.startAngle + tt*(reg.endAngle-reg.startAngle)
	radius := t.g.radius + lateral
	if reg.leftLoop {
		radius = t.g.radius - lateral
	}
	if radius < 0 {
		radius = 0
	}
	return reg.center.Add(geom.FromAngle(angle).Scale(radius))
}

func (t lemnTrack) PointAt(p, offset float64) geom.Vector2 {
	return t.center.Add(t.localPoint(t.regionAt(p), p, offset))
}

func (t lemnTrack) Tangent(p float64) geom.Vector2 {
	reg := t.regionAt(p)
	if reg.kind == regionStraight {
		return reg.dir
	}
	tt := (geom.Modulo(p, 1) - reg.from) / (reg.to - reg.from)
	angle := reg.startAngle + tt*(reg.endAngle-reg.startAngle)
	if reg.endAngle < reg.startAngle {
		return geom.FromAngle(angle - math.Pi/2)
	}
	return geom.FromAngle(angle + math.Pi/2)
}

// maxEdgeSweep is the largest arc sweep emitted as a single cubic.
const maxEdgeSweep = 2 * math.Pi / 3

func (t lemnTrack) Edge(ctx render.Context, from, to, offset float64) {
	// from and to share a section; the midpoint avoids classifying a
	// shared boundary into the neighboring region.
	reg := t.regionAt((from + to) / 2)
	if reg.kind == regionStraight {
		ctx.LineTo(t.center.Add(t.localPoint(reg, to, offset)))
		return
	}
	span := math.Abs(to-from) / (reg.to - reg.from) * math.Abs(reg.endAngle-reg.startAngle)
	pieces := 1
	if span > maxEdgeSweep {
		pieces = int(math.Ceil(span / maxEdgeSweep))
	}
	center := t.center.Add(reg.center)
	start := t.center.Add(t.localPoint(reg, from, offset))
	for i := 1; i <= pieces; i++ {
		p := from + (to-from)*float64(i)/float64(pieces)
		end := t.center.Add(t.localPoint(reg, p, offset))
		cp1, cp2 := geom.CircularBezierControlPoints(start, end, center)
		ctx.BezierCurveTo(cp1, cp2, end)
		start = end
	}
}
