// Package shapes implements the built-in animation variants and the
// shared arc path construction they are built from. A variant combines
// a progress clock with immutable-per-frame configuration, derives
// point geometry, and emits path commands to a render.Context.
package shapes

import (
	"math"

	"github.com/decker502/whirl/pkg/geom"
	"github.com/decker502/whirl/pkg/render"
)

// Track is a closed path an arc can sweep along, decomposed into fixed
// sections inside which a circular arc stays well-conditioned for cubic
// bezier approximation (at most ~120 degrees of curvature per section).
//
// Positions on the track are expressed as path progress in [0, 1).
// Offsets are radius-like magnitudes: the circle track reads them as
// radii, the lemniscate track as signed lateral distance relative to
// its loop radius.
type Track interface {
	// SectionCount returns the number of fixed sections.
	SectionCount() int

	// SectionIndex classifies a progress value into a section, or -1 if
	// the value cannot be classified (a logic error upstream).
	SectionIndex(p float64) int

	// SectionRange returns the progress interval covered by section i.
	SectionRange(i int) (start, end float64)

	// PointAt returns the point at path progress p and the given offset.
	PointAt(p, offset float64) geom.Vector2

	// Tangent returns the unit direction of travel at progress p.
	Tangent(p float64) geom.Vector2

	// Edge continues the current path from PointAt(from, offset) to
	// PointAt(to, offset) along the track boundary at that offset. Both
	// positions must lie in the same section.
	Edge(ctx render.Context, from, to, offset float64)
}

// circleTrack is the plain circular topology: three 120-degree
// sections around a center, optionally rotated as a whole.
type circleTrack struct {
	center   geom.Vector2
	rotation float64 // radians applied to progress 0
}

const circleSections = 3

func (t circleTrack) angle(p float64) float64 {
	return t.rotation + p*2*math.Pi
}

func (t circleTrack) SectionCount() int { return circleSections }

func (t circleTrack) SectionIndex(p float64) int {
	p = geom.Modulo(p, 1)
	switch {
	case p < 1.0/3:
		return 0
	case p < 2.0/3:
		return 1
	case p < 1:
		return 2
	default:
		return -1
	}
}

func (t circleTrack) SectionRange(i int) (float64, float64) {
	return float64(i) / circleSections, float64(i+1) / circleSections
}

func (t circleTrack) PointAt(p, offset float64) geom.Vector2 {
	return t.center.Add(geom.FromAngle(t.angle(p)).Scale(offset))
}

func (t circleTrack) Tangent(p float64) geom.Vector2 {
	return geom.FromAngle(t.angle(p) + math.Pi/2)
}

func (t circleTrack) Edge(ctx render.Context, from, to, offset float64) {
	end := t.PointAt(to, offset)
	cp1, cp2 := geom.CircularBezierControlPoints(t.PointAt(from, offset), end, t.center)
	ctx.BezierCurveTo(cp1, cp2, end)
}
