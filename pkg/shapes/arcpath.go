package shapes

import (
	"errors"
	"fmt"
	"math"

	"github.com/decker502/whirl/pkg/geom"
	"github.com/decker502/whirl/pkg/render"
)

// LineCap selects the end-cap style of a swept arc.
type LineCap string

const (
	// LineCapFlat connects the inner and outer boundary with a straight
	// line at each end.
	LineCapFlat LineCap = "flat"
	// LineCapRound bulges each end outward through a tangent guide
	// point, producing a semicircular cap.
	LineCapRound LineCap = "round"
)

// ValidateLineCap rejects unrecognized cap styles. The empty string
// selects the flat default.
func ValidateLineCap(c LineCap) error {
	switch c {
	case LineCapFlat, LineCapRound, "":
		return nil
	default:
		return fmt.Errorf("shapes: unknown line cap %q", c)
	}
}

// ErrSectionWalk reports that the arc section walk failed to terminate
// within its bound. It indicates a track or builder defect, not bad
// user input.
var ErrSectionWalk = errors.New("shapes: arc section walk exceeded its bound")

// ErrSectionIndex reports an unclassifiable lead or tail position.
var ErrSectionIndex = errors.New("shapes: progress outside all track sections")

// arcSweep builds the outline of one swept arc on a track: a single
// continuous, non-self-overlapping closed path between the tail and
// lead positions, honoring the configured end caps. Offsets are floored
// at zero so an oversized width collapses the arc instead of turning it
// inside out.
type arcSweep struct {
	track    Track
	outer    float64
	mid      float64
	inner    float64
	capStyle LineCap
}

func newArcSweep(track Track, outer, mid, inner float64, capStyle LineCap) arcSweep {
	return arcSweep{
		track:    track,
		outer:    math.Max(0, outer),
		mid:      math.Max(0, mid),
		inner:    math.Max(0, inner),
		capStyle: capStyle,
	}
}

// buildPath emits the arc outline from tail to lead as one closed path.
// The caller sets styles beforehand and fills afterwards; on error no
// assumptions can be made about the path state and nothing should be
// filled.
func (s arcSweep) buildPath(ctx render.Context, lead, tail float64) error {
	lead = geom.Modulo(lead, 1)
	tail = geom.Modulo(tail, 1)

	leadSection := s.track.SectionIndex(lead)
	tailSection := s.track.SectionIndex(tail)
	if leadSection < 0 || tailSection < 0 {
		return fmt.Errorf("lead=%v tail=%v: %w", lead, tail, ErrSectionIndex)
	}

	ctx.BeginPath()
	// lead == tail is a collapsed sweep: the contained quad degenerates
	// to a point and fills nothing. Only a genuine wrap (lead behind
	// tail in the same section) takes the walk.
	if leadSection == tailSection && lead >= tail {
		s.contained(ctx, lead, tail)
		return nil
	}
	return s.walk(ctx, lead, tail, leadSection, tailSection)
}

// contained draws the arc when lead and tail share a section and the
// lead has not wrapped past the tail: one quad with capped ends, no
// boundary crossings.
func (s arcSweep) contained(ctx render.Context, lead, tail float64) {
	ctx.MoveTo(s.track.PointAt(tail, s.inner))
	s.cap(ctx, tail, s.inner, s.outer, s.track.Tangent(tail).Scale(-1))
	s.track.Edge(ctx, tail, lead, s.outer)
	s.cap(ctx, lead, s.outer, s.inner, s.track.Tangent(lead))
	s.track.Edge(ctx, lead, tail, s.inner)
}

// walk handles every other case by visiting sections from the tail
// forward along the outer boundary until the lead is drawn, then
// backward along the inner boundary until the loop closes at the tail.
// Drawing only one boundary edge per visit is what keeps the outline
// from self-intersecting.
func (s arcSweep) walk(ctx render.Context, lead, tail float64, leadSection, tailSection int) error {
	n := s.track.SectionCount()
	sec := tailSection
	drawnLead := false
	drawnTail := false

	for steps := 0; ; steps++ {
		if steps > 2*n {
			return fmt.Errorf("lead=%v tail=%v after %d steps: %w", lead, tail, steps, ErrSectionWalk)
		}

		switch {
		case sec == tailSection && drawnLead:
			// Back where we started: close the outline along the inner
			// boundary down to the tail point.
			_, end := s.track.SectionRange(sec)
			s.track.Edge(ctx, end, tail, s.inner)
			return nil

		case sec == tailSection && !drawnTail:
			_, end := s.track.SectionRange(sec)
			ctx.MoveTo(s.track.PointAt(tail, s.inner))
			s.cap(ctx, tail, s.inner, s.outer, s.track.Tangent(tail).Scale(-1))
			s.track.Edge(ctx, tail, end, s.outer)
			drawnTail = true

		case sec == leadSection:
			start, _ := s.track.SectionRange(sec)
			s.track.Edge(ctx, start, lead, s.outer)
			s.cap(ctx, lead, s.outer, s.inner, s.track.Tangent(lead))
			s.track.Edge(ctx, lead, start, s.inner)
			drawnLead = true

		case !drawnLead:
			start, end := s.track.SectionRange(sec)
			s.track.Edge(ctx, start, end, s.outer)

		default:
			start, end := s.track.SectionRange(sec)
			s.track.Edge(ctx, end, start, s.inner)
		}

		// The walk runs forward until the lead is emitted, then turns
		// around and runs back to the tail.
		if drawnLead {
			sec = (sec + n - 1) % n
		} else {
			sec = (sec + 1) % n
		}
	}
}

// cap connects the boundary points at progress p from offset fromOff to
// offset toOff. dir is the outward travel direction at the arc end (the
// tangent at the lead, the reversed tangent at the tail); round caps
// extend their control points along it so the cap bulges away from the
// arc body instead of folding into it.
func (s arcSweep) cap(ctx render.Context, p, fromOff, toOff float64, dir geom.Vector2) {
	to := s.track.PointAt(p, toOff)
	if s.capStyle != LineCapRound {
		ctx.LineTo(to)
		return
	}
	from := s.track.PointAt(p, fromOff)
	// A semicircle is one cubic whose control points sit 4/3 of the
	// radius along the tangent.
	ext := dir.Scale(math.Abs(toOff-fromOff) / 2 * (4.0 / 3.0))
	ctx.BezierCurveTo(from.Add(ext), to.Add(ext), to)
}
