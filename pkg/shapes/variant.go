package shapes

import (
	"fmt"
	"math"

	"github.com/decker502/whirl/pkg/render"
	"github.com/decker502/whirl/pkg/timing"
)

// Anchor selects how arcs of differing width align radially.
type Anchor string

const (
	// AnchorCenter centers every arc's width on its nominal radius.
	AnchorCenter Anchor = "center"
	// AnchorInner aligns all arcs on a shared inner edge; width deltas
	// grow outward.
	AnchorInner Anchor = "inner"
	// AnchorOuter aligns all arcs on a shared outer edge; width deltas
	// grow inward.
	AnchorOuter Anchor = "outer"
)

// ValidateAnchor rejects unrecognized anchor modes. The empty string
// selects the center default.
func ValidateAnchor(a Anchor) error {
	switch a {
	case AnchorCenter, AnchorInner, AnchorOuter, "":
		return nil
	default:
		return fmt.Errorf("shapes: unknown anchor %q", a)
	}
}

// Variant is one concrete animation shape. Implementations are pure
// per frame: Draw derives all geometry from the clock's progress and
// the current configuration, issuing commands to ctx, and must either
// complete a full frame or return an error before emitting anything
// for the failing shape.
type Variant interface {
	// Draw renders one frame.
	Draw(ctx render.Context, clock *timing.Clock) error

	// Mutate is the mutation hook, invoked synchronously by the clock
	// at the configured mutation interval.
	Mutate()

	// ClockOptions returns the timing configuration the variant wants
	// its clock to run with.
	ClockOptions() timing.ClockOptions
}

// BaseDraw is the shared first step of every variant's Draw: clear the
// surface and lay down the optional background fill. Variants call it
// explicitly at the top of Draw; there is no implicit dispatch.
func BaseDraw(ctx render.Context, background string) {
	w, h := ctx.Size()
	ctx.Clear(0, 0, w, h)
	if background != "" {
		ctx.FillBackground(background)
	}
}

// radialOffsets derives the outer/mid/inner offsets of one arc from its
// anchor mode. base is the arc's nominal radius, baseWidth the width of
// the primary arc (which fixes the shared edge for the inner and outer
// anchors), width the arc's own width. All results are floored at zero:
// an oversized width collapses the arc to a point rather than inverting
// it.
func radialOffsets(anchor Anchor, base, baseWidth, width float64) (outer, mid, inner float64, err error) {
	switch anchor {
	case AnchorCenter, "":
		mid = base
		outer = base + width/2
		inner = base - width/2
	case AnchorInner:
		inner = base - baseWidth/2
		outer = inner + width
		mid = inner + width/2
	case AnchorOuter:
		outer = base + baseWidth/2
		inner = outer - width
		mid = outer - width/2
	default:
		return 0, 0, 0, fmt.Errorf("shapes: unknown anchor %q", anchor)
	}
	return math.Max(0, outer), math.Max(0, mid), math.Max(0, inner), nil
}
