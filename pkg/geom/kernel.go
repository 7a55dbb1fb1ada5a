package geom

import "math"

// Modulo returns the true mathematical modulo of n by m: the result is
// always in [0, m) for positive m, unlike math.Mod which keeps the sign
// of the dividend. Progress and angle arithmetic routinely produces
// negative intermediates (tail delays subtracted from lead progress), so
// truncating remainder would be wrong here.
func Modulo(n, m float64) float64 {
	r := math.Mod(n, m)
	if r < 0 {
		r += m
	}
	return r
}

// Clamp limits v to the closed interval [lo, hi].
func Clamp(lo, v, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// CircularBezierControlPoints returns the two control points of a cubic
// bezier approximating the circular arc from `from` to `to` around
// `center`, using the standard 4/3 tangent-length construction. The
// sweep direction follows the orientation of the endpoints around the
// center, so the same formula serves clockwise and counterclockwise
// arcs.
//
// The construction divides by the cross product of the two radius
// vectors and therefore degenerates when the endpoints are diametrically
// opposite (or coincident). Callers keep arcs inside sections of at most
// ~120 degrees, which both avoids the degeneracy and keeps the
// approximation error invisible at screen resolution.
func CircularBezierControlPoints(from, to, center Vector2) (cp1, cp2 Vector2) {
	a := from.Sub(center)
	b := to.Sub(center)

	q1 := a.Dot(a)
	q2 := q1 + a.Dot(b)
	cross := a.Cross(b)
	if cross == 0 {
		// Antipodal or coincident endpoints. Returning the chord keeps
		// the path finite; coincident endpoints occur when a sweep has
		// collapsed to a point, antipodal ones never reach us.
		return from, to
	}
	k2 := (4.0 / 3.0) * (math.Sqrt(2*q1*q2) - q2) / cross

	cp1 = Vector2{X: center.X + a.X - k2*a.Y, Y: center.Y + a.Y + k2*a.X}
	cp2 = Vector2{X: center.X + b.X + k2*b.Y, Y: center.Y + b.Y - k2*b.X}
	return cp1, cp2
}
