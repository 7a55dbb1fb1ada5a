// Package geom provides the small geometry kernel shared by all animation
// shapes: 2D vectors, true mathematical modulo, clamping, and the cubic
// bezier approximation of circular arcs.
package geom

import "math"

// Vector2 is a point or direction in 2D drawing space.
// Y grows downward, matching the canvas coordinate convention.
type Vector2 struct {
	X float64
	Y float64
}

// Vec is shorthand for Vector2{x, y}.
func Vec(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// FromAngle returns the unit vector at the given angle in radians.
// Angle 0 points along positive X; angles grow clockwise on screen
// (positive Y is down).
func FromAngle(angle float64) Vector2 {
	sin, cos := math.Sincos(angle)
	return Vector2{X: cos, Y: sin}
}

// Add returns v + o.
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v scaled by s.
func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product of v and o.
func (v Vector2) Dot(o Vector2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the 2D cross product (signed area) of v and o.
func (v Vector2) Cross(o Vector2) float64 {
	return v.X*o.Y - v.Y*o.X
}

// Length returns the magnitude of v.
func (v Vector2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns the unit vector in the direction of v.
// The zero vector is returned unchanged.
func (v Vector2) Normalize() Vector2 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return Vector2{X: v.X / l, Y: v.Y / l}
}

// Perp returns v rotated by +90 degrees (left of travel on screen,
// with Y pointing down this is the counterclockwise normal).
func (v Vector2) Perp() Vector2 {
	return Vector2{X: -v.Y, Y: v.X}
}

// Angle returns atan2(y, x) in radians.
func (v Vector2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}
