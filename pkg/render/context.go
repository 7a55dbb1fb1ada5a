// Package render defines the drawing-surface contract the animation
// core emits geometry to, plus the concrete backends: a command
// recorder used by tests and tooling, and an Ebitengine-backed context
// for on-screen rendering.
//
// The core never touches pixels. It computes points and hands them to a
// Context as canvas-style path commands; color strings use the
// 7-character hex form with an appended alpha byte (see Palette).
package render

import "github.com/decker502/whirl/pkg/geom"

// Context is the rendering collaborator consumed by shape variants.
// Implementations are not safe for concurrent use; one animation
// instance owns one context exclusively.
type Context interface {
	// Size returns the drawable surface dimensions in pixels.
	Size() (w, h float64)

	// Clear erases the given rectangular region.
	Clear(x, y, w, h float64)

	// FillBackground floods the whole surface with the given color.
	FillBackground(color string)

	// BeginPath starts a new path, discarding any unprinted one.
	BeginPath()

	MoveTo(p geom.Vector2)
	LineTo(p geom.Vector2)
	BezierCurveTo(cp1, cp2, end geom.Vector2)

	// Arc appends a circular arc around center between the two angles
	// (radians). counterclockwise selects the sweep direction.
	Arc(center geom.Vector2, radius, startAngle, endAngle float64, counterclockwise bool)

	// Fill fills the current path with the current fill style.
	Fill()

	// Stroke outlines the current path with the current stroke style
	// and line width.
	Stroke()

	SetFillStyle(color string)
	SetStrokeStyle(color string)
	SetLineWidth(width float64)
}
