package render

import (
	"image"
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/whirl/pkg/geom"
)

// whiteSubImage is the 1x1 texture used for solid-color path triangles,
// the standard Ebitengine vector-drawing setup. The sub-image avoids
// bleeding at triangle edges.
var whiteSubImage *ebiten.Image

func init() {
	whiteImage := ebiten.NewImage(3, 3)
	whiteImage.Fill(color.White)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

// EbitenContext renders path commands onto an offscreen ebiten image
// using vector.Path triangulation. One context owns its image
// exclusively; Image exposes it for compositing onto the screen.
type EbitenContext struct {
	dst  *ebiten.Image
	path vector.Path

	fillColor   color.RGBA
	strokeColor color.RGBA
	lineWidth   float32
}

// NewEbitenContext creates a context with its own offscreen surface of
// the given pixel size.
func NewEbitenContext(w, h int) *EbitenContext {
	return &EbitenContext{
		dst:         ebiten.NewImage(w, h),
		fillColor:   color.RGBA{A: 0xff},
		strokeColor: color.RGBA{A: 0xff},
		lineWidth:   1,
	}
}

// Image returns the offscreen surface the context draws into.
func (c *EbitenContext) Image() *ebiten.Image {
	return c.dst
}

func (c *EbitenContext) Size() (float64, float64) {
	b := c.dst.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (c *EbitenContext) Clear(x, y, w, h float64) {
	b := c.dst.Bounds()
	region := image.Rect(
		b.Min.X+int(math.Floor(x)), b.Min.Y+int(math.Floor(y)),
		b.Min.X+int(math.Ceil(x+w)), b.Min.Y+int(math.Ceil(y+h)),
	)
	c.dst.SubImage(region).(*ebiten.Image).Clear()
}

func (c *EbitenContext) FillBackground(colorStr string) {
	clr, err := ParseHex(colorStr)
	if err != nil {
		log.Printf("[Render] background: %v", err)
		return
	}
	c.dst.Fill(clr)
}

func (c *EbitenContext) BeginPath() {
	c.path = vector.Path{}
}

func (c *EbitenContext) MoveTo(p geom.Vector2) {
	c.path.MoveTo(float32(p.X), float32(p.Y))
}

func (c *EbitenContext) LineTo(p geom.Vector2) {
	c.path.LineTo(float32(p.X), float32(p.Y))
}

func (c *EbitenContext) BezierCurveTo(cp1, cp2, end geom.Vector2) {
	c.path.CubicTo(
		float32(cp1.X), float32(cp1.Y),
		float32(cp2.X), float32(cp2.Y),
		float32(end.X), float32(end.Y),
	)
}

func (c *EbitenContext) Arc(center geom.Vector2, radius, startAngle, endAngle float64, ccw bool) {
	dir := vector.Clockwise
	if ccw {
		dir = vector.CounterClockwise
	}
	c.path.Arc(float32(center.X), float32(center.Y), float32(radius),
		float32(startAngle), float32(endAngle), dir)
}

func (c *EbitenContext) Fill() {
	vs, is := c.path.AppendVerticesAndIndicesForFilling(nil, nil)
	c.drawTriangles(vs, is, c.fillColor)
}

func (c *EbitenContext) Stroke() {
	op := &vector.StrokeOptions{}
	op.Width = c.lineWidth
	op.LineJoin = vector.LineJoinRound
	vs, is := c.path.AppendVerticesAndIndicesForStroke(nil, nil, op)
	c.drawTriangles(vs, is, c.strokeColor)
}

func (c *EbitenContext) drawTriangles(vs []ebiten.Vertex, is []uint16, clr color.RGBA) {
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(clr.R) / 255
		vs[i].ColorG = float32(clr.G) / 255
		vs[i].ColorB = float32(clr.B) / 255
		vs[i].ColorA = float32(clr.A) / 255
	}
	c.dst.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
		FillRule:  ebiten.FillRuleNonZero,
	})
}

func (c *EbitenContext) SetFillStyle(colorStr string) {
	clr, err := ParseHex(colorStr)
	if err != nil {
		log.Printf("[Render] fill style: %v", err)
		return
	}
	c.fillColor = clr
}

func (c *EbitenContext) SetStrokeStyle(colorStr string) {
	clr, err := ParseHex(colorStr)
	if err != nil {
		log.Printf("[Render] stroke style: %v", err)
		return
	}
	c.strokeColor = clr
}

func (c *EbitenContext) SetLineWidth(width float64) {
	c.lineWidth = float32(width)
}
