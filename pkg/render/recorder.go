package render

import "github.com/decker502/whirl/pkg/geom"

// Op identifies one recorded drawing command.
type Op string

const (
	OpClear          Op = "clear"
	OpFillBackground Op = "fillBackground"
	OpBeginPath      Op = "beginPath"
	OpMoveTo         Op = "moveTo"
	OpLineTo         Op = "lineTo"
	OpBezierCurveTo  Op = "bezierCurveTo"
	OpArc            Op = "arc"
	OpFill           Op = "fill"
	OpStroke         Op = "stroke"
	OpFillStyle      Op = "fillStyle"
	OpStrokeStyle    Op = "strokeStyle"
	OpLineWidth      Op = "lineWidth"
)

// Command is one recorded drawing call. Points holds the positional
// arguments in call order (for bezierCurveTo: cp1, cp2, end), Floats
// the scalar arguments, Style the color string, CCW the arc direction.
type Command struct {
	Op     Op
	Points []geom.Vector2
	Floats []float64
	Style  string
	CCW    bool
}

// Recorder is a Context that records every command it receives. It is
// the reference test double for the geometry pipeline and doubles as a
// capture tool when debugging a variant's output.
type Recorder struct {
	W, H     float64
	Commands []Command
}

// NewRecorder returns a recorder for a surface of the given size.
func NewRecorder(w, h float64) *Recorder {
	return &Recorder{W: w, H: h}
}

func (r *Recorder) record(c Command) {
	r.Commands = append(r.Commands, c)
}

func (r *Recorder) Size() (float64, float64) { return r.W, r.H }

func (r *Recorder) Clear(x, y, w, h float64) {
	r.record(Command{Op: OpClear, Floats: []float64{x, y, w, h}})
}

func (r *Recorder) FillBackground(color string) {
	r.record(Command{Op: OpFillBackground, Style: color})
}

func (r *Recorder) BeginPath() {
	r.record(Command{Op: OpBeginPath})
}

func (r *Recorder) MoveTo(p geom.Vector2) {
	r.record(Command{Op: OpMoveTo, Points: []geom.Vector2{p}})
}

func (r *Recorder) LineTo(p geom.Vector2) {
	r.record(Command{Op: OpLineTo, Points: []geom.Vector2{p}})
}

func (r *Recorder) BezierCurveTo(cp1, cp2, end geom.Vector2) {
	r.record(Command{Op: OpBezierCurveTo, Points: []geom.Vector2{cp1, cp2, end}})
}

func (r *Recorder) Arc(center geom.Vector2, radius, startAngle, endAngle float64, ccw bool) {
	r.record(Command{
		Op:     OpArc,
		Points: []geom.Vector2{center},
		Floats: []float64{radius, startAngle, endAngle},
		CCW:    ccw,
	})
}

func (r *Recorder) Fill()   { r.record(Command{Op: OpFill}) }
func (r *Recorder) Stroke() { r.record(Command{Op: OpStroke}) }

func (r *Recorder) SetFillStyle(color string) {
	r.record(Command{Op: OpFillStyle, Style: color})
}

func (r *Recorder) SetStrokeStyle(color string) {
	r.record(Command{Op: OpStrokeStyle, Style: color})
}

func (r *Recorder) SetLineWidth(width float64) {
	r.record(Command{Op: OpLineWidth, Floats: []float64{width}})
}

// Reset discards all recorded commands.
func (r *Recorder) Reset() {
	r.Commands = r.Commands[:0]
}

// Count returns how many commands with the given op were recorded.
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.Commands {
		if c.Op == op {
			n++
		}
	}
	return n
}

// PathPoints returns the endpoint of every path-building command in
// order: moveTo and lineTo targets and bezier end points.
func (r *Recorder) PathPoints() []geom.Vector2 {
	var pts []geom.Vector2
	for _, c := range r.Commands {
		switch c.Op {
		case OpMoveTo, OpLineTo:
			pts = append(pts, c.Points[0])
		case OpBezierCurveTo:
			pts = append(pts, c.Points[2])
		}
	}
	return pts
}
