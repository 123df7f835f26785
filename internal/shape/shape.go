// Package shape defines the drawable shape variants and the geometry used to
// create, hit-test and move them.
package shape

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// Point is a position in scene coordinates.
type Point = r2.Vec

// DefaultFontSize is the size given to every text shape at creation.
const DefaultFontSize = 20

// Kind identifies a shape variant. It never changes after creation.
type Kind int

const (
	KindRect Kind = iota
	KindCircle
	KindEllipse
	KindLine
	KindArrow
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindRect:
		return "rect"
	case KindCircle:
		return "circle"
	case KindEllipse:
		return "ellipse"
	case KindLine:
		return "line"
	case KindArrow:
		return "arrow"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Shape is one of Rect, Circle, Ellipse, Line, Arrow or Text.
// The set is closed; consumers switch over the concrete types.
type Shape interface {
	Kind() Kind
	isShape()
}

// Rect is anchored at its top-left corner. Width and Height are signed:
// dragging up or left while drawing produces negative spans.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Circle is a center and a non-negative radius.
type Circle struct {
	X, Y   float64
	Radius float64
}

// Ellipse is a center and two non-negative radii.
type Ellipse struct {
	X, Y             float64
	RadiusX, RadiusY float64
}

// Line is a segment stored as x1, y1, x2, y2.
type Line struct {
	Points [4]float64
}

// Arrow has the same geometry as Line and only renders differently.
type Arrow struct {
	Points [4]float64
}

// Text is anchored at its baseline start.
type Text struct {
	X, Y     float64
	Text     string
	FontSize float64
}

func (Rect) Kind() Kind    { return KindRect }
func (Circle) Kind() Kind  { return KindCircle }
func (Ellipse) Kind() Kind { return KindEllipse }
func (Line) Kind() Kind    { return KindLine }
func (Arrow) Kind() Kind   { return KindArrow }
func (Text) Kind() Kind    { return KindText }

func (Rect) isShape()    {}
func (Circle) isShape()  {}
func (Ellipse) isShape() {}
func (Line) isShape()    {}
func (Arrow) isShape()   {}
func (Text) isShape()    {}

// Start returns the first endpoint.
func (l Line) Start() Point { return Point{X: l.Points[0], Y: l.Points[1]} }

// End returns the second endpoint.
func (l Line) End() Point { return Point{X: l.Points[2], Y: l.Points[3]} }

// Start returns the tail of the arrow.
func (a Arrow) Start() Point { return Point{X: a.Points[0], Y: a.Points[1]} }

// End returns the tip of the arrow.
func (a Arrow) End() Point { return Point{X: a.Points[2], Y: a.Points[3]} }

// New returns a zero-extent shape of the given kind anchored at p, ready to
// be stretched with Extend. Text shapes are built with NewText instead.
func New(k Kind, p Point) Shape {
	switch k {
	case KindRect:
		return Rect{X: p.X, Y: p.Y}
	case KindCircle:
		return Circle{X: p.X, Y: p.Y}
	case KindEllipse:
		return Ellipse{X: p.X, Y: p.Y}
	case KindLine:
		return Line{Points: [4]float64{p.X, p.Y, p.X, p.Y}}
	case KindArrow:
		return Arrow{Points: [4]float64{p.X, p.Y, p.X, p.Y}}
	default:
		return NewText(p, "")
	}
}

// NewText returns a finished text shape at p.
func NewText(p Point, s string) Text {
	return Text{X: p.X, Y: p.Y, Text: s, FontSize: DefaultFontSize}
}
