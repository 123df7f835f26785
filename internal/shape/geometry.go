package shape

import (
	"math"
	"unicode/utf8"

	"gonum.org/v1/gonum/spatial/r2"
)

const (
	// LineTolerance is how far from a line or arrow a point may be and
	// still hit it.
	LineTolerance = 5

	// TextWidthFactor approximates the advance of one character as a
	// fraction of the font size.
	TextWidthFactor = 0.6
)

// Contains reports whether p hits s.
//
// Rectangles are tested against [x, x+width] × [y, y+height] without
// normalising the sign of the span, so a rectangle drawn up or to the left
// can never be hit.
func Contains(s Shape, p Point) bool {
	switch s := s.(type) {
	case Rect:
		return p.X >= s.X && p.X <= s.X+s.Width &&
			p.Y >= s.Y && p.Y <= s.Y+s.Height
	case Circle:
		return r2.Norm(r2.Sub(p, Point{X: s.X, Y: s.Y})) <= s.Radius
	case Ellipse:
		// A zero radius divides to NaN or ±Inf, neither of which hits.
		dx := (p.X - s.X) / s.RadiusX
		dy := (p.Y - s.Y) / s.RadiusY
		return dx*dx+dy*dy <= 1
	case Line:
		return SegmentDistance(p, s.Start(), s.End()) <= LineTolerance
	case Arrow:
		return SegmentDistance(p, s.Start(), s.End()) <= LineTolerance
	case Text:
		return p.X >= s.X && p.X <= s.X+TextWidth(s) &&
			p.Y >= s.Y-s.FontSize && p.Y <= s.Y
	}
	return false
}

// TextWidth is the approximate rendered width of t.
func TextWidth(t Text) float64 {
	return float64(utf8.RuneCountInString(t.Text)) * t.FontSize * TextWidthFactor
}

// SegmentDistance returns the distance from p to the segment a-b. A
// degenerate segment is treated as the single point a.
func SegmentDistance(p, a, b Point) float64 {
	d := r2.Sub(b, a)
	length := r2.Norm(d)
	if length == 0 {
		return r2.Norm(r2.Sub(p, a))
	}
	t := r2.Dot(r2.Sub(p, a), d) / (length * length)
	t = math.Max(0, math.Min(1, t))
	proj := r2.Add(a, r2.Scale(t, d))
	return r2.Norm(r2.Sub(p, proj))
}

// Extend recomputes the derived fields of an in-progress shape from its
// anchor and the pointer position p.
func Extend(s Shape, p Point) Shape {
	switch s := s.(type) {
	case Rect:
		s.Width = p.X - s.X
		s.Height = p.Y - s.Y
		return s
	case Circle:
		s.Radius = r2.Norm(r2.Sub(p, Point{X: s.X, Y: s.Y}))
		return s
	case Ellipse:
		s.RadiusX = math.Abs(p.X - s.X)
		s.RadiusY = math.Abs(p.Y - s.Y)
		return s
	case Line:
		s.Points[2], s.Points[3] = p.X, p.Y
		return s
	case Arrow:
		s.Points[2], s.Points[3] = p.X, p.Y
		return s
	}
	return s
}

// MoveTo jumps s to the pointer position p. Anchored shapes take p as their
// new anchor. Lines and arrows put their first endpoint on p and shift the
// second by the same amount.
func MoveTo(s Shape, p Point) Shape {
	switch s := s.(type) {
	case Rect:
		s.X, s.Y = p.X, p.Y
		return s
	case Circle:
		s.X, s.Y = p.X, p.Y
		return s
	case Ellipse:
		s.X, s.Y = p.X, p.Y
		return s
	case Text:
		s.X, s.Y = p.X, p.Y
		return s
	case Line:
		s.Points = jumpSegment(s.Points, p)
		return s
	case Arrow:
		s.Points = jumpSegment(s.Points, p)
		return s
	}
	return s
}

func jumpSegment(pts [4]float64, p Point) [4]float64 {
	dx := p.X - pts[0]
	dy := p.Y - pts[1]
	return [4]float64{p.X, p.Y, pts[2] + dx, pts[3] + dy}
}

// Origin is the position a rendered node of s reports before it is dragged:
// the anchor for anchored shapes and zero for lines and arrows, whose
// geometry lives entirely in their points.
func Origin(s Shape) Point {
	switch s := s.(type) {
	case Rect:
		return Point{X: s.X, Y: s.Y}
	case Circle:
		return Point{X: s.X, Y: s.Y}
	case Ellipse:
		return Point{X: s.X, Y: s.Y}
	case Text:
		return Point{X: s.X, Y: s.Y}
	}
	return Point{}
}

// DropAt applies the final node position pos of a finished drag. Anchored
// shapes take pos as their anchor. Lines and arrows treat pos as an offset
// and bake it into both endpoints.
func DropAt(s Shape, pos Point) Shape {
	switch s := s.(type) {
	case Line:
		s.Points = offsetSegment(s.Points, pos)
		return s
	case Arrow:
		s.Points = offsetSegment(s.Points, pos)
		return s
	}
	return MoveTo(s, pos)
}

func offsetSegment(pts [4]float64, d Point) [4]float64 {
	return [4]float64{pts[0] + d.X, pts[1] + d.Y, pts[2] + d.X, pts[3] + d.Y}
}

// Grabs reports whether a press at p lands on the rendered shape s, which
// is what direct dragging picks up. Unlike Contains it reads rectangles and
// text through their well-formed bounds, so spans drawn up or to the left
// still count.
func Grabs(s Shape, p Point) bool {
	switch s.(type) {
	case Rect, Text:
		b := Bounds(s)
		return p.X >= b.Min.X && p.X <= b.Max.X &&
			p.Y >= b.Min.Y && p.Y <= b.Max.Y
	}
	return Contains(s, p)
}

// Bounds returns the well-formed bounding box of s.
func Bounds(s Shape) r2.Box {
	switch s := s.(type) {
	case Rect:
		return r2.NewBox(s.X, s.Y, s.X+s.Width, s.Y+s.Height)
	case Circle:
		return r2.NewBox(s.X-s.Radius, s.Y-s.Radius, s.X+s.Radius, s.Y+s.Radius)
	case Ellipse:
		return r2.NewBox(s.X-s.RadiusX, s.Y-s.RadiusY, s.X+s.RadiusX, s.Y+s.RadiusY)
	case Line:
		return r2.NewBox(s.Points[0], s.Points[1], s.Points[2], s.Points[3])
	case Arrow:
		return r2.NewBox(s.Points[0], s.Points[1], s.Points[2], s.Points[3])
	case Text:
		return r2.NewBox(s.X, s.Y-s.FontSize, s.X+TextWidth(s), s.Y)
	}
	return r2.Box{}
}
