package ui

import (
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"gonum.org/v1/gonum/spatial/r2"

	"ShapeBoard/internal/shape"
)

const ellipseSegments = 48

type boardWidgetRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
	objects    []fyne.CanvasObject
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *boardWidgetRenderer) Refresh() {
	r.rebuild()
	canvas.Refresh(r.board)
}

func (r *boardWidgetRenderer) rebuild() {
	objects := []fyne.CanvasObject{r.background}
	b := r.board
	pan := b.pan
	selected, hasSelection := b.board.Selected()
	for i, s := range b.board.Shapes() {
		if i == b.dragIndex {
			s = shape.DropAt(s, r2.Add(shape.Origin(s), b.dragOffset))
		}
		st := styleFor(s.Kind(), hasSelection && i == selected, false)
		objects = append(objects, shapeObjects(s, st, pan)...)
	}
	if s, ok := b.board.InProgress(); ok {
		objects = append(objects, shapeObjects(s, styleFor(s.Kind(), false, true), pan)...)
	}
	r.objects = objects
}

func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *boardWidgetRenderer) Destroy() {}

func toPos(p shape.Point, pan fyne.Position) fyne.Position {
	return fyne.NewPos(float32(p.X)+pan.X, float32(p.Y)+pan.Y)
}

// shapeObjects converts one shape into canvas primitives offset by pan.
func shapeObjects(s shape.Shape, st shapeStyle, pan fyne.Position) []fyne.CanvasObject {
	switch s := s.(type) {
	case shape.Rect:
		box := shape.Bounds(s)
		rect := canvas.NewRectangle(st.Fill)
		rect.StrokeColor = st.Stroke
		rect.StrokeWidth = st.Width
		rect.Move(toPos(box.Min, pan))
		size := box.Size()
		rect.Resize(fyne.NewSize(float32(size.X), float32(size.Y)))
		return []fyne.CanvasObject{rect}
	case shape.Circle:
		box := shape.Bounds(s)
		c := canvas.NewCircle(st.Fill)
		c.StrokeColor = st.Stroke
		c.StrokeWidth = st.Width
		c.Position1 = toPos(box.Min, pan)
		c.Position2 = toPos(box.Max, pan)
		return []fyne.CanvasObject{c}
	case shape.Ellipse:
		return ellipseObjects(s, st, pan)
	case shape.Line:
		return []fyne.CanvasObject{segment(s.Start(), s.End(), st, pan)}
	case shape.Arrow:
		return arrowObjects(s, st, pan)
	case shape.Text:
		t := canvas.NewText(s.Text, st.Fill)
		t.TextSize = float32(s.FontSize)
		t.Move(toPos(shape.Point{X: s.X, Y: s.Y - s.FontSize}, pan))
		return []fyne.CanvasObject{t}
	}
	return nil
}

func segment(a, b shape.Point, st shapeStyle, pan fyne.Position) *canvas.Line {
	l := canvas.NewLine(st.Stroke)
	l.StrokeWidth = st.Width
	l.Position1 = toPos(a, pan)
	l.Position2 = toPos(b, pan)
	return l
}

// ellipseObjects paints the interior with a raster and the outline as a
// closed polyline.
func ellipseObjects(e shape.Ellipse, st shapeStyle, pan fyne.Position) []fyne.CanvasObject {
	var objects []fyne.CanvasObject
	if e.RadiusX > 0 && e.RadiusY > 0 {
		fill := st.Fill
		raster := canvas.NewRasterWithPixels(func(x, y, w, h int) color.Color {
			nx := (float64(x)+0.5)/float64(w)*2 - 1
			ny := (float64(y)+0.5)/float64(h)*2 - 1
			if nx*nx+ny*ny <= 1 {
				return fill
			}
			return color.Transparent
		})
		box := shape.Bounds(e)
		raster.Move(toPos(box.Min, pan))
		size := box.Size()
		raster.Resize(fyne.NewSize(float32(size.X), float32(size.Y)))
		objects = append(objects, raster)
	}

	center := shape.Point{X: e.X, Y: e.Y}
	prev := r2.Add(center, shape.Point{X: e.RadiusX})
	for i := 1; i <= ellipseSegments; i++ {
		theta := 2 * math.Pi * float64(i) / ellipseSegments
		next := r2.Add(center, shape.Point{X: e.RadiusX * math.Cos(theta), Y: e.RadiusY * math.Sin(theta)})
		objects = append(objects, segment(prev, next, st, pan))
		prev = next
	}
	return objects
}

func arrowObjects(a shape.Arrow, st shapeStyle, pan fyne.Position) []fyne.CanvasObject {
	start, end := a.Start(), a.End()
	objects := []fyne.CanvasObject{segment(start, end, st, pan)}

	d := r2.Sub(end, start)
	if r2.Norm(d) == 0 {
		return objects
	}
	dir := r2.Unit(d)
	base := r2.Sub(end, r2.Scale(arrowHeadLength, dir))
	half := r2.Scale(arrowHeadWidth/2, shape.Point{X: -dir.Y, Y: dir.X})
	return append(objects,
		segment(end, r2.Add(base, half), st, pan),
		segment(end, r2.Sub(base, half), st, pan),
	)
}
