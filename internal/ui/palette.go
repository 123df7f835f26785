package ui

import (
	"image/color"

	"golang.org/x/image/colornames"

	"ShapeBoard/internal/shape"
)

var backgroundColor = color.NRGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff}

// Arrow heads are drawn this long and this wide.
const (
	arrowHeadLength = 10
	arrowHeadWidth  = 10
)

type shapeStyle struct {
	Fill   color.Color
	Stroke color.Color
	Width  float32
}

// styleFor returns how a shape of kind k is painted. Previews are the
// translucent rendering of the shape being drawn.
func styleFor(k shape.Kind, selected, preview bool) shapeStyle {
	switch k {
	case shape.KindRect:
		return fillStyle(colornames.Lightblue, color.NRGBA{B: 255, A: 128}, color.NRGBA{B: 255, A: 51}, selected, preview)
	case shape.KindCircle:
		return fillStyle(colornames.Lightgreen, color.NRGBA{G: 255, A: 128}, color.NRGBA{G: 255, A: 51}, selected, preview)
	case shape.KindEllipse:
		return fillStyle(colornames.Lightyellow, color.NRGBA{R: 255, G: 255, A: 128}, color.NRGBA{R: 255, G: 255, A: 77}, selected, preview)
	case shape.KindLine:
		switch {
		case preview:
			return shapeStyle{Stroke: colornames.Gray, Width: 1}
		case selected:
			return shapeStyle{Stroke: colornames.Blue, Width: 2}
		}
		return shapeStyle{Stroke: colornames.Black, Width: 2}
	case shape.KindArrow:
		switch {
		case preview:
			return shapeStyle{Stroke: colornames.Gray, Width: 2}
		case selected:
			return shapeStyle{Stroke: colornames.Blue, Width: 2}
		}
		return shapeStyle{Stroke: colornames.Red, Width: 2}
	case shape.KindText:
		if selected {
			return shapeStyle{Fill: colornames.Blue}
		}
		return shapeStyle{Fill: colornames.Black}
	}
	return shapeStyle{Stroke: colornames.Black, Width: 1}
}

func fillStyle(normal, selected, preview color.Color, isSelected, isPreview bool) shapeStyle {
	s := shapeStyle{Fill: normal, Stroke: colornames.Black, Width: 1}
	switch {
	case isPreview:
		s.Fill = preview
	case isSelected:
		s.Fill = selected
	}
	return s
}
