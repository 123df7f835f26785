package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"gonum.org/v1/gonum/spatial/r2"

	"ShapeBoard/internal/shape"
	"ShapeBoard/internal/state"
)

// BoardWidget renders a state.Board and feeds it pointer events.
//
// With the select tool the topmost shape under the press follows the pointer as
// a visual offset; the offset is committed with Board.DragEnd on release and
// then reset. Dragging empty space with the select tool pans the view.
type BoardWidget struct {
	widget.BaseWidget
	board *state.Board
	tools *state.Selector

	pan        fyne.Position
	panning    bool
	dragIndex  int
	dragOffset shape.Point

	statusBar *widget.Label
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ fyne.Scrollable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)

func NewBoardWidget(board *state.Board, tools *state.Selector) *BoardWidget {
	b := &BoardWidget{
		board:     board,
		tools:     tools,
		dragIndex: -1,
		statusBar: widget.NewLabel("Ready"),
	}
	b.ExtendBaseWidget(b)

	board.OnChange(func() {
		b.updateStatus()
		b.Refresh()
	})
	tools.OnChanged(func(state.Tool) {
		b.cancelDrag()
		b.updateStatus()
		b.Refresh()
	})
	b.updateStatus()
	return b
}

// StatusBar shows the active tool, the shape count and the selection.
func (b *BoardWidget) StatusBar() *widget.Label {
	return b.statusBar
}

func (b *BoardWidget) updateStatus() {
	sel := "none"
	if i, ok := b.board.Selected(); ok {
		if s, ok := b.board.Shape(i); ok {
			sel = fmt.Sprintf("#%d %s", i, s.Kind())
		}
	}
	b.statusBar.SetText(fmt.Sprintf("Tool: %s | Shapes: %d | Selected: %s",
		b.tools.Current().Label(), b.board.Len(), sel))
}

func (b *BoardWidget) scenePos(p fyne.Position) shape.Point {
	return shape.Point{X: float64(p.X - b.pan.X), Y: float64(p.Y - b.pan.Y)}
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	p := b.scenePos(e.Position)
	b.board.PointerDown(p)
	if b.tools.Current() != state.ToolSelect {
		return
	}
	if i, ok := b.board.TopmostAt(p); ok {
		b.dragIndex = i
		b.dragOffset = shape.Point{}
	} else {
		b.panning = true
	}
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.finishDrag()
	b.board.PointerUp()
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	switch {
	case b.dragIndex >= 0:
		b.dragOffset = r2.Add(b.dragOffset, shape.Point{X: float64(e.Dragged.DX), Y: float64(e.Dragged.DY)})
		b.Refresh()
	case b.panning:
		b.pan = b.pan.AddXY(e.Dragged.DX, e.Dragged.DY)
		b.Refresh()
	}
	b.board.PointerMove(b.scenePos(e.Position))
}

// DragEnd may arrive without a MouseUp, so it also releases the board.
func (b *BoardWidget) DragEnd() {
	b.finishDrag()
	b.board.PointerUp()
}

func (b *BoardWidget) MouseMoved(e *desktop.MouseEvent) {
	b.board.PointerMove(b.scenePos(e.Position))
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent) {}
func (b *BoardWidget) MouseOut()                   {}

func (b *BoardWidget) Scrolled(e *fyne.ScrollEvent) {
	b.pan = b.pan.AddXY(e.Scrolled.DX, e.Scrolled.DY)
	b.Refresh()
}

// finishDrag commits a pending visual offset. Both MouseUp and DragEnd call
// it, so it must be idempotent.
func (b *BoardWidget) finishDrag() {
	b.panning = false
	if b.dragIndex < 0 {
		return
	}
	i, off := b.dragIndex, b.dragOffset
	b.dragIndex, b.dragOffset = -1, shape.Point{}
	if off == (shape.Point{}) {
		return
	}
	s, ok := b.board.Shape(i)
	if !ok || !b.board.DragEnd(i, r2.Add(shape.Origin(s), off)) {
		b.Refresh()
	}
}

func (b *BoardWidget) cancelDrag() {
	b.panning = false
	b.dragIndex, b.dragOffset = -1, shape.Point{}
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardWidgetRenderer{board: b}
	r.background = canvas.NewRectangle(backgroundColor)
	r.rebuild()
	return r
}
