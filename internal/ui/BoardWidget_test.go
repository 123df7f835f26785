package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ShapeBoard/internal/shape"
	"ShapeBoard/internal/state"
)

func newTestWidget(t *testing.T, tool state.Tool) (*BoardWidget, *state.Board, *state.Selector) {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)

	sel := state.NewSelector(tool)
	board := state.NewBoard(sel, nil)
	return NewBoardWidget(board, sel), board, sel
}

func mouseEvent(x, y float32) *desktop.MouseEvent {
	return &desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)},
		Button:     desktop.MouseButtonPrimary,
	}
}

func dragEvent(x, y, dx, dy float32) *fyne.DragEvent {
	return &fyne.DragEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)},
		Dragged:    fyne.NewDelta(dx, dy),
	}
}

func TestBoardWidget_DrawRectangle(t *testing.T) {
	bw, board, _ := newTestWidget(t, state.ToolRectangle)

	bw.MouseDown(mouseEvent(10, 10))
	bw.Dragged(dragEvent(30, 30, 20, 20))
	bw.MouseUp(mouseEvent(30, 30))
	bw.DragEnd()

	require.Equal(t, 1, board.Len())
	s, _ := board.Shape(0)
	assert.Equal(t, shape.Rect{X: 10, Y: 10, Width: 20, Height: 20}, s)
	assert.Contains(t, bw.StatusBar().Text, "Shapes: 1")
}

func TestBoardWidget_IgnoresSecondaryButton(t *testing.T) {
	bw, board, _ := newTestWidget(t, state.ToolCircle)

	e := mouseEvent(10, 10)
	e.Button = desktop.MouseButtonSecondary
	bw.MouseDown(e)

	assert.False(t, board.Drawing())
}

func TestBoardWidget_DragSelectedShape(t *testing.T) {
	bw, board, sel := newTestWidget(t, state.ToolRectangle)
	bw.MouseDown(mouseEvent(10, 10))
	bw.Dragged(dragEvent(30, 30, 20, 20))
	bw.MouseUp(mouseEvent(30, 30))

	sel.Set(state.ToolSelect)
	bw.MouseDown(mouseEvent(20, 20))
	i, ok := board.Selected()
	require.True(t, ok)
	require.Equal(t, 0, i)

	bw.Dragged(dragEvent(25, 27, 5, 7))
	bw.Dragged(dragEvent(30, 35, 5, 8))
	s, _ := board.Shape(0)
	assert.Equal(t, shape.Rect{X: 10, Y: 10, Width: 20, Height: 20}, s, "geometry is untouched until release")

	bw.DragEnd()
	bw.MouseUp(mouseEvent(30, 35))

	s, _ = board.Shape(0)
	assert.Equal(t, shape.Rect{X: 20, Y: 25, Width: 20, Height: 20}, s)
	assert.Equal(t, -1, bw.dragIndex)
	assert.Equal(t, shape.Point{}, bw.dragOffset)
}

func TestBoardWidget_DragLineBakesOffset(t *testing.T) {
	bw, board, sel := newTestWidget(t, state.ToolLine)
	bw.MouseDown(mouseEvent(0, 0))
	bw.Dragged(dragEvent(10, 0, 10, 0))
	bw.MouseUp(mouseEvent(10, 0))

	sel.Set(state.ToolSelect)
	bw.MouseDown(mouseEvent(5, 0))
	bw.Dragged(dragEvent(8, 4, 3, 4))
	bw.MouseUp(mouseEvent(8, 4))

	s, _ := board.Shape(0)
	assert.Equal(t, shape.Line{Points: [4]float64{3, 4, 13, 4}}, s)

	// A second drag starts from the new geometry, not a compounded offset.
	bw.MouseDown(mouseEvent(8, 4))
	bw.Dragged(dragEvent(9, 5, 1, 1))
	bw.MouseUp(mouseEvent(9, 5))
	s, _ = board.Shape(0)
	assert.Equal(t, shape.Line{Points: [4]float64{4, 5, 14, 5}}, s)
}

func TestBoardWidget_PanShiftsScene(t *testing.T) {
	bw, board, sel := newTestWidget(t, state.ToolSelect)

	bw.MouseDown(mouseEvent(200, 200))
	bw.Dragged(dragEvent(210, 210, 10, 10))
	bw.MouseUp(mouseEvent(210, 210))
	assert.Equal(t, fyne.NewPos(10, 10), bw.pan)

	sel.Set(state.ToolRectangle)
	bw.MouseDown(mouseEvent(20, 20))
	s, ok := board.InProgress()
	require.True(t, ok)
	assert.Equal(t, shape.Rect{X: 10, Y: 10}, s)
}

func TestBoardWidget_RendererObjects(t *testing.T) {
	bw, _, sel := newTestWidget(t, state.ToolRectangle)
	r := test.WidgetRenderer(bw)
	assert.Len(t, r.Objects(), 1, "background only")

	bw.MouseDown(mouseEvent(10, 10))
	bw.Dragged(dragEvent(30, 30, 20, 20))
	bw.MouseUp(mouseEvent(30, 30))
	assert.Len(t, r.Objects(), 2)

	sel.Set(state.ToolEllipse)
	bw.MouseDown(mouseEvent(100, 100))
	bw.Dragged(dragEvent(120, 110, 20, 10))
	bw.MouseUp(mouseEvent(120, 110))
	assert.Len(t, r.Objects(), 2+1+ellipseSegments)

	sel.Set(state.ToolArrow)
	bw.MouseDown(mouseEvent(0, 0))
	bw.MouseMoved(mouseEvent(50, 0))
	assert.Len(t, r.Objects(), 2+1+ellipseSegments+3, "in-progress arrow is previewed with its head")
}

func TestToolPicker_SyncsWithSelector(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	sel := state.NewSelector(state.ToolRectangle)
	radio := newToolPicker(sel)
	assert.Equal(t, "Rectangle", radio.Selected)
	assert.Len(t, radio.Options, len(state.Tools()))

	radio.SetSelected("Circle")
	assert.Equal(t, state.ToolCircle, sel.Current())

	sel.Set(state.ToolArrow)
	assert.Equal(t, "Arrow", radio.Selected)
}

func TestDialogPrompter_ShowsForm(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()
	w := test.NewWindow(widget.NewLabel("board"))
	defer w.Close()
	w.Resize(fyne.NewSize(400, 300))

	NewDialogPrompter(w).PromptText(func(string) {})
	assert.NotNil(t, w.Canvas().Overlays().Top())
}

func TestBoardWidget_DragRectDrawnBackwards(t *testing.T) {
	bw, board, sel := newTestWidget(t, state.ToolRectangle)
	bw.MouseDown(mouseEvent(30, 30))
	bw.Dragged(dragEvent(10, 10, -20, -20))
	bw.MouseUp(mouseEvent(10, 10))

	sel.Set(state.ToolSelect)
	bw.MouseDown(mouseEvent(20, 20))
	bw.Dragged(dragEvent(60, 60, 40, 40))
	bw.MouseUp(mouseEvent(60, 60))

	s, _ := board.Shape(0)
	assert.Equal(t, shape.Rect{X: 70, Y: 70, Width: -20, Height: -20}, s)
	assert.Equal(t, fyne.NewPos(0, 0), bw.pan, "grabbing a shape does not pan")
}

func TestBoardWidget_DragPicksTopShape(t *testing.T) {
	bw, board, sel := newTestWidget(t, state.ToolRectangle)
	bw.MouseDown(mouseEvent(0, 0))
	bw.Dragged(dragEvent(100, 100, 100, 100))
	bw.MouseUp(mouseEvent(100, 100))
	bw.MouseDown(mouseEvent(10, 10))
	bw.Dragged(dragEvent(30, 30, 20, 20))
	bw.MouseUp(mouseEvent(30, 30))

	sel.Set(state.ToolSelect)
	bw.MouseDown(mouseEvent(20, 20))
	bw.Dragged(dragEvent(25, 25, 5, 5))
	bw.MouseUp(mouseEvent(25, 25))

	bottom, _ := board.Shape(0)
	top, _ := board.Shape(1)
	assert.Equal(t, shape.Rect{X: 0, Y: 0, Width: 100, Height: 100}, bottom)
	assert.Equal(t, shape.Rect{X: 15, Y: 15, Width: 20, Height: 20}, top)

	i, ok := board.Selected()
	require.True(t, ok)
	assert.Equal(t, 0, i, "selection keeps first-match order")
}

func TestBoardWidget_DragEndWithoutMouseUpCommits(t *testing.T) {
	bw, board, _ := newTestWidget(t, state.ToolCircle)

	bw.MouseDown(mouseEvent(10, 10))
	bw.Dragged(dragEvent(13, 14, 3, 4))
	bw.DragEnd()

	require.Equal(t, 1, board.Len())
	assert.False(t, board.Drawing())
	_, ok := board.InProgress()
	assert.False(t, ok)

	bw.MouseDown(mouseEvent(50, 50))
	bw.DragEnd()
	assert.Equal(t, 2, board.Len(), "the first shape is not replaced by the next press")
}
