// Package state holds the drawing session: the active tool and the board of
// shapes that pointer events edit.
package state

import (
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"ShapeBoard/internal/shape"
)

// TextPrompter asks the user for the content of a new text shape. It must
// call submit exactly once, either before returning or later from the UI
// loop. An empty string means the prompt was cancelled.
type TextPrompter interface {
	PromptText(submit func(string))
}

// TextPrompterFunc adapts a function to TextPrompter.
type TextPrompterFunc func(submit func(string))

func (f TextPrompterFunc) PromptText(submit func(string)) { f(submit) }

// Board is the drawing surface state. It is driven by pointer events from a
// single UI goroutine and is not safe for concurrent use.
//
// Committed shapes are kept in render order. Selection is an index into that
// list and is only ever cleared, never adjusted.
type Board struct {
	tools   ToolSource
	prompt  TextPrompter
	log     *slog.Logger
	session string

	shapes     []shape.Shape
	inProgress shape.Shape
	selected   int
	drawing    bool
	awaiting   bool

	revision  uint64
	listeners []func()
}

// NewBoard returns an empty board reading the active tool from tools.
// prompt may be nil, in which case the text tool produces nothing.
func NewBoard(tools ToolSource, prompt TextPrompter) *Board {
	id := uuid.NewString()
	b := &Board{
		tools:    tools,
		prompt:   prompt,
		session:  id,
		selected: -1,
		log:      Logger().With(slog.String("session", id)),
	}
	b.log.Info("board session started")
	return b
}

// Session identifies this board in log records.
func (b *Board) Session() string { return b.session }

// OnChange registers fn to run after every state change.
func (b *Board) OnChange(fn func()) {
	b.listeners = append(b.listeners, fn)
}

// Revision counts state changes since the board was created.
func (b *Board) Revision() uint64 { return b.revision }

// Shapes returns a copy of the committed shapes in render order.
func (b *Board) Shapes() []shape.Shape {
	return slices.Clone(b.shapes)
}

// Len is the number of committed shapes.
func (b *Board) Len() int { return len(b.shapes) }

// Shape returns the committed shape at index i.
func (b *Board) Shape(i int) (shape.Shape, bool) {
	if i < 0 || i >= len(b.shapes) {
		return nil, false
	}
	return b.shapes[i], true
}

// InProgress returns the shape being drawn, if any.
func (b *Board) InProgress() (shape.Shape, bool) {
	return b.inProgress, b.inProgress != nil
}

// Selected returns the selected index, if any.
func (b *Board) Selected() (int, bool) {
	return b.selected, b.selected >= 0
}

// Drawing reports whether a press is in progress with a drawing tool.
func (b *Board) Drawing() bool { return b.drawing }

// AwaitingText reports whether a text prompt is open.
func (b *Board) AwaitingText() bool { return b.awaiting }

// HitTest returns the index of the first committed shape containing p.
// Earlier shapes win over later ones even though they render underneath.
func (b *Board) HitTest(p shape.Point) (int, bool) {
	for i, s := range b.shapes {
		if shape.Contains(s, p) {
			return i, true
		}
	}
	return -1, false
}

// TopmostAt returns the index of the last committed shape rendered under p.
// This is the shape a direct drag picks up; selection uses HitTest.
func (b *Board) TopmostAt(p shape.Point) (int, bool) {
	for i := len(b.shapes) - 1; i >= 0; i-- {
		if shape.Grabs(b.shapes[i], p) {
			return i, true
		}
	}
	return -1, false
}

// PointerDown handles a primary button press at p.
func (b *Board) PointerDown(p shape.Point) {
	if b.awaiting {
		return
	}
	tool := b.tools.Current()
	if tool == ToolSelect {
		i, ok := b.HitTest(p)
		if ok {
			b.log.Debug("shape selected", slog.Int("index", i), slog.String("kind", b.shapes[i].Kind().String()))
		}
		b.selected = i
		b.changed()
		return
	}

	b.selected = -1
	b.drawing = true
	kind, _ := tool.Kind()
	if kind == shape.KindText {
		b.changed()
		b.askText(p)
		return
	}
	b.inProgress = shape.New(kind, p)
	b.changed()
}

// PointerMove handles pointer motion to p.
func (b *Board) PointerMove(p shape.Point) {
	if b.tools.Current() == ToolSelect && b.drawing && b.selected >= 0 {
		s, ok := b.Shape(b.selected)
		if !ok {
			b.log.Debug("stale selection ignored", slog.Int("index", b.selected))
			return
		}
		b.replace(b.selected, shape.MoveTo(s, p))
		b.changed()
		return
	}
	if b.inProgress != nil {
		b.inProgress = shape.Extend(b.inProgress, p)
		b.changed()
	}
}

// PointerUp handles release of the primary button and commits the shape
// being drawn.
func (b *Board) PointerUp() {
	committed := false
	if b.inProgress != nil {
		b.commit(b.inProgress)
		b.inProgress = nil
		committed = true
	}
	if committed || b.drawing {
		b.drawing = false
		b.changed()
	}
}

// DragEnd applies the final node position of a shape dragged directly on
// the rendering surface. See shape.DropAt for how pos is interpreted. It
// reports whether the shape was updated; drags only apply with the select
// tool active.
func (b *Board) DragEnd(index int, pos shape.Point) bool {
	if b.tools.Current() != ToolSelect {
		return false
	}
	s, ok := b.Shape(index)
	if !ok {
		b.log.Debug("drag of missing shape ignored", slog.Int("index", index))
		return false
	}
	b.replace(index, shape.DropAt(s, pos))
	b.log.Debug("shape dropped", slog.Int("index", index), slog.Float64("x", pos.X), slog.Float64("y", pos.Y))
	b.changed()
	return true
}

func (b *Board) askText(at shape.Point) {
	if b.prompt == nil {
		return
	}
	b.awaiting = true
	b.prompt.PromptText(func(text string) {
		if !b.awaiting {
			return
		}
		b.awaiting = false
		if text != "" {
			b.commit(shape.NewText(at, text))
		}
		b.changed()
	})
}

func (b *Board) commit(s shape.Shape) {
	b.shapes = append(slices.Clip(b.shapes), s)
	b.log.Info("shape committed", slog.String("kind", s.Kind().String()), slog.Int("count", len(b.shapes)))
}

// replace installs a fresh slice so earlier snapshots stay unchanged.
func (b *Board) replace(i int, s shape.Shape) {
	next := slices.Clone(b.shapes)
	next[i] = s
	b.shapes = next
}

func (b *Board) changed() {
	b.revision++
	for _, fn := range b.listeners {
		fn()
	}
}
