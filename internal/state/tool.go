package state

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"ShapeBoard/internal/shape"
)

// ErrUnknownTool is returned by ParseTool for names outside the tool set.
var ErrUnknownTool = errors.New("unknown tool")

// Tool is the active drawing tool.
type Tool int

const (
	ToolSelect Tool = iota
	ToolRectangle
	ToolCircle
	ToolLine
	ToolEllipse
	ToolArrow
	ToolText
)

// DefaultTool is active when the board opens.
const DefaultTool = ToolRectangle

// Tools lists every tool in toolbar order.
func Tools() []Tool {
	return []Tool{ToolSelect, ToolRectangle, ToolCircle, ToolLine, ToolEllipse, ToolArrow, ToolText}
}

func (t Tool) String() string {
	switch t {
	case ToolSelect:
		return "select"
	case ToolRectangle:
		return "rectangle"
	case ToolCircle:
		return "circle"
	case ToolLine:
		return "line"
	case ToolEllipse:
		return "ellipse"
	case ToolArrow:
		return "arrow"
	case ToolText:
		return "text"
	default:
		return fmt.Sprintf("Tool(%d)", int(t))
	}
}

// Label is the human readable toolbar caption.
func (t Tool) Label() string {
	s := t.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

// Kind maps a drawing tool to the shape it creates. The select tool
// creates nothing and reports false.
func (t Tool) Kind() (shape.Kind, bool) {
	switch t {
	case ToolRectangle:
		return shape.KindRect, true
	case ToolCircle:
		return shape.KindCircle, true
	case ToolLine:
		return shape.KindLine, true
	case ToolEllipse:
		return shape.KindEllipse, true
	case ToolArrow:
		return shape.KindArrow, true
	case ToolText:
		return shape.KindText, true
	}
	return 0, false
}

// ParseTool accepts a tool name as printed by String or Label.
func ParseTool(name string) (Tool, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for _, t := range Tools() {
		if t.String() == want {
			return t, nil
		}
	}
	return 0, fmt.Errorf("parse tool %q: %w", name, ErrUnknownTool)
}

// ToolSource is what the board reads the active tool from.
type ToolSource interface {
	Current() Tool
}

// Selector holds the active tool and notifies listeners when it changes.
type Selector struct {
	current   Tool
	listeners []func(Tool)
}

// NewSelector starts with the given tool active.
func NewSelector(initial Tool) *Selector {
	return &Selector{current: initial}
}

func (s *Selector) Current() Tool {
	return s.current
}

// Set switches the active tool. Listeners are only called on a change.
func (s *Selector) Set(t Tool) {
	if t == s.current {
		return
	}
	s.current = t
	Logger().Debug("tool changed", slog.String("tool", t.String()))
	for _, fn := range s.listeners {
		fn(t)
	}
}

// OnChanged registers fn to run after every tool change.
func (s *Selector) OnChanged(fn func(Tool)) {
	s.listeners = append(s.listeners, fn)
}
