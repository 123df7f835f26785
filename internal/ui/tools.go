package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"ShapeBoard/internal/state"
)

// newToolPicker returns a radio group kept in sync with sel in both
// directions.
func newToolPicker(sel *state.Selector) *widget.RadioGroup {
	byLabel := make(map[string]state.Tool)
	labels := make([]string, 0, len(state.Tools()))
	for _, t := range state.Tools() {
		byLabel[t.Label()] = t
		labels = append(labels, t.Label())
	}

	radio := widget.NewRadioGroup(labels, func(label string) {
		if t, ok := byLabel[label]; ok {
			sel.Set(t)
		}
	})
	radio.Required = true
	radio.SetSelected(sel.Current().Label())

	sel.OnChanged(func(t state.Tool) {
		if radio.Selected != t.Label() {
			radio.SetSelected(t.Label())
		}
	})
	return radio
}

// NewToolbar is the vertical tool panel shown beside the board.
func NewToolbar(sel *state.Selector) fyne.CanvasObject {
	title := widget.NewLabelWithStyle("Tools", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	return container.NewVBox(title, widget.NewSeparator(), newToolPicker(sel))
}
