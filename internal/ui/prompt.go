package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"ShapeBoard/internal/state"
)

type dialogPrompter struct {
	win fyne.Window
}

// NewDialogPrompter asks for text shape content with a modal form on win.
// Dismissing the form submits an empty string.
func NewDialogPrompter(win fyne.Window) state.TextPrompter {
	return &dialogPrompter{win: win}
}

func (p *dialogPrompter) PromptText(submit func(string)) {
	entry := widget.NewEntry()
	entry.SetPlaceHolder("Enter text")
	items := []*widget.FormItem{widget.NewFormItem("Text", entry)}
	dialog.ShowForm("Add text", "Add", "Cancel", items, func(ok bool) {
		if !ok {
			submit("")
			return
		}
		submit(entry.Text)
	}, p.win)
	p.win.Canvas().Focus(entry)
}
