package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"

	"ShapeBoard/internal/config"
	"ShapeBoard/internal/state"
)

// RunApp opens the main window and blocks until it is closed.
func RunApp(cfg config.Config) {
	myApp := app.New()
	myWindow := myApp.NewWindow("ShapeBoard")
	myWindow.Resize(fyne.NewSize(cfg.Width, cfg.Height))

	tools := state.NewSelector(cfg.Tool)
	board := state.NewBoard(tools, NewDialogPrompter(myWindow))
	boardWidget := NewBoardWidget(board, tools)

	content := container.NewBorder(nil, boardWidget.StatusBar(), NewToolbar(tools), nil, boardWidget)

	myWindow.SetContent(content)
	myWindow.ShowAndRun()
}
