// Package gui is the desktop shell: a single window presenting the
// environment report.
package gui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/bagend/chestman/internal/stack"
)

const appID = "com.bagend.chestman"

// Run opens the main window and blocks until it is closed.
func Run(title string) {
	a := app.NewWithID(appID)
	w := a.NewWindow(title)

	var report strings.Builder
	stack.Fprint(&report)

	label := widget.NewLabel(strings.TrimRight(report.String(), "\n"))
	label.TextStyle = fyne.TextStyle{Monospace: true}

	w.SetContent(container.NewPadded(label))
	w.Resize(fyne.NewSize(480, 360))
	w.ShowAndRun()
}
