// Package display shows a rendered image in an interactive window.
package display

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
)

// Viewer shows the image stored at path. Implementations may block until the
// user dismisses the view.
type Viewer interface {
	Show(title, path string) error
}

// ViewerFunc adapts a function to the Viewer interface.
type ViewerFunc func(title, path string) error

// Show calls f(title, path).
func (f ViewerFunc) Show(title, path string) error {
	return f(title, path)
}

// Window is a Viewer that opens a native window and blocks until it is
// closed. Show must be called from the main goroutine.
type Window struct {
	Width  float32
	Height float32
}

// NewWindow returns a Window sized for a default 640x480 figure.
func NewWindow() *Window {
	return &Window{Width: 640, Height: 480}
}

// Show opens the image in a new window and runs the event loop until the
// window is closed.
func (w *Window) Show(title, path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	a := app.New()
	win := a.NewWindow(title)

	img := canvas.NewImageFromFile(path)
	img.FillMode = canvas.ImageFillContain
	win.SetContent(img)
	win.Resize(fyne.NewSize(w.Width, w.Height))
	win.ShowAndRun()

	return nil
}
