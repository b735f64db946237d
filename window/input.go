package window

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/mint2d/mint"
)

// Input answers keyboard and mouse queries for a window. State is updated
// once per Window.Update.
type Input struct {
	glw   *glfw.Window
	state *mint.InputState
}

// KeyPressed reports whether k is held down.
func (in *Input) KeyPressed(k mint.Key) bool { return in.state.KeyPressed(k) }

// ButtonPressed reports whether b is held down.
func (in *Input) ButtonPressed(b mint.Button) bool { return in.state.ButtonPressed(b) }

// Cursor returns the cursor position in window coordinates.
func (in *Input) Cursor() mint.Point { return in.state.Cursor() }

// SetCursor moves the cursor to p in window coordinates.
func (in *Input) SetCursor(p mint.Point) error {
	if err := glfwCall("set cursor", func() { in.glw.SetCursorPos(p.X, p.Y) }); err != nil {
		return err
	}
	in.state.SetCursor(p)
	return nil
}

// SetCursorHidden hides or shows the cursor while it is over the window.
func (in *Input) SetCursorHidden(hidden bool) {
	mode := glfw.CursorNormal
	if hidden {
		mode = glfw.CursorHidden
	}
	in.glw.SetInputMode(glfw.CursorMode, mode)
}

// CloseRequested reports whether the user asked to close the window.
func (in *Input) CloseRequested() bool { return in.state.CloseRequested() }

// Inject queues a synthetic event folded on a later Update, one per frame.
func (in *Input) Inject(ev mint.Event) { in.state.Inject(ev) }

// InjectKeyTap queues a press and release of k.
func (in *Input) InjectKeyTap(k mint.Key) { in.state.InjectKeyTap(k) }

// InjectClick queues a click of b at p.
func (in *Input) InjectClick(p mint.Point, b mint.Button) { in.state.InjectClick(p, b) }

// InjectDrag queues a drag of b from one point to another over frames frames.
func (in *Input) InjectDrag(from, to mint.Point, b mint.Button, frames int) {
	in.state.InjectDrag(from, to, b, frames)
}
