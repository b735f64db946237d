package window

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/mint2d/mint"
)

// Monitor is a connected display.
type Monitor struct {
	m *glfw.Monitor
}

// Name returns the human-readable monitor name reported by the OS.
func (m *Monitor) Name() string {
	return m.m.GetName()
}

// Size returns the current video mode size in logical pixels.
func (m *Monitor) Size() mint.Size {
	mode := m.m.GetVideoMode()
	if mode == nil {
		return mint.Size{Width: 1, Height: 1}
	}
	sx, sy := m.m.GetContentScale()
	if sx <= 0 {
		sx = 1
	}
	if sy <= 0 {
		sy = 1
	}
	return mint.Size{
		Width:  float64(mode.Width) / float64(sx),
		Height: float64(mode.Height) / float64(sy),
	}
}

// PrimaryMonitor returns the user's primary monitor, or nil if none is
// connected. GLFW must be initialized.
func PrimaryMonitor() *Monitor {
	m := glfw.GetPrimaryMonitor()
	if m == nil {
		return nil
	}
	return &Monitor{m: m}
}

// Monitors returns every connected monitor in enumeration order. GLFW must be
// initialized.
func Monitors() []*Monitor {
	mons := glfw.GetMonitors()
	out := make([]*Monitor, 0, len(mons))
	for _, m := range mons {
		out = append(out, &Monitor{m: m})
	}
	return out
}

// PrimaryMonitor returns the primary monitor.
func (w *Window) PrimaryMonitor() *Monitor { return PrimaryMonitor() }

// Monitors returns every connected monitor.
func (w *Window) Monitors() []*Monitor { return Monitors() }
