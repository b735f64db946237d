// Package window opens a GLFW window with an OpenGL 3.2 core context and
// drives a mint.Graphics and input state from it.
//
// GLFW must be used from the main thread. Importing this package locks the
// main goroutine to its OS thread; create and update windows from main.
package window

import (
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"

	"github.com/mint2d/mint"
	"github.com/mint2d/mint/internal/gldevice"
)

func init() {
	runtime.LockOSThread()
}

// Window is an OS window with its graphics and input state.
type Window struct {
	glw      *glfw.Window
	graphics *mint.Graphics
	input    *Input
	events   []mint.Event
	frames   mint.FrameCounter
	script   *mint.ScriptRunner
	closed   bool
}

// New validates cfg and opens a window. On failure everything created so far
// is released.
func New(cfg mint.Config) (*Window, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := glfw.Init(); err != nil {
		return nil, mint.Internal("glfw init", err)
	}

	w := &Window{}
	ok := false
	defer func() {
		if !ok {
			w.release()
		}
	}()

	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 2)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfwBool(cfg.Resizable))
	glfw.WindowHint(glfw.Maximized, glfwBool(cfg.Maximized))
	glfw.WindowHint(glfw.Samples, cfg.MSAA)

	monitor, err := fullscreenMonitor(cfg.Fullscreen)
	if err != nil {
		return nil, err
	}
	width, height := int(cfg.Size.Width), int(cfg.Size.Height)
	var glm *glfw.Monitor
	if monitor != nil {
		glm = monitor.m
		if mode := glm.GetVideoMode(); mode != nil {
			width, height = mode.Width, mode.Height
		}
	}

	glw, err := glfw.CreateWindow(width, height, cfg.Title, glm, nil)
	if err != nil {
		return nil, mint.Internal("create window", err)
	}
	w.glw = glw

	err = glfwCall("configure window", func() {
		minW, minH, maxW, maxH := sizeLimits(cfg.MinSize, cfg.MaxSize)
		glw.SetSizeLimits(minW, minH, maxW, maxH)
		glw.MakeContextCurrent()
		if cfg.VSync {
			glfw.SwapInterval(1)
		} else {
			glfw.SwapInterval(0)
		}
	})
	if err != nil {
		return nil, err
	}
	if err := gldevice.Init(); err != nil {
		return nil, mint.Internal("load gl", err)
	}

	opts := cfg.GraphicsOptions()
	if opts.BatchCapacity == 0 {
		opts.BatchCapacity = mint.DefaultBatchCapacity
	}
	dev, err := gldevice.New(opts.BatchCapacity)
	if err != nil {
		return nil, mint.Internal("create device", err)
	}
	present := mint.PresenterFunc(func() error {
		return glfwCall("swap buffers", glw.SwapBuffers)
	})
	g, err := mint.NewGraphics(dev, present, opts)
	if err != nil {
		dev.Close()
		return nil, err
	}
	w.graphics = g
	w.input = &Input{glw: glw, state: mint.NewInputState()}
	w.installCallbacks()

	monitorName := "windowed"
	if monitor != nil {
		monitorName = monitor.Name()
	}
	mint.Logger().Info("window created",
		"title", cfg.Title,
		"width", width,
		"height", height,
		"gl", gldevice.Version(),
		"monitor", monitorName,
	)
	ok = true
	return w, nil
}

// fullscreenMonitor resolves the monitor a window should go fullscreen on,
// or nil for a windowed window.
func fullscreenMonitor(fs mint.Fullscreen) (*Monitor, error) {
	switch fs.Mode {
	case mint.FullscreenPrimary:
		m := PrimaryMonitor()
		if m == nil {
			return nil, mint.Internal("primary monitor", errors.New("no monitor connected"))
		}
		return m, nil
	case mint.FullscreenMonitor:
		m, err := mint.MatchMonitor(Monitors(), fs.Monitor)
		if err != nil {
			return nil, err
		}
		return m, nil
	}
	return nil, nil
}

func (w *Window) installCallbacks() {
	w.glw.SetCloseCallback(func(*glfw.Window) {
		w.events = append(w.events, mint.CloseEvent())
	})
	w.glw.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action == glfw.Repeat {
			return
		}
		k, ok := mapKey(key)
		if !ok {
			return
		}
		w.events = append(w.events, mint.KeyEvent(k, action == glfw.Press))
	})
	w.glw.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		b, ok := mapButton(button)
		if !ok {
			return
		}
		w.events = append(w.events, mint.ButtonEvent(b, action == glfw.Press))
	})
	w.glw.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		w.events = append(w.events, mint.CursorEvent(mint.Point{X: x, Y: y}))
	})
}

// Update presents the frame, polls events and folds them into the input
// state. It returns false once the user has asked to close the window.
func (w *Window) Update() (bool, error) {
	if w.closed {
		return false, errors.New("mint: window closed")
	}
	if w.script != nil {
		w.script.Step(w.input.state, w.graphics)
	}
	if err := w.graphics.Update(); err != nil {
		return false, err
	}
	if err := glfwCall("poll events", glfw.PollEvents); err != nil {
		return false, err
	}
	w.input.state.Step(w.events)
	w.events = w.events[:0]
	w.frames.Tick()
	return !w.input.state.CloseRequested(), nil
}

// SetScript attaches an input script. Each Update steps it once before the
// frame is presented, so its screenshots capture the frame just drawn.
func (w *Window) SetScript(r *mint.ScriptRunner) {
	w.script = r
}

// Size returns the window size in screen coordinates, or 1x1 if it cannot
// be queried.
func (w *Window) Size() mint.Size {
	if w.closed {
		return mint.Size{Width: 1, Height: 1}
	}
	var width, height int
	if err := glfwCall("window size", func() { width, height = w.glw.GetSize() }); err != nil {
		return mint.Size{Width: 1, Height: 1}
	}
	if width <= 0 || height <= 0 {
		return mint.Size{Width: 1, Height: 1}
	}
	return mint.Size{Width: float64(width), Height: float64(height)}
}

// Graphics returns the window's graphics state.
func (w *Window) Graphics() *mint.Graphics { return w.graphics }

// Input returns the window's input state.
func (w *Window) Input() *Input { return w.input }

// FPS returns the measured frame rate.
func (w *Window) FPS() float64 { return w.frames.FPS() }

// Close releases the graphics, destroys the window and terminates GLFW.
func (w *Window) Close() error {
	if w.closed {
		return nil
	}
	return w.release()
}

func (w *Window) release() error {
	w.closed = true
	var err error
	if w.graphics != nil {
		err = w.graphics.Close()
		w.graphics = nil
	}
	if w.glw != nil {
		if cerr := glfwCall("destroy window", w.glw.Destroy); err == nil {
			err = cerr
		}
		w.glw = nil
	}
	glfw.Terminate()
	return err
}

// glfwCall runs fn and converts a GLFW panic into an InternalError.
func glfwCall(op string, fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			rerr, ok := r.(error)
			if !ok {
				rerr = errors.Errorf("%v", r)
			}
			err = mint.Internal(op, rerr)
		}
	}()
	fn()
	return nil
}

func glfwBool(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

// sizeLimits converts optional size limits into SetSizeLimits arguments.
func sizeLimits(lo, hi *mint.Size) (minW, minH, maxW, maxH int) {
	minW, minH, maxW, maxH = glfw.DontCare, glfw.DontCare, glfw.DontCare, glfw.DontCare
	if lo != nil {
		minW, minH = int(lo.Width), int(lo.Height)
	}
	if hi != nil {
		maxW, maxH = int(hi.Width), int(hi.Height)
	}
	return minW, minH, maxW, maxH
}
