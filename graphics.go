package mint

import (
	"io"
	"sync"

	"github.com/pkg/errors"
)

// GraphicsOptions configures a Graphics.
type GraphicsOptions struct {
	// BatchCapacity is the vertex capacity of the batch buffer. Zero selects
	// DefaultBatchCapacity.
	BatchCapacity int
	// Debug logs per-frame stats at debug level.
	Debug bool
}

// Graphics is the immediate-mode drawing API. It owns the render state stack,
// the batch buffer, and the Device behind them.
//
// A Graphics may be referenced from several places (the window and the
// drawing code) but is mutated by one caller at a time; every method takes an
// internal lock. Methods must not be called from inside Device callbacks.
type Graphics struct {
	mu        sync.Mutex
	stack     Stack
	batch     batcher
	presenter Presenter
	last      FrameStats
	debug     bool
	closed    bool
}

// NewGraphics returns a Graphics drawing to dev and presenting frames with p.
// If dev implements io.Closer it is closed by Graphics.Close.
func NewGraphics(dev Device, p Presenter, opts GraphicsOptions) (*Graphics, error) {
	if dev == nil {
		return nil, errors.New("mint: nil device")
	}
	capacity := opts.BatchCapacity
	if capacity == 0 {
		capacity = DefaultBatchCapacity
	}
	if err := validateBatchCapacity(capacity); err != nil {
		return nil, err
	}
	if p == nil {
		p = PresenterFunc(func() error { return nil })
	}
	g := &Graphics{
		batch:     newBatcher(dev, capacity),
		presenter: p,
		debug:     opts.Debug,
	}
	g.stack.Reset()
	return g, nil
}

// --- State stack ---

// Push saves the current color and transform. Call Pop to undo every change
// made since.
func (g *Graphics) Push() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.stack.Push()
}

// Pop restores the state saved by the matching Push. It returns
// ErrStackUnderflow if there is nothing to pop.
func (g *Graphics) Pop() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.stack.Pop()
}

// Depth returns the number of states on the stack.
func (g *Graphics) Depth() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.stack.Depth()
}

// State returns a copy of the current state.
func (g *Graphics) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.stack.Current()
}

// --- Color ---

// SetColor replaces the current color.
func (g *Graphics) SetColor(c Color) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.stack.Top().Color = c
}

// Tint multiplies the current color by c.
func (g *Graphics) Tint(c Color) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.stack.Top().Tint(c)
}

// Color returns the current color.
func (g *Graphics) Color() Color {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.stack.Top().Color
}

// --- Transform ---

// Identity resets the current transform.
func (g *Graphics) Identity() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.stack.Top().Transform.Identity()
}

// Translate moves the origin by offset in the current frame.
func (g *Graphics) Translate(offset Point) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.stack.Top().Transform.Translate(offset)
}

// Scale scales the current frame.
func (g *Graphics) Scale(size Size) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.stack.Top().Transform.Scale(size)
}

// Rotate rotates the current frame.
func (g *Graphics) Rotate(angle Angle) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.stack.Top().Transform.Rotate(angle)
}

// Transform maps a local point through the current transform.
func (g *Graphics) Transform(p Point) Point {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.stack.Top().Transform.Apply(p)
}

// Untransform maps a world point back into the current local frame.
func (g *Graphics) Untransform(p Point) Point {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.stack.Top().Transform.Invert().Apply(p)
}

// --- Drawing ---

// Vertex submits one vertex at the local point p with texture coordinate
// tex, using the current transform and color. Every four vertices form a
// quad (top-left, top-right, bottom-left, bottom-right).
func (g *Graphics) Vertex(p, tex Point) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.vertexLocked(p, tex)
}

func (g *Graphics) vertexLocked(p, tex Point) {
	if g.closed {
		return
	}
	top := g.stack.Top()
	g.batch.push(newVertex(top.Transform.Apply(p), tex, top.Color))
}

// Rect draws the rectangle spanning origin to origin+size in the current
// frame. With +Y up, origin is the bottom-left corner. Corners are emitted
// bottom-left, bottom-right, top-left, top-right; texture v runs downwards so
// the top-left corner samples (0,0).
func (g *Graphics) Rect(origin Point, size Size) {
	g.mu.Lock()
	defer g.mu.Unlock()
	left, bottom := origin.X, origin.Y
	right, top := origin.X+size.Width, origin.Y+size.Height
	g.vertexLocked(Point{left, bottom}, Point{0, 1})
	g.vertexLocked(Point{right, bottom}, Point{1, 1})
	g.vertexLocked(Point{left, top}, Point{0, 0})
	g.vertexLocked(Point{right, top}, Point{1, 0})
}

// Clear fills the screen with the current color. Vertices queued before the
// call are drawn first.
func (g *Graphics) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return
	}
	g.batch.flush()
	g.batch.dev.Clear(g.stack.Top().Color)
	g.batch.stats.Clears++
}

// Flush submits every queued vertex to the device now.
func (g *Graphics) Flush() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return
	}
	g.batch.flush()
}

// Pending returns the number of queued vertices.
func (g *Graphics) Pending() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.batch.pending()
}

// --- Frame ---

// Update ends the frame: it flushes queued vertices and presents.
func (g *Graphics) Update() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return errors.New("mint: graphics closed")
	}
	g.batch.flush()
	g.last = g.batch.endFrame()
	if g.debug {
		g.debugLog(g.last)
	}
	if err := g.presenter.Present(); err != nil {
		return Internal("present", err)
	}
	return nil
}

// Stats returns the stats of the last completed frame.
func (g *Graphics) Stats() FrameStats {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.last
}

// Close releases the device. Queued vertices are discarded. Close is safe to
// call more than once.
func (g *Graphics) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return nil
	}
	g.closed = true
	g.batch.buf = g.batch.buf[:0]
	if c, ok := g.batch.dev.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
