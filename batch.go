package mint

import (
	"image"

	"github.com/pkg/errors"
)

// Batch sizing. Vertices are grouped into quads of four, drawn as two
// triangles with the index pattern 0,1,2, 2,1,3.
const (
	DefaultBatchCapacity = 1024
	MaxBatchCapacity     = 65536
	VerticesPerQuad      = 4
	IndicesPerQuad       = 6
)

// Device is the GPU side of the batcher. Implementations own their buffers
// and must treat driver failures as fatal (panic) rather than returning them.
type Device interface {
	// Upload replaces the contents of the vertex buffer with vertices.
	Upload(vertices []Vertex)
	// DrawElements draws count indices of the quad index pattern as
	// triangles, reading the most recently uploaded vertices.
	DrawElements(count int)
	// Clear fills the color buffer with c.
	Clear(c Color)
}

// PixelReader is implemented by devices that can read back the frame.
type PixelReader interface {
	ReadPixels() (*image.NRGBA, error)
}

// Presenter shows the finished frame, typically by swapping buffers.
type Presenter interface {
	Present() error
}

// PresenterFunc adapts a function to the Presenter interface.
type PresenterFunc func() error

// Present calls f.
func (f PresenterFunc) Present() error {
	return f()
}

// QuadIndices returns the element indices for quads consecutive quads:
// TL-TR-BL, BL-TR-BR for each.
func QuadIndices(quads int) []uint16 {
	inds := make([]uint16, 0, quads*IndicesPerQuad)
	for q := 0; q < quads; q++ {
		base := uint16(q * VerticesPerQuad)
		inds = append(inds,
			base+0, base+1, base+2,
			base+2, base+1, base+3,
		)
	}
	return inds
}

// validateBatchCapacity reports whether n vertices can be indexed with
// 16-bit indices and hold only whole quads.
func validateBatchCapacity(n int) error {
	if n <= 0 || n > MaxBatchCapacity || n%VerticesPerQuad != 0 {
		return errors.Wrapf(ErrInvalidConfig,
			"batch capacity %d must be a positive multiple of %d up to %d",
			n, VerticesPerQuad, MaxBatchCapacity)
	}
	return nil
}

// FrameStats holds per-frame batching metrics.
type FrameStats struct {
	Vertices  int // vertices submitted
	Uploads   int // vertex buffer uploads
	DrawCalls int // indexed draw calls
	Clears    int // color buffer clears
	Dropped   int // trailing vertices that did not complete a quad
}

// batcher accumulates vertices and submits them to a Device in fixed-size
// batches.
type batcher struct {
	dev      Device
	buf      []Vertex
	capacity int
	stats    FrameStats
}

func newBatcher(dev Device, capacity int) batcher {
	return batcher{
		dev:      dev,
		buf:      make([]Vertex, 0, capacity),
		capacity: capacity,
	}
}

// push appends v and flushes once the buffer reaches capacity.
func (b *batcher) push(v Vertex) {
	b.buf = append(b.buf, v)
	b.stats.Vertices++
	if len(b.buf) == b.capacity {
		b.flush()
	}
}

// flush uploads the pending vertices and draws every complete quad. The
// buffer is always empty afterwards.
func (b *batcher) flush() {
	n := len(b.buf)
	if n == 0 {
		return
	}

	b.dev.Upload(b.buf)
	b.stats.Uploads++

	if quads := n / VerticesPerQuad; quads > 0 {
		b.dev.DrawElements(quads * IndicesPerQuad)
		b.stats.DrawCalls++
	}
	if rest := n % VerticesPerQuad; rest > 0 {
		b.stats.Dropped += rest
		Logger().Debug("dropped incomplete quad", "vertices", rest)
	}

	b.buf = b.buf[:0]
}

// pending returns the number of buffered vertices.
func (b *batcher) pending() int {
	return len(b.buf)
}

// endFrame returns the stats for the frame that just ended and starts a new
// frame.
func (b *batcher) endFrame() FrameStats {
	s := b.stats
	b.stats = FrameStats{}
	return s
}
