package mint

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingDevice is a Device that logs every call in order.
type recordingDevice struct {
	calls   []string
	uploads [][]Vertex
	draws   []int
	clears  []Color
	closed  int
	pixels  *image.NRGBA
}

func (d *recordingDevice) Upload(v []Vertex) {
	d.calls = append(d.calls, "upload")
	d.uploads = append(d.uploads, append([]Vertex(nil), v...))
}

func (d *recordingDevice) DrawElements(count int) {
	d.calls = append(d.calls, "draw")
	d.draws = append(d.draws, count)
}

func (d *recordingDevice) Clear(c Color) {
	d.calls = append(d.calls, "clear")
	d.clears = append(d.clears, c)
}

func (d *recordingDevice) Close() error {
	d.closed++
	return nil
}

// pixelDevice adds PixelReader to recordingDevice.
type pixelDevice struct {
	recordingDevice
}

func (d *pixelDevice) ReadPixels() (*image.NRGBA, error) {
	d.calls = append(d.calls, "read")
	return d.pixels, nil
}

func newTestGraphics(t *testing.T, capacity int) (*Graphics, *recordingDevice) {
	t.Helper()
	dev := &recordingDevice{}
	g, err := NewGraphics(dev, nil, GraphicsOptions{BatchCapacity: capacity})
	require.NoError(t, err)
	return g, dev
}

// --- QuadIndices ---

func TestQuadIndicesPattern(t *testing.T) {
	got := QuadIndices(2)
	assert.Equal(t, []uint16{0, 1, 2, 2, 1, 3, 4, 5, 6, 6, 5, 7}, got)
	assert.Empty(t, QuadIndices(0))
}

func TestQuadIndicesMaxCapacity(t *testing.T) {
	inds := QuadIndices(MaxBatchCapacity / VerticesPerQuad)
	require.Len(t, inds, MaxBatchCapacity/VerticesPerQuad*IndicesPerQuad)
	assert.Equal(t, uint16(MaxBatchCapacity-1), inds[len(inds)-1])
}

func TestValidateBatchCapacity(t *testing.T) {
	tests := []struct {
		n  int
		ok bool
	}{
		{4, true},
		{1024, true},
		{MaxBatchCapacity, true},
		{0, false},
		{-4, false},
		{6, false},
		{MaxBatchCapacity + 4, false},
	}
	for _, tt := range tests {
		err := validateBatchCapacity(tt.n)
		if tt.ok {
			assert.NoError(t, err, "capacity %d", tt.n)
		} else {
			assert.ErrorIs(t, err, ErrInvalidConfig, "capacity %d", tt.n)
		}
	}
}

// --- Batching ---

func TestBatchFlushesAtCapacity(t *testing.T) {
	const capacity = 8
	g, dev := newTestGraphics(t, capacity)

	for i := 0; i < capacity-1; i++ {
		g.Vertex(Point{}, Point{})
	}
	assert.Empty(t, dev.calls, "no device calls before capacity")
	assert.Equal(t, capacity-1, g.Pending())

	g.Vertex(Point{}, Point{})
	assert.Equal(t, []string{"upload", "draw"}, dev.calls)
	require.Len(t, dev.uploads, 1)
	assert.Len(t, dev.uploads[0], capacity)
	assert.Equal(t, []int{capacity / VerticesPerQuad * IndicesPerQuad}, dev.draws)
	assert.Zero(t, g.Pending())
}

func TestBatchDrawCountFollowsQuads(t *testing.T) {
	g, dev := newTestGraphics(t, 16)
	for i := 0; i < 3; i++ {
		g.Rect(Point{}, Size{Width: 1, Height: 1})
	}
	g.Flush()
	assert.Equal(t, []int{18}, dev.draws)
}

func TestBatchDropsPartialQuad(t *testing.T) {
	g, dev := newTestGraphics(t, 16)
	g.Rect(Point{}, Size{Width: 1, Height: 1})
	g.Vertex(Point{}, Point{})
	g.Vertex(Point{}, Point{})

	require.NoError(t, g.Update())
	require.Len(t, dev.uploads, 1)
	assert.Len(t, dev.uploads[0], 6)
	assert.Equal(t, []int{6}, dev.draws)
	assert.Equal(t, 2, g.Stats().Dropped)
}

func TestBatchOnlyPartialQuadSkipsDraw(t *testing.T) {
	g, dev := newTestGraphics(t, 16)
	g.Vertex(Point{}, Point{})
	g.Flush()
	assert.Equal(t, []string{"upload"}, dev.calls)
	assert.Empty(t, dev.draws)
}

func TestFlushEmptyIsNoop(t *testing.T) {
	g, dev := newTestGraphics(t, 16)
	g.Flush()
	g.Flush()
	assert.Empty(t, dev.calls)
}

func TestClearFlushesFirst(t *testing.T) {
	g, dev := newTestGraphics(t, 16)
	g.SetColor(ColorBlack)
	g.Rect(Point{}, Size{Width: 1, Height: 1})
	g.SetColor(NewColor(0, 0, 1, 1))
	g.Clear()

	assert.Equal(t, []string{"upload", "draw", "clear"}, dev.calls)
	assert.Equal(t, []Color{{0, 0, 1, 1}}, dev.clears)
	assert.Equal(t, Color8{0, 0, 0, 255}, dev.uploads[0][0].Color)
}

func TestVertexIsTransformed(t *testing.T) {
	g, dev := newTestGraphics(t, 4)
	g.Translate(Point{X: 0.5, Y: -0.25})
	g.Scale(Size{Width: 0.5, Height: 0.5})
	g.Rect(Point{X: -1, Y: -1}, Size{Width: 2, Height: 2})

	require.Len(t, dev.uploads, 1)
	got := dev.uploads[0]
	assert.Equal(t, [2]float32{0, -0.75}, got[0].Position)
	assert.Equal(t, [2]float32{1, -0.75}, got[1].Position)
	assert.Equal(t, [2]float32{0, 0.25}, got[2].Position)
	assert.Equal(t, [2]float32{1, 0.25}, got[3].Position)
	assert.Equal(t, [2]float32{0, 1}, got[0].TexCoord)
	assert.Equal(t, [2]float32{1, 0}, got[3].TexCoord)
}

func TestRectOriginIsBottomLeft(t *testing.T) {
	g, dev := newTestGraphics(t, 4)
	g.Rect(Point{X: -0.05, Y: -0.05}, Size{Width: 0.1, Height: 0.1})

	require.Len(t, dev.uploads, 1)
	v := dev.uploads[0]
	bl, br, tl, tr := v[0].Position, v[1].Position, v[2].Position, v[3].Position

	assert.Equal(t, bl[1], br[1], "bottom edge")
	assert.Equal(t, tl[1], tr[1], "top edge")
	assert.Less(t, bl[1], tl[1], "bottom-left sits below top-left")
	assert.Less(t, bl[0], br[0], "left is left of right")
	assert.Equal(t, tl[0], bl[0])
	// Centered on the origin of the current frame.
	assert.InDelta(t, 0, (bl[1]+tl[1])/2, 1e-6)
	assert.InDelta(t, 0, (bl[0]+br[0])/2, 1e-6)
	assert.Equal(t, [2]float32{0, 0}, v[2].TexCoord, "top-left samples the texture origin")
}

// --- Frame ---

func TestUpdatePresentsAfterFlush(t *testing.T) {
	dev := &recordingDevice{}
	presented := 0
	g, err := NewGraphics(dev, PresenterFunc(func() error {
		dev.calls = append(dev.calls, "present")
		presented++
		return nil
	}), GraphicsOptions{})
	require.NoError(t, err)

	g.Rect(Point{}, Size{Width: 1, Height: 1})
	require.NoError(t, g.Update())
	assert.Equal(t, []string{"upload", "draw", "present"}, dev.calls)
	assert.Equal(t, 1, presented)

	// A frame with nothing queued still presents.
	require.NoError(t, g.Update())
	assert.Equal(t, 2, presented)
	assert.Equal(t, FrameStats{}, g.Stats())
}

func TestUpdatePresentError(t *testing.T) {
	dev := &recordingDevice{}
	g, err := NewGraphics(dev, PresenterFunc(func() error {
		return assert.AnError
	}), GraphicsOptions{})
	require.NoError(t, err)

	err = g.Update()
	var ie *InternalError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, "present", ie.Op)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestStatsRollOver(t *testing.T) {
	g, _ := newTestGraphics(t, 8)
	for i := 0; i < 3; i++ {
		g.Rect(Point{}, Size{Width: 1, Height: 1})
	}
	g.Clear()
	require.NoError(t, g.Update())

	assert.Equal(t, FrameStats{
		Vertices:  12,
		Uploads:   2,
		DrawCalls: 2,
		Clears:    1,
	}, g.Stats())

	require.NoError(t, g.Update())
	assert.Equal(t, FrameStats{}, g.Stats())
}
