// Package ebitencanvas draws mint immediate-mode graphics into Ebitengine
// images, so a game running under ebiten.RunGame can use the mint draw API.
//
// Clip-space positions map onto the target's bounds: (-1,-1) is the
// bottom-left corner and (1,1) the top-right.
package ebitencanvas

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"

	"github.com/mint2d/mint"
)

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.White)
	}
	return whitePixelImage
}

// device implements mint.Device by issuing DrawTriangles32 calls on the
// current target image.
type device struct {
	target *ebiten.Image
	verts  []ebiten.Vertex
	inds   []uint32
}

func (d *device) Upload(vertices []mint.Vertex) {
	d.verts = d.verts[:0]
	if d.target == nil {
		return
	}
	b := d.target.Bounds()
	for _, v := range vertices {
		d.verts = append(d.verts, toEbitenVertex(v, b.Min.X, b.Min.Y, b.Dx(), b.Dy()))
	}
}

func (d *device) DrawElements(count int) {
	if d.target == nil || count == 0 {
		return
	}
	d.inds = quadIndices32(d.inds[:0], count)
	var triOp ebiten.DrawTrianglesOptions
	d.target.DrawTriangles32(d.verts, d.inds, ensureWhitePixel(), &triOp)
}

func (d *device) Clear(c mint.Color) {
	if d.target == nil {
		return
	}
	d.target.Fill(c.NRGBA())
}

// toEbitenVertex maps a clip-space vertex into the pixel rectangle at
// (x0, y0) with size w x h. Y is flipped.
func toEbitenVertex(v mint.Vertex, x0, y0, w, h int) ebiten.Vertex {
	return ebiten.Vertex{
		DstX:   float32(x0) + (v.Position[0]+1)*0.5*float32(w),
		DstY:   float32(y0) + (1-v.Position[1])*0.5*float32(h),
		SrcX:   0.5,
		SrcY:   0.5,
		ColorR: float32(v.Color.R) / 255,
		ColorG: float32(v.Color.G) / 255,
		ColorB: float32(v.Color.B) / 255,
		ColorA: float32(v.Color.A) / 255,
	}
}

// quadIndices32 appends count indices of the quad pattern to dst.
func quadIndices32(dst []uint32, count int) []uint32 {
	quads := count / mint.IndicesPerQuad
	for _, i := range mint.QuadIndices(quads) {
		dst = append(dst, uint32(i))
	}
	return dst
}

// Canvas is a mint.Graphics that renders into ebiten images.
type Canvas struct {
	*mint.Graphics
	dev *device
}

// New returns a canvas. A zero BatchCapacity selects mint.DefaultBatchCapacity.
func New(opts mint.GraphicsOptions) (*Canvas, error) {
	dev := &device{}
	g, err := mint.NewGraphics(dev, nil, opts)
	if err != nil {
		return nil, err
	}
	return &Canvas{Graphics: g, dev: dev}, nil
}

// Draw runs fn against target and flushes the result into it. Call it from
// an ebiten.Game's Draw method.
func (c *Canvas) Draw(target *ebiten.Image, fn func(g *mint.Graphics)) error {
	if target == nil {
		return errors.New("mint: ebitencanvas: nil target")
	}
	c.dev.target = target
	defer func() { c.dev.target = nil }()

	fn(c.Graphics)
	return c.Update()
}
