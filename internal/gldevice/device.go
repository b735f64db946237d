// Package gldevice implements mint.Device on an OpenGL 3.2 core context.
//
// Every call must happen on the thread that owns the current context. Driver
// errors are detected with glGetError after each state-mutating call and
// panic: a context in an error state has undefined behavior afterwards.
package gldevice

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/pkg/errors"

	"github.com/mint2d/mint"
)

// Device owns the vertex array, element buffer, vertex buffer and shader
// program used to draw mint batches.
type Device struct {
	program uint32
	vao     uint32
	ebo     uint32
	vbo     uint32

	capacity int
	closed   bool
}

// Init loads the OpenGL function pointers for the current context.
func Init() error {
	if err := gl.Init(); err != nil {
		return errors.Wrap(err, "load opengl")
	}
	return nil
}

// Version returns the GL_VERSION string of the current context.
func Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

// New allocates the GPU objects for batches of up to capacity vertices.
// Anything already allocated is released if a later step fails or panics.
func New(capacity int) (*Device, error) {
	d := &Device{capacity: capacity}
	ok := false
	defer func() {
		if !ok {
			d.release()
		}
	}()

	program, err := newProgram()
	if err != nil {
		return nil, err
	}
	d.program = program

	gl.GenVertexArrays(1, &d.vao)
	gl.BindVertexArray(d.vao)

	gl.GenBuffers(1, &d.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, d.ebo)
	indices := mint.QuadIndices(capacity / mint.VerticesPerQuad)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*2, gl.Ptr(indices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &d.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, d.vbo)

	stride := int32(mint.VertexSize)
	gl.EnableVertexAttribArray(attribPosition)
	gl.EnableVertexAttribArray(attribTexCoord)
	gl.EnableVertexAttribArray(attribColor)
	gl.VertexAttribPointerWithOffset(attribPosition, 2, gl.FLOAT, false, stride, uintptr(mint.VertexPositionOffset))
	gl.VertexAttribPointerWithOffset(attribTexCoord, 2, gl.FLOAT, false, stride, uintptr(mint.VertexTexCoordOffset))
	gl.VertexAttribPointerWithOffset(attribColor, 4, gl.UNSIGNED_BYTE, true, stride, uintptr(mint.VertexColorOffset))

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	checkError()
	ok = true
	return d, nil
}

// Upload replaces the vertex buffer store with vertices (stream usage).
func (d *Device) Upload(vertices []mint.Vertex) {
	if len(vertices) == 0 {
		return
	}
	gl.BindVertexArray(d.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, d.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*mint.VertexSize, unsafe.Pointer(&vertices[0]), gl.STREAM_DRAW)
	checkError()
}

// DrawElements draws count indices as triangles.
func (d *Device) DrawElements(count int) {
	if limit := d.capacity / mint.VerticesPerQuad * mint.IndicesPerQuad; count > limit {
		panic(fmt.Sprintf("gldevice: draw of %d indices exceeds element buffer of %d", count, limit))
	}
	gl.UseProgram(d.program)
	gl.BindVertexArray(d.vao)
	gl.DrawElements(gl.TRIANGLES, int32(count), gl.UNSIGNED_SHORT, gl.PtrOffset(0))
	checkError()
}

// Clear fills the color buffer with c.
func (d *Device) Clear(c mint.Color) {
	gl.ClearColor(float32(c.R), float32(c.G), float32(c.B), float32(c.A))
	gl.Clear(gl.COLOR_BUFFER_BIT)
	checkError()
}

// ReadPixels reads the current viewport back, top row first.
func (d *Device) ReadPixels() (*image.NRGBA, error) {
	var vp [4]int32
	gl.GetIntegerv(gl.VIEWPORT, &vp[0])
	w, h := int(vp[2]), int(vp[3])
	if w <= 0 || h <= 0 {
		return nil, errors.Errorf("empty viewport %dx%d", w, h)
	}
	raw := make([]byte, 4*w*h)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(vp[0], vp[1], vp[2], vp[3], gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(raw))
	checkError()

	// GL rows run bottom to top.
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	stride := 4 * w
	for y := 0; y < h; y++ {
		src := raw[(h-1-y)*stride : (h-y)*stride]
		copy(img.Pix[y*img.Stride:y*img.Stride+stride], src)
	}
	return img, nil
}

// Close deletes every GPU object. It is safe to call more than once.
func (d *Device) Close() error {
	if d.closed {
		return nil
	}
	d.release()
	return nil
}

// release deletes whatever has been allocated so far.
func (d *Device) release() {
	d.closed = true
	if d.vbo != 0 {
		gl.DeleteBuffers(1, &d.vbo)
		d.vbo = 0
	}
	if d.ebo != 0 {
		gl.DeleteBuffers(1, &d.ebo)
		d.ebo = 0
	}
	if d.vao != 0 {
		gl.DeleteVertexArrays(1, &d.vao)
		d.vao = 0
	}
	if d.program != 0 {
		gl.DeleteProgram(d.program)
		d.program = 0
	}
}

// checkError panics if the driver has recorded an error.
func checkError() {
	if code := gl.GetError(); code != gl.NO_ERROR {
		panic(fmt.Sprintf("glGetError = 0x%X", code))
	}
}
