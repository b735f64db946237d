package mint

import (
	"math"
	"unsafe"
)

// Color8 is a color quantized to 8 bits per channel.
type Color8 struct {
	R, G, B, A uint8
}

// Quantize converts c to 8 bits per channel, clamping each channel to
// [0, 1] and rounding channel*255 to the nearest integer.
func Quantize(c Color) Color8 {
	return Color8{
		R: quantizeChannel(c.R),
		G: quantizeChannel(c.G),
		B: quantizeChannel(c.B),
		A: quantizeChannel(c.A),
	}
}

func quantizeChannel(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}

// Vertex is the packed GPU vertex: a world-space position, a texture
// coordinate and an 8-bit color. Its memory layout is uploaded verbatim.
type Vertex struct {
	Position [2]float32
	TexCoord [2]float32
	Color    Color8
}

// Vertex layout, in bytes.
const (
	VertexSize           = int(unsafe.Sizeof(Vertex{}))
	VertexPositionOffset = int(unsafe.Offsetof(Vertex{}.Position))
	VertexTexCoordOffset = int(unsafe.Offsetof(Vertex{}.TexCoord))
	VertexColorOffset    = int(unsafe.Offsetof(Vertex{}.Color))
)

// newVertex builds a vertex from an already-transformed point.
func newVertex(p, tex Point, c Color) Vertex {
	return Vertex{
		Position: [2]float32{float32(p.X), float32(p.Y)},
		TexCoord: [2]float32{float32(tex.X), float32(tex.Y)},
		Color:    Quantize(c),
	}
}
