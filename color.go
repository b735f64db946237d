package mint

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// Color represents an RGBA color. Channels are conventionally in [0, 1] but
// are not clamped; a Color is used both as a paint color and as a
// multiplicative tint. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

var (
	// ColorWhite is the default paint color and the neutral tint.
	ColorWhite = Color{1, 1, 1, 1}
	// ColorBlack is opaque black.
	ColorBlack = Color{0, 0, 0, 1}
	// ColorTransparent has every channel at zero.
	ColorTransparent = Color{}
)

// NewColor returns the color (r, g, b, a).
func NewColor(r, g, b, a float64) Color {
	return Color{r, g, b, a}
}

// Mul multiplies c by o channel by channel.
func (c Color) Mul(o Color) Color {
	return Color{c.R * o.R, c.G * o.G, c.B * o.B, c.A * o.A}
}

// Clamp returns c with every channel limited to [0, 1].
func (c Color) Clamp() Color {
	return Color{clamp01(c.R), clamp01(c.G), clamp01(c.B), clamp01(c.A)}
}

// NRGBA returns c quantized to an 8-bit non-premultiplied color.
func (c Color) NRGBA() color.NRGBA {
	q := Quantize(c)
	return color.NRGBA{R: q.R, G: q.G, B: q.B, A: q.A}
}

// ParseHex parses "#rgb", "#rrggbb" or "#rrggbbaa". The alpha channel
// defaults to 1.
func ParseHex(s string) (Color, error) {
	alpha := 1.0
	if len(s) == 9 && strings.HasPrefix(s, "#") {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return Color{}, errors.Wrapf(err, "mint: parse color %q", s)
		}
		alpha = float64(a) / 255
		s = s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, errors.Wrapf(err, "mint: parse color %q", s)
	}
	return Color{c.R, c.G, c.B, alpha}, nil
}

// ColorFromHSV returns the opaque color with hue h in degrees [0, 360) and
// saturation s and value v in [0, 1].
func ColorFromHSV(h, s, v float64) Color {
	c := colorful.Hsv(h, s, v)
	return Color{c.R, c.G, c.B, 1}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
