package mint

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#ff0000", Color{1, 0, 0, 1}},
		{"#00ff00", Color{0, 1, 0, 1}},
		{"#fff", Color{1, 1, 1, 1}},
		{"#0000ff80", Color{0, 0, 1, 128.0 / 255}},
		{"#00000000", Color{0, 0, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			require.NoError(t, err)
			assert.InDelta(t, tt.want.R, got.R, 1e-9)
			assert.InDelta(t, tt.want.G, got.G, 1e-9)
			assert.InDelta(t, tt.want.B, got.B, 1e-9)
			assert.InDelta(t, tt.want.A, got.A, 1e-9)
		})
	}
}

func TestParseHexInvalid(t *testing.T) {
	for _, in := range []string{"", "red", "#12", "#gggggg", "#ff0000zz"} {
		_, err := ParseHex(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestColorFromHSV(t *testing.T) {
	red := ColorFromHSV(0, 1, 1)
	assert.InDelta(t, 1, red.R, 1e-9)
	assert.InDelta(t, 0, red.G, 1e-9)
	assert.InDelta(t, 0, red.B, 1e-9)
	assert.Equal(t, 1.0, red.A)

	blue := ColorFromHSV(240, 1, 1)
	assert.InDelta(t, 1, blue.B, 1e-9)

	gray := ColorFromHSV(123, 0, 0.5)
	assert.InDelta(t, 0.5, gray.R, 1e-9)
	assert.InDelta(t, 0.5, gray.G, 1e-9)
	assert.InDelta(t, 0.5, gray.B, 1e-9)
}

func TestColorMulNeutral(t *testing.T) {
	c := NewColor(0.3, 0.6, 0.9, 0.4)
	assert.Equal(t, c, c.Mul(ColorWhite))
	assert.Equal(t, ColorTransparent, c.Mul(ColorTransparent))
}

func TestColorClampAndNRGBA(t *testing.T) {
	c := NewColor(-0.5, 0.5, 2, 1)
	assert.Equal(t, Color{0, 0.5, 1, 1}, c.Clamp())
	assert.Equal(t, color.NRGBA{R: 0, G: 128, B: 255, A: 255}, c.NRGBA())
}
