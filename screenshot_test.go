package mint

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"initial", "initial"},
		{"after-click", "after-click"},
		{"shot.02", "shot.02"},
		{"red rect", "red_rect"},
		{"a/b\\c", "a_b_c"},
		{"done!?", "done__"},
		{"héllo", "h_llo"},
		{"", "unlabeled"},
		{" \t", "unlabeled"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizeLabel(tt.in), "label %q", tt.in)
	}
}

func TestScreenshotWritesPNG(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(1, 1, color.NRGBA{R: 255, A: 255})
	dev := &pixelDevice{}
	dev.pixels = img

	g, err := NewGraphics(dev, nil, GraphicsOptions{BatchCapacity: 16})
	require.NoError(t, err)
	g.Rect(Point{}, Size{Width: 1, Height: 1})

	dir := filepath.Join(t.TempDir(), "shots")
	path, err := g.Screenshot(dir, "after clear")
	require.NoError(t, err)

	assert.Equal(t, dir, filepath.Dir(path))
	assert.True(t, strings.HasSuffix(path, "_after_clear.png"), path)
	assert.Equal(t, []string{"upload", "draw", "read"}, dev.calls, "pending vertices flush before readback")

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	decoded, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())
	r, _, _, a := decoded.At(1, 1).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0xffff), a)
}

func TestScreenshotAfterClose(t *testing.T) {
	dev := &pixelDevice{}
	dev.pixels = image.NewNRGBA(image.Rect(0, 0, 1, 1))
	g, err := NewGraphics(dev, nil, GraphicsOptions{})
	require.NoError(t, err)
	require.NoError(t, g.Close())

	_, err = g.Screenshot(t.TempDir(), "late")
	assert.Error(t, err)
	assert.Empty(t, dev.calls, "closed graphics must not read pixels")
}

func TestScreenshotRequiresPixelReader(t *testing.T) {
	g, _ := newTestGraphics(t, 16)
	_, err := g.Screenshot(t.TempDir(), "x")
	assert.Error(t, err)
}
