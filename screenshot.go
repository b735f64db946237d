package mint

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Screenshot flushes queued vertices, reads the frame back from the device
// and writes it to dir as a timestamped PNG named after label. It returns the
// path written. The device must implement PixelReader.
func (g *Graphics) Screenshot(dir, label string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed {
		return "", errors.New("mint: graphics closed")
	}
	reader, ok := g.batch.dev.(PixelReader)
	if !ok {
		return "", errors.New("mint: device cannot read pixels")
	}
	g.batch.flush()
	img, err := reader.ReadPixels()
	if err != nil {
		return "", Internal("read pixels", err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrapf(err, "mint: screenshot: mkdir %s", dir)
	}
	stamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.png", stamp, sanitizeLabel(label)))
	if err := writePNG(path, img); err != nil {
		return "", errors.Wrap(err, "mint: screenshot")
	}
	return path, nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return errors.Wrapf(err, "encode %s", path)
	}
	return f.Close()
}

// sanitizeLabel keeps ASCII letters, digits, '-' and '.' and maps every other
// rune to '_'.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		if r == '-' || r == '.' || ('0' <= r && r <= '9') || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') {
			return r
		}
		return '_'
	}, label)
}
