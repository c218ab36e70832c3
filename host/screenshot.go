package host

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

const defaultScreenshotDir = "screenshots"

// Screenshot queues a capture of the next drawn frame. Each label becomes one
// PNG in ScreenshotDir named <timestamp>_<frame>_<label>.png.
func (s *Scene) Screenshot(label string) {
	s.screenshotQueue = append(s.screenshotQueue, label)
}

// flushScreenshots writes the queued captures after the frame is drawn. The
// frame is read back once and encoded once for all labels.
func (s *Scene) flushScreenshots(screen *ebiten.Image) {
	if len(s.screenshotQueue) == 0 {
		return
	}
	labels := s.screenshotQueue
	s.screenshotQueue = nil

	b := screen.Bounds()
	pix := make([]byte, 4*b.Dx()*b.Dy())
	screen.ReadPixels(pix)
	data, err := encodeFrame(pix, b.Dx(), b.Dy())
	if err != nil {
		s.log.Error().Err(err).Msg("Screenshot encoding failed")
		return
	}
	if err := os.MkdirAll(s.ScreenshotDir, 0o755); err != nil {
		s.log.Error().Err(err).Str("dir", s.ScreenshotDir).Msg("Cannot create screenshot directory")
		return
	}

	for _, label := range labels {
		path := screenshotPath(s.ScreenshotDir, time.Now(), s.frame, label)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			s.log.Error().Err(err).Str("path", path).Msg("Screenshot failed")
			continue
		}
		s.log.Info().Str("path", path).Uint64("frame", s.frame).Msg("Screenshot saved")
	}
}

// encodeFrame converts premultiplied RGBA pixels read back from the GPU to a
// straight-alpha PNG.
func encodeFrame(pix []byte, w, h int) ([]byte, error) {
	if len(pix) < 4*w*h {
		return nil, fmt.Errorf("frame has %d bytes, want %d", len(pix), 4*w*h)
	}
	src := &image.RGBA{Pix: pix, Stride: 4 * w, Rect: image.Rect(0, 0, w, h)}
	dst := image.NewNRGBA(src.Rect)
	draw.Draw(dst, dst.Rect, src, image.Point{}, draw.Src)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("encode frame: %w", err)
	}
	return buf.Bytes(), nil
}

func screenshotPath(dir string, now time.Time, frame uint64, label string) string {
	return filepath.Join(dir, fmt.Sprintf("%s_%06d_%s.png", now.Format("20060102_150405"), frame, fileLabel(label)))
}

// fileLabel maps a script label to a file-name-safe token. Region names pass
// through unchanged.
func fileLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "frame"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
}
