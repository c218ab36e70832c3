package host

import (
	"bytes"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"
	"time"
)

func TestFileLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"after-enter", "after-enter"},
		{"Grove", "Grove"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/region", "path_to_region"},
		{"", "frame"},
		{"   ", "frame"},
	}
	for _, tt := range tests {
		if got := fileLabel(tt.in); got != tt.want {
			t.Errorf("fileLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScreenshotPath(t *testing.T) {
	now := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	got := screenshotPath("shots", now, 42, "after drag-Tide")
	want := filepath.Join("shots", "20260304_050607_000042_after_drag-Tide.png")
	if got != want {
		t.Errorf("screenshotPath = %q, want %q", got, want)
	}
}

func TestEncodeFrameUnpremultiplies(t *testing.T) {
	data, err := encodeFrame([]byte{
		64, 32, 0, 128, // half alpha
		10, 20, 30, 255, // opaque
		0, 0, 0, 0, // transparent
	}, 3, 1)
	if err != nil {
		t.Fatalf("encodeFrame: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 1 {
		t.Fatalf("size = %dx%d, want 3x1", b.Dx(), b.Dy())
	}
	want := []color.NRGBA{{127, 63, 0, 128}, {10, 20, 30, 255}, {0, 0, 0, 0}}
	for x, w := range want {
		got := color.NRGBAModel.Convert(img.At(x, 0)).(color.NRGBA)
		if got != w {
			t.Errorf("pixel %d = %v, want %v", x, got, w)
		}
	}
}

func TestEncodeFrameShortBuffer(t *testing.T) {
	if _, err := encodeFrame(make([]byte, 4), 2, 2); err == nil {
		t.Error("expected error for a short pixel buffer")
	}
}

func TestCompassScreenshotCarriesRegion(t *testing.T) {
	s, c, _ := newTestCompass(t)
	if s.ScreenshotDir != defaultScreenshotDir {
		t.Errorf("ScreenshotDir = %q, want %q", s.ScreenshotDir, defaultScreenshotDir)
	}
	c.Screenshot("start")
	c.Point(2)
	c.Screenshot("turned")
	q := s.screenshotQueue
	if len(q) != 2 || q[0] != "start-Ember" || q[1] != "turned-Grove" {
		t.Errorf("queue = %v, want [start-Ember turned-Grove]", q)
	}
}
