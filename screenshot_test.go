package glide

import (
	"image"
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hero", "hero"},
		{"after-pin", "after-pin"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
	}
	for _, tt := range tests {
		if got := sanitizeLabel(tt.in); got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUnpremultiply(t *testing.T) {
	pix := []byte{
		64, 32, 0, 128, // half alpha
		10, 20, 30, 255, // opaque is untouched
		0, 0, 0, 0, // transparent is untouched
	}
	unpremultiply(pix)
	want := []byte{127, 63, 0, 128, 10, 20, 30, 255, 0, 0, 0, 0}
	for i := range want {
		if pix[i] != want[i] {
			t.Fatalf("pix = %v, want %v", pix, want)
		}
	}
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shot.png")
	if err := writePNG(path, image.NewNRGBA(image.Rect(0, 0, 2, 2))); err != nil {
		t.Fatalf("writePNG: %v", err)
	}
	if fi, err := os.Stat(path); err != nil || fi.Size() == 0 {
		t.Errorf("file not written: %v", err)
	}
}

func TestScreenshotQueue(t *testing.T) {
	e := NewEngine(testConfig(), desktopEnv, WithInput(NewInjectedInput(nil)))
	e.Screenshot("a")
	e.Screenshot("b")
	if e.PendingScreenshots() != 2 || e.shots[1] != "b" {
		t.Errorf("queue = %v", e.shots)
	}
}
