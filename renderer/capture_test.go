package renderer

import (
	"image/color"
	"strings"
	"testing"
	"time"
)

func TestPixelsToImage(t *testing.T) {
	// two rows, bottom row red, top row blue, as GL returns them
	pix := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}
	img, err := pixelsToImage(pix, 1, 2)
	if err != nil {
		t.Fatal(err)
	}
	if c := img.NRGBAAt(0, 0); c != (color.NRGBA{0, 0, 255, 255}) {
		t.Errorf("top: have %v, want blue", c)
	}
	if c := img.NRGBAAt(0, 1); c != (color.NRGBA{255, 0, 0, 255}) {
		t.Errorf("bottom: have %v, want red", c)
	}
	if _, err := pixelsToImage(pix, 2, 2); err == nil {
		t.Error("expected size mismatch error")
	}
}

func TestScreenshotName(t *testing.T) {
	ts := time.Date(2024, 3, 5, 14, 7, 9, 123000000, time.UTC)
	name := screenshotName(ts)
	if name != "screenshot-20240305-140709.123.png" {
		t.Errorf("have %q", name)
	}
	if !strings.HasSuffix(name, ".png") {
		t.Errorf("%q is not a png name", name)
	}
}

func TestSceneRegistry(t *testing.T) {
	names := SceneNames()
	want := []string{"cube", "quad", "scene", "triangle"}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Errorf("have %v, want %v", names, want)
	}
	for _, n := range names {
		if _, err := NewScene(n); err != nil {
			t.Errorf("NewScene(%q): %v", n, err)
		}
	}
	if _, err := NewScene("teapot"); err == nil {
		t.Error("expected error for unknown scene")
	}
}

func TestFallbackImage(t *testing.T) {
	a, b := fallbackImage(0), fallbackImage(1)
	if a.Rect.Dx() != 256 || a.Rect.Dy() != 256 {
		t.Fatalf("have size %v, want 256x256", a.Rect.Size())
	}
	if a.NRGBAAt(0, 0) == b.NRGBAAt(0, 0) {
		t.Error("units 0 and 1 should get distinct fallback textures")
	}
}
