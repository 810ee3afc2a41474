package texture

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/bmp"
)

// stripes returns a 2x3 image whose rows are red, green and blue.
func stripes() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 3))
	rows := []color.NRGBA{{255, 0, 0, 255}, {0, 255, 0, 255}, {0, 0, 255, 255}}
	for y, c := range rows {
		for x := 0; x < 2; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestDecodeFormats(t *testing.T) {
	var pngBuf, bmpBuf bytes.Buffer
	if err := png.Encode(&pngBuf, stripes()); err != nil {
		t.Fatal(err)
	}
	if err := bmp.Encode(&bmpBuf, stripes()); err != nil {
		t.Fatal(err)
	}
	for _, tc := range []struct {
		format string
		data   []byte
	}{
		{"png", pngBuf.Bytes()},
		{"bmp", bmpBuf.Bytes()},
	} {
		img, format, err := Decode(bytes.NewReader(tc.data))
		if err != nil {
			t.Fatalf("%s: %v", tc.format, err)
		}
		if format != tc.format {
			t.Errorf("have format %q, want %q", format, tc.format)
		}
		if img.Rect.Dx() != 2 || img.Rect.Dy() != 3 {
			t.Errorf("%s: have size %v, want 2x3", tc.format, img.Rect.Size())
		}
		if c := img.NRGBAAt(1, 2); c != (color.NRGBA{0, 0, 255, 255}) {
			t.Errorf("%s: bottom row have %v, want blue", tc.format, c)
		}
	}
}

func TestFlipVertical(t *testing.T) {
	img := stripes()
	FlipVertical(img)
	want := []color.NRGBA{{0, 0, 255, 255}, {0, 255, 0, 255}, {255, 0, 0, 255}}
	for y, c := range want {
		if got := img.NRGBAAt(0, y); got != c {
			t.Errorf("row %d: have %v, want %v", y, got, c)
		}
	}
}

func TestLoadImageErrors(t *testing.T) {
	dir := t.TempDir()
	garbage := filepath.Join(dir, "garbage.png")
	if err := os.WriteFile(garbage, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	for _, path := range []string{garbage, filepath.Join(dir, "missing.png")} {
		_, err := LoadImage(path)
		if err == nil {
			t.Errorf("LoadImage(%q): expected error", path)
			continue
		}
		if !strings.Contains(err.Error(), path) {
			t.Errorf("error %q does not name the path", err)
		}
	}
}

func TestCheckUnit(t *testing.T) {
	for _, unit := range []int{0, 3, MaxUnits - 1} {
		if err := checkUnit(unit); err != nil {
			t.Errorf("unit %d: %v", unit, err)
		}
	}
	for _, unit := range []int{-1, MaxUnits} {
		if err := checkUnit(unit); err == nil {
			t.Errorf("unit %d: expected error", unit)
		}
	}
}

func TestCheckerboard(t *testing.T) {
	a := color.NRGBA{255, 255, 255, 255}
	b := color.NRGBA{0, 0, 0, 255}
	img := Checkerboard(8, 4, a, b)
	if img.Rect.Dx() != 8 || img.Rect.Dy() != 8 {
		t.Fatalf("have size %v, want 8x8", img.Rect.Size())
	}
	for _, tc := range []struct {
		x, y int
		want color.NRGBA
	}{
		{0, 0, a}, {1, 1, a}, {2, 0, b}, {0, 2, b}, {2, 2, a}, {7, 7, a}, {7, 0, b},
	} {
		if got := img.NRGBAAt(tc.x, tc.y); got != tc.want {
			t.Errorf("(%d,%d): have %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}
