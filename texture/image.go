package texture

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"os"

	// Blank imports for image decoders so image.Decode can handle them.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Decode reads any registered image format and converts it to NRGBA.
func Decode(r io.Reader) (*image.NRGBA, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", err
	}
	if nrgba, ok := img.(*image.NRGBA); ok && nrgba.Rect.Min == (image.Point{}) {
		return nrgba, format, nil
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst, format, nil
}

// LoadImage decodes the image file at path.
func LoadImage(path string) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error loading texture %s: %w", path, err)
	}
	defer f.Close()
	img, _, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("error loading texture %s: %w", path, err)
	}
	if img.Rect.Dx() == 0 || img.Rect.Dy() == 0 {
		return nil, fmt.Errorf("error loading texture %s: image is empty", path)
	}
	return img, nil
}

// FlipVertical reverses the row order in place. Image rows run top to bottom
// while GL texture rows run bottom to top.
func FlipVertical(img *image.NRGBA) {
	h := img.Rect.Dy()
	rowSize := img.Rect.Dx() * 4
	tmp := make([]byte, rowSize)
	for y := 0; y < h/2; y++ {
		top := img.Pix[y*img.Stride : y*img.Stride+rowSize]
		bottom := img.Pix[(h-1-y)*img.Stride : (h-1-y)*img.Stride+rowSize]
		copy(tmp, top)
		copy(top, bottom)
		copy(bottom, tmp)
	}
}

// Checkerboard draws a size x size board of cells x cells squares alternating
// between a and b, starting with a in the top left.
func Checkerboard(size, cells int, a, b color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	if cells < 1 {
		cells = 1
	}
	cell := size / cells
	if cell < 1 {
		cell = 1
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := a
			if (x/cell+y/cell)%2 == 1 {
				c = b
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}
