package renderer

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"time"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/richinsley/rhino/texture"
)

// readPixels reads the bound read framebuffer as tightly packed RGBA rows,
// bottom row first.
func readPixels(width, height int) []byte {
	pix := make([]byte, width*height*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	return pix
}

// pixelsToImage wraps bottom-up GL pixels in a top-down image.
func pixelsToImage(pix []byte, width, height int) (*image.NRGBA, error) {
	if len(pix) != width*height*4 {
		return nil, fmt.Errorf("have %d bytes, want %d for %dx%d RGBA", len(pix), width*height*4, width, height)
	}
	img := &image.NRGBA{
		Pix:    pix,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}
	texture.FlipVertical(img)
	return img, nil
}

func screenshotName(t time.Time) string {
	return fmt.Sprintf("screenshot-%s.png", t.Format("20060102-150405.000"))
}

// SaveScreenshot writes the back buffer to a timestamped PNG in the working
// directory and returns its name.
func SaveScreenshot(width, height int) (string, error) {
	gl.ReadBuffer(gl.BACK)
	img, err := pixelsToImage(readPixels(width, height), width, height)
	if err != nil {
		return "", err
	}
	name := screenshotName(time.Now())
	f, err := os.Create(name)
	if err != nil {
		return "", err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return "", err
	}
	return name, f.Close()
}
