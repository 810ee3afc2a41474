package texture

import (
	"fmt"
	"image"
	"log"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// MaxUnits is the number of texture units a fragment shader is guaranteed by GL 4.1.
const MaxUnits = 16

// Texture is a 2D texture bound to a fixed texture unit.
type Texture struct {
	ID     uint32
	Unit   int
	Width  int
	Height int
}

func checkUnit(unit int) error {
	if unit < 0 || unit >= MaxUnits {
		return fmt.Errorf("texture unit %d out of range [0,%d)", unit, MaxUnits)
	}
	return nil
}

// Load reads an image from path and uploads it to the given texture unit.
func Load(path string, unit int) (*Texture, error) {
	if err := checkUnit(unit); err != nil {
		return nil, err
	}
	img, err := LoadImage(path)
	if err != nil {
		return nil, err
	}
	t, err := FromImage(img, unit)
	if err != nil {
		return nil, err
	}
	log.Printf("Loaded texture %s (%dx%d) into unit %d", path, t.Width, t.Height, unit)
	return t, nil
}

// FromImage uploads img to the given texture unit. The texture repeats on wrap
// and is mipmapped. img is flipped in place to GL row order.
func FromImage(img *image.NRGBA, unit int) (*Texture, error) {
	if err := checkUnit(unit); err != nil {
		return nil, err
	}
	FlipVertical(img)

	width := int32(img.Rect.Dx())
	height := int32(img.Rect.Dy())

	var textureID uint32
	gl.GenTextures(1, &textureID)
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(gl.TEXTURE_2D, textureID)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA8,
		width,
		height,
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(img.Pix),
	)
	gl.GenerateMipmap(gl.TEXTURE_2D)

	return &Texture{
		ID:     textureID,
		Unit:   unit,
		Width:  int(width),
		Height: int(height),
	}, nil
}

// Bind activates the texture's unit and binds the texture to it.
func (t *Texture) Bind() {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(t.Unit))
	gl.BindTexture(gl.TEXTURE_2D, t.ID)
}

func (t *Texture) Delete() {
	gl.DeleteTextures(1, &t.ID)
}
