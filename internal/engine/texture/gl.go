package texture

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Uploader creates and manages OpenGL texture objects. It is the GPU side of
// the texture registry; all methods must be called on the rendering thread
// with a current GL context.
type Uploader struct{}

// CreateTexture uploads decoded pixels as a 2D texture with repeat wrapping,
// linear filtering and mipmaps, and returns the texture object ID.
func (Uploader) CreateTexture(img *Image) (uint32, error) {
	var format int32
	var srcFormat uint32
	switch img.Channels {
	case 3:
		format = gl.RGB8
		srcFormat = gl.RGB
	case 4:
		format = gl.RGBA8
		srcFormat = gl.RGBA
	default:
		return 0, fmt.Errorf("%w: %d channels", ErrUnsupportedFormat, img.Channels)
	}

	var texID uint32
	gl.GenTextures(1, &texID)
	gl.BindTexture(gl.TEXTURE_2D, texID)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	// RGB rows are not 4-byte aligned
	if img.Channels == 3 {
		gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	}

	gl.TexImage2D(gl.TEXTURE_2D, 0, format,
		int32(img.Width), int32(img.Height),
		0, srcFormat, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pixels[0]))
	gl.GenerateMipmap(gl.TEXTURE_2D)

	if img.Channels == 3 {
		gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	}
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return texID, nil
}

// BindUnit binds a texture object to the numbered texture unit.
func (Uploader) BindUnit(unit int, texID uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(gl.TEXTURE_2D, texID)
}

// DeleteTextures releases the given texture objects.
func (Uploader) DeleteTextures(ids []uint32) {
	if len(ids) == 0 {
		return
	}
	gl.DeleteTextures(int32(len(ids)), &ids[0])
}
