// Package texture provides image decoding and GPU texture upload for the
// scene's texture registry.
package texture

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
)

// Sentinel errors for texture loading. Callers match with errors.Is.
var (
	ErrFileNotFound      = errors.New("texture file not found")
	ErrDecode            = errors.New("texture decode failed")
	ErrUnsupportedFormat = errors.New("unsupported texture format")
)

// Image holds decoded pixel data ready for GPU upload.
// Pixels are tightly packed RGB (Channels=3) or RGBA (Channels=4),
// bottom row first to match OpenGL's texture coordinate origin.
type Image struct {
	Pixels   []byte
	Width    int
	Height   int
	Channels int
}

// Decode reads and decodes an image file. PNG, JPEG, BMP and TGA are
// supported. Channels reflects the source format: grayscale images report 1
// channel, which the registry rejects since only 3- and 4-channel data is
// uploaded.
func Decode(path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var (
		img      image.Image
		channels int
	)

	// TGA has no magic bytes, so it is routed by extension; everything else
	// goes through the registered stdlib / x/image decoders.
	if strings.EqualFold(filepath.Ext(path), ".tga") {
		img, channels, err = DecodeTGA(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
		}
	} else {
		img, _, err = image.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
		}
		channels = channelCount(img)
	}

	return flatten(img, channels), nil
}

// channelCount reports the source channel count the way stb_image does:
// what is stored in the file, not what Go decoded it into.
func channelCount(img image.Image) int {
	switch im := img.(type) {
	case *image.Gray, *image.Gray16:
		return 1
	case *image.YCbCr, *image.CMYK:
		return 3
	case *image.Paletted:
		for _, c := range im.Palette {
			if _, _, _, a := c.RGBA(); a != 0xffff {
				return 4
			}
		}
		return 3
	default:
		// RGBA, NRGBA and their 16-bit variants
		return 4
	}
}

// flatten converts a decoded image into tightly packed pixel rows, flipped
// vertically so row 0 is the bottom of the image (OpenGL convention).
func flatten(img image.Image, channels int) *Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	// 1- and 2-channel images still get flattened; the registry rejects
	// them before upload.
	stride := channels
	if stride < 3 {
		stride = 3
	}

	pixels := make([]byte, w*h*stride)
	for y := 0; y < h; y++ {
		destRow := (h - 1 - y) * w * stride
		for x := 0; x < w; x++ {
			r16, g16, b16, a16 := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			i := destRow + x*stride
			pixels[i] = byte(r16 >> 8)
			pixels[i+1] = byte(g16 >> 8)
			pixels[i+2] = byte(b16 >> 8)
			if stride == 4 {
				pixels[i+3] = byte(a16 >> 8)
			}
		}
	}

	return &Image{
		Pixels:   pixels,
		Width:    w,
		Height:   h,
		Channels: channels,
	}
}
