package scene

import (
	"fmt"

	"github.com/Best-Bee/CS330/internal/engine/texture"
)

// TextureEntry associates a tag with a GPU texture object. The entry's
// position in the registry is its texture slot.
type TextureEntry struct {
	Tag string
	ID  uint32
}

// GPUBackend is the GPU side of the texture registry.
type GPUBackend interface {
	CreateTexture(img *texture.Image) (uint32, error)
	BindUnit(unit int, id uint32)
	DeleteTextures(ids []uint32)
}

// DecodeFunc decodes an image file into pixels.
type DecodeFunc func(path string) (*texture.Image, error)

// TextureRegistry loads image files into GPU textures and maps tags to
// sequential texture slots in load order.
type TextureRegistry struct {
	decode  DecodeFunc
	gpu     GPUBackend
	entries []TextureEntry
}

// NewTextureRegistry creates a registry using the given decoder and GPU backend.
func NewTextureRegistry(decode DecodeFunc, gpu GPUBackend) *TextureRegistry {
	return &TextureRegistry{
		decode: decode,
		gpu:    gpu,
	}
}

// Load decodes an image file, uploads it as a GPU texture, and registers it
// under the tag. Only 3- and 4-channel images are accepted; anything else
// fails without registering. The new entry takes the next sequential slot.
// Duplicate tags are allowed; lookups return the first registered.
func (r *TextureRegistry) Load(path, tag string) error {
	img, err := r.decode(path)
	if err != nil {
		return fmt.Errorf("loading texture %q: %w", tag, err)
	}

	if img.Channels != 3 && img.Channels != 4 {
		return fmt.Errorf("loading texture %q: %w: %d channels", tag, texture.ErrUnsupportedFormat, img.Channels)
	}

	id, err := r.gpu.CreateTexture(img)
	if err != nil {
		return fmt.Errorf("uploading texture %q: %w", tag, err)
	}

	r.entries = append(r.entries, TextureEntry{Tag: tag, ID: id})
	return nil
}

// BindAll binds every registered texture to its slot's texture unit
// (slot i to unit i). Call after loading and before any textured draw;
// call again if more textures are loaded later.
func (r *TextureRegistry) BindAll() {
	for i, e := range r.entries {
		r.gpu.BindUnit(i, e.ID)
	}
}

// FindSlot returns the slot index of the first entry with the given tag,
// or -1 if the tag was never loaded. Callers must tolerate -1.
func (r *TextureRegistry) FindSlot(tag string) int {
	for i, e := range r.entries {
		if e.Tag == tag {
			return i
		}
	}
	return -1
}

// Len returns the number of registered textures.
func (r *TextureRegistry) Len() int {
	return len(r.entries)
}

// Teardown releases all GPU textures. Safe to call more than once.
func (r *TextureRegistry) Teardown() {
	if len(r.entries) == 0 {
		return
	}
	ids := make([]uint32, len(r.entries))
	for i, e := range r.entries {
		ids[i] = e.ID
	}
	r.gpu.DeleteTextures(ids)
	r.entries = nil
}
