package scene

import (
	"fmt"

	"github.com/Best-Bee/CS330/internal/engine/mesh"
	"github.com/Best-Bee/CS330/internal/engine/texture"
	"github.com/Best-Bee/CS330/pkg/math"
)

// recorderStore captures uniform writes as a flat call log plus a
// last-value map, so tests can assert both ordering and final state.
type recorderStore struct {
	calls  []string
	values map[string]any
}

func newRecorderStore() *recorderStore {
	return &recorderStore{values: make(map[string]any)}
}

func (r *recorderStore) record(name string, v any) {
	r.calls = append(r.calls, name)
	r.values[name] = v
}

func (r *recorderStore) SetFloat(name string, v float32)      { r.record(name, v) }
func (r *recorderStore) SetInt(name string, v int32)          { r.record(name, v) }
func (r *recorderStore) SetBool(name string, v bool)          { r.record(name, v) }
func (r *recorderStore) SetVec2(name string, x, y float32)    { r.record(name, [2]float32{x, y}) }
func (r *recorderStore) SetVec3(name string, x, y, z float32) { r.record(name, [3]float32{x, y, z}) }
func (r *recorderStore) SetVec4(name string, x, y, z, w float32) {
	r.record(name, [4]float32{x, y, z, w})
}
func (r *recorderStore) SetMat4(name string, m math.Mat4) { r.record(name, m) }

func (r *recorderStore) float(name string) float32 { return r.values[name].(float32) }
func (r *recorderStore) int32v(name string) int32  { return r.values[name].(int32) }
func (r *recorderStore) boolv(name string) bool    { return r.values[name].(bool) }
func (r *recorderStore) vec2(name string) [2]float32 {
	return r.values[name].([2]float32)
}
func (r *recorderStore) vec3(name string) [3]float32 {
	return r.values[name].([3]float32)
}
func (r *recorderStore) vec4(name string) [4]float32 {
	return r.values[name].([4]float32)
}
func (r *recorderStore) mat4(name string) math.Mat4 { return r.values[name].(math.Mat4) }

func (r *recorderStore) has(name string) bool {
	_, ok := r.values[name]
	return ok
}

// fakeGPU hands out sequential texture IDs and records bind and delete calls.
type fakeGPU struct {
	nextID    uint32
	created   []uint32
	binds     [][2]uint32 // unit, id pairs in call order
	deleted   []uint32
	createErr error
}

func (g *fakeGPU) CreateTexture(img *texture.Image) (uint32, error) {
	if g.createErr != nil {
		return 0, g.createErr
	}
	g.nextID++
	g.created = append(g.created, g.nextID)
	return g.nextID, nil
}

func (g *fakeGPU) BindUnit(unit int, id uint32) {
	g.binds = append(g.binds, [2]uint32{uint32(unit), id})
}

func (g *fakeGPU) DeleteTextures(ids []uint32) {
	g.deleted = append(g.deleted, ids...)
}

// fakeDecode returns a canned image per path, or an error for unknown paths.
func fakeDecode(images map[string]*texture.Image) DecodeFunc {
	return func(path string) (*texture.Image, error) {
		img, ok := images[path]
		if !ok {
			return nil, fmt.Errorf("open %s: %w", path, texture.ErrFileNotFound)
		}
		return img, nil
	}
}

func rgbImage() *texture.Image {
	return &texture.Image{Pixels: []uint8{0, 0, 0}, Width: 1, Height: 1, Channels: 3}
}

func grayImage() *texture.Image {
	return &texture.Image{Pixels: []uint8{0}, Width: 1, Height: 1, Channels: 1}
}

// fakeMeshes records Load and Draw calls per kind.
type fakeMeshes struct {
	loaded  []mesh.Kind
	drawn   []mesh.Kind
	loadErr error
}

func (m *fakeMeshes) Load(k mesh.Kind) error {
	if m.loadErr != nil {
		return m.loadErr
	}
	m.loaded = append(m.loaded, k)
	return nil
}

func (m *fakeMeshes) Draw(k mesh.Kind) {
	m.drawn = append(m.drawn, k)
}
