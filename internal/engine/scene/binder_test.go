package scene

import (
	"testing"

	"github.com/Best-Bee/CS330/internal/engine/texture"
	"github.com/Best-Bee/CS330/pkg/math"
)

func newTestBinder(t *testing.T) (*Binder, *recorderStore, *MaterialRegistry) {
	t.Helper()
	store := newRecorderStore()
	reg := NewTextureRegistry(fakeDecode(map[string]*texture.Image{
		"a.jpg": rgbImage(),
	}), &fakeGPU{})
	if err := reg.Load("a.jpg", "wood"); err != nil {
		t.Fatal(err)
	}
	materials := &MaterialRegistry{}
	return NewBinder(store, reg, materials), store, materials
}

func TestBinderSetTransform(t *testing.T) {
	b, store, _ := newTestBinder(t)

	tr := Transform{
		Scale:    math.Vec3{X: 2, Y: 1, Z: 1},
		Rotation: math.Vec3{Y: 90},
		Position: math.Vec3{X: 5},
	}
	b.SetTransform(tr)

	m := store.mat4("model")
	got := m.TransformPoint([3]float32{1, 0, 0})
	want := [3]float32{5, 0, -2}
	for i := range want {
		if diff := got[i] - want[i]; diff > 1e-5 || diff < -1e-5 {
			t.Fatalf("transformed point %v, want %v", got, want)
		}
	}
}

func TestBinderSetFlatColor(t *testing.T) {
	b, store, _ := newTestBinder(t)

	b.SetFlatColor(0.2, 0.4, 0.6, 1)

	if store.boolv("bUseTexture") {
		t.Error("flat color must disable texturing")
	}
	if got := store.vec4("objectColor"); got != [4]float32{0.2, 0.4, 0.6, 1} {
		t.Errorf("unexpected color %v", got)
	}
}

func TestBinderSetTexture(t *testing.T) {
	b, store, _ := newTestBinder(t)

	b.SetTexture("wood")

	if !store.boolv("bUseTexture") {
		t.Error("texture shading must enable texturing")
	}
	if got := store.int32v("objectTexture"); got != 0 {
		t.Errorf("expected slot 0, got %d", got)
	}
}

func TestBinderSetTextureUnknownTagForwardsNegativeOne(t *testing.T) {
	b, store, _ := newTestBinder(t)

	b.SetTexture("never-loaded")

	if !store.boolv("bUseTexture") {
		t.Error("texturing stays enabled even for an unresolved tag")
	}
	if got := store.int32v("objectTexture"); got != -1 {
		t.Errorf("expected -1 forwarded unchanged, got %d", got)
	}
}

func TestBinderSetUVScalePersists(t *testing.T) {
	b, store, _ := newTestBinder(t)

	b.SetUVScale(8, 8)
	b.SetTexture("wood")
	b.SetTransform(Transform{Scale: math.Vec3{X: 1, Y: 1, Z: 1}})

	// No intervening write touches UVscale; the tiling value is still 8x8.
	if got := store.vec2("UVscale"); got != [2]float32{8, 8} {
		t.Errorf("UV scale overwritten: %v", got)
	}
}

func TestBinderSetMaterial(t *testing.T) {
	b, store, materials := newTestBinder(t)
	materials.Define(Material{
		Tag:             "wood",
		AmbientColor:    [3]float32{0.4, 0.3, 0.1},
		AmbientStrength: 0.2,
		DiffuseColor:    [3]float32{0.3, 0.2, 0.1},
		SpecularColor:   [3]float32{0.1, 0.1, 0.1},
		Shininess:       0.3,
	})

	b.SetMaterial("wood")

	if got := store.vec3("material.ambientColor"); got != [3]float32{0.4, 0.3, 0.1} {
		t.Errorf("unexpected ambient color %v", got)
	}
	if got := store.float("material.ambientStrength"); got != 0.2 {
		t.Errorf("unexpected ambient strength %f", got)
	}
	if got := store.vec3("material.diffuseColor"); got != [3]float32{0.3, 0.2, 0.1} {
		t.Errorf("unexpected diffuse color %v", got)
	}
	if got := store.vec3("material.specularColor"); got != [3]float32{0.1, 0.1, 0.1} {
		t.Errorf("unexpected specular color %v", got)
	}
	if got := store.float("material.shininess"); got != 0.3 {
		t.Errorf("unexpected shininess %f", got)
	}
}

func TestBinderSetMaterialUnknownTagIsNoOp(t *testing.T) {
	b, store, materials := newTestBinder(t)
	materials.Define(Material{Tag: "wood", Shininess: 0.3})

	b.SetMaterial("wood")
	before := store.float("material.shininess")

	b.SetMaterial("granite")

	// The previous material's uniforms stay in effect untouched.
	if got := store.float("material.shininess"); got != before {
		t.Errorf("unknown material overwrote shininess: %f", got)
	}
	n := len(store.calls)
	b.SetMaterial("granite")
	if len(store.calls) != n {
		t.Error("unknown material must write nothing")
	}
}
