package scene

// Binder pushes per-object state into the shared shader uniforms. It holds
// no state of its own; texture slot resolution goes through the texture
// registry, material resolution through the material registry.
//
// Because the uniform store carries values across draws, callers must follow
// the per-object sequence: transform, then shading (flat color or texture
// plus UV scale), then material, then draw.
type Binder struct {
	uniforms  UniformStore
	textures  *TextureRegistry
	materials *MaterialRegistry
}

// NewBinder creates a binder over the shared uniform store and registries.
func NewBinder(u UniformStore, t *TextureRegistry, m *MaterialRegistry) *Binder {
	return &Binder{
		uniforms:  u,
		textures:  t,
		materials: m,
	}
}

// SetTransform composes the model matrix and uploads it.
func (b *Binder) SetTransform(t Transform) {
	b.uniforms.SetMat4(uniformModel, t.Matrix())
}

// SetFlatColor disables texture sampling and uploads a flat RGBA color.
func (b *Binder) SetFlatColor(r, g, bl, a float32) {
	b.uniforms.SetBool(uniformUseTexture, false)
	b.uniforms.SetVec4(uniformColor, r, g, bl, a)
}

// SetTexture enables texture sampling and uploads the slot resolved for the
// tag. An unloaded tag resolves to -1 and is forwarded unchanged; the shader
// then samples an unintended unit, which renders wrong but never crashes.
func (b *Binder) SetTexture(tag string) {
	b.uniforms.SetBool(uniformUseTexture, true)
	slot := b.textures.FindSlot(tag)
	b.uniforms.SetInt(uniformTexture, int32(slot))
}

// SetUVScale uploads the texture coordinate multiplier for tiling. The value
// persists across draws until overwritten.
func (b *Binder) SetUVScale(u, v float32) {
	b.uniforms.SetVec2(uniformUVScale, u, v)
}

// SetMaterial resolves the tag and uploads the material fields. An unknown
// tag is a silent no-op: the previous material uniforms stay in effect.
func (b *Binder) SetMaterial(tag string) {
	m, ok := b.materials.Find(tag)
	if !ok {
		return
	}
	b.uniforms.SetVec3("material.ambientColor", m.AmbientColor[0], m.AmbientColor[1], m.AmbientColor[2])
	b.uniforms.SetFloat("material.ambientStrength", m.AmbientStrength)
	b.uniforms.SetVec3("material.diffuseColor", m.DiffuseColor[0], m.DiffuseColor[1], m.DiffuseColor[2])
	b.uniforms.SetVec3("material.specularColor", m.SpecularColor[0], m.SpecularColor[1], m.SpecularColor[2])
	b.uniforms.SetFloat("material.shininess", m.Shininess)
}
