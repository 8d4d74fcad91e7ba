package scene

// Material is a named lighting-response profile. Color channels are
// independent; they are not normalized against each other.
type Material struct {
	Tag             string     `yaml:"tag"`
	AmbientColor    [3]float32 `yaml:"ambient_color"`
	AmbientStrength float32    `yaml:"ambient_strength"`
	DiffuseColor    [3]float32 `yaml:"diffuse_color"`
	SpecularColor   [3]float32 `yaml:"specular_color"`
	Shininess       float32    `yaml:"shininess"`
}

// MaterialRegistry stores materials in definition order. Duplicate tags are
// permitted: the first definition shadows later ones on lookup. This mirrors
// the texture registry's first-match rule and is intentional, not an error.
type MaterialRegistry struct {
	materials []Material
}

// Define appends a material. Redefining a tag never replaces the original.
func (r *MaterialRegistry) Define(m Material) {
	r.materials = append(r.materials, m)
}

// Find returns the first material with the given tag.
func (r *MaterialRegistry) Find(tag string) (Material, bool) {
	for _, m := range r.materials {
		if m.Tag == tag {
			return m, true
		}
	}
	return Material{}, false
}

// Len returns the number of defined materials, counting duplicates.
func (r *MaterialRegistry) Len() int {
	return len(r.materials)
}
