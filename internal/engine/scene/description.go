package scene

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Best-Bee/CS330/internal/engine/mesh"
)

//go:embed room.yaml
var defaultRoomYAML []byte

// TextureRef names an image file and the tag it registers under.
type TextureRef struct {
	File string `yaml:"file"`
	Tag  string `yaml:"tag"`
}

// Object is one entry of the declarative draw list. Exactly one of Texture
// and Color must be set. Objects draw in list order against shared shader
// state, so each carries every value its draw depends on.
type Object struct {
	Name     string      `yaml:"name"`
	Mesh     string      `yaml:"mesh"`
	Scale    [3]float32  `yaml:"scale"`
	Rotation [3]float32  `yaml:"rotation"`
	Position [3]float32  `yaml:"position"`
	UVScale  [2]float32  `yaml:"uv_scale"`
	Texture  string      `yaml:"texture"`
	Color    *[4]float32 `yaml:"color"`
	Material string      `yaml:"material"`
}

// Description is a complete declarative scene: what to load and what to draw.
type Description struct {
	Textures  []TextureRef  `yaml:"textures"`
	Materials []Material    `yaml:"materials"`
	Lights    []LightSource `yaml:"lights"`
	Objects   []Object      `yaml:"objects"`
}

// DefaultRoom returns the embedded furnished-room scene.
func DefaultRoom() *Description {
	desc, err := ParseDescription(defaultRoomYAML)
	if err != nil {
		// The embedded scene is validated by tests; a parse failure here is
		// a build defect, not a runtime condition.
		panic(fmt.Sprintf("embedded room scene: %v", err))
	}
	return desc
}

// LoadDescription reads and parses a scene description file.
func LoadDescription(path string) (*Description, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene %s: %w", path, err)
	}
	desc, err := ParseDescription(data)
	if err != nil {
		return nil, fmt.Errorf("parsing scene %s: %w", path, err)
	}
	return desc, nil
}

// ParseDescription parses and validates scene YAML.
func ParseDescription(data []byte) (*Description, error) {
	var desc Description
	if err := yaml.Unmarshal(data, &desc); err != nil {
		return nil, err
	}

	if len(desc.Lights) > MaxLights {
		return nil, fmt.Errorf("%d lights defined, at most %d supported", len(desc.Lights), MaxLights)
	}

	for i := range desc.Objects {
		obj := &desc.Objects[i]
		if _, err := mesh.ParseKind(obj.Mesh); err != nil {
			return nil, fmt.Errorf("object %q: %w", obj.Name, err)
		}
		if (obj.Texture == "") == (obj.Color == nil) {
			return nil, fmt.Errorf("object %q: exactly one of texture and color required", obj.Name)
		}
		if obj.UVScale == ([2]float32{}) {
			obj.UVScale = [2]float32{1, 1}
		}
	}

	return &desc, nil
}

// LightSlots spreads the description's lights over the fixed four slots.
// Unused slots stay zeroed, which leaves them dark (focal strength 0).
func (d *Description) LightSlots() [MaxLights]LightSource {
	var slots [MaxLights]LightSource
	copy(slots[:], d.Lights)
	return slots
}

// MeshKinds returns each mesh kind the draw list references, in first-use
// order and without duplicates.
func (d *Description) MeshKinds() []mesh.Kind {
	seen := make(map[mesh.Kind]bool)
	var kinds []mesh.Kind
	for _, obj := range d.Objects {
		k, err := mesh.ParseKind(obj.Mesh)
		if err != nil {
			continue
		}
		if !seen[k] {
			seen[k] = true
			kinds = append(kinds, k)
		}
	}
	return kinds
}
