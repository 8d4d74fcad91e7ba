package scene

import "fmt"

// MaxLights is the fixed number of light slots in the shader.
const MaxLights = 4

// LightSource describes one of the four fixed scene lights. A FocalStrength
// of 0 keeps the slot configured but visually off.
type LightSource struct {
	Position          [3]float32 `yaml:"position"`
	AmbientColor      [3]float32 `yaml:"ambient_color"`
	DiffuseColor      [3]float32 `yaml:"diffuse_color"`
	SpecularColor     [3]float32 `yaml:"specular_color"`
	FocalStrength     float32    `yaml:"focal_strength"`
	SpecularIntensity float32    `yaml:"specular_intensity"`
	Constant          float32    `yaml:"constant"`
	Linear            float32    `yaml:"linear"`
	Quadratic         float32    `yaml:"quadratic"`
}

// ConfigureLights uploads all four light slots and enables lighting. Called
// once at scene preparation; lights are static for the session.
func ConfigureLights(u UniformStore, lights [MaxLights]LightSource) {
	for i, l := range lights {
		prefix := fmt.Sprintf("lightSources[%d].", i)
		u.SetVec3(prefix+"position", l.Position[0], l.Position[1], l.Position[2])
		u.SetVec3(prefix+"ambientColor", l.AmbientColor[0], l.AmbientColor[1], l.AmbientColor[2])
		u.SetVec3(prefix+"diffuseColor", l.DiffuseColor[0], l.DiffuseColor[1], l.DiffuseColor[2])
		u.SetVec3(prefix+"specularColor", l.SpecularColor[0], l.SpecularColor[1], l.SpecularColor[2])
		u.SetFloat(prefix+"focalStrength", l.FocalStrength)
		u.SetFloat(prefix+"specularIntensity", l.SpecularIntensity)
		u.SetFloat(prefix+"constant", l.Constant)
		u.SetFloat(prefix+"linear", l.Linear)
		u.SetFloat(prefix+"quadratic", l.Quadratic)
	}
	u.SetBool(uniformUseLighting, true)
}
