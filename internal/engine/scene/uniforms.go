// Package scene composes and renders the static room scene: texture and
// material registries keyed by tag, the shader state binder, light setup,
// and the ordered draw list.
package scene

import "github.com/Best-Bee/CS330/pkg/math"

// Shader uniform names. These form the contract with the GLSL program; the
// binder and light setup write only through them.
const (
	uniformModel       = "model"
	uniformColor       = "objectColor"
	uniformTexture     = "objectTexture"
	uniformUseTexture  = "bUseTexture"
	uniformUseLighting = "bUseLighting"
	uniformUVScale     = "UVscale"
)

// UniformStore is the shared mutable shader-uniform state. The GL program
// implements it; tests substitute a recorder. Values persist until
// overwritten - there is no reset between draw calls, so every draw must set
// everything it depends on.
type UniformStore interface {
	SetFloat(name string, v float32)
	SetInt(name string, v int32)
	SetBool(name string, v bool)
	SetVec2(name string, x, y float32)
	SetVec3(name string, x, y, z float32)
	SetVec4(name string, x, y, z, w float32)
	SetMat4(name string, m math.Mat4)
}
