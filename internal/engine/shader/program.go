package shader

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Best-Bee/CS330/pkg/math"
)

// Program wraps a linked shader program and writes named uniforms into it.
// Uniform locations are cached after the first lookup. Setting a uniform the
// program does not declare is a no-op (location -1), matching GL semantics.
type Program struct {
	id   uint32
	locs map[string]int32
}

// NewProgram compiles and links a program from GLSL sources.
func NewProgram(vertexSrc, fragmentSrc string) (*Program, error) {
	id, err := CompileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, err
	}
	return &Program{
		id:   id,
		locs: make(map[string]int32),
	}, nil
}

// Use makes this program the active one.
func (p *Program) Use() {
	gl.UseProgram(p.id)
}

// ID returns the GL program object ID.
func (p *Program) ID() uint32 {
	return p.id
}

// Delete releases the program object.
func (p *Program) Delete() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}

// location returns the cached uniform location, or -1 if the uniform is not
// active in the program.
func (p *Program) location(name string) int32 {
	if loc, ok := p.locs[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
	p.locs[name] = loc
	return loc
}

// SetFloat uploads a float uniform.
func (p *Program) SetFloat(name string, v float32) {
	gl.Uniform1f(p.location(name), v)
}

// SetInt uploads an integer uniform.
func (p *Program) SetInt(name string, v int32) {
	gl.Uniform1i(p.location(name), v)
}

// SetBool uploads a boolean uniform as an integer.
func (p *Program) SetBool(name string, v bool) {
	var i int32
	if v {
		i = 1
	}
	gl.Uniform1i(p.location(name), i)
}

// SetVec2 uploads a vec2 uniform.
func (p *Program) SetVec2(name string, x, y float32) {
	gl.Uniform2f(p.location(name), x, y)
}

// SetVec3 uploads a vec3 uniform.
func (p *Program) SetVec3(name string, x, y, z float32) {
	gl.Uniform3f(p.location(name), x, y, z)
}

// SetVec4 uploads a vec4 uniform.
func (p *Program) SetVec4(name string, x, y, z, w float32) {
	gl.Uniform4f(p.location(name), x, y, z, w)
}

// SetMat4 uploads a 4x4 matrix uniform.
func (p *Program) SetMat4(name string, m math.Mat4) {
	gl.UniformMatrix4fv(p.location(name), 1, false, m.Ptr())
}
