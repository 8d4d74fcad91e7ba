package mesh

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Library owns the GPU buffers for every loaded mesh kind. Geometry is
// uploaded once per kind and shared by all draw calls that reference it.
type Library struct {
	meshes map[Kind]*glMesh
}

type glMesh struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

// NewLibrary creates an empty mesh library.
func NewLibrary() *Library {
	return &Library{
		meshes: make(map[Kind]*glMesh),
	}
}

// Load generates and uploads the geometry for a mesh kind. Loading a kind
// that is already resident is a no-op.
func (l *Library) Load(k Kind) error {
	if _, ok := l.meshes[k]; ok {
		return nil
	}

	geo := Generate(k)
	m := &glMesh{indexCount: int32(len(geo.Indices))}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(geo.Vertices)*4, gl.Ptr(geo.Vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(geo.Indices)*4, gl.Ptr(geo.Indices), gl.STATIC_DRAW)

	vertexSize := int32(Stride * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, vertexSize, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, vertexSize, 3*4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, vertexSize, 6*4)

	gl.BindVertexArray(0)

	l.meshes[k] = m
	return nil
}

// Draw renders a loaded mesh kind. Drawing an unloaded kind is a no-op.
func (l *Library) Draw(k Kind) {
	m, ok := l.meshes[k]
	if !ok {
		return
	}
	gl.BindVertexArray(m.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

// Teardown releases all GPU buffers. Safe to call more than once.
func (l *Library) Teardown() {
	for k, m := range l.meshes {
		gl.DeleteVertexArrays(1, &m.vao)
		gl.DeleteBuffers(1, &m.vbo)
		gl.DeleteBuffers(1, &m.ebo)
		delete(l.meshes, k)
	}
}
