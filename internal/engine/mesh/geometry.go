package mesh

import "math"

// Stride is the number of floats per vertex: position(3), normal(3), uv(2).
const Stride = 8

// circleSegments controls the tessellation of cylinders and cones.
const circleSegments = 36

// Geometry holds CPU-side vertex data for one mesh kind.
// Vertices are interleaved position/normal/uv, indices form triangles.
type Geometry struct {
	Vertices []float32
	Indices  []uint32
}

// VertexCount returns the number of vertices.
func (g Geometry) VertexCount() int {
	return len(g.Vertices) / Stride
}

// Generate builds the unit geometry for a mesh kind. Shapes match the
// conventions the scene transforms assume: the plane spans -1..1 in XZ, the
// box is a unit cube centered at the origin, cylinder and cone have unit
// radius with their base at y=0 and unit height.
func Generate(k Kind) Geometry {
	switch k {
	case Plane:
		return planeGeometry()
	case Box:
		return boxGeometry()
	case Cylinder:
		return cylinderGeometry()
	case Cone:
		return coneGeometry()
	default:
		return Geometry{}
	}
}

func planeGeometry() Geometry {
	return Geometry{
		Vertices: []float32{
			// position, normal, uv
			-1, 0, 1, 0, 1, 0, 0, 0,
			1, 0, 1, 0, 1, 0, 1, 0,
			1, 0, -1, 0, 1, 0, 1, 1,
			-1, 0, -1, 0, 1, 0, 0, 1,
		},
		Indices: []uint32{0, 1, 2, 0, 2, 3},
	}
}

func boxGeometry() Geometry {
	// Each face has its own vertices so normals and UVs stay per-face.
	faces := []struct {
		normal  [3]float32
		corners [4][3]float32
	}{
		{[3]float32{0, 0, 1}, [4][3]float32{{-0.5, -0.5, 0.5}, {0.5, -0.5, 0.5}, {0.5, 0.5, 0.5}, {-0.5, 0.5, 0.5}}},    // front
		{[3]float32{0, 0, -1}, [4][3]float32{{0.5, -0.5, -0.5}, {-0.5, -0.5, -0.5}, {-0.5, 0.5, -0.5}, {0.5, 0.5, -0.5}}}, // back
		{[3]float32{-1, 0, 0}, [4][3]float32{{-0.5, -0.5, -0.5}, {-0.5, -0.5, 0.5}, {-0.5, 0.5, 0.5}, {-0.5, 0.5, -0.5}}}, // left
		{[3]float32{1, 0, 0}, [4][3]float32{{0.5, -0.5, 0.5}, {0.5, -0.5, -0.5}, {0.5, 0.5, -0.5}, {0.5, 0.5, 0.5}}},      // right
		{[3]float32{0, 1, 0}, [4][3]float32{{-0.5, 0.5, 0.5}, {0.5, 0.5, 0.5}, {0.5, 0.5, -0.5}, {-0.5, 0.5, -0.5}}},      // top
		{[3]float32{0, -1, 0}, [4][3]float32{{-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5}, {0.5, -0.5, 0.5}, {-0.5, -0.5, 0.5}}}, // bottom
	}
	uvs := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	var g Geometry
	for f, face := range faces {
		base := uint32(f * 4)
		for i, c := range face.corners {
			g.Vertices = append(g.Vertices,
				c[0], c[1], c[2],
				face.normal[0], face.normal[1], face.normal[2],
				uvs[i][0], uvs[i][1],
			)
		}
		g.Indices = append(g.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return g
}

func cylinderGeometry() Geometry {
	var g Geometry

	// Side wall: two rings of segments+1 vertices so UVs wrap cleanly.
	for i := 0; i <= circleSegments; i++ {
		angle := 2 * math.Pi * float64(i) / circleSegments
		x := float32(math.Cos(angle))
		z := float32(math.Sin(angle))
		u := float32(i) / circleSegments

		g.Vertices = append(g.Vertices,
			x, 0, z, x, 0, z, u, 0, // bottom ring
			x, 1, z, x, 0, z, u, 1, // top ring
		)
	}
	for i := 0; i < circleSegments; i++ {
		base := uint32(i * 2)
		g.Indices = append(g.Indices,
			base, base+1, base+2,
			base+2, base+1, base+3,
		)
	}

	// Caps: center vertex plus a ring with axis-aligned normals.
	g.appendCap(0, -1)
	g.appendCap(1, 1)
	return g
}

func coneGeometry() Geometry {
	var g Geometry

	// Slant normal for unit radius and height is (cos, 1, sin)/sqrt(2).
	inv := float32(1 / math.Sqrt2)

	// One apex vertex per segment so each triangle gets its own normal seam.
	for i := 0; i <= circleSegments; i++ {
		angle := 2 * math.Pi * float64(i) / circleSegments
		x := float32(math.Cos(angle))
		z := float32(math.Sin(angle))
		u := float32(i) / circleSegments

		g.Vertices = append(g.Vertices,
			x, 0, z, x*inv, inv, z*inv, u, 0, // base ring
			0, 1, 0, x*inv, inv, z*inv, u, 1, // apex
		)
	}
	for i := 0; i < circleSegments; i++ {
		base := uint32(i * 2)
		g.Indices = append(g.Indices, base, base+1, base+2)
	}

	g.appendCap(0, -1)
	return g
}

// appendCap adds a circular cap at height y with the given normal direction.
func (g *Geometry) appendCap(y, ny float32) {
	center := uint32(g.VertexCount())
	g.Vertices = append(g.Vertices, 0, y, 0, 0, ny, 0, 0.5, 0.5)

	for i := 0; i <= circleSegments; i++ {
		angle := 2 * math.Pi * float64(i) / circleSegments
		x := float32(math.Cos(angle))
		z := float32(math.Sin(angle))
		g.Vertices = append(g.Vertices,
			x, y, z, 0, ny, 0, (x+1)/2, (z+1)/2,
		)
	}
	for i := 0; i < circleSegments; i++ {
		a := center + 1 + uint32(i)
		b := a + 1
		if ny > 0 {
			g.Indices = append(g.Indices, center, b, a)
		} else {
			g.Indices = append(g.Indices, center, a, b)
		}
	}
}
