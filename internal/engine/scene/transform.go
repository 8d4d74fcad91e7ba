package scene

import "github.com/Best-Bee/CS330/pkg/math"

// Transform places one object. Rotation angles are in degrees.
type Transform struct {
	Scale    math.Vec3
	Rotation math.Vec3
	Position math.Vec3
}

// Matrix composes the model matrix as T * Rx * Ry * Rz * S. The order is
// load-bearing: local coordinates are scaled first, then rotated Z, Y, X,
// then translated.
func (t Transform) Matrix() math.Mat4 {
	translation := math.Translate(t.Position.X, t.Position.Y, t.Position.Z)
	rx := math.RotateX(math.Radians(t.Rotation.X))
	ry := math.RotateY(math.Radians(t.Rotation.Y))
	rz := math.RotateZ(math.Radians(t.Rotation.Z))
	scale := math.Scale(t.Scale.X, t.Scale.Y, t.Scale.Z)

	return translation.Mul(rx).Mul(ry).Mul(rz).Mul(scale)
}
