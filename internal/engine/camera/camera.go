// Package camera provides the viewer's fixed scene camera.
package camera

import "github.com/Best-Bee/CS330/pkg/math"

// Camera is a fixed look-at camera. The scene is static, so a position and a
// point of interest fully determine the view.
type Camera struct {
	Eye    math.Vec3
	Target math.Vec3
	Up     math.Vec3
}

// New creates a camera at eye looking at target with Y up.
func New(eye, target math.Vec3) *Camera {
	return &Camera{
		Eye:    eye,
		Target: target,
		Up:     math.Vec3{X: 0, Y: 1, Z: 0},
	}
}

// RoomDefault returns the viewpoint framing the built-in room scene: raised
// and pulled back on the Z axis, looking toward the room center.
func RoomDefault() *Camera {
	return New(
		math.Vec3{X: 0, Y: 6, Z: 13},
		math.Vec3{X: 0, Y: 3, Z: 0},
	)
}

// ViewMatrix returns the view matrix for this camera.
func (c *Camera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Eye, c.Target, c.Up)
}
