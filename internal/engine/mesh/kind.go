// Package mesh provides the shared primitive mesh library: plane, box,
// cylinder and cone geometry, loaded once and drawn by kind.
package mesh

import "fmt"

// Kind identifies one of the primitive mesh shapes.
type Kind int

const (
	Plane Kind = iota
	Box
	Cylinder
	Cone
)

// Kinds lists every mesh kind.
var Kinds = []Kind{Plane, Box, Cylinder, Cone}

// String returns the lowercase name used in scene files.
func (k Kind) String() string {
	switch k {
	case Plane:
		return "plane"
	case Box:
		return "box"
	case Cylinder:
		return "cylinder"
	case Cone:
		return "cone"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind parses a scene-file mesh name.
func ParseKind(name string) (Kind, error) {
	switch name {
	case "plane":
		return Plane, nil
	case "box":
		return Box, nil
	case "cylinder":
		return Cylinder, nil
	case "cone":
		return Cone, nil
	default:
		return 0, fmt.Errorf("unknown mesh kind %q", name)
	}
}
