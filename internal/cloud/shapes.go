package cloud

import "fmt"

type ShapeName string

const (
	Sphere     ShapeName = "sphere"
	Torus      ShapeName = "torus"
	Plane      ShapeName = "plane"
	Helix      ShapeName = "helix"
	Cylinder   ShapeName = "cylinder"
	Cube       ShapeName = "cube"
	Octahedron ShapeName = "octahedron"
)

// Fallback is used for any name outside the color table.
const Fallback = "#ffffff"

var shapes = []ShapeName{Sphere, Torus, Plane, Helix, Cylinder, Cube, Octahedron}

var colors = map[ShapeName]string{
	Sphere:     "#4fc3f7",
	Torus:      "#ff8a65",
	Plane:      "#aed581",
	Helix:      "#ba68c8",
	Cylinder:   "#ffd54f",
	Cube:       "#e57373",
	Octahedron: "#4db6ac",
}

// Shapes returns the enumeration in display order.
func Shapes() []ShapeName {
	out := make([]ShapeName, len(shapes))
	copy(out, shapes)
	return out
}

func ParseShape(s string) (ShapeName, error) {
	for _, n := range shapes {
		if string(n) == s {
			return n, nil
		}
	}
	return "", fmt.Errorf("unknown shape %q", s)
}

// Color returns the display color of a shape as a hex string.
func Color(name ShapeName) string {
	if c, ok := colors[name]; ok {
		return c
	}
	return Fallback
}
