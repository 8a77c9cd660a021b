package scene

import (
	"math"

	"github.com/golang/geo/r3"
)

// Camera is a perspective camera aimed at a fixed target.
type Camera struct {
	FOV    float64 // vertical, degrees
	Aspect float64
	Near   float64
	Far    float64

	position r3.Vector
	target   r3.Vector
	up       r3.Vector
}

func NewCamera(fov, aspect, near, far float64) *Camera {
	return &Camera{
		FOV:    fov,
		Aspect: aspect,
		Near:   near,
		Far:    far,
		up:     r3.Vector{Y: 1},
	}
}

func (c *Camera) Position() r3.Vector     { return c.position }
func (c *Camera) SetPosition(p r3.Vector) { c.position = p }
func (c *Camera) Target() r3.Vector       { return c.target }

// LookAt re-aims the camera without moving it.
func (c *Camera) LookAt(t r3.Vector) { c.target = t }

func (c *Camera) SetAspect(a float64) {
	if a > 0 && !math.IsInf(a, 0) {
		c.Aspect = a
	}
}

// basis returns the camera's forward, right and up unit vectors.
func (c *Camera) basis() (f, r, u r3.Vector) {
	f = c.target.Sub(c.position)
	if f.Norm() == 0 {
		f = r3.Vector{Z: -1}
	}
	f = f.Normalize()
	r = f.Cross(c.up)
	if r.Norm() < 1e-9 {
		r = r3.Vector{X: 1}
	}
	r = r.Normalize()
	u = r.Cross(f)
	return f, r, u
}

// Project maps a world point to normalized device coordinates in [-1, 1]
// and its view depth. ok is false outside the near/far range.
func (c *Camera) Project(p r3.Vector) (x, y, depth float64, ok bool) {
	f, r, u := c.basis()
	d := p.Sub(c.position)
	depth = d.Dot(f)
	if depth < c.Near || depth > c.Far {
		return 0, 0, depth, false
	}
	tanHalf := math.Tan(c.FOV * math.Pi / 360)
	y = d.Dot(u) / (depth * tanHalf)
	x = d.Dot(r) / (depth * tanHalf * c.Aspect)
	return x, y, depth, true
}
