// Package orbit turns pointer drags and wheel steps into camera movement on
// a sphere around the origin.
package orbit

import (
	"math"

	"github.com/golang/geo/r3"
)

// Camera is the part of a camera the controller may touch: its transform.
type Camera interface {
	Position() r3.Vector
	SetPosition(r3.Vector)
	LookAt(r3.Vector)
}

type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

type Config struct {
	// Sensitivity is radians per unit of pointer movement.
	Sensitivity float64
	// ZoomSpeed is radius change per unit of wheel delta.
	ZoomSpeed float64
	MinRadius float64
	MaxRadius float64
	// Epsilon keeps the polar angle inside (Epsilon, Pi-Epsilon).
	Epsilon float64
}

func DefaultConfig() Config {
	return Config{
		Sensitivity: 0.05,
		ZoomSpeed:   0.01,
		MinRadius:   2,
		MaxRadius:   50,
		Epsilon:     0.1,
	}
}

type Controller struct {
	cfg Config
	cam Camera

	state        State
	lastX, lastY int

	azimuth float64
	polar   float64
	radius  float64
}

// New derives the spherical coordinates from the camera's current position.
func New(cam Camera, cfg Config) *Controller {
	c := &Controller{cfg: cfg, cam: cam}
	p := cam.Position()
	c.radius = c.clampRadius(p.Norm())
	if n := p.Norm(); n > 0 {
		c.polar = c.clampPolar(math.Acos(p.Y / n))
		c.azimuth = math.Atan2(p.X, p.Z)
	} else {
		c.polar = math.Pi / 2
	}
	c.apply()
	return c
}

func (c *Controller) State() State     { return c.state }
func (c *Controller) Azimuth() float64 { return c.azimuth }
func (c *Controller) Polar() float64   { return c.polar }
func (c *Controller) Radius() float64  { return c.radius }
func (c *Controller) Config() Config   { return c.cfg }

// Press starts a drag. Callers only forward presses inside the viewport.
func (c *Controller) Press(x, y int) {
	c.state = Dragging
	c.lastX, c.lastY = x, y
}

// Move orbits by the delta from the previous pointer position. No-op when idle.
func (c *Controller) Move(x, y int) {
	if c.state != Dragging {
		return
	}
	dx, dy := x-c.lastX, y-c.lastY
	c.lastX, c.lastY = x, y
	c.Rotate(-float64(dx)*c.cfg.Sensitivity, -float64(dy)*c.cfg.Sensitivity)
}

// Release ends a drag wherever the pointer is.
func (c *Controller) Release() { c.state = Idle }

// Rotate changes azimuth and polar angle directly and re-aims the camera.
func (c *Controller) Rotate(dAzimuth, dPolar float64) {
	c.azimuth += dAzimuth
	c.polar = c.clampPolar(c.polar + dPolar)
	c.apply()
}

// Wheel changes the radius in proportion to delta, keeping the direction.
func (c *Controller) Wheel(delta float64) {
	c.radius = c.clampRadius(c.radius + delta*c.cfg.ZoomSpeed)
	p := c.cam.Position()
	if p.Norm() == 0 {
		c.apply()
		return
	}
	c.cam.SetPosition(p.Normalize().Mul(c.radius))
}

func (c *Controller) apply() {
	sp := math.Sin(c.polar)
	c.cam.SetPosition(r3.Vector{
		X: c.radius * sp * math.Sin(c.azimuth),
		Y: c.radius * math.Cos(c.polar),
		Z: c.radius * sp * math.Cos(c.azimuth),
	})
	c.cam.LookAt(r3.Vector{})
}

func (c *Controller) clampPolar(v float64) float64 {
	lo, hi := c.cfg.Epsilon, math.Pi-c.cfg.Epsilon
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	}
	return v
}

func (c *Controller) clampRadius(v float64) float64 {
	switch {
	case v < c.cfg.MinRadius:
		return c.cfg.MinRadius
	case v > c.cfg.MaxRadius:
		return c.cfg.MaxRadius
	}
	return v
}
