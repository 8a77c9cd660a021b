package orbit

import (
	"math"
	"math/rand"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCamera struct {
	pos    r3.Vector
	target r3.Vector
	aims   int
}

func (f *fakeCamera) Position() r3.Vector     { return f.pos }
func (f *fakeCamera) SetPosition(p r3.Vector) { f.pos = p }
func (f *fakeCamera) LookAt(t r3.Vector)      { f.target = t; f.aims++ }

func newController(t *testing.T) (*Controller, *fakeCamera) {
	t.Helper()
	cam := &fakeCamera{pos: r3.Vector{Z: 8}}
	return New(cam, DefaultConfig()), cam
}

func TestNewDerivesSphericalCoordinates(t *testing.T) {
	c, cam := newController(t)
	assert.InDelta(t, 8, c.Radius(), 1e-9)
	assert.InDelta(t, math.Pi/2, c.Polar(), 1e-9)
	assert.InDelta(t, 0, c.Azimuth(), 1e-9)
	assert.InDelta(t, 8, cam.pos.Z, 1e-9)
	assert.Equal(t, Idle, c.State())
}

func TestNewClampsOutOfRangeStart(t *testing.T) {
	cam := &fakeCamera{pos: r3.Vector{Y: 500}}
	c := New(cam, DefaultConfig())
	assert.Equal(t, 50.0, c.Radius())
	assert.InDelta(t, 0.1, c.Polar(), 1e-9)

	zero := &fakeCamera{}
	c = New(zero, DefaultConfig())
	assert.Equal(t, 2.0, c.Radius())
	assert.InDelta(t, 2, zero.pos.Norm(), 1e-9)
}

func TestMoveWhileIdleIsIgnored(t *testing.T) {
	c, cam := newController(t)
	before := cam.pos
	c.Move(40, 10)
	assert.Equal(t, before, cam.pos)
	assert.Equal(t, Idle, c.State())
}

func TestDragOrbitsAndReaims(t *testing.T) {
	c, cam := newController(t)
	c.Press(10, 10)
	assert.Equal(t, Dragging, c.State())

	aims := cam.aims
	c.Move(14, 10)
	assert.InDelta(t, -4*0.05, c.Azimuth(), 1e-9)
	assert.InDelta(t, math.Pi/2, c.Polar(), 1e-9)
	assert.Equal(t, r3.Vector{}, cam.target)
	assert.Greater(t, cam.aims, aims)
	assert.InDelta(t, 8, cam.pos.Norm(), 1e-9)

	// deltas are taken from the previous move, not the press
	c.Move(14, 12)
	assert.InDelta(t, -4*0.05, c.Azimuth(), 1e-9)
	assert.InDelta(t, math.Pi/2-2*0.05, c.Polar(), 1e-9)

	c.Release()
	assert.Equal(t, Idle, c.State())
	pos := cam.pos
	c.Move(100, 100)
	assert.Equal(t, pos, cam.pos)
}

func TestPolarNeverCrossesThePoles(t *testing.T) {
	c, cam := newController(t)
	c.Press(0, 0)
	c.Move(0, 10000)
	assert.InDelta(t, 0.1, c.Polar(), 1e-9)
	assert.Greater(t, cam.pos.Y, 0.0)
	c.Move(0, -20000)
	assert.InDelta(t, math.Pi-0.1, c.Polar(), 1e-9)
	assert.Less(t, cam.pos.Y, 0.0)
}

func TestWheelScalesDirection(t *testing.T) {
	c, cam := newController(t)
	c.Rotate(0.7, -0.4)
	dir := cam.pos.Normalize()

	c.Wheel(100)
	assert.InDelta(t, 9, c.Radius(), 1e-9)
	assert.InDelta(t, 9, cam.pos.Norm(), 1e-9)
	assert.InDelta(t, 1, cam.pos.Normalize().Dot(dir), 1e-9)

	c.Wheel(1e6)
	assert.Equal(t, 50.0, c.Radius())
	c.Wheel(-1e6)
	assert.Equal(t, 2.0, c.Radius())
	assert.InDelta(t, 2, cam.pos.Norm(), 1e-9)
}

func TestWheelWorksWhileDragging(t *testing.T) {
	c, _ := newController(t)
	c.Press(3, 3)
	c.Wheel(-200)
	assert.InDelta(t, 6, c.Radius(), 1e-9)
	assert.Equal(t, Dragging, c.State())
}

func TestRandomInputKeepsInvariants(t *testing.T) {
	c, cam := newController(t)
	cfg := c.Config()
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 5000; i++ {
		switch rng.Intn(4) {
		case 0:
			c.Press(rng.Intn(200), rng.Intn(200))
		case 1:
			c.Move(rng.Intn(400)-100, rng.Intn(400)-100)
		case 2:
			c.Release()
		case 3:
			c.Wheel(rng.NormFloat64() * 500)
		}
		require.Greater(t, c.Polar(), cfg.Epsilon-1e-12)
		require.Less(t, c.Polar(), math.Pi-cfg.Epsilon+1e-12)
		require.GreaterOrEqual(t, c.Radius(), cfg.MinRadius)
		require.LessOrEqual(t, c.Radius(), cfg.MaxRadius)
		require.InDelta(t, c.Radius(), cam.pos.Norm(), 1e-6)
	}
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "dragging", Dragging.String())
}
