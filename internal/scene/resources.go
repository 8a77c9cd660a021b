package scene

// Tracker counts the render buffers currently allocated.
type Tracker struct {
	geometries int
	materials  int
}

// Live reports how many geometries and materials have not been disposed.
func (t *Tracker) Live() (geometries, materials int) { return t.geometries, t.materials }

// Geometry is a flat x,y,z position buffer.
type Geometry struct {
	Positions []float32
	tracker   *Tracker
	disposed  bool
}

func (t *Tracker) NewGeometry(positions []float32) *Geometry {
	t.geometries++
	return &Geometry{Positions: positions, tracker: t}
}

// Count is the number of vertices in the buffer.
func (g *Geometry) Count() int { return len(g.Positions) / 3 }

func (g *Geometry) Disposed() bool { return g.disposed }

func (g *Geometry) Dispose() {
	if g.disposed {
		return
	}
	g.disposed = true
	g.Positions = nil
	g.tracker.geometries--
}

// Material describes how points are drawn.
type Material struct {
	Color       string
	Size        float64
	Opacity     float64
	Transparent bool
	tracker     *Tracker
	disposed    bool
}

func (t *Tracker) NewMaterial(color string, size, opacity float64) *Material {
	t.materials++
	return &Material{
		Color:       color,
		Size:        size,
		Opacity:     opacity,
		Transparent: opacity < 1,
		tracker:     t,
	}
}

func (m *Material) Disposed() bool { return m.disposed }

func (m *Material) Dispose() {
	if m.disposed {
		return
	}
	m.disposed = true
	m.tracker.materials--
}

// PointCloud is the render object for one loaded shape.
type PointCloud struct {
	Name     string
	Geometry *Geometry
	Material *Material
}

func (p *PointCloud) Dispose() {
	p.Geometry.Dispose()
	p.Material.Dispose()
}
