// Package scene holds the 3D scene graph, its camera, and a terminal
// rasterizer that draws it with braille micro-pixels.
package scene

// Grid is the static reference grid on the XZ plane.
type Grid struct {
	Size        float64
	Divisions   int
	CenterColor string
	LineColor   string
}

// Axes is the small x/y/z indicator at the origin.
type Axes struct {
	Length float64
}

var axisColors = [3]string{"#ff0000", "#00ff00", "#0000ff"}

type Scene struct {
	Background string
	Grid       Grid
	Axes       Axes
	Resources  *Tracker

	cloud *PointCloud
}

func New() *Scene {
	return &Scene{
		Background: "#111111",
		Grid:       Grid{Size: 10, Divisions: 10, CenterColor: "#444444", LineColor: "#888888"},
		Axes:       Axes{Length: 2},
		Resources:  &Tracker{},
	}
}

// Cloud returns the attached point cloud, or nil.
func (s *Scene) Cloud() *PointCloud { return s.cloud }

// Replace detaches and disposes the current point cloud, then attaches pc.
// Both happen in one call so no frame sees two clouds or none.
func (s *Scene) Replace(pc *PointCloud) {
	if s.cloud != nil {
		old := s.cloud
		s.cloud = nil
		old.Dispose()
	}
	s.cloud = pc
}
