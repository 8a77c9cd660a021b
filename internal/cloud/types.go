package cloud

import (
	"errors"

	"github.com/golang/geo/r3"
)

// Point is a single sample of a shape's surface.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

func (p Point) Vec() r3.Vector { return r3.Vector{X: p.X, Y: p.Y, Z: p.Z} }

// Vec3 is a per-axis triple as reported by the stats endpoint.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type BoundingBox struct {
	Dimensions Vec3 `json:"dimensions"`
}

// ShapeStats is the descriptive record served next to a shape's points.
// The viewer never derives it; it is shown as received.
type ShapeStats struct {
	PointCount         int         `json:"point_count"`
	NearestNeighborAvg float64     `json:"nearest_neighbor_avg"`
	Centroid           Vec3        `json:"centroid"`
	BoundingBox        BoundingBox `json:"bounding_box"`
	Variance           Vec3        `json:"variance"`
}

// Validate rejects records that cannot describe any point set.
func (s ShapeStats) Validate() error {
	if s.PointCount < 0 {
		return errors.New("stats: negative point_count")
	}
	if s.NearestNeighborAvg < 0 {
		return errors.New("stats: negative nearest_neighbor_avg")
	}
	return nil
}

// Flatten packs points into a contiguous x,y,z buffer in point order.
func Flatten(points []Point) []float32 {
	buf := make([]float32, 0, len(points)*3)
	for _, p := range points {
		buf = append(buf, float32(p.X), float32(p.Y), float32(p.Z))
	}
	return buf
}
