package cloud

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlattenKeepsPointOrder(t *testing.T) {
	buf := Flatten([]Point{{1, 2, 3}, {4, 5, 6}})
	assert.Equal(t, []float32{1, 2, 3, 4, 5, 6}, buf)
	assert.Empty(t, Flatten(nil))
}

func TestColorFallsBackToWhite(t *testing.T) {
	for _, s := range Shapes() {
		assert.NotEqual(t, Fallback, Color(s), s)
	}
	assert.Equal(t, "#ffffff", Color("dodecahedron"))
}

func TestParseShape(t *testing.T) {
	s, err := ParseShape("helix")
	require.NoError(t, err)
	assert.Equal(t, Helix, s)

	_, err = ParseShape("Helix")
	assert.Error(t, err)
}

func TestShapesIsACopy(t *testing.T) {
	s := Shapes()
	s[0] = "mutated"
	assert.Equal(t, Sphere, Shapes()[0])
	assert.Len(t, s, 7)
}

func TestStatsDecode(t *testing.T) {
	raw := `{"point_count": 500, "nearest_neighbor_avg": 0.0712,
		"centroid": {"x": 0.01, "y": -0.02, "z": 0},
		"bounding_box": {"dimensions": {"x": 2, "y": 2, "z": 1.5}},
		"variance": {"x": 0.33, "y": 0.34, "z": 0.2}}`
	var st ShapeStats
	require.NoError(t, json.Unmarshal([]byte(raw), &st))
	assert.Equal(t, 500, st.PointCount)
	assert.InDelta(t, 0.0712, st.NearestNeighborAvg, 1e-9)
	assert.Equal(t, 1.5, st.BoundingBox.Dimensions.Z)
	assert.Equal(t, 0.34, st.Variance.Y)
	assert.NoError(t, st.Validate())

	st.PointCount = -1
	assert.Error(t, st.Validate())
}

func TestPointVec(t *testing.T) {
	v := Point{X: 1, Y: -2, Z: 3}.Vec()
	assert.Equal(t, 1.0, v.X)
	assert.Equal(t, -2.0, v.Y)
	assert.Equal(t, 3.0, v.Z)
}
