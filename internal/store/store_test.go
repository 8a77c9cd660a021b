package store

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pointview/internal/cloud"
	"pointview/internal/scene"
	"pointview/internal/source"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

// fakeSource serves three points per shape and fails the points of shapes in fail.
type fakeSource struct {
	fail   map[cloud.ShapeName]bool
	during func()
}

func (f *fakeSource) Points(ctx context.Context, name cloud.ShapeName) ([]cloud.Point, error) {
	if f.during != nil {
		f.during()
	}
	if f.fail[name] {
		return nil, errors.New("connection refused")
	}
	return []cloud.Point{{X: 1}, {Y: 1}, {Z: 1}}, nil
}

func (f *fakeSource) Stats(ctx context.Context, name cloud.ShapeName) (cloud.ShapeStats, error) {
	return cloud.ShapeStats{PointCount: 3, NearestNeighborAvg: float64(len(name))}, nil
}

func newStore(src source.Source) (*Store, *scene.Scene) {
	sc := scene.New()
	return New(sc, src, quiet), sc
}

func TestLoadShapeInstallsOneObject(t *testing.T) {
	for _, name := range cloud.Shapes() {
		t.Run(string(name), func(t *testing.T) {
			st, sc := newStore(&fakeSource{})
			require.NoError(t, st.LoadShape(context.Background(), name))

			pc := sc.Cloud()
			require.NotNil(t, pc)
			assert.Equal(t, string(name), pc.Name)
			assert.Equal(t, cloud.Color(name), pc.Material.Color)
			assert.Equal(t, PointSize, pc.Material.Size)
			assert.Equal(t, PointOpacity, pc.Material.Opacity)
			assert.True(t, pc.Material.Transparent)
			assert.Equal(t, []float32{1, 0, 0, 0, 1, 0, 0, 0, 1}, pc.Geometry.Positions)

			sess := st.Session()
			assert.Equal(t, name, sess.Selected)
			assert.False(t, sess.Loading)
			assert.NoError(t, sess.Err)
			require.NotNil(t, sess.Stats)
			assert.Equal(t, 3, sess.Stats.PointCount)
		})
	}
}

func TestSuccessiveLoadsKeepOneResourceSet(t *testing.T) {
	st, sc := newStore(&fakeSource{})
	var objs []*scene.PointCloud
	for _, name := range cloud.Shapes() {
		require.NoError(t, st.LoadShape(context.Background(), name))
		objs = append(objs, st.Current())
	}
	g, m := sc.Resources.Live()
	assert.Equal(t, 1, g)
	assert.Equal(t, 1, m)
	for _, o := range objs[:len(objs)-1] {
		assert.True(t, o.Geometry.Disposed())
		assert.True(t, o.Material.Disposed())
	}
	assert.Same(t, objs[len(objs)-1], sc.Cloud())
	assert.Equal(t, string(cloud.Octahedron), sc.Cloud().Name)
}

func TestFailureKeepsPreviousState(t *testing.T) {
	src := &fakeSource{fail: map[cloud.ShapeName]bool{cloud.Cube: true}}
	st, sc := newStore(src)
	require.NoError(t, st.LoadShape(context.Background(), cloud.Sphere))
	before := st.Session()
	obj := sc.Cloud()

	err := st.LoadShape(context.Background(), cloud.Cube)
	require.Error(t, err)
	assert.ErrorIs(t, err, source.ErrLoadFailure)

	after := st.Session()
	assert.Same(t, before.Stats, after.Stats)
	assert.Same(t, obj, sc.Cloud())
	assert.False(t, obj.Geometry.Disposed())
	assert.ErrorIs(t, after.Err, source.ErrLoadFailure)
	assert.False(t, after.Loading)

	// a later success clears the error
	require.NoError(t, st.LoadShape(context.Background(), cloud.Sphere))
	assert.NoError(t, st.Session().Err)
}

func TestFailureBeforeAnyLoad(t *testing.T) {
	st, sc := newStore(&fakeSource{fail: map[cloud.ShapeName]bool{cloud.Torus: true}})
	require.Error(t, st.LoadShape(context.Background(), cloud.Torus))
	assert.Nil(t, sc.Cloud())
	assert.Nil(t, st.Session().Stats)
	g, m := sc.Resources.Live()
	assert.Zero(t, g+m)
}

func TestLoadingFlagOnlyDuringLoad(t *testing.T) {
	src := &fakeSource{}
	st, _ := newStore(src)
	assert.False(t, st.Session().Loading)

	var seen []bool
	src.during = func() { seen = append(seen, st.Session().Loading) }
	require.NoError(t, st.LoadShape(context.Background(), cloud.Helix))
	assert.Equal(t, []bool{true}, seen)
	assert.False(t, st.Session().Loading)

	src.fail = map[cloud.ShapeName]bool{cloud.Helix: true}
	seen = nil
	require.Error(t, st.LoadShape(context.Background(), cloud.Helix))
	assert.Equal(t, []bool{true}, seen)
	assert.False(t, st.Session().Loading)
}

func TestStaleResultIsDropped(t *testing.T) {
	st, sc := newStore(&fakeSource{})
	first := st.Begin(cloud.Sphere)
	second := st.Begin(cloud.Torus)
	r1 := st.Fetch(context.Background(), first)
	r2 := st.Fetch(context.Background(), second)

	// the newer response arrives first
	assert.True(t, st.Complete(r2))
	assert.False(t, st.Complete(r1))
	assert.Equal(t, string(cloud.Torus), sc.Cloud().Name)
	assert.Equal(t, cloud.Torus, st.Session().Selected)
	assert.False(t, st.Session().Loading)
	g, _ := sc.Resources.Live()
	assert.Equal(t, 1, g)
}

func TestStaleResultKeepsLoadingUntilLatest(t *testing.T) {
	st, sc := newStore(&fakeSource{})
	first := st.Begin(cloud.Sphere)
	second := st.Begin(cloud.Cube)

	assert.False(t, st.Complete(st.Fetch(context.Background(), first)))
	assert.True(t, st.Session().Loading)
	assert.Nil(t, sc.Cloud())

	assert.True(t, st.Complete(st.Fetch(context.Background(), second)))
	assert.False(t, st.Session().Loading)
}

func backend(t *testing.T, routes map[string]string) (*httptest.Server, *[]string) {
	t.Helper()
	var (
		mu    sync.Mutex
		paths []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		paths = append(paths, r.URL.Path)
		mu.Unlock()
		body, ok := routes[r.URL.Path]
		if !ok {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &paths
}

func TestTorusScenario(t *testing.T) {
	srv, paths := backend(t, map[string]string{
		"/shapes/torus.points.json": `[{"x":1,"y":0,"z":0},{"x":-1,"y":0,"z":0}]`,
		"/shapes/torus.stats.json":  `{"point_count": 2, "nearest_neighbor_avg": 2}`,
	})
	st, sc := newStore(source.NewHTTP(srv.URL))

	require.NoError(t, st.LoadShape(context.Background(), cloud.Torus))
	assert.ElementsMatch(t, []string{"/shapes/torus.points.json", "/shapes/torus.stats.json"}, *paths)
	require.NotNil(t, sc.Cloud())
	assert.Equal(t, cloud.Color(cloud.Torus), sc.Cloud().Material.Color)
	assert.Equal(t, 2, sc.Cloud().Geometry.Count())
	assert.Equal(t, 2, st.Session().Stats.PointCount)
}

func TestCubeStatsErrorScenario(t *testing.T) {
	srv, _ := backend(t, map[string]string{
		"/shapes/sphere.points.json": `[{"x":0,"y":1,"z":0}]`,
		"/shapes/sphere.stats.json":  `{"point_count": 1}`,
		"/shapes/cube.points.json":   `[{"x":0.5,"y":0.5,"z":0.5}]`,
	})
	st, sc := newStore(source.NewHTTP(srv.URL))
	require.NoError(t, st.LoadShape(context.Background(), cloud.Sphere))
	obj := sc.Cloud()

	err := st.LoadShape(context.Background(), cloud.Cube)
	require.Error(t, err)
	assert.ErrorIs(t, st.Session().Err, source.ErrLoadFailure)
	assert.Same(t, obj, sc.Cloud())
	assert.Equal(t, 1, st.Session().Stats.PointCount)
	g, m := sc.Resources.Live()
	assert.Equal(t, 1, g)
	assert.Equal(t, 1, m)
}
