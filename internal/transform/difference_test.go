package transform

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turfgeo/internal/clip"
	"turfgeo/internal/measurement"
)

func TestPolygonDifferenceScenario(t *testing.T) {
	p1 := orb.Polygon{{{128, -26}, {141, -26}, {141, -21}, {128, -21}, {128, -26}}}
	p2 := orb.Polygon{{{126, -28}, {140, -28}, {140, -20}, {126, -20}, {126, -28}}}

	f, err := PolygonDifference(p1, p2)
	require.NoError(t, err)
	require.NotNil(t, f)
	assert.Empty(t, f.Properties)

	poly, ok := f.Geometry.(orb.Polygon)
	require.True(t, ok, "geometry is %T", f.Geometry)
	assert.Less(t, measurement.Area(poly), measurement.Area(p1))
	assert.Greater(t, measurement.Area(poly), 0.0)
	b := poly.Bound()
	assert.InDelta(t, 140.0, b.Min.X(), 1e-9)
	assert.InDelta(t, -26.0, b.Min.Y(), 1e-9)
	assert.InDelta(t, 141.0, b.Max.X(), 1e-9)
	assert.InDelta(t, -21.0, b.Max.Y(), 1e-9)
	assert.True(t, poly[0].Closed())
	assert.Equal(t, orb.CCW, poly[0].Orientation())
}

func TestPolygonDifferenceSelf(t *testing.T) {
	p := square(10, 10, 12, 12)
	f, err := PolygonDifference(p, p)
	require.NoError(t, err)
	assert.Nil(t, f)
}

func TestPolygonDifferenceDisjoint(t *testing.T) {
	p := square(0, 0, 1, 1)
	f, err := PolygonDifference(p, square(5, 5, 6, 6))
	require.NoError(t, err)
	require.NotNil(t, f)

	got, ok := f.Geometry.(orb.Polygon)
	require.True(t, ok)
	assert.Equal(t, p.Bound(), got.Bound())
	assert.InEpsilon(t, measurement.Area(p), measurement.Area(got), 1e-9)
}

func TestPolygonDifferenceAnalytic(t *testing.T) {
	tr := planar2D()
	tests := []struct {
		name string
		a, b orb.Polygon
		want float64
	}{
		{"half", square(0, 0, 1, 1), square(0.5, 0, 1.5, 1), 0.5},
		{"corner", square(0, 0, 1, 1), square(0.5, 0.5, 1.5, 1.5), 0.75},
		{"sliver", square(0, 0, 1, 1), square(0.9, -1, 2, 2), 0.9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := tr.PolygonDifference(tt.a, tt.b)
			require.NoError(t, err)
			require.NotNil(t, f)
			assert.InDelta(t, tt.want, planarArea(f.Geometry), 1e-9)
		})
	}
}

func TestPolygonDifferenceCovered(t *testing.T) {
	f, err := planar2D().PolygonDifference(square(1, 1, 2, 2), square(0, 0, 3, 3))
	require.NoError(t, err)
	assert.Nil(t, f)
}

func TestPolygonDifferenceHole(t *testing.T) {
	f, err := planar2D().PolygonDifference(square(0, 0, 4, 4), square(1, 1, 2, 2))
	require.NoError(t, err)
	require.NotNil(t, f)

	mp, ok := f.Geometry.(orb.MultiPolygon)
	require.True(t, ok, "geometry is %T", f.Geometry)
	require.Len(t, mp, 1)
	require.Len(t, mp[0], 2)
	assert.Equal(t, orb.CCW, mp[0][0].Orientation())
	assert.Equal(t, orb.CW, mp[0][1].Orientation())
	assert.Equal(t, orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{4, 4}}, mp[0][0].Bound())
	assert.InDelta(t, 15.0, planarArea(mp[0][0])-planarArea(mp[0][1]), 1e-9)
}

func TestPolygonDifferenceSplit(t *testing.T) {
	f, err := planar2D().PolygonDifference(square(0, 0, 3, 1), square(1, -1, 2, 2))
	require.NoError(t, err)
	require.NotNil(t, f)

	mp, ok := f.Geometry.(orb.MultiPolygon)
	require.True(t, ok, "geometry is %T", f.Geometry)
	require.Len(t, mp, 2)
	for _, p := range mp {
		assert.Len(t, p, 1)
		assert.InDelta(t, 1.0, planarArea(p), 1e-9)
	}
}

func TestPolygonDifferenceNegligibleInputs(t *testing.T) {
	cl := &recordingClipper{}
	tr := New(WithClipper(cl))
	tiny := square(0, 0, 1e-6, 1e-6)
	big := square(0, 0, 1, 1)

	f, err := tr.PolygonDifference(tiny, big)
	require.NoError(t, err)
	assert.Nil(t, f)

	f, err = tr.PolygonDifference(big, tiny)
	require.NoError(t, err)
	require.NotNil(t, f)
	assert.Equal(t, big, f.Geometry)
	assert.Empty(t, f.Properties)

	f, err = tr.PolygonDifference(big, orb.MultiPolygon{tiny, square(5, 5, 5.000001, 5.000001)})
	require.NoError(t, err)
	require.NotNil(t, f)
	assert.Equal(t, big, f.Geometry)

	assert.Zero(t, cl.calls)
}

func TestPolygonDifferenceMultiPolygon(t *testing.T) {
	cl := &recordingClipper{res: clip.Result{Contours: []orb.Ring{square(0, 0, 1, 1)[0]}}}
	tr := planar2D(WithClipper(cl))

	f, err := tr.PolygonDifference(orb.MultiPolygon{square(0, 0, 1, 1), square(2, 2, 3, 3)}, square(2, 2, 3, 3))
	require.NoError(t, err)
	require.NotNil(t, f)
	assert.Equal(t, 1, cl.calls)
	assert.Equal(t, []clip.Op{clip.Difference}, cl.ops)
	_, ok := f.Geometry.(orb.Polygon)
	assert.True(t, ok)
}

func TestPolygonDifferenceDropsSlivers(t *testing.T) {
	cl := &recordingClipper{res: clip.Result{Contours: []orb.Ring{
		square(0, 0, 1, 1)[0],
		{{5, 5}, {5.0000001, 5}, {5, 5.0000001}, {5, 5}},
	}}}
	f, err := planar2D(WithClipper(cl)).PolygonDifference(square(0, 0, 2, 2), square(1, 0, 2, 2))
	require.NoError(t, err)
	require.NotNil(t, f)
	_, ok := f.Geometry.(orb.Polygon)
	assert.True(t, ok, "sliver contour should not promote the result to a MultiPolygon")
}

func TestPolygonDifferenceErrors(t *testing.T) {
	_, err := PolygonDifference(orb.LineString{{0, 0}, {1, 1}}, square(0, 0, 1, 1))
	assert.True(t, errors.Is(err, ErrUnsupportedGeometry))

	_, err = PolygonDifference(square(0, 0, 1, 1), orb.Point{0, 0})
	assert.True(t, errors.Is(err, ErrUnsupportedGeometry))

	boom := errors.New("clipper failed")
	_, err = New(WithClipper(&recordingClipper{err: boom})).PolygonDifference(square(0, 0, 1, 1), square(0.5, 0.5, 2, 2))
	assert.Equal(t, boom, err)

	_, err = std.FeatureDifference(nil, geojson.NewFeature(square(0, 0, 1, 1)))
	assert.True(t, errors.Is(err, ErrUnsupportedGeometry))
}

func TestFeatureDifferenceDropsProperties(t *testing.T) {
	a := geojson.NewFeature(square(0, 0, 2, 2))
	a.Properties["name"] = "a"
	b := geojson.NewFeature(square(1, 0, 3, 2))
	b.Properties["name"] = "b"

	f, err := planar2D().FeatureDifference(a, b)
	require.NoError(t, err)
	require.NotNil(t, f)
	assert.Empty(t, f.Properties)
	assert.InDelta(t, 2.0, planarArea(f.Geometry), 1e-9)
}

func TestNormalize(t *testing.T) {
	tiny := square(0, 0, 1e-6, 1e-6)
	big := square(0, 0, 1, 1)
	other := square(3, 3, 4, 4)

	g, err := Normalize(tiny)
	require.NoError(t, err)
	assert.Nil(t, g)

	g, err = Normalize(orb.MultiPolygon{tiny, tiny})
	require.NoError(t, err)
	assert.Nil(t, g, "an all-negligible MultiPolygon is empty like a negligible Polygon")

	g, err = Normalize(orb.MultiPolygon{big, tiny, other})
	require.NoError(t, err)
	assert.Equal(t, orb.MultiPolygon{big, other}, g)

	g, err = Normalize(big)
	require.NoError(t, err)
	assert.Equal(t, big, g)

	_, err = Normalize(nil)
	assert.True(t, errors.Is(err, ErrUnsupportedGeometry))
	_, err = Normalize(orb.Collection{big})
	assert.True(t, errors.Is(err, ErrUnsupportedGeometry))
}
