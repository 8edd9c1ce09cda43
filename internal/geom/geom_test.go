package geom

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

const collection = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "properties": {"name": "a"},
     "geometry": {"type": "Polygon", "coordinates": [[[0,0],[2,0],[2,2],[0,2],[0,0]]]}},
    {"type": "Feature", "properties": {"name": "b"},
     "geometry": {"type": "MultiPolygon", "coordinates": [
       [[[5,5],[6,5],[6,6],[5,6],[5,5]]],
       [[[8,8],[9,8],[9,9],[8,9],[8,8]]]]}},
    {"type": "Feature", "properties": {},
     "geometry": {"type": "LineString", "coordinates": [[-1,-1],[3,4]]}}
  ]
}`

func TestLoadGeoCollection(t *testing.T) {
	d, err := Load(writeFile(t, "in.geojson", collection))
	require.NoError(t, err)

	assert.Len(t, d.Features, 3)
	assert.Len(t, d.Polygons, 3)
	assert.Len(t, d.Lines, 1)
	assert.Empty(t, d.Points)
	assert.Equal(t, BBox{MinX: -1, MinY: -1, MaxX: 9, MaxY: 9}, d.BBox)
	assert.True(t, d.BBox.Valid())

	g, err := d.Polygonal()
	require.NoError(t, err)
	mp, ok := g.(orb.MultiPolygon)
	require.True(t, ok)
	assert.Len(t, mp, 3)
}

func TestParseGeoShapes(t *testing.T) {
	fc, err := ParseGeo([]byte(`{"type":"Polygon","coordinates":[[[0,0],[1,0],[1,1],[0,0]]]}`))
	require.NoError(t, err)
	require.Len(t, fc.Features, 1)
	assert.Equal(t, "Polygon", fc.Features[0].Geometry.GeoJSONType())

	fc, err = ParseGeo([]byte(`{"type":"Feature","properties":{"k":1},"geometry":{"type":"Point","coordinates":[3,4]}}`))
	require.NoError(t, err)
	require.Len(t, fc.Features, 1)
	assert.Equal(t, orb.Point{3, 4}, fc.Features[0].Geometry)
	assert.Equal(t, 1.0, fc.Features[0].Properties["k"])

	_, err = ParseGeo([]byte(`{"coordinates":[1,2]}`))
	assert.Error(t, err)
	_, err = ParseGeo([]byte(`not json`))
	assert.Error(t, err)
}

func TestLoadSinglePolygon(t *testing.T) {
	d, err := Load(writeFile(t, "one.json",
		`{"type":"Feature","properties":null,"geometry":{"type":"Polygon","coordinates":[[[0,0],[1,0],[1,1],[0,1],[0,0]]]}}`))
	require.NoError(t, err)
	g, err := d.Polygonal()
	require.NoError(t, err)
	_, ok := g.(orb.Polygon)
	assert.True(t, ok)
}

func TestParseWKTData(t *testing.T) {
	d, err := ParseWKTData("POLYGON((0 0, 4 0, 4 4, 0 4, 0 0),(1 1, 2 1, 2 2, 1 2, 1 1))")
	require.NoError(t, err)
	require.Len(t, d.Polygons, 1)
	assert.Len(t, d.Polygons[0], 2)

	d, err = ParseWKTData("POINT(1 2)\nLINESTRING(0 0, 3 3)\n\n")
	require.NoError(t, err)
	assert.Equal(t, []orb.Point{{1, 2}}, d.Points)
	assert.Len(t, d.Lines, 1)
	assert.Equal(t, BBox{MinX: 0, MinY: 0, MaxX: 3, MaxY: 3}, d.BBox)

	_, err = ParseWKTData("   ")
	assert.Error(t, err)
	_, err = ParseWKTData("CIRCLE(1 2)")
	assert.Error(t, err)
}

func TestLoadWKTFile(t *testing.T) {
	d, err := Load(writeFile(t, "shape.wkt", "MULTIPOLYGON(((0 0, 1 0, 1 1, 0 1, 0 0)),((2 2, 3 2, 3 3, 2 3, 2 2)))"))
	require.NoError(t, err)
	assert.Len(t, d.Polygons, 2)
}

func TestLoadCSV(t *testing.T) {
	d, err := Load(writeFile(t, "sites.csv", "name,Latitude,lng\nalpha,39.98,-75.34\nbad,x,y\nbeta,40.1,-75.0\n"))
	require.NoError(t, err)
	require.Len(t, d.Features, 2)
	assert.Equal(t, orb.Point{-75.34, 39.98}, d.Features[0].Geometry)
	assert.Equal(t, "alpha", d.Features[0].Properties["name"])
	assert.NotContains(t, d.Features[0].Properties, "lng")
	assert.Len(t, d.CenterPoints(), 2)

	_, err = Load(writeFile(t, "nocols.csv", "a,b\n1,2\n"))
	assert.Error(t, err)
	_, err = d.Polygonal()
	assert.True(t, errors.Is(err, ErrNoPolygons))
}

func TestLoadKML(t *testing.T) {
	body := `<?xml version="1.0" encoding="UTF-8"?>
<kml xmlns="http://www.opengis.net/kml/2.2">
  <Document>
    <Placemark><name>hq</name><Point><coordinates>-122.08,37.42,0</coordinates></Point></Placemark>
    <Placemark><name>yard</name><Polygon><outerBoundaryIs><LinearRing>
      <coordinates>0,0 1,0 1,1 0,1 0,0</coordinates>
    </LinearRing></outerBoundaryIs></Polygon></Placemark>
  </Document>
</kml>`
	d, err := Load(writeFile(t, "sites.kml", body))
	require.NoError(t, err)
	require.Len(t, d.Features, 2)
	assert.Equal(t, orb.Point{-122.08, 37.42}, d.Features[0].Geometry)
	assert.Equal(t, "hq", d.Features[0].Properties["name"])
	assert.Len(t, d.Polygons, 1)
}

func TestLoadUnsupported(t *testing.T) {
	_, err := Load("file.shp")
	assert.Error(t, err)
	assert.False(t, Supported("file.shp"))
	assert.True(t, Supported("FILE.GEOJSON"))
}

func TestMerge(t *testing.T) {
	var a, b Data
	a.Add(orb.Point{0, 0})
	b.Add(orb.Polygon{{{5, 5}, {6, 5}, {6, 6}, {5, 5}}})
	m := Merge(a, Data{}, b)
	assert.Len(t, m.Points, 1)
	assert.Len(t, m.Polygons, 1)
	assert.Equal(t, BBox{MinX: 0, MinY: 0, MaxX: 6, MaxY: 6}, m.BBox)
}
