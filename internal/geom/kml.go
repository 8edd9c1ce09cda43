package geom

import (
	"encoding/xml"
	"os"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
)

type kmlCoords struct {
	Coordinates string `xml:"coordinates"`
}

type kmlPolygon struct {
	Outer kmlCoords   `xml:"outerBoundaryIs>LinearRing"`
	Inner []kmlCoords `xml:"innerBoundaryIs>LinearRing"`
}

type kmlPlacemark struct {
	Name    string      `xml:"name"`
	Point   *kmlCoords  `xml:"Point"`
	Polygon *kmlPolygon `xml:"Polygon"`
}

type kmlDoc struct {
	Placemarks []kmlPlacemark `xml:"Document>Placemark"`
	Loose      []kmlPlacemark `xml:"Placemark"`
}

// LoadKML reads Placemark Points and Polygons from a KML file.
// KML coordinates are "lon,lat[,alt]"; altitude is ignored.
func LoadKML(path string) (Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Data{}, err
	}
	var doc kmlDoc
	if err := xml.Unmarshal(raw, &doc); err != nil {
		return Data{}, errors.Wrap(err, "kml")
	}

	var d Data
	for _, pm := range append(doc.Placemarks, doc.Loose...) {
		var g orb.Geometry
		switch {
		case pm.Point != nil:
			pts := parseKMLCoords(pm.Point.Coordinates)
			if len(pts) == 0 {
				continue
			}
			g = pts[0]
		case pm.Polygon != nil:
			outer := orb.Ring(parseKMLCoords(pm.Polygon.Outer.Coordinates))
			if len(outer) < 4 {
				continue
			}
			poly := orb.Polygon{outer}
			for _, in := range pm.Polygon.Inner {
				if r := orb.Ring(parseKMLCoords(in.Coordinates)); len(r) >= 4 {
					poly = append(poly, r)
				}
			}
			g = poly
		default:
			continue
		}
		f := geojson.NewFeature(g)
		if pm.Name != "" {
			f.Properties["name"] = pm.Name
		}
		d.AddFeature(f)
	}
	if d.Empty() {
		return Data{}, errors.New("kml: no placemarks found")
	}
	return d, nil
}

// parseKMLCoords parses whitespace separated "lon,lat[,alt]" tuples.
func parseKMLCoords(s string) []orb.Point {
	var out []orb.Point
	for _, tuple := range strings.Fields(s) {
		vals := strings.Split(tuple, ",")
		if len(vals) < 2 {
			continue
		}
		lon, err1 := strconv.ParseFloat(strings.TrimSpace(vals[0]), 64)
		lat, err2 := strconv.ParseFloat(strings.TrimSpace(vals[1]), 64)
		if err1 != nil || err2 != nil {
			continue
		}
		out = append(out, orb.Point{lon, lat})
	}
	return out
}
