package geom

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
)

// ParseGeo decodes a GeoJSON FeatureCollection, Feature or bare geometry
// into a FeatureCollection.
func ParseGeo(data []byte) (*geojson.FeatureCollection, error) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, errors.Wrap(err, "geojson")
	}
	switch head.Type {
	case "":
		return nil, errors.New("invalid geojson: missing type")
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(data)
		return fc, errors.Wrap(err, "geojson feature collection")
	case "Feature":
		f, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return nil, errors.Wrap(err, "geojson feature")
		}
		fc := geojson.NewFeatureCollection()
		return fc.Append(f), nil
	default:
		g, err := geojson.UnmarshalGeometry(data)
		if err != nil {
			return nil, errors.Wrapf(err, "geojson %s", head.Type)
		}
		fc := geojson.NewFeatureCollection()
		return fc.Append(geojson.NewFeature(g.Geometry())), nil
	}
}

// LoadGeo reads a GeoJSON file and returns Data (points, lines, polygons)
func LoadGeo(path string) (Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Data{}, err
	}
	fc, err := ParseGeo(raw)
	if err != nil {
		return Data{}, err
	}
	var d Data
	for _, f := range fc.Features {
		d.AddFeature(f)
	}
	if d.Empty() {
		return Data{}, errors.New("no geometries found")
	}
	return d, nil
}

// Load dispatches on the file extension: .geojson/.json, .wkt, .csv, .kml.
func Load(path string) (Data, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".geojson", ".json":
		return LoadGeo(path)
	case ".wkt":
		raw, err := os.ReadFile(path)
		if err != nil {
			return Data{}, err
		}
		return ParseWKTData(string(raw))
	case ".csv":
		return LoadCSV(path)
	case ".kml":
		return LoadKML(path)
	default:
		return Data{}, errors.Errorf("unsupported file: %s", ext)
	}
}

// Supported reports whether Load understands the file's extension.
func Supported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".geojson", ".json", ".wkt", ".csv", ".kml":
		return true
	}
	return false
}
