package geom

import (
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
)

// ParseWKT parses a single WKT geometry.
func ParseWKT(s string) (orb.Geometry, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.New("empty wkt")
	}
	g, err := wkt.Unmarshal(s)
	if err != nil {
		return nil, errors.Wrap(err, "wkt")
	}
	return g, nil
}

// ParseWKTData parses s as a single geometry, falling back to one geometry
// per non-empty line.
func ParseWKTData(s string) (Data, error) {
	var d Data
	if g, err := ParseWKT(strings.Join(strings.Fields(s), " ")); err == nil {
		d.AddFeature(geojson.NewFeature(g))
		if d.Empty() {
			return Data{}, errors.New("wkt: no coordinates parsed")
		}
		return d, nil
	}
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		g, err := ParseWKT(line)
		if err != nil {
			return Data{}, err
		}
		d.AddFeature(geojson.NewFeature(g))
	}
	if d.Empty() {
		return Data{}, errors.New("wkt: no coordinates parsed")
	}
	return d, nil
}
