package transform

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"turfgeo/internal/meta"
)

// Normalize drops the pieces of g whose area does not exceed the minimum
// area. It returns nil when nothing is left, for both Polygon and
// MultiPolygon input. Other geometry types are rejected.
func (t *Transformer) Normalize(g orb.Geometry) (orb.Geometry, error) {
	switch g := g.(type) {
	case orb.Polygon:
		if t.area(g) > t.minArea {
			return g, nil
		}
		t.log.Debug("dropping negligible polygon", zap.Float64("min_area", t.minArea))
		return nil, nil
	case orb.MultiPolygon:
		var kept orb.MultiPolygon
		err := meta.FlattenEach(geojson.NewFeature(g), func(sub *geojson.Feature, i int) error {
			if t.area(sub.Geometry) > t.minArea {
				kept = append(kept, sub.Geometry.(orb.Polygon))
				return nil
			}
			t.log.Debug("dropping negligible multipolygon member", zap.Int("index", i))
			return nil
		})
		if err != nil {
			return nil, err
		}
		if len(kept) == 0 {
			return nil, nil
		}
		return kept, nil
	case nil:
		return nil, errors.Wrap(ErrUnsupportedGeometry, "nil")
	default:
		return nil, errors.Wrap(ErrUnsupportedGeometry, g.GeoJSONType())
	}
}

// Normalize uses the default Transformer.
func Normalize(g orb.Geometry) (orb.Geometry, error) {
	return std.Normalize(g)
}
