package transform

import (
	"github.com/paulmach/orb"
	"go.uber.org/zap"

	"turfgeo/internal/clip"
)

// Union merges two polygonal geometries with the Transformer's clipper.
// Contours enclosed by other contours come back as holes, so the result is
// a MultiPolygon of non-overlapping polygons. Negligible contours are
// dropped; nil means nothing is left.
func (t *Transformer) Union(p1, p2 orb.Geometry) (orb.MultiPolygon, error) {
	res, err := t.clipper.Compute(p1, p2, clip.Union)
	if err != nil {
		return nil, err
	}
	contours := make([]orb.Ring, 0, len(res.Contours))
	for _, c := range res.Contours {
		if t.area(orb.Polygon{c}) > t.minArea {
			contours = append(contours, c)
		}
	}
	t.log.Debug("union computed",
		zap.Int("contours", len(res.Contours)),
		zap.Int("kept", len(contours)))
	if len(contours) == 0 {
		return nil, nil
	}
	return assemble(contours), nil
}
