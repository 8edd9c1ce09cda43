package transform

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"turfgeo/internal/clip"
)

// PolygonDifference returns the area of p1 not covered by p2 as a Polygon
// feature (one resulting contour) or a MultiPolygon feature (several). It
// returns nil when p1 is negligible or entirely covered by p2. The returned
// feature never carries properties.
func (t *Transformer) PolygonDifference(p1, p2 orb.Geometry) (*geojson.Feature, error) {
	g1, err := t.Normalize(p1)
	if err != nil {
		return nil, errors.Wrap(err, "polygon1")
	}
	g2, err := t.Normalize(p2)
	if err != nil {
		return nil, errors.Wrap(err, "polygon2")
	}
	if g1 == nil {
		return nil, nil
	}
	if g2 == nil {
		return geojson.NewFeature(g1), nil
	}

	res, err := t.clipper.Compute(g1, g2, clip.Difference)
	if err != nil {
		return nil, err
	}
	contours := make([]orb.Ring, 0, len(res.Contours))
	for _, c := range res.Contours {
		if t.area(orb.Polygon{c}) > t.minArea {
			contours = append(contours, c)
		}
	}
	t.log.Debug("difference computed",
		zap.Int("contours", len(res.Contours)),
		zap.Int("kept", len(contours)))

	switch len(contours) {
	case 0:
		return nil, nil
	case 1:
		return geojson.NewFeature(orb.Polygon{wind(contours[0], orb.CCW)}), nil
	}
	return geojson.NewFeature(assemble(contours)), nil
}

// FeatureDifference is PolygonDifference on the geometries of two features.
func (t *Transformer) FeatureDifference(f1, f2 *geojson.Feature) (*geojson.Feature, error) {
	if f1 == nil || f2 == nil {
		return nil, errors.Wrap(ErrUnsupportedGeometry, "nil feature")
	}
	return t.PolygonDifference(f1.Geometry, f2.Geometry)
}

// PolygonDifference uses the default Transformer.
func PolygonDifference(p1, p2 orb.Geometry) (*geojson.Feature, error) {
	return std.PolygonDifference(p1, p2)
}

// assemble groups clipper contours into polygons. A contour enclosed by an
// odd number of other contours is a hole of its smallest enclosing contour.
func assemble(contours []orb.Ring) orb.MultiPolygon {
	n := len(contours)
	areas := make([]float64, n)
	for i, c := range contours {
		areas[i] = math.Abs(planar.Area(c))
	}

	parent := make([]int, n)
	for i := range contours {
		parent[i] = -1
		for j := range contours {
			if i == j || areas[j] <= areas[i] {
				continue
			}
			if parent[i] >= 0 && areas[j] >= areas[parent[i]] {
				continue
			}
			if ringWithin(contours[i], contours[j]) {
				parent[i] = j
			}
		}
	}

	depth := make([]int, n)
	for i := range contours {
		for p := parent[i]; p >= 0; p = parent[p] {
			depth[i]++
		}
	}

	var mp orb.MultiPolygon
	index := make(map[int]int, n)
	for i, c := range contours {
		if depth[i]%2 == 0 {
			index[i] = len(mp)
			mp = append(mp, orb.Polygon{wind(c, orb.CCW)})
		}
	}
	for i, c := range contours {
		if depth[i]%2 == 1 {
			k := index[parent[i]]
			mp[k] = append(mp[k], wind(c, orb.CW))
		}
	}
	return mp
}

func ringWithin(inner, outer orb.Ring) bool {
	if !outer.Bound().Contains(inner.Bound().Min) || !outer.Bound().Contains(inner.Bound().Max) {
		return false
	}
	for _, p := range inner {
		if !planar.RingContains(outer, p) {
			return false
		}
	}
	return true
}

// wind returns a copy of r with the given orientation.
func wind(r orb.Ring, o orb.Orientation) orb.Ring {
	c := r.Clone()
	if c.Orientation() != o {
		c.Reverse()
	}
	return c
}
