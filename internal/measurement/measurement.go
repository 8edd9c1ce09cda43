package measurement

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/geojson"
)

// Destination returns the point reached from origin after travelling distance
// (in u) along bearing, in degrees clockwise from north, on a sphere.
func Destination(origin orb.Point, distance, bearing float64, u Unit) (orb.Point, error) {
	meters, err := ToMeters(distance, u)
	if err != nil {
		return orb.Point{}, err
	}
	return geo.PointAtBearingAndDistance(origin, bearing, meters), nil
}

// Distance returns the great-circle distance between a and b in u.
func Distance(a, b orb.Point, u Unit) (float64, error) {
	return FromMeters(geo.Distance(a, b), u)
}

// Area returns the geodesic area of g in square meters. Non-areal
// geometries have zero area.
func Area(g orb.Geometry) float64 {
	if g == nil {
		return 0
	}
	return math.Abs(geo.Area(g))
}

// FeatureArea is Area for a feature's geometry.
func FeatureArea(f *geojson.Feature) float64 {
	if f == nil {
		return 0
	}
	return Area(f.Geometry)
}
