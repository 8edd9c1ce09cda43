// Package meta iterates over the members of multi-part geometries.
package meta

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// FlattenGeometry calls fn once per member of a Multi* geometry or
// collection, in stored order. Single geometries produce one call with i == 0.
// Iteration stops at the first error, which is returned.
func FlattenGeometry(g orb.Geometry, fn func(sub orb.Geometry, i int) error) error {
	switch g := g.(type) {
	case nil:
		return nil
	case orb.MultiPoint:
		for i, p := range g {
			if err := fn(p, i); err != nil {
				return err
			}
		}
	case orb.MultiLineString:
		for i, ls := range g {
			if err := fn(ls, i); err != nil {
				return err
			}
		}
	case orb.MultiPolygon:
		for i, p := range g {
			if err := fn(p, i); err != nil {
				return err
			}
		}
	case orb.Collection:
		for i, sub := range g {
			if err := fn(sub, i); err != nil {
				return err
			}
		}
	default:
		return fn(g, 0)
	}
	return nil
}

// FlattenEach is FlattenGeometry for features. Each sub-feature carries a
// copy of the parent's properties and the same ID.
func FlattenEach(f *geojson.Feature, fn func(sub *geojson.Feature, multiIndex int) error) error {
	if f == nil {
		return nil
	}
	return FlattenGeometry(f.Geometry, func(g orb.Geometry, i int) error {
		sub := geojson.NewFeature(g)
		sub.ID = f.ID
		if f.Properties != nil {
			sub.Properties = f.Properties.Clone()
		}
		return fn(sub, i)
	})
}
