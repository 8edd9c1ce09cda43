// Package geom loads geometries from GeoJSON, WKT, CSV and KML and keeps
// them in a form the viewer can draw.
package geom

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"

	"turfgeo/internal/meta"
)

// ErrNoPolygons is returned when a polygonal input is required but none was found.
var ErrNoPolygons = errors.New("geom: no polygons found")

type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// Valid reports whether the box has a positive extent on both axes.
func (b BBox) Valid() bool {
	return b.MaxX > b.MinX && b.MaxY > b.MinY
}

func (b BBox) Bound() orb.Bound {
	return orb.Bound{Min: orb.Point{b.MinX, b.MinY}, Max: orb.Point{b.MaxX, b.MaxY}}
}

func bboxOf(b orb.Bound) BBox {
	return BBox{MinX: b.Min.X(), MinY: b.Min.Y(), MaxX: b.Max.X(), MaxY: b.Max.Y()}
}

// Data is a minimal geometry container for rendering. Features keeps the
// source features so their properties can be shown.
type Data struct {
	Points   []orb.Point
	Lines    []orb.LineString
	Polygons []orb.Polygon // rings: first outer, following holes
	Features []*geojson.Feature
	BBox     BBox

	bound  orb.Bound
	bounds bool
}

// Empty reports whether no drawable geometry was collected.
func (d *Data) Empty() bool {
	return len(d.Points) == 0 && len(d.Lines) == 0 && len(d.Polygons) == 0
}

// AddFeature records f and its geometry.
func (d *Data) AddFeature(f *geojson.Feature) {
	if f == nil {
		return
	}
	d.Features = append(d.Features, f)
	d.Add(f.Geometry)
}

// Add records the drawable parts of g, splitting multi-geometries.
func (d *Data) Add(g orb.Geometry) {
	_ = meta.FlattenGeometry(g, func(sub orb.Geometry, _ int) error {
		switch sub := sub.(type) {
		case orb.Point:
			d.Points = append(d.Points, sub)
		case orb.LineString:
			d.Lines = append(d.Lines, sub)
		case orb.Ring:
			d.Polygons = append(d.Polygons, orb.Polygon{sub})
		case orb.Polygon:
			d.Polygons = append(d.Polygons, sub)
		case orb.Bound:
			d.Polygons = append(d.Polygons, sub.ToPolygon())
		case orb.Collection, orb.MultiPoint, orb.MultiLineString, orb.MultiPolygon:
			d.Add(sub)
			return nil
		default:
			return nil
		}
		d.extend(sub.Bound())
		return nil
	})
}

func (d *Data) extend(b orb.Bound) {
	if !d.bounds {
		d.bound, d.bounds = b, true
	} else {
		d.bound = d.bound.Union(b)
	}
	d.BBox = bboxOf(d.bound)
}

// Merge returns a Data holding everything in ds.
func Merge(ds ...Data) Data {
	var out Data
	for _, d := range ds {
		out.Points = append(out.Points, d.Points...)
		out.Lines = append(out.Lines, d.Lines...)
		out.Polygons = append(out.Polygons, d.Polygons...)
		out.Features = append(out.Features, d.Features...)
		if d.bounds {
			out.extend(d.bound)
		}
	}
	return out
}

// Polygonal returns the polygons of d as a Polygon when there is exactly
// one, or a MultiPolygon otherwise.
func (d *Data) Polygonal() (orb.Geometry, error) {
	switch len(d.Polygons) {
	case 0:
		return nil, ErrNoPolygons
	case 1:
		return d.Polygons[0], nil
	}
	return orb.MultiPolygon(d.Polygons), nil
}

// CenterPoints returns the point features of d.
func (d *Data) CenterPoints() []*geojson.Feature {
	var out []*geojson.Feature
	for _, f := range d.Features {
		if _, ok := f.Geometry.(orb.Point); ok {
			out = append(out, f)
		}
	}
	return out
}
