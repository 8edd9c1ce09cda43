// Package clip computes boolean operations between polygons. The clipping
// itself is done by polyclip (Martinez-Rueda); this package only converts
// between orb geometries and polyclip contours.
package clip

import (
	"fmt"

	"github.com/ctessum/polyclip-go"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// Op is a boolean polygon operation.
type Op int

const (
	Difference Op = iota
	Union
	Intersection
	XOR
)

func (op Op) String() string {
	switch op {
	case Difference:
		return "difference"
	case Union:
		return "union"
	case Intersection:
		return "intersection"
	case XOR:
		return "xor"
	}
	return fmt.Sprintf("Op(%d)", int(op))
}

// ErrUnsupportedGeometry is returned for inputs that are not areal.
var ErrUnsupportedGeometry = errors.New("clip: unsupported geometry")

// ErrUnknownOp is returned for an Op outside the declared constants.
var ErrUnknownOp = errors.New("clip: unknown operation")

// Result holds the contours of a boolean operation. Contours are closed
// rings; their nesting is not resolved.
type Result struct {
	Contours []orb.Ring
}

// Empty reports whether the operation produced no contours.
func (r Result) Empty() bool { return len(r.Contours) == 0 }

// Clipper computes op between subject and clipping.
type Clipper interface {
	Compute(subject, clipping orb.Geometry, op Op) (Result, error)
}

// Polyclip is the Clipper backed by polyclip-go.
type Polyclip struct{}

var _ Clipper = Polyclip{}

// Compute implements Clipper.
func (Polyclip) Compute(subject, clipping orb.Geometry, op Op) (Result, error) {
	pop, err := toPolyclipOp(op)
	if err != nil {
		return Result{}, err
	}
	s, err := toPolyclip(subject)
	if err != nil {
		return Result{}, errors.Wrap(err, "subject")
	}
	c, err := toPolyclip(clipping)
	if err != nil {
		return Result{}, errors.Wrap(err, "clipping")
	}
	return fromPolyclip(s.Construct(pop, c)), nil
}

func toPolyclipOp(op Op) (polyclip.Op, error) {
	switch op {
	case Difference:
		return polyclip.DIFFERENCE, nil
	case Union:
		return polyclip.UNION, nil
	case Intersection:
		return polyclip.INTERSECTION, nil
	case XOR:
		return polyclip.XOR, nil
	}
	return 0, errors.Wrapf(ErrUnknownOp, "%d", int(op))
}

// toPolyclip flattens every ring of g into one contour list. polyclip
// contours are implicitly closed, so the closing point is dropped.
func toPolyclip(g orb.Geometry) (polyclip.Polygon, error) {
	var rings []orb.Ring
	switch g := g.(type) {
	case orb.Ring:
		rings = []orb.Ring{g}
	case orb.Polygon:
		rings = g
	case orb.MultiPolygon:
		for _, p := range g {
			rings = append(rings, p...)
		}
	default:
		if g == nil {
			return nil, errors.Wrap(ErrUnsupportedGeometry, "nil")
		}
		return nil, errors.Wrap(ErrUnsupportedGeometry, g.GeoJSONType())
	}

	out := make(polyclip.Polygon, 0, len(rings))
	for _, r := range rings {
		if len(r) > 1 && r.Closed() {
			r = r[:len(r)-1]
		}
		if len(r) < 3 {
			continue
		}
		ct := make(polyclip.Contour, len(r))
		for i, p := range r {
			ct[i] = polyclip.Point{X: p[0], Y: p[1]}
		}
		out = append(out, ct)
	}
	return out, nil
}

func fromPolyclip(p polyclip.Polygon) Result {
	var res Result
	for _, ct := range p {
		if len(ct) < 3 {
			continue
		}
		ring := make(orb.Ring, 0, len(ct)+1)
		for _, pt := range ct {
			ring = append(ring, orb.Point{pt.X, pt.Y})
		}
		if !ring.Closed() {
			ring = append(ring, ring[0])
		}
		res.Contours = append(res.Contours, ring)
	}
	return res
}
