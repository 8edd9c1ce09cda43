package transform

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"turfgeo/internal/clip"
	"turfgeo/internal/measurement"
)

func square(x0, y0, x1, y1 float64) orb.Polygon {
	return orb.Polygon{{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}, {x0, y0}}}
}

func planarArea(g orb.Geometry) float64 {
	return math.Abs(planar.Area(g))
}

// planarDestination moves radius units along bearing in the plane.
func planarDestination(origin orb.Point, distance, bearing float64, _ measurement.Unit) (orb.Point, error) {
	rad := bearing * math.Pi / 180
	return orb.Point{origin[0] + distance*math.Sin(rad), origin[1] + distance*math.Cos(rad)}, nil
}

// recordingClipper returns a canned result and remembers its calls.
type recordingClipper struct {
	res   clip.Result
	err   error
	calls int
	ops   []clip.Op
}

func (c *recordingClipper) Compute(_, _ orb.Geometry, op clip.Op) (clip.Result, error) {
	c.calls++
	c.ops = append(c.ops, op)
	return c.res, c.err
}

func planar2D(opts ...Option) *Transformer {
	return New(append([]Option{WithArea(planarArea), WithMinArea(1e-6)}, opts...)...)
}
