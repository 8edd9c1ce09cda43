// Package transform builds circle polygons around a point and computes the
// difference between polygonal geometries.
//
// The geodesic math, area measurement and polygon clipping are collaborators
// supplied through Options; the defaults come from the measurement and clip
// packages.
package transform

import (
	"runtime"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"turfgeo/internal/clip"
	"turfgeo/internal/measurement"
)

// DefaultMinArea is the area, in square meters, at or below which a polygon
// is considered empty.
const DefaultMinArea = 1.0

// Errors returned for invalid input. Collaborator errors are passed through.
var (
	// ErrInvalidRadius is returned for a radius that is not a finite positive number.
	ErrInvalidRadius       = errors.New("transform: radius must be a finite positive number")
	// ErrInvalidSteps is returned when steps is below 1.
	ErrInvalidSteps        = errors.New("transform: steps must be positive")
	// ErrUnsupportedGeometry is returned for nil or non-polygonal input.
	ErrUnsupportedGeometry = errors.New("transform: geometry must be Polygon or MultiPolygon")
)

// DestinationFunc returns the point reached from origin after travelling
// distance along bearing (degrees) in the given units.
type DestinationFunc func(origin orb.Point, distance, bearing float64, u measurement.Unit) (orb.Point, error)

// AreaFunc returns the area of g.
type AreaFunc func(g orb.Geometry) float64

// Transformer holds the collaborators used by Circle, PolygonDifference and Union.
// It is immutable after New and safe for concurrent use.
type Transformer struct {
	destination DestinationFunc
	area        AreaFunc
	clipper     clip.Clipper
	minArea     float64
	workers     int
	log         *zap.Logger
}

// Option configures a Transformer.
type Option func(*Transformer)

// WithDestination replaces the geodesic destination function used by Circle.
func WithDestination(fn DestinationFunc) Option {
	return func(t *Transformer) { t.destination = fn }
}

// WithArea replaces the area function used for the negligible-area filter.
func WithArea(fn AreaFunc) Option {
	return func(t *Transformer) { t.area = fn }
}

// WithClipper replaces the boolean clipper used by PolygonDifference and Union.
func WithClipper(c clip.Clipper) Option {
	return func(t *Transformer) { t.clipper = c }
}

// WithMinArea sets the negligible-area threshold, in the area function's unit.
func WithMinArea(a float64) Option {
	return func(t *Transformer) { t.minArea = a }
}

// WithWorkers bounds the concurrency of Circles. Values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(t *Transformer) {
		if n > 0 {
			t.workers = n
		}
	}
}

// WithLogger sets the debug logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(t *Transformer) {
		if l != nil {
			t.log = l
		}
	}
}

// New returns a Transformer using the default collaborators overridden by opts.
func New(opts ...Option) *Transformer {
	t := &Transformer{
		destination: measurement.Destination,
		area:        measurement.Area,
		clipper:     clip.Polyclip{},
		minArea:     DefaultMinArea,
		workers:     runtime.GOMAXPROCS(0),
		log:         zap.NewNop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

var std = New()
