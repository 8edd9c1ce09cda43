package transform

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"

	"turfgeo/internal/measurement"
)

const (
	DefaultSteps = 64
	DefaultUnits = measurement.Kilometers
)

type circleConfig struct {
	steps int
	units measurement.Unit
	props geojson.Properties
}

// CircleOption configures Circle and Circles.
type CircleOption func(*circleConfig)

// WithSteps sets the number of vertices sampled on the circle.
func WithSteps(n int) CircleOption {
	return func(c *circleConfig) { c.steps = n }
}

// WithUnits sets the unit of the radius.
func WithUnits(u measurement.Unit) CircleOption {
	return func(c *circleConfig) { c.units = u }
}

// WithProperties merges props into the properties of the returned feature.
func WithProperties(props map[string]interface{}) CircleOption {
	return func(c *circleConfig) {
		for k, v := range props {
			c.props[k] = v
		}
	}
}

func newCircleConfig(opts []CircleOption) circleConfig {
	c := circleConfig{steps: DefaultSteps, units: DefaultUnits, props: geojson.Properties{}}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Circle returns a polygon feature approximating the circle of the given
// radius around center. The ring holds steps sampled vertices plus the
// closing vertex.
func (t *Transformer) Circle(center orb.Point, radius float64, opts ...CircleOption) (*geojson.Feature, error) {
	return t.circle(center, radius, newCircleConfig(opts))
}

func (t *Transformer) circle(center orb.Point, radius float64, c circleConfig) (*geojson.Feature, error) {
	if !(radius > 0) || math.IsInf(radius, 1) {
		return nil, errors.Wrapf(ErrInvalidRadius, "got %v", radius)
	}
	if c.steps <= 0 {
		return nil, errors.Wrapf(ErrInvalidSteps, "got %d", c.steps)
	}

	ring := make(orb.Ring, 0, c.steps+1)
	for i := 0; i < c.steps; i++ {
		bearing := float64(i) * -360 / float64(c.steps)
		p, err := t.destination(center, radius, bearing, c.units)
		if err != nil {
			return nil, err
		}
		ring = append(ring, p)
	}
	ring = append(ring, ring[0])

	f := geojson.NewFeature(orb.Polygon{ring})
	for k, v := range c.props {
		f.Properties[k] = v
	}
	return f, nil
}

// Circle uses the default Transformer.
func Circle(center orb.Point, radius float64, opts ...CircleOption) (*geojson.Feature, error) {
	return std.Circle(center, radius, opts...)
}
