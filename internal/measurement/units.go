// Package measurement wraps the geodesic primitives used by the transform
// package: unit handling, destination points, distances and areas.
package measurement

import (
	"math"
	"strings"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// Unit is a distance unit tag.
type Unit string

const (
	Meters        Unit = "meters"
	Kilometers    Unit = "kilometers"
	Miles         Unit = "miles"
	NauticalMiles Unit = "nauticalmiles"
	Feet          Unit = "feet"
	Inches        Unit = "inches"
	Yards         Unit = "yards"
	Centimeters   Unit = "centimeters"
	Millimeters   Unit = "millimeters"
	Degrees       Unit = "degrees"
	Radians       Unit = "radians"
)

// ErrUnknownUnit is returned for unit tags not listed in ParseUnit.
var ErrUnknownUnit = errors.New("measurement: unknown unit")

var aliases = map[string]Unit{
	"m":             Meters,
	"meters":        Meters,
	"metres":        Meters,
	"km":            Kilometers,
	"kilometers":    Kilometers,
	"kilometres":    Kilometers,
	"mi":            Miles,
	"miles":         Miles,
	"nm":            NauticalMiles,
	"nauticalmiles": NauticalMiles,
	"ft":            Feet,
	"feet":          Feet,
	"in":            Inches,
	"inches":        Inches,
	"yd":            Yards,
	"yards":         Yards,
	"cm":            Centimeters,
	"centimeters":   Centimeters,
	"centimetres":   Centimeters,
	"mm":            Millimeters,
	"millimeters":   Millimeters,
	"millimetres":   Millimeters,
	"deg":           Degrees,
	"degrees":       Degrees,
	"rad":           Radians,
	"radians":       Radians,
}

// meters per unit; angular units go through the earth radius.
var factors = map[Unit]float64{
	Meters:        1,
	Kilometers:    1000,
	Miles:         1609.344,
	NauticalMiles: 1852,
	Feet:          0.3048,
	Inches:        0.0254,
	Yards:         0.9144,
	Centimeters:   0.01,
	Millimeters:   0.001,
	Degrees:       orb.EarthRadius * math.Pi / 180,
	Radians:       orb.EarthRadius,
}

// ParseUnit resolves a unit tag or one of its aliases, case-insensitively.
func ParseUnit(s string) (Unit, error) {
	u, ok := aliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", errors.Wrapf(ErrUnknownUnit, "%q", s)
	}
	return u, nil
}

// String returns the canonical tag.
func (u Unit) String() string { return string(u) }

func (u Unit) factor() (float64, error) {
	f, ok := factors[u]
	if !ok {
		// accept aliases handed over without ParseUnit
		resolved, err := ParseUnit(string(u))
		if err != nil {
			return 0, err
		}
		f = factors[resolved]
	}
	return f, nil
}

// ToMeters converts a distance in u to meters.
func ToMeters(distance float64, u Unit) (float64, error) {
	f, err := u.factor()
	if err != nil {
		return 0, err
	}
	return distance * f, nil
}

// FromMeters converts a distance in meters to u.
func FromMeters(meters float64, u Unit) (float64, error) {
	f, err := u.factor()
	if err != nil {
		return 0, err
	}
	return meters / f, nil
}
