package cli

import (
	"context"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"turfgeo/internal/geom"
	"turfgeo/internal/measurement"
	"turfgeo/internal/transform"
)

func newCircleCmd() *SubCommand {
	sc := &SubCommand{EnvPrefix: envPrefix}
	sc.Cmd = &cobra.Command{
		Use:   "circle",
		Short: "Build circle polygons around one or more centers",
		Long: `Circle samples points at a fixed distance around a center and closes them
into a polygon. Use --center for a single point or --centers to read points
from a CSV, KML or GeoJSON file; each source point's properties are copied
onto its circle.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCircle(cmd, sc)
		},
	}
	flags := sc.Cmd.Flags()
	flags.String("center", "", "Center as lon,lat.")
	flags.String("centers", "", "File of center points (.csv, .kml, .geojson).")
	flags.Float64("radius", 0, "Circle radius, in --units.")
	flags.Int("steps", transform.DefaultSteps, "Number of vertices on the circle.")
	flags.String("units", "km", "Radius units: m, km, mi, nm, ft, deg, rad...")
	flags.StringSlice("prop", nil, "Extra property as key=value; repeatable.")
	flags.Int("workers", 0, "Parallel circle builds for --centers (0 = GOMAXPROCS).")
	flags.String("out", "", "Output file; stdout when empty.")
	return sc
}

func runCircle(cmd *cobra.Command, sc *SubCommand) error {
	conf := sc.Conf
	log, err := sc.logger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	units, err := measurement.ParseUnit(conf.GetString("units"))
	if err != nil {
		return err
	}
	props, err := parseProps(conf.GetStringSlice("prop"))
	if err != nil {
		return err
	}
	radius := conf.GetFloat64("radius")
	opts := []transform.CircleOption{
		transform.WithSteps(conf.GetInt("steps")),
		transform.WithUnits(units),
		transform.WithProperties(props),
	}
	tr := sc.transformer(log)

	switch center, centers := conf.GetString("center"), conf.GetString("centers"); {
	case center != "" && centers != "":
		return errors.New("circle: --center and --centers are mutually exclusive")
	case center != "":
		pt, err := parsePoint(center)
		if err != nil {
			return err
		}
		f, err := tr.Circle(pt, radius, opts...)
		if err != nil {
			return err
		}
		log.Debug("circle built", zap.Float64("radius", radius), zap.String("units", units.String()))
		return writeJSON(cmd, conf.GetString("out"), f)
	case centers != "":
		d, err := geom.Load(centers)
		if err != nil {
			return errors.Wrapf(err, "loading %s", centers)
		}
		sources := d.CenterPoints()
		if len(sources) == 0 {
			return errors.Errorf("circle: no points in %s", centers)
		}
		pts := make([]orb.Point, len(sources))
		for i, f := range sources {
			pts[i] = f.Geometry.(orb.Point)
		}
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		circles, err := tr.Circles(ctx, pts, radius, opts...)
		if err != nil {
			return err
		}
		fc := geojson.NewFeatureCollection()
		for i, f := range circles {
			for k, v := range sources[i].Properties {
				if _, ok := f.Properties[k]; !ok {
					f.Properties[k] = v
				}
			}
			fc.Append(f)
		}
		log.Info("circles built", zap.Int("count", len(circles)), zap.String("source", centers))
		return writeJSON(cmd, conf.GetString("out"), fc)
	default:
		return errors.New("circle: one of --center or --centers is required")
	}
}

// parsePoint parses "lon,lat".
func parsePoint(s string) (orb.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return orb.Point{}, errors.Errorf("invalid point %q: want lon,lat", s)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return orb.Point{}, errors.Wrapf(err, "invalid longitude in %q", s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return orb.Point{}, errors.Wrapf(err, "invalid latitude in %q", s)
	}
	return orb.Point{lon, lat}, nil
}

// parseProps turns key=value pairs into properties. Values that parse as
// numbers or booleans keep that type.
func parseProps(kvs []string) (map[string]interface{}, error) {
	props := make(map[string]interface{}, len(kvs))
	for _, kv := range kvs {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			return nil, errors.Errorf("invalid property %q: want key=value", kv)
		}
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			props[k] = f
		} else if b, err := strconv.ParseBool(v); err == nil {
			props[k] = b
		} else {
			props[k] = v
		}
	}
	return props, nil
}
