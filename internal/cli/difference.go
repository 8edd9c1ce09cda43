package cli

import (
	"encoding/json"
	"os"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"turfgeo/internal/geom"
)

func newDifferenceCmd() *SubCommand {
	sc := &SubCommand{EnvPrefix: envPrefix}
	sc.Cmd = &cobra.Command{
		Use:   "difference [SUBJECT CLIP]",
		Short: "Clip one polygon out of another",
		Long: `Difference prints the area of SUBJECT not covered by CLIP as a GeoJSON
Polygon or MultiPolygon feature, or null when nothing is left. Inputs are
GeoJSON, WKT or KML files; --subject_wkt and --clip_wkt take literals.
Polygons below --min_area are ignored. Input properties are not kept.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDifference(cmd, sc, args)
		},
	}
	flags := sc.Cmd.Flags()
	flags.String("subject_wkt", "", "Subject geometry as WKT instead of a file.")
	flags.String("clip_wkt", "", "Clip geometry as WKT instead of a file.")
	flags.String("out", "", "Output file; stdout when empty.")
	return sc
}

func runDifference(cmd *cobra.Command, sc *SubCommand, args []string) error {
	conf := sc.Conf
	log, err := sc.logger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	inputs := []struct {
		name, wkt string
	}{
		{"subject", conf.GetString("subject_wkt")},
		{"clip", conf.GetString("clip_wkt")},
	}
	geoms := make([]orb.Geometry, 2)
	for i, in := range inputs {
		var d geom.Data
		switch {
		case in.wkt != "":
			d, err = geom.ParseWKTData(in.wkt)
		case len(args) > 0:
			d, err = geom.Load(args[0])
			args = args[1:]
		default:
			return errors.Errorf("difference: missing %s", in.name)
		}
		if err != nil {
			return errors.Wrap(err, in.name)
		}
		if geoms[i], err = d.Polygonal(); err != nil {
			return errors.Wrap(err, in.name)
		}
	}
	if len(args) > 0 {
		return errors.Errorf("difference: unexpected argument %q", args[0])
	}

	f, err := sc.transformer(log).PolygonDifference(geoms[0], geoms[1])
	if err != nil {
		return err
	}
	if f == nil {
		log.Info("difference is empty")
		return writeJSON(cmd, conf.GetString("out"), nil)
	}
	log.Debug("difference computed", zap.String("type", f.Geometry.GeoJSONType()))
	return writeJSON(cmd, conf.GetString("out"), f)
}

// writeJSON writes v as indented JSON to path, or to the command's output
// when path is empty. A nil v is written as null.
func writeJSON(cmd *cobra.Command, path string, v interface{}) error {
	var out []byte
	var err error
	if v == nil {
		out = []byte("null")
	} else if out, err = json.MarshalIndent(v, "", "  "); err != nil {
		return err
	}
	out = append(out, '\n')
	if path == "" {
		_, err = cmd.OutOrStdout().Write(out)
		return err
	}
	return os.WriteFile(path, out, 0o644)
}
