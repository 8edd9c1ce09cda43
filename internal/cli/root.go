// Package cli wires the turfgeo commands: circle, difference and view.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"turfgeo/internal/transform"
)

const envPrefix = "TURFGEO"

// NewRootCmd returns the turfgeo command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "turfgeo",
		Short: "turfgeo: circles and polygon differences on GeoJSON",
		Long: `
turfgeo builds circle polygons around points and clips polygons out of
each other. Inputs are GeoJSON, WKT, CSV or KML files; output is GeoJSON.
The view command opens a terminal viewer of the inputs and results.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().String("config", "",
		"Configuration file. Takes precedence over default values, but is "+
			"overridden by environment variables and flags.")
	root.PersistentFlags().String("log_level", "info", "Log level: debug, info, warn, error.")
	root.PersistentFlags().Float64("min_area", transform.DefaultMinArea,
		"Area in square meters at or below which a polygon counts as empty.")

	subcommands := []*SubCommand{newCircleCmd(), newDifferenceCmd(), newViewCmd()}
	for _, sc := range subcommands {
		root.AddCommand(sc.Cmd)
		sc.Conf = viper.New()
		bindFlags(sc.Conf, sc.Cmd.Flags(), root.PersistentFlags())
		sc.Conf.SetEnvPrefix(sc.EnvPrefix)
		sc.Conf.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
		sc.Conf.AutomaticEnv()
	}

	// The config path itself resolves through viper, so TURFGEO_CONFIG works
	// like the flag.
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		for _, sc := range subcommands {
			cfg := sc.Conf.GetString("config")
			if cfg == "" {
				continue
			}
			sc.Conf.SetConfigFile(cfg)
			if err := sc.Conf.ReadInConfig(); err != nil {
				return errors.Wrapf(err, "reading config %s", cfg)
			}
		}
		return nil
	}
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// bindFlags makes every flag in sets a viper key of the same name.
func bindFlags(conf *viper.Viper, sets ...*pflag.FlagSet) {
	for _, fs := range sets {
		must(conf.BindPFlags(fs))
	}
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
