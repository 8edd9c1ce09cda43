package cli

import (
	"math"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"turfgeo/internal/measurement"
	"turfgeo/internal/transform"
	"turfgeo/internal/tui"
)

func newViewCmd() *SubCommand {
	sc := &SubCommand{EnvPrefix: envPrefix}
	sc.Cmd = &cobra.Command{
		Use:   "view [SUBJECT [CLIP]]",
		Short: "Open the terminal viewer",
		Long: `View draws the subject, clip and difference layers in the terminal.
Files can be opened from the sidebar (tab); c drops a circle of --radius at
the cursor into the clip layer and the difference is recomputed.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(sc, args)
		},
	}
	flags := sc.Cmd.Flags()
	flags.Float64("radius", 10, "Radius of circles dropped with c, in --units.")
	flags.Int("steps", transform.DefaultSteps, "Number of vertices on dropped circles.")
	flags.String("units", "km", "Radius units: m, km, mi, nm, ft, deg, rad...")
	return sc
}

// viewConfig resolves the viewer settings from flags, env and config.
func viewConfig(sc *SubCommand) (tui.Config, error) {
	conf := sc.Conf
	units, err := measurement.ParseUnit(conf.GetString("units"))
	if err != nil {
		return tui.Config{}, err
	}
	radius, steps := conf.GetFloat64("radius"), conf.GetInt("steps")
	if !(radius > 0) || math.IsInf(radius, 1) {
		return tui.Config{}, errors.Wrapf(transform.ErrInvalidRadius, "view: got %v", radius)
	}
	if steps <= 0 {
		return tui.Config{}, errors.Wrapf(transform.ErrInvalidSteps, "view: got %d", steps)
	}
	// The viewer owns the terminal; library logging stays silent.
	return tui.Config{
		Radius:      radius,
		Steps:       steps,
		Units:       units,
		Transformer: sc.transformer(zap.NewNop()),
	}, nil
}

func runView(sc *SubCommand, args []string) error {
	cfg, err := viewConfig(sc)
	if err != nil {
		return err
	}
	var subject, clipping string
	if len(args) > 0 {
		subject = args[0]
	}
	if len(args) > 1 {
		clipping = args[1]
	}
	m := tui.NewWithPaths(cfg, subject, clipping)
	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
	return err
}
