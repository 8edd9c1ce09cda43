package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"turfgeo/internal/transform"
)

// SubCommand pairs a cobra command with the viper instance its flags,
// environment and config file are resolved through.
type SubCommand struct {
	Cmd  *cobra.Command
	Conf *viper.Viper

	EnvPrefix string
}

// transformer builds a Transformer from the shared configuration keys.
func (sc *SubCommand) transformer(log *zap.Logger) *transform.Transformer {
	opts := []transform.Option{
		transform.WithLogger(log),
		transform.WithMinArea(sc.Conf.GetFloat64("min_area")),
	}
	if w := sc.Conf.GetInt("workers"); w > 0 {
		opts = append(opts, transform.WithWorkers(w))
	}
	return transform.New(opts...)
}

// logger returns a console logger on stderr at the configured level.
func (sc *SubCommand) logger() (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(sc.Conf.GetString("log_level"))
	if err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.DisableStacktrace = true
	return cfg.Build()
}
