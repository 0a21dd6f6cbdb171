package main

import (
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/zerologr"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"nodegraph/internal/config"
)

// app carries what every subcommand needs once flags are parsed
type app struct {
	configPath string
	logLevel   string

	cfg *config.Config
	log logr.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: logr.Discard()}

	cmd := &cobra.Command{
		Use:           "nodegraph",
		Short:         "Node-graph editor core",
		Long:          brand.Sprint("nodegraph") + " builds nodes, ports and wires from Go callables and templates",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}
	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default: search "+config.EnvConfigPath+" and standard locations)")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override log level (error, warn, info, debug, trace)")

	cmd.AddCommand(
		inspectCmd(a),
		templatesCmd(a),
		demoCmd(a),
	)

	return cmd
}

func (a *app) setup(stderr io.Writer) error {
	var (
		cfg  *config.Config
		path string
		err  error
	)
	if a.configPath != "" {
		cfg, path, err = config.LoadFromPath(a.configPath)
	} else {
		cfg, path, err = config.Load()
	}
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = config.ParseLevel(a.logLevel)
	}

	a.cfg = cfg
	a.log = newLogger(stderr, cfg.Log)
	if path != "" {
		a.log.V(1).Info("loaded config", "path", path)
	} else {
		a.log.V(1).Info("no config file found, using defaults")
	}
	return nil
}

// newLogger backs logr with zerolog. V(1) maps to debug and V(2) to trace.
func newLogger(w io.Writer, lc config.LogConfig) logr.Logger {
	zerologr.NameFieldName = "logger"
	zerologr.NameSeparator = "/"

	if w == nil {
		w = os.Stderr
	}
	if lc.Format != config.FormatJSON {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05.000"}
	}

	level, err := zerolog.ParseLevel(string(lc.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zl := zerolog.New(w).Level(level).With().Timestamp().Logger()
	return zerologr.New(&zl).WithName("nodegraph")
}
