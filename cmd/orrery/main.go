package main

import (
	"fmt"
	"io"
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/keplerscope/orrery"
	"github.com/spf13/cobra"
)

// app holds the state shared by every sub command once the configuration is read.
type app struct {
	confPath string
	logLevel string

	conf   orrery.Config
	logger log.Logger
	stdout io.Writer
	stderr io.Writer
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "orrery: %s\n", err)
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}
	root := &cobra.Command{
		Use:           "orrery",
		Short:         "Keplerian orrery of the solar system",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().StringVar(&a.confPath, "config", "", "conf.toml file or directory (default $"+orrery.ConfigEnv+")")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error (overrides log.level)")
	root.AddCommand(
		a.positionCmd(),
		a.pathCmd(),
		a.planetCmd(),
		a.neoCmd(),
	)
	return root
}

func (a *app) setup() error {
	var err error
	if a.confPath != "" {
		a.conf, err = orrery.LoadConfig(a.confPath)
	} else {
		a.conf, err = orrery.ConfigFromEnv()
	}
	if err != nil {
		return fmt.Errorf("configuration: %w", err)
	}
	lvl := a.conf.LogLevel
	if a.logLevel != "" {
		lvl = a.logLevel
	}
	a.logger = newLogger(a.stderr, lvl)
	level.Debug(a.logger).Log("msg", "configuration loaded", "km_per_unit", a.conf.KmPerUnit, "segments", a.conf.Segments, "start", a.conf.Start)
	return nil
}

// newLogger returns a logfmt logger filtered at lvl, defaulting to info.
func newLogger(w io.Writer, lvl string) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)
	return level.NewFilter(logger, level.Allow(level.ParseDefault(lvl, level.InfoValue())))
}
