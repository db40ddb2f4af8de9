package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"

	"github.com/ChristopherRabotin/xferwin"
	"github.com/ChristopherRabotin/xferwin/input"
)

const (
	appName = "xferwin"
	version = "v1.0.0"
)

// app is shared by all the commands once the configuration is loaded.
type app struct {
	cfgDir string
	output string
	conf   xferwin.Config
	logger kitlog.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(exitCode(err))
	}
}

func newRootCmd() *cobra.Command {
	a := &app{logger: kitlog.NewNopLogger()}
	rootCmd := &cobra.Command{
		Use:   appName,
		Short: "Transfer window calculator for two bodies on circular orbits",
		Long: `xferwin computes the phase angle between two bodies orbiting the same central
mass, the time until the next transfer window and the Hohmann transfer time
between both orbits. Orbits are circular and coplanar.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	rootCmd.PersistentFlags().StringVar(&a.cfgDir, "config", "", "configuration directory (default $"+xferwin.ConfigEnv+")")
	rootCmd.PersistentFlags().StringVarP(&a.output, "output", "o", "", "output format: text or json (overrides general.output)")

	rootCmd.AddCommand(newCalcCmd(a))
	rootCmd.AddCommand(newTimelineCmd(a))
	rootCmd.AddCommand(newBodiesCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", appName, version)
		},
	})
	return rootCmd
}

// setup loads the configuration and sets up the logger.
func (a *app) setup(cmd *cobra.Command) error {
	conf, err := xferwin.LoadConfig(a.cfgDir)
	if err != nil {
		return err
	}
	if a.output != "" {
		conf.General.Output = a.output
		if err := conf.Validate(); err != nil {
			return err
		}
	}
	a.conf = conf
	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(cmd.ErrOrStderr()))
	logger = level.NewFilter(logger, levelOption(conf.General.LogLevel))
	a.logger = kitlog.With(logger, "ts", kitlog.DefaultTimestampUTC, "cmd", cmd.Name())
	return nil
}

func levelOption(lvl string) level.Option {
	switch strings.ToLower(lvl) {
	case "debug":
		return level.AllowDebug()
	case "warn":
		return level.AllowWarn()
	case "error":
		return level.AllowError()
	default:
		return level.AllowInfo()
	}
}

// exitCode maps the error taxonomy to the process exit code.
func exitCode(err error) int {
	switch {
	case errors.Is(err, input.ErrInvalidInput):
		return 2
	case errors.Is(err, xferwin.ErrDegenerateOrbit):
		return 3
	default:
		return 1
	}
}
