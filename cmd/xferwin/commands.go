package main

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/go-kit/log/level"
	"github.com/soniakeys/unit"
	"github.com/spf13/cobra"

	"github.com/ChristopherRabotin/xferwin"
)

func newTimelineCmd(a *app) *cobra.Command {
	var fromDay, untilDay, step float64
	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Export the phase angle and separation over time as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := a.request(cmd.Flags())
			if err != nil {
				return err
			}
			level.Info(a.logger).Log("msg", "exporting timeline", "departure", req.Body1.Name, "arrival", req.Body2.Name, "from", fromDay, "until", untilDay, "step", step)
			return xferwin.WritePhaseTimeline(cmd.OutOrStdout(), req.Body1, req.Body2, fromDay, untilDay, step)
		},
	}
	addFormFlags(cmd.Flags())
	cmd.Flags().Float64Var(&fromDay, "from-day", 0, "first sample (days)")
	cmd.Flags().Float64Var(&untilDay, "until-day", 780, "last sample (days)")
	cmd.Flags().Float64Var(&step, "step", 10, "sampling step (days)")
	return cmd
}

func newBodiesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "bodies",
		Short: "List the catalog of bodies orbiting the Sun",
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tA (AU)\tMASS (kg)\tPERIOD (days)")
			for _, body := range xferwin.Catalog() {
				fmt.Fprintf(tw, "%s\t%.4f\t%.4e\t%.2f\n", body.Name, body.SemiMajorAxis/xferwin.AU, body.Mass, unit.Time(body.OrbitalPeriod()).Day())
			}
			return tw.Flush()
		},
	}
}

func newConfigCmd(a *app) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration",
	}
	configCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write the default configuration",
		Long: `Write the default configuration (Earth to Mars around the Sun) as conf.yaml in the
directory from --config, $` + xferwin.ConfigEnv + ` or ~/.xferwin.`,
		// The configuration may not exist yet.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := a.cfgDir
			if dir == "" {
				dir = os.Getenv(xferwin.ConfigEnv)
			}
			if dir == "" {
				home, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				dir = filepath.Join(home, ".xferwin")
			}
			path, err := xferwin.DefaultConfig().Write(dir)
			if err != nil {
				return fmt.Errorf("failed to write configuration: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "configuration written to %s\n", path)
			return nil
		},
	})
	return configCmd
}
