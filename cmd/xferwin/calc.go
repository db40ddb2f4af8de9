package main

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/go-kit/log/level"
	"github.com/soniakeys/unit"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ChristopherRabotin/xferwin"
	"github.com/ChristopherRabotin/xferwin/input"
)

const dateFormat = "2006-01-02"

// formFlags maps each flag onto its form field.
func formFlags(form *input.Form) map[string]*string {
	return map[string]*string{
		"name1":        &form.Body1.Name,
		"a1":           &form.Body1.SemiMajorAxis,
		"mass1":        &form.Body1.Mass,
		"theta1":       &form.Body1.InitialMeanAnomaly,
		"name2":        &form.Body2.Name,
		"a2":           &form.Body2.SemiMajorAxis,
		"mass2":        &form.Body2.Mass,
		"theta2":       &form.Body2.InitialMeanAnomaly,
		"central-mass": &form.CentralMass,
		"days":         &form.TimeDays,
		"target":       &form.TargetPhase,
	}
}

func addFormFlags(fs *pflag.FlagSet) {
	fs.String("from", "", "departure body from the catalog (see `bodies`)")
	fs.String("to", "", "arrival body from the catalog (see `bodies`)")
	fs.String("name1", "", "departure body name")
	fs.String("a1", "", "departure semi-major axis (km)")
	fs.String("mass1", "", "departure body mass (kg)")
	fs.String("theta1", "", "departure initial mean anomaly (deg, 0-360)")
	fs.String("name2", "", "arrival body name")
	fs.String("a2", "", "arrival semi-major axis (km)")
	fs.String("mass2", "", "arrival body mass (kg)")
	fs.String("theta2", "", "arrival initial mean anomaly (deg, 0-360)")
	fs.String("central-mass", "", "central body mass (kg)")
	fs.String("days", "", "elapsed time for the phase angle (days)")
	fs.String("at", "", "date for the phase angle (RFC3339 or YYYY-MM-DD), counted from general.epoch")
	fs.String("target", "", "target phase angle of the transfer window (deg, 0-360)")
}

// readForm returns the configured form, overridden by the catalog shortcuts and then by
// any explicitly set flag.
func (a *app) readForm(fs *pflag.FlagSet) (input.Form, error) {
	form := input.FromConfig(a.conf)
	for flag, fields := range map[string]*input.BodyFields{"from": &form.Body1, "to": &form.Body2} {
		name, _ := fs.GetString(flag)
		if name == "" {
			continue
		}
		body, err := xferwin.BodyFromString(name, 0)
		if err != nil {
			return form, err
		}
		*fields = input.FromBody(body)
	}
	for flag, dst := range formFlags(&form) {
		if f := fs.Lookup(flag); f != nil && f.Changed {
			*dst = f.Value.String()
		}
	}
	if at, _ := fs.GetString("at"); at != "" {
		if fs.Changed("days") {
			return form, errors.New("--at and --days are mutually exclusive")
		}
		days, err := a.daysSinceEpoch(at)
		if err != nil {
			return form, err
		}
		form.TimeDays = strconv.FormatFloat(days, 'g', -1, 64)
	}
	return form, nil
}

func (a *app) daysSinceEpoch(at string) (float64, error) {
	epoch, err := a.conf.Epoch()
	if err != nil {
		return 0, err
	}
	dt, err := time.Parse(time.RFC3339, at)
	if err != nil {
		if dt, err = time.Parse(dateFormat, at); err != nil {
			return 0, errors.New("could not understand date `" + at + "`")
		}
	}
	return unit.Time(xferwin.ElapsedSeconds(epoch, dt)).Day(), nil
}

// request validates the form, logging any input error.
func (a *app) request(fs *pflag.FlagSet) (input.Request, error) {
	form, err := a.readForm(fs)
	if err != nil {
		level.Error(a.logger).Log("msg", "input error", "err", err)
		return input.Request{}, err
	}
	req, err := form.Parse()
	if err != nil {
		level.Error(a.logger).Log("msg", "input error", "err", err)
		return req, err
	}
	if !xferwin.SameCentralMass(req.Body1, req.Body2) {
		level.Warn(a.logger).Log("msg", "central masses differ, using the departure one", "departure", req.Body1.CentralMass, "arrival", req.Body2.CentralMass)
	}
	level.Debug(a.logger).Log("departure", req.Body1, "arrival", req.Body2, "elapsed", req.Elapsed)
	return req, nil
}

func newCalcCmd(a *app) *cobra.Command {
	var hohmannPhase bool
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Compute the phase angle, transfer window and Hohmann transfer time",
		Example: `  xferwin calc --from earth --to mars
  xferwin calc --a1 149597870.7 --a2 227939366 --theta2 44 --days 10
  xferwin calc --from earth --to mars --hohmann-phase -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := a.request(cmd.Flags())
			if err != nil {
				return err
			}
			target := req.TargetPhase
			if hohmannPhase {
				target = xferwin.HohmannPhaseAngle(req.Body1, req.Body2)
				level.Info(a.logger).Log("msg", "using the Hohmann phase angle as target", "target", target)
			}
			tr, err := xferwin.NewTransfer(req.Body1, req.Body2, req.Elapsed, target)
			if err != nil {
				level.Error(a.logger).Log("msg", "calculation error", "err", err)
				return err
			}
			if tr.WindowTime < 0 {
				level.Warn(a.logger).Log("msg", "negative transfer window time, the departure body is likely the inner (faster) one", "window", tr.WindowTime)
			}
			if strings.EqualFold(a.conf.General.Output, "json") {
				return tr.WriteJSON(cmd.OutOrStdout())
			}
			return tr.WriteText(cmd.OutOrStdout())
		},
	}
	addFormFlags(cmd.Flags())
	cmd.Flags().BoolVar(&hohmannPhase, "hohmann-phase", false, "target the phase angle required by a Hohmann transfer (overrides --target)")
	return cmd
}
