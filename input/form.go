// Package input validates the raw text of a transfer request and converts it to SI
// before it reaches the calculations.
package input

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	errorsmod "cosmossdk.io/errors"
	"github.com/soniakeys/unit"

	"github.com/ChristopherRabotin/xferwin"
)

const (
	kmToM         = 1000
	phaseAngleMax = 360
)

// ErrInvalidInput is returned for any field which cannot be used.
var ErrInvalidInput = errorsmod.Register(xferwin.Codespace, 10, "invalid input")

// BodyFields is the raw text of one body.
type BodyFields struct {
	Name               string
	SemiMajorAxis      string // km
	Mass               string // kg
	InitialMeanAnomaly string // degrees
}

// Form is the raw text of a full transfer request.
type Form struct {
	Body1, Body2 BodyFields
	CentralMass  string // kg
	TimeDays     string // days
	TargetPhase  string // degrees, empty for zero
}

// Request is a validated Form, in SI.
type Request struct {
	Body1, Body2 xferwin.OrbitingBody
	Elapsed      float64 // seconds
	TargetPhase  float64 // degrees
}

// Parse validates every field and returns the request. The first invalid field is reported.
func (f Form) Parse() (Request, error) {
	var req Request
	centralMass, err := positive(f.CentralMass, "Central body mass")
	if err != nil {
		return req, err
	}
	if req.Body1, err = f.Body1.body(1, centralMass); err != nil {
		return req, err
	}
	if req.Body2, err = f.Body2.body(2, centralMass); err != nil {
		return req, err
	}
	days, err := nonNegative(f.TimeDays, "Time (days)")
	if err != nil {
		return req, err
	}
	req.Elapsed = unit.TimeFromDay(days).Sec()
	if strings.TrimSpace(f.TargetPhase) != "" {
		if req.TargetPhase, err = angle(f.TargetPhase, "Target phase angle"); err != nil {
			return req, err
		}
	}
	return req, nil
}

func (b BodyFields) body(num int, centralMass float64) (xferwin.OrbitingBody, error) {
	name := strings.TrimSpace(b.Name)
	if name == "" {
		return xferwin.OrbitingBody{}, errorsmod.Wrapf(ErrInvalidInput, "Body %d name cannot be empty", num)
	}
	aKm, err := positive(b.SemiMajorAxis, fmt.Sprintf("Semi-major axis for Body %d", num))
	if err != nil {
		return xferwin.OrbitingBody{}, err
	}
	mass, err := positive(b.Mass, fmt.Sprintf("Mass for Body %d", num))
	if err != nil {
		return xferwin.OrbitingBody{}, err
	}
	θ0, err := angle(b.InitialMeanAnomaly, fmt.Sprintf("Initial Mean Anomaly for Body %d", num))
	if err != nil {
		return xferwin.OrbitingBody{}, err
	}
	return xferwin.NewOrbitingBody(name, aKm*kmToM, mass, centralMass, θ0), nil
}

// number parses a finite float.
func number(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func positive(raw, field string) (float64, error) {
	v, ok := number(raw)
	if !ok || v <= 0 {
		return 0, errorsmod.Wrapf(ErrInvalidInput, "%s must be a valid positive number", field)
	}
	return v, nil
}

func nonNegative(raw, field string) (float64, error) {
	v, ok := number(raw)
	if !ok || v < 0 {
		return 0, errorsmod.Wrapf(ErrInvalidInput, "%s must be a valid non-negative number", field)
	}
	return v, nil
}

func angle(raw, field string) (float64, error) {
	v, ok := number(raw)
	if !ok || v < 0 || v > phaseAngleMax {
		return 0, errorsmod.Wrapf(ErrInvalidInput, "%s must be a valid number between 0 and %d", field, phaseAngleMax)
	}
	return v, nil
}

// FromConfig returns the form prefilled with the configured defaults.
func FromConfig(conf xferwin.Config) Form {
	return Form{
		Body1:       fieldsFromConfig(conf.Departure),
		Body2:       fieldsFromConfig(conf.Arrival),
		CentralMass: format(conf.Central.Mass),
		TimeDays:    "0",
		TargetPhase: format(conf.Transfer.TargetPhase),
	}
}

// FromBody returns the fields of an existing body.
func FromBody(b xferwin.OrbitingBody) BodyFields {
	return BodyFields{
		Name:               b.Name,
		SemiMajorAxis:      format(b.SemiMajorAxis / kmToM),
		Mass:               format(b.Mass),
		InitialMeanAnomaly: format(unit.Angle(b.InitialMeanAnomaly()).Deg()),
	}
}

func fieldsFromConfig(b xferwin.BodyConfig) BodyFields {
	return BodyFields{
		Name:               b.Name,
		SemiMajorAxis:      format(b.SemiMajorAxisKm),
		Mass:               format(b.Mass),
		InitialMeanAnomaly: format(b.MeanAnomaly),
	}
}

func format(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
