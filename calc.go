package xferwin

import (
	errorsmod "cosmossdk.io/errors"
)

// Transfer gathers every result for a departure and arrival pair.
type Transfer struct {
	Departure, Arrival OrbitingBody
	Elapsed            float64 // seconds since t=0, for the phase angle only
	TargetPhase        float64 // degrees
	PhaseAngle         float64 // degrees at Elapsed
	WindowTime         float64 // seconds from t=0, may be negative
	HohmannTime        float64 // seconds
	SynodicPeriod      float64 // seconds
	DepartureΔv        float64 // m/s
	ArrivalΔv          float64 // m/s
	HohmannPhase       float64 // degrees
	Separation         float64 // meters at Elapsed
}

// NewTransfer computes all the transfer quantities from departure to arrival.
func NewTransfer(departure, arrival OrbitingBody, elapsed, targetPhase float64) (*Transfer, error) {
	windowT, err := TransferWindowTime(departure, arrival, targetPhase)
	if err != nil {
		return nil, err
	}
	synodic, err := SynodicPeriod(departure, arrival)
	if err != nil {
		return nil, err
	}
	tr := Transfer{Departure: departure, Arrival: arrival, Elapsed: elapsed, TargetPhase: targetPhase}
	tr.PhaseAngle = PhaseAngle(departure, arrival, elapsed)
	tr.WindowTime = windowT
	tr.SynodicPeriod = synodic
	tr.HohmannTime = HohmannTransferTime(departure, arrival)
	tr.DepartureΔv, tr.ArrivalΔv = HohmannDeltaV(departure, arrival)
	tr.HohmannPhase = HohmannPhaseAngle(departure, arrival)
	tr.Separation = Separation(departure, arrival, elapsed)
	if !isFinite(tr.PhaseAngle, tr.WindowTime, tr.HohmannTime, tr.SynodicPeriod, tr.DepartureΔv, tr.ArrivalΔv, tr.HohmannPhase, tr.Separation) {
		return nil, errorsmod.Wrapf(ErrComputation, "non finite result for %s -> %s: %+v", departure, arrival, tr)
	}
	return &tr, nil
}
