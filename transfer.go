package xferwin

import (
	"math"

	errorsmod "cosmossdk.io/errors"
	"github.com/soniakeys/unit"
	"gonum.org/v1/gonum/mat"
)

const (
	degenerateε = 1e-10 // deg/s, below which both mean motions are considered equal
)

// PhaseAngle returns the angle in degrees, in [0, 360), from b1 to b2 after t seconds,
// measured in the direction of increasing longitude.
func PhaseAngle(b1, b2 OrbitingBody, t float64) float64 {
	λ1 := unit.Angle(b1.MeanLongitudeAtTime(t)).Deg()
	λ2 := unit.Angle(b2.MeanLongitudeAtTime(t)).Deg()
	return wrap360(λ2 - λ1)
}

// phaseRate returns n2 - n1 in degrees per second, or an error if both are indistinguishable.
func phaseRate(b1, b2 OrbitingBody) (float64, error) {
	n1 := 360 / b1.OrbitalPeriod()
	n2 := 360 / b2.OrbitalPeriod()
	Δn := n2 - n1
	if math.Abs(Δn) < degenerateε {
		return 0, errorsmod.Wrapf(ErrDegenerateOrbit, "%s and %s have nearly identical orbital periods (|Δn|=%g deg/s)", b1.Name, b2.Name, math.Abs(Δn))
	}
	return Δn, nil
}

// TransferWindowTime returns the time in seconds, counted from t=0, at which the phase
// angle from b1 to b2 reaches targetPhase (degrees). Use a target of zero for the next
// conjunction.
// NOTE: when b1 is the inner (faster) body, Δn < 0 so the phase angle decreases and the
// returned time is negative. When b1 is the outer body, it is non-negative. This is kept
// as is: the caller decides which body is the departure.
func TransferWindowTime(b1, b2 OrbitingBody, targetPhase float64) (float64, error) {
	Δn, err := phaseRate(b1, b2)
	if err != nil {
		return 0, err
	}
	φ0 := PhaseAngle(b1, b2, 0)
	Δφ := wrap360(targetPhase - φ0)
	return Δφ / Δn, nil
}

// NextConjunction is TransferWindowTime with a zero target phase.
func NextConjunction(b1, b2 OrbitingBody) (float64, error) {
	return TransferWindowTime(b1, b2, 0)
}

// SynodicPeriod returns the time in seconds between two identical phase angles.
func SynodicPeriod(b1, b2 OrbitingBody) (float64, error) {
	Δn, err := phaseRate(b1, b2)
	if err != nil {
		return 0, err
	}
	return 360 / math.Abs(Δn), nil
}

// HohmannTransferTime returns the time of flight in seconds of a Hohmann transfer from b1's
// orbit to b2's, i.e. half the period of the transfer ellipse.
// The central mass is read from b1 only: both bodies are expected to orbit the same mass
// (cf. SameCentralMass).
func HohmannTransferTime(b1, b2 OrbitingBody) float64 {
	aTransfer := 0.5 * (b1.SemiMajorAxis + b2.SemiMajorAxis)
	return math.Pi * math.Sqrt(math.Pow(aTransfer, 3)/b1.GM())
}

// HohmannDeltaV returns the magnitude in m/s of the departure and arrival burns of a
// Hohmann transfer from b1's orbit to b2's.
func HohmannDeltaV(b1, b2 OrbitingBody) (departure, arrival float64) {
	μ := b1.GM()
	rI := b1.SemiMajorAxis
	rF := b2.SemiMajorAxis
	aTransfer := 0.5 * (rI + rF)
	vDeparture := math.Sqrt((2 * μ / rI) - (μ / aTransfer))
	vArrival := math.Sqrt((2 * μ / rF) - (μ / aTransfer))
	departure = math.Abs(vDeparture - math.Sqrt(μ/rI))
	arrival = math.Abs(math.Sqrt(μ/rF) - vArrival)
	return
}

// HohmannPhaseAngle returns the phase angle in degrees from b1 to b2 at departure such that a
// Hohmann transfer arrives when b2 is there. It may be used as the TransferWindowTime target.
func HohmannPhaseAngle(b1, b2 OrbitingBody) float64 {
	n2 := 360 / b2.OrbitalPeriod()
	return wrap360(180 - n2*HohmannTransferTime(b1, b2))
}

// Separation returns the distance in meters between both bodies after t seconds.
func Separation(b1, b2 OrbitingBody, t float64) float64 {
	Δr := mat.NewVecDense(3, nil)
	Δr.SubVec(b2.Position(t), b1.Position(t))
	return mat.Norm(Δr, 2)
}

// SameCentralMass returns whether both bodies orbit the same mass.
func SameCentralMass(b1, b2 OrbitingBody) bool {
	return b1.CentralMass == b2.CentralMass
}
