package xferwin

import (
	"fmt"
	"math"

	"github.com/soniakeys/unit"
	"gonum.org/v1/gonum/mat"
)

const (
	// G is the Newtonian constant of gravitation in m^3 kg^-1 s^-2.
	G = 6.67430e-11
)

// OrbitingBody is one body on a circular, coplanar orbit around a central mass.
// All fields are SI. It is a value type and is never mutated by any calculation.
type OrbitingBody struct {
	Name          string
	SemiMajorAxis float64 // meters
	Mass          float64 // kilograms, not used by any calculation
	CentralMass   float64 // kilograms
	θ0            float64 // initial mean anomaly, radians
}

// NewOrbitingBody returns a new body. The initial mean anomaly is provided in degrees.
// Nothing is validated here, that's the job of whoever collects the inputs.
func NewOrbitingBody(name string, a, mass, centralMass, θ0 float64) OrbitingBody {
	return OrbitingBody{name, a, mass, centralMass, unit.AngleFromDeg(θ0).Rad()}
}

// InitialMeanAnomaly returns θ0 in radians.
func (b OrbitingBody) InitialMeanAnomaly() float64 {
	return b.θ0
}

// GM returns the gravitational parameter of the central mass in m^3/s^2.
func (b OrbitingBody) GM() float64 {
	return G * b.CentralMass
}

// OrbitalPeriod returns the period in seconds from Kepler's third law.
func (b OrbitingBody) OrbitalPeriod() float64 {
	return 2 * math.Pi * math.Sqrt(math.Pow(b.SemiMajorAxis, 3)/b.GM())
}

// MeanMotion returns n = 2π/T in radians per second.
func (b OrbitingBody) MeanMotion() float64 {
	return 2 * math.Pi / b.OrbitalPeriod()
}

// MeanLongitudeAtTime returns the mean longitude in radians after t seconds.
// The result is *not* wrapped to [0, 2π) and t may be negative.
func (b OrbitingBody) MeanLongitudeAtTime(t float64) float64 {
	return b.θ0 + b.MeanMotion()*t
}

// CircularVelocity returns the orbital speed in m/s.
func (b OrbitingBody) CircularVelocity() float64 {
	return math.Sqrt(b.GM() / b.SemiMajorAxis)
}

// Position returns the position in the orbital plane (meters) after t seconds, with
// the x axis along the zero longitude direction.
func (b OrbitingBody) Position(t float64) *mat.VecDense {
	sλ, cλ := math.Sincos(b.MeanLongitudeAtTime(t))
	return mat.NewVecDense(3, []float64{b.SemiMajorAxis * cλ, b.SemiMajorAxis * sλ, 0})
}

// Equals returns whether both bodies have the same parameters.
func (b OrbitingBody) Equals(o OrbitingBody) bool {
	return b == o
}

// String implements the Stringer interface.
func (b OrbitingBody) String() string {
	return fmt.Sprintf("%s (a=%.3f km, M=%.4e kg, θ0=%.3f deg)", b.Name, b.SemiMajorAxis/1e3, b.CentralMass, rad2deg(b.θ0))
}
