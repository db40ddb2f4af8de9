package xferwin

import (
	"strings"

	errorsmod "cosmossdk.io/errors"
)

const (
	// AU is one astronomical unit in meters.
	AU = 1.49597870700e11
	// SunMass is the mass of the Sun in kilograms.
	SunMass = 1.989e30
)

// catalogEntry is a known planet around the Sun.
type catalogEntry struct {
	Name string
	a    float64 // meters
	mass float64 // kg
}

/* Definitions, in orbital order. */
var catalog = []catalogEntry{
	{"Venus", 108208601e3, 4.8675e24},
	{"Earth", 149597870.7e3, 5.972e24},
	{"Mars", 227939366e3, 6.39e23},
	{"Jupiter", 778298361e3, 1.89813e27},
	{"Saturn", 1429394133e3, 5.6834e26},
	{"Uranus", 2875038615e3, 8.6813e25},
	{"Pluto", 5915799000e3, 1.303e22}, // Not a planet, but still a valid target.
}

// BodyFromString returns the catalog body orbiting the Sun from its name (case insensitive),
// starting at the provided initial mean anomaly in degrees.
func BodyFromString(name string, θ0 float64) (OrbitingBody, error) {
	for _, entry := range catalog {
		if strings.EqualFold(entry.Name, strings.TrimSpace(name)) {
			return NewOrbitingBody(entry.Name, entry.a, entry.mass, SunMass, θ0), nil
		}
	}
	return OrbitingBody{}, errorsmod.Wrapf(ErrUnknownBody, "undefined planet '%s'", name)
}

// Catalog returns all the known bodies, starting at a zero mean anomaly.
func Catalog() []OrbitingBody {
	bodies := make([]OrbitingBody, len(catalog))
	for i, entry := range catalog {
		bodies[i] = NewOrbitingBody(entry.Name, entry.a, entry.mass, SunMass, 0)
	}
	return bodies
}
