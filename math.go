package xferwin

import (
	"math"

	"github.com/soniakeys/unit"
)

// deg2rad converts degrees to radians and only returns values in [0, 2π).
func deg2rad(a float64) float64 {
	return unit.AngleFromDeg(a).Mod1().Rad()
}

// rad2deg converts radians to degrees and only returns values in [0, 360).
func rad2deg(a float64) float64 {
	return wrap360(unit.Angle(a).Deg())
}

// wrap360 is a true modulo 360: the result is in [0, 360) for any finite input.
func wrap360(a float64) float64 {
	φ := unit.PMod(a, 360)
	if φ >= 360 {
		// PMod adds 360 to tiny negative remainders, which may round up to 360.
		φ = 0
	}
	return φ
}

// isFinite returns whether all the provided values are neither NaN nor infinite.
func isFinite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
