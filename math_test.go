package xferwin

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestAngles(t *testing.T) {
	if !scalar.EqualWithinAbs(deg2rad(-90), 3*math.Pi/2, 1e-12) {
		t.Fatalf("deg2rad(-90)=%f", deg2rad(-90))
	}
	if !scalar.EqualWithinAbs(deg2rad(450), math.Pi/2, 1e-12) {
		t.Fatalf("deg2rad(450)=%f", deg2rad(450))
	}
	if !scalar.EqualWithinAbs(rad2deg(-math.Pi/2), 270, 1e-12) {
		t.Fatalf("rad2deg(-π/2)=%f", rad2deg(-math.Pi/2))
	}
	for _, a := range []float64{-1e-14, -720, -90, 0, 359.9999999999999, 360, 720.5, 1e12} {
		if φ := wrap360(a); φ < 0 || φ >= 360 {
			t.Fatalf("wrap360(%g)=%f out of range", a, φ)
		}
	}
	if φ := wrap360(-90); φ != 270 {
		t.Fatalf("wrap360(-90)=%f", φ)
	}
	if φ := wrap360(720.5); !scalar.EqualWithinAbs(φ, 0.5, 1e-12) {
		t.Fatalf("wrap360(720.5)=%f", φ)
	}
}

func TestIsFinite(t *testing.T) {
	if !isFinite(0, -1, 1e300) {
		t.Fatal("finite values reported as non finite")
	}
	if isFinite(1, math.NaN()) || isFinite(math.Inf(-1)) {
		t.Fatal("non finite values reported as finite")
	}
}
