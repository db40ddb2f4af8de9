package xferwin

import (
	"math"
	"strings"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

var (
	earth = NewOrbitingBody("Earth", 149597870700, 5.972e24, 1.989e30, 0.0)
	mars  = NewOrbitingBody("Mars", 227939366000, 6.39e23, 1.989e30, 0.0)
)

func TestOrbitingBody(t *testing.T) {
	if earth.Name != "Earth" || earth.SemiMajorAxis != 149597870700 || earth.Mass != 5.972e24 || earth.CentralMass != 1.989e30 {
		t.Fatalf("incorrect fields: %+v", earth)
	}
	if earth.InitialMeanAnomaly() != 0 {
		t.Fatalf("θ0=%f != 0", earth.InitialMeanAnomaly())
	}
	b := NewOrbitingBody("Quarter", 1e11, 1e24, 1.989e30, 90)
	if !scalar.EqualWithinAbs(b.InitialMeanAnomaly(), math.Pi/2, 1e-15) {
		t.Fatalf("θ0 not converted to radians: %f", b.InitialMeanAnomaly())
	}
	if str := b.String(); !strings.Contains(str, "θ0=90.000 deg") {
		t.Fatalf("unexpected string %s", str)
	}
	if !earth.Equals(NewOrbitingBody("Earth", 149597870700, 5.972e24, 1.989e30, 0.0)) {
		t.Fatal("identical bodies differ")
	}
	if earth.Equals(mars) {
		t.Fatal("Earth equals Mars")
	}
}

func TestOrbitalPeriod(t *testing.T) {
	exp := 365.25 * 24 * 3600
	if got := earth.OrbitalPeriod(); !scalar.EqualWithinAbs(got, exp, 1e6) {
		t.Fatalf("Earth period got: %f\nexp: %f", got, exp)
	}
	for _, a := range []float64{1e3, 1e7, 1.5e11, 1e15} {
		for _, M := range []float64{1e20, 1.989e30, 1e40} {
			b := NewOrbitingBody("test", a, 1, M, 0)
			T := b.OrbitalPeriod()
			if T <= 0 || math.IsInf(T, 0) || math.IsNaN(T) {
				t.Fatalf("invalid period %f for a=%g M=%g", T, a, M)
			}
		}
	}
}

func TestMeanLongitudeAtTime(t *testing.T) {
	exp := deg2rad(360 / 365.25)
	if got := earth.MeanLongitudeAtTime(86400); !scalar.EqualWithinAbs(got, exp, 1e-5) {
		t.Fatalf("daily motion got: %f\nexp: %f", got, exp)
	}
	if earth.MeanLongitudeAtTime(-86400) != -earth.MeanLongitudeAtTime(86400) {
		t.Fatal("negative time is not symmetric")
	}
	// Not wrapped.
	got := earth.MeanLongitudeAtTime(10 * earth.OrbitalPeriod())
	if !scalar.EqualWithinRel(got, 20*math.Pi, 1e-12) {
		t.Fatalf("after ten periods got: %f\nexp: %f", got, 20*math.Pi)
	}
	offset := NewOrbitingBody("offset", earth.SemiMajorAxis, earth.Mass, earth.CentralMass, 45)
	if !scalar.EqualWithinAbs(offset.MeanLongitudeAtTime(0), math.Pi/4, 1e-15) {
		t.Fatalf("λ(0) != θ0: %f", offset.MeanLongitudeAtTime(0))
	}
}

func TestPositionAndVelocity(t *testing.T) {
	R := earth.Position(0)
	if R.AtVec(0) != earth.SemiMajorAxis || R.AtVec(1) != 0 || R.AtVec(2) != 0 {
		t.Fatalf("incorrect initial position %v", R.RawVector().Data)
	}
	quarter := earth.Position(earth.OrbitalPeriod() / 4)
	if !scalar.EqualWithinAbs(quarter.AtVec(0), 0, 1) || !scalar.EqualWithinRel(quarter.AtVec(1), earth.SemiMajorAxis, 1e-12) {
		t.Fatalf("incorrect position after a quarter period %v", quarter.RawVector().Data)
	}
	// ~29.78 km/s
	if v := earth.CircularVelocity(); !scalar.EqualWithinAbs(v, 29.78e3, 50) {
		t.Fatalf("Earth velocity %f m/s", v)
	}
}
