package xferwin

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestNewTransfer(t *testing.T) {
	tr, err := NewTransfer(earth, mars, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if tr.PhaseAngle != 0 {
		t.Fatalf("phase angle %f != 0", tr.PhaseAngle)
	}
	if tr.WindowTime != 0 {
		t.Fatalf("window time %f != 0", tr.WindowTime)
	}
	if tr.HohmannTime != HohmannTransferTime(earth, mars) {
		t.Fatal("incorrect Hohmann time")
	}
	if !tr.Departure.Equals(earth) || !tr.Arrival.Equals(mars) {
		t.Fatal("bodies were modified")
	}
	// The elapsed time only changes the phase angle and separation.
	later, err := NewTransfer(earth, mars, 100*86400, 0)
	if err != nil {
		t.Fatal(err)
	}
	if later.WindowTime != tr.WindowTime || later.HohmannTime != tr.HohmannTime {
		t.Fatal("elapsed time changed the window or Hohmann time")
	}
	if !scalar.EqualWithinAbs(later.PhaseAngle, PhaseAngle(earth, mars, 100*86400), 1e-12) {
		t.Fatalf("phase angle %f", later.PhaseAngle)
	}
}

func TestNewTransferErrors(t *testing.T) {
	if tr, err := NewTransfer(earth, earth, 0, 0); !errors.Is(err, ErrDegenerateOrbit) || tr != nil {
		t.Fatalf("expected a degenerate orbit error, got %v", err)
	}
	collapsed := NewOrbitingBody("collapsed", 0, 1, 1.989e30, 0)
	if tr, err := NewTransfer(collapsed, mars, 0, 0); !errors.Is(err, ErrComputation) || tr != nil {
		t.Fatalf("expected a computation error, got %v", err)
	}
}
