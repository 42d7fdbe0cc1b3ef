package perfsim

import (
	"math"
	"testing"

	"github.com/gonum/floats"
)

func TestDvDt(t *testing.T) {
	// Force balance: zero excess thrust in level flight means no
	// acceleration.
	if got := DvDt(300e3, 300e3, 3.6e6, 0); got != 0 {
		t.Fatalf("balanced DvDt = %f, want 0", got)
	}
	// Excess thrust of 0.1 W in level flight accelerates at 0.1 g.
	want := round4(0.1 * Grav)
	if got := DvDt(660e3, 300e3, 3.6e6, 0); !floats.EqualWithinAbs(got, want, 1e-12) {
		t.Fatalf("DvDt = %f, want %f", got, want)
	}
	// A climb gradient eats into the acceleration.
	if DvDt(660e3, 300e3, 3.6e6, 0.05) >= DvDt(660e3, 300e3, 3.6e6, 0) {
		t.Fatal("climbing must reduce acceleration at equal excess thrust")
	}
}

func TestDGammaDt(t *testing.T) {
	// Lift equal to weight keeps the path angle constant.
	if got := DGammaDt(3.6e6, 3.6e6, 150); got != 0 {
		t.Fatalf("balanced DGammaDt = %f, want 0", got)
	}
	// 1% excess lift at 150 m/s curves the path up at g/(100 v).
	want := Grav / (100 * 150)
	if got := DGammaDt(3.636e6, 3.6e6, 150); !floats.EqualWithinAbs(got, want, 1e-9) {
		t.Fatalf("DGammaDt = %f, want %f", got, want)
	}
	if DGammaDt(3.0e6, 3.6e6, 150) >= 0 {
		t.Fatal("lift deficit must curve the path down")
	}
	// The rate scales inversely with airspeed.
	if !floats.EqualWithinAbs(DGammaDt(3.636e6, 3.6e6, 300), want/2, 1e-9) {
		t.Fatal("rate must halve at double the airspeed")
	}
}

func TestDvDtMatchesDefinition(t *testing.T) {
	thrust, drag, weight, gamma := 500e3, 320e3, 3.2e6, 0.04
	want := round4(Grav / weight * (thrust - drag - weight*math.Sin(gamma)))
	if got := DvDt(thrust, drag, weight, gamma); got != want {
		t.Fatalf("DvDt = %f, want %f", got, want)
	}
}
