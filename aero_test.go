package perfsim

import (
	"math"
	"testing"

	"github.com/gonum/floats"
)

func TestLiftCoeffSteady(t *testing.T) {
	// In steady flight the lift built from the returned coefficient must
	// carry the weight.
	vCAS, alt, weight := 130.0, 2000.0, MTOW
	cl := LiftCoeffSteady(vCAS, alt, weight, WingArea)
	rho := atmosphereAt(alt).Density
	vTAS := CAS2TAS(vCAS, alt)
	lift := 0.5 * rho * WingArea * vTAS * vTAS * cl
	if !floats.EqualWithinAbs(lift/weight, 1.0, 1e-3) {
		t.Fatalf("lift %f does not balance weight %f (cl=%f)", lift, weight, cl)
	}
}

func TestDragGrowsWithLift(t *testing.T) {
	d0 := Drag(130, 2000, 0.4, WingArea)
	d1 := Drag(130, 2000, 0.8, WingArea)
	if d1 <= d0 {
		t.Fatalf("induced drag must grow with cl: %f <= %f", d1, d0)
	}
	// Zero lift leaves the parasitic term only.
	rho := atmosphereAt(2000).Density
	vTAS := CAS2TAS(130, 2000)
	want := 0.5 * rho * WingArea * vTAS * vTAS * cD0
	if got := Drag(130, 2000, 0, WingArea); !floats.EqualWithinAbs(got, want, 1e-6) {
		t.Fatalf("Drag(cl=0) = %f, want %f", got, want)
	}
}

func TestAoASteadyInvertsLiftModel(t *testing.T) {
	vCAS, alt, weight := 150.0, 5000.0, 3.0e6
	aoa := AoASteady(vCAS, alt, weight, WingArea)
	cl := cL0 + cLAlpha*aoa
	if !floats.EqualWithinAbs(cl, LiftCoeffSteady(vCAS, alt, weight, WingArea), 1e-9) {
		t.Fatalf("aoa %f does not reproduce the steady lift coefficient", aoa)
	}
}

func TestGammaSteady(t *testing.T) {
	if g := GammaSteady(300e3, 300e3, 3.6e6); g != 0 {
		t.Fatalf("thrust = drag must give level flight, got %f", g)
	}
	if g := GammaSteady(200e3, 300e3, 3.6e6); g >= 0 {
		t.Fatalf("thrust deficit must give a negative path angle, got %f", g)
	}
	want := math.Asin(0.1)
	if g := GammaSteady(660e3, 300e3, 3.6e6); !floats.EqualWithinAbs(g, want, 1e-12) {
		t.Fatalf("GammaSteady = %f, want %f", g, want)
	}
}
