package perfsim

import (
	"testing"

	"github.com/gonum/floats"
)

func TestTurbofanSeaLevelStatic(t *testing.T) {
	eng := NewTurbofan(MaxThrustSESL, BypassRatio)
	// The lapse polynomial evaluates to exactly 1 at δ = 1, M = 0.
	if got := eng.MaxThrust(0, 0); got != MaxThrustSESL {
		t.Fatalf("sea-level static thrust = %f, want %f", got, MaxThrustSESL)
	}
}

func TestTurbofanLapse(t *testing.T) {
	eng := NewTurbofan(MaxThrustSESL, BypassRatio)
	// Thrust decays with altitude at constant Mach.
	prev := eng.MaxThrust(0, 0.4)
	for _, alt := range []float64{3000.0, 7000.0, 11000.0} {
		cur := eng.MaxThrust(alt, 0.4)
		if cur >= prev {
			t.Fatalf("thrust must lapse with altitude: %f >= %f at %f m", cur, prev, alt)
		}
		prev = cur
	}
	// And with Mach at constant altitude, in the high-bypass regime.
	if eng.MaxThrust(9000, 0.8) >= eng.MaxThrust(9000, 0.3) {
		t.Fatal("thrust must decay with Mach at altitude")
	}
}

func TestTurbofanFuelFlow(t *testing.T) {
	eng := NewTurbofan(MaxThrustSESL, BypassRatio)
	// Sea-level static TSFC is exactly 11 mg/s/N.
	if got := eng.FuelFlow(270e3, 0, 0); !floats.EqualWithinAbs(got, 11*270e3, 1e-6) {
		t.Fatalf("static fuel flow = %f, want %f", got, 11*270e3)
	}
	// Flow grows with Mach and shrinks with the colder air aloft.
	if eng.FuelFlow(200e3, 0.8, 0) <= eng.FuelFlow(200e3, 0.2, 0) {
		t.Fatal("fuel flow must grow with Mach")
	}
	if eng.FuelFlow(200e3, 0.5, 11000) >= eng.FuelFlow(200e3, 0.5, 0) {
		t.Fatal("fuel flow must shrink at altitude")
	}
	// Negative force-balance thrust yields a negative flow; the sign is the
	// caller's problem.
	if eng.FuelFlow(-50e3, 0.3, 1000) >= 0 {
		t.Fatal("negative thrust must yield negative flow")
	}
}
