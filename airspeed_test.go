package perfsim

import (
	"testing"

	"github.com/gonum/floats"
)

func TestAirspeedRoundTrip(t *testing.T) {
	for _, alt := range []float64{0, 2000, 5000, 8000, 11000} {
		for _, cas := range []float64{80, 130, 160, 220} {
			tas := CAS2TAS(cas, alt)
			back := TAS2CAS(tas, alt)
			// Both conversions round to 2 decimals, so the round trip
			// cannot be exact.
			if !floats.EqualWithinAbs(back, cas, 0.02) {
				t.Fatalf("cas=%f alt=%f: round trip returned %f", cas, alt, back)
			}
		}
	}
}

func TestAirspeedSeaLevelIdentity(t *testing.T) {
	// At sea level CAS and TAS coincide.
	if tas := CAS2TAS(130, 0); !floats.EqualWithinAbs(tas, 130, 0.01) {
		t.Fatalf("CAS2TAS(130, 0) = %f", tas)
	}
	if CAS2TAS(0, 5000) != 0 {
		t.Fatal("zero CAS must convert to zero TAS")
	}
}

func TestAirspeedAltitudeEffect(t *testing.T) {
	// TAS exceeds CAS in thinner air.
	prev := 130.0
	for _, alt := range []float64{1000, 4000, 8000} {
		tas := CAS2TAS(130, alt)
		if tas <= prev {
			t.Fatalf("TAS must grow with altitude at constant CAS, got %f at %f m", tas, alt)
		}
		prev = tas
	}
}

func TestTAS2Mach(t *testing.T) {
	// The speed of sound at sea level is ~340.29 m/s.
	if mach := TAS2Mach(340.29, 0); !floats.EqualWithinAbs(mach, 1.0, 0.001) {
		t.Fatalf("TAS2Mach(340.29, 0) = %f, want ~1", mach)
	}
	if mach := TAS2Mach(170.15, 0); !floats.EqualWithinAbs(mach, 0.5, 0.001) {
		t.Fatalf("TAS2Mach(170.15, 0) = %f, want ~0.5", mach)
	}
}

func TestCAS2MachConsistent(t *testing.T) {
	// CAS2Mach must agree with converting to TAS first.
	for _, alt := range []float64{0, 3000, 9000} {
		direct := CAS2Mach(150, alt)
		viaTAS := TAS2Mach(CAS2TAS(150, alt), alt)
		if !floats.EqualWithinAbs(direct, viaTAS, 0.002) {
			t.Fatalf("alt=%f: CAS2Mach=%f, via TAS=%f", alt, direct, viaTAS)
		}
	}
}
