package perfsim

import (
	"testing"

	"github.com/gonum/floats"
)

func TestSpeedTargetString(t *testing.T) {
	if HoldIAS.String() != "IAS" || HoldMach.String() != "Mach" {
		t.Fatal("unexpected speed target strings")
	}
	assertPanic(t, func() { _ = SpeedTarget(0).String() })
}

func TestPitchTargetClimb(t *testing.T) {
	ctrl := PitchController{Gain: 0.01, RefCAS: 160, CruiseMach: 0.85}
	// Low and slow: well below the cruise Mach, hold IAS.
	if got := ctrl.Target(160, 0, Climb); got != HoldIAS {
		t.Fatalf("low-altitude climb target = %s, want IAS", got)
	}
	// Near the tropopause the same CAS exceeds the cruise Mach.
	if got := ctrl.Target(260, 10500, Climb); got != HoldMach {
		t.Fatalf("high-altitude climb target = %s, want Mach", got)
	}
}

func TestPitchTargetDescent(t *testing.T) {
	ctrl := PitchController{Gain: 0.01, RefCAS: 130, CruiseMach: 0.85}
	if got := ctrl.Target(125, 9000, Descent); got != HoldMach {
		t.Fatalf("fast descent target = %s, want Mach", got)
	}
	if got := ctrl.Target(135, 4000, Descent); got != HoldIAS {
		t.Fatalf("slow descent target = %s, want IAS", got)
	}
	// The IAS is rounded before the comparison, so 129.6 already counts as
	// at-reference.
	if got := ctrl.Target(129.6, 4000, Descent); got != HoldIAS {
		t.Fatalf("rounded descent target = %s, want IAS", got)
	}
}

func TestPitchTargetDescentHalfToEven(t *testing.T) {
	// Exactly-.5 IAS values round half to even: 130.5 rounds down to 130,
	// staying below a 131 m/s reference.
	ctrl := PitchController{Gain: 0.01, RefCAS: 131, CruiseMach: 0.85}
	if got := ctrl.Target(130.5, 4000, Descent); got != HoldMach {
		t.Fatalf("target at 130.5 = %s, want Mach", got)
	}
	if got := ctrl.Target(131.5, 4000, Descent); got != HoldIAS {
		t.Fatalf("target at 131.5 = %s, want IAS", got)
	}
}

func TestPitchCommand(t *testing.T) {
	ctrl := PitchController{Gain: 0.01, TrimPitch: 0.08, RefCAS: 160, CruiseMach: 0.85}
	// On speed, on the IAS segment: the command is the trim attitude.
	if got := ctrl.Pitch(160, 0, Climb); !floats.EqualWithinAbs(got, 0.08, 1e-12) {
		t.Fatalf("on-speed pitch = %f, want trim", got)
	}
	// Flying fast pitches up, flying slow pitches down.
	if got := ctrl.Pitch(165, 0, Climb); !floats.EqualWithinAbs(got, 0.08+0.05, 1e-12) {
		t.Fatalf("fast pitch = %f", got)
	}
	if got := ctrl.Pitch(155, 0, Climb); !floats.EqualWithinAbs(got, 0.08-0.05, 1e-12) {
		t.Fatalf("slow pitch = %f", got)
	}
}
