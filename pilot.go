package perfsim

import "math"

// SpeedTarget defines an enum of the pilot law's speed-hold states.
type SpeedTarget uint8

const (
	// HoldIAS tracks the constant reference calibrated airspeed.
	HoldIAS SpeedTarget = iota + 1
	// HoldMach tracks the CAS equivalent of the cruise Mach at the current
	// altitude.
	HoldMach
)

func (s SpeedTarget) String() string {
	switch s {
	case HoldIAS:
		return "IAS"
	case HoldMach:
		return "Mach"
	}
	panic("cannot stringify unknown speed target")
}

// PitchController is the proportional pilot pitch law. It maps the airspeed
// error to a pitch command about the trim attitude, tracking either the
// constant reference IAS or the cruise Mach depending on phase and on which
// side of the crossover the aircraft currently flies. The switch is a pure
// instantaneous condition check, with no hysteresis.
type PitchController struct {
	Gain       float64 // rad per (m/s) of airspeed error
	TrimPitch  float64 // rad, trim attitude at phase start
	RefCAS     float64 // m/s, constant-speed segment target
	CruiseMach float64
}

// Target returns which speed reference the law tracks for the given
// instantaneous IAS (m/s) and altitude (m).
func (c PitchController) Target(vIAS, altitude float64, phase Phase) SpeedTarget {
	switch phase {
	case Climb:
		if round2(CAS2Mach(vIAS, altitude)) < c.CruiseMach {
			return HoldIAS
		}
		return HoldMach
	default: // descent: mirror of the climb logic
		// Half-to-even: an exactly-.5 IAS must round the same way the cached
		// trajectories were produced.
		if math.RoundToEven(vIAS) < c.RefCAS {
			return HoldMach
		}
		return HoldIAS
	}
}

// Pitch returns the commanded pitch attitude in rad for the given
// instantaneous IAS (m/s) and altitude (m).
func (c PitchController) Pitch(vIAS, altitude float64, phase Phase) float64 {
	var vError float64
	switch c.Target(vIAS, altitude, phase) {
	case HoldIAS:
		vError = vIAS - c.RefCAS
	case HoldMach:
		vSound := atmosphereAt(altitude).SpeedOfSound
		vError = vIAS - TAS2CAS(c.CruiseMach*vSound, altitude)
	}
	return c.Gain*vError + c.TrimPitch
}
