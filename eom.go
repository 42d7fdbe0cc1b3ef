package perfsim

import "math"

/* Point-mass equations of motion for quasi-steady climb and descent. */

// DvDt returns the instantaneous rate of change of true airspeed in m/s^2
// for the given thrust (N), drag (N), weight (N) and flight-path angle (rad).
// Rounded to 4 decimal places.
func DvDt(thrust, drag, weight, gamma float64) float64 {
	return round4((Grav / weight) * (thrust - drag - weight*math.Sin(gamma)))
}

// DGammaDt returns the instantaneous rate of change of the flight-path angle
// in rad/s for the given lift (N), weight (N) and true airspeed (m/s).
// The relation divides by v_tas: near-zero airspeed is a model singularity
// and is not guarded.
func DGammaDt(lift, weight, vTAS float64) float64 {
	return (Grav / weight) * (1 / vTAS) * (lift - weight)
}
