package perfsim

import "math"

// Drag polar of the reference transport: C_D = cD0 + kInduced·C_L².
const (
	cD0      = 0.025
	kInduced = 0.045
)

// Linear small-angle lift slope used by the step loop: C_L = cL0 + cLAlpha·α.
// This is intentionally distinct from LiftCoeffSteady, which solves the exact
// lift equation and is only used to initialize the trim state.
const (
	cL0     = 0.03
	cLAlpha = 4.4
)

// LiftCoeffSteady returns the steady-flight lift coefficient for the given
// calibrated airspeed (m/s), altitude (m), weight (N) and wing area (m^2),
// assuming lift equals weight. Rounded to 4 decimal places.
func LiftCoeffSteady(vCAS, altitude, weight, wingArea float64) float64 {
	rho := atmosphereAt(altitude).Density
	vTAS := CAS2TAS(vCAS, altitude)
	return round4(2 * weight / (rho * wingArea * vTAS * vTAS))
}

// Drag returns the drag force in N for the given calibrated airspeed (m/s),
// altitude (m), lift coefficient and wing area (m^2).
func Drag(vCAS, altitude, cl, wingArea float64) float64 {
	rho := atmosphereAt(altitude).Density
	vTAS := CAS2TAS(vCAS, altitude)
	cd := cD0 + kInduced*cl*cl
	return 0.5 * rho * wingArea * vTAS * vTAS * cd
}

// AoASteady returns the steady straight-flight angle of attack in rad, from
// the inverse of the linear lift model evaluated at the steady lift
// coefficient.
func AoASteady(vCAS, altitude, weight, wingArea float64) float64 {
	return (LiftCoeffSteady(vCAS, altitude, weight, wingArea) - cL0) / cLAlpha
}

// GammaSteady returns the steady straight-flight path angle in rad from the
// longitudinal force balance thrust − drag = weight·sin(γ).
func GammaSteady(thrust, drag, weight float64) float64 {
	return math.Asin((thrust - drag) / weight)
}
