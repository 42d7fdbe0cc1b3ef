package perfsim

import "math"

/* Compressible-flow airspeed conversions. IAS is treated as CAS throughout. */

// CAS2TAS converts a calibrated airspeed (m/s) at the given altitude (m) to
// true airspeed using the compressible pitot-static relation for dry air
// (γ=1.4). The result is rounded to 2 decimal places.
func CAS2TAS(vCAS, altitude float64) float64 {
	atmH := atmosphereAt(altitude)
	atmSL := atmosphereAt(0)

	gr := heatCapRatio / (heatCapRatio - 1)
	p1 := 1 + (atmSL.Density/atmSL.Pressure)*vCAS*vCAS/(2*gr)
	p2 := math.Pow(p1, gr)
	p3 := math.Pow(1+(atmSL.Pressure/atmH.Pressure)*(p2-1), 1/gr)
	return round2(math.Sqrt(2 * gr * (atmH.Pressure / atmH.Density) * (p3 - 1)))
}

// TAS2CAS is the algebraic inverse of CAS2TAS, rounded to 2 decimal places.
func TAS2CAS(vTAS, altitude float64) float64 {
	atmH := atmosphereAt(altitude)
	atmSL := atmosphereAt(0)

	gr := heatCapRatio / (heatCapRatio - 1)
	p1 := 1 + (atmH.Density/atmH.Pressure)*vTAS*vTAS/(2*gr)
	p2 := math.Pow(p1, gr) - 1
	p3 := math.Pow((atmH.Pressure/atmSL.Pressure)*p2+1, 1/gr)
	return round2(math.Sqrt(2 * gr * (atmSL.Pressure / atmSL.Density) * (p3 - 1)))
}

// CAS2Mach converts a calibrated airspeed (m/s) at the given altitude to a
// Mach number, rounded to 3 decimal places.
func CAS2Mach(vCAS, altitude float64) float64 {
	return round3(CAS2TAS(vCAS, altitude) / atmosphereAt(altitude).SpeedOfSound)
}

// TAS2Mach converts a true airspeed (m/s) at the given altitude to a Mach
// number, rounded to 3 decimal places.
func TAS2Mach(vTAS, altitude float64) float64 {
	return round3(vTAS / atmosphereAt(altitude).SpeedOfSound)
}
