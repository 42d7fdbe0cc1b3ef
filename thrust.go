package perfsim

import "math"

// Engine defines the propulsion model interface.
type Engine interface {
	// MaxThrust returns the maximum available thrust in N at the given
	// altitude (m) and Mach number.
	MaxThrust(altitude, mach float64) float64
	// FuelFlow returns the fuel flow in mg/s for the given thrust (N) at the
	// given Mach number and altitude (m).
	FuelFlow(thrust, mach, altitude float64) float64
}

// Turbofan is an empirical high-bypass turbofan model. The thrust lapse is a
// polynomial fit in the pressure ratio δ = P_h/P_sl combined with Mach terms
// scaled by the bypass ratio; the TSFC grows linearly with Mach and with the
// square root of the temperature ratio θ = T_h/T_sl.
type Turbofan struct {
	SeaLevelThrust float64 // max thrust of one engine at sea level, static, in N
	BypassRatio    float64
}

// NewTurbofan returns the turbofan model for the given sea-level thrust (N)
// and bypass ratio.
func NewTurbofan(seaLevelThrust, bypassRatio float64) Turbofan {
	return Turbofan{SeaLevelThrust: seaLevelThrust, BypassRatio: bypassRatio}
}

// MaxThrust implements the Engine interface. Rounded to 4 decimal places.
func (e Turbofan) MaxThrust(altitude, mach float64) float64 {
	bpr := e.BypassRatio
	g0 := 0.6375 + 0.0604*bpr

	delta := atmosphereAt(altitude).Pressure / atmosphereAt(0).Pressure

	a := -0.4327*delta*delta + 1.3855*delta + 0.0472
	x := 0.9106*delta*delta*delta - 1.7736*delta*delta + 1.8697*delta
	z := 0.1377*delta*delta*delta - 0.4374*delta*delta + 1.3003*delta

	machTerm := z * mach * (0.377 * (1 + bpr)) / math.Sqrt(g0*(1+0.82*bpr))
	ramTerm := (0.23 + 0.19*math.Sqrt(bpr)) * x * mach * mach

	return round4((a - machTerm + ramTerm) * e.SeaLevelThrust)
}

// FuelFlow implements the Engine interface. The thrust-specific fuel
// consumption is c_t = 11·(1+M)·√θ in mg/s per N; the returned flow is in
// mg/s, rounded to 4 decimal places. A force-balance thrust can come out
// negative on a steep glide; callers burn |flow·dt| so fuel mass never grows.
func (e Turbofan) FuelFlow(thrust, mach, altitude float64) float64 {
	theta := atmosphereAt(altitude).Temperature / atmosphereAt(0).Temperature
	ct := 11 * (1 + mach) * math.Sqrt(theta)
	return round4(ct * thrust)
}
