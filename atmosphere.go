package perfsim

import (
	"fmt"
	"math"
)

// International Standard Atmosphere constants, dry air.
const (
	seaLevelTemp     = 288.15   // K
	seaLevelPressure = 101325.0 // Pa
	seaLevelDensity  = 1.225    // kg/m^3
	lapseRate        = 0.0065   // K/m in the troposphere
	gasConstant      = 287.058  // J/(kg·K)
	heatCapRatio     = 1.4
	tropopauseAlt    = 11000.0 // m
	atmosphereCeil   = 20000.0 // m, isothermal layer top
)

// AtmProperties holds the standard-atmosphere properties at one altitude.
type AtmProperties struct {
	Density      float64 // kg/m^3
	Pressure     float64 // Pa
	Temperature  float64 // K
	SpeedOfSound float64 // m/s
}

// AtmosphereAt returns the ISA properties at the given geopotential altitude
// in meters. It covers the troposphere and the isothermal layer up to 20 km,
// which brackets every altitude the climb and descent phases can visit.
func AtmosphereAt(altitude float64) (AtmProperties, error) {
	if altitude < -100 || altitude > atmosphereCeil {
		return AtmProperties{}, fmt.Errorf("altitude %.1f m outside supported atmosphere range [-100, %.0f] m", altitude, atmosphereCeil)
	}
	var temp, pressure float64
	if altitude <= tropopauseAlt {
		temp = seaLevelTemp - lapseRate*altitude
		pressure = seaLevelPressure * math.Pow(temp/seaLevelTemp, Grav/(lapseRate*gasConstant))
	} else {
		temp = seaLevelTemp - lapseRate*tropopauseAlt
		pTropo := seaLevelPressure * math.Pow(temp/seaLevelTemp, Grav/(lapseRate*gasConstant))
		pressure = pTropo * math.Exp(-Grav*(altitude-tropopauseAlt)/(gasConstant*temp))
	}
	return AtmProperties{
		Density:      pressure / (gasConstant * temp),
		Pressure:     pressure,
		Temperature:  temp,
		SpeedOfSound: math.Sqrt(heatCapRatio * gasConstant * temp),
	}, nil
}

// atmosphereAt is the infallible variant used inside the step loop, where the
// altitude has already been produced by a step from a valid altitude. A step
// that walks out of the table is a programmer error upstream (the phase
// termination thresholds sit well inside the table).
func atmosphereAt(altitude float64) AtmProperties {
	atm, err := AtmosphereAt(altitude)
	if err != nil {
		panic(err)
	}
	return atm
}
