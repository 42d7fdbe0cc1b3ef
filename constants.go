package perfsim

// Process-wide aircraft and physical constants. These describe the reference
// four-engine transport used throughout the simulations.
const (
	// Grav is the standard gravitational acceleration in m/s^2.
	Grav = 9.80665
	// WingArea is the reference wing area in m^2.
	WingArea = 500.0
	// MTOW is the maximum take-off weight in N.
	MTOW = 3.6e6
	// FuelWeight is the usable fuel weight in N.
	FuelWeight = 1.6e6
	// MaxThrustSESL is the maximum sea-level thrust of a single engine in N.
	MaxThrustSESL = 270e3
	// BypassRatio of the reference turbofan.
	BypassRatio = 5.0
	// EngineCount on the reference aircraft.
	EngineCount = 4
)

const (
	// DefaultGlideslope is the final approach glideslope angle in radians (3°).
	DefaultGlideslope = 3 * deg2rad
	// DefaultScreenHeight is the approach termination altitude in m (35 ft).
	DefaultScreenHeight = 35 * ft2m
	// DefaultCruiseMach is the cruise Mach target used by the example scenarios.
	DefaultCruiseMach = 0.85
)
