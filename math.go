package perfsim

import "math"

const (
	deg2rad = math.Pi / 180
	ft2m    = 0.3048
)

// roundN rounds v to n decimal places. Most intermediate quantities are
// rounded (speeds to 2, Mach to 3, coefficients and rates to 4 decimals) and
// cached trajectories are compared against freshly computed ones, so the
// rounding is part of the model, not cosmetics.
func roundN(v float64, n int) float64 {
	pow := math.Pow(10, float64(n))
	return math.Round(v*pow) / pow
}

func round2(v float64) float64 { return roundN(v, 2) }
func round3(v float64) float64 { return roundN(v, 3) }
func round4(v float64) float64 { return roundN(v, 4) }
