package perfsim

import "fmt"

// NonConvergenceError is returned when a simulation fails to reach its
// termination altitude within the configured iteration budget. Pathological
// parameter combinations never cross the altitude threshold, so the budget
// is a hard cap rather than a warning.
type NonConvergenceError struct {
	Phase     Phase
	Iteration uint64
	Last      State
}

func (e NonConvergenceError) Error() string {
	return fmt.Sprintf("%s simulation did not terminate within %d steps (last state: t=%s h=%.1f m v_tas=%.2f m/s γ=%.4f rad)",
		e.Phase, e.Iteration, e.Last.Elapsed, e.Last.Altitude, e.Last.TAS, e.Last.Gamma)
}

// UnitMismatchError is returned when a stored result carries units
// incompatible with the quantity being loaded. Units are never silently
// coerced.
type UnitMismatchError struct {
	Variable string
	Want     string
	Got      string
}

func (e UnitMismatchError) Error() string {
	return fmt.Sprintf("unit mismatch for %q: want %s, got %s", e.Variable, e.Want, e.Got)
}
