package integrator

import "fmt"

// Euler defines an explicit (forward) Euler integrator. The scheme is
// deliberately first order: the flight-dynamics model it integrates is
// defined in terms of start-of-step rates applied over a fixed time step.
type Euler struct {
	X0        float64    // The initial x0.
	StepSize  float64    // The step size.
	MaxIter   uint64     // Hard cap on iterations; 0 means DefaultMaxIter.
	Integator Integrable // What is to be integrated.
}

// DefaultMaxIter bounds integrations whose stop condition never fires.
const DefaultMaxIter uint64 = 1e6

// NewEuler returns a new explicit Euler integrator instance.
func NewEuler(x0, stepSize float64, maxIter uint64, inte Integrable) (e *Euler) {
	if stepSize <= 0 {
		panic("config StepSize must be positive")
	}
	if inte == nil {
		panic("config Integator may not be nil")
	}
	if maxIter == 0 {
		maxIter = DefaultMaxIter
	}
	e = &Euler{X0: x0, StepSize: stepSize, MaxIter: maxIter, Integator: inte}
	return
}

// Solve solves the configured explicit Euler scheme.
// Returns the number of iterations performed and the last X_i, or an error if
// the iteration cap was exceeded before the Integrable asked to stop.
func (e *Euler) Solve() (uint64, float64, error) {
	iterNum := uint64(0)
	xi := e.X0
	for !e.Integator.Stop(iterNum) {
		if iterNum >= e.MaxIter {
			return iterNum, xi, fmt.Errorf("did not converge within %d iterations", e.MaxIter)
		}
		state := e.Integator.GetState()
		newState := make([]float64, len(state))
		for i, yDot := range e.Integator.Func(xi, state) {
			newState[i] = state[i] + yDot*e.StepSize
		}
		e.Integator.SetState(iterNum, newState)

		xi += e.StepSize
		iterNum++ // Don't forget to increment the number of iterations.
	}

	return iterNum, xi, nil
}
