package perfsim

import (
	"time"

	"github.com/gonum/matrix/mat64"
)

// State stores one accepted time step of a simulation.
type State struct {
	Elapsed    time.Duration
	Distance   float64 // horizontal distance flown, m
	Altitude   float64 // m
	Weight     float64 // N
	TAS        float64 // true airspeed, m/s
	IAS        float64 // indicated (= calibrated) airspeed, m/s
	Mach       float64
	Gamma      float64 // flight-path angle, rad
	FuelBurned float64 // cumulative fuel mass burned, kg
	AoA        float64 // angle of attack, rad
	Theta      float64 // pitch attitude, rad
	Thrust     float64 // total thrust, N (solved thrust in descent approach)
}

// Trajectory is the ordered time history of a simulation, one State per
// accepted step. It is append-only while the simulation runs and read-only
// once returned.
type Trajectory []State

// Last returns the final state of the trajectory.
func (tr Trajectory) Last() State {
	return tr[len(tr)-1]
}

// trajectoryCols is the column order of Matrix and of the serialized result
// documents.
var trajectoryCols = []string{"t", "x", "h", "w", "v_tas", "v_ias", "mach", "gamma", "fuel_burn", "aoa", "theta", "thrust"}

// Matrix returns the trajectory as a dense matrix, one row per state and one
// column per variable in trajectoryCols order, for downstream analysis.
func (tr Trajectory) Matrix() *mat64.Dense {
	m := mat64.NewDense(len(tr), len(trajectoryCols), nil)
	for i, st := range tr {
		m.SetRow(i, []float64{st.Elapsed.Seconds(), st.Distance, st.Altitude, st.Weight,
			st.TAS, st.IAS, st.Mach, st.Gamma, st.FuelBurned, st.AoA, st.Theta, st.Thrust})
	}
	return m
}
