package perfsim

import (
	"errors"
	"fmt"
	"math"
	"os"
	"sync"
	"time"

	kitlog "github.com/go-kit/kit/log"

	"github.com/Git4amar/perf-aero-sim/integrator"
)

const (
	// StepSize is the default simulation time step.
	StepSize = 1 * time.Second
)

var wg sync.WaitGroup

/* Handles the climb and descent trajectory simulations. */

// ErrInvalidPhase is returned when a phase is not one of the recognized set.
var ErrInvalidPhase = errors.New("phase must be one of climb, descent, descent_approach")

// Phase defines an enum of the simulated flight phases.
type Phase uint8

const (
	// Climb at 95% of maximum thrust until the cruise altitude is reached.
	Climb Phase = iota + 1
	// Descent at 5% of maximum thrust until the initial approach altitude.
	Descent
	// DescentApproach glides on a fixed glideslope with thrust solved from
	// the force balance, down to the screen height.
	DescentApproach
)

func (p Phase) String() string {
	switch p {
	case Climb:
		return "climb"
	case Descent:
		return "descent"
	case DescentApproach:
		return "descent_approach"
	}
	panic("cannot stringify unknown phase")
}

// ParsePhase returns the Phase named by s.
func ParsePhase(s string) (Phase, error) {
	switch s {
	case "climb":
		return Climb, nil
	case "descent":
		return Descent, nil
	case "descent_approach":
		return DescentApproach, nil
	}
	return 0, fmt.Errorf("%w, got %q", ErrInvalidPhase, s)
}

// thrustFraction returns the fraction of maximum thrust applied during the
// phase.
func (p Phase) thrustFraction() float64 {
	if p == Climb {
		return 0.95
	}
	return 0.05
}

// terminated returns whether the altitude has crossed the threshold ending
// the phase (climb ends at or above 10000 m, descent at or below 1000 m).
func (p Phase) terminated(altitude float64) bool {
	switch p {
	case Climb:
		return altitude >= 10000
	case Descent:
		return altitude <= 1000
	}
	panic(fmt.Sprintf("phase %s has no altitude threshold", p))
}

// Aircraft defines the simulated airframe and its propulsion.
type Aircraft struct {
	Name     string
	WingArea float64 // m^2
	Engines  int     // number of engines
	Engine   Engine
	logger   kitlog.Logger
}

// NewAircraft returns a new aircraft with a default logfmt logger.
func NewAircraft(name string, wingArea float64, engines int, engine Engine) *Aircraft {
	klog := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	klog = kitlog.With(klog, "aircraft", name)
	return &Aircraft{Name: name, WingArea: wingArea, Engines: engines, Engine: engine, logger: klog}
}

// NewReferenceTransport returns the reference four-engine transport.
func NewReferenceTransport() *Aircraft {
	return NewAircraft("transport", WingArea, EngineCount, NewTurbofan(MaxThrustSESL, BypassRatio))
}

// SetLogger changes the aircraft logger.
func (ac *Aircraft) SetLogger(l kitlog.Logger) {
	ac.logger = l
}

// maxThrust returns the total thrust of all engines at the given conditions,
// scaled by the phase thrust fraction.
func (ac *Aircraft) maxThrust(altitude, mach, fraction float64) float64 {
	return float64(ac.Engines) * ac.Engine.MaxThrust(altitude, mach) * fraction
}

// InitialConditions of a simulation phase.
type InitialConditions struct {
	Distance float64 // m
	Altitude float64 // m
	Weight   float64 // N
	IAS      float64 // m/s (ignored by DescentApproach, which flies at VRef TAS)
}

// Mission defines one simulation run and owns its state.
type Mission struct {
	Vehicle *Aircraft
	Phase   Phase
	Ctrl    PitchController

	// Approach geometry, used by DescentApproach only.
	Glideslope   float64 // rad, positive
	ScreenHeight float64 // m

	step    time.Duration
	maxIter uint64

	// Integration state. Mutated only by the stepping functions.
	elapsed            time.Duration
	x, h, w            float64
	vTAS, vIAS, mach   float64
	gamma, fuelKg      float64
	aoa, theta, thrust float64
	traj               Trajectory
	stopChan           chan (bool)
	histChan           chan<- (State)
}

// NewMission is the same as NewPreciseMission with the default step size and
// iteration budget.
func NewMission(ac *Aircraft, phase Phase, ics InitialConditions, ctrl PitchController, conf ExportConfig) (*Mission, error) {
	return NewPreciseMission(ac, phase, ics, ctrl, StepSize, integrator.DefaultMaxIter, conf)
}

// NewPreciseMission returns a new Mission with a custom time step and
// iteration budget. The trim state at t=0 is computed here; initial
// conditions outside the atmosphere table are rejected.
func NewPreciseMission(ac *Aircraft, phase Phase, ics InitialConditions, ctrl PitchController, step time.Duration, maxIter uint64, conf ExportConfig) (*Mission, error) {
	if _, err := AtmosphereAt(ics.Altitude); err != nil {
		return nil, fmt.Errorf("initial conditions: %w", err)
	}
	if maxIter == 0 {
		maxIter = integrator.DefaultMaxIter
	}
	// If the export config is useless, no output will be written.
	var histChan chan (State)
	if !conf.IsUseless() {
		histChan = make(chan (State), 1000) // a 1k entry buffer
		wg.Add(1)
		go func() {
			defer wg.Done()
			StreamStates(conf, histChan)
		}()
	}

	m := &Mission{Vehicle: ac, Phase: phase, Ctrl: ctrl,
		Glideslope: DefaultGlideslope, ScreenHeight: DefaultScreenHeight,
		step: step, maxIter: maxIter,
		x: ics.Distance, h: ics.Altitude, w: ics.Weight,
		stopChan: make(chan (bool), 1), histChan: histChan}

	if phase == DescentApproach {
		// The approach flies a constant true airspeed on a fixed glideslope.
		m.vTAS = ctrl.RefCAS
		m.vIAS = TAS2CAS(m.vTAS, m.h)
		m.mach = TAS2Mach(m.vTAS, m.h)
		m.gamma = -m.Glideslope
		m.aoa = AoASteady(m.vIAS, m.h, m.w, ac.WingArea)
		m.theta = m.aoa + m.gamma
		m.thrust = Drag(m.vIAS, m.h, LiftCoeffSteady(m.vIAS, m.h, m.w, ac.WingArea), ac.WingArea) + m.w*math.Sin(m.gamma)
	} else {
		m.vIAS = ics.IAS
		m.vTAS = CAS2TAS(m.vIAS, m.h)
		m.mach = CAS2Mach(m.vIAS, m.h)
		m.aoa = AoASteady(m.vIAS, m.h, m.w, ac.WingArea)
		clTrim := LiftCoeffSteady(m.vIAS, m.h, m.w, ac.WingArea)
		m.gamma = GammaSteady(
			ac.maxThrust(m.h, m.mach, phase.thrustFraction()),
			Drag(m.vIAS, m.h, clTrim, ac.WingArea),
			m.w)
		m.theta = m.aoa + m.gamma
		m.Ctrl.TrimPitch = m.theta
	}

	// Write the first data point.
	m.record(0)
	return m, nil
}

// LogStatus logs the status of the simulation and vehicle.
func (m *Mission) LogStatus() {
	m.Vehicle.logger.Log("level", "info", "subsys", "sim", "phase", m.Phase,
		"t", m.elapsed, "h(m)", m.h, "v_ias(m/s)", m.vIAS, "mach", m.mach, "fuel(kg)", m.fuelKg)
}

// Run starts the simulation and returns the full time history. On exceeding
// the iteration budget it returns the trajectory so far along with a
// NonConvergenceError carrying the last state reached.
func (m *Mission) Run() (Trajectory, error) {
	// Add a ticker status report for long simulations. The goroutine must be
	// released on return: a short run never ticks, so ranging over ticker.C
	// alone would park it forever.
	m.LogStatus()
	ticker := time.NewTicker(10 * time.Second)
	tickerDone := make(chan struct{})
	go func() {
		for {
			select {
			case <-tickerDone:
				return
			case <-ticker.C:
				m.LogStatus()
			}
		}
	}()
	defer func() {
		ticker.Stop()
		close(tickerDone)
	}()
	var iter uint64
	var err error
	if m.Phase == DescentApproach {
		iter, err = m.runApproach()
	} else {
		iter, _, err = integrator.NewEuler(0, m.step.Seconds(), m.maxIter, m).Solve()
	}
	if m.histChan != nil && err != nil {
		close(m.histChan)
	}
	if err != nil {
		wg.Wait()
		return m.traj, NonConvergenceError{Phase: m.Phase, Iteration: iter, Last: m.traj.Last()}
	}
	m.Vehicle.logger.Log("level", "notice", "subsys", "sim", "status", "finished",
		"phase", m.Phase, "steps", iter, "duration", m.elapsed, "fuel(kg)", m.fuelKg)
	if m.fuelKg*Grav > FuelWeight {
		m.Vehicle.logger.Log("level", "critical", "subsys", "prop", "status", "fuel exhausted", "fuel(kg)", m.fuelKg)
	}
	m.LogStatus()
	wg.Wait() // Don't return until we're done writing all the files.
	return m.traj, nil
}

// StopPropagation is used to stop the simulation before it is completed.
func (m *Mission) StopPropagation() {
	m.stopChan <- true
}

// GetState returns the state vector for the integrator:
// [x, h, v_tas, gamma, w, fuel].
func (m *Mission) GetState() []float64 {
	return []float64{m.x, m.h, m.vTAS, m.gamma, m.w, m.fuelKg}
}

// Func is the integration function. It evaluates the pilot law and the
// force models at the start of the step and returns the state derivative.
func (m *Mission) Func(t float64, f []float64) []float64 {
	ac := m.Vehicle
	m.theta = m.Ctrl.Pitch(m.vIAS, m.h, m.Phase)
	m.aoa = m.theta - m.gamma
	// Small-angle linear lift model inside the loop; the exact steady-state
	// equation is only used for the trim point.
	cl := cL0 + cLAlpha*m.aoa

	rho := atmosphereAt(m.h).Density
	lift := 0.5 * cl * rho * ac.WingArea * m.vTAS * m.vTAS
	m.thrust = ac.maxThrust(m.h, m.mach, m.Phase.thrustFraction())
	drag := Drag(m.vIAS, m.h, cl, ac.WingArea)
	flow := ac.Engine.FuelFlow(m.thrust, m.mach, m.h)

	flowKg := math.Abs(flow) * 1e-6 // mg/s to kg/s; burn only ever depletes mass
	sinγ, cosγ := math.Sincos(m.gamma)
	return []float64{
		m.vTAS * cosγ,                      // dx/dt
		m.vTAS * sinγ,                      // dh/dt
		DvDt(m.thrust, drag, m.w, m.gamma), // dv_tas/dt
		DGammaDt(lift, m.w, m.vTAS),        // dγ/dt
		-flowKg * Grav,                     // dw/dt
		flowKg,                             // d(fuel)/dt
	}
}

// SetState applies the updated state vector and recomputes the derived
// airspeeds at the new altitude.
func (m *Mission) SetState(i uint64, s []float64) {
	m.x, m.h, m.vTAS, m.gamma, m.w, m.fuelKg = s[0], s[1], s[2], s[3], s[4], s[5]
	m.vIAS = TAS2CAS(m.vTAS, m.h)
	m.mach = CAS2Mach(m.vIAS, m.h)
	m.elapsed = time.Duration(i+1) * m.step
	m.record(m.elapsed)
}

// Stop implements the stop call of the integrator. To stop the simulation
// early, call StopPropagation().
func (m *Mission) Stop(i uint64) bool {
	select {
	case <-m.stopChan:
		if m.histChan != nil {
			close(m.histChan)
		}
		return true // Stop because there is a request to stop.
	default:
		if i == 0 {
			return false // Initial state never terminates a phase.
		}
		if m.Phase.terminated(m.h) {
			if m.histChan != nil {
				close(m.histChan)
			}
			return true
		}
		return false
	}
}

// runApproach steps the fixed-glideslope final approach: no pilot law, the
// thrust is solved each step from the instantaneous force balance
// thrust = drag + weight·sin(γ) and γ stays on the glideslope.
func (m *Mission) runApproach() (uint64, error) {
	ac := m.Vehicle
	dt := m.step.Seconds()
	for iter := uint64(0); ; iter++ {
		if iter >= m.maxIter {
			return iter, fmt.Errorf("did not converge within %d iterations", m.maxIter)
		}
		select {
		case <-m.stopChan:
			if m.histChan != nil {
				close(m.histChan)
			}
			return iter, nil // Stop because there is a request to stop.
		default:
		}
		vCAS := TAS2CAS(m.vTAS, m.h)
		m.aoa = AoASteady(vCAS, m.h, m.w, ac.WingArea)
		m.theta = m.aoa + m.gamma
		cl := LiftCoeffSteady(vCAS, m.h, m.w, ac.WingArea)
		drag := Drag(vCAS, m.h, cl, ac.WingArea)
		m.thrust = drag + m.w*math.Sin(m.gamma)
		flow := ac.Engine.FuelFlow(m.thrust, m.mach, m.h)

		flowKg := math.Abs(flow) * 1e-6
		sinγ, cosγ := math.Sincos(m.gamma)
		m.h += m.vTAS * sinγ * dt
		m.x += m.vTAS * cosγ * dt
		m.fuelKg += flowKg * dt
		m.w -= flowKg * Grav * dt
		m.elapsed += m.step
		m.vIAS = TAS2CAS(m.vTAS, m.h)
		m.mach = TAS2Mach(m.vTAS, m.h)
		m.record(m.elapsed)

		if m.h <= m.ScreenHeight {
			if m.histChan != nil {
				close(m.histChan)
			}
			return iter + 1, nil
		}
	}
}

// record appends the current state to the trajectory and streams it to the
// export goroutine if one is attached.
func (m *Mission) record(elapsed time.Duration) {
	st := State{
		Elapsed:    elapsed,
		Distance:   m.x,
		Altitude:   m.h,
		Weight:     m.w,
		TAS:        m.vTAS,
		IAS:        m.vIAS,
		Mach:       m.mach,
		Gamma:      m.gamma,
		FuelBurned: m.fuelKg,
		AoA:        m.aoa,
		Theta:      m.theta,
		Thrust:     m.thrust,
	}
	m.traj = append(m.traj, st)
	if m.histChan != nil {
		m.histChan <- st
	}
}
