package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	perfsim "github.com/Git4amar/perf-aero-sim"
)

type server struct {
	store    perfsim.ResultStore
	aircraft *perfsim.Aircraft
}

func newServer(store perfsim.ResultStore, ac *perfsim.Aircraft) *server {
	return &server{store: store, aircraft: ac}
}

func (s *server) router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/simulations", s.runSimulationHandler).Methods("POST")
	r.HandleFunc("/simulations/{phase}/{weight:[0-9]+}/{vref:[0-9]+}", s.getSimulationHandler).Methods("GET")
	r.HandleFunc("/healthz", healthHandler).Methods("GET")
	return r
}

// simulationRequest is the JSON body of POST /simulations.
type simulationRequest struct {
	Phase      string  `json:"phase"`
	Distance   float64 `json:"x"`
	Altitude   float64 `json:"h"`
	Weight     float64 `json:"w"`
	IAS        float64 `json:"v_ias"`
	RefSpeed   float64 `json:"v_ref"`
	Gain       float64 `json:"gain"`
	CruiseMach float64 `json:"cruise_mach"`
	StepSecs   float64 `json:"step_s"`
}

// simulationSummary is returned for a completed run.
type simulationSummary struct {
	Key        string        `json:"key"`
	Steps      int           `json:"steps"`
	FinalState perfsim.State `json:"final_state"`
}

func (s *server) runSimulationHandler(w http.ResponseWriter, r *http.Request) {
	var req simulationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	phase, err := perfsim.ParsePhase(req.Phase)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if _, err := perfsim.AtmosphereAt(req.Altitude); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	step := perfsim.StepSize
	if req.StepSecs > 0 {
		step = time.Duration(req.StepSecs * float64(time.Second))
	}
	ics := perfsim.InitialConditions{Distance: req.Distance, Altitude: req.Altitude, Weight: req.Weight, IAS: req.IAS}
	ctrl := perfsim.PitchController{Gain: req.Gain, RefCAS: req.RefSpeed, CruiseMach: req.CruiseMach}
	key := perfsim.NewKey(phase, ics.Weight, ctrl.RefCAS)

	start := time.Now()
	traj, err := perfsim.LoadOrRun(s.store, key, func() (perfsim.Trajectory, error) {
		m, err := perfsim.NewPreciseMission(s.aircraft, phase, ics, ctrl, step, 0, perfsim.ExportConfig{})
		if err != nil {
			return nil, err
		}
		return m.Run()
	})
	if err != nil {
		runsTotal.WithLabelValues(phase.String(), "error").Inc()
		var nc perfsim.NonConvergenceError
		if errors.As(err, &nc) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	runsTotal.WithLabelValues(phase.String(), "ok").Inc()
	finalAltitudeGauge.WithLabelValues(phase.String()).Set(traj.Last().Altitude)
	fuelBurnedGauge.WithLabelValues(phase.String()).Set(traj.Last().FuelBurned)
	stepsGauge.WithLabelValues(phase.String()).Set(float64(len(traj)))
	runSecondsGauge.WithLabelValues(phase.String()).Set(time.Since(start).Seconds())

	writeJSON(w, http.StatusOK, simulationSummary{Key: key.Filename(), Steps: len(traj), FinalState: traj.Last()})
}

func (s *server) getSimulationHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	phase, err := perfsim.ParsePhase(vars["phase"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	weight, _ := strconv.Atoi(vars["weight"])
	vref, _ := strconv.Atoi(vars["vref"])
	traj, found, err := s.store.Load(perfsim.Key{Phase: phase, Weight: weight, RefSpeed: vref})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !found {
		http.Error(w, "no stored result for key", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, traj)
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
