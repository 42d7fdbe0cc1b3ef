package main

import "github.com/prometheus/client_golang/prometheus"

var (
	runsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "perfsim_runs_total",
			Help: "Number of simulation runs served, by phase and outcome",
		},
		[]string{"phase", "outcome"},
	)
	finalAltitudeGauge = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "perfsim_final_altitude_meters",
			Help: "Final altitude of the most recent run of each phase",
		},
		[]string{"phase"},
	)
	fuelBurnedGauge = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "perfsim_fuel_burned_kg",
			Help: "Fuel burned by the most recent run of each phase",
		},
		[]string{"phase"},
	)
	stepsGauge = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "perfsim_steps",
			Help: "Accepted time steps of the most recent run of each phase",
		},
		[]string{"phase"},
	)
	runSecondsGauge = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "perfsim_run_seconds",
			Help: "Wall-clock duration of the most recent run of each phase",
		},
		[]string{"phase"},
	)
)

func init() {
	prometheus.MustRegister(runsTotal, finalAltitudeGauge, fuelBurnedGauge, stepsGauge, runSecondsGauge)
}
