package main

import (
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"

	perfsim "github.com/Git4amar/perf-aero-sim"
)

// This code effectively only reads the scenario file and runs each phase.

const defaultScenario = "~~unset~~"

var (
	scenario string
	verbose  bool
	noCache  bool
)

func init() {
	// Read flags
	flag.StringVar(&scenario, "scenario", defaultScenario, "simulation scenario TOML file")
	flag.BoolVar(&verbose, "verbose", false, "really verbose (esp. for configuration)")
	flag.BoolVar(&noCache, "no-cache", false, "run the simulation even if a cached result exists")
}

func main() {
	flag.Parse()
	// Load scenario
	if scenario == defaultScenario {
		log.Fatal("no scenario provided")
	}
	scenario = strings.Replace(scenario, ".toml", "", 1)
	viper.AddConfigPath(".")
	viper.SetConfigName(scenario)
	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("./%s.toml: Error %s", scenario, err)
	}

	// Read aircraft
	acName := viper.GetString("aircraft.name")
	wingArea := viper.GetFloat64("aircraft.wing_area")
	engines := viper.GetInt("aircraft.engines")
	thrustSL := viper.GetFloat64("aircraft.thrust_sl")
	bpr := viper.GetFloat64("aircraft.bypass_ratio")
	ac := perfsim.NewAircraft(acName, wingArea, engines, perfsim.NewTurbofan(thrustSL, bpr))

	// Read mission parameters
	step := viper.GetDuration("mission.step")
	if step == 0 {
		step = perfsim.StepSize
	}
	maxIter := uint64(viper.GetInt64("mission.max_iter"))
	cruiseMach := viper.GetFloat64("mission.cruise_mach")
	if verbose {
		log.Printf("[conf] time step: %s cruise mach: %.2f\n", step, cruiseMach)
	}

	store := perfsim.NewFileStore()

	// Phases are executed in the order they are numbered.
	for phaseNo := 0; viper.IsSet(fmt.Sprintf("phases.%d", phaseNo)); phaseNo++ {
		pre := fmt.Sprintf("phases.%d.", phaseNo)
		phase, err := perfsim.ParsePhase(viper.GetString(pre + "phase"))
		if err != nil {
			log.Fatalf("phases.%d: %s", phaseNo, err)
		}
		ics := perfsim.InitialConditions{
			Distance: viper.GetFloat64(pre + "x"),
			Altitude: viper.GetFloat64(pre + "h"),
			Weight:   viper.GetFloat64(pre + "w"),
			IAS:      viper.GetFloat64(pre + "v_ias"),
		}
		ctrl := perfsim.PitchController{
			Gain:       viper.GetFloat64(pre + "gain"),
			RefCAS:     viper.GetFloat64(pre + "v_ref"),
			CruiseMach: cruiseMach,
		}
		key := perfsim.NewKey(phase, ics.Weight, ctrl.RefCAS)
		run := func() (perfsim.Trajectory, error) {
			csvName := fmt.Sprintf("%s-%d-%d", phase, key.Weight, key.RefSpeed)
			conf := perfsim.ExportConfig{Filename: csvName, Phase: phase, AsCSV: true}
			m, err := perfsim.NewPreciseMission(ac, phase, ics, ctrl, step, maxIter, conf)
			if err != nil {
				return nil, err
			}
			start := time.Now()
			traj, err := m.Run()
			if verbose {
				log.Printf("%s finished in %s", phase, time.Since(start))
			}
			return traj, err
		}
		var traj perfsim.Trajectory
		if noCache {
			traj, err = run()
			if err == nil {
				err = store.Store(key, traj)
			}
		} else {
			traj, err = perfsim.LoadOrRun(store, key, run)
		}
		if err != nil {
			log.Fatalf("phases.%d (%s): %s", phaseNo, phase, err)
		}
		final := traj.Last()
		log.Printf("%s: %d states, final h=%.1f m x=%.1f km fuel=%.1f kg", phase, len(traj), final.Altitude, final.Distance/1e3, final.FuelBurned)
	}
}
