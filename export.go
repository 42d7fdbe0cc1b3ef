package perfsim

import (
	"fmt"
	"os"
	"time"
)

// createTrajectoryCSVFile returns a file which requires a defer close statement!
func createTrajectoryCSVFile(filename string, conf ExportConfig, phase Phase) *os.File {
	config := simConfig()
	if conf.Timestamp {
		t := time.Now()
		filename = fmt.Sprintf("%s/trajectory-%s-%d-%02d-%02dT%02d.%02d.%02d.csv", config.outputDir, filename, t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second())
	} else {
		filename = fmt.Sprintf("%s/trajectory-%s.csv", config.outputDir, filename)
	}
	if err := os.MkdirAll(config.outputDir, 0755); err != nil {
		panic(err)
	}
	f, err := os.Create(filename)
	if err != nil {
		panic(err)
	}
	// Header
	f.WriteString(fmt.Sprintf(`# Creation date (UTC): %s
# Phase: %s
# Records are t(s), x(m), h(m), w(N), v_tas(m/s), v_ias(m/s), mach, gamma(rad), fuel_burn(kg), aoa(rad), theta(rad), thrust(N)
t,x,h,w,v_tas,v_ias,mach,gamma,fuel_burn,aoa,theta,thrust`, time.Now().UTC(), phase))
	if conf.CSVAppendHdr != nil {
		// Append the headers for the appended columns.
		f.WriteString("," + conf.CSVAppendHdr())
	}
	return f
}

// StreamStates streams the simulation states from the channel to a CSV file
// until the channel is closed.
func StreamStates(conf ExportConfig, stateChan <-chan (State)) {
	var f *os.File
	var opened bool
	for state := range stateChan {
		if !opened {
			f = createTrajectoryCSVFile(conf.Filename, conf, conf.Phase)
			defer f.Close()
			opened = true
		}
		asTxt := fmt.Sprintf("%.1f,%.2f,%.2f,%.4f,%.2f,%.2f,%.3f,%.6f,%.4f,%.6f,%.6f,%.4f",
			state.Elapsed.Seconds(), state.Distance, state.Altitude, state.Weight,
			state.TAS, state.IAS, state.Mach, state.Gamma, state.FuelBurned,
			state.AoA, state.Theta, state.Thrust)
		if conf.CSVAppend != nil {
			asTxt += "," + conf.CSVAppend(state)
		}
		if _, err := f.WriteString("\n" + asTxt); err != nil {
			panic(err)
		}
	}
	if opened {
		f.WriteString(fmt.Sprintf("\n# Simulation end (UTC): %s\n", time.Now().UTC()))
	}
}

// ExportConfig configures the exporting of the simulation.
type ExportConfig struct {
	Filename     string
	Phase        Phase
	AsCSV        bool
	Timestamp    bool
	CSVAppend    func(st State) string // Custom export (do not include leading comma)
	CSVAppendHdr func() string         // Header for the custom export
}

// IsUseless returns whether this config doesn't actually do anything.
func (c ExportConfig) IsUseless() bool {
	return !c.AsCSV
}
