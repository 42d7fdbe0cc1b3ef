package perfsim

import (
	"fmt"
	"time"
)

// Series is one simulation variable as stored on disk: a magnitude array and
// the unit the magnitudes are expressed in. All magnitudes are SI.
type Series struct {
	Magnitude []float64 `json:"magnitude"`
	Units     string    `json:"units"`
}

// seriesUnits maps each trajectory column to the unit its magnitudes carry.
// Loading a document whose unit strings disagree fails with a
// UnitMismatchError; units are never coerced.
var seriesUnits = map[string]string{
	"t":         "second",
	"x":         "meter",
	"h":         "meter",
	"w":         "newton",
	"v_tas":     "meter / second",
	"v_ias":     "meter / second",
	"mach":      "dimensionless",
	"gamma":     "radian",
	"fuel_burn": "kilogram",
	"aoa":       "radian",
	"theta":     "radian",
	"thrust":    "newton",
}

// resultDocument is the on-disk shape of a stored trajectory.
type resultDocument map[string]Series

func documentFromTrajectory(tr Trajectory) resultDocument {
	mat := tr.Matrix()
	doc := make(resultDocument, len(trajectoryCols))
	for j, name := range trajectoryCols {
		col := make([]float64, len(tr))
		for i := range tr {
			col[i] = mat.At(i, j)
		}
		doc[name] = Series{Magnitude: col, Units: seriesUnits[name]}
	}
	return doc
}

func trajectoryFromDocument(doc resultDocument) (Trajectory, error) {
	var n int
	for _, name := range trajectoryCols {
		s, ok := doc[name]
		if !ok {
			return nil, fmt.Errorf("stored result is missing variable %q", name)
		}
		if s.Units != seriesUnits[name] {
			return nil, UnitMismatchError{Variable: name, Want: seriesUnits[name], Got: s.Units}
		}
		if n == 0 {
			n = len(s.Magnitude)
		} else if len(s.Magnitude) != n {
			return nil, fmt.Errorf("stored result variable %q has %d samples, want %d", name, len(s.Magnitude), n)
		}
	}
	tr := make(Trajectory, n)
	for i := 0; i < n; i++ {
		tr[i] = State{
			Elapsed:    time.Duration(doc["t"].Magnitude[i] * float64(time.Second)),
			Distance:   doc["x"].Magnitude[i],
			Altitude:   doc["h"].Magnitude[i],
			Weight:     doc["w"].Magnitude[i],
			TAS:        doc["v_tas"].Magnitude[i],
			IAS:        doc["v_ias"].Magnitude[i],
			Mach:       doc["mach"].Magnitude[i],
			Gamma:      doc["gamma"].Magnitude[i],
			FuelBurned: doc["fuel_burn"].Magnitude[i],
			AoA:        doc["aoa"].Magnitude[i],
			Theta:      doc["theta"].Magnitude[i],
			Thrust:     doc["thrust"].Magnitude[i],
		}
	}
	return tr, nil
}
