package perfsim

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
)

// Key identifies a stored simulation result: the phase, the initial weight
// rounded to whole newtons and the reference speed rounded to whole m/s.
type Key struct {
	Phase    Phase
	Weight   int // N
	RefSpeed int // m/s
}

// NewKey rounds the given initial weight (N) and reference speed (m/s) to a
// result key.
func NewKey(phase Phase, weight, refSpeed float64) Key {
	return Key{Phase: phase, Weight: int(math.Round(weight)), RefSpeed: int(math.Round(refSpeed))}
}

// Filename returns the result file name for this key.
func (k Key) Filename() string {
	return fmt.Sprintf("%s_%d_%d_simulation_result.json", k.Phase, k.Weight, k.RefSpeed)
}

// ResultStore caches trajectories so identical initial conditions are not
// recomputed. It is injected into LoadOrRun so the simulation itself stays
// pure.
type ResultStore interface {
	// Load returns the stored trajectory for the key, and whether one exists.
	Load(k Key) (Trajectory, bool, error)
	// Store saves the trajectory under the key.
	Store(k Key, tr Trajectory) error
}

// FileStore stores results as JSON documents of magnitude arrays and unit
// strings, one file per key, in a directory.
type FileStore struct {
	Dir string
}

// NewFileStore returns a FileStore rooted at the configured output directory.
func NewFileStore() FileStore {
	return FileStore{Dir: simConfig().outputDir}
}

// Load implements the ResultStore interface.
func (fs FileStore) Load(k Key) (Trajectory, bool, error) {
	raw, err := os.ReadFile(filepath.Join(fs.Dir, k.Filename()))
	if os.IsNotExist(err) {
		return nil, false, nil
	} else if err != nil {
		return nil, false, err
	}
	var doc resultDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, false, fmt.Errorf("corrupt result file %s: %w", k.Filename(), err)
	}
	tr, err := trajectoryFromDocument(doc)
	if err != nil {
		return nil, false, err
	}
	return tr, true, nil
}

// Store implements the ResultStore interface.
func (fs FileStore) Store(k Key, tr Trajectory) error {
	if err := os.MkdirAll(fs.Dir, 0755); err != nil {
		return err
	}
	raw, err := json.MarshalIndent(documentFromTrajectory(tr), "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(fs.Dir, k.Filename()), raw, 0644)
}

// LoadOrRun returns the cached trajectory for the key if the store has one,
// otherwise runs the simulation and stores its result.
func LoadOrRun(store ResultStore, k Key, run func() (Trajectory, error)) (Trajectory, error) {
	if tr, found, err := store.Load(k); err != nil {
		return nil, err
	} else if found {
		return tr, nil
	}
	tr, err := run()
	if err != nil {
		return tr, err
	}
	return tr, store.Store(k, tr)
}
