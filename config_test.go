package perfsim

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestSimConfigDefault(t *testing.T) {
	t.Setenv("PERFSIM_CONFIG", "")
	cfgLoaded = false
	t.Cleanup(func() { cfgLoaded = false })
	if got := simConfig().outputDir; got != "./simulation_results" {
		t.Fatalf("outputDir = %s", got)
	}
}

func TestSimConfigLeavesGlobalViperAlone(t *testing.T) {
	confDir := t.TempDir()
	outDir := filepath.Join(confDir, "results")
	toml := fmt.Sprintf("[general]\noutput_path = %q\n", outDir)
	if err := os.WriteFile(filepath.Join(confDir, "conf.toml"), []byte(toml), 0644); err != nil {
		t.Fatalf("err: %+v", err)
	}
	t.Setenv("PERFSIM_CONFIG", confDir)
	cfgLoaded = false
	t.Cleanup(func() { cfgLoaded = false })

	// The scenario CLI keeps its scenario file in the global viper instance;
	// reading the simulator config must not clobber it.
	viper.Set("phases.0.phase", "climb")
	t.Cleanup(viper.Reset)

	if got := simConfig().outputDir; got != outDir {
		t.Fatalf("outputDir = %s, want %s", got, outDir)
	}
	if !viper.IsSet("phases.0.phase") {
		t.Fatal("simConfig clobbered the global viper state")
	}
}
