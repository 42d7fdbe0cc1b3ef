package perfsim

import (
	"os"

	"github.com/spf13/viper"
)

var (
	cfgLoaded = false
	config    = _simconfig{}
)

// _simconfig is a "hidden" struct, just use `simConfig`
type _simconfig struct {
	outputDir string
}

// simConfig returns the simulator configuration. The configuration file is a
// conf.toml in the directory named by PERFSIM_CONFIG; without one, results
// land in ./simulation_results.
func simConfig() _simconfig {
	if cfgLoaded {
		return config
	}
	outputDir := "./simulation_results"
	if confPath := os.Getenv("PERFSIM_CONFIG"); confPath != "" {
		// Own viper instance: callers (the scenario CLI) keep state in the
		// global one, which must not be clobbered here.
		v := viper.New()
		v.SetConfigName("conf")
		v.AddConfigPath(confPath)
		if err := v.ReadInConfig(); err == nil {
			if dir := v.GetString("general.output_path"); dir != "" {
				outputDir = dir
			}
		}
	}
	cfgLoaded = true
	config = _simconfig{outputDir: outputDir}
	return config
}
