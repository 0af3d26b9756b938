// internal/suite/config.go
// Package: suite
package suite

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config drives one run of the demo benchmark suite. All fields have
// working defaults; a JSON config file and command line flags can
// override them individually.
type Config struct {
	RenderTo           string `mapstructure:"renderto" json:"renderto"`                         // output HTML path; "" disables rendering
	Plot               string `mapstructure:"plot" json:"plot"`                                 // "violin" or "box"
	Legend             bool   `mapstructure:"legend" json:"legend"`                             // show the Plotly legend side panel
	ShowEpochs         bool   `mapstructure:"show_epochs" json:"show_epochs"`                   // append epoch counts to series labels
	RangeMode          string `mapstructure:"rangemode" json:"rangemode"`                       // y-axis rangemode; "" lets Plotly auto-range
	L1Bytes            int    `mapstructure:"l1_bytes" json:"l1_bytes"`                         // L1 data cache budget in bytes
	L2Bytes            int    `mapstructure:"l2_bytes" json:"l2_bytes"`                         // L2 data cache budget in bytes
	Epochs             int    `mapstructure:"epochs" json:"epochs"`                             // measurement batches per series
	MinEpochIterations uint64 `mapstructure:"min_epoch_iterations" json:"min_epoch_iterations"` // iterations per batch
	Warmup             uint64 `mapstructure:"warmup" json:"warmup"`                             // unrecorded iterations before measuring
}

// DefaultConfig returns the configuration used when no file and no
// flags are given: violin plots with a legend, y axis clamped to zero,
// cache budgets of a typical desktop core.
func DefaultConfig() Config {
	return Config{
		Plot:               "violin",
		Legend:             true,
		RangeMode:          "tozero",
		L1Bytes:            32 * 1024,
		L2Bytes:            256 * 1024,
		Epochs:             11,
		MinEpochIterations: 100,
		Warmup:             100,
	}
}

// LoadConfig reads path (JSON) over the defaults. An empty path returns
// the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		return cfg, fmt.Errorf("could not read config file: %w", err)
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("could not parse config: %w", err)
	}
	return cfg, nil
}
