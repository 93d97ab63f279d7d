package knapsack

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Default dimensions of the item catalog and the container
const (
	DefaultN         = 200
	DefaultMaxWeight = 200
	DefaultStepLimit = 50
)

// Config holds the recognized construction options of the knapsack
// environments. Anything else passed in an override mapping is ignored.
type Config struct {
	// N is the number of items in the catalog
	N int `mapstructure:"N"`
	// MaxWeight is the capacity of the container
	MaxWeight int `mapstructure:"max_weight"`
	// Seed of the environment's sampling source
	Seed uint64 `mapstructure:"seed"`
	// Mask enables the action-mask observation wrapper (Bounded/Online)
	Mask bool `mapstructure:"mask"`
	// StepLimit is the Online variant's horizon
	StepLimit int `mapstructure:"step_limit"`
}

func DefaultConfig() Config {
	return Config{
		N:         DefaultN,
		MaxWeight: DefaultMaxWeight,
		Seed:      0,
		Mask:      true,
		StepLimit: DefaultStepLimit,
	}
}

// Apply copies recognized keys from the override mapping onto the
// config. Unrecognized keys are ignored, values are weakly typed so
// overrides decoded from YAML or JSON work unmodified.
func (c *Config) Apply(overrides map[string]any) error {
	if len(overrides) == 0 {
		return nil
	}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           c,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("building config decoder: %w", err)
	}
	if err := decoder.Decode(overrides); err != nil {
		return fmt.Errorf("applying config overrides: %w", err)
	}
	return nil
}
