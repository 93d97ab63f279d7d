package types

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path"

	"github.com/joefarrington/or-gym/util"
)

// Experiment encapsulates a named policy/environment pair
type Experiment struct {
	Name        string
	policy      Policy
	environment Environment
}

// NewExperiment creates a new experiment instance
func NewExperiment(name string, policy Policy, environment Environment) *Experiment {
	return &Experiment{
		Name:        name,
		policy:      policy,
		environment: environment,
	}
}

// Run the experiment for the specified number of episodes and return
// the collected traces
func (e *Experiment) Run(episodes, horizon int) []*Trace {
	agent := NewAgent(&AgentConfig{
		Episodes:    episodes,
		Horizon:     horizon,
		Policy:      e.policy,
		Environment: e.environment,
	})
	agent.Run()
	return agent.Traces()
}

// Reset the experiment between runs
func (e *Experiment) Reset() {
	e.policy.Reset()
}

// Generic Dataset that contains information after processing the traces
type DataSet interface{}

// Analyzer compresses the information in the traces of one run to a DataSet
// run, experiment name, traces
type Analyzer func(int, string, []*Trace) DataSet

// Comparator differentiates between different datasets with associated names
// run, experiment names, datasets
type Comparator func(int, []string, []DataSet)

func NoopComparator() Comparator {
	return func(_ int, _ []string, _ []DataSet) {}
}

// ComparisonConfig contains the configuration for the comparison
type ComparisonConfig struct {
	Runs       int    // number of runs
	Episodes   int    // number of episodes per run
	Horizon    int    // number of steps per episode
	RecordPath string // path to store the results
}

// Comparison contains the different experiments to compare
// The traces obtained from the experiments are analyzed
// The analyzed datasets are then compared
type Comparison struct {
	Experiments []*Experiment
	analyzers   map[string]Analyzer
	comparators map[string]Comparator
	cConfig     *ComparisonConfig
}

// NewComparison creates a comparison instance
func NewComparison(config *ComparisonConfig) *Comparison {
	if _, err := os.Stat(config.RecordPath); err != nil {
		os.MkdirAll(config.RecordPath, 0777)
	}
	return &Comparison{
		Experiments: make([]*Experiment, 0),
		analyzers:   make(map[string]Analyzer),
		comparators: make(map[string]Comparator),
		cConfig:     config,
	}
}

// AddAnalysis adds an analyzer and comparator to the comparison
func (c *Comparison) AddAnalysis(name string, analyzer Analyzer, comparator Comparator) {
	c.analyzers[name] = analyzer
	c.comparators[name] = comparator
}

// Add experiments to compare
func (c *Comparison) AddExperiment(e *Experiment) {
	c.Experiments = append(c.Experiments, e)
}

// record the configuration of the comparison
func (c *Comparison) recordConfig() {
	cfg := c.cConfig
	out := make(map[string]interface{})
	out["runs"] = cfg.Runs
	out["episodes"] = cfg.Episodes
	out["horizon"] = cfg.Horizon

	experiments := make([]string, 0)
	for _, e := range c.Experiments {
		experiments = append(experiments, e.Name)
	}
	out["experiments"] = experiments

	analyzers := make([]string, 0)
	for name := range c.analyzers {
		analyzers = append(analyzers, name)
	}
	out["analyzers"] = analyzers

	bs, err := json.Marshal(out)
	if err != nil {
		panic(err)
	}
	util.WriteToFile(path.Join(cfg.RecordPath, "comparison_config.json"), string(bs))
}

// Run the comparison
func (c *Comparison) Run(ctx context.Context) {
	c.recordConfig()

	for run := 0; run < c.cConfig.Runs; run++ {
		fmt.Printf("Run %d\n", run+1)
		datasets := make(map[string][]DataSet)
		for name := range c.analyzers {
			datasets[name] = make([]DataSet, len(c.Experiments))
		}

		names := make([]string, len(c.Experiments))
		for i, e := range c.Experiments {
			select {
			case <-ctx.Done():
				return
			default:
			}
			fmt.Printf("Running experiment: %s\n", e.Name)
			traces := e.Run(c.cConfig.Episodes, c.cConfig.Horizon)
			for name, a := range c.analyzers {
				datasets[name][i] = a(run, e.Name, traces)
			}
			names[i] = e.Name
			e.Reset()
		}
		for name, comp := range c.comparators {
			comp(run, names, datasets[name])
		}
	}
}
