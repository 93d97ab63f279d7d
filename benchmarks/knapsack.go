package benchmarks

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joefarrington/or-gym/knapsack"
	"github.com/joefarrington/or-gym/types"
)

func newComparison() *types.Comparison {
	c := types.NewComparison(&types.ComparisonConfig{
		Runs:       runs,
		Episodes:   episodes,
		Horizon:    horizon,
		RecordPath: saveFile,
	})
	c.AddAnalysis("Return", types.EpisodeReturn(), types.EpisodeReturnPlotter(saveFile))
	c.AddAnalysis("Coverage", types.ObservationCoverage(), types.ObservationCoveragePlotter(saveFile))
	return c
}

func UnboundedKnapsack(ctx context.Context) error {
	overrides, err := envOverrides()
	if err != nil {
		return err
	}
	env, err := knapsack.NewUnbounded(overrides)
	if err != nil {
		return err
	}

	c := newComparison()
	c.AddExperiment(types.NewExperiment(
		"Random",
		types.NewRandomPolicy(),
		env,
	))
	c.Run(ctx)
	return nil
}

func UnboundedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unbounded",
		Short: "Run the unbounded knapsack environment",
		RunE: func(cmd *cobra.Command, args []string) error {
			return UnboundedKnapsack(context.Background())
		},
	}
}

func BoundedKnapsack(ctx context.Context) error {
	overrides, err := envOverrides()
	if err != nil {
		return err
	}

	c := newComparison()
	// separate instances so the experiments do not share episode state
	for _, exp := range []struct {
		name   string
		policy types.Policy
	}{
		{"Random", types.NewRandomPolicy()},
		{"MaskedRandom", types.NewMaskedRandomPolicy()},
	} {
		env, err := knapsack.NewBounded(overrides)
		if err != nil {
			return err
		}
		c.AddExperiment(types.NewExperiment(exp.name, exp.policy, env))
	}
	c.Run(ctx)
	return nil
}

func BoundedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "bounded",
		Short: "Run the bounded knapsack environment",
		RunE: func(cmd *cobra.Command, args []string) error {
			return BoundedKnapsack(context.Background())
		},
	}
}

func OnlineKnapsack(ctx context.Context) error {
	overrides, err := envOverrides()
	if err != nil {
		return err
	}
	env, err := knapsack.NewOnline(overrides)
	if err != nil {
		return err
	}

	c := newComparison()
	c.AddExperiment(types.NewExperiment(
		"Random",
		types.NewRandomPolicy(),
		env,
	))
	c.Run(ctx)
	return nil
}

func OnlineCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "online",
		Short: "Run the online knapsack environment",
		RunE: func(cmd *cobra.Command, args []string) error {
			return OnlineKnapsack(context.Background())
		},
	}
}

// newEnv constructs the named variant with the given overrides
func newEnv(variant string, overrides map[string]any) (types.Environment, error) {
	switch variant {
	case "unbounded":
		return knapsack.NewUnbounded(overrides)
	case "bounded":
		return knapsack.NewBounded(overrides)
	case "online":
		return knapsack.NewOnline(overrides)
	default:
		return nil, fmt.Errorf("unknown variant: %s", variant)
	}
}
