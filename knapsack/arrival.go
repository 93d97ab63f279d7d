package knapsack

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/sampleuv"
)

// ArrivalProcess draws the index of the next item offered to the
// online variant.
type ArrivalProcess interface {
	Next(rng *rand.Rand) int
}

// weightedArrival offers items with probability proportional to their
// initial limits. The distribution is fixed for the lifetime of the
// process, regardless of how the working limits are mutated.
type weightedArrival struct {
	probs []float64
}

var _ ArrivalProcess = &weightedArrival{}

func newWeightedArrival(limitInit []int) *weightedArrival {
	total := 0
	for _, l := range limitInit {
		total += l
	}
	probs := make([]float64, len(limitInit))
	for i, l := range limitInit {
		probs[i] = float64(l) / float64(total)
	}
	return &weightedArrival{probs: probs}
}

func (w *weightedArrival) Next(rng *rand.Rand) int {
	i, ok := sampleuv.NewWeighted(w.probs, rng).Take()
	if !ok {
		panic("arrival distribution has no mass")
	}
	return i
}

// Probs exposes the arrival distribution
func (w *weightedArrival) Probs() []float64 {
	return w.probs
}
