package knapsack

import (
	"golang.org/x/exp/rand"
)

// Bounds of the catalog draws
const (
	minItemWeight = 1
	maxItemWeight = 20 // exclusive
	maxItemValue  = 30 // exclusive
	minItemLimit  = 1
	maxItemLimit  = 10 // exclusive
)

// Catalog is the fixed set of items available to an episode. Weights
// and values never change after construction.
type Catalog struct {
	Weights []int
	Values  []int
}

// drawCatalog samples a fresh catalog of n items. Values are drawn
// before weights, keeping the draw order stable for a given seed.
func drawCatalog(n int, rng *rand.Rand) *Catalog {
	values := make([]int, n)
	for i := range values {
		values[i] = rng.Intn(maxItemValue)
	}
	weights := make([]int, n)
	for i := range weights {
		weights[i] = minItemWeight + rng.Intn(maxItemWeight-minItemWeight)
	}
	return &Catalog{Weights: weights, Values: values}
}

// drawLimits samples per-item selection limits
func drawLimits(n int, rng *rand.Rand) []int {
	limits := make([]int, n)
	for i := range limits {
		limits[i] = minItemLimit + rng.Intn(maxItemLimit-minItemLimit)
	}
	return limits
}

// N is the number of items in the catalog
func (c *Catalog) N() int {
	return len(c.Weights)
}
