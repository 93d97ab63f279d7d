package knapsack

import (
	"gonum.org/v1/gonum/mat"

	"github.com/joefarrington/or-gym/types"
)

// tableEncoder builds the (2, N+1) unbounded observation: weight and
// value rows over the items, with a trailing column holding
// [max_weight, current_weight].
type tableEncoder struct {
	maxWeight int
}

func (e tableEncoder) Encode(c *Catalog, currentWeight int) *TableObservation {
	n := c.N()
	state := mat.NewDense(2, n+1, nil)
	for i := 0; i < n; i++ {
		state.Set(0, i, float64(c.Weights[i]))
		state.Set(1, i, float64(c.Values[i]))
	}
	state.Set(0, n, float64(e.maxWeight))
	state.Set(1, n, float64(currentWeight))
	return &TableObservation{State: state}
}

// maskedTableEncoder builds the (3, N+1) bounded observation together
// with the action mask. The trailing column holds
// [max_weight, current_weight, 0]; the zero is a structural
// placeholder.
type maskedTableEncoder struct {
	maxWeight int
	mask      bool
}

func (e maskedTableEncoder) table(c *Catalog, limits []int, currentWeight int) *mat.Dense {
	n := c.N()
	state := mat.NewDense(3, n+1, nil)
	for i := 0; i < n; i++ {
		state.Set(0, i, float64(c.Weights[i]))
		state.Set(1, i, float64(c.Values[i]))
		state.Set(2, i, float64(limits[i]))
	}
	state.Set(0, n, float64(e.maxWeight))
	state.Set(1, n, float64(currentWeight))
	state.Set(2, n, 0)
	return state
}

func (e maskedTableEncoder) Encode(c *Catalog, limits []int, currentWeight int) types.Observation {
	state := e.table(c, limits, currentWeight)
	if !e.mask {
		return &TableObservation{State: state}
	}

	n := c.N()
	mask := mat.NewVecDense(n, nil)
	avail := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		avail.SetVec(i, 1)
		if limits[i] > 0 && currentWeight+c.Weights[i] <= e.maxWeight {
			mask.SetVec(i, 1)
		}
	}
	return &MaskedObservation{
		ActionMask:   mask,
		AvailActions: avail,
		State:        state,
	}
}

// offerEncoder builds the online 4-vector observation exposing only
// the currently offered item.
type offerEncoder struct{}

func (offerEncoder) Encode(c *Catalog, currentWeight, currentItem int) *OfferObservation {
	vec := mat.NewVecDense(4, []float64{
		float64(currentWeight),
		float64(currentItem),
		float64(c.Weights[currentItem]),
		float64(c.Values[currentItem]),
	})
	return &OfferObservation{Vec: vec}
}
