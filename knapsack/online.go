package knapsack

import (
	"golang.org/x/exp/rand"

	"github.com/joefarrington/or-gym/spaces"
	"github.com/joefarrington/or-gym/types"
)

// Actions of the online variant
const (
	RejectItem = 0
	AcceptItem = 1
)

// Online simulates the online knapsack decision process: items arrive
// one at a time, drawn with probability proportional to their initial
// limits, and the agent accepts or rejects each offer. The episode
// ends when the container is exactly full, an accepted item would
// overflow it, or step_limit offers have been resolved.
//
// Rejecting an offer does not draw a new item: the same offer is
// presented again on the next step.
type Online struct {
	cfg     Config
	catalog *Catalog
	items   *limitedItems
	encoder offerEncoder
	// arrival distribution, computed lazily from the initial limits
	// and cached for the lifetime of the instance
	arrival ArrivalProcess

	currentWeight int
	currentItem   int
	stepCounter   int
	rng           *rand.Rand
}

var _ types.Environment = &Online{}

// NewOnline builds the environment, reusing the bounded catalog/limit
// setup with a binary accept/reject action space.
func NewOnline(overrides map[string]any) (*Online, error) {
	cfg := DefaultConfig()
	if err := cfg.Apply(overrides); err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(cfg.Seed))
	limitInit := drawLimits(cfg.N, rng)
	o := &Online{
		cfg:     cfg,
		catalog: drawCatalog(cfg.N, rng),
		items:   newLimitedItems(limitInit),
		encoder: offerEncoder{},
		rng:     rng,
	}
	o.Reset()
	return o, nil
}

func (o *Online) Reset() types.Observation {
	if o.arrival == nil {
		o.arrival = newWeightedArrival(o.items.limitInit)
	}
	o.currentWeight = 0
	o.stepCounter = 0
	o.items.Reset()
	o.currentItem = o.arrival.Next(o.rng)
	return o.encode()
}

func (o *Online) Step(action int) (types.Observation, int, bool, map[string]any) {
	var reward int
	var done bool
	if action != RejectItem {
		if o.catalog.Weights[o.currentItem]+o.currentWeight <= o.cfg.MaxWeight {
			o.currentWeight += o.catalog.Weights[o.currentItem]
			reward = o.catalog.Values[o.currentItem]
			done = o.currentWeight == o.cfg.MaxWeight
			// next offer, drawn only after an accepted placement
			o.currentItem = o.arrival.Next(o.rng)
		} else {
			// over weight, episode over
			reward = 0
			done = true
		}
	} else {
		// rejected offers stay on the table for the next step
		reward = 0
		done = false
	}

	o.stepCounter++
	if o.stepCounter >= o.cfg.StepLimit {
		done = true
	}
	return o.encode(), reward, done, map[string]any{}
}

// SampleAction draws uniformly between reject and accept, ignoring
// feasibility.
func (o *Online) SampleAction() int {
	return o.rng.Intn(2)
}

func (o *Online) SetSeed(seed uint64) []uint64 {
	o.rng.Seed(seed)
	return []uint64{seed}
}

func (o *Online) ActionSpace() spaces.Space {
	return spaces.Discrete{N: 2}
}

func (o *Online) ObservationSpace() spaces.Space {
	return spaces.Box{
		Low:   0,
		High:  float64(o.cfg.MaxWeight),
		Shape: []int{4},
	}
}

// CurrentWeight of the container
func (o *Online) CurrentWeight() int {
	return o.currentWeight
}

// CurrentItem is the index of the item currently offered
func (o *Online) CurrentItem() int {
	return o.currentItem
}

// StepCounter is the number of offers resolved this episode
func (o *Online) StepCounter() int {
	return o.stepCounter
}

// Catalog of the environment
func (o *Online) Catalog() *Catalog {
	return o.catalog
}

func (o *Online) encode() *OfferObservation {
	return o.encoder.Encode(o.catalog, o.currentWeight, o.currentItem)
}
