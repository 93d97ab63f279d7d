package knapsack

import (
	"golang.org/x/exp/rand"

	"github.com/joefarrington/or-gym/spaces"
	"github.com/joefarrington/or-gym/types"
)

// Bounded simulates the bounded knapsack decision process: each item
// can only be selected a limited number of times. The observation
// carries an action mask so a driver can avoid sampling illegal
// actions.
//
// Limit exhaustion is checked before the weight fit: an item with zero
// remaining limit ends the episode even if it would otherwise fit.
type Bounded struct {
	cfg     Config
	catalog *Catalog
	items   *limitedItems
	encoder maskedTableEncoder

	currentWeight int
	rng           *rand.Rand
}

var _ types.Environment = &Bounded{}

// NewBounded builds the environment. The item limits are drawn before
// the weight/value catalog, keeping the draw order stable for a given
// seed. Set "mask": false in the overrides to get the bare table
// observation without the mask wrapper.
func NewBounded(overrides map[string]any) (*Bounded, error) {
	cfg := DefaultConfig()
	if err := cfg.Apply(overrides); err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(cfg.Seed))
	limitInit := drawLimits(cfg.N, rng)
	b := &Bounded{
		cfg:     cfg,
		catalog: drawCatalog(cfg.N, rng),
		items:   newLimitedItems(limitInit),
		encoder: maskedTableEncoder{maxWeight: cfg.MaxWeight, mask: cfg.Mask},
		rng:     rng,
	}
	b.Reset()
	return b, nil
}

func (b *Bounded) Reset() types.Observation {
	b.currentWeight = 0
	b.items.Reset()
	return b.encode()
}

func (b *Bounded) Step(item int) (types.Observation, int, bool, map[string]any) {
	var reward int
	var done bool
	if b.items.Admissible(item) {
		if b.catalog.Weights[item]+b.currentWeight <= b.cfg.MaxWeight {
			b.items.Commit(item)
			b.currentWeight += b.catalog.Weights[item]
			reward = b.catalog.Values[item]
			done = b.currentWeight == b.cfg.MaxWeight
		} else {
			// over weight, episode over
			reward = 0
			done = true
		}
	} else {
		// item unavailable, episode over
		reward = 0
		done = true
	}
	return b.encode(), reward, done, map[string]any{}
}

// SampleAction draws uniformly among the items whose limit is not
// exhausted. Weight feasibility is not checked.
func (b *Bounded) SampleAction() int {
	avail := b.items.available()
	return avail[b.rng.Intn(len(avail))]
}

func (b *Bounded) SetSeed(seed uint64) []uint64 {
	b.rng.Seed(seed)
	return []uint64{seed}
}

func (b *Bounded) ActionSpace() spaces.Space {
	return spaces.Discrete{N: b.catalog.N()}
}

func (b *Bounded) ObservationSpace() spaces.Space {
	n := b.catalog.N()
	state := spaces.Box{
		Low:   0,
		High:  float64(b.cfg.MaxWeight),
		Shape: []int{3, n + 1},
	}
	if !b.cfg.Mask {
		return state
	}
	return spaces.Dict{
		"action_mask":   spaces.Box{Low: 0, High: 1, Shape: []int{n}},
		"avail_actions": spaces.Box{Low: 0, High: 1, Shape: []int{n}},
		"state":         state,
	}
}

// CurrentWeight of the container
func (b *Bounded) CurrentWeight() int {
	return b.currentWeight
}

// Limits remaining for each item
func (b *Bounded) Limits() []int {
	limits := make([]int, len(b.items.limits))
	copy(limits, b.items.limits)
	return limits
}

// Catalog of the environment
func (b *Bounded) Catalog() *Catalog {
	return b.catalog
}

func (b *Bounded) encode() types.Observation {
	return b.encoder.Encode(b.catalog, b.items.limits, b.currentWeight)
}
