package knapsack

import (
	"golang.org/x/exp/rand"

	"github.com/joefarrington/or-gym/spaces"
	"github.com/joefarrington/or-gym/types"
)

// Unbounded simulates the unbounded knapsack decision process: any
// item can be placed any number of times. An episode proceeds by
// placing items one at a time until the container is exactly full or a
// placement would overflow it, at which point the episode ends.
//
// Placing an item that fits pays its value as reward. A placement that
// would overflow is not an error: it terminates the episode with zero
// reward and leaves the container untouched.
type Unbounded struct {
	cfg     Config
	catalog *Catalog
	items   AdmissibilityPolicy
	encoder tableEncoder

	currentWeight int
	rng           *rand.Rand
}

var _ types.Environment = &Unbounded{}

// NewUnbounded builds the environment, applying recognized keys of the
// override mapping on top of the defaults. The catalog is drawn once
// here and never redrawn.
func NewUnbounded(overrides map[string]any) (*Unbounded, error) {
	cfg := DefaultConfig()
	if err := cfg.Apply(overrides); err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(cfg.Seed))
	u := &Unbounded{
		cfg:     cfg,
		catalog: drawCatalog(cfg.N, rng),
		items:   unlimitedItems{},
		encoder: tableEncoder{maxWeight: cfg.MaxWeight},
		rng:     rng,
	}
	u.Reset()
	return u, nil
}

func (u *Unbounded) Reset() types.Observation {
	u.currentWeight = 0
	u.items.Reset()
	return u.encode()
}

func (u *Unbounded) Step(item int) (types.Observation, int, bool, map[string]any) {
	var reward int
	var done bool
	if !u.items.Admissible(item) {
		// item exhausted, episode over
		reward = 0
		done = true
	} else if u.catalog.Weights[item]+u.currentWeight <= u.cfg.MaxWeight {
		u.items.Commit(item)
		u.currentWeight += u.catalog.Weights[item]
		reward = u.catalog.Values[item]
		done = u.currentWeight == u.cfg.MaxWeight
	} else {
		// over weight, episode over
		reward = 0
		done = true
	}
	return u.encode(), reward, done, map[string]any{}
}

// SampleAction draws an item uniformly from the full catalog. It does
// not check admissibility: the sampler mirrors the policy's action
// space, not a curated legal-move generator.
func (u *Unbounded) SampleAction() int {
	return u.rng.Intn(u.catalog.N())
}

func (u *Unbounded) SetSeed(seed uint64) []uint64 {
	u.rng.Seed(seed)
	return []uint64{seed}
}

func (u *Unbounded) ActionSpace() spaces.Space {
	return spaces.Discrete{N: u.catalog.N()}
}

func (u *Unbounded) ObservationSpace() spaces.Space {
	return spaces.Box{
		Low:   0,
		High:  float64(u.cfg.MaxWeight),
		Shape: []int{2, u.catalog.N() + 1},
	}
}

// CurrentWeight of the container
func (u *Unbounded) CurrentWeight() int {
	return u.currentWeight
}

// Catalog of the environment
func (u *Unbounded) Catalog() *Catalog {
	return u.catalog
}

func (u *Unbounded) encode() *TableObservation {
	return u.encoder.Encode(u.catalog, u.currentWeight)
}
