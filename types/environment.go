package types

// Environment is the transition interface exposed by every knapsack
// variant. A driver calls Reset once per episode and then Step until
// done comes back true.
type Environment interface {
	// Reset starts a fresh episode and returns the initial observation
	Reset() Observation
	// Step applies an action and returns the next observation, the
	// reward collected, whether the episode ended and an info mapping
	// (always empty for the knapsack variants)
	Step(action int) (Observation, int, bool, map[string]any)
	// SampleAction draws an action from the variant's action space
	SampleAction() int
	// SetSeed reseeds the environment's sampling source
	SetSeed(seed uint64) []uint64
}

// Observation of the environment that a driver acts on
type Observation interface {
	// Indexed by the Hash
	// Should be deterministic
	Hash() string
	// Actions admissible from this observation
	Actions() []int
}
