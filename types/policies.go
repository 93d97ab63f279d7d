package types

import (
	"time"

	"golang.org/x/exp/rand"
)

// Policy selects actions for the agent. The knapsack environments only
// ship sampling policies; nothing here learns from the traces.
type Policy interface {
	UpdateIteration(int, *Trace)
	NextAction(int, Observation) (int, bool)
	Update(int, Observation, int, int, Observation, bool)
	Reset()
}

// RandomPolicy picks uniformly among the actions the observation admits
type RandomPolicy struct {
	rand *rand.Rand
}

var _ Policy = &RandomPolicy{}

func NewRandomPolicy() *RandomPolicy {
	return &RandomPolicy{
		rand: rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
	}
}

func NewRandomPolicyWithSeed(seed uint64) *RandomPolicy {
	return &RandomPolicy{
		rand: rand.New(rand.NewSource(seed)),
	}
}

func (r *RandomPolicy) Reset() {

}

func (r *RandomPolicy) UpdateIteration(_ int, _ *Trace) {

}

func (r *RandomPolicy) NextAction(step int, obs Observation) (int, bool) {
	actions := obs.Actions()
	if len(actions) == 0 {
		return 0, false
	}
	i := r.rand.Intn(len(actions))
	return actions[i], true
}

func (r *RandomPolicy) Update(_ int, _ Observation, _, _ int, _ Observation, _ bool) {}

// Masked reports the subset of actions currently flagged admissible.
// Observations that carry an action mask implement it.
type Masked interface {
	MaskedActions() []int
}

// MaskedRandomPolicy picks uniformly among mask-admissible actions and
// stops the episode when none remain. On observations without a mask it
// behaves like RandomPolicy.
type MaskedRandomPolicy struct {
	rand *rand.Rand
}

var _ Policy = &MaskedRandomPolicy{}

func NewMaskedRandomPolicy() *MaskedRandomPolicy {
	return &MaskedRandomPolicy{
		rand: rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
	}
}

func NewMaskedRandomPolicyWithSeed(seed uint64) *MaskedRandomPolicy {
	return &MaskedRandomPolicy{
		rand: rand.New(rand.NewSource(seed)),
	}
}

func (m *MaskedRandomPolicy) Reset() {

}

func (m *MaskedRandomPolicy) UpdateIteration(_ int, _ *Trace) {

}

func (m *MaskedRandomPolicy) NextAction(step int, obs Observation) (int, bool) {
	actions := obs.Actions()
	if masked, ok := obs.(Masked); ok {
		actions = masked.MaskedActions()
	}
	if len(actions) == 0 {
		return 0, false
	}
	i := m.rand.Intn(len(actions))
	return actions[i], true
}

func (m *MaskedRandomPolicy) Update(_ int, _ Observation, _, _ int, _ Observation, _ bool) {}
