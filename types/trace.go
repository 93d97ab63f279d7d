package types

// Trace of an episode as tuples (obs, action, reward, nextObs, done)
type Trace struct {
	observations []Observation
	actions      []int
	rewards      []int
	nextObs      []Observation
	dones        []bool
}

func NewTrace() *Trace {
	return &Trace{
		observations: make([]Observation, 0),
		actions:      make([]int, 0),
		rewards:      make([]int, 0),
		nextObs:      make([]Observation, 0),
		dones:        make([]bool, 0),
	}
}

func (t *Trace) Append(step int, obs Observation, action, reward int, next Observation, done bool) {
	t.observations = append(t.observations, obs)
	t.actions = append(t.actions, action)
	t.rewards = append(t.rewards, reward)
	t.nextObs = append(t.nextObs, next)
	t.dones = append(t.dones, done)
}

func (t *Trace) Len() int {
	return len(t.observations)
}

func (t *Trace) Get(i int) (Observation, int, int, Observation, bool) {
	if i >= len(t.observations) {
		return nil, 0, 0, nil, false
	}
	return t.observations[i], t.actions[i], t.rewards[i], t.nextObs[i], true
}

func (t *Trace) Last() (Observation, int, int, Observation, bool) {
	if len(t.observations) < 1 {
		return nil, 0, 0, nil, false
	}
	lastIndex := len(t.observations) - 1
	return t.observations[lastIndex], t.actions[lastIndex], t.rewards[lastIndex], t.nextObs[lastIndex], true
}

// Done reports whether the episode reached a terminal outcome
// (as opposed to being cut off by the driver's horizon)
func (t *Trace) Done() bool {
	if len(t.dones) < 1 {
		return false
	}
	return t.dones[len(t.dones)-1]
}

// TotalReward collected over the episode
func (t *Trace) TotalReward() int {
	total := 0
	for _, r := range t.rewards {
		total += r
	}
	return total
}
