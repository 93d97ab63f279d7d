package types

type AgentConfig struct {
	Episodes    int
	Horizon     int
	Policy      Policy
	Environment Environment
}

// Agent drives the configured environment with the configured
// policy
type Agent struct {
	config *AgentConfig
	// collects the traces of the run
	// Only populated if the Run function is invoked
	traces      []*Trace
	policy      Policy
	environment Environment
}

// Instantiates a new Agent
func NewAgent(config *AgentConfig) *Agent {
	return &Agent{
		config:      config,
		traces:      make([]*Trace, config.Episodes),
		policy:      config.Policy,
		environment: config.Environment,
	}
}

// Run the agent for the specified number of episodes and horizon
func (a *Agent) Run() {
	for i := 0; i < a.config.Episodes; i++ {
		a.traces[i] = a.runEpisode(i)
	}
}

func (a *Agent) Traces() []*Trace {
	return a.traces
}

// run a single episode and return the resulting trace
func (a *Agent) runEpisode(episode int) *Trace {
	obs := a.environment.Reset()
	trace := NewTrace()

	for i := 0; i < a.config.Horizon; i++ {
		nextAction, ok := a.policy.NextAction(i, obs)
		if !ok {
			break
		}
		nextObs, reward, done, _ := a.environment.Step(nextAction)
		a.policy.Update(i, obs, nextAction, reward, nextObs, done)

		trace.Append(i, obs, nextAction, reward, nextObs, done)
		obs = nextObs
		if done {
			break
		}
	}
	a.policy.UpdateIteration(episode, trace)

	return trace
}
