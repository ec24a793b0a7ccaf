package types

import "time"

// DelegationStrategy selects how the supervisor delegates queries.
type DelegationStrategy string

const (
	// StrategySkillBased routes by keyword-category skill matching.
	StrategySkillBased DelegationStrategy = "skill_based"

	// The remaining strategies are reserved extension points. They
	// deterministically pick the first registered agent; see the routing
	// package before building on them.
	StrategyRoundRobin   DelegationStrategy = "round_robin"
	StrategyLoadBalanced DelegationStrategy = "load_balanced"
	StrategySpecialized  DelegationStrategy = "specialized"
)

// SupervisorConfig is the immutable configuration of a supervisor.
type SupervisorConfig struct {
	// Name identifies the supervisor. Required.
	Name string `json:"name" yaml:"name"`

	// Timeout is the shared deadline for one execute call. Required, > 0.
	// Parallel dispatch applies it to the whole batch; sequential dispatch
	// divides it evenly across the selected agents.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// MaxParallelAgents bounds parallel fan-out. Agents selected beyond
	// the bound are dropped from the batch. Default 3.
	MaxParallelAgents int `json:"max_parallel_agents" yaml:"max_parallel_agents"`

	// Strategy is the delegation strategy. Default skill_based.
	Strategy DelegationStrategy `json:"delegation_strategy" yaml:"delegation_strategy"`

	// MemoryEnabled turns on conversation-memory query enhancement when a
	// history provider is configured. Default false.
	MemoryEnabled bool `json:"memory_enabled" yaml:"memory_enabled"`

	// HistoryLimit caps how many recent turns are fetched for query
	// enhancement. Default 50.
	HistoryLimit int `json:"conversation_history_limit" yaml:"conversation_history_limit"`
}

// DefaultSupervisorConfig returns a config with defaults applied.
func DefaultSupervisorConfig(name string, timeout time.Duration) SupervisorConfig {
	return SupervisorConfig{
		Name:              name,
		Timeout:           timeout,
		MaxParallelAgents: 3,
		Strategy:          StrategySkillBased,
		HistoryLimit:      50,
	}
}

// Normalize fills unset optional fields with their defaults.
func (c *SupervisorConfig) Normalize() {
	if c.MaxParallelAgents <= 0 {
		c.MaxParallelAgents = 3
	}
	if c.Strategy == "" {
		c.Strategy = StrategySkillBased
	}
	if c.HistoryLimit <= 0 {
		c.HistoryLimit = 50
	}
}

// Validate checks the required fields. Construction of a supervisor with an
// invalid config fails synchronously before any agent is touched.
func (c *SupervisorConfig) Validate() error {
	if c.Name == "" {
		return NewError(ErrInvalidConfig, "supervisor name is required")
	}
	if c.Timeout <= 0 {
		return NewError(ErrInvalidConfig, "supervisor timeout must be positive")
	}
	return nil
}
