package supervisor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ScientiaCapital/robot-brain/dispatch"
	"github.com/ScientiaCapital/robot-brain/memory"
	"github.com/ScientiaCapital/robot-brain/routing"
	"github.com/ScientiaCapital/robot-brain/types"
)

// Supervisor delegates queries to a fixed team of agents.
type Supervisor struct {
	cfg      types.SupervisorConfig
	logger   *zap.Logger
	registry map[string]types.Agent
	order    []string
	selector *routing.Selector
	coord    *dispatch.Coordinator
	enhancer *memory.Enhancer

	mu      sync.Mutex
	lastCtx CallContext
}

// CallContext is an advisory snapshot of the most recent execute call. It
// exists for introspection and debugging only; delegation never reads it.
type CallContext struct {
	Query  string
	Agents []string
	At     time.Time
}

// ExecuteOptions tunes one Execute call.
type ExecuteOptions struct {
	// Parallel dispatches the selected agents concurrently. With zero or
	// one selected agent, dispatch is sequential regardless.
	Parallel bool

	// Agents bypasses skill selection with an explicit agent list.
	// Unregistered names are ignored.
	Agents []string
}

// New builds a supervisor over agents. The config is validated before any
// agent is touched; registration order is preserved and drives the
// selector's deterministic fallback.
func New(cfg types.SupervisorConfig, agents []types.Agent, opts ...Option) (*Supervisor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.Normalize()

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	logger := o.logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(
		zap.String("component", "supervisor"),
		zap.String("supervisor", cfg.Name),
	)

	s := &Supervisor{
		cfg:      cfg,
		logger:   logger,
		registry: make(map[string]types.Agent, len(agents)),
		selector: routing.NewSelector(o.catalog, o.rules, logger),
		coord:    dispatch.NewCoordinator(cfg.Timeout, cfg.MaxParallelAgents, logger, o.collector),
	}
	for _, agent := range agents {
		if agent == nil {
			continue
		}
		name := agent.Name()
		if _, dup := s.registry[name]; dup {
			logger.Warn("duplicate agent registration ignored", zap.String("agent", name))
			continue
		}
		s.registry[name] = agent
		s.order = append(s.order, name)
	}
	if cfg.MemoryEnabled && o.history != nil {
		s.enhancer = memory.NewEnhancer(o.history, cfg.HistoryLimit, logger)
	}

	logger.Info("supervisor ready",
		zap.Int("agents", len(s.order)),
		zap.String("strategy", string(cfg.Strategy)),
		zap.Duration("timeout", cfg.Timeout))
	return s, nil
}

// Agents returns the registered agent names in registration order.
func (s *Supervisor) Agents() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Config returns the supervisor's configuration.
func (s *Supervisor) Config() types.SupervisorConfig {
	return s.cfg
}

// LastContext returns a snapshot of the most recent execute call.
func (s *Supervisor) LastContext() CallContext {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := s.lastCtx
	snap.Agents = append([]string(nil), s.lastCtx.Agents...)
	return snap
}

// Execute delegates query to the team and always returns a result, never
// an error. Agent failures, timeouts, and even internal panics are folded
// into the result's status and error list.
func (s *Supervisor) Execute(ctx context.Context, query string, opts ExecuteOptions) (result *types.SupervisorResult) {
	start := time.Now()
	logger := s.logger.With(zap.String("trace_id", uuid.NewString()))

	result = types.NewSupervisorResult()
	defer func() {
		if r := recover(); r != nil {
			logger.Error("execute panicked", zap.Any("panic", r))
			result = types.NewSupervisorResult()
			result.Status = types.StatusFailure
			result.Errors = []string{fmt.Sprintf("supervisor error: %v", r)}
			result.Duration = s.cfg.Timeout
		}
	}()

	enhanced := query
	if s.enhancer != nil {
		enhanced = s.enhancer.EnhanceQuery(ctx, query)
	}

	selected := s.selectAgents(enhanced, opts)
	parallel := opts.Parallel && len(selected) > 1
	if parallel && len(selected) > s.cfg.MaxParallelAgents {
		selected = selected[:s.cfg.MaxParallelAgents]
	}
	logger.Info("delegating query",
		zap.Strings("agents", selected),
		zap.Bool("parallel", parallel))

	var responses []types.AgentResponse
	if parallel {
		responses = s.coord.Parallel(ctx, s.registry, selected, enhanced)
	} else {
		responses, result.Workflow = s.coord.Sequential(ctx, s.registry, selected, enhanced)
	}

	seen := make(map[string]bool)
	for _, resp := range responses {
		if !seen[resp.AgentName] {
			seen[resp.AgentName] = true
			result.AgentsInvolved = append(result.AgentsInvolved, resp.AgentName)
		}
		if resp.Success {
			result.Responses = append(result.Responses, resp.Response)
		} else {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %s", resp.AgentName, resp.Error))
		}
	}

	result.Status = aggregateStatus(selected, responses)
	result.Duration = time.Since(start)

	if s.enhancer != nil {
		s.enhancer.PersistExchange(ctx, query, result, s.cfg.Strategy)
	}

	s.mu.Lock()
	s.lastCtx = CallContext{Query: query, Agents: selected, At: start}
	s.mu.Unlock()

	logger.Info("delegation complete",
		zap.String("status", string(result.Status)),
		zap.Int("responses", len(result.Responses)),
		zap.Int("errors", len(result.Errors)),
		zap.Duration("duration", result.Duration))
	return result
}

// selectAgents resolves the agent list for one call: explicit names win,
// then the configured strategy. Non-skill strategies pick the first
// registered agent.
func (s *Supervisor) selectAgents(query string, opts ExecuteOptions) []string {
	if len(opts.Agents) > 0 {
		var selected []string
		for _, name := range opts.Agents {
			if _, ok := s.registry[name]; ok {
				selected = append(selected, name)
			} else {
				s.logger.Warn("requested agent not registered", zap.String("agent", name))
			}
		}
		return selected
	}
	if len(s.order) == 0 {
		return nil
	}
	if s.cfg.Strategy != types.StrategySkillBased {
		return []string{s.order[0]}
	}
	return s.selector.Select(query, s.order)
}

// aggregateStatus classifies one call. A selected agent answered when any
// response bearing its name succeeded. All selected answered means
// success. Otherwise any success, or any timeout explaining the misses,
// salvages partial_success. Handoff targets beyond the selection
// contribute responses but not to the selected count.
func aggregateStatus(selected []string, responses []types.AgentResponse) types.Status {
	succeeded := make(map[string]bool)
	anySuccess := false
	anyTimeout := false
	for _, resp := range responses {
		if resp.Success {
			succeeded[resp.AgentName] = true
			anySuccess = true
		} else if resp.TimedOut() {
			anyTimeout = true
		}
	}

	if len(selected) > 0 {
		allAnswered := true
		for _, name := range selected {
			if !succeeded[name] {
				allAnswered = false
				break
			}
		}
		if allAnswered {
			return types.StatusSuccess
		}
	}
	if anySuccess || anyTimeout {
		return types.StatusPartialSuccess
	}
	return types.StatusFailure
}
