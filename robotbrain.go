// Package robotbrain provides a top-level convenience entry point for
// building delegation supervisors with minimal boilerplate.
//
// Usage:
//
//	import "github.com/ScientiaCapital/robot-brain"
//
//	brain, err := robotbrain.New("RobotBrain", 30*time.Second,
//	    robotbrain.WithAgents(nerd, zen, pirate),
//	)
//	result := brain.Execute(ctx, "calculate 2 + 2", robotbrain.ExecuteOptions{})
//
// This is a thin wrapper around [supervisor.New]; both produce identical
// results. Use this package when you prefer the shorter import path.
package robotbrain

import (
	"time"

	"github.com/ScientiaCapital/robot-brain/supervisor"
	"github.com/ScientiaCapital/robot-brain/types"
)

// Re-exported core types so simple callers never need to import types/.
type (
	Agent            = types.Agent
	Reply            = types.Reply
	SupervisorResult = types.SupervisorResult
	Status           = types.Status
	ExecuteOptions   = supervisor.ExecuteOptions
	Option           = supervisor.Option
)

// Statuses of a supervisor call.
const (
	StatusSuccess        = types.StatusSuccess
	StatusPartialSuccess = types.StatusPartialSuccess
	StatusFailure        = types.StatusFailure
)

// AgentFunc adapts a plain-text function into an Agent.
var AgentFunc = types.AgentFunc

// ReplyAgentFunc adapts a handoff-capable function into an Agent.
var ReplyAgentFunc = types.ReplyAgentFunc

// Supervisor option shortcuts.
var (
	WithLogger             = supervisor.WithLogger
	WithHistory            = supervisor.WithHistory
	WithCatalog            = supervisor.WithCatalog
	WithCollaborationRules = supervisor.WithCollaborationRules
	WithCollector          = supervisor.WithCollector
)

// WithAgents collects agents for [New].
func WithAgents(agents ...types.Agent) func(*builder) {
	return func(b *builder) { b.agents = append(b.agents, agents...) }
}

// WithConfig replaces the default config built from name and timeout.
func WithConfig(cfg types.SupervisorConfig) func(*builder) {
	return func(b *builder) { b.cfg = &cfg }
}

// WithOptions forwards supervisor options.
func WithOptions(opts ...Option) func(*builder) {
	return func(b *builder) { b.opts = append(b.opts, opts...) }
}

type builder struct {
	cfg    *types.SupervisorConfig
	agents []types.Agent
	opts   []Option
}

// New builds a skill-based supervisor named name with the given shared
// timeout.
func New(name string, timeout time.Duration, opts ...func(*builder)) (*supervisor.Supervisor, error) {
	b := &builder{}
	for _, opt := range opts {
		opt(b)
	}
	cfg := types.DefaultSupervisorConfig(name, timeout)
	if b.cfg != nil {
		cfg = *b.cfg
	}
	return supervisor.New(cfg, b.agents, b.opts...)
}
