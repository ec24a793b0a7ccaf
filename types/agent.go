package types

import "context"

// Reply is the structured result of a single agent invocation.
// HandoffTo, when set, names another registered agent that should continue
// the task described by HandoffTask (or the original query when empty).
type Reply struct {
	Response    string `json:"response"`
	HandoffTo   string `json:"handoff_to,omitempty"`
	HandoffTask string `json:"handoff_task,omitempty"`
}

// Agent is the single invocation contract consumed by the engine.
// The supervisor never creates or destroys agents, only invokes them; an
// error returned here is isolated at the invocation boundary and never
// aborts sibling invocations.
type Agent interface {
	// Name returns the agent's unique registry name.
	Name() string
	// Invoke answers the query, optionally requesting a handoff.
	Invoke(ctx context.Context, query string) (*Reply, error)
}

type funcAgent struct {
	name string
	fn   func(ctx context.Context, query string) (string, error)
}

func (a *funcAgent) Name() string { return a.name }

func (a *funcAgent) Invoke(ctx context.Context, query string) (*Reply, error) {
	text, err := a.fn(ctx, query)
	if err != nil {
		return nil, err
	}
	return &Reply{Response: text}, nil
}

// AgentFunc adapts a plain text responder into an Agent.
func AgentFunc(name string, fn func(ctx context.Context, query string) (string, error)) Agent {
	return &funcAgent{name: name, fn: fn}
}

type replyAgent struct {
	name string
	fn   func(ctx context.Context, query string) (*Reply, error)
}

func (a *replyAgent) Name() string { return a.name }

func (a *replyAgent) Invoke(ctx context.Context, query string) (*Reply, error) {
	return a.fn(ctx, query)
}

// ReplyAgentFunc adapts a handoff-capable responder into an Agent.
func ReplyAgentFunc(name string, fn func(ctx context.Context, query string) (*Reply, error)) Agent {
	return &replyAgent{name: name, fn: fn}
}
