package types

import "time"

// Status is the terminal classification of a supervisor call.
type Status string

const (
	StatusPending        Status = "pending"
	StatusSuccess        Status = "success"
	StatusPartialSuccess Status = "partial_success"
	StatusFailure        Status = "failure"
)

// HandoffEvent records one detected agent-to-agent handoff.
type HandoffEvent struct {
	Type string `json:"type"` // always "handoff"
	From string `json:"from"`
	To   string `json:"to"`
	Task string `json:"task,omitempty"`
}

// NewHandoffEvent builds the workflow event for a detected handoff.
func NewHandoffEvent(from, to, task string) HandoffEvent {
	return HandoffEvent{Type: "handoff", From: from, To: to, Task: task}
}

// DiscussionTurn is one agent contribution in a multi-robot discussion,
// ordered by (Round, invocation order within the round).
type DiscussionTurn struct {
	Agent string `json:"robot"`
	Text  string `json:"text"`
	Round int    `json:"round"`
}

// SupervisorResult is the externally visible outcome of one supervisor
// call. Responses holds successful answers in response order;
// AgentsInvolved lists every agent that responded, successes and failures
// alike. Errors carry per-agent failures as human-readable strings
// prefixed with the offending agent's name.
type SupervisorResult struct {
	Status         Status           `json:"status"`
	Responses      []string         `json:"responses"`
	AgentsInvolved []string         `json:"agents_involved"`
	Errors         []string         `json:"errors"`
	Duration       time.Duration    `json:"duration"`
	Workflow       []HandoffEvent   `json:"workflow"`
	Conversation   []DiscussionTurn `json:"conversation,omitempty"`
	Analysis       map[string]any   `json:"analysis,omitempty"`
}

// NewSupervisorResult returns a pending result with initialized slices.
func NewSupervisorResult() *SupervisorResult {
	return &SupervisorResult{
		Status:         StatusPending,
		Responses:      []string{},
		AgentsInvolved: []string{},
		Errors:         []string{},
		Workflow:       []HandoffEvent{},
	}
}
