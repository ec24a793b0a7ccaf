package types

import "time"

// AgentResponse is the immutable outcome of one agent invocation.
//
// Invariants: Success=false implies Error is set and Response is empty;
// HandoffTo/HandoffTask are only meaningful when Success=true.
type AgentResponse struct {
	AgentName   string        `json:"agent_name"`
	Response    string        `json:"response"`
	Duration    time.Duration `json:"duration"`
	Success     bool          `json:"success"`
	Error       string        `json:"error,omitempty"`
	HandoffTo   string        `json:"handoff_to,omitempty"`
	HandoffTask string        `json:"handoff_task,omitempty"`
}

// TimedOut reports whether this response records a timeout failure.
func (r AgentResponse) TimedOut() bool {
	return !r.Success && IsTimeoutText(r.Error)
}
