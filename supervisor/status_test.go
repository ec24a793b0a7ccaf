package supervisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/ScientiaCapital/robot-brain/types"
)

func TestAggregateStatus(t *testing.T) {
	ok := func(name string) types.AgentResponse {
		return types.AgentResponse{AgentName: name, Success: true, Response: "done"}
	}
	failed := func(name string) types.AgentResponse {
		return types.AgentResponse{AgentName: name, Success: false, Error: "boom"}
	}
	timedOut := func(name string) types.AgentResponse {
		return types.AgentResponse{AgentName: name, Success: false, Error: "timeout after 1s"}
	}

	tests := []struct {
		name      string
		selected  []string
		responses []types.AgentResponse
		want      types.Status
	}{
		{
			name:      "all answered",
			selected:  []string{"A", "B"},
			responses: []types.AgentResponse{ok("A"), ok("B")},
			want:      types.StatusSuccess,
		},
		{
			name:      "one failed",
			selected:  []string{"A", "B"},
			responses: []types.AgentResponse{ok("A"), failed("B")},
			want:      types.StatusPartialSuccess,
		},
		{
			name:      "all failed",
			selected:  []string{"A", "B"},
			responses: []types.AgentResponse{failed("A"), failed("B")},
			want:      types.StatusFailure,
		},
		{
			name:      "timeout without successes",
			selected:  []string{"A"},
			responses: []types.AgentResponse{timedOut("A")},
			want:      types.StatusPartialSuccess,
		},
		{
			name:      "handoff extra does not mask a missing selected agent",
			selected:  []string{"A", "B"},
			responses: []types.AgentResponse{ok("A"), failed("B"), ok("C")},
			want:      types.StatusPartialSuccess,
		},
		{
			name:      "no selection no responses",
			selected:  nil,
			responses: nil,
			want:      types.StatusFailure,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, aggregateStatus(tt.selected, tt.responses))
		})
	}
}

func TestAggregateStatus_Properties(t *testing.T) {
	names := []string{"A", "B", "C", "D"}

	rapid.Check(t, func(t *rapid.T) {
		selected := rapid.SliceOfNDistinct(rapid.SampledFrom(names), 1, len(names), rapid.ID[string]).Draw(t, "selected")

		var responses []types.AgentResponse
		for _, name := range selected {
			switch rapid.IntRange(0, 2).Draw(t, "outcome_"+name) {
			case 0:
				responses = append(responses, types.AgentResponse{AgentName: name, Success: true})
			case 1:
				responses = append(responses, types.AgentResponse{AgentName: name, Success: false, Error: "boom"})
			case 2:
				responses = append(responses, types.AgentResponse{AgentName: name, Success: false, Error: "timeout after 1s"})
			}
		}

		status := aggregateStatus(selected, responses)
		assert.NotEqual(t, types.StatusPending, status)

		allAnswered := true
		anySuccess := false
		anyTimeout := false
		for i := range selected {
			resp := responses[i]
			if resp.Success {
				anySuccess = true
			} else {
				allAnswered = false
				if resp.TimedOut() {
					anyTimeout = true
				}
			}
		}

		switch {
		case allAnswered:
			assert.Equal(t, types.StatusSuccess, status)
		case anySuccess || anyTimeout:
			assert.Equal(t, types.StatusPartialSuccess, status)
		default:
			assert.Equal(t, types.StatusFailure, status)
		}
	})
}
