package supervisor

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ScientiaCapital/robot-brain/types"
)

// Discussion prompts quote at most this many trailing turns, each
// abbreviated, so prompts stay bounded as rounds accumulate.
const (
	discussionTailTurns  = 3
	discussionExcerptLen = 100
)

// ExecuteDiscussion runs rounds of round-robin discussion on topic among
// the named agents (all registered agents when the list is empty). Each
// speaker sees the topic plus the tail of the conversation so far. Agents
// that fail or time out are simply absent from that round; the discussion
// itself always succeeds.
func (s *Supervisor) ExecuteDiscussion(ctx context.Context, topic string, agents []string, rounds int) *types.SupervisorResult {
	start := time.Now()
	if rounds <= 0 {
		rounds = 1
	}
	if len(agents) == 0 {
		agents = s.order
	}

	result := types.NewSupervisorResult()
	seen := make(map[string]bool)

	for round := 1; round <= rounds; round++ {
		for _, name := range agents {
			agent, ok := s.registry[name]
			if !ok {
				s.logger.Warn("discussion agent not registered", zap.String("agent", name))
				continue
			}
			prompt := discussionPrompt(topic, result.Conversation)
			resp := s.coord.Invoke(ctx, agent, prompt, s.cfg.Timeout)
			if !resp.Success {
				s.logger.Warn("discussion turn failed",
					zap.String("agent", name),
					zap.Int("round", round),
					zap.String("error", resp.Error))
				continue
			}
			result.Conversation = append(result.Conversation, types.DiscussionTurn{
				Agent: name,
				Text:  resp.Response,
				Round: round,
			})
			result.Responses = append(result.Responses, resp.Response)
			if !seen[name] {
				seen[name] = true
				result.AgentsInvolved = append(result.AgentsInvolved, name)
			}
		}
	}

	result.Status = types.StatusSuccess
	result.Duration = time.Since(start)
	s.logger.Info("discussion complete",
		zap.String("topic", topic),
		zap.Int("rounds", rounds),
		zap.Int("turns", len(result.Conversation)))
	return result
}

func discussionPrompt(topic string, conversation []types.DiscussionTurn) string {
	var b strings.Builder
	b.WriteString("Topic: ")
	b.WriteString(topic)
	b.WriteString("\n")

	if len(conversation) > 0 {
		b.WriteString("Previous discussion:\n")
		tail := conversation
		if len(tail) > discussionTailTurns {
			tail = tail[len(tail)-discussionTailTurns:]
		}
		for _, turn := range tail {
			text := turn.Text
			if runes := []rune(text); len(runes) > discussionExcerptLen {
				text = string(runes[:discussionExcerptLen])
			}
			b.WriteString(turn.Agent)
			b.WriteString(": ")
			b.WriteString(text)
			b.WriteString("...\n")
		}
	}

	b.WriteString("\nWhat are your thoughts?")
	return b.String()
}
