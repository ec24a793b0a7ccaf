package memory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ScientiaCapital/robot-brain/types"
)

// Assistant turns are abbreviated in the context block so one verbose
// answer cannot crowd out the rest of the history.
const assistantExcerptLen = 200

// Enhancer enriches queries with conversation history and persists
// completed exchanges. All provider failures degrade silently.
type Enhancer struct {
	history HistoryProvider
	limit   int
	logger  *zap.Logger
	now     func() time.Time
}

// NewEnhancer builds an enhancer over history, fetching up to limit turns
// per query. A nil history disables enhancement; a nil logger falls back
// to a no-op logger.
func NewEnhancer(history HistoryProvider, limit int, logger *zap.Logger) *Enhancer {
	if logger == nil {
		logger = zap.NewNop()
	}
	if limit <= 0 {
		limit = 50
	}
	return &Enhancer{
		history: history,
		limit:   limit,
		logger:  logger.With(zap.String("component", "memory_enhancer")),
		now:     time.Now,
	}
}

// EnhanceQuery prepends recent conversation context to query. User turns
// appear verbatim, assistant turns are truncated. Without a provider, on
// provider error, or with an empty history, the query is returned as-is.
func (e *Enhancer) EnhanceQuery(ctx context.Context, query string) string {
	if e.history == nil {
		return query
	}
	turns, err := e.history.GetRecentTurns(ctx, e.limit)
	if err != nil {
		e.logger.Warn("history fetch failed, using bare query", zap.Error(err))
		return query
	}
	if len(turns) == 0 {
		return query
	}

	var lines []string
	for _, turn := range turns {
		switch turn.Role {
		case RoleUser:
			lines = append(lines, "User: "+turn.Content)
		case RoleAssistant:
			content := turn.Content
			if runes := []rune(content); len(runes) > assistantExcerptLen {
				content = string(runes[:assistantExcerptLen]) + "..."
			}
			lines = append(lines, "Assistant: "+content)
		}
	}
	if len(lines) == 0 {
		return query
	}
	return query + "\nContext: " + strings.Join(lines, "\n")
}

// PersistExchange records one completed execute call as a user turn
// followed by an assistant turn. Errors are logged and swallowed.
func (e *Enhancer) PersistExchange(ctx context.Context, query string, result *types.SupervisorResult, strategy types.DelegationStrategy) {
	if e.history == nil || result == nil {
		return
	}

	userTurn := Turn{
		ID:      uuid.NewString(),
		Role:    RoleUser,
		Content: query,
		Metadata: map[string]any{
			"agents":    result.AgentsInvolved,
			"strategy":  string(strategy),
			"timestamp": e.now().Format(time.RFC3339),
		},
		CreatedAt: e.now(),
	}
	if err := e.history.StoreTurn(ctx, userTurn); err != nil {
		e.logger.Warn("failed to store user turn", zap.Error(err))
		return
	}

	assistantTurn := Turn{
		ID:      uuid.NewString(),
		Role:    RoleAssistant,
		Content: strings.Join(result.Responses, " "),
		Metadata: map[string]any{
			"agents":         result.AgentsInvolved,
			"status":         string(result.Status),
			"duration":       result.Duration.Seconds(),
			"response_count": len(result.Responses),
			"workflow":       result.Workflow,
			"errors":         result.Errors,
		},
		CreatedAt: e.now(),
	}
	if err := e.history.StoreTurn(ctx, assistantTurn); err != nil {
		e.logger.Warn("failed to store assistant turn", zap.Error(err))
	}
}
