package memory

import (
	"context"
	"sync"
	"time"
)

// Turn roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one utterance in a conversation session.
type Turn struct {
	ID        string         `json:"id"`
	Role      string         `json:"role"`
	Content   string         `json:"content"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// HistoryProvider stores the turns of one session. Implementations are
// pre-bound to a session; callers never pass session IDs per call.
type HistoryProvider interface {
	// GetRecentTurns returns up to limit turns in chronological order.
	GetRecentTurns(ctx context.Context, limit int) ([]Turn, error)

	// StoreTurn appends a turn to the session.
	StoreTurn(ctx context.Context, turn Turn) error
}

// InMemoryHistory is a mutex-guarded ring of turns. It keeps the most
// recent maxTurns entries.
type InMemoryHistory struct {
	mu       sync.Mutex
	turns    []Turn
	maxTurns int
	now      func() time.Time
}

var _ HistoryProvider = (*InMemoryHistory)(nil)

// NewInMemoryHistory builds an in-memory provider keeping at most maxTurns
// turns. maxTurns <= 0 means unbounded.
func NewInMemoryHistory(maxTurns int) *InMemoryHistory {
	return &InMemoryHistory{maxTurns: maxTurns, now: time.Now}
}

func (h *InMemoryHistory) GetRecentTurns(_ context.Context, limit int) ([]Turn, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	turns := h.turns
	if limit > 0 && len(turns) > limit {
		turns = turns[len(turns)-limit:]
	}
	out := make([]Turn, len(turns))
	copy(out, turns)
	return out, nil
}

func (h *InMemoryHistory) StoreTurn(_ context.Context, turn Turn) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if turn.CreatedAt.IsZero() {
		turn.CreatedAt = h.now()
	}
	h.turns = append(h.turns, turn)
	if h.maxTurns > 0 && len(h.turns) > h.maxTurns {
		h.turns = h.turns[len(h.turns)-h.maxTurns:]
	}
	return nil
}
