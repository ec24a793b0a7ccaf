package memory

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "robotbrain:history:"

// RedisHistory stores a session's turns in a Redis list, newest at the
// tail, trimmed to maxTurns.
type RedisHistory struct {
	client   redis.UniversalClient
	key      string
	maxTurns int
}

var _ HistoryProvider = (*RedisHistory)(nil)

// NewRedisHistory binds a provider to sessionID on client. maxTurns <= 0
// means unbounded.
func NewRedisHistory(client redis.UniversalClient, sessionID string, maxTurns int) *RedisHistory {
	return &RedisHistory{
		client:   client,
		key:      redisKeyPrefix + sessionID,
		maxTurns: maxTurns,
	}
}

func (h *RedisHistory) GetRecentTurns(ctx context.Context, limit int) ([]Turn, error) {
	start := int64(0)
	if limit > 0 {
		start = int64(-limit)
	}
	raw, err := h.client.LRange(ctx, h.key, start, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}

	turns := make([]Turn, 0, len(raw))
	for _, entry := range raw {
		var turn Turn
		if err := json.Unmarshal([]byte(entry), &turn); err != nil {
			return nil, fmt.Errorf("corrupt history entry: %w", err)
		}
		turns = append(turns, turn)
	}
	return turns, nil
}

func (h *RedisHistory) StoreTurn(ctx context.Context, turn Turn) error {
	data, err := json.Marshal(turn)
	if err != nil {
		return fmt.Errorf("failed to encode turn: %w", err)
	}
	if err := h.client.RPush(ctx, h.key, data).Err(); err != nil {
		return fmt.Errorf("failed to store turn: %w", err)
	}
	if h.maxTurns > 0 {
		if err := h.client.LTrim(ctx, h.key, int64(-h.maxTurns), -1).Err(); err != nil {
			return fmt.Errorf("failed to trim history: %w", err)
		}
	}
	return nil
}
