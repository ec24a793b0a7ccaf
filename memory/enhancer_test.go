package memory

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ScientiaCapital/robot-brain/types"
)

type failingHistory struct{}

func (failingHistory) GetRecentTurns(context.Context, int) ([]Turn, error) {
	return nil, errors.New("backend down")
}

func (failingHistory) StoreTurn(context.Context, Turn) error {
	return errors.New("backend down")
}

func TestEnhancer_EnhanceQuery_NoProvider(t *testing.T) {
	e := NewEnhancer(nil, 50, nil)

	assert.Equal(t, "what is my name?", e.EnhanceQuery(context.Background(), "what is my name?"))
}

func TestEnhancer_EnhanceQuery_ProviderErrorDegrades(t *testing.T) {
	e := NewEnhancer(failingHistory{}, 50, nil)

	assert.Equal(t, "hello", e.EnhanceQuery(context.Background(), "hello"))
}

func TestEnhancer_EnhanceQuery_EmptyHistory(t *testing.T) {
	e := NewEnhancer(NewInMemoryHistory(10), 50, nil)

	assert.Equal(t, "hello", e.EnhanceQuery(context.Background(), "hello"))
}

func TestEnhancer_EnhanceQuery_RecallsEarlierTurns(t *testing.T) {
	history := NewInMemoryHistory(10)
	require.NoError(t, history.StoreTurn(context.Background(), Turn{Role: RoleUser, Content: "My name is Alice"}))
	require.NoError(t, history.StoreTurn(context.Background(), Turn{Role: RoleAssistant, Content: "Nice to meet you, Alice"}))

	e := NewEnhancer(history, 50, nil)
	enhanced := e.EnhanceQuery(context.Background(), "What is my name?")

	assert.True(t, strings.HasPrefix(enhanced, "What is my name?\nContext: "))
	assert.Contains(t, enhanced, "User: My name is Alice")
	assert.Contains(t, enhanced, "Alice")
}

func TestEnhancer_EnhanceQuery_TruncatesAssistantTurns(t *testing.T) {
	history := NewInMemoryHistory(10)
	long := strings.Repeat("a", 300)
	require.NoError(t, history.StoreTurn(context.Background(), Turn{Role: RoleAssistant, Content: long}))

	e := NewEnhancer(history, 50, nil)
	enhanced := e.EnhanceQuery(context.Background(), "q")

	assert.Contains(t, enhanced, strings.Repeat("a", 200)+"...")
	assert.NotContains(t, enhanced, strings.Repeat("a", 201))
}

func TestEnhancer_EnhanceQuery_TruncatesOnRuneBoundary(t *testing.T) {
	history := NewInMemoryHistory(10)
	long := strings.Repeat("é", 250)
	require.NoError(t, history.StoreTurn(context.Background(), Turn{Role: RoleAssistant, Content: long}))

	e := NewEnhancer(history, 50, nil)
	enhanced := e.EnhanceQuery(context.Background(), "q")

	assert.True(t, utf8.ValidString(enhanced))
	assert.Contains(t, enhanced, strings.Repeat("é", 200)+"...")
	assert.NotContains(t, enhanced, strings.Repeat("é", 201))
}

func TestEnhancer_PersistExchange(t *testing.T) {
	history := NewInMemoryHistory(10)
	e := NewEnhancer(history, 50, nil)

	result := types.NewSupervisorResult()
	result.Status = types.StatusSuccess
	result.Responses = []string{"four", "indeed"}
	result.AgentsInvolved = []string{"RoboNerd", "RoboFriend"}
	result.Duration = 120 * time.Millisecond

	e.PersistExchange(context.Background(), "what is 2+2?", result, types.StrategySkillBased)

	turns, err := history.GetRecentTurns(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, turns, 2)

	assert.Equal(t, RoleUser, turns[0].Role)
	assert.Equal(t, "what is 2+2?", turns[0].Content)
	assert.Equal(t, "skill_based", turns[0].Metadata["strategy"])
	assert.NotEmpty(t, turns[0].ID)

	assert.Equal(t, RoleAssistant, turns[1].Role)
	assert.Equal(t, "four indeed", turns[1].Content)
	assert.Equal(t, "success", turns[1].Metadata["status"])
	assert.Equal(t, 2, turns[1].Metadata["response_count"])
}

func TestEnhancer_PersistExchange_ErrorSwallowed(t *testing.T) {
	e := NewEnhancer(failingHistory{}, 50, nil)

	assert.NotPanics(t, func() {
		e.PersistExchange(context.Background(), "q", types.NewSupervisorResult(), types.StrategySkillBased)
	})
}
