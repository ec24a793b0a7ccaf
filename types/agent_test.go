package types

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgentFunc(t *testing.T) {
	a := AgentFunc("RoboNerd", func(_ context.Context, query string) (string, error) {
		return "answer to " + query, nil
	})

	assert.Equal(t, "RoboNerd", a.Name())

	reply, err := a.Invoke(context.Background(), "2+2")
	require.NoError(t, err)
	assert.Equal(t, "answer to 2+2", reply.Response)
	assert.Empty(t, reply.HandoffTo)
}

func TestAgentFunc_Error(t *testing.T) {
	a := AgentFunc("RoboFriend", func(_ context.Context, _ string) (string, error) {
		return "", errors.New("circuits overloaded")
	})

	reply, err := a.Invoke(context.Background(), "hi")
	assert.Nil(t, reply)
	assert.EqualError(t, err, "circuits overloaded")
}

func TestReplyAgentFunc_Handoff(t *testing.T) {
	a := ReplyAgentFunc("RoboDrama", func(_ context.Context, _ string) (*Reply, error) {
		return &Reply{
			Response:    "the stage is set",
			HandoffTo:   "RoboPirate",
			HandoffTask: "finish the tale",
		}, nil
	})

	reply, err := a.Invoke(context.Background(), "tell a story")
	require.NoError(t, err)
	assert.Equal(t, "RoboPirate", reply.HandoffTo)
	assert.Equal(t, "finish the tale", reply.HandoffTask)
}
