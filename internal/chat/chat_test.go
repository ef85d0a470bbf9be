package chat

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Maho1100/minaria-quest/internal/llm"
)

func TestReply(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`It's all right, take your time 🌼`),
	})
	svc := NewService(mock)

	reply, err := svc.Reply(context.Background(), nil, "I keep getting print wrong")
	require.NoError(t, err)
	assert.Equal(t, "It's all right, take your time 🌼", reply)

	require.Equal(t, 1, mock.CallCount())
	req := mock.Calls[0]
	assert.NotEmpty(t, req.System, "persona prompt must be sent")
	assert.Nil(t, req.Schema, "chat replies are free text")
}

func TestReplyIncludesHistory(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`Of course!`),
	})
	svc := NewService(mock)

	history := []Exchange{
		{User: "hello", Reply: "Hello, adventurer 🌼"},
	}
	_, err := svc.Reply(context.Background(), history, "can you repeat that?")
	require.NoError(t, err)

	req := mock.Calls[0]
	require.Len(t, req.Messages, 3)
	assert.Equal(t, llm.RoleUser, req.Messages[0].Role)
	assert.Equal(t, llm.RoleAssistant, req.Messages[1].Role)
	assert.Equal(t, "can you repeat that?", req.Messages[2].Content)
}

func TestReplyApologizesOnFailure(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue yields provider unavailable
	svc := NewService(mock)

	reply, err := svc.Reply(context.Background(), nil, "hi")
	assert.Error(t, err)
	assert.Equal(t, Apology, reply, "the learner sees the apology, not the error")
}
