package cmd

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Maho1100/minaria-quest/internal/quest"
	"github.com/Maho1100/minaria-quest/internal/session"
)

func clearProviderEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"MINARIA_LLM_PROVIDER",
		"MINARIA_OPENAI_API_KEY",
		"MINARIA_ANTHROPIC_API_KEY",
		"MINARIA_GEMINI_API_KEY",
		"OPENAI_API_KEY",
		"ANTHROPIC_API_KEY",
		"GEMINI_API_KEY",
	} {
		t.Setenv(k, "")
	}
}

func TestWireModelServicesRefusesWithoutProvider(t *testing.T) {
	clearProviderEnv(t)
	sess := session.New("test", quest.NewState(), nil)

	err := wireModelServices(context.Background(), sess, nil, "test")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "--offline")
	assert.Nil(t, sess.Chat)
}

func TestWireModelServicesWithMockProvider(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("MINARIA_LLM_PROVIDER", "mock")
	sess := session.New("test", quest.NewState(), nil)

	err := wireModelServices(context.Background(), sess, nil, "test")

	require.NoError(t, err)
	assert.NotNil(t, sess.Chat)
	assert.Nil(t, sess.Voice, "no key, no voice")
}
