package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveOpenAIAPIKeyFromEnv(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-env")

	key, err := ResolveOpenAIAPIKey(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "sk-env", key)
}

func TestResolveOpenAIAPIKeyMissingEverywhere(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY_SECRET_ARN", "")

	_, err := ResolveOpenAIAPIKey(context.Background())
	assert.Error(t, err)
}
