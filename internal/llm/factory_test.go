package llm

import (
	"context"
	"testing"

	"github.com/agenthands/conceptgraph/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientMissingCredential(t *testing.T) {
	for _, provider := range []string{"zhipu", "azure", "openai", "claude", "gemini"} {
		t.Run(provider, func(t *testing.T) {
			c, err := NewClient(context.Background(), config.LLMConfig{Provider: provider})
			assert.Nil(t, c)
			assert.ErrorIs(t, err, ErrMissingCredential)
		})
	}
}

func TestNewClientProviders(t *testing.T) {
	ctx := context.Background()

	c, err := NewClient(ctx, config.LLMConfig{Provider: "zhipu", APIKey: "k"})
	require.NoError(t, err)
	zhipu, ok := c.(*OpenAIClient)
	require.True(t, ok)
	assert.Equal(t, "zhipu", zhipu.provider)
	assert.Equal(t, zhipuDefaultModel, zhipu.model)

	c, err = NewClient(ctx, config.LLMConfig{Provider: "AZURE", APIKey: "k", BaseURL: "https://example.openai.azure.com", Deployment: "gpt-4o"})
	require.NoError(t, err)
	azure, ok := c.(*OpenAIClient)
	require.True(t, ok)
	assert.Equal(t, "azure", azure.provider)
	assert.Equal(t, "gpt-4o", azure.model)

	c, err = NewClient(ctx, config.LLMConfig{Provider: "ollama"})
	require.NoError(t, err)
	assert.IsType(t, &OpenAIClient{}, c)

	c, err = NewClient(ctx, config.LLMConfig{Provider: "claude", APIKey: "k"})
	require.NoError(t, err)
	assert.IsType(t, &ClaudeClient{}, c)
}

func TestNewClientErrors(t *testing.T) {
	_, err := NewClient(context.Background(), config.LLMConfig{Provider: "azure", APIKey: "k"})
	assert.ErrorContains(t, err, "base_url is required")

	_, err = NewClient(context.Background(), config.LLMConfig{Provider: "mistral", APIKey: "k"})
	assert.ErrorContains(t, err, "unsupported llm provider")
}
