package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/agenthands/conceptgraph/internal/config"
)

const (
	zhipuBaseURL      = "https://open.bigmodel.cn/api/paas/v4/"
	zhipuDefaultModel = "glm-4-flash"

	azureDefaultAPIVersion = "2024-06-01"

	ollamaDefaultBaseURL = "http://localhost:11434"
	ollamaDefaultModel   = "llama3.1"

	claudeDefaultModel = "claude-3-5-haiku-latest"
	geminiDefaultModel = "gemini-1.5-flash"
	openAIDefaultModel = "gpt-4o-mini"
)

// NewClient builds the provider client selected by cfg.Provider. Hosted
// providers fail with ErrMissingCredential before any network work when no
// API key is configured.
func NewClient(ctx context.Context, cfg config.LLMConfig) (LLMClient, error) {
	provider := strings.ToLower(strings.TrimSpace(cfg.Provider))

	if cfg.APIKey == "" && cfg.RequiresAPIKey() {
		return nil, fmt.Errorf("%s: %w", strings.ToUpper(provider), ErrMissingCredential)
	}

	switch provider {
	case "zhipu":
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = zhipuBaseURL
		}
		return NewOpenAIClient("zhipu", cfg.APIKey, orDefault(cfg.Model, zhipuDefaultModel), baseURL, cfg.MaxTokens), nil

	case "azure":
		if cfg.BaseURL == "" {
			return nil, fmt.Errorf("azure: base_url is required")
		}
		return NewAzureClient(cfg.APIKey, cfg.BaseURL, orDefault(cfg.APIVersion, azureDefaultAPIVersion), cfg.Deployment, cfg.Model, cfg.MaxTokens), nil

	case "openai":
		return NewOpenAIClient("openai", cfg.APIKey, orDefault(cfg.Model, openAIDefaultModel), cfg.BaseURL, cfg.MaxTokens), nil

	case "ollama":
		baseURL := orDefault(cfg.BaseURL, ollamaDefaultBaseURL)
		if !strings.HasSuffix(baseURL, "/v1") {
			baseURL = fmt.Sprintf("%s/v1", strings.TrimRight(baseURL, "/"))
		}
		// Ollama ignores the key but the client config needs one.
		apiKey := cfg.APIKey
		if apiKey == "" {
			apiKey = "ollama"
		}
		return NewOpenAIClient("ollama", apiKey, orDefault(cfg.Model, ollamaDefaultModel), baseURL, cfg.MaxTokens), nil

	case "claude":
		return NewClaudeClient(cfg.APIKey, orDefault(cfg.Model, claudeDefaultModel), cfg.BaseURL, cfg.MaxTokens), nil

	case "gemini":
		c, err := NewGeminiClient(ctx, cfg.APIKey, orDefault(cfg.Model, geminiDefaultModel), cfg.MaxTokens)
		if err != nil {
			return nil, providerError("gemini", err)
		}
		return c, nil

	default:
		return nil, fmt.Errorf("unsupported llm provider: %s", provider)
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
