package llm

import (
	"context"
	"math"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// OpenAIClient talks to any OpenAI-compatible chat completion endpoint. It
// backs the zhipu, azure, openai and ollama providers.
type OpenAIClient struct {
	client    *openai.Client
	provider  string
	model     string
	maxTokens int
}

func NewOpenAIClient(provider, apiKey, model, baseURL string, maxTokens int) *OpenAIClient {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &OpenAIClient{
		client:    openai.NewClientWithConfig(config),
		provider:  provider,
		model:     model,
		maxTokens: maxTokens,
	}
}

// NewAzureClient targets an Azure OpenAI deployment. Requests name the
// deployment; when it is empty the model name is used as the deployment.
func NewAzureClient(apiKey, baseURL, apiVersion, deployment, model string, maxTokens int) *OpenAIClient {
	config := openai.DefaultAzureConfig(apiKey, baseURL)
	config.APIVersion = apiVersion
	if deployment != "" {
		config.AzureModelMapperFunc = func(string) string {
			return deployment
		}
	}
	if model == "" {
		model = deployment
	}
	return &OpenAIClient{
		client:    openai.NewClientWithConfig(config),
		provider:  "azure",
		model:     model,
		maxTokens: maxTokens,
	}
}

func (c *OpenAIClient) Generate(ctx context.Context, req Request) (string, error) {
	chatReq := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: req.System,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: req.User,
			},
		},
		Temperature: wireTemperature(req.Temperature),
		MaxTokens:   c.maxTokens,
	}
	resp, err := c.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return "", providerError(c.provider, err)
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", ErrEmptyResponse
	}
	return resp.Choices[0].Message.Content, nil
}

// wireTemperature keeps an explicit 0 from being dropped by the request's
// omitempty tag, which would let the server fall back to its own default.
func wireTemperature(t float64) float32 {
	if t == 0 {
		return math.SmallestNonzeroFloat32
	}
	return float32(t)
}
