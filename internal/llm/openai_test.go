package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type chatBody struct {
	Model       string  `json:"model"`
	Temperature float64 `json:"temperature"`
	Messages    []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func chatServer(t *testing.T, status int, content string, got *chatBody, path *string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if path != nil {
			*path = r.URL.Path
		}
		if got != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(got))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			_, _ = w.Write([]byte(`{"error":{"message":"quota exceeded","type":"insufficient_quota"}}`))
			return
		}
		resp := map[string]any{
			"id":     "chatcmpl-1",
			"object": "chat.completion",
			"model":  "glm-4-flash",
			"choices": []map[string]any{},
		}
		if content != "" {
			resp["choices"] = []map[string]any{
				{"index": 0, "message": map[string]any{"role": "assistant", "content": content}, "finish_reason": "stop"},
			}
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestOpenAIClientGenerate(t *testing.T) {
	var body chatBody
	srv := chatServer(t, http.StatusOK, `{"nodes":[],"edges":[]}`, &body, nil)

	c := NewOpenAIClient("zhipu", "key", "glm-4-flash", srv.URL+"/v1", 0)
	out, err := c.Generate(context.Background(), Request{System: "sys", User: "usr", Temperature: 0.3})
	require.NoError(t, err)
	assert.Equal(t, `{"nodes":[],"edges":[]}`, out)

	assert.Equal(t, "glm-4-flash", body.Model)
	assert.InDelta(t, 0.3, body.Temperature, 1e-6)
	require.Len(t, body.Messages, 2)
	assert.Equal(t, "system", body.Messages[0].Role)
	assert.Equal(t, "sys", body.Messages[0].Content)
	assert.Equal(t, "user", body.Messages[1].Role)
	assert.Equal(t, "usr", body.Messages[1].Content)
}

func TestOpenAIClientZeroTemperatureIsSent(t *testing.T) {
	var body chatBody
	srv := chatServer(t, http.StatusOK, "ok", &body, nil)

	c := NewOpenAIClient("openai", "key", "gpt-4o-mini", srv.URL+"/v1", 0)
	_, err := c.Generate(context.Background(), Request{Temperature: 0})
	require.NoError(t, err)
	assert.Greater(t, body.Temperature, 0.0)
	assert.Less(t, body.Temperature, 1e-6)
}

func TestOpenAIClientEmptyResponse(t *testing.T) {
	srv := chatServer(t, http.StatusOK, "", nil, nil)

	c := NewOpenAIClient("zhipu", "key", "glm-4-flash", srv.URL+"/v1", 0)
	_, err := c.Generate(context.Background(), Request{})
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestOpenAIClientProviderError(t *testing.T) {
	srv := chatServer(t, http.StatusTooManyRequests, "", nil, nil)

	c := NewOpenAIClient("zhipu", "key", "glm-4-flash", srv.URL+"/v1", 0)
	_, err := c.Generate(context.Background(), Request{})
	require.Error(t, err)

	var pe *ProviderError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "zhipu", pe.Provider)
	assert.Contains(t, err.Error(), "zhipu:")
}

func TestAzureClientUsesDeployment(t *testing.T) {
	var path string
	srv := chatServer(t, http.StatusOK, "ok", nil, &path)

	c := NewAzureClient("key", srv.URL, "2024-06-01", "kg-deploy", "gpt-4o", 0)
	out, err := c.Generate(context.Background(), Request{User: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "ok", out)
	assert.Equal(t, "/openai/deployments/kg-deploy/chat/completions", path)
}
