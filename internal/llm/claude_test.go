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

func messagesServer(t *testing.T, status int, content []map[string]any, got *map[string]any) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/messages", r.URL.Path)
		assert.Equal(t, "key", r.Header.Get("x-api-key"))
		if got != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(got))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			_, _ = w.Write([]byte(`{"type":"error","error":{"type":"rate_limit_error","message":"slow down"}}`))
			return
		}
		require.NoError(t, json.NewEncoder(w).Encode(map[string]any{
			"id":          "msg_1",
			"type":        "message",
			"role":        "assistant",
			"model":       "claude-3-5-haiku-latest",
			"content":     content,
			"stop_reason": "end_turn",
			"usage":       map[string]any{"input_tokens": 1, "output_tokens": 1},
		}))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClaudeClientGenerate(t *testing.T) {
	var body map[string]any
	srv := messagesServer(t, http.StatusOK, []map[string]any{{"type": "text", "text": "graph"}}, &body)

	c := NewClaudeClient("key", "claude-3-5-haiku-latest", srv.URL, 0)
	out, err := c.Generate(context.Background(), Request{System: "sys", User: "usr", Temperature: 0.2})
	require.NoError(t, err)
	assert.Equal(t, "graph", out)

	assert.Equal(t, "claude-3-5-haiku-latest", body["model"])
	assert.EqualValues(t, claudeDefaultMaxTokens, body["max_tokens"])
	assert.InDelta(t, 0.2, body["temperature"], 1e-6)
	assert.Contains(t, body, "system")
	messages := body["messages"].([]any)
	require.Len(t, messages, 1)
	assert.Equal(t, "user", messages[0].(map[string]any)["role"])
}

func TestClaudeClientEmptyContent(t *testing.T) {
	srv := messagesServer(t, http.StatusOK, []map[string]any{}, nil)

	c := NewClaudeClient("key", "claude-3-5-haiku-latest", srv.URL, 0)
	_, err := c.Generate(context.Background(), Request{User: "usr"})
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestClaudeClientBlankText(t *testing.T) {
	srv := messagesServer(t, http.StatusOK, []map[string]any{{"type": "text", "text": "  \n"}}, nil)

	c := NewClaudeClient("key", "claude-3-5-haiku-latest", srv.URL, 0)
	_, err := c.Generate(context.Background(), Request{User: "usr"})
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestClaudeClientProviderError(t *testing.T) {
	srv := messagesServer(t, http.StatusTooManyRequests, nil, nil)

	c := NewClaudeClient("key", "claude-3-5-haiku-latest", srv.URL, 0)
	_, err := c.Generate(context.Background(), Request{User: "usr"})
	require.Error(t, err)

	var pe *ProviderError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "claude", pe.Provider)
	assert.NotErrorIs(t, err, ErrEmptyResponse)
}
