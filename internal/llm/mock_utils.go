package llm

import (
	"context"
)

// MockLLMClient returns canned responses in order, then Response forever.
// Requests are recorded for assertions.
type MockLLMClient struct {
	Response      string
	ResponseQueue []string
	Err           error
	Requests      []Request
}

func (m *MockLLMClient) Generate(ctx context.Context, req Request) (string, error) {
	m.Requests = append(m.Requests, req)
	if m.Err != nil {
		return "", m.Err
	}
	if len(m.ResponseQueue) > 0 {
		resp := m.ResponseQueue[0]
		m.ResponseQueue = m.ResponseQueue[1:]
		return resp, nil
	}
	return m.Response, nil
}
