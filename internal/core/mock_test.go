package core

import (
	"context"

	"github.com/agenthands/conceptgraph/internal/config"
	"github.com/agenthands/conceptgraph/internal/llm"
)

// closingLLM records whether the generator released it.
type closingLLM struct {
	llm.MockLLMClient
	closed bool
}

func (c *closingLLM) Close() error {
	c.closed = true
	return nil
}

type recordingFactory struct {
	client llm.LLMClient
	err    error
	calls  []config.LLMConfig
}

func (f *recordingFactory) New(ctx context.Context, cfg config.LLMConfig) (llm.LLMClient, error) {
	f.calls = append(f.calls, cfg)
	if f.err != nil {
		return nil, f.err
	}
	return f.client, nil
}
