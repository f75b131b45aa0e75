package extraction

import (
	"context"
	"strings"

	"github.com/agenthands/conceptgraph/internal/core/model"
	"github.com/agenthands/conceptgraph/internal/core/prompt"
	"github.com/agenthands/conceptgraph/internal/llm"
	"github.com/agenthands/conceptgraph/internal/log"
)

type Extractor struct {
	LLM         llm.LLMClient
	Temperature float64
	Logger      log.Logger
}

func NewExtractor(llmClient llm.LLMClient, temperature float64, logger log.Logger) *Extractor {
	if logger == nil {
		logger = log.Nop()
	}
	return &Extractor{
		LLM:         llmClient,
		Temperature: temperature,
		Logger:      logger,
	}
}

// Extract runs one extraction: prompt assembly, a single LLM call and
// validation of the response. On failure the graph is EmptyGraph() and the
// error is an *Error.
func (e *Extractor) Extract(ctx context.Context, text string) (model.Graph, error) {
	p := prompt.Build(text)
	e.Logger.Debug("extraction prompt language=%s", p.Language)
	e.Logger.Debug("system message:\n%s", p.System)
	e.Logger.Debug("user message:\n%s", p.User)

	response, err := e.LLM.Generate(ctx, llm.Request{
		System:      p.System,
		User:        p.User,
		Temperature: e.Temperature,
	})
	if err != nil {
		return model.EmptyGraph(), providerFailure(err)
	}
	if strings.TrimSpace(response) == "" {
		return model.EmptyGraph(), providerFailure(llm.ErrEmptyResponse)
	}
	e.Logger.Debug("extraction result:\n%s", response)

	graph, err := Validate(response)
	if err != nil {
		e.Logger.Debug("rejected response: %v", err)
		return graph, err
	}
	return graph, nil
}
