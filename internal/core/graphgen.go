package core

import (
	"context"
	"fmt"
	"io"

	"github.com/agenthands/conceptgraph/internal/config"
	"github.com/agenthands/conceptgraph/internal/core/extraction"
	"github.com/agenthands/conceptgraph/internal/core/model"
	"github.com/agenthands/conceptgraph/internal/llm"
	"github.com/agenthands/conceptgraph/internal/log"
)

// ClientFactory builds the provider client for one extraction.
type ClientFactory func(ctx context.Context, cfg config.LLMConfig) (llm.LLMClient, error)

// Generator is the entry point of the pipeline. It keeps no state between
// calls: the result depends only on the text and the configuration passed in.
type Generator struct {
	NewClient ClientFactory
	Logger    log.Logger
}

func NewGenerator(logger log.Logger) *Generator {
	if logger == nil {
		logger = log.Nop()
	}
	return &Generator{
		NewClient: llm.NewClient,
		Logger:    logger,
	}
}

// GenerateGraphData extracts a concept graph from text with the provider
// described by cfg. On any failure it returns model.EmptyGraph() and an error
// that extraction.KindOf can classify.
func (g *Generator) GenerateGraphData(ctx context.Context, text string, cfg config.LLMConfig) (model.Graph, error) {
	if cfg.APIKey == "" && cfg.RequiresAPIKey() {
		err := &extraction.Error{
			Kind: extraction.KindCredentialMissing,
			Msg:  fmt.Sprintf("missing credential for provider %s", cfg.Provider),
			Err:  llm.ErrMissingCredential,
		}
		g.Logger.Warn("extraction aborted: %v", err)
		return model.EmptyGraph(), err
	}
	if err := cfg.Validate(); err != nil {
		g.Logger.Warn("extraction aborted: %v", err)
		return model.EmptyGraph(), extraction.ConfigError(err)
	}

	client, err := g.NewClient(ctx, cfg)
	if err != nil {
		g.Logger.Error("failed to initialize %s client: %v", cfg.Provider, err)
		if extraction.KindOf(err) == extraction.KindUnknown {
			return model.EmptyGraph(), extraction.ConfigError(err)
		}
		return model.EmptyGraph(), fmt.Errorf("failed to initialize llm client: %w", err)
	}
	if c, ok := client.(io.Closer); ok {
		defer c.Close()
	}

	extractor := extraction.NewExtractor(client, cfg.Temperature, g.Logger)
	graph, err := extractor.Extract(ctx, text)
	if err != nil {
		g.Logger.Warn("extraction failed (%s): %v", extraction.KindOf(err), err)
		return model.EmptyGraph(), err
	}

	g.Logger.Info("extracted %d nodes, %d edges across %d groups via %s", len(graph.Nodes), len(graph.Edges), len(graph.Groups()), cfg.Provider)
	return graph, nil
}
