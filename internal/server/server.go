package server

import (
	"context"
	"net/http"
	"strings"

	"github.com/agenthands/conceptgraph/internal/config"
	"github.com/agenthands/conceptgraph/internal/core"
	"github.com/agenthands/conceptgraph/internal/core/export"
	"github.com/agenthands/conceptgraph/internal/core/extraction"
	"github.com/agenthands/conceptgraph/internal/core/model"
	"github.com/agenthands/conceptgraph/internal/core/prompt"
	"github.com/agenthands/conceptgraph/internal/log"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GraphGenerator is the pipeline entry point the handlers call.
type GraphGenerator interface {
	GenerateGraphData(ctx context.Context, text string, cfg config.LLMConfig) (model.Graph, error)
}

type Server struct {
	Generator GraphGenerator
	// LLM holds the defaults each request starts from.
	LLM      config.LLMConfig
	Exporter *export.Exporter
	Logger   log.Logger
	NewID    func() string
}

// NewServer wires the handlers. exporter may be nil, in which case accepted
// graphs are only returned to the caller.
func NewServer(gen *core.Generator, llmCfg config.LLMConfig, exporter *export.Exporter, logger log.Logger) *Server {
	if logger == nil {
		logger = log.Nop()
	}
	return &Server{
		Generator: gen,
		LLM:       llmCfg,
		Exporter:  exporter,
		Logger:    logger,
		NewID:     func() string { return uuid.New().String() },
	}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", s.Health)
	r.POST("/extract", s.Extract)

	return r
}

func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"provider": s.LLM.Provider,
		"export":   s.Exporter != nil,
	})
}

// ExtractRequest carries the text and optional per-request overrides of the
// server's LLM defaults.
type ExtractRequest struct {
	Text        string   `json:"text"`
	Provider    string   `json:"provider,omitempty"`
	Temperature *float64 `json:"temperature,omitempty"`
	APIKey      string   `json:"api_key,omitempty"`
}

type ExtractResponse struct {
	ID    string       `json:"id"`
	Nodes []model.Node `json:"nodes"`
	Edges []model.Edge `json:"edges"`
	Error string       `json:"error,omitempty"`
	Kind  string       `json:"kind,omitempty"`
}

func (s *Server) Extract(c *gin.Context) {
	var req ExtractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter text first."})
		return
	}

	cfg := s.requestConfig(req)
	id := s.NewID()

	graph, err := s.Generator.GenerateGraphData(c.Request.Context(), req.Text, cfg)
	if err != nil {
		kind := extraction.KindOf(err)
		s.Logger.Warn("extraction %s failed: %v", id, err)
		empty := model.EmptyGraph()
		c.JSON(statusFor(kind), ExtractResponse{
			ID:    id,
			Nodes: empty.Nodes,
			Edges: empty.Edges,
			Error: extraction.Message(err),
			Kind:  kind.String(),
		})
		return
	}

	if s.Exporter != nil {
		meta := export.Metadata{
			GraphID:  id,
			Provider: cfg.Provider,
			Language: string(prompt.DetectLanguage(req.Text)),
		}
		if _, err := s.Exporter.SaveGraph(c.Request.Context(), graph, meta); err != nil {
			s.Logger.Error("failed to export graph %s: %v", id, err)
		}
	}

	if c.Query("format") == "vis" {
		c.JSON(http.StatusOK, gin.H{"id": id, "graph": ToVis(graph)})
		return
	}
	c.JSON(http.StatusOK, ExtractResponse{ID: id, Nodes: graph.Nodes, Edges: graph.Edges})
}

func (s *Server) requestConfig(req ExtractRequest) config.LLMConfig {
	cfg := s.LLM
	if req.Provider != "" && !strings.EqualFold(req.Provider, cfg.Provider) {
		// Provider-specific settings do not carry over to another provider.
		cfg = config.LLMConfig{Provider: req.Provider, Temperature: cfg.Temperature}
	}
	if req.Temperature != nil {
		cfg.Temperature = *req.Temperature
	}
	if req.APIKey != "" {
		cfg.APIKey = req.APIKey
	}
	return cfg
}

func statusFor(kind extraction.Kind) int {
	switch kind {
	case extraction.KindCredentialMissing, extraction.KindInvalidConfig:
		return http.StatusBadRequest
	case extraction.KindUnknown:
		return http.StatusInternalServerError
	case extraction.KindProviderError, extraction.KindEmptyResponse:
		return http.StatusBadGateway
	default:
		return http.StatusUnprocessableEntity
	}
}
