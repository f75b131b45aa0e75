package export

import (
	"context"
	"fmt"
	"time"

	"github.com/agenthands/conceptgraph/internal/core/model"
	"github.com/agenthands/conceptgraph/internal/driver"
	"github.com/agenthands/conceptgraph/internal/log"
	"github.com/google/uuid"
)

// Exporter writes accepted graphs to a Memgraph/Neo4j store. Each graph is
// stored under its own Extraction node so repeated extractions never merge.
type Exporter struct {
	Driver        driver.GraphDriver
	Logger        log.Logger
	UUIDGenerator func() string
	Now           func() time.Time
}

func NewExporter(d driver.GraphDriver, logger log.Logger) *Exporter {
	if logger == nil {
		logger = log.Nop()
	}
	return &Exporter{
		Driver:        d,
		Logger:        logger,
		UUIDGenerator: func() string { return uuid.New().String() },
		Now:           func() time.Time { return time.Now().UTC() },
	}
}

// Metadata describes where a graph came from.
type Metadata struct {
	GraphID  string
	Provider string
	Language string
}

// SaveGraph stores g and returns its graph id. An empty meta.GraphID gets a
// fresh UUID. The whole graph is written in one transaction, replacing any
// graph previously saved under the same id; a failure leaves nothing behind.
func (e *Exporter) SaveGraph(ctx context.Context, g model.Graph, meta Metadata) (string, error) {
	graphID := meta.GraphID
	if graphID == "" {
		graphID = e.UUIDGenerator()
	}

	err := e.Driver.ExecuteWrite(ctx, func(tx driver.Tx) error {
		if err := tx.Run(ctx, driver.ClearGraphQuery, map[string]interface{}{"graph_id": graphID}); err != nil {
			return fmt.Errorf("failed to clear previous graph: %w", err)
		}

		err := tx.Run(ctx, driver.SaveExtractionQuery, map[string]interface{}{
			"uuid":       graphID,
			"created_at": e.Now().Format(time.RFC3339),
			"provider":   meta.Provider,
			"language":   meta.Language,
			"node_count": len(g.Nodes),
			"edge_count": len(g.Edges),
		})
		if err != nil {
			return fmt.Errorf("failed to save extraction: %w", err)
		}

		for i, n := range g.Nodes {
			params := map[string]interface{}{
				"graph_id": graphID,
				"id":       n.ID,
				"label":    n.Label,
				"group":    n.Group,
				"position": i,
			}
			if err := tx.Run(ctx, driver.SaveConceptQuery, params); err != nil {
				return fmt.Errorf("failed to save concept %s: %w", n.ID, err)
			}
		}

		for i, edge := range g.Edges {
			params := map[string]interface{}{
				"graph_id": graphID,
				"from":     edge.From,
				"to":       edge.To,
				"label":    edge.Label,
				"position": i,
			}
			if err := tx.Run(ctx, driver.SaveRelationQuery, params); err != nil {
				return fmt.Errorf("failed to save relation %s->%s: %w", edge.From, edge.To, err)
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	e.Logger.Info("exported graph %s (%d nodes, %d edges)", graphID, len(g.Nodes), len(g.Edges))
	return graphID, nil
}

// LoadGraph reads a stored graph back.
func (e *Exporter) LoadGraph(ctx context.Context, graphID string) (model.Graph, error) {
	params := map[string]interface{}{"graph_id": graphID}

	res, err := e.Driver.ExecuteQuery(ctx, driver.GetGraphConceptsQuery, params)
	if err != nil {
		return model.Graph{}, err
	}
	g := model.EmptyGraph()
	for _, rec := range res.Records {
		g.Nodes = append(g.Nodes, model.Node{
			ID:    recordString(rec.AsMap(), "id"),
			Label: recordString(rec.AsMap(), "label"),
			Group: recordString(rec.AsMap(), "group"),
		})
	}

	res, err = e.Driver.ExecuteQuery(ctx, driver.GetGraphRelationsQuery, params)
	if err != nil {
		return model.Graph{}, err
	}
	for _, rec := range res.Records {
		g.Edges = append(g.Edges, model.Edge{
			From:  recordString(rec.AsMap(), "from"),
			To:    recordString(rec.AsMap(), "to"),
			Label: recordString(rec.AsMap(), "label"),
		})
	}
	return g, nil
}

func recordString(values map[string]any, key string) string {
	s, _ := values[key].(string)
	return s
}
