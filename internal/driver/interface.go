package driver

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// GraphDriver executes Cypher against a bolt-compatible store.
type GraphDriver interface {
	ExecuteQuery(ctx context.Context, query string, params map[string]interface{}) (neo4j.EagerResult, error)
	// ExecuteWrite runs work inside a single write transaction. Nothing is
	// committed unless work returns nil.
	ExecuteWrite(ctx context.Context, work func(tx Tx) error) error
	BuildIndices(ctx context.Context) error
	Close(ctx context.Context) error
}

// Tx runs statements inside an open transaction.
type Tx interface {
	Run(ctx context.Context, query string, params map[string]interface{}) error
}
