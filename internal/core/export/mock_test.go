package export

import (
	"context"

	"github.com/agenthands/conceptgraph/internal/driver"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

type executedQuery struct {
	Query  string
	Params map[string]interface{}
}

// MockDriver records statements. Statements run through ExecuteWrite only
// reach Committed when the work function succeeds.
type MockDriver struct {
	Executed  []executedQuery
	Committed []executedQuery
	Results   map[string]neo4j.EagerResult
	FailOn    string
	Err       error
}

func (m *MockDriver) run(query string, params map[string]interface{}) error {
	m.Executed = append(m.Executed, executedQuery{Query: query, Params: params})
	if m.Err != nil && (m.FailOn == "" || m.FailOn == query) {
		return m.Err
	}
	return nil
}

func (m *MockDriver) ExecuteQuery(ctx context.Context, query string, params map[string]interface{}) (neo4j.EagerResult, error) {
	if err := m.run(query, params); err != nil {
		return neo4j.EagerResult{}, err
	}
	m.Committed = append(m.Committed, executedQuery{Query: query, Params: params})
	return m.Results[query], nil
}

func (m *MockDriver) ExecuteWrite(ctx context.Context, work func(tx driver.Tx) error) error {
	tx := &mockTx{driver: m}
	if err := work(tx); err != nil {
		return err
	}
	m.Committed = append(m.Committed, tx.pending...)
	return nil
}

func (m *MockDriver) BuildIndices(ctx context.Context) error {
	return nil
}

func (m *MockDriver) Close(ctx context.Context) error {
	return nil
}

type mockTx struct {
	driver  *MockDriver
	pending []executedQuery
}

func (t *mockTx) Run(ctx context.Context, query string, params map[string]interface{}) error {
	if err := t.driver.run(query, params); err != nil {
		return err
	}
	t.pending = append(t.pending, executedQuery{Query: query, Params: params})
	return nil
}
