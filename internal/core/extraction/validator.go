package extraction

import (
	"encoding/json"

	"github.com/agenthands/conceptgraph/internal/core/common"
	"github.com/agenthands/conceptgraph/internal/core/model"
)

const (
	minNodes  = 3
	minGroups = 2
)

var (
	nodeKeys = []string{"id", "label", "group"}
	edgeKeys = []string{"from", "to", "label"}
)

// Validate turns a raw LLM response into an accepted graph. Any failed check
// aborts the whole extraction with EmptyGraph() and an *Error; a partially
// valid graph is never returned.
func Validate(response string) (model.Graph, error) {
	cleaned := common.StripCodeFence(response)

	var doc any
	if err := json.Unmarshal([]byte(cleaned), &doc); err != nil {
		return model.EmptyGraph(), &Error{Kind: KindMalformedJSON, Msg: "invalid JSON in response", Err: err}
	}

	graph, err := validateDocument(doc)
	if err != nil {
		return model.EmptyGraph(), err
	}
	return graph, nil
}

func validateDocument(doc any) (model.Graph, error) {
	obj, ok := doc.(map[string]any)
	if !ok {
		return model.Graph{}, schemaError(RuleShape, "", "response is not a JSON object")
	}
	rawNodes, hasNodes := obj["nodes"]
	rawEdges, hasEdges := obj["edges"]
	if !hasNodes || !hasEdges {
		return model.Graph{}, schemaError(RuleShape, "", "missing required 'nodes' or 'edges' fields")
	}
	nodeList, nodesOK := rawNodes.([]any)
	edgeList, edgesOK := rawEdges.([]any)
	if !nodesOK || !edgesOK {
		return model.Graph{}, schemaError(RuleShape, "", "'nodes' or 'edges' is not an array")
	}

	if len(nodeList) < minNodes {
		return model.Graph{}, schemaError(RuleMinNodes, "", "insufficient concepts: at least %d nodes are required, got %d", minNodes, len(nodeList))
	}

	nodes := make([]model.Node, 0, len(nodeList))
	ids := make(map[string]struct{}, len(nodeList))
	groups := make(map[string]struct{})
	for i, raw := range nodeList {
		fields, err := stringFields(raw, nodeKeys, RuleNodeFields, RuleNodeTypes, "node", i)
		if err != nil {
			return model.Graph{}, err
		}
		node := model.Node{ID: fields[0], Label: fields[1], Group: fields[2]}
		if node.ID == "" || node.Label == "" || node.Group == "" {
			return model.Graph{}, schemaError(RuleNodeFields, node.ID, "node %d has an empty id, label or group", i)
		}
		if _, dup := ids[node.ID]; dup {
			return model.Graph{}, schemaError(RuleDuplicateID, node.ID, "duplicate node ID found: %s", node.ID)
		}
		ids[node.ID] = struct{}{}
		groups[node.Group] = struct{}{}
		nodes = append(nodes, node)
	}

	if len(groups) < minGroups {
		return model.Graph{}, schemaError(RuleMinGroups, "", "nodes should be categorized into at least %d groups", minGroups)
	}

	edges := make([]model.Edge, 0, len(edgeList))
	for i, raw := range edgeList {
		fields, err := stringFields(raw, edgeKeys, RuleEdgeFields, RuleEdgeTypes, "edge", i)
		if err != nil {
			return model.Graph{}, err
		}
		edge := model.Edge{From: fields[0], To: fields[1], Label: fields[2]}
		if _, ok := ids[edge.From]; !ok {
			return model.Graph{}, schemaError(RuleDanglingEdge, edge.From, "edge references non-existent source node: %s", edge.From)
		}
		if _, ok := ids[edge.To]; !ok {
			return model.Graph{}, schemaError(RuleDanglingEdge, edge.To, "edge references non-existent target node: %s", edge.To)
		}
		edges = append(edges, edge)
	}

	return model.Graph{Nodes: nodes, Edges: edges}, nil
}

// stringFields checks that raw is an object carrying every key (presence is
// checked for all keys before types) and returns the values in key order.
func stringFields(raw any, keys []string, missing, badType Rule, kind string, index int) ([]string, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, schemaError(missing, "", "invalid %s format at index %d - not an object", kind, index)
	}
	for _, k := range keys {
		if _, ok := obj[k]; !ok {
			return nil, schemaError(missing, k, "invalid %s format at index %d - missing required field %q", kind, index, k)
		}
	}
	values := make([]string, len(keys))
	for i, k := range keys {
		s, ok := obj[k].(string)
		if !ok {
			return nil, schemaError(badType, k, "%s fields must be strings: %q at index %d is %T", kind, k, index, obj[k])
		}
		values[i] = s
	}
	return values, nil
}
