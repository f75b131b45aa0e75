package model

// Graph is the accepted result of one extraction request.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// EmptyGraph is returned whenever an extraction fails. Both slices are
// non-nil so the JSON form is {"nodes":[],"edges":[]}.
func EmptyGraph() Graph {
	return Graph{
		Nodes: []Node{},
		Edges: []Edge{},
	}
}

// IsEmpty reports whether the graph carries no nodes and no edges.
func (g Graph) IsEmpty() bool {
	return len(g.Nodes) == 0 && len(g.Edges) == 0
}

// Groups returns the distinct node groups in first-seen order.
func (g Graph) Groups() []string {
	seen := make(map[string]struct{}, len(g.Nodes))
	var groups []string
	for _, n := range g.Nodes {
		if _, ok := seen[n.Group]; ok {
			continue
		}
		seen[n.Group] = struct{}{}
		groups = append(groups, n.Group)
	}
	return groups
}

// NodeIDs returns the set of node ids.
func (g Graph) NodeIDs() map[string]struct{} {
	ids := make(map[string]struct{}, len(g.Nodes))
	for _, n := range g.Nodes {
		ids[n.ID] = struct{}{}
	}
	return ids
}
