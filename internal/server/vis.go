package server

import (
	"fmt"
	"hash/fnv"

	"github.com/agenthands/conceptgraph/internal/core/model"
)

const visNodeSize = 25

type VisNode struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Color string `json:"color"`
	Size  int    `json:"size"`
}

type VisEdge struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Label  string `json:"label"`
}

// VisGraph is the payload a browser-side graph renderer consumes.
type VisGraph struct {
	Nodes []VisNode `json:"nodes"`
	Edges []VisEdge `json:"edges"`
}

func ToVis(g model.Graph) VisGraph {
	out := VisGraph{
		Nodes: make([]VisNode, 0, len(g.Nodes)),
		Edges: make([]VisEdge, 0, len(g.Edges)),
	}
	for _, n := range g.Nodes {
		out.Nodes = append(out.Nodes, VisNode{
			ID:    n.ID,
			Label: n.Label,
			Color: GroupColor(n.Group),
			Size:  visNodeSize,
		})
	}
	for _, e := range g.Edges {
		out.Edges = append(out.Edges, VisEdge{Source: e.From, Target: e.To, Label: e.Label})
	}
	return out
}

// GroupColor derives a stable #rrggbb color from a group name.
func GroupColor(group string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(group))
	return fmt.Sprintf("#%06x", h.Sum32()%0xFFFFFF)
}
