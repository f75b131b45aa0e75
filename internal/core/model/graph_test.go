package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyGraphJSON(t *testing.T) {
	data, err := json.Marshal(EmptyGraph())
	require.NoError(t, err)
	assert.JSONEq(t, `{"nodes":[],"edges":[]}`, string(data))
	assert.True(t, EmptyGraph().IsEmpty())
}

func TestGroups(t *testing.T) {
	g := Graph{
		Nodes: []Node{
			{ID: "1", Label: "A", Group: "G2"},
			{ID: "2", Label: "B", Group: "G1"},
			{ID: "3", Label: "C", Group: "G2"},
		},
	}

	assert.Equal(t, []string{"G2", "G1"}, g.Groups())
	assert.Len(t, g.NodeIDs(), 3)
	assert.False(t, g.IsEmpty())
}
