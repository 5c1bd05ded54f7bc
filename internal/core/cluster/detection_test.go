package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helixnav/pathlens/internal/core/model"
)

func TestComponentDetector(t *testing.T) {
	nodes := []model.Node{
		{ID: "d1", Label: "DrugX", Type: model.NodeTypeDrug},
		{ID: "e1", Label: "PMID:1", Type: model.NodeTypeEvidence},
		{ID: "dis", Label: "Melanoma", Type: model.NodeTypeDisease},
		{ID: "pat", Label: "US-123", Type: model.NodeTypePatent},
	}
	edges := []model.Edge{
		{Source: "d1", Target: "e1"},
		{Source: "e1", Target: "dis"},
		// pat is isolated
	}

	detector := NewComponentDetector()
	clusters, err := detector.Detect(nodes, edges)

	require.NoError(t, err)
	require.Len(t, clusters, 1)
	assert.Len(t, clusters[0], 3)

	members := make(map[string]bool)
	for _, n := range clusters[0] {
		members[n.ID] = true
	}
	assert.True(t, members["d1"])
	assert.True(t, members["e1"])
	assert.True(t, members["dis"])
}

func TestComponentDetector_MultipleClusters(t *testing.T) {
	nodes := []model.Node{
		{ID: "1"}, {ID: "2"},
		{ID: "3"}, {ID: "4"},
	}
	edges := []model.Edge{
		{Source: "1", Target: "2"},
		{Source: "3", Target: "4"},
	}

	clusters, err := NewComponentDetector().Detect(nodes, edges)

	require.NoError(t, err)
	assert.Len(t, clusters, 2)
}
