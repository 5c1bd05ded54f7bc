package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helixnav/pathlens/internal/core/model"
)

func TestPruneOrphans_DropsZeroDegreeNodes(t *testing.T) {
	nodes := []model.Node{
		{ID: "a", Label: "A", Type: model.NodeTypeDrug},
		{ID: "b", Label: "B", Type: model.NodeTypeEvidence},
		{ID: "c", Label: "C", Type: model.NodeTypePatent},
	}
	edges := []model.Edge{
		{Source: "a", Target: "b"},
	}

	out, warnings := PruneOrphans(nodes, edges)

	require.Len(t, out, 2)
	assert.Equal(t, "a", out[0].ID)
	assert.Equal(t, "b", out[1].ID)

	require.Len(t, warnings, 1)
	assert.Equal(t, model.WarnOrphanRemoved, warnings[0].Code)
	assert.Equal(t, "c", warnings[0].Context["nodeId"])
}

func TestPruneOrphans_EmptyInputIsSilent(t *testing.T) {
	out, warnings := PruneOrphans(nil, nil)
	assert.Empty(t, out)
	assert.Empty(t, warnings)
}

func TestPruneOrphans_WarnsOnNodesWithoutEdges(t *testing.T) {
	nodes := []model.Node{
		{ID: "a", Type: model.NodeTypeDrug},
	}

	out, warnings := PruneOrphans(nodes, nil)

	assert.Empty(t, out)
	codes := warningCodes(warnings)
	assert.Contains(t, codes, model.WarnOrphanRemoved)
	assert.Contains(t, codes, model.WarnEmptyResultMismatch)
}
