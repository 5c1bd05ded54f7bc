package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helixnav/pathlens/internal/core/model"
)

func mediationNodes() map[string]model.Node {
	return map[string]model.Node{
		"d1":  {ID: "d1", Type: model.NodeTypeDrug},
		"dis": {ID: "dis", Type: model.NodeTypeDisease},
		"e1":  {ID: "e1", Type: model.NodeTypeEvidence},
	}
}

func TestMediateEvidence_RewritesDirectClaim(t *testing.T) {
	edges := []model.Edge{
		{
			Source:       "d1",
			Target:       "dis",
			Relationship: model.RelSupports,
			Weight:       0.7,
			Metadata:     map[string]any{model.MetaEvidenceID: "e1"},
		},
	}

	out := MediateEvidence(edges, mediationNodes())

	require.Len(t, out, 2)
	assert.Equal(t, "d1", out[0].Source)
	assert.Equal(t, "e1", out[0].Target)
	assert.Equal(t, "e1", out[1].Source)
	assert.Equal(t, "dis", out[1].Target)
	// Both hops keep the original relationship so polarity survives.
	assert.Equal(t, model.RelSupports, out[0].Relationship)
	assert.Equal(t, model.RelSupports, out[1].Relationship)
	assert.Equal(t, 0.7, out[1].Weight)
}

func TestMediateEvidence_DropsClaimWithoutEvidence(t *testing.T) {
	edges := []model.Edge{
		{Source: "d1", Target: "dis", Relationship: model.RelTreats},
	}

	out := MediateEvidence(edges, mediationNodes())
	assert.Empty(t, out)
}

func TestMediateEvidence_DropsClaimWithDanglingEvidence(t *testing.T) {
	edges := []model.Edge{
		{
			Source:   "d1",
			Target:   "dis",
			Metadata: map[string]any{model.MetaEvidenceID: "gone"},
		},
	}

	out := MediateEvidence(edges, mediationNodes())
	assert.Empty(t, out)
}

func TestMediateEvidence_PassesThroughOtherEdges(t *testing.T) {
	edges := []model.Edge{
		{Source: "e1", Target: "dis", Relationship: model.RelSupports},
		{Source: "d1", Target: "e1", Relationship: model.RelSuggests},
	}

	out := MediateEvidence(edges, mediationNodes())
	assert.Equal(t, edges, out)
}
