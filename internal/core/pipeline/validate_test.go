package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helixnav/pathlens/internal/core/model"
)

func TestValidateEdges_DropsResidualDirectClaim(t *testing.T) {
	nodes := map[string]model.Node{
		"d1":  {ID: "d1", Type: model.NodeTypeDrug},
		"dis": {ID: "dis", Label: "Melanoma", Type: model.NodeTypeDisease},
	}
	edges := []model.Edge{
		{Source: "d1", Target: "dis", Relationship: model.RelTreats},
	}

	out, warnings := ValidateEdges(edges, nodes)

	assert.Empty(t, out)
	require.NotEmpty(t, warnings)
	assert.Equal(t, model.WarnDirectDrugDiseaseEdge, warnings[0].Code)
}

func TestValidateEdges_DeduplicatesKeepingFirst(t *testing.T) {
	nodes := map[string]model.Node{
		"e1":  {ID: "e1", Type: model.NodeTypeEvidence},
		"dis": {ID: "dis", Type: model.NodeTypeDisease},
	}
	edges := []model.Edge{
		{Source: "e1", Target: "dis", Relationship: model.RelSupports, Weight: 0.9},
		{Source: "e1", Target: "dis", Relationship: model.RelSupports, Weight: 0.1},
		{Source: "e1", Target: "dis", Relationship: model.RelSuggests},
	}

	out, _ := ValidateEdges(edges, nodes)

	require.Len(t, out, 2)
	// First occurrence wins.
	assert.Equal(t, 0.9, out[0].Weight)
	assert.Equal(t, model.RelSuggests, out[1].Relationship)
}

func TestValidateEdges_WarnsOnDiseaseWithNoIncoming(t *testing.T) {
	nodes := map[string]model.Node{
		"dis": {ID: "dis", Label: "Melanoma", Type: model.NodeTypeDisease},
		"e1":  {ID: "e1", Type: model.NodeTypeEvidence},
		"e2":  {ID: "e2", Type: model.NodeTypeEvidence},
	}
	edges := []model.Edge{
		{Source: "dis", Target: "e1", Relationship: model.RelSuggests},
		{Source: "e1", Target: "e2", Relationship: model.RelSuggests},
	}

	_, warnings := ValidateEdges(edges, nodes)

	codes := warningCodes(warnings)
	assert.Contains(t, codes, model.WarnDiseaseNoIncoming)
}

func TestValidateEdges_WarnsOnWeaklyLinkedEvidence(t *testing.T) {
	nodes := map[string]model.Node{
		"e1":  {ID: "e1", Label: "PMID:1", Type: model.NodeTypeEvidence},
		"dis": {ID: "dis", Type: model.NodeTypeDisease},
	}
	edges := []model.Edge{
		{Source: "e1", Target: "dis", Relationship: model.RelSupports},
	}

	_, warnings := ValidateEdges(edges, nodes)
	assert.Contains(t, warningCodes(warnings), model.WarnWeakEvidenceLinkage)
}

func warningCodes(warnings []model.Warning) []model.WarningCode {
	codes := make([]model.WarningCode, 0, len(warnings))
	for _, w := range warnings {
		codes = append(codes, w.Code)
	}
	return codes
}
