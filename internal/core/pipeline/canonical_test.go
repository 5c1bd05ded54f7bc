package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helixnav/pathlens/internal/core/model"
)

func TestCanonicalizeEntities_MergesSynonymousDiseases(t *testing.T) {
	synonyms := map[string]string{
		"Colon Cancer":  "Colorectal Cancer",
		"Rectal Cancer": "Colorectal Cancer",
	}
	nodes := []model.Node{
		{ID: "dis1", Label: "Colon Cancer", Type: model.NodeTypeDisease, Metadata: map[string]any{"icd10": "C18"}},
		{ID: "dis2", Label: "Rectal Cancer", Type: model.NodeTypeDisease},
		{ID: "d1", Label: "DrugX", Type: model.NodeTypeDrug},
	}

	out, ids := CanonicalizeEntities(nodes, synonyms)

	require.Len(t, out, 2)
	rep := out[0]
	assert.Equal(t, "disease-colorectal-cancer", rep.ID)
	assert.Equal(t, "Colorectal Cancer", rep.Label)
	// First node encountered is the representative; its metadata wins.
	assert.Equal(t, "C18", rep.Metadata["icd10"])

	// Both originals map to the representative, the drug maps to itself.
	finalID, ok := ids.Resolve("dis1")
	require.True(t, ok)
	assert.Equal(t, rep.ID, finalID)
	finalID, ok = ids.Resolve("dis2")
	require.True(t, ok)
	assert.Equal(t, rep.ID, finalID)
	finalID, ok = ids.Resolve("d1")
	require.True(t, ok)
	assert.Equal(t, "d1", finalID)
}

func TestCanonicalizeEntities_IdentityWhenNotInTable(t *testing.T) {
	nodes := []model.Node{
		{ID: "dis1", Label: "Melanoma", Type: model.NodeTypeDisease},
	}

	out, ids := CanonicalizeEntities(nodes, map[string]string{})

	require.Len(t, out, 1)
	assert.Equal(t, "disease-melanoma", out[0].ID)
	assert.Equal(t, "Melanoma", out[0].Label)
	finalID, _ := ids.Resolve("dis1")
	assert.Equal(t, "disease-melanoma", finalID)
}

func TestCanonicalizeEntities_NoTwoDiseasesShareLabel(t *testing.T) {
	nodes := []model.Node{
		{ID: "a", Label: "Asthma", Type: model.NodeTypeDisease},
		{ID: "b", Label: "Asthma", Type: model.NodeTypeDisease},
		{ID: "c", Label: "Asthma", Type: model.NodeTypeDisease},
	}

	out, _ := CanonicalizeEntities(nodes, nil)

	labels := make(map[string]int)
	for _, n := range out {
		labels[n.Label]++
	}
	assert.Equal(t, 1, labels["Asthma"])
}

func TestCanonicalizeEntities_RemovedNodesHaveNoEntry(t *testing.T) {
	out, ids := CanonicalizeEntities(nil, nil)
	assert.Empty(t, out)
	_, ok := ids.Resolve("never-seen")
	assert.False(t, ok)
}
