package pipeline

import (
	"github.com/helixnav/pathlens/internal/core/common"
	"github.com/helixnav/pathlens/internal/core/model"
)

// CanonicalizeEntities merges disease nodes that denote the same condition.
// The first node encountered for a canonical label becomes the representative,
// re-keyed to a deterministic slug-derived ID and relabeled to the canonical
// form; later nodes with the same canonical label are dropped and their IDs
// mapped to the representative. Non-disease nodes map to themselves.
func CanonicalizeEntities(nodes []model.Node, synonyms map[string]string) ([]model.Node, model.IdentityMap) {
	ids := model.NewIdentityMap()
	representatives := make(map[string]string) // canonical label -> final ID
	out := make([]model.Node, 0, len(nodes))

	for _, n := range nodes {
		if n.Type != model.NodeTypeDisease {
			ids.Keep(n.ID)
			out = append(out, n)
			continue
		}

		canonical := n.Label
		if mapped, ok := synonyms[n.Label]; ok {
			canonical = mapped
		}

		if finalID, ok := representatives[canonical]; ok {
			ids.Set(n.ID, finalID)
			continue
		}

		rep := n.Clone()
		rep.ID = "disease-" + common.Slugify(canonical)
		rep.Label = canonical
		representatives[canonical] = rep.ID
		ids.Set(n.ID, rep.ID)
		out = append(out, rep)
	}

	return out, ids
}
