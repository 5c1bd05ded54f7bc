package pipeline

import (
	"strings"

	"github.com/helixnav/pathlens/internal/config"
	"github.com/helixnav/pathlens/internal/core/model"
)

// FilterNodes removes placeholder drug entities (comparator-arm placeholders,
// placebo arms) and tags surviving comparator drugs. Non-drug nodes pass
// through unchanged. Removed nodes get no identity map entry later, which is
// what cascades their edges' removal during remapping.
func FilterNodes(nodes []model.Node, taxonomy config.TaxonomyConfig) []model.Node {
	out := make([]model.Node, 0, len(nodes))

	for _, n := range nodes {
		if n.Type != model.NodeTypeDrug {
			out = append(out, n)
			continue
		}

		label := strings.ToLower(n.Label)
		if containsAny(label, taxonomy.ExcludedDrugLabels) {
			continue
		}

		if containsAny(label, taxonomy.ComparatorDrugLabels) && !n.IsComparator() {
			n = n.Clone()
			n.Metadata[model.MetaIsComparator] = true
		}

		out = append(out, n)
	}

	return out
}

func containsAny(label string, substrings []string) bool {
	for _, s := range substrings {
		if s != "" && strings.Contains(label, strings.ToLower(s)) {
			return true
		}
	}
	return false
}
