package pipeline

import (
	"github.com/helixnav/pathlens/internal/core/model"
)

// RemapEdges rewrites every edge's endpoints through the identity map. Edges
// whose endpoint was removed upstream, or resolves outside the final node
// set, are dropped silently. Relationship, weight and metadata are preserved.
func RemapEdges(edges []model.Edge, ids model.IdentityMap, nodes map[string]model.Node) []model.Edge {
	out := make([]model.Edge, 0, len(edges))

	for _, e := range edges {
		source, ok := ids.Resolve(e.Source)
		if !ok {
			continue
		}
		target, ok := ids.Resolve(e.Target)
		if !ok {
			continue
		}
		if _, ok := nodes[source]; !ok {
			continue
		}
		if _, ok := nodes[target]; !ok {
			continue
		}

		remapped := e.Clone()
		remapped.Source = source
		remapped.Target = target
		out = append(out, remapped)
	}

	return out
}
