package pipeline

import (
	"fmt"

	"github.com/helixnav/pathlens/internal/core/model"
)

// PruneOrphans drops nodes with no remaining edges. Degree must be computed
// on the final validated edge set, not an intermediate one, since mediation
// changes connectivity. Each removal is observable as a warning.
func PruneOrphans(nodes []model.Node, edges []model.Edge) ([]model.Node, []model.Warning) {
	degree := make(map[string]int, len(nodes))
	for _, e := range edges {
		degree[e.Source]++
		degree[e.Target]++
	}

	var warnings []model.Warning
	out := make([]model.Node, 0, len(nodes))
	for _, n := range nodes {
		if degree[n.ID] == 0 {
			warnings = append(warnings, model.Warning{
				Code:    model.WarnOrphanRemoved,
				Message: fmt.Sprintf("removed orphan node %q (%s)", n.Label, n.Type),
				Context: map[string]any{"nodeId": n.ID, "type": string(n.Type)},
			})
			continue
		}
		out = append(out, n)
	}

	// A non-empty side with an empty counterpart means an upstream stage
	// misbehaved; surface one diagnostic rather than failing.
	if (len(edges) > 0 && len(out) == 0) || (len(edges) == 0 && len(nodes) > 0) {
		warnings = append(warnings, model.Warning{
			Code:    model.WarnEmptyResultMismatch,
			Message: fmt.Sprintf("result mismatch: %d edges against %d surviving nodes", len(edges), len(out)),
			Context: map[string]any{"edges": len(edges), "nodes": len(out)},
		})
	}

	return out, warnings
}
