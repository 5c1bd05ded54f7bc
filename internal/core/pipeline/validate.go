package pipeline

import (
	"fmt"
	"sort"

	"github.com/helixnav/pathlens/internal/core/model"
)

// ValidateEdges defends the output invariants after mediation. Any residual
// drug->disease edge is dropped with a warning (it indicates an upstream
// contract bug, never a fatal condition), duplicate (source, target,
// relationship) triples are collapsed keeping the first occurrence, and
// structural anomalies are reported as warnings.
func ValidateEdges(edges []model.Edge, nodes map[string]model.Node) ([]model.Edge, []model.Warning) {
	var warnings []model.Warning
	seen := make(map[string]bool, len(edges))
	out := make([]model.Edge, 0, len(edges))

	for _, e := range edges {
		source, sourceOK := nodes[e.Source]
		target, targetOK := nodes[e.Target]

		if sourceOK && targetOK &&
			source.Type == model.NodeTypeDrug && target.Type == model.NodeTypeDisease {
			warnings = append(warnings, model.Warning{
				Code:    model.WarnDirectDrugDiseaseEdge,
				Message: fmt.Sprintf("dropped unmediated drug->disease edge %s -> %s", e.Source, e.Target),
				Context: map[string]any{"source": e.Source, "target": e.Target},
			})
			continue
		}

		key := e.Key()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, e)
	}

	warnings = append(warnings, structuralWarnings(out, nodes)...)
	return out, warnings
}

// structuralWarnings reports diseases no edge points at and evidence or trial
// nodes too weakly connected to mediate anything.
func structuralWarnings(edges []model.Edge, nodes map[string]model.Node) []model.Warning {
	incoming := make(map[string]int)
	touching := make(map[string]int)
	for _, e := range edges {
		incoming[e.Target]++
		touching[e.Source]++
		touching[e.Target]++
	}

	ids := make([]string, 0, len(nodes))
	for id := range nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var warnings []model.Warning
	for _, id := range ids {
		n := nodes[id]
		switch n.Type {
		case model.NodeTypeDisease:
			if incoming[n.ID] == 0 {
				warnings = append(warnings, model.Warning{
					Code:    model.WarnDiseaseNoIncoming,
					Message: fmt.Sprintf("disease node %q has no incoming edges", n.Label),
					Context: map[string]any{"nodeId": n.ID},
				})
			}
		case model.NodeTypeEvidence, model.NodeTypeTrial:
			if deg := touching[n.ID]; deg > 0 && deg < 2 {
				warnings = append(warnings, model.Warning{
					Code:    model.WarnWeakEvidenceLinkage,
					Message: fmt.Sprintf("%s node %q touches only %d edge(s)", n.Type, n.Label, deg),
					Context: map[string]any{"nodeId": n.ID, "degree": deg},
				})
			}
		}
	}

	return warnings
}
