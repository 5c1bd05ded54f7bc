package pipeline

import (
	"github.com/helixnav/pathlens/internal/core/model"
)

// MediateEvidence rewrites every direct drug->disease edge into the two-hop
// drug->evidence->disease form using the evidence linkage recorded in the
// edge's metadata. The policy is fail-closed: an edge whose evidence_id is
// missing, or names a node not in the graph, is dropped entirely rather than
// surviving as an unsubstantiated claim. All other edges pass through.
func MediateEvidence(edges []model.Edge, nodes map[string]model.Node) []model.Edge {
	out := make([]model.Edge, 0, len(edges))

	for _, e := range edges {
		source, sourceOK := nodes[e.Source]
		target, targetOK := nodes[e.Target]
		if !sourceOK || !targetOK {
			continue
		}

		if source.Type != model.NodeTypeDrug || target.Type != model.NodeTypeDisease {
			out = append(out, e)
			continue
		}

		evidenceID := e.EvidenceID()
		if evidenceID == "" {
			continue
		}
		if _, ok := nodes[evidenceID]; !ok {
			continue
		}

		// Both hops carry the original relationship and metadata so polarity
		// survives for ranking.
		inbound := e.Clone()
		inbound.Target = evidenceID

		outbound := e.Clone()
		outbound.Source = evidenceID

		out = append(out, inbound, outbound)
	}

	return out
}
