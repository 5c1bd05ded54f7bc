// Package pipeline turns a raw, possibly inconsistent knowledge-graph
// snapshot into a graph satisfying the display invariants, plus ranked
// reasoning paths. Every stage is a pure function over the previous stage's
// output; the whole pipeline holds no state, performs no I/O, and reports
// anomalies as returned warnings instead of logging.
package pipeline

import (
	"github.com/helixnav/pathlens/internal/config"
	"github.com/helixnav/pathlens/internal/core/model"
)

// Result is the output contract handed to in-process consumers.
type Result struct {
	Graph    model.Graph           `json:"graph"`
	Paths    []model.ReasoningPath `json:"reasoningPaths"`
	Warnings []model.Warning       `json:"warnings"`
}

// Normalize runs the full stage sequence:
//
//  1. FilterNodes: drop placeholder drug entities, tag comparators.
//  2. CanonicalizeEntities: merge synonymous diseases, build the identity map.
//  3. RemapEdges: rewrite endpoints through the identity map, drop danglers.
//  4. MediateEvidence: route drug->disease claims through their evidence node.
//  5. ValidateEdges: defensive invariant sweep plus dedup.
//  6. PruneOrphans: drop nodes the surviving edge set no longer touches.
//  7. RankPaths: extract, score, and rank reasoning paths.
//
// The order is load-bearing: canonicalization must precede remapping so merged
// endpoints resolve, and pruning must run on the final edge set because
// mediation changes connectivity. Each invocation recomputes everything from
// scratch; nothing is mutated incrementally and the input is left untouched.
func Normalize(snapshot model.RawSnapshot, taxonomy config.TaxonomyConfig, ranking config.RankingConfig) Result {
	filtered := FilterNodes(snapshot.Nodes, taxonomy)
	nodes, ids := CanonicalizeEntities(filtered, taxonomy.DiseaseSynonyms)

	index := model.Graph{Nodes: nodes}.NodeIndex()
	edges := RemapEdges(snapshot.Edges, ids, index)
	edges = MediateEvidence(edges, index)
	edges, warnings := ValidateEdges(edges, index)

	nodes, pruneWarnings := PruneOrphans(nodes, edges)
	warnings = append(warnings, pruneWarnings...)

	paths := RankPaths(nodes, edges, ranking)

	return Result{
		Graph:    model.Graph{Nodes: nodes, Edges: edges},
		Paths:    paths,
		Warnings: warnings,
	}
}
