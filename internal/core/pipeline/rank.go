package pipeline

import (
	"sort"

	"github.com/helixnav/pathlens/internal/config"
	"github.com/helixnav/pathlens/internal/core/model"
)

// RankPaths extracts drug -> intermediate -> disease triples from the final
// graph and scores them by the polarity of their hops. Comparator drugs are
// excluded. Scoring is fully deterministic: SUPPORTS on either hop dominates,
// CONTRADICTS with no SUPPORTS present takes the lowest tier, SUGGESTS alone
// takes the middle tier, anything else scores the base. A triple derived by
// several edge pairs is deduplicated, keeps its best score, and counts the
// derivations as its source count.
func RankPaths(nodes []model.Node, edges []model.Edge, ranking config.RankingConfig) []model.ReasoningPath {
	byID := make(map[string]model.Node, len(nodes))
	adjacency := make(map[string][]model.Edge)
	for _, n := range nodes {
		byID[n.ID] = n
	}
	for _, e := range edges {
		adjacency[e.Source] = append(adjacency[e.Source], e)
	}

	paths := make(map[string]*model.ReasoningPath)
	for _, drug := range nodes {
		if drug.Type != model.NodeTypeDrug || drug.IsComparator() {
			continue
		}
		for _, hop := range adjacency[drug.ID] {
			intermediate, ok := byID[hop.Target]
			if !ok || intermediate.Type == model.NodeTypeDisease {
				continue
			}
			for _, tail := range adjacency[intermediate.ID] {
				disease, ok := byID[tail.Target]
				if !ok || disease.Type != model.NodeTypeDisease {
					continue
				}

				key := model.PathKey(drug.ID, intermediate.ID, disease.ID)
				score := scoreHops(hop.Relationship, tail.Relationship, ranking)

				if p, ok := paths[key]; ok {
					p.SourceCount++
					if score > p.ConfidenceScore {
						p.ConfidenceScore = score
					}
					continue
				}
				paths[key] = &model.ReasoningPath{
					ID:              key,
					Nodes:           []string{drug.ID, intermediate.ID, disease.ID},
					ConfidenceScore: score,
					SourceCount:     1,
				}
			}
		}
	}

	ranked := make([]model.ReasoningPath, 0, len(paths))
	for _, p := range paths {
		ranked = append(ranked, *p)
	}
	// Descending by confidence, path ID breaks ties so the order is total.
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].ConfidenceScore != ranked[j].ConfidenceScore {
			return ranked[i].ConfidenceScore > ranked[j].ConfidenceScore
		}
		return ranked[i].ID < ranked[j].ID
	})

	max := ranking.MaxPaths
	if max <= 0 {
		max = 12
	}
	if len(ranked) > max {
		ranked = ranked[:max]
	}
	return ranked
}

func scoreHops(a, b model.Relationship, ranking config.RankingConfig) float64 {
	switch {
	case a == model.RelSupports || b == model.RelSupports:
		return ranking.SupportsScore
	case a == model.RelContradicts || b == model.RelContradicts:
		return ranking.ContradictsScore
	case a == model.RelSuggests || b == model.RelSuggests:
		return ranking.SuggestsScore
	default:
		return ranking.BaseScore
	}
}
