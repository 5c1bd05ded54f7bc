package cluster

import (
	"sort"

	"github.com/helixnav/pathlens/internal/core/model"
)

// LabelPropagationDetector refines connected components into denser clusters
// using label propagation (LPA). Useful when one component mixes several
// distinct evidence neighborhoods around the same disease.
type LabelPropagationDetector struct {
	MaxIterations int
}

func NewLabelPropagationDetector() *LabelPropagationDetector {
	return &LabelPropagationDetector{
		MaxIterations: 20,
	}
}

func (d *LabelPropagationDetector) Detect(nodes []model.Node, edges []model.Edge) ([][]model.Node, error) {
	if len(nodes) == 0 {
		return nil, nil
	}

	// Parallel edges strengthen the connection between their endpoints.
	adj := make(map[string]map[string]int, len(nodes))
	nodeMap := make(map[string]model.Node, len(nodes))
	for _, n := range nodes {
		nodeMap[n.ID] = n
		adj[n.ID] = make(map[string]int)
	}
	for _, e := range edges {
		if _, ok := nodeMap[e.Source]; !ok {
			continue
		}
		if _, ok := nodeMap[e.Target]; !ok {
			continue
		}
		adj[e.Source][e.Target]++
		adj[e.Target][e.Source]++
	}

	// Every node starts in its own cluster labeled by its ID.
	labels := make(map[string]string, len(nodes))
	order := make([]string, len(nodes))
	for i, n := range nodes {
		labels[n.ID] = n.ID
		order[i] = n.ID
	}

	for iter := 0; iter < d.MaxIterations; iter++ {
		changed := 0

		for _, id := range order {
			neighbors := adj[id]
			if len(neighbors) == 0 {
				continue
			}

			counts := make(map[string]int)
			maxCount := 0
			for neighbor, weight := range neighbors {
				label := labels[neighbor]
				counts[label] += weight
				if counts[label] > maxCount {
					maxCount = counts[label]
				}
			}

			var candidates []string
			for label, count := range counts {
				if count == maxCount {
					candidates = append(candidates, label)
				}
			}
			// Lexicographically largest candidate, so ties break the same
			// way on every run.
			sort.Strings(candidates)
			best := candidates[len(candidates)-1]

			if labels[id] != best {
				labels[id] = best
				changed++
			}
		}

		if changed == 0 {
			break
		}
	}

	grouped := make(map[string][]model.Node)
	for _, id := range order {
		label := labels[id]
		grouped[label] = append(grouped[label], nodeMap[id])
	}

	groupLabels := make([]string, 0, len(grouped))
	for label := range grouped {
		groupLabels = append(groupLabels, label)
	}
	sort.Strings(groupLabels)

	var clusters [][]model.Node
	for _, label := range groupLabels {
		if members := grouped[label]; len(members) >= 2 {
			clusters = append(clusters, members)
		}
	}

	return clusters, nil
}
