// Package cluster groups the displayable graph into clusters of related
// entities so the dashboard can lay them out together. Edges are treated as
// undirected; clustering runs on the normalized graph, never the raw snapshot.
package cluster

import (
	"github.com/helixnav/pathlens/internal/core/model"
)

type Detector interface {
	Detect(nodes []model.Node, edges []model.Edge) ([][]model.Node, error)
}

// ComponentDetector clusters by connected component. After orphan pruning
// every node has degree >= 1, so no singleton components can occur.
type ComponentDetector struct{}

func NewComponentDetector() *ComponentDetector {
	return &ComponentDetector{}
}

func (d *ComponentDetector) Detect(nodes []model.Node, edges []model.Edge) ([][]model.Node, error) {
	nodeMap := make(map[string]model.Node, len(nodes))
	adj := make(map[string][]string)

	for _, n := range nodes {
		nodeMap[n.ID] = n
	}
	for _, e := range edges {
		if _, ok := nodeMap[e.Source]; !ok {
			continue
		}
		if _, ok := nodeMap[e.Target]; !ok {
			continue
		}
		adj[e.Source] = append(adj[e.Source], e.Target)
		adj[e.Target] = append(adj[e.Target], e.Source)
	}

	visited := make(map[string]bool, len(nodes))
	var clusters [][]model.Node

	// Iterate the node slice, not the map, so cluster order is stable.
	for _, n := range nodes {
		if visited[n.ID] {
			continue
		}
		var componentIDs []string
		d.dfs(n.ID, adj, visited, &componentIDs)

		if len(componentIDs) < 2 {
			continue
		}
		cluster := make([]model.Node, 0, len(componentIDs))
		for _, id := range componentIDs {
			cluster = append(cluster, nodeMap[id])
		}
		clusters = append(clusters, cluster)
	}

	return clusters, nil
}

func (d *ComponentDetector) dfs(id string, adj map[string][]string, visited map[string]bool, component *[]string) {
	visited[id] = true
	*component = append(*component, id)
	for _, next := range adj[id] {
		if !visited[next] {
			d.dfs(next, adj, visited, component)
		}
	}
}
