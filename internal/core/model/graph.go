package model

// RawSnapshot is the input contract from the external fetch collaborator.
// Stats are aggregate figures computed upstream; the pipeline ignores them.
type RawSnapshot struct {
	Nodes []Node         `json:"nodes"`
	Edges []Edge         `json:"edges"`
	Stats map[string]any `json:"stats,omitempty"`
}

// Graph is the displayable node and edge set handed to the renderer.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// NodeIndex builds an ID lookup over the graph's nodes.
func (g Graph) NodeIndex() map[string]Node {
	idx := make(map[string]Node, len(g.Nodes))
	for _, n := range g.Nodes {
		idx[n.ID] = n
	}
	return idx
}
