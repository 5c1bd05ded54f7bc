package model

type NodeType string

const (
	NodeTypeDrug         NodeType = "drug"
	NodeTypeDisease      NodeType = "disease"
	NodeTypeEvidence     NodeType = "evidence"
	NodeTypeTrial        NodeType = "trial"
	NodeTypePatent       NodeType = "patent"
	NodeTypeMarketSignal NodeType = "market_signal"
)

// Metadata keys the pipeline reads or writes. Everything else in a node's
// metadata is opaque payload carried through for the renderer.
const (
	MetaIsComparator = "isComparator"
	MetaEvidenceID   = "evidence_id"
)

type Node struct {
	ID       string         `json:"id"`
	Label    string         `json:"label"`
	Type     NodeType       `json:"type"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// IsComparator reports whether the node was tagged as a comparator arm.
// Comparators stay in the displayable graph but are excluded from path ranking.
func (n Node) IsComparator() bool {
	v, ok := n.Metadata[MetaIsComparator].(bool)
	return ok && v
}

// Clone returns a copy of the node with its own metadata map, so pipeline
// stages can annotate nodes without mutating their input.
func (n Node) Clone() Node {
	c := n
	c.Metadata = make(map[string]any, len(n.Metadata))
	for k, v := range n.Metadata {
		c.Metadata[k] = v
	}
	return c
}
