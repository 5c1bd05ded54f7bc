package model

type Relationship string

const (
	RelSupports    Relationship = "SUPPORTS"
	RelSuggests    Relationship = "SUGGESTS"
	RelContradicts Relationship = "CONTRADICTS"
	RelTreats      Relationship = "TREATS"
)

type Edge struct {
	Source       string         `json:"source"`
	Target       string         `json:"target"`
	Relationship Relationship   `json:"relationship"`
	Weight       float64        `json:"weight"`
	Metadata     map[string]any `json:"metadata,omitempty"`
}

// EvidenceID returns the ID of the node substantiating this edge's claim, or
// "" when no evidence linkage was recorded upstream.
func (e Edge) EvidenceID() string {
	s, _ := e.Metadata[MetaEvidenceID].(string)
	return s
}

// Key is the deduplication key. Two edges with the same endpoints and
// relationship are the same claim regardless of weight or metadata.
func (e Edge) Key() string {
	return e.Source + "|" + e.Target + "|" + string(e.Relationship)
}

// Clone returns a copy of the edge with its own metadata map.
func (e Edge) Clone() Edge {
	c := e
	c.Metadata = make(map[string]any, len(e.Metadata))
	for k, v := range e.Metadata {
		c.Metadata[k] = v
	}
	return c
}
