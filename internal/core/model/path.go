package model

// ReasoningPath is an ordered drug -> intermediate -> disease inference chain.
// SourceCount is the number of distinct edge pairs that derived the triple
// before deduplication.
type ReasoningPath struct {
	ID              string   `json:"id"`
	Nodes           []string `json:"nodes"`
	ConfidenceScore float64  `json:"confidenceScore"`
	SourceCount     int      `json:"sourceCount"`
}

// PathKey derives the deterministic triple key used as the path ID and for
// deduplication.
func PathKey(drugID, intermediateID, diseaseID string) string {
	return drugID + "->" + intermediateID + "->" + diseaseID
}
