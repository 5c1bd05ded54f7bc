package model

// SynonymPair is a proposed disease-label merge for the taxonomy table.
type SynonymPair struct {
	RawLabel       string  `json:"raw_label"`
	CanonicalLabel string  `json:"canonical_label"`
	Confidence     float64 `json:"confidence"`
}

type SynonymSuggestionResult struct {
	Synonyms []SynonymPair `json:"synonyms"`
}
