// Package taxonomy helps curators grow the disease-synonym table. The
// suggester proposes rawLabel -> canonicalLabel merges from the labels seen
// in a snapshot; a curator reviews and promotes them into the config. The
// pipeline only ever consumes the curated table, so normalization stays
// deterministic regardless of what the model answers here.
package taxonomy

import (
	"context"
	"fmt"
	"strings"

	"github.com/helixnav/pathlens/internal/core/common"
	"github.com/helixnav/pathlens/internal/core/model"
	"github.com/helixnav/pathlens/internal/llm"
)

type Suggester struct {
	LLM llm.LLMClient
}

func NewSuggester(llmClient llm.LLMClient) *Suggester {
	return &Suggester{
		LLM: llmClient,
	}
}

// SuggestSynonyms asks the model which candidate disease labels denote a
// condition already present in the canonical set. Pairs whose raw label was
// not among the candidates are discarded, as are self-pairs.
func (s *Suggester) SuggestSynonyms(ctx context.Context, candidates []string, canonical []string) ([]model.SynonymPair, error) {
	if len(candidates) == 0 {
		return nil, nil
	}

	prompt := fmt.Sprintf(`<CANDIDATE LABELS>
%s</CANDIDATE LABELS>

<CANONICAL LABELS>
%s</CANONICAL LABELS>

Instructions:
Identify CANDIDATE LABELS that denote the same disease as one of the CANONICAL LABELS (alternate names, subtypes folded into a parent indication, spelling variants).
Return a JSON object with key "synonyms", a list of objects with "raw_label" (the candidate), "canonical_label" (the canonical form), and "confidence" (float 0-1).

Example JSON:
{
  "synonyms": [
    {"raw_label": "Colon Cancer", "canonical_label": "Colorectal Cancer", "confidence": 0.95}
  ]
}
`, serializeLabels(candidates), serializeLabels(canonical))

	response, err := s.LLM.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate synonym suggestions: %w", err)
	}

	result, err := common.ParseJSON[model.SynonymSuggestionResult](response)
	if err != nil {
		return nil, fmt.Errorf("failed to parse synonym suggestions: %w", err)
	}

	known := make(map[string]bool, len(candidates))
	for _, label := range candidates {
		known[label] = true
	}

	pairs := make([]model.SynonymPair, 0, len(result.Synonyms))
	for _, pair := range result.Synonyms {
		if !known[pair.RawLabel] || pair.RawLabel == pair.CanonicalLabel {
			continue
		}
		pairs = append(pairs, pair)
	}

	return pairs, nil
}

func serializeLabels(labels []string) string {
	var b strings.Builder
	for _, label := range labels {
		fmt.Fprintf(&b, "- %s\n", label)
	}
	return b.String()
}
