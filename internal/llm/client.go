package llm

import (
	"context"
)

// LLMClient is the minimal surface the taxonomy tooling needs from a
// provider. The normalization pipeline itself never calls an LLM.
type LLMClient interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
