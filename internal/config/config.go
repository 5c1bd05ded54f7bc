package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// TaxonomyConfig carries the curated tables the pipeline normalizes against.
// They are configuration rather than business logic so tests can inject
// alternate taxonomies.
type TaxonomyConfig struct {
	// DiseaseSynonyms maps raw disease labels to their canonical label.
	// Many-to-one; labels absent from the table are their own canonical form.
	DiseaseSynonyms map[string]string `toml:"disease_synonyms"`

	// ExcludedDrugLabels removes a drug node when its label contains any of
	// these substrings (case-insensitive).
	ExcludedDrugLabels []string `toml:"excluded_drug_labels"`

	// ComparatorDrugLabels tags a drug node as a comparator arm when its
	// label contains any of these substrings (case-insensitive).
	ComparatorDrugLabels []string `toml:"comparator_drug_labels"`
}

// RankingConfig fixes the deterministic confidence tiers for path scoring.
type RankingConfig struct {
	BaseScore        float64 `toml:"base_score"`
	SupportsScore    float64 `toml:"supports_score"`
	SuggestsScore    float64 `toml:"suggests_score"`
	ContradictsScore float64 `toml:"contradicts_score"`
	MaxPaths         int     `toml:"max_paths"`
}

type LLMConfig struct {
	Provider string `toml:"provider"`
	Model    string `toml:"model"`
	APIKey   string `toml:"api_key"`
	BaseURL  string `toml:"base_url"`
}

type MemgraphConfig struct {
	URI      string `toml:"uri"`
	User     string `toml:"user"`
	Password string `toml:"password"`
}

type Config struct {
	Taxonomy TaxonomyConfig `toml:"taxonomy"`
	Ranking  RankingConfig  `toml:"ranking"`
	LLM      LLMConfig      `toml:"llm"`
	Memgraph MemgraphConfig `toml:"memgraph"`
}

// Default returns the shipped taxonomy and ranking tiers. Placebo and
// standard-of-care arms are not entities worth displaying as drugs; active
// comparators stay visible but are kept out of path ranking.
func Default() *Config {
	return &Config{
		Taxonomy: TaxonomyConfig{
			DiseaseSynonyms:      map[string]string{},
			ExcludedDrugLabels:   []string{"placebo", "no treatment", "sham"},
			ComparatorDrugLabels: []string{"comparator", "standard of care", "best supportive care"},
		},
		Ranking: RankingConfig{
			BaseScore:        0.50,
			SupportsScore:    0.90,
			SuggestsScore:    0.65,
			ContradictsScore: 0.20,
			MaxPaths:         12,
		},
	}
}

// Load reads a TOML config file over the defaults, so a partial file only
// overrides the sections it names.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	return cfg, nil
}
