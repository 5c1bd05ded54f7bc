package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Contains(t, cfg.Taxonomy.ExcludedDrugLabels, "placebo")
	assert.Equal(t, 12, cfg.Ranking.MaxPaths)
	assert.Greater(t, cfg.Ranking.SupportsScore, cfg.Ranking.SuggestsScore)
	assert.Greater(t, cfg.Ranking.SuggestsScore, cfg.Ranking.BaseScore)
	assert.Less(t, cfg.Ranking.ContradictsScore, cfg.Ranking.BaseScore)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[taxonomy.disease_synonyms]
"Colon Cancer" = "Colorectal Cancer"

[ranking]
max_paths = 5
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Colorectal Cancer", cfg.Taxonomy.DiseaseSynonyms["Colon Cancer"])
	assert.Equal(t, 5, cfg.Ranking.MaxPaths)
	// Untouched sections keep their defaults.
	assert.Contains(t, cfg.Taxonomy.ExcludedDrugLabels, "placebo")
	assert.Equal(t, 0.90, cfg.Ranking.SupportsScore)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoad_MalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[taxonomy\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
