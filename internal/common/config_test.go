package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DB_URL", "")
	cfg := LoadConfig()
	assert.Equal(t, "file:ndaa_requests.db?cache=shared", cfg.Database.DSN)
	assert.True(t, cfg.Ingest.SkipHidden)
	require.NoError(t, cfg.Validate())
}

func TestDefaultHeuristics(t *testing.T) {
	h := DefaultHeuristics()
	assert.Equal(t, int64(250_000_000), h.BatchFallbackCents)
	assert.Equal(t, int64(500_000_000), h.UploadFallbackCents)
	assert.Contains(t, h.SubmitterTokens, "mills")
	assert.Equal(t, "Statewide/National Impact", h.StatewideLabel)
}

func TestLoadHeuristicsFileOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heuristics.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
batch_fallback_cents: 100000000
district_label: "District 12"
district_keywords:
  - tampa
`), 0o644))

	h, err := LoadHeuristicsFile(path)
	require.NoError(t, err)

	// Overridden values.
	assert.Equal(t, int64(100_000_000), h.BatchFallbackCents)
	assert.Equal(t, "District 12", h.DistrictLabel)
	assert.Equal(t, []string{"tampa"}, h.DistrictKeywords)
	// Untouched values keep their defaults.
	assert.Equal(t, int64(500_000_000), h.UploadFallbackCents)
	assert.Equal(t, "Statewide/National Impact", h.StatewideLabel)
}

func TestLoadHeuristicsFileMissing(t *testing.T) {
	_, err := LoadHeuristicsFile("/nonexistent/heuristics.yaml")
	assert.Error(t, err)
}

func TestValidateRejectsNegativeFallbacks(t *testing.T) {
	cfg := LoadConfig()
	cfg.Heuristics.BatchFallbackCents = -1
	assert.Error(t, cfg.Validate())
}
