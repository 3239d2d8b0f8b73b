package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "gemini", cfg.Provider)
	assert.Equal(t, "gemini-2.5-flash", cfg.Model)
	assert.Equal(t, 30*time.Second, cfg.ProviderTimeout)
	assert.Equal(t, DefaultMaxAttempts, cfg.MaxAttempts)
	assert.Equal(t, DefaultSimilarityThreshold, cfg.SimilarityThreshold)
	assert.Equal(t, DefaultHistoryCap, cfg.HistoryCap)
	assert.Equal(t, filepath.Join(StateDir, "used_lines.json"), cfg.HistoryPath)
	assert.Equal(t, DefaultStartFontSize, cfg.StartFontSize)
}

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "gemini", cfg.Provider)
}

func TestLoadMalformedFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("provider: [unclosed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadYAMLOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bhaktibot.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
provider: cohere
model: command-r
max_attempts: 3
similarity_threshold: 0.9
fallback_lines:
  - "pehli line"
  - "doosri line"
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "cohere", cfg.Provider)
	assert.Equal(t, "command-r", cfg.Model)
	assert.Equal(t, 3, cfg.MaxAttempts)
	assert.Equal(t, 0.9, cfg.SimilarityThreshold)
	assert.Equal(t, []string{"pehli line", "doosri line"}, cfg.FallbackLines)
	// untouched keys keep their defaults
	assert.Equal(t, DefaultHistoryCap, cfg.HistoryCap)
}

func TestLoadEnvOverridesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bhaktibot.yaml")
	require.NoError(t, os.WriteFile(path, []byte("provider: gemini\n"), 0o644))

	t.Setenv("BHAKTIBOT_PROVIDER", "cohere")
	t.Setenv("BHAKTIBOT_MAX_ATTEMPTS", "2")
	t.Setenv("COHERE_API_KEY", "test-key")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "cohere", cfg.Provider)
	assert.Equal(t, 2, cfg.MaxAttempts)
	assert.Equal(t, "test-key", cfg.APIKey)
}

func TestValidateForGeneration(t *testing.T) {
	cfg := defaults()
	cfg.APIKey = "key"
	assert.NoError(t, cfg.ValidateForGeneration())

	missing := defaults()
	assert.ErrorContains(t, missing.ValidateForGeneration(), "GEMINI_API_KEY")

	missing.Provider = "cohere"
	assert.ErrorContains(t, missing.ValidateForGeneration(), "COHERE_API_KEY")

	unknown := defaults()
	unknown.APIKey = "key"
	unknown.Provider = "openai"
	assert.ErrorContains(t, unknown.ValidateForGeneration(), "unknown provider")

	bounds := defaults()
	bounds.APIKey = "key"
	bounds.MinWords = 10
	bounds.MaxWords = 5
	assert.ErrorContains(t, bounds.ValidateForGeneration(), "word count bounds")

	threshold := defaults()
	threshold.APIKey = "key"
	threshold.SimilarityThreshold = 1.5
	assert.ErrorContains(t, threshold.ValidateForGeneration(), "similarity threshold")
}

func TestValidateForUpload(t *testing.T) {
	cfg := defaults()
	assert.Error(t, cfg.ValidateForUpload())

	cfg.YTClientID = "id"
	cfg.YTClientSecret = "secret"
	cfg.YTRefreshToken = "token"
	assert.NoError(t, cfg.ValidateForUpload())
}
