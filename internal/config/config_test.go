package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "hash", cfg.Embedder.Type)
	assert.Equal(t, 256, cfg.Embedder.Dimension)
	assert.Equal(t, 6, cfg.Retrieval.TopK)
	assert.Equal(t, 4000, cfg.Context.MaxChars)
}

func TestLoadAppliesDefaultsToPartialConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "retrieval:\n  top_k: 12\nllm:\n  model: custom/model\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Retrieval.TopK)
	assert.Equal(t, "custom/model", cfg.LLM.Model)
	assert.Equal(t, "hash", cfg.Embedder.Type, "unspecified fields take defaults")
	assert.Equal(t, 500, cfg.Chunker.WordsPerChunk)
	assert.Equal(t, "https://openrouter.ai/api/v1", cfg.LLM.BaseURL)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("retrieval: [unclosed"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "config.yaml")
	want := defaultConfig()
	want.Retrieval.CacheSize = 7
	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestOpenAIEmbedderDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "embedder:\n  type: openai\n  openai:\n    model: \"\"\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.Embedder.OpenAI)
	assert.Equal(t, "https://api.openai.com/v1", cfg.Embedder.OpenAI.BaseURL)
	assert.Equal(t, "OPENAI_API_KEY", cfg.Embedder.OpenAI.APIKeyEnv)
	assert.Equal(t, "text-embedding-3-small", cfg.Embedder.OpenAI.Model)
	assert.Equal(t, 30, cfg.Embedder.OpenAI.TimeoutSecs)
}
