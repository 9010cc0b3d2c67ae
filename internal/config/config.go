package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// OpenAIEmbedderConfig holds configuration for the remote embeddings client.
type OpenAIEmbedderConfig struct {
	BaseURL     string `yaml:"base_url"`
	APIKeyEnv   string `yaml:"api_key_env"`
	Model       string `yaml:"model"`
	TimeoutSecs int    `yaml:"timeout_secs"`
}

// EmbedderConfig selects and configures the text embedder implementation.
type EmbedderConfig struct {
	Type      string                `yaml:"type"`
	Dimension int                   `yaml:"dimension"`
	OpenAI    *OpenAIEmbedderConfig `yaml:"openai,omitempty"`
}

// LLMConfig configures the chat-completion endpoint.
type LLMConfig struct {
	BaseURL     string  `yaml:"base_url"`
	APIKeyEnv   string  `yaml:"api_key_env"`
	Model       string  `yaml:"model"`
	TimeoutSecs int     `yaml:"timeout_secs"`
	Temperature float32 `yaml:"temperature"`
	MaxTokens   int     `yaml:"max_tokens"`
}

// ChunkerConfig configures how corpus text is split into chunks.
type ChunkerConfig struct {
	WordsPerChunk int `yaml:"words_per_chunk"`
}

// RetrievalConfig configures query-time retrieval and the index cache.
type RetrievalConfig struct {
	TopK      int `yaml:"top_k"`
	CacheSize int `yaml:"cache_size"`
}

// ContextConfig bounds the assembled context string.
type ContextConfig struct {
	MaxChars int `yaml:"max_chars"`
}

// SummaryConfig configures the ingest summary.
type SummaryConfig struct {
	MaxSentences int `yaml:"max_sentences"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Embedder  EmbedderConfig  `yaml:"embedder"`
	LLM       LLMConfig       `yaml:"llm"`
	Chunker   ChunkerConfig   `yaml:"chunker"`
	Retrieval RetrievalConfig `yaml:"retrieval"`
	Context   ContextConfig   `yaml:"context"`
	Summary   SummaryConfig   `yaml:"summary"`
}

// Load reads a config from a specified path. If the file does not exist,
// returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultConfig(), nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyConfigDefaults(&cfg)
	return &cfg, nil
}

// LoadDefault tries ./config.yaml first, then ~/.config/learnrag/config.yaml.
// If neither exists, it writes defaults to the user path and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "config.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "learnrag", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	cfg := &AppConfig{
		Embedder: EmbedderConfig{Type: "hash", Dimension: 256},
		LLM: LLMConfig{
			BaseURL:     "https://openrouter.ai/api/v1",
			APIKeyEnv:   "OPENROUTER_API_KEY",
			Model:       "openai/gpt-4o-mini",
			TimeoutSecs: 30,
			Temperature: 0.2,
			MaxTokens:   2400,
		},
		Chunker:   ChunkerConfig{WordsPerChunk: 500},
		Retrieval: RetrievalConfig{TopK: 6, CacheSize: 32},
		Context:   ContextConfig{MaxChars: 4000},
		Summary:   SummaryConfig{MaxSentences: 5},
	}
	return cfg
}

func applyConfigDefaults(cfg *AppConfig) {
	if cfg.Embedder.Type == "" {
		cfg.Embedder.Type = "hash"
	}
	if cfg.Embedder.Dimension == 0 {
		cfg.Embedder.Dimension = 256
	}
	if cfg.Embedder.Type == "openai" && cfg.Embedder.OpenAI != nil {
		if cfg.Embedder.OpenAI.BaseURL == "" {
			cfg.Embedder.OpenAI.BaseURL = "https://api.openai.com/v1"
		}
		if cfg.Embedder.OpenAI.APIKeyEnv == "" {
			cfg.Embedder.OpenAI.APIKeyEnv = "OPENAI_API_KEY"
		}
		if cfg.Embedder.OpenAI.Model == "" {
			cfg.Embedder.OpenAI.Model = "text-embedding-3-small"
		}
		if cfg.Embedder.OpenAI.TimeoutSecs == 0 {
			cfg.Embedder.OpenAI.TimeoutSecs = 30
		}
	}
	if cfg.LLM.BaseURL == "" {
		cfg.LLM.BaseURL = "https://openrouter.ai/api/v1"
	}
	if cfg.LLM.APIKeyEnv == "" {
		cfg.LLM.APIKeyEnv = "OPENROUTER_API_KEY"
	}
	if cfg.LLM.Model == "" {
		cfg.LLM.Model = "openai/gpt-4o-mini"
	}
	if cfg.LLM.TimeoutSecs == 0 {
		cfg.LLM.TimeoutSecs = 30
	}
	if cfg.LLM.MaxTokens == 0 {
		cfg.LLM.MaxTokens = 2400
	}
	if cfg.Chunker.WordsPerChunk == 0 {
		cfg.Chunker.WordsPerChunk = 500
	}
	if cfg.Retrieval.TopK == 0 {
		cfg.Retrieval.TopK = 6
	}
	if cfg.Retrieval.CacheSize == 0 {
		cfg.Retrieval.CacheSize = 32
	}
	if cfg.Context.MaxChars == 0 {
		cfg.Context.MaxChars = 4000
	}
	if cfg.Summary.MaxSentences == 0 {
		cfg.Summary.MaxSentences = 5
	}
}
