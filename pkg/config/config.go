// Package config loads and validates LoreSmith configuration.
//
// Configuration comes from loresmith.yaml in the config directory, merged
// over built-in defaults. Secrets (API keys, database password) come from the
// environment, usually via the .env file loaded in main.
package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// Config is the fully merged, validated runtime configuration.
type Config struct {
	Server    *ServerConfig    `yaml:"server"`
	Queue     *QueueConfig     `yaml:"queue"`
	Pipeline  *PipelineConfig  `yaml:"pipeline"`
	Retention *RetentionConfig `yaml:"retention"`
	Vector    *VectorConfig    `yaml:"vector"`
	Blob      *BlobConfig      `yaml:"blob"`
	LLM       *LLMConfig       `yaml:"llm"`
}

// APIToken maps one bearer token to a tenant. Admin tokens may additionally
// call the /admin endpoints.
type APIToken struct {
	Token  string `yaml:"token"`
	Tenant string `yaml:"tenant"`
	Admin  bool   `yaml:"admin"`
}

// ServerConfig configures the HTTP listener and its token registry.
type ServerConfig struct {
	Host   string     `yaml:"host"`
	Port   int        `yaml:"port"`
	Tokens []APIToken `yaml:"tokens"`
}

// VectorConfig configures the Qdrant vector index connection.
type VectorConfig struct {
	Host       string `yaml:"host"`
	Port       int    `yaml:"port"`
	UseTLS     bool   `yaml:"use_tls"`
	Collection string `yaml:"collection"`
	APIKeyEnv  string `yaml:"api_key_env"`
}

// BlobConfig configures the S3 blob store.
type BlobConfig struct {
	Bucket   string `yaml:"bucket"`
	Region   string `yaml:"region"`
	Endpoint string `yaml:"endpoint"`
}

// LLMConfig configures the chat-completion / embeddings provider.
type LLMConfig struct {
	BaseURL           string  `yaml:"base_url"`
	APIKeyEnv         string  `yaml:"api_key_env"`
	ChatModel         string  `yaml:"chat_model"`
	MaxResponseTokens int     `yaml:"max_response_tokens"`
	RequestsPerMinute float64 `yaml:"requests_per_minute"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Server:    &ServerConfig{Host: "0.0.0.0", Port: 8080},
		Queue:     DefaultQueueConfig(),
		Pipeline:  DefaultPipelineConfig(),
		Retention: DefaultRetentionConfig(),
		Vector: &VectorConfig{
			Host:       "localhost",
			Port:       6334,
			Collection: "loresmith",
			APIKeyEnv:  "QDRANT_API_KEY",
		},
		Blob: &BlobConfig{
			Bucket: "loresmith",
			Region: "us-east-1",
		},
		LLM: &LLMConfig{
			APIKeyEnv:         "OPENAI_API_KEY",
			ChatModel:         "gpt-4o-mini",
			MaxResponseTokens: 16384,
			RequestsPerMinute: 60,
		},
	}
}

// Initialize loads, merges, and validates configuration from configDir.
// A missing loresmith.yaml is not an error; defaults apply.
func Initialize(_ context.Context, configDir string) (*Config, error) {
	cfg := DefaultConfig()

	path := filepath.Join(configDir, "loresmith.yaml")
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		slog.Info("No loresmith.yaml found, using defaults", "path", path)
	case err != nil:
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	default:
		var fileCfg Config
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		// File values win over defaults; unset file fields keep defaults.
		if err := mergo.Merge(cfg, &fileCfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge config: %w", err)
		}
		slog.Info("Loaded configuration", "path", path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints that yaml decoding cannot.
func (c *Config) Validate() error {
	if c.Pipeline.EmbeddingDim <= 0 {
		return fmt.Errorf("pipeline.embedding_dim must be positive, got %d", c.Pipeline.EmbeddingDim)
	}
	if c.Pipeline.EmbeddingChunkSize > c.Pipeline.EmbeddingMaxChars {
		return fmt.Errorf("pipeline.embedding_chunk_size (%d) must not exceed embedding_max_chars (%d)",
			c.Pipeline.EmbeddingChunkSize, c.Pipeline.EmbeddingMaxChars)
	}
	if c.Pipeline.DedupThreshold <= 0 || c.Pipeline.DedupThreshold > 1 {
		return fmt.Errorf("pipeline.dedup_threshold must be in (0, 1], got %v", c.Pipeline.DedupThreshold)
	}
	if c.Queue.WorkerCount <= 0 {
		return fmt.Errorf("queue.worker_count must be positive, got %d", c.Queue.WorkerCount)
	}
	if c.Queue.BackoffBase <= 0 || c.Queue.BackoffCap < c.Queue.BackoffBase {
		return fmt.Errorf("queue backoff misconfigured: base=%v cap=%v", c.Queue.BackoffBase, c.Queue.BackoffCap)
	}
	if c.Vector.Collection == "" {
		return fmt.Errorf("vector.collection must not be empty")
	}
	for i, tok := range c.Server.Tokens {
		if tok.Token == "" || tok.Tenant == "" {
			return fmt.Errorf("server.tokens[%d] must set both token and tenant", i)
		}
	}
	return nil
}
