package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize_DefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "loresmith", cfg.Vector.Collection)
	assert.Equal(t, 768, cfg.Pipeline.EmbeddingDim)
	assert.Equal(t, 5, cfg.Queue.WorkerCount)
}

func TestInitialize_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	content := `
server:
  port: 9090
  tokens:
    - token: acme-token
      tenant: acme
    - token: root-token
      tenant: ops
      admin: true
queue:
  worker_count: 2
vector:
  collection: custom
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "loresmith.yaml"), []byte(content), 0o644))

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host, "unset fields keep defaults")
	assert.Equal(t, 2, cfg.Queue.WorkerCount)
	assert.Equal(t, "custom", cfg.Vector.Collection)
	assert.Equal(t, 768, cfg.Pipeline.EmbeddingDim, "untouched sections keep defaults")

	require.Len(t, cfg.Server.Tokens, 2)
	assert.False(t, cfg.Server.Tokens[0].Admin)
	assert.True(t, cfg.Server.Tokens[1].Admin)
}

func TestInitialize_RejectsMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "loresmith.yaml"), []byte("server: [not a map"), 0o644))

	_, err := Initialize(context.Background(), dir)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(*Config) {},
		},
		{
			name:    "embedding dim must be positive",
			mutate:  func(c *Config) { c.Pipeline.EmbeddingDim = 0 },
			wantErr: "embedding_dim",
		},
		{
			name: "chunk size cannot exceed max chars",
			mutate: func(c *Config) {
				c.Pipeline.EmbeddingChunkSize = c.Pipeline.EmbeddingMaxChars + 1
			},
			wantErr: "embedding_chunk_size",
		},
		{
			name:    "dedup threshold range",
			mutate:  func(c *Config) { c.Pipeline.DedupThreshold = 1.5 },
			wantErr: "dedup_threshold",
		},
		{
			name:    "worker count must be positive",
			mutate:  func(c *Config) { c.Queue.WorkerCount = 0 },
			wantErr: "worker_count",
		},
		{
			name:    "backoff cap below base",
			mutate:  func(c *Config) { c.Queue.BackoffCap = c.Queue.BackoffBase / 2 },
			wantErr: "backoff",
		},
		{
			name:    "collection required",
			mutate:  func(c *Config) { c.Vector.Collection = "" },
			wantErr: "vector.collection",
		},
		{
			name: "token without tenant",
			mutate: func(c *Config) {
				c.Server.Tokens = []APIToken{{Token: "t"}}
			},
			wantErr: "server.tokens[0]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
