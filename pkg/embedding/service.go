// Package embedding turns text into indexed vectors.
//
// Long sources are pre-split so no single provider call exceeds the input
// budget; provider failures degrade to deterministic fallback vectors so
// ingestion keeps moving, with the fallback flagged in vector metadata for
// later re-embedding.
package embedding

import (
	"context"
	"fmt"
	"hash/fnv"
	"log/slog"
	"math"

	"github.com/loresmith/loresmith/pkg/config"
	"github.com/loresmith/loresmith/pkg/llm"
	"github.com/loresmith/loresmith/pkg/vector"
)

// Service embeds text and writes the vectors to the index.
type Service struct {
	provider llm.Client
	index    vector.Index
	cfg      config.PipelineConfig
	logger   *slog.Logger
}

// NewService creates an embedding service.
func NewService(provider llm.Client, index vector.Index, cfg config.PipelineConfig, logger *slog.Logger) *Service {
	return &Service{
		provider: provider,
		index:    index,
		cfg:      cfg,
		logger:   logger.With("component", "embedding"),
	}
}

// Result reports what one EmbedAndIndex call wrote.
type Result struct {
	VectorIDs []string
	// Fallback is true when the provider failed and deterministic fallback
	// vectors were written instead.
	Fallback bool
}

// EmbedAndIndex embeds text and upserts the vectors. Sources longer than the
// pre-split threshold produce one vector per piece, with ids derived from
// sourceID and the piece index. The given metadata is attached to every
// vector, plus the model name and piece bookkeeping.
func (s *Service) EmbedAndIndex(ctx context.Context, sourceID, text string, metadata map[string]any) (Result, error) {
	pieces := SplitText(text, s.cfg.EmbeddingChunkSize)
	if len(pieces) > s.cfg.EmbeddingWarnCount {
		s.logger.Warn("source produced an unusually large embedding batch",
			"source_id", sourceID, "pieces", len(pieces))
	}

	for i, piece := range pieces {
		pieces[i] = Truncate(piece, s.cfg.EmbeddingMaxChars)
	}

	vectors, err := s.provider.Embed(ctx, pieces)
	fallback := false
	if err != nil {
		if llm.IsRateLimit(err) {
			return Result{}, err
		}
		s.logger.Warn("embedding provider failed, writing fallback vectors",
			"source_id", sourceID, "error", err)
		fallback = true
		vectors = make([][]float32, len(pieces))
		for i, piece := range pieces {
			vectors[i] = FallbackVector(piece, s.cfg.EmbeddingDim)
		}
	}
	if len(vectors) != len(pieces) {
		return Result{}, fmt.Errorf("embedding %s: got %d vectors for %d pieces", sourceID, len(vectors), len(pieces))
	}

	records := make([]vector.Record, len(pieces))
	ids := make([]string, len(pieces))
	for i, piece := range pieces {
		suffix := ""
		if len(pieces) > 1 {
			suffix = fmt.Sprintf("_part_%d", i)
		}
		id := vector.ID(sourceID, suffix)
		ids[i] = id

		meta := make(map[string]any, len(metadata)+4)
		for k, v := range metadata {
			meta[k] = v
		}
		meta["model"] = s.cfg.EmbeddingModel
		meta["snippet"] = vector.SanitizeSnippet(piece)
		if len(pieces) > 1 {
			meta["part"] = i
			meta["parts"] = len(pieces)
		}
		if fallback {
			meta["fallback"] = true
		}
		records[i] = vector.Record{ID: id, Values: vectors[i], Metadata: meta}
	}

	for start := 0; start < len(records); start += s.cfg.EmbeddingBatchSize {
		end := start + s.cfg.EmbeddingBatchSize
		if end > len(records) {
			end = len(records)
		}
		if err := s.index.Upsert(ctx, records[start:end]); err != nil {
			return Result{}, fmt.Errorf("indexing vectors for %s: %w", sourceID, err)
		}
	}

	return Result{VectorIDs: ids, Fallback: fallback}, nil
}

// EmbedQuery embeds a search query. No fallback: a search against fallback
// vectors would return noise, so provider failures propagate.
func (s *Service) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	vectors, err := s.provider.Embed(ctx, []string{Truncate(text, s.cfg.EmbeddingMaxChars)})
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}
	if len(vectors) != 1 {
		return nil, fmt.Errorf("embedding query: got %d vectors", len(vectors))
	}
	return vectors[0], nil
}

// SplitText splits text into pieces of at most chunkSize bytes. Empty text
// still yields one piece so every source gets a vector.
func SplitText(text string, chunkSize int) []string {
	if len(text) <= chunkSize {
		return []string{text}
	}
	var pieces []string
	for start := 0; start < len(text); start += chunkSize {
		end := start + chunkSize
		if end > len(text) {
			end = len(text)
		}
		pieces = append(pieces, text[start:end])
	}
	return pieces
}

// Truncate caps text at maxChars bytes.
func Truncate(text string, maxChars int) string {
	if len(text) <= maxChars {
		return text
	}
	return text[:maxChars]
}

// FallbackVector derives a deterministic vector in [0, 1] from the text hash.
// Same text always produces the same vector, so retried writes are stable.
func FallbackVector(text string, dim int) []float32 {
	h := fnv.New64a()
	h.Write([]byte(text))
	seed := float64(h.Sum64() % 100000)

	vec := make([]float32, dim)
	for i := range vec {
		vec[i] = float32((math.Sin(seed+float64(i)) + 1) / 2)
	}
	return vec
}
