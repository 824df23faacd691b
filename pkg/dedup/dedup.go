// Package dedup detects semantically duplicate entities before they enter
// the graph.
//
// Dedup is advisory: it reports the best existing match above the similarity
// threshold and the caller decides whether to merge or skip.
package dedup

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/loresmith/loresmith/pkg/config"
	"github.com/loresmith/loresmith/pkg/embedding"
	"github.com/loresmith/loresmith/pkg/vector"
)

// Result is the dedup verdict for one candidate.
type Result struct {
	Duplicate  bool
	ExistingID string
	Score      float32
}

// Deduplicator runs similarity checks against already-indexed entities.
type Deduplicator struct {
	embedder *embedding.Service
	index    vector.Index
	cfg      config.PipelineConfig
	logger   *slog.Logger
}

// NewDeduplicator creates a deduplicator.
func NewDeduplicator(embedder *embedding.Service, index vector.Index, cfg config.PipelineConfig, logger *slog.Logger) *Deduplicator {
	return &Deduplicator{
		embedder: embedder,
		index:    index,
		cfg:      cfg,
		logger:   logger.With("component", "dedup"),
	}
}

// IsDuplicate embeds candidateText and searches same-type entities in the
// campaign. A match at or above the threshold (excluding excludeID) is
// reported as a duplicate. Equal scores break toward the older entity.
func (d *Deduplicator) IsDuplicate(ctx context.Context, candidateText, campaignID, entityType, excludeID string) (Result, error) {
	queryVec, err := d.embedder.EmbedQuery(ctx, candidateText)
	if err != nil {
		return Result{}, fmt.Errorf("embedding dedup candidate: %w", err)
	}

	matches, err := d.index.Query(ctx, vector.Query{
		Vector: queryVec,
		TopK:   d.cfg.DedupTopK,
		Filter: map[string]string{
			"campaign_id": campaignID,
			"contentType": vector.ContentTypeEntity,
			"entity_type": entityType,
		},
		WithMetadata: true,
	})
	if err != nil {
		return Result{}, fmt.Errorf("querying entity vectors: %w", err)
	}

	var best *vector.Match
	for i := range matches {
		m := &matches[i]
		if float64(m.Score) < d.cfg.DedupThreshold {
			continue
		}
		if entityIDOf(m) == excludeID {
			continue
		}
		if best == nil || m.Score > best.Score {
			best = m
			continue
		}
		if m.Score == best.Score && createdAtOf(m) < createdAtOf(best) {
			best = m
		}
	}
	if best == nil {
		return Result{}, nil
	}

	existingID := entityIDOf(best)
	d.logger.Debug("duplicate entity detected",
		"campaign_id", campaignID, "existing_id", existingID, "score", best.Score)
	return Result{Duplicate: true, ExistingID: existingID, Score: best.Score}, nil
}

func entityIDOf(m *vector.Match) string {
	if id, ok := m.Metadata["entity_id"].(string); ok {
		return id
	}
	return ""
}

func createdAtOf(m *vector.Match) float64 {
	switch v := m.Metadata["created_at"].(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	case int:
		return float64(v)
	default:
		return 0
	}
}
