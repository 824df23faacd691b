// Package staging orchestrates entity extraction for one (campaign, resource)
// pair: content retrieval, chunking, sequential LLM extraction with
// rate-limit-aware retry, cross-chunk merging, dedup, graph writes, and a
// single importance recompute at the end.
//
// Failure semantics are deliberately partial: a chunk that exhausts its
// retries is recorded and skipped, and per-entity database failures are
// counted without aborting the resource.
package staging

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/loresmith/loresmith/ent"
	"github.com/loresmith/loresmith/pkg/config"
	"github.com/loresmith/loresmith/pkg/dedup"
	"github.com/loresmith/loresmith/pkg/entityextract"
	"github.com/loresmith/loresmith/pkg/graph"
	"github.com/loresmith/loresmith/pkg/llm"
	"github.com/loresmith/loresmith/pkg/models"
	"github.com/loresmith/loresmith/pkg/vector"
)

// EntityExtractor is the extraction dependency.
type EntityExtractor interface {
	Extract(ctx context.Context, req entityextract.Request) ([]models.ExtractedEntity, error)
}

// GraphWriter is the subset of the graph service staging writes through.
type GraphWriter interface {
	UpsertEntity(ctx context.Context, in graph.EntityInput) (*ent.Entity, bool, error)
	UpsertEdge(ctx context.Context, in graph.EdgeInput) (*ent.EntityRelationship, error)
	GetEntity(ctx context.Context, campaignID, entityID string) (*ent.Entity, error)
}

// Deduper is the semantic dedup dependency.
type Deduper interface {
	IsDuplicate(ctx context.Context, candidateText, campaignID, entityType, excludeID string) (dedup.Result, error)
}

// Embedder writes entity vectors.
type Embedder interface {
	EmbedAndIndex(ctx context.Context, sourceID, text string, metadata map[string]any) (EmbedResult, error)
}

// EmbedResult mirrors the embedding service result without importing it,
// keeping the fake surface small.
type EmbedResult struct {
	VectorIDs []string
	Fallback  bool
}

// ChangelogAppender records world-state changes.
type ChangelogAppender interface {
	Append(ctx context.Context, campaignID, sessionID string, payload models.ChangelogPayload) (*ent.ChangelogEntry, error)
}

// ImportanceRecomputer is invoked once per resource after all writes.
type ImportanceRecomputer interface {
	RecomputeImportance(ctx context.Context, campaignID string) error
}

// Service runs the staging pipeline.
type Service struct {
	provider   ContentProvider
	extractor  EntityExtractor
	graph      GraphWriter
	deduper    Deduper
	embedder   Embedder
	changes    ChangelogAppender
	importance ImportanceRecomputer
	cfg        config.PipelineConfig
	logger     *slog.Logger

	// sleep is replaceable so tests don't wait out the inter-chunk delays.
	sleep func(ctx context.Context, d time.Duration) error
}

// NewService wires the staging orchestrator.
func NewService(
	provider ContentProvider,
	extractor EntityExtractor,
	graphWriter GraphWriter,
	deduper Deduper,
	embedder Embedder,
	changes ChangelogAppender,
	importance ImportanceRecomputer,
	cfg config.PipelineConfig,
	logger *slog.Logger,
) *Service {
	return &Service{
		provider:   provider,
		extractor:  extractor,
		graph:      graphWriter,
		deduper:    deduper,
		embedder:   embedder,
		changes:    changes,
		importance: importance,
		cfg:        cfg,
		logger:     logger.With("component", "staging"),
		sleep:      sleepCtx,
	}
}

// Result is the partial-success envelope returned to the caller.
type Result struct {
	Success          bool     `json:"success"`
	EntityCount      int      `json:"entity_count"`
	Warning          string   `json:"warning,omitempty"`
	FailedChunks     []int    `json:"failed_chunks,omitempty"`
	SuccessfulChunks int      `json:"successful_chunks"`
	TotalChunks      int      `json:"total_chunks"`
	SkippedApproved  []string `json:"skipped_approved,omitempty"`
	SkippedDuplicate []string `json:"skipped_duplicate,omitempty"`
}

// Run stages all entities extractable from one resource into the campaign
// graph.
func (s *Service) Run(ctx context.Context, campaignID, tenant, fileKey, sourceName string) (Result, error) {
	content, err := s.provider.Content(ctx, tenant, fileKey)
	if err != nil {
		return Result{}, fmt.Errorf("retrieving content for %s: %w", fileKey, err)
	}
	if content == "" {
		s.logger.Info("resource has no extractable content", "file_key", fileKey)
		return Result{Success: true}, nil
	}

	chunkTexts := SplitContent(content, s.cfg.StagingChunkChars)
	merged, failed := s.extractChunks(ctx, campaignID, fileKey, sourceName, chunkTexts)
	successful := len(chunkTexts) - len(failed)
	if successful == 0 {
		return Result{
			Success:      false,
			FailedChunks: failed,
			TotalChunks:  len(chunkTexts),
			Warning:      "entity extraction failed for every chunk",
		}, nil
	}

	persisted := s.persistEntities(ctx, campaignID, tenant, fileKey, sourceName, merged)

	if persisted.written > 0 {
		if err := s.importance.RecomputeImportance(ctx, campaignID); err != nil {
			s.logger.Warn("importance recompute failed", "campaign_id", campaignID, "error", err)
		}
	}

	result := Result{
		Success:          true,
		EntityCount:      persisted.written,
		FailedChunks:     failed,
		SuccessfulChunks: successful,
		TotalChunks:      len(chunkTexts),
		SkippedApproved:  persisted.skippedApproved,
		SkippedDuplicate: persisted.skippedDuplicate,
	}
	if len(failed) > 0 {
		pct := successful * 100 / len(chunkTexts)
		result.Warning = fmt.Sprintf(
			"processed %d%% of the resource (%d of %d chunks); retry the resource to cover the rest",
			pct, successful, len(chunkTexts))
	}
	return result, nil
}

// extractChunks runs extraction sequentially over the chunks, retrying each
// chunk with exponential backoff and pausing extra after rate limits.
func (s *Service) extractChunks(ctx context.Context, campaignID, fileKey, sourceName string, chunkTexts []string) (map[string]models.ExtractedEntity, []int) {
	merged := make(map[string]models.ExtractedEntity)
	var failed []int

	for i, text := range chunkTexts {
		if i > 0 && len(chunkTexts) > 1 {
			if err := s.sleep(ctx, s.cfg.StagingInterChunkDelay); err != nil {
				failed = append(failed, i)
				continue
			}
		}

		entities, err := s.extractChunkWithRetry(ctx, campaignID, fileKey, sourceName, text)
		if err != nil {
			s.logger.Warn("chunk failed after retries",
				"file_key", fileKey, "chunk", i, "error", err)
			failed = append(failed, i)
			continue
		}
		mergeEntities(merged, entities)
	}
	return merged, failed
}

func (s *Service) extractChunkWithRetry(ctx context.Context, campaignID, fileKey, sourceName, text string) ([]models.ExtractedEntity, error) {
	req := entityextract.Request{
		Text:       text,
		SourceName: sourceName,
		CampaignID: campaignID,
		SourceID:   fileKey,
		SourceType: "file",
	}

	var lastErr error
	for attempt := 0; attempt <= s.cfg.StagingMaxRetries; attempt++ {
		if attempt > 0 {
			delay := backoff(s.cfg.StagingBackoffBase, s.cfg.StagingBackoffCap, attempt-1)
			if hint, ok := llm.RetryAfterHint(lastErr); ok && hint > delay {
				delay = hint
			}
			if err := s.sleep(ctx, delay); err != nil {
				return nil, err
			}
		}

		entities, err := s.extractor.Extract(ctx, req)
		if err == nil {
			return entities, nil
		}
		lastErr = err

		if llm.IsRateLimit(err) {
			// Extra pause before any further call for this resource.
			if sleepErr := s.sleep(ctx, s.cfg.StagingRateLimitPause); sleepErr != nil {
				return nil, sleepErr
			}
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}
	return nil, lastErr
}

type persistOutcome struct {
	written          int
	skippedApproved  []string
	skippedDuplicate []string
}

// persistEntities writes merged entities and their relationships, honoring
// the approved-entity protection and semantic dedup.
func (s *Service) persistEntities(ctx context.Context, campaignID, tenant, fileKey, sourceName string, merged map[string]models.ExtractedEntity) persistOutcome {
	var outcome persistOutcome
	var payload models.ChangelogPayload

	for _, id := range sortedEntityIDs(merged) {
		e := merged[id]

		existing, err := s.graph.GetEntity(ctx, campaignID, e.ID)
		if err != nil && !ent.IsNotFound(err) {
			s.logger.Warn("entity lookup failed", "entity_id", e.ID, "error", err)
			continue
		}

		if existing != nil && existing.Metadata.ShardStatus == models.ShardStatusApproved {
			s.logger.Info("skipping approved entity", "entity_id", e.ID)
			outcome.skippedApproved = append(outcome.skippedApproved, e.ID)
			continue
		}

		if existing == nil {
			verdict, err := s.deduper.IsDuplicate(ctx, e.Content, campaignID, e.EntityType, e.ID)
			if err != nil {
				s.logger.Warn("dedup check failed, proceeding with create",
					"entity_id", e.ID, "error", err)
			} else if verdict.Duplicate {
				s.logger.Info("skipping duplicate entity",
					"entity_id", e.ID, "existing_id", verdict.ExistingID, "score", verdict.Score)
				outcome.skippedDuplicate = append(outcome.skippedDuplicate, e.ID)
				s.mergeProvenance(ctx, campaignID, verdict.ExistingID, sourceName)
				continue
			}
		}

		meta := models.EntityMetadata{
			ShardStatus:      models.ShardStatusStaging,
			PendingRelations: pendingRelations(e, campaignID),
			SourceName:       sourceName,
			Extra:            e.Metadata,
		}

		row, created, err := s.graph.UpsertEntity(ctx, graph.EntityInput{
			ID:         e.ID,
			CampaignID: campaignID,
			EntityType: e.EntityType,
			Name:       e.Name,
			Content:    e.Content,
			Confidence: e.Confidence,
			SourceType: "file",
			SourceID:   fileKey,
			Metadata:   meta,
		})
		if err != nil {
			if errors.Is(err, graph.ErrApprovedEntity) {
				outcome.skippedApproved = append(outcome.skippedApproved, e.ID)
			} else {
				s.logger.Warn("entity write failed", "entity_id", e.ID, "error", err)
			}
			continue
		}
		outcome.written++

		s.indexEntity(ctx, campaignID, tenant, row)

		if created {
			payload.NewEntities = append(payload.NewEntities, models.NewEntityChange{
				EntityID:   e.ID,
				EntityType: e.EntityType,
				Name:       e.Name,
			})
		} else {
			payload.EntityUpdates = append(payload.EntityUpdates, models.EntityUpdateChange{
				EntityID:  e.ID,
				NewStatus: models.ShardStatusStaging,
			})
		}

		payload.RelationshipUpdates = append(payload.RelationshipUpdates,
			s.writeRelations(ctx, campaignID, e)...)
	}

	if len(payload.NewEntities)+len(payload.EntityUpdates)+len(payload.RelationshipUpdates) > 0 {
		if _, err := s.changes.Append(ctx, campaignID, "", payload); err != nil {
			s.logger.Warn("changelog append failed", "campaign_id", campaignID, "error", err)
		}
	}
	return outcome
}

// writeRelations creates the entity's relationships with staging status.
// Self-relations and failed writes are skipped, not fatal.
func (s *Service) writeRelations(ctx context.Context, campaignID string, e models.ExtractedEntity) []models.RelationshipUpdateChange {
	var changes []models.RelationshipUpdateChange
	for _, r := range e.Relations {
		target := prefixTarget(campaignID, r.TargetID)
		if target == e.ID {
			continue
		}
		meta := map[string]string{"status": models.ShardStatusStaging}
		for k, v := range r.Metadata {
			meta[k] = v
		}
		_, err := s.graph.UpsertEdge(ctx, graph.EdgeInput{
			CampaignID:       campaignID,
			From:             e.ID,
			To:               target,
			RelationshipType: r.RelationshipType,
			Strength:         r.Strength,
			Metadata:         meta,
		})
		if err != nil {
			s.logger.Warn("relationship write failed",
				"from", e.ID, "to", target, "type", r.RelationshipType, "error", err)
			continue
		}
		changes = append(changes, models.RelationshipUpdateChange{
			FromEntityID:     e.ID,
			ToEntityID:       target,
			RelationshipType: r.RelationshipType,
			NewStatus:        models.ShardStatusStaging,
		})
	}
	return changes
}

// indexEntity writes the entity vector used by dedup and search.
func (s *Service) indexEntity(ctx context.Context, campaignID, tenant string, row *ent.Entity) {
	_, err := s.embedder.EmbedAndIndex(ctx, "entity:"+row.ID, row.Content, map[string]any{
		"entity_id":   row.ID,
		"campaign_id": campaignID,
		"tenant":      tenant,
		"contentType": vector.ContentTypeEntity,
		"entity_type": row.EntityType,
		"created_at":  float64(row.CreatedAt.Unix()),
	})
	if err != nil {
		s.logger.Warn("entity embedding failed", "entity_id", row.ID, "error", err)
	}
}

// mergeProvenance records that another source also produced the surviving
// entity of a dedup hit.
func (s *Service) mergeProvenance(ctx context.Context, campaignID, existingID, sourceName string) {
	row, err := s.graph.GetEntity(ctx, campaignID, existingID)
	if err != nil {
		return
	}
	meta := row.Metadata
	if meta.Extra == nil {
		meta.Extra = make(map[string]string)
	}
	if prev, ok := meta.Extra["also_from"]; ok && prev != "" {
		meta.Extra["also_from"] = prev + "," + sourceName
	} else {
		meta.Extra["also_from"] = sourceName
	}
	_, _, err = s.graph.UpsertEntity(ctx, graph.EntityInput{
		ID:         row.ID,
		CampaignID: campaignID,
		EntityType: row.EntityType,
		Name:       row.Name,
		Content:    row.Content,
		SourceType: row.SourceType,
		SourceID:   row.SourceID,
		Metadata:   meta,
	})
	if err != nil {
		s.logger.Debug("provenance merge failed", "entity_id", existingID, "error", err)
	}
}

func pendingRelations(e models.ExtractedEntity, campaignID string) []models.PendingRelation {
	var out []models.PendingRelation
	for _, r := range e.Relations {
		target := prefixTarget(campaignID, r.TargetID)
		if target == e.ID {
			continue
		}
		out = append(out, models.PendingRelation{
			RelationshipType: r.RelationshipType,
			TargetID:         target,
			Strength:         r.Strength,
			Metadata:         r.Metadata,
		})
	}
	return out
}

func backoff(base, limit time.Duration, attempt int) time.Duration {
	d := base << attempt
	if d > limit || d <= 0 {
		return limit
	}
	return d
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
