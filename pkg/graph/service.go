// Package graph owns knowledge-graph persistence: entity and edge upserts,
// bounded traversals, name search, and the derived community and importance
// rows.
//
// Writes are not serialized across callers. The (campaign, from, to, type)
// uniqueness constraint and the approved-entity protection are the only
// correctness rails; concurrent edge upserts converge because conflicts merge.
package graph

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/loresmith/loresmith/ent"
	"github.com/loresmith/loresmith/ent/entity"
	"github.com/loresmith/loresmith/ent/entityrelationship"
	"github.com/loresmith/loresmith/pkg/models"
)

// ErrApprovedEntity is returned when an ingestion write would mutate an
// approved entity's identity fields. Callers skip and count, never overwrite.
var ErrApprovedEntity = errors.New("entity is approved and cannot be overwritten by ingestion")

// ErrSelfRelation is returned for edges whose endpoints are the same entity.
var ErrSelfRelation = errors.New("self-relations are not allowed")

// Service is the graph persistence layer.
type Service struct {
	client *ent.Client
	logger *slog.Logger
}

// NewService creates a graph service.
func NewService(client *ent.Client, logger *slog.Logger) *Service {
	return &Service{client: client, logger: logger.With("component", "graph")}
}

// EntityInput is the write shape for UpsertEntity.
type EntityInput struct {
	ID          string
	CampaignID  string
	EntityType  string
	Name        string
	Content     string
	Confidence  *float64
	SourceType  string
	SourceID    string
	EmbeddingID string
	Metadata    models.EntityMetadata
}

// UpsertEntity creates or updates an entity by id. Returns the row and
// whether it was created. Updating an approved entity returns
// ErrApprovedEntity with the existing row untouched.
func (s *Service) UpsertEntity(ctx context.Context, in EntityInput) (*ent.Entity, bool, error) {
	return s.upsertEntity(ctx, in, true)
}

func (s *Service) upsertEntity(ctx context.Context, in EntityInput, retry bool) (*ent.Entity, bool, error) {
	existing, err := s.client.Entity.Query().
		Where(entity.IDEQ(in.ID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, false, fmt.Errorf("querying entity %s: %w", in.ID, err)
	}

	if existing != nil {
		if existing.Metadata.ShardStatus == models.ShardStatusApproved {
			return existing, false, fmt.Errorf("upserting %s: %w", in.ID, ErrApprovedEntity)
		}
		update := s.client.Entity.UpdateOneID(in.ID).
			SetEntityType(in.EntityType).
			SetName(in.Name).
			SetContent(in.Content).
			SetSourceType(in.SourceType).
			SetSourceID(in.SourceID).
			SetMetadata(in.Metadata)
		if in.Confidence != nil {
			update = update.SetConfidence(*in.Confidence)
		}
		if in.EmbeddingID != "" {
			update = update.SetEmbeddingID(in.EmbeddingID)
		}
		updated, err := update.Save(ctx)
		if err != nil {
			return nil, false, fmt.Errorf("updating entity %s: %w", in.ID, err)
		}
		return updated, false, nil
	}

	create := s.client.Entity.Create().
		SetID(in.ID).
		SetCampaignID(in.CampaignID).
		SetEntityType(in.EntityType).
		SetName(in.Name).
		SetContent(in.Content).
		SetSourceType(in.SourceType).
		SetSourceID(in.SourceID).
		SetMetadata(in.Metadata)
	if in.Confidence != nil {
		create = create.SetConfidence(*in.Confidence)
	}
	if in.EmbeddingID != "" {
		create = create.SetEmbeddingID(in.EmbeddingID)
	}
	created, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) && retry {
			// Lost a create race; retry once as an update. A constraint
			// error that survives the retry is not a race (for example a
			// missing campaign) and must surface.
			return s.upsertEntity(ctx, in, false)
		}
		return nil, false, fmt.Errorf("creating entity %s: %w", in.ID, err)
	}
	return created, true, nil
}

// EdgeInput is the write shape for UpsertEdge.
type EdgeInput struct {
	CampaignID       string
	From             string
	To               string
	RelationshipType string
	Strength         *float64
	Metadata         map[string]string
	AllowSelf        bool
}

// UpsertEdge creates or updates a directed edge. On conflict with an existing
// (from, to, type) row, metadata keys are merged with the new values winning,
// and strength is updated when provided.
func (s *Service) UpsertEdge(ctx context.Context, in EdgeInput) (*ent.EntityRelationship, error) {
	if in.From == in.To && !in.AllowSelf {
		return nil, fmt.Errorf("edge %s -> %s: %w", in.From, in.To, ErrSelfRelation)
	}
	return s.upsertEdge(ctx, in, true)
}

func (s *Service) upsertEdge(ctx context.Context, in EdgeInput, retry bool) (*ent.EntityRelationship, error) {
	existing, err := s.client.EntityRelationship.Query().
		Where(
			entityrelationship.CampaignIDEQ(in.CampaignID),
			entityrelationship.FromEntityIDEQ(in.From),
			entityrelationship.ToEntityIDEQ(in.To),
			entityrelationship.RelationshipTypeEQ(in.RelationshipType),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("querying edge %s->%s: %w", in.From, in.To, err)
	}

	if existing != nil {
		return s.mergeEdge(ctx, existing, in)
	}

	create := s.client.EntityRelationship.Create().
		SetID(uuid.NewString()).
		SetCampaignID(in.CampaignID).
		SetFromEntityID(in.From).
		SetToEntityID(in.To).
		SetRelationshipType(in.RelationshipType).
		SetMetadata(in.Metadata)
	if in.Strength != nil {
		create = create.SetStrength(*in.Strength)
	}
	edge, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) && retry {
			// Concurrent insert of the same tuple; converge by merging.
			// Only one pass, so a persistent violation surfaces.
			return s.upsertEdge(ctx, in, false)
		}
		return nil, fmt.Errorf("creating edge %s->%s: %w", in.From, in.To, err)
	}
	return edge, nil
}

func (s *Service) mergeEdge(ctx context.Context, existing *ent.EntityRelationship, in EdgeInput) (*ent.EntityRelationship, error) {
	merged := make(map[string]string, len(existing.Metadata)+len(in.Metadata))
	for k, v := range existing.Metadata {
		merged[k] = v
	}
	for k, v := range in.Metadata {
		merged[k] = v
	}

	update := s.client.EntityRelationship.UpdateOneID(existing.ID).
		SetMetadata(merged)
	if in.Strength != nil {
		update = update.SetStrength(*in.Strength)
	}
	edge, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("merging edge %s->%s: %w", in.From, in.To, err)
	}
	return edge, nil
}

// GetEntity loads one entity, scoped to a campaign.
func (s *Service) GetEntity(ctx context.Context, campaignID, entityID string) (*ent.Entity, error) {
	row, err := s.client.Entity.Query().
		Where(entity.IDEQ(entityID), entity.CampaignIDEQ(campaignID)).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return row, nil
}

// ListEntities returns a campaign's entities, optionally filtered by type,
// ordered by creation time then id for stable pagination.
func (s *Service) ListEntities(ctx context.Context, campaignID, entityType string, limit, offset int) ([]*ent.Entity, error) {
	q := s.client.Entity.Query().
		Where(entity.CampaignIDEQ(campaignID))
	if entityType != "" {
		q = q.Where(entity.EntityTypeEQ(entityType))
	}
	q = q.Order(ent.Asc(entity.FieldCreatedAt), ent.Asc(entity.FieldID))
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	return q.All(ctx)
}

// CountEntities returns the number of graph nodes in a campaign.
func (s *Service) CountEntities(ctx context.Context, campaignID string) (int, error) {
	return s.client.Entity.Query().
		Where(entity.CampaignIDEQ(campaignID)).
		Count(ctx)
}

// UpdateShardStatus retags an entity's shard status without touching its
// identity fields. Used by approve/reject.
func (s *Service) UpdateShardStatus(ctx context.Context, campaignID, entityID, status string) (*ent.Entity, error) {
	row, err := s.GetEntity(ctx, campaignID, entityID)
	if err != nil {
		return nil, err
	}
	meta := row.Metadata
	meta.ShardStatus = status
	if status == models.ShardStatusApproved || status == models.ShardStatusRejected {
		meta.PendingRelations = nil
	}
	return s.client.Entity.UpdateOneID(entityID).
		SetMetadata(meta).
		Save(ctx)
}
