package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/loresmith/loresmith/ent"
	"github.com/loresmith/loresmith/pkg/graph"
	"github.com/loresmith/loresmith/pkg/models"
)

// EntityWithNeighbors is one entity plus its graph neighborhood.
type EntityWithNeighbors struct {
	Entity    *ent.Entity      `json:"entity"`
	Neighbors []graph.Neighbor `json:"neighbors,omitempty"`
}

// EntityService is the user-facing read/approve surface over the graph.
type EntityService struct {
	campaigns *CampaignService
	graph     *graph.Service
	logger    *slog.Logger
}

// NewEntityService creates a new EntityService.
func NewEntityService(campaigns *CampaignService, graphSvc *graph.Service, logger *slog.Logger) *EntityService {
	return &EntityService{
		campaigns: campaigns,
		graph:     graphSvc,
		logger:    logger.With("component", "entities"),
	}
}

// List returns a campaign's entities, optionally filtered by type.
func (s *EntityService) List(ctx context.Context, tenant, campaignID, entityType string, limit, offset int) ([]*ent.Entity, error) {
	if _, err := s.campaigns.Get(ctx, tenant, campaignID); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.graph.ListEntities(ctx, campaignID, entityType, limit, offset)
}

// Get returns one entity with its 2-hop neighborhood.
func (s *EntityService) Get(ctx context.Context, tenant, campaignID, entityID string) (*EntityWithNeighbors, error) {
	if _, err := s.campaigns.Get(ctx, tenant, campaignID); err != nil {
		return nil, err
	}
	entity, err := s.graph.GetEntity(ctx, campaignID, entityID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load entity: %w", err)
	}
	neighbors, err := s.graph.GetNeighbors(ctx, campaignID, entityID, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to load neighborhood: %w", err)
	}
	return &EntityWithNeighbors{Entity: entity, Neighbors: neighbors}, nil
}

// Approve moves a staging entity to approved. Approved entities are never
// overwritten by later ingestion. Approving an already-approved entity is a
// no-op.
func (s *EntityService) Approve(ctx context.Context, tenant, campaignID, entityID string) (*ent.Entity, error) {
	return s.setShardStatus(ctx, tenant, campaignID, entityID, models.ShardStatusApproved)
}

// Reject retags a staging entity as rejected. The row survives for audit;
// nothing is deleted.
func (s *EntityService) Reject(ctx context.Context, tenant, campaignID, entityID string) (*ent.Entity, error) {
	return s.setShardStatus(ctx, tenant, campaignID, entityID, models.ShardStatusRejected)
}

func (s *EntityService) setShardStatus(ctx context.Context, tenant, campaignID, entityID, status string) (*ent.Entity, error) {
	if _, err := s.campaigns.Get(ctx, tenant, campaignID); err != nil {
		return nil, err
	}
	entity, err := s.graph.GetEntity(ctx, campaignID, entityID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load entity: %w", err)
	}

	current := entity.Metadata.ShardStatus
	if current == status {
		return entity, nil
	}
	if current != models.ShardStatusStaging {
		return nil, NewValidationError("entity_id",
			fmt.Sprintf("entity is %s; only staging entities can be approved or rejected", current))
	}

	updated, err := s.graph.UpdateShardStatus(ctx, campaignID, entityID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to update shard status: %w", err)
	}
	s.logger.Info("entity shard status changed",
		"campaign_id", campaignID, "entity_id", entityID, "shard_status", status)
	return updated, nil
}
