package graph

import (
	"context"
	"fmt"
	"time"

	"github.com/loresmith/loresmith/ent"
	"github.com/loresmith/loresmith/ent/community"
	"github.com/loresmith/loresmith/ent/entityimportance"
	"github.com/loresmith/loresmith/ent/entityrelationship"
)

// CommunityInput is the write shape for community rows.
type CommunityInput struct {
	ID                string
	Level             int
	ParentCommunityID string
	EntityIDs         []string
	Metadata          map[string]string
}

// ReplaceCommunities atomically swaps a campaign's community rows for a new
// detection result.
func (s *Service) ReplaceCommunities(ctx context.Context, campaignID string, inputs []CommunityInput) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Community.Delete().
		Where(community.CampaignIDEQ(campaignID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("clearing communities for %s: %w", campaignID, err)
	}

	for _, in := range inputs {
		create := tx.Community.Create().
			SetID(in.ID).
			SetCampaignID(campaignID).
			SetLevel(in.Level).
			SetEntityIds(in.EntityIDs).
			SetMetadata(in.Metadata)
		if in.ParentCommunityID != "" {
			create = create.SetParentCommunityID(in.ParentCommunityID)
		}
		if err := create.Exec(ctx); err != nil {
			return fmt.Errorf("creating community %s: %w", in.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing communities for %s: %w", campaignID, err)
	}
	return nil
}

// UpdateCommunity rewrites a single community's membership and metadata,
// keeping the rest of the campaign's rows intact. Used by partial rebuilds.
func (s *Service) UpdateCommunity(ctx context.Context, communityID string, entityIDs []string, metadata map[string]string) error {
	err := s.client.Community.UpdateOneID(communityID).
		SetEntityIds(entityIDs).
		SetMetadata(metadata).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("updating community %s: %w", communityID, err)
	}
	return nil
}

// ListCommunities returns a campaign's communities ordered by level then id.
func (s *Service) ListCommunities(ctx context.Context, campaignID string) ([]*ent.Community, error) {
	return s.client.Community.Query().
		Where(community.CampaignIDEQ(campaignID)).
		Order(ent.Asc(community.FieldLevel), ent.Asc(community.FieldID)).
		All(ctx)
}

// ImportanceInput is the write shape for one importance row.
type ImportanceInput struct {
	EntityID       string
	PageRank       float64
	Betweenness    float64
	HierarchyLevel int
	CompositeScore float64
}

// UpsertImportance writes importance rows for a campaign, one per entity.
func (s *Service) UpsertImportance(ctx context.Context, campaignID string, rows []ImportanceInput) error {
	now := time.Now()
	for _, row := range rows {
		existing, err := s.client.EntityImportance.Query().
			Where(entityimportance.IDEQ(row.EntityID)).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("querying importance for %s: %w", row.EntityID, err)
		}
		if existing {
			err = s.client.EntityImportance.UpdateOneID(row.EntityID).
				SetPagerank(row.PageRank).
				SetBetweennessCentrality(row.Betweenness).
				SetHierarchyLevel(row.HierarchyLevel).
				SetCompositeScore(row.CompositeScore).
				SetComputedAt(now).
				Exec(ctx)
		} else {
			err = s.client.EntityImportance.Create().
				SetID(row.EntityID).
				SetCampaignID(campaignID).
				SetPagerank(row.PageRank).
				SetBetweennessCentrality(row.Betweenness).
				SetHierarchyLevel(row.HierarchyLevel).
				SetCompositeScore(row.CompositeScore).
				SetComputedAt(now).
				Exec(ctx)
		}
		if err != nil {
			return fmt.Errorf("writing importance for %s: %w", row.EntityID, err)
		}
	}
	return nil
}

// ListImportance returns a campaign's importance rows ordered by composite
// score, highest first.
func (s *Service) ListImportance(ctx context.Context, campaignID string) ([]*ent.EntityImportance, error) {
	return s.client.EntityImportance.Query().
		Where(entityimportance.CampaignIDEQ(campaignID)).
		Order(ent.Desc(entityimportance.FieldCompositeScore), ent.Asc(entityimportance.FieldID)).
		All(ctx)
}

// ListEdges returns every relationship in a campaign in stable order. Used by
// rebuilds to materialize the adjacency structure.
func (s *Service) ListEdges(ctx context.Context, campaignID string) ([]*ent.EntityRelationship, error) {
	return s.client.EntityRelationship.Query().
		Where(entityrelationship.CampaignIDEQ(campaignID)).
		Order(ent.Asc(entityrelationship.FieldCreatedAt), ent.Asc(entityrelationship.FieldID)).
		All(ctx)
}
