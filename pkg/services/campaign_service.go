package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/loresmith/loresmith/ent"
	"github.com/loresmith/loresmith/ent/campaign"
	"github.com/loresmith/loresmith/ent/file"
	"github.com/loresmith/loresmith/ent/queuemessage"
	"github.com/loresmith/loresmith/ent/rebuildstatus"
	"github.com/loresmith/loresmith/pkg/queue"
)

// CreateCampaignInput contains the domain-level data for a new campaign.
type CreateCampaignInput struct {
	Name        string
	Description string
}

// CampaignService handles campaign lifecycle and resource linking.
type CampaignService struct {
	client *ent.Client
	queue  *queue.Queue
	logger *slog.Logger
}

// NewCampaignService creates a new CampaignService.
func NewCampaignService(client *ent.Client, q *queue.Queue, logger *slog.Logger) *CampaignService {
	if client == nil {
		panic("NewCampaignService: client must not be nil")
	}
	return &CampaignService{
		client: client,
		queue:  q,
		logger: logger.With("component", "campaigns"),
	}
}

// Create registers a new campaign for the tenant.
func (s *CampaignService) Create(ctx context.Context, tenant string, input CreateCampaignInput) (*ent.Campaign, error) {
	if input.Name == "" {
		return nil, NewValidationError("name", "campaign name is required")
	}

	builder := s.client.Campaign.Create().
		SetID("camp_" + uuid.New().String()).
		SetTenant(tenant).
		SetName(input.Name)
	if input.Description != "" {
		builder.SetDescription(input.Description)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create campaign: %w", err)
	}
	return row, nil
}

// List returns the tenant's campaigns, newest first.
func (s *CampaignService) List(ctx context.Context, tenant string, includeArchived bool) ([]*ent.Campaign, error) {
	q := s.client.Campaign.Query().
		Where(campaign.TenantEQ(tenant))
	if !includeArchived {
		q = q.Where(campaign.StatusEQ(campaign.StatusActive))
	}
	return q.
		Order(ent.Desc(campaign.FieldCreatedAt), ent.Asc(campaign.FieldID)).
		All(ctx)
}

// Get returns one campaign. Cross-tenant ids report not found.
func (s *CampaignService) Get(ctx context.Context, tenant, campaignID string) (*ent.Campaign, error) {
	row, err := s.client.Campaign.Query().
		Where(campaign.IDEQ(campaignID), campaign.TenantEQ(tenant)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load campaign: %w", err)
	}
	return row, nil
}

// Archive retires a campaign without deleting its graph. Archiving twice is
// a no-op.
func (s *CampaignService) Archive(ctx context.Context, tenant, campaignID string) (*ent.Campaign, error) {
	row, err := s.Get(ctx, tenant, campaignID)
	if err != nil {
		return nil, err
	}
	if row.Status == campaign.StatusArchived {
		return row, nil
	}
	updated, err := s.client.Campaign.UpdateOne(row).
		SetStatus(campaign.StatusArchived).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to archive campaign: %w", err)
	}
	return updated, nil
}

// LinkResource attaches a completed file to the campaign and enqueues entity
// extraction for it.
func (s *CampaignService) LinkResource(ctx context.Context, tenant, campaignID, fileKey string) (*ent.QueueMessage, error) {
	if fileKey == "" {
		return nil, NewValidationError("file_key", "file_key is required")
	}
	if _, err := s.Get(ctx, tenant, campaignID); err != nil {
		return nil, err
	}

	f, err := s.client.File.Query().
		Where(file.IDEQ(fileKey), file.TenantEQ(tenant)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load file: %w", err)
	}
	if f.Status != file.StatusCompleted {
		return nil, NewValidationError("file_key",
			fmt.Sprintf("file is not ready for extraction (status %s)", f.Status))
	}

	msg, err := s.queue.Enqueue(ctx, queuemessage.KindEntityExtraction, tenant, map[string]string{
		queue.PayloadCampaignID: campaignID,
		queue.PayloadFileKey:    fileKey,
		queue.PayloadSourceName: f.FileName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to enqueue extraction: %w", err)
	}

	s.logger.Info("resource linked for extraction",
		"tenant", tenant, "campaign_id", campaignID, "file_key", fileKey)
	return msg, nil
}

// ListRebuilds returns a campaign's rebuild history, newest first.
func (s *CampaignService) ListRebuilds(ctx context.Context, tenant, campaignID string) ([]*ent.RebuildStatus, error) {
	if _, err := s.Get(ctx, tenant, campaignID); err != nil {
		return nil, err
	}
	return s.client.RebuildStatus.Query().
		Where(rebuildstatus.CampaignIDEQ(campaignID)).
		Order(ent.Desc(rebuildstatus.FieldCreatedAt), ent.Asc(rebuildstatus.FieldID)).
		All(ctx)
}
