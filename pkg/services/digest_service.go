package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/loresmith/loresmith/ent"
	"github.com/loresmith/loresmith/ent/sessiondigest"
	"github.com/loresmith/loresmith/pkg/embedding"
	"github.com/loresmith/loresmith/pkg/models"
	"github.com/loresmith/loresmith/pkg/vector"
)

// UpsertDigestInput contains the domain-level data for one session digest.
type UpsertDigestInput struct {
	SessionDate *time.Time
	Sections    []models.DigestSection
}

// DigestService stores session digests and their section embeddings.
type DigestService struct {
	client    *ent.Client
	campaigns *CampaignService
	embedder  *embedding.Service
	index     vector.Index
	logger    *slog.Logger
}

// NewDigestService creates a new DigestService.
func NewDigestService(client *ent.Client, campaigns *CampaignService, embedder *embedding.Service, index vector.Index, logger *slog.Logger) *DigestService {
	if client == nil {
		panic("NewDigestService: client must not be nil")
	}
	return &DigestService{
		client:    client,
		campaigns: campaigns,
		embedder:  embedder,
		index:     index,
		logger:    logger.With("component", "digests"),
	}
}

// Upsert writes one session's digest, replacing any previous revision and
// its section vectors.
func (s *DigestService) Upsert(ctx context.Context, tenant, campaignID string, sessionNumber int, input UpsertDigestInput) (*ent.SessionDigest, error) {
	if sessionNumber <= 0 {
		return nil, NewValidationError("session_number", "session_number must be positive")
	}
	if len(input.Sections) == 0 {
		return nil, NewValidationError("sections", "at least one section is required")
	}
	for i, section := range input.Sections {
		if section.SectionType == "" {
			return nil, NewValidationError("sections", fmt.Sprintf("section %d has no section_type", i))
		}
		if section.Text == "" {
			return nil, NewValidationError("sections", fmt.Sprintf("section %d has no text", i))
		}
	}
	if _, err := s.campaigns.Get(ctx, tenant, campaignID); err != nil {
		return nil, err
	}

	existing, err := s.client.SessionDigest.Query().
		Where(sessiondigest.CampaignIDEQ(campaignID), sessiondigest.SessionNumberEQ(sessionNumber)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to check for existing digest: %w", err)
	}

	digestID := "digest_" + uuid.New().String()
	if existing != nil {
		digestID = existing.ID
		if len(existing.DigestData.VectorIDs) > 0 {
			if err := s.index.DeleteByIDs(ctx, existing.DigestData.VectorIDs); err != nil {
				s.logger.Warn("stale digest vector cleanup failed", "digest_id", digestID, "error", err)
			}
		}
	}

	vectorIDs, err := s.embedSections(ctx, tenant, campaignID, digestID, sessionNumber, input)
	if err != nil {
		return nil, err
	}

	data := models.DigestData{Sections: input.Sections, VectorIDs: vectorIDs}
	var row *ent.SessionDigest
	if existing != nil {
		update := s.client.SessionDigest.UpdateOne(existing).SetDigestData(data)
		if input.SessionDate != nil {
			update.SetSessionDate(*input.SessionDate)
		}
		row, err = update.Save(ctx)
	} else {
		create := s.client.SessionDigest.Create().
			SetID(digestID).
			SetCampaignID(campaignID).
			SetSessionNumber(sessionNumber).
			SetDigestData(data)
		if input.SessionDate != nil {
			create.SetSessionDate(*input.SessionDate)
		}
		row, err = create.Save(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to store digest: %w", err)
	}

	s.logger.Info("session digest stored",
		"campaign_id", campaignID, "session_number", sessionNumber, "sections", len(input.Sections))
	return row, nil
}

// embedSections writes one vector batch per section and returns every vector
// id written.
func (s *DigestService) embedSections(ctx context.Context, tenant, campaignID, digestID string, sessionNumber int, input UpsertDigestInput) ([]string, error) {
	var vectorIDs []string
	for _, section := range input.Sections {
		meta := map[string]any{
			"digest_id":      digestID,
			"campaign_id":    campaignID,
			"tenant":         tenant,
			"contentType":    vector.ContentTypeSessionDigest,
			"section_type":   section.SectionType,
			"session_number": float64(sessionNumber),
		}
		if input.SessionDate != nil {
			meta["session_date"] = float64(input.SessionDate.Unix())
		}
		result, err := s.embedder.EmbedAndIndex(ctx, "digest:"+digestID+":"+section.SectionType, section.Text, meta)
		if err != nil {
			return nil, fmt.Errorf("embedding digest section %s: %w", section.SectionType, err)
		}
		vectorIDs = append(vectorIDs, result.VectorIDs...)
	}
	return vectorIDs, nil
}

// Get returns one session's digest.
func (s *DigestService) Get(ctx context.Context, tenant, campaignID string, sessionNumber int) (*ent.SessionDigest, error) {
	if _, err := s.campaigns.Get(ctx, tenant, campaignID); err != nil {
		return nil, err
	}
	row, err := s.client.SessionDigest.Query().
		Where(sessiondigest.CampaignIDEQ(campaignID), sessiondigest.SessionNumberEQ(sessionNumber)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load digest: %w", err)
	}
	return row, nil
}

// List returns a campaign's digests in session order.
func (s *DigestService) List(ctx context.Context, tenant, campaignID string) ([]*ent.SessionDigest, error) {
	if _, err := s.campaigns.Get(ctx, tenant, campaignID); err != nil {
		return nil, err
	}
	return s.client.SessionDigest.Query().
		Where(sessiondigest.CampaignIDEQ(campaignID)).
		Order(ent.Asc(sessiondigest.FieldSessionNumber)).
		All(ctx)
}
