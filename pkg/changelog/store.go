// Package changelog is the append-only world-state log and its overlay
// reducer.
//
// Entries are written once and only ever touched again to flip
// applied_to_graph. The reducer folds a range of entries into an overlay
// snapshot so historical reads can project state at a point in time without
// mutating the graph.
package changelog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/loresmith/loresmith/ent"
	"github.com/loresmith/loresmith/ent/changelogentry"
	"github.com/loresmith/loresmith/pkg/models"
)

// Store persists and reads changelog entries.
type Store struct {
	client *ent.Client
	logger *slog.Logger
}

// NewStore creates a changelog store.
func NewStore(client *ent.Client, logger *slog.Logger) *Store {
	return &Store{client: client, logger: logger.With("component", "changelog")}
}

// Append writes one entry. sessionID may be empty for ingestion-driven
// changes.
func (s *Store) Append(ctx context.Context, campaignID, sessionID string, payload models.ChangelogPayload) (*ent.ChangelogEntry, error) {
	create := s.client.ChangelogEntry.Create().
		SetID(uuid.NewString()).
		SetCampaignID(campaignID).
		SetPayload(payload)
	if sessionID != "" {
		create = create.SetSessionID(sessionID)
	}
	entry, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("appending changelog entry for %s: %w", campaignID, err)
	}
	return entry, nil
}

// ListUnapplied returns a campaign's unapplied entries in timestamp order.
func (s *Store) ListUnapplied(ctx context.Context, campaignID string) ([]*ent.ChangelogEntry, error) {
	return s.client.ChangelogEntry.Query().
		Where(
			changelogentry.CampaignIDEQ(campaignID),
			changelogentry.AppliedToGraph(false),
		).
		Order(ent.Asc(changelogentry.FieldTimestamp), ent.Asc(changelogentry.FieldID)).
		All(ctx)
}

// ListCampaignsWithUnapplied returns the distinct campaign ids that have at
// least one unapplied entry.
func (s *Store) ListCampaignsWithUnapplied(ctx context.Context) ([]string, error) {
	var ids []string
	err := s.client.ChangelogEntry.Query().
		Where(changelogentry.AppliedToGraph(false)).
		Unique(true).
		Select(changelogentry.FieldCampaignID).
		Scan(ctx, &ids)
	if err != nil {
		return nil, fmt.Errorf("listing campaigns with unapplied entries: %w", err)
	}
	return ids, nil
}

// RangeFilter bounds ListRange. Zero values are unbounded.
type RangeFilter struct {
	FromTS    time.Time
	ToTS      time.Time
	SessionID string
}

// ListRange returns a campaign's entries within the filter, in timestamp
// order.
func (s *Store) ListRange(ctx context.Context, campaignID string, filter RangeFilter) ([]*ent.ChangelogEntry, error) {
	q := s.client.ChangelogEntry.Query().
		Where(changelogentry.CampaignIDEQ(campaignID))
	if !filter.FromTS.IsZero() {
		q = q.Where(changelogentry.TimestampGTE(filter.FromTS))
	}
	if !filter.ToTS.IsZero() {
		q = q.Where(changelogentry.TimestampLTE(filter.ToTS))
	}
	if filter.SessionID != "" {
		q = q.Where(changelogentry.SessionIDEQ(filter.SessionID))
	}
	return q.Order(ent.Asc(changelogentry.FieldTimestamp), ent.Asc(changelogentry.FieldID)).
		All(ctx)
}

// MarkApplied flips applied_to_graph for the given entries.
func (s *Store) MarkApplied(ctx context.Context, entryIDs []string) error {
	if len(entryIDs) == 0 {
		return nil
	}
	n, err := s.client.ChangelogEntry.Update().
		Where(changelogentry.IDIn(entryIDs...)).
		SetAppliedToGraph(true).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("marking %d changelog entries applied: %w", len(entryIDs), err)
	}
	s.logger.Debug("changelog entries marked applied", "count", n)
	return nil
}
