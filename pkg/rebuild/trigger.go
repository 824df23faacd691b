package rebuild

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/loresmith/loresmith/ent"
	"github.com/loresmith/loresmith/ent/queuemessage"
	"github.com/loresmith/loresmith/ent/rebuildstatus"
	"github.com/loresmith/loresmith/pkg/changelog"
	"github.com/loresmith/loresmith/pkg/config"
	"github.com/loresmith/loresmith/pkg/graph"
	"github.com/loresmith/loresmith/pkg/models"
	"github.com/loresmith/loresmith/pkg/queue"
)

// Decision is the trigger's verdict for one campaign.
type Decision struct {
	ShouldRebuild     bool
	Type              rebuildstatus.RebuildType
	CumulativeImpact  float64
	AffectedEntityIDs []string
}

// Decide weighs unapplied changelog impact against the campaign's graph size.
// Impact is the affected-entity count plus weighted relationship churn; a
// rebuild goes full when impact crosses the threshold or when the affected
// set covers more than the configured fraction of the graph.
func Decide(affected []string, relationshipChurn, nodeCount int, cfg *config.PipelineConfig) Decision {
	if len(affected) == 0 && relationshipChurn == 0 {
		return Decision{}
	}

	impact := float64(len(affected)) + cfg.RebuildRelationshipWeight*float64(relationshipChurn)
	rebuildType := rebuildstatus.RebuildTypePartial
	if impact >= float64(cfg.RebuildImpactThreshold) {
		rebuildType = rebuildstatus.RebuildTypeFull
	}
	if nodeCount > 0 && float64(len(affected)) > cfg.RebuildAffectedFraction*float64(nodeCount) {
		rebuildType = rebuildstatus.RebuildTypeFull
	}

	return Decision{
		ShouldRebuild:     true,
		Type:              rebuildType,
		CumulativeImpact:  impact,
		AffectedEntityIDs: affected,
	}
}

// Trigger is the scheduled controller that turns unapplied changelog entries
// into rebuild jobs.
type Trigger struct {
	client  *ent.Client
	changes *changelog.Store
	graph   *graph.Service
	queue   *queue.Queue
	cfg     *config.PipelineConfig
	logger  *slog.Logger
}

// NewTrigger creates a rebuild trigger.
func NewTrigger(client *ent.Client, changes *changelog.Store, graphSvc *graph.Service, q *queue.Queue, cfg *config.PipelineConfig, logger *slog.Logger) *Trigger {
	return &Trigger{
		client:  client,
		changes: changes,
		graph:   graphSvc,
		queue:   q,
		cfg:     cfg,
		logger:  logger.With("component", "rebuild_trigger"),
	}
}

// Run inspects every campaign with unapplied changelog entries and enqueues
// rebuild jobs where warranted. Returns how many rebuilds were enqueued.
func (t *Trigger) Run(ctx context.Context) (int, error) {
	campaignIDs, err := t.changes.ListCampaignsWithUnapplied(ctx)
	if err != nil {
		return 0, fmt.Errorf("listing campaigns with unapplied entries: %w", err)
	}

	enqueued := 0
	for _, campaignID := range campaignIDs {
		created, err := t.checkCampaign(ctx, campaignID)
		if err != nil {
			t.logger.Error("rebuild check failed", "campaign_id", campaignID, "error", err)
			continue
		}
		if created {
			enqueued++
		}
	}
	return enqueued, nil
}

// ForceFullAll enqueues a full rebuild for every campaign, regardless of
// changelog state. Campaigns with a rebuild already in flight are skipped.
// Used by the admin re-embed endpoint after an embedding model change.
func (t *Trigger) ForceFullAll(ctx context.Context) (int, error) {
	campaigns, err := t.client.Campaign.Query().All(ctx)
	if err != nil {
		return 0, fmt.Errorf("listing campaigns: %w", err)
	}

	enqueued := 0
	for _, campaign := range campaigns {
		inFlight, err := t.client.RebuildStatus.Query().
			Where(
				rebuildstatus.CampaignIDEQ(campaign.ID),
				rebuildstatus.StatusIn(rebuildstatus.StatusPending, rebuildstatus.StatusRunning),
			).
			Exist(ctx)
		if err != nil {
			return enqueued, fmt.Errorf("querying in-flight rebuilds for %s: %w", campaign.ID, err)
		}
		if inFlight {
			t.logger.Info("rebuild already in flight, skipping forced rebuild", "campaign_id", campaign.ID)
			continue
		}

		rebuildID := "rebuild_" + uuid.NewString()
		err = t.client.RebuildStatus.Create().
			SetID(rebuildID).
			SetCampaignID(campaign.ID).
			SetRebuildType(rebuildstatus.RebuildTypeFull).
			SetStatus(rebuildstatus.StatusPending).
			Exec(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				continue
			}
			return enqueued, fmt.Errorf("creating rebuild status for %s: %w", campaign.ID, err)
		}

		_, err = t.queue.Enqueue(ctx, queuemessage.KindGraphRebuild, campaign.Tenant, map[string]string{
			queue.PayloadCampaignID: campaign.ID,
			queue.PayloadRebuildID:  rebuildID,
		})
		if err != nil {
			return enqueued, fmt.Errorf("enqueueing forced rebuild for %s: %w", campaign.ID, err)
		}
		enqueued++
	}

	t.logger.Info("forced full rebuilds enqueued", "count", enqueued)
	return enqueued, nil
}

func (t *Trigger) checkCampaign(ctx context.Context, campaignID string) (bool, error) {
	inFlight, err := t.client.RebuildStatus.Query().
		Where(
			rebuildstatus.CampaignIDEQ(campaignID),
			rebuildstatus.StatusIn(rebuildstatus.StatusPending, rebuildstatus.StatusRunning),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("querying in-flight rebuilds: %w", err)
	}
	if inFlight {
		t.logger.Debug("rebuild already in flight, skipping", "campaign_id", campaignID)
		return false, nil
	}

	entries, err := t.changes.ListUnapplied(ctx, campaignID)
	if err != nil {
		return false, fmt.Errorf("listing unapplied entries: %w", err)
	}
	payloads := make([]models.ChangelogPayload, len(entries))
	for i, entry := range entries {
		payloads[i] = entry.Payload
	}

	nodeCount, err := t.graph.CountEntities(ctx, campaignID)
	if err != nil {
		return false, fmt.Errorf("counting entities: %w", err)
	}

	decision := Decide(changelog.AffectedEntityIDs(payloads), changelog.RelationshipChurn(payloads), nodeCount, t.cfg)
	if !decision.ShouldRebuild {
		return false, nil
	}

	campaign, err := t.client.Campaign.Get(ctx, campaignID)
	if err != nil {
		return false, fmt.Errorf("loading campaign: %w", err)
	}

	rebuildID := "rebuild_" + uuid.NewString()
	err = t.client.RebuildStatus.Create().
		SetID(rebuildID).
		SetCampaignID(campaignID).
		SetRebuildType(decision.Type).
		SetStatus(rebuildstatus.StatusPending).
		SetAffectedEntityIds(decision.AffectedEntityIDs).
		Exec(ctx)
	if err != nil {
		// The partial unique index loses this race to a concurrent trigger
		// pass; the winner's job covers the same entries.
		if ent.IsConstraintError(err) {
			t.logger.Debug("concurrent rebuild creation, skipping", "campaign_id", campaignID)
			return false, nil
		}
		return false, fmt.Errorf("creating rebuild status: %w", err)
	}

	_, err = t.queue.Enqueue(ctx, queuemessage.KindGraphRebuild, campaign.Tenant, map[string]string{
		queue.PayloadCampaignID: campaignID,
		queue.PayloadRebuildID:  rebuildID,
	})
	if err != nil {
		return false, fmt.Errorf("enqueueing rebuild job: %w", err)
	}

	t.logger.Info("rebuild enqueued",
		"campaign_id", campaignID,
		"rebuild_id", rebuildID,
		"rebuild_type", decision.Type,
		"cumulative_impact", decision.CumulativeImpact,
		"affected_entities", len(decision.AffectedEntityIDs))
	return true, nil
}
