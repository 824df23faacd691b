package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/loresmith/loresmith/ent"
	"github.com/loresmith/loresmith/ent/notification"
	"github.com/loresmith/loresmith/pkg/queue"
	"github.com/loresmith/loresmith/pkg/staging"
)

// ExtractionExecutor runs entity_extraction queue messages: one linked
// resource staged into one campaign's graph.
type ExtractionExecutor struct {
	staging       *staging.Service
	notifications *NotificationService
	logger        *slog.Logger
}

// NewExtractionExecutor creates the entity_extraction executor.
func NewExtractionExecutor(stagingSvc *staging.Service, notifications *NotificationService, logger *slog.Logger) *ExtractionExecutor {
	return &ExtractionExecutor{
		staging:       stagingSvc,
		notifications: notifications,
		logger:        logger.With("component", "extraction_executor"),
	}
}

// Execute implements queue.Executor for entity_extraction messages.
func (e *ExtractionExecutor) Execute(ctx context.Context, msg *ent.QueueMessage) error {
	campaignID := msg.Payload[queue.PayloadCampaignID]
	fileKey := msg.Payload[queue.PayloadFileKey]
	sourceName := msg.Payload[queue.PayloadSourceName]
	if campaignID == "" || fileKey == "" {
		return fmt.Errorf("entity_extraction message %s missing campaign_id or file_key", msg.ID)
	}
	if sourceName == "" {
		sourceName = fileKey
	}

	result, err := e.staging.Run(ctx, campaignID, msg.Tenant, fileKey, sourceName)
	if err != nil {
		return fmt.Errorf("staging %s into %s: %w", fileKey, campaignID, err)
	}

	message := fmt.Sprintf("%d entities staged from %s", result.EntityCount, sourceName)
	if result.Warning != "" {
		message = result.Warning
	}
	e.notifications.NotifyBestEffort(ctx, NotifyInput{
		Tenant:    msg.Tenant,
		Kind:      notification.KindShardGeneration,
		SubjectID: campaignID,
		Message:   message,
		Metadata: map[string]string{
			"file_key":    fileKey,
			"campaign_id": campaignID,
		},
	})

	if !result.Success {
		return fmt.Errorf("entity extraction produced nothing usable for %s: %s", fileKey, result.Warning)
	}

	e.logger.Info("entity extraction complete",
		"campaign_id", campaignID,
		"file_key", fileKey,
		"entities", result.EntityCount,
		"chunks_ok", result.SuccessfulChunks,
		"chunks_failed", len(result.FailedChunks))
	return nil
}
