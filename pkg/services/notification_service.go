package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/loresmith/loresmith/ent"
	"github.com/loresmith/loresmith/ent/notification"
)

// NotifyInput is one user-addressed event.
type NotifyInput struct {
	Tenant    string
	Kind      notification.Kind
	SubjectID string
	Message   string
	Metadata  map[string]string
}

// NotificationService persists user-addressed event rows. Notification
// failures never abort the operation that produced them; callers log and
// continue.
type NotificationService struct {
	client *ent.Client
	logger *slog.Logger
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(client *ent.Client, logger *slog.Logger) *NotificationService {
	if client == nil {
		panic("NewNotificationService: client must not be nil")
	}
	return &NotificationService{
		client: client,
		logger: logger.With("component", "notifications"),
	}
}

// Notify stores one event row.
func (s *NotificationService) Notify(ctx context.Context, input NotifyInput) (*ent.Notification, error) {
	if input.Tenant == "" {
		return nil, NewValidationError("tenant", "tenant is required")
	}
	if input.Message == "" {
		return nil, NewValidationError("message", "message is required")
	}

	builder := s.client.Notification.Create().
		SetID(uuid.New().String()).
		SetTenant(input.Tenant).
		SetKind(input.Kind).
		SetSubjectID(input.SubjectID).
		SetMessage(input.Message)
	if input.Metadata != nil {
		builder.SetMetadata(input.Metadata)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}
	return row, nil
}

// NotifyBestEffort stores an event row and only logs on failure.
func (s *NotificationService) NotifyBestEffort(ctx context.Context, input NotifyInput) {
	if _, err := s.Notify(ctx, input); err != nil {
		s.logger.Warn("notification write failed",
			"tenant", input.Tenant, "kind", input.Kind, "subject_id", input.SubjectID, "error", err)
	}
}

// List returns a tenant's notifications, newest first.
func (s *NotificationService) List(ctx context.Context, tenant string, unreadOnly bool, limit int) ([]*ent.Notification, error) {
	if limit <= 0 {
		limit = 50
	}
	q := s.client.Notification.Query().
		Where(notification.TenantEQ(tenant))
	if unreadOnly {
		q = q.Where(notification.ReadEQ(false))
	}
	return q.
		Order(ent.Desc(notification.FieldCreatedAt), ent.Asc(notification.FieldID)).
		Limit(limit).
		All(ctx)
}

// MarkRead flags one notification as read. Cross-tenant ids report not found.
func (s *NotificationService) MarkRead(ctx context.Context, tenant, notificationID string) error {
	n, err := s.client.Notification.Query().
		Where(notification.IDEQ(notificationID), notification.TenantEQ(tenant)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load notification: %w", err)
	}
	return s.client.Notification.UpdateOne(n).SetRead(true).Exec(ctx)
}

// RebuildFinished implements the rebuild processor's notifier hook.
func (s *NotificationService) RebuildFinished(ctx context.Context, tenant, campaignID, rebuildID string, succeeded bool) {
	message := "Knowledge graph rebuild finished"
	if !succeeded {
		message = "Knowledge graph rebuild failed; it will be retried automatically"
	}
	s.NotifyBestEffort(ctx, NotifyInput{
		Tenant:    tenant,
		Kind:      notification.KindRebuildComplete,
		SubjectID: campaignID,
		Message:   message,
		Metadata: map[string]string{
			"campaign_id": campaignID,
			"rebuild_id":  rebuildID,
		},
	})
}
