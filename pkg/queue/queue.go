package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/loresmith/loresmith/ent"
	"github.com/loresmith/loresmith/ent/queuemessage"
	"github.com/loresmith/loresmith/pkg/config"
	"github.com/loresmith/loresmith/pkg/llm"
)

// Queue is the durable message store plus the per-tenant rate-limit hold.
type Queue struct {
	client *ent.Client
	cfg    *config.QueueConfig
	logger *slog.Logger

	// holds maps tenant -> time before which its messages stay invisible to
	// this pod. Armed by rate-limit nacks, in-memory only: persistent
	// next_retry_at covers cross-pod visibility.
	mu    sync.Mutex
	holds map[string]time.Time
}

// New creates a queue over the given database client.
func New(client *ent.Client, cfg *config.QueueConfig, logger *slog.Logger) *Queue {
	return &Queue{
		client: client,
		cfg:    cfg,
		logger: logger.With("component", "queue"),
		holds:  make(map[string]time.Time),
	}
}

// Enqueue inserts a pending message. The retry ceiling depends on the kind.
func (q *Queue) Enqueue(ctx context.Context, kind queuemessage.Kind, tenant string, payload map[string]string) (*ent.QueueMessage, error) {
	msg, err := q.client.QueueMessage.Create().
		SetID(uuid.NewString()).
		SetTenant(tenant).
		SetKind(kind).
		SetPayload(payload).
		SetMaxRetries(q.maxRetries(kind)).
		SetNextRetryAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("enqueueing %s message: %w", kind, err)
	}
	q.logger.Info("message enqueued", "message_id", msg.ID, "kind", kind, "tenant", tenant)
	return msg, nil
}

func (q *Queue) maxRetries(kind queuemessage.Kind) int {
	if kind == queuemessage.KindFileProcessing {
		return q.cfg.MaxRetriesFileProcessing
	}
	return q.cfg.MaxRetriesExtraction
}

// Claim atomically takes the oldest due pending message not belonging to a
// held tenant. Returns ErrNoMessages when nothing is due.
func (q *Queue) Claim(ctx context.Context, workerID string) (*ent.QueueMessage, error) {
	held := q.heldTenants()

	tx, err := q.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("starting claim transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := tx.QueueMessage.Query().
		Where(
			queuemessage.StatusEQ(queuemessage.StatusPending),
			queuemessage.NextRetryAtLTE(time.Now()),
		)
	if len(held) > 0 {
		query = query.Where(queuemessage.TenantNotIn(held...))
	}

	msg, err := query.
		Order(ent.Asc(queuemessage.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoMessages
		}
		return nil, fmt.Errorf("querying pending messages: %w", err)
	}

	now := time.Now()
	msg, err = msg.Update().
		SetStatus(queuemessage.StatusProcessing).
		SetClaimedBy(workerID).
		SetClaimedAt(now).
		SetLastHeartbeatAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("claiming message: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing claim: %w", err)
	}
	return msg, nil
}

// Ack marks a message completed.
func (q *Queue) Ack(ctx context.Context, msg *ent.QueueMessage) error {
	err := q.client.QueueMessage.UpdateOneID(msg.ID).
		SetStatus(queuemessage.StatusCompleted).
		ClearClaimedBy().
		ClearClaimedAt().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("acking message %s: %w", msg.ID, err)
	}
	return nil
}

// Nack returns a message to pending with its retry count incremented, or
// dead-letters it when retries are exhausted. Rate-limit errors honor the
// provider's retry-after hint (with a buffer) and arm the tenant hold.
func (q *Queue) Nack(ctx context.Context, msg *ent.QueueMessage, cause error) error {
	retryCount := msg.RetryCount + 1
	if retryCount > msg.MaxRetries {
		return q.deadLetter(ctx, msg, cause)
	}

	delay := backoffDelay(q.cfg.BackoffBase, q.cfg.BackoffCap, msg.RetryCount)
	if hint, ok := llm.RetryAfterHint(cause); ok {
		buffered := hint + time.Duration(float64(hint)*q.cfg.RateLimitHintBuffer)
		if buffered > delay {
			delay = buffered
		}
	}
	nextRetry := time.Now().Add(delay)

	if llm.IsRateLimit(cause) {
		q.holdTenant(msg.Tenant, nextRetry)
	}

	err := q.client.QueueMessage.UpdateOneID(msg.ID).
		SetStatus(queuemessage.StatusPending).
		SetRetryCount(retryCount).
		SetNextRetryAt(nextRetry).
		SetLastError(truncateError(cause)).
		ClearClaimedBy().
		ClearClaimedAt().
		ClearLastHeartbeatAt().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("nacking message %s: %w", msg.ID, err)
	}
	q.logger.Warn("message nacked",
		"message_id", msg.ID, "retry_count", retryCount, "next_retry_in", delay, "error", cause)
	return nil
}

func (q *Queue) deadLetter(ctx context.Context, msg *ent.QueueMessage, cause error) error {
	now := time.Now()
	err := q.client.QueueMessage.UpdateOneID(msg.ID).
		SetStatus(queuemessage.StatusDead).
		SetLastError(truncateError(cause)).
		SetDeadLetteredAt(now).
		SetElapsedMs(now.Sub(msg.CreatedAt).Milliseconds()).
		ClearClaimedBy().
		ClearClaimedAt().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("dead-lettering message %s: %w", msg.ID, err)
	}
	q.logger.Error("message dead-lettered",
		"message_id", msg.ID, "kind", msg.Kind, "tenant", msg.Tenant,
		"retries", msg.RetryCount, "error", cause)
	return nil
}

// Heartbeat refreshes a claim.
func (q *Queue) Heartbeat(ctx context.Context, messageID string) error {
	return q.client.QueueMessage.UpdateOneID(messageID).
		SetLastHeartbeatAt(time.Now()).
		Exec(ctx)
}

// RequeueOrphans returns stale claims to pending. Run by every pod; the
// update is idempotent. Returns how many messages were redelivered.
func (q *Queue) RequeueOrphans(ctx context.Context) (int, error) {
	threshold := time.Now().Add(-q.cfg.ClaimTimeout)
	n, err := q.client.QueueMessage.Update().
		Where(
			queuemessage.StatusEQ(queuemessage.StatusProcessing),
			queuemessage.LastHeartbeatAtNotNil(),
			queuemessage.LastHeartbeatAtLT(threshold),
		).
		SetStatus(queuemessage.StatusPending).
		AddRetryCount(1).
		SetNextRetryAt(time.Now()).
		SetLastError("orphaned: claim heartbeat went stale").
		ClearClaimedBy().
		ClearClaimedAt().
		ClearLastHeartbeatAt().
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("requeueing orphans: %w", err)
	}
	if n > 0 {
		q.logger.Warn("orphaned messages redelivered", "count", n)
	}
	return n, nil
}

// PendingTenants returns distinct tenants that have due pending work, for the
// round-robin drain.
func (q *Queue) PendingTenants(ctx context.Context) ([]string, error) {
	var tenants []string
	err := q.client.QueueMessage.Query().
		Where(
			queuemessage.StatusEQ(queuemessage.StatusPending),
			queuemessage.NextRetryAtLTE(time.Now()),
		).
		Unique(true).
		Select(queuemessage.FieldTenant).
		Scan(ctx, &tenants)
	if err != nil {
		return nil, fmt.Errorf("listing pending tenants: %w", err)
	}
	return tenants, nil
}

// ClaimForTenant claims up to limit due messages for one tenant, oldest
// first. Used by the drain pass.
func (q *Queue) ClaimForTenant(ctx context.Context, workerID, tenant string, limit int) ([]*ent.QueueMessage, error) {
	var claimed []*ent.QueueMessage
	for len(claimed) < limit {
		msg, err := q.claimOneForTenant(ctx, workerID, tenant)
		if err != nil {
			if err == ErrNoMessages {
				break
			}
			return claimed, err
		}
		claimed = append(claimed, msg)
	}
	return claimed, nil
}

func (q *Queue) claimOneForTenant(ctx context.Context, workerID, tenant string) (*ent.QueueMessage, error) {
	if q.isHeld(tenant) {
		return nil, ErrNoMessages
	}

	tx, err := q.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("starting claim transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	msg, err := tx.QueueMessage.Query().
		Where(
			queuemessage.StatusEQ(queuemessage.StatusPending),
			queuemessage.TenantEQ(tenant),
			queuemessage.NextRetryAtLTE(time.Now()),
		).
		Order(ent.Asc(queuemessage.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoMessages
		}
		return nil, fmt.Errorf("querying pending messages for %s: %w", tenant, err)
	}

	now := time.Now()
	msg, err = msg.Update().
		SetStatus(queuemessage.StatusProcessing).
		SetClaimedBy(workerID).
		SetClaimedAt(now).
		SetLastHeartbeatAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("claiming message: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing claim: %w", err)
	}
	return msg, nil
}

// Stats returns queue depth counts.
func (q *Queue) Stats(ctx context.Context) (Stats, error) {
	var stats Stats
	var err error
	if stats.Pending, err = q.countStatus(ctx, queuemessage.StatusPending); err != nil {
		return stats, err
	}
	if stats.Processing, err = q.countStatus(ctx, queuemessage.StatusProcessing); err != nil {
		return stats, err
	}
	if stats.Dead, err = q.countStatus(ctx, queuemessage.StatusDead); err != nil {
		return stats, err
	}
	return stats, nil
}

func (q *Queue) countStatus(ctx context.Context, status queuemessage.Status) (int, error) {
	n, err := q.client.QueueMessage.Query().
		Where(queuemessage.StatusEQ(status)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("counting %s messages: %w", status, err)
	}
	return n, nil
}

// holdTenant arms the in-memory rate-limit hold.
func (q *Queue) holdTenant(tenant string, until time.Time) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if existing, ok := q.holds[tenant]; !ok || until.After(existing) {
		q.holds[tenant] = until
		q.logger.Warn("tenant rate-limit hold armed", "tenant", tenant, "until", until)
	}
}

func (q *Queue) isHeld(tenant string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	until, ok := q.holds[tenant]
	if !ok {
		return false
	}
	if time.Now().After(until) {
		delete(q.holds, tenant)
		return false
	}
	return true
}

func (q *Queue) heldTenants() []string {
	q.mu.Lock()
	defer q.mu.Unlock()
	now := time.Now()
	var held []string
	for tenant, until := range q.holds {
		if now.After(until) {
			delete(q.holds, tenant)
			continue
		}
		held = append(held, tenant)
	}
	return held
}

func backoffDelay(base, limit time.Duration, retryCount int) time.Duration {
	d := base << retryCount
	if d > limit || d <= 0 {
		return limit
	}
	return d
}

// truncateError bounds stored error text.
func truncateError(err error) string {
	if err == nil {
		return ""
	}
	s := err.Error()
	if len(s) > 2000 {
		s = s[:2000]
	}
	return s
}
