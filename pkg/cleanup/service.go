// Package cleanup runs the scheduled maintenance sweeps.
package cleanup

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/loresmith/loresmith/ent"
	"github.com/loresmith/loresmith/ent/file"
	"github.com/loresmith/loresmith/ent/notification"
	"github.com/loresmith/loresmith/pkg/blob"
	"github.com/loresmith/loresmith/pkg/config"
	"github.com/loresmith/loresmith/pkg/services"
)

// Drainer processes due queue messages outside the regular worker claim loop.
type Drainer interface {
	Drain(ctx context.Context) (int, error)
}

// RebuildTrigger inspects the changelog and enqueues rebuild jobs.
type RebuildTrigger interface {
	Run(ctx context.Context) (int, error)
}

// Service periodically enforces the maintenance policies:
//   - Times out files stuck in a non-terminal status
//   - Garbage-collects leftover staging blobs
//   - Drains due queue messages the workers have not picked up
//   - Runs the rebuild trigger over unapplied changelog entries
//   - Deletes read notifications past their TTL
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config        *config.RetentionConfig
	client        *ent.Client
	blobs         blob.Store
	drainer       Drainer
	trigger       RebuildTrigger
	notifications *services.NotificationService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(
	cfg *config.RetentionConfig,
	client *ent.Client,
	blobs blob.Store,
	drainer Drainer,
	trigger RebuildTrigger,
	notifications *services.NotificationService,
) *Service {
	return &Service{
		config:        cfg,
		client:        client,
		blobs:         blobs,
		drainer:       drainer,
		trigger:       trigger,
		notifications: notifications,
	}
}

// Start launches the background maintenance loops.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"sweep_interval", s.config.SweepInterval,
		"rebuild_check_interval", s.config.RebuildCheckInterval,
		"stuck_file_timeout", s.config.StuckFileTimeout)
}

// Stop signals the maintenance loops to exit and waits for them to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runSweeps(ctx)

	sweep := time.NewTicker(s.config.SweepInterval)
	defer sweep.Stop()
	rebuildCheck := time.NewTicker(s.config.RebuildCheckInterval)
	defer rebuildCheck.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-sweep.C:
			s.runSweeps(ctx)
		case <-rebuildCheck.C:
			s.runRebuildCheck(ctx)
		}
	}
}

func (s *Service) runSweeps(ctx context.Context) {
	s.timeoutStuckFiles(ctx)
	s.collectStagingBlobs(ctx)
	s.drainQueue(ctx)
	s.expireNotifications(ctx)
}

func (s *Service) runRebuildCheck(ctx context.Context) {
	count, err := s.trigger.Run(ctx)
	if err != nil {
		slog.Error("Maintenance: rebuild check failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Maintenance: rebuilds enqueued", "count", count)
	}
}

// timeoutStuckFiles promotes files with no progress past the timeout to the
// timeout status so the user can re-upload.
func (s *Service) timeoutStuckFiles(ctx context.Context) {
	cutoff := time.Now().Add(-s.config.StuckFileTimeout)
	stuck, err := s.client.File.Query().
		Where(
			file.StatusIn(file.StatusUploaded, file.StatusProcessing, file.StatusChunked, file.StatusIndexing),
			file.UpdatedAtLT(cutoff),
		).
		All(ctx)
	if err != nil {
		slog.Error("Maintenance: stuck-file query failed", "error", err)
		return
	}

	for _, f := range stuck {
		err := s.client.File.UpdateOne(f).
			SetStatus(file.StatusTimeout).
			SetErrorMessage(fmt.Sprintf("processing made no progress for %s", s.config.StuckFileTimeout)).
			Exec(ctx)
		if err != nil {
			slog.Error("Maintenance: stuck-file timeout failed", "file_key", f.ID, "error", err)
			continue
		}
		s.notifications.NotifyBestEffort(ctx, services.NotifyInput{
			Tenant:    f.Tenant,
			Kind:      notification.KindFileStatusUpdated,
			SubjectID: f.ID,
			Message:   fmt.Sprintf("%s timed out during processing; please upload it again", f.FileName),
			Metadata:  map[string]string{"file_key": f.ID},
		})
		slog.Info("Maintenance: file timed out", "file_key", f.ID, "previous_status", f.Status)
	}
}

// collectStagingBlobs deletes staging objects past the GC age whose file is
// finished with them. Blobs of files still in flight are left alone.
func (s *Service) collectStagingBlobs(ctx context.Context) {
	cutoff := time.Now().Add(-s.config.StagingObjectMaxAge)
	objects, err := s.blobs.List(ctx, "staging/")
	if err != nil {
		slog.Error("Maintenance: staging list failed", "error", err)
		return
	}

	removed := 0
	for _, obj := range objects {
		if obj.LastModified.After(cutoff) {
			continue
		}
		f, err := s.client.File.Get(ctx, obj.Key)
		if err != nil && !ent.IsNotFound(err) {
			slog.Error("Maintenance: staging GC lookup failed", "key", obj.Key, "error", err)
			continue
		}
		if f != nil && f.Status != file.StatusCompleted && f.Status != file.StatusError && f.Status != file.StatusTimeout {
			continue
		}
		if err := s.blobs.Delete(ctx, obj.Key); err != nil {
			slog.Error("Maintenance: staging GC delete failed", "key", obj.Key, "error", err)
			continue
		}
		removed++
	}
	if removed > 0 {
		slog.Info("Maintenance: collected staging blobs", "count", removed)
	}
}

func (s *Service) drainQueue(ctx context.Context) {
	count, err := s.drainer.Drain(ctx)
	if err != nil {
		slog.Error("Maintenance: queue drain failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Maintenance: drained queue messages", "count", count)
	}
}

// expireNotifications deletes read notifications past the TTL. Unread rows
// are kept regardless of age.
func (s *Service) expireNotifications(ctx context.Context) {
	cutoff := time.Now().Add(-s.config.NotificationTTL)
	count, err := s.client.Notification.Delete().
		Where(
			notification.ReadEQ(true),
			notification.CreatedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		slog.Error("Maintenance: notification cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Maintenance: expired notifications", "count", count)
	}
}
