package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/loresmith/loresmith/pkg/config"
)

// WorkerPool manages the queue workers and the orphan-redelivery loop.
type WorkerPool struct {
	podID    string
	queue    *Queue
	cfg      *config.QueueConfig
	workers  []*Worker
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	started  bool

	// drainCursor round-robins the tenant order across drain passes.
	mu          sync.Mutex
	drainCursor int
}

// NewWorkerPool creates a worker pool with the given executor registry.
func NewWorkerPool(podID string, queue *Queue, cfg *config.QueueConfig, executors Registry) *WorkerPool {
	pool := &WorkerPool{
		podID:  podID,
		queue:  queue,
		cfg:    cfg,
		stopCh: make(chan struct{}),
	}
	for i := 0; i < cfg.WorkerCount; i++ {
		workerID := fmt.Sprintf("%s-worker-%d", podID, i)
		pool.workers = append(pool.workers, NewWorker(workerID, queue, cfg, executors))
	}
	return pool
}

// Start spawns worker goroutines and the orphan-redelivery loop. Safe to call
// multiple times; subsequent calls are no-ops.
func (p *WorkerPool) Start(ctx context.Context) {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call", "pod_id", p.podID)
		return
	}
	p.started = true

	slog.Info("Starting worker pool", "pod_id", p.podID, "worker_count", len(p.workers))
	for _, worker := range p.workers {
		worker.Start(ctx)
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runOrphanRedelivery(ctx)
	}()
}

// Stop signals all workers to stop and waits for in-flight messages to
// finish.
func (p *WorkerPool) Stop() {
	slog.Info("Stopping worker pool gracefully")
	for _, worker := range p.workers {
		worker.Stop()
	}
	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()
	slog.Info("Worker pool stopped gracefully")
}

// runOrphanRedelivery periodically returns stale claims to pending. All pods
// run this independently; the update is idempotent.
func (p *WorkerPool) runOrphanRedelivery(ctx context.Context) {
	ticker := time.NewTicker(p.cfg.ClaimTimeout)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if _, err := p.queue.RequeueOrphans(ctx); err != nil {
				slog.Error("Orphan redelivery failed", "error", err)
			}
		}
	}
}

// Drain takes up to TenantBatchLimit due messages per tenant, rotating the
// tenant starting point each pass so no tenant monopolizes the batch. Used by
// the scheduled maintenance tick. Returns how many messages were processed.
func (p *WorkerPool) Drain(ctx context.Context) (int, error) {
	tenants, err := p.queue.PendingTenants(ctx)
	if err != nil {
		return 0, err
	}
	if len(tenants) == 0 {
		return 0, nil
	}
	sort.Strings(tenants)

	p.mu.Lock()
	start := p.drainCursor % len(tenants)
	p.drainCursor++
	p.mu.Unlock()

	worker := p.workers[0]
	processed := 0
	for i := 0; i < len(tenants); i++ {
		tenant := tenants[(start+i)%len(tenants)]
		msgs, err := p.queue.ClaimForTenant(ctx, worker.id, tenant, p.cfg.TenantBatchLimit)
		if err != nil {
			slog.Error("Drain claim failed", "tenant", tenant, "error", err)
			continue
		}
		for _, msg := range msgs {
			if err := worker.Process(ctx, msg); err != nil {
				slog.Error("Drain processing failed", "message_id", msg.ID, "error", err)
			}
			processed++
		}
	}
	return processed, nil
}

// PoolHealth is the pool's health snapshot.
type PoolHealth struct {
	IsHealthy     bool           `json:"is_healthy"`
	PodID         string         `json:"pod_id"`
	ActiveWorkers int            `json:"active_workers"`
	TotalWorkers  int            `json:"total_workers"`
	Queue         Stats          `json:"queue"`
	WorkerStats   []WorkerHealth `json:"worker_stats"`
	DBError       string         `json:"db_error,omitempty"`
}

// Health returns the current health status of the pool.
func (p *WorkerPool) Health(ctx context.Context) *PoolHealth {
	stats, err := p.queue.Stats(ctx)

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		workerStats[i] = worker.Health()
		if workerStats[i].Status == WorkerStatusWorking {
			activeWorkers++
		}
	}

	health := &PoolHealth{
		IsHealthy:     err == nil && len(p.workers) > 0,
		PodID:         p.podID,
		ActiveWorkers: activeWorkers,
		TotalWorkers:  len(p.workers),
		Queue:         stats,
		WorkerStats:   workerStats,
	}
	if err != nil {
		health.DBError = err.Error()
	}
	return health
}
