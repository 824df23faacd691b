package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/loresmith/loresmith/ent"
	"github.com/loresmith/loresmith/pkg/config"
)

// Worker is a single queue worker that polls for and processes messages.
type Worker struct {
	id        string
	queue     *Queue
	cfg       *config.QueueConfig
	executors Registry
	stopCh    chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup

	// Health tracking
	mu                sync.RWMutex
	status            WorkerStatus
	currentMessageID  string
	messagesProcessed int
	lastActivity      time.Time
}

// NewWorker creates a queue worker.
func NewWorker(id string, queue *Queue, cfg *config.QueueConfig, executors Registry) *Worker {
	return &Worker{
		id:           id,
		queue:        queue,
		cfg:          cfg,
		executors:    executors,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish. Safe to call
// multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// WorkerHealth is one worker's health snapshot.
type WorkerHealth struct {
	ID                string       `json:"id"`
	Status            WorkerStatus `json:"status"`
	CurrentMessageID  string       `json:"current_message_id,omitempty"`
	MessagesProcessed int          `json:"messages_processed"`
	LastActivity      time.Time    `json:"last_activity"`
}

// Health returns the current worker health snapshot.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:                w.id,
		Status:            w.status,
		CurrentMessageID:  w.currentMessageID,
		MessagesProcessed: w.messagesProcessed,
		LastActivity:      w.lastActivity,
	}
}

func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoMessages) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing message", "error", err)
				w.sleep(time.Second)
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess claims one message and runs it through its executor.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	msg, err := w.queue.Claim(ctx, w.id)
	if err != nil {
		return err
	}
	return w.Process(ctx, msg)
}

// Process executes one already-claimed message: heartbeat, deadline, and
// terminal ack/nack. Also used by the drain pass for pre-claimed batches.
func (w *Worker) Process(ctx context.Context, msg *ent.QueueMessage) error {
	log := slog.With("message_id", msg.ID, "kind", msg.Kind, "worker_id", w.id)
	log.Info("Message claimed")

	w.setStatus(WorkerStatusWorking, msg.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	executor, ok := w.executors[msg.Kind]
	if !ok {
		// No executor registered: permanent failure, don't burn retries.
		return w.queue.deadLetter(context.WithoutCancel(ctx), msg, fmt.Errorf("no executor for kind %s", msg.Kind))
	}

	msgCtx, cancel := context.WithTimeout(ctx, w.cfg.MessageTimeout)
	defer cancel()

	heartbeatCtx, stopHeartbeat := context.WithCancel(msgCtx)
	defer stopHeartbeat()
	go w.runHeartbeat(heartbeatCtx, msg.ID)

	err := executor.Execute(msgCtx, msg)
	stopHeartbeat()

	// Terminal updates use a fresh context; msgCtx may already be dead.
	finishCtx := context.WithoutCancel(ctx)
	if err != nil {
		if errors.Is(msgCtx.Err(), context.DeadlineExceeded) {
			err = fmt.Errorf("message timed out after %v: %w", w.cfg.MessageTimeout, err)
		}
		if nackErr := w.queue.Nack(finishCtx, msg, err); nackErr != nil {
			return nackErr
		}
		log.Warn("Message processing failed", "error", err)
	} else {
		if ackErr := w.queue.Ack(finishCtx, msg); ackErr != nil {
			return ackErr
		}
		log.Info("Message processing complete")
	}

	w.mu.Lock()
	w.messagesProcessed++
	w.mu.Unlock()
	return nil
}

// runHeartbeat periodically refreshes the claim for orphan detection.
func (w *Worker) runHeartbeat(ctx context.Context, messageID string) {
	ticker := time.NewTicker(w.cfg.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.queue.Heartbeat(ctx, messageID); err != nil {
				slog.Warn("Heartbeat update failed", "message_id", messageID, "error", err)
			}
		}
	}
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.cfg.PollInterval
	jitter := w.cfg.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

func (w *Worker) setStatus(status WorkerStatus, messageID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentMessageID = messageID
	w.lastActivity = time.Now()
}
