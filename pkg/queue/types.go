// Package queue is the durable ingestion queue and its worker pool.
//
// Messages live in Postgres; workers claim them with FOR UPDATE SKIP LOCKED,
// heartbeat while processing, and either ack (completed), nack (pending again
// after backoff), or dead-letter once retries are exhausted. A per-tenant
// rate-limit hold keeps one tenant's 429s from hammering the provider.
package queue

import (
	"context"
	"errors"

	"github.com/loresmith/loresmith/ent"
	"github.com/loresmith/loresmith/ent/queuemessage"
)

// ErrNoMessages is returned by a claim attempt when nothing is due.
var ErrNoMessages = errors.New("no messages available")

// Payload keys shared by enqueuers and executors.
const (
	PayloadFileKey    = "file_key"
	PayloadCampaignID = "campaign_id"
	PayloadChunkID    = "chunk_id"
	PayloadRebuildID  = "rebuild_id"
	PayloadSourceName = "source_name"
)

// Executor processes one claimed message. Returning nil acks the message;
// returning an error nacks it (rate-limit errors additionally arm the tenant
// hold).
type Executor interface {
	Execute(ctx context.Context, msg *ent.QueueMessage) error
}

// ExecutorFunc adapts a function to the Executor interface.
type ExecutorFunc func(ctx context.Context, msg *ent.QueueMessage) error

// Execute implements Executor.
func (f ExecutorFunc) Execute(ctx context.Context, msg *ent.QueueMessage) error {
	return f(ctx, msg)
}

// Registry maps message kinds to their executors.
type Registry map[queuemessage.Kind]Executor

// WorkerStatus is a worker's current state.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Stats summarizes queue depth for health reporting.
type Stats struct {
	Pending    int `json:"pending"`
	Processing int `json:"processing"`
	Dead       int `json:"dead"`
}
