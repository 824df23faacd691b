package chunks

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/loresmith/loresmith/ent"
	"github.com/loresmith/loresmith/ent/fileprocessingchunk"
)

// Store persists chunk plans and tracks per-chunk progress.
type Store struct {
	client *ent.Client
	logger *slog.Logger
}

// NewStore creates a chunk store.
func NewStore(client *ent.Client, logger *slog.Logger) *Store {
	return &Store{client: client, logger: logger.With("component", "chunks")}
}

// CreateChunks persists a plan for fileKey. If chunk rows already exist for
// the file, the existing rows are returned unchanged, so a retried planning
// message never duplicates work.
func (s *Store) CreateChunks(ctx context.Context, fileKey, tenant string, plan Plan) ([]*ent.FileProcessingChunk, error) {
	existing, err := s.ListByFile(ctx, fileKey)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		s.logger.Info("chunk plan already exists, reusing",
			"file_key", fileKey, "chunks", len(existing))
		return existing, nil
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	total := len(plan.Ranges)
	created := make([]*ent.FileProcessingChunk, 0, total)
	for _, r := range plan.Ranges {
		builder := tx.FileProcessingChunk.Create().
			SetID(ChunkID(fileKey, r.Index)).
			SetFileKey(fileKey).
			SetTenant(tenant).
			SetChunkIndex(r.Index).
			SetTotalChunks(total)
		switch plan.Strategy {
		case StrategyPages:
			builder = builder.SetPageStart(r.PageStart).SetPageEnd(r.PageEnd)
		case StrategyBytes:
			builder = builder.SetByteStart(r.ByteStart).SetByteEnd(r.ByteEnd)
		}
		chunk, err := builder.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("creating chunk %d for %s: %w", r.Index, fileKey, err)
		}
		created = append(created, chunk)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing chunk plan: %w", err)
	}
	s.logger.Info("chunk plan created",
		"file_key", fileKey, "strategy", string(plan.Strategy), "chunks", total)
	return created, nil
}

// ListByFile returns all chunks of a file ordered by chunk index.
func (s *Store) ListByFile(ctx context.Context, fileKey string) ([]*ent.FileProcessingChunk, error) {
	rows, err := s.client.FileProcessingChunk.Query().
		Where(fileprocessingchunk.FileKeyEQ(fileKey)).
		Order(ent.Asc(fileprocessingchunk.FieldChunkIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing chunks for %s: %w", fileKey, err)
	}
	return rows, nil
}

// Get returns one chunk by id.
func (s *Store) Get(ctx context.Context, chunkID string) (*ent.FileProcessingChunk, error) {
	chunk, err := s.client.FileProcessingChunk.Get(ctx, chunkID)
	if err != nil {
		return nil, fmt.Errorf("loading chunk %s: %w", chunkID, err)
	}
	return chunk, nil
}

// MarkProcessing transitions a chunk to processing.
func (s *Store) MarkProcessing(ctx context.Context, chunkID string) error {
	return s.setStatus(ctx, chunkID, fileprocessingchunk.StatusProcessing, nil, nil)
}

// MarkCompleted records success and the vector written for the chunk.
func (s *Store) MarkCompleted(ctx context.Context, chunkID, vectorID string) error {
	return s.setStatus(ctx, chunkID, fileprocessingchunk.StatusCompleted, &vectorID, nil)
}

// MarkFailed records a failure and bumps the retry counter.
func (s *Store) MarkFailed(ctx context.Context, chunkID, errorMessage string) error {
	err := s.client.FileProcessingChunk.UpdateOneID(chunkID).
		SetStatus(fileprocessingchunk.StatusFailed).
		SetErrorMessage(errorMessage).
		AddRetryCount(1).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("marking chunk %s failed: %w", chunkID, err)
	}
	return nil
}

func (s *Store) setStatus(ctx context.Context, chunkID string, status fileprocessingchunk.Status, vectorID, errorMessage *string) error {
	update := s.client.FileProcessingChunk.UpdateOneID(chunkID).SetStatus(status)
	if vectorID != nil {
		update = update.SetVectorID(*vectorID)
	}
	if errorMessage != nil {
		update = update.SetErrorMessage(*errorMessage)
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("updating chunk %s to %s: %w", chunkID, status, err)
	}
	return nil
}

// Progress summarizes chunk completion for a file.
type Progress struct {
	Total     int
	Completed int
	Failed    int
	Pending   int
}

// Done reports whether every chunk reached a terminal status.
func (p Progress) Done() bool {
	return p.Total > 0 && p.Completed+p.Failed == p.Total
}

// AllSucceeded reports whether the whole file can be marked completed.
func (p Progress) AllSucceeded() bool {
	return p.Total > 0 && p.Completed == p.Total
}

// MergeStatus aggregates chunk statuses for a file. The file is completed only
// when every chunk succeeded; any failed chunk fails the file once all chunks
// are terminal.
func (s *Store) MergeStatus(ctx context.Context, fileKey string) (Progress, error) {
	rows, err := s.ListByFile(ctx, fileKey)
	if err != nil {
		return Progress{}, err
	}
	p := Progress{Total: len(rows)}
	for _, chunk := range rows {
		switch chunk.Status {
		case fileprocessingchunk.StatusCompleted:
			p.Completed++
		case fileprocessingchunk.StatusFailed:
			p.Failed++
		default:
			p.Pending++
		}
	}
	return p, nil
}
