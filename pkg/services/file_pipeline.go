package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/loresmith/loresmith/ent"
	"github.com/loresmith/loresmith/ent/file"
	"github.com/loresmith/loresmith/ent/fileprocessingchunk"
	"github.com/loresmith/loresmith/ent/notification"
	"github.com/loresmith/loresmith/pkg/blob"
	"github.com/loresmith/loresmith/pkg/chunks"
	"github.com/loresmith/loresmith/pkg/config"
	"github.com/loresmith/loresmith/pkg/embedding"
	"github.com/loresmith/loresmith/pkg/extract"
	"github.com/loresmith/loresmith/pkg/llm"
	"github.com/loresmith/loresmith/pkg/queue"
	"github.com/loresmith/loresmith/pkg/vector"
)

// FilePipeline executes file_processing queue messages: extraction, chunk
// planning for oversized files, embedding, and promotion from staging to
// library storage.
type FilePipeline struct {
	client        *ent.Client
	blobs         blob.Store
	chunks        *chunks.Store
	extractor     *extract.Extractor
	embedder      *embedding.Service
	notifications *NotificationService
	cfg           config.PipelineConfig
	logger        *slog.Logger
}

// NewFilePipeline creates the file_processing executor.
func NewFilePipeline(
	client *ent.Client,
	blobs blob.Store,
	chunkStore *chunks.Store,
	extractor *extract.Extractor,
	embedder *embedding.Service,
	notifications *NotificationService,
	cfg config.PipelineConfig,
	logger *slog.Logger,
) *FilePipeline {
	return &FilePipeline{
		client:        client,
		blobs:         blobs,
		chunks:        chunkStore,
		extractor:     extractor,
		embedder:      embedder,
		notifications: notifications,
		cfg:           cfg,
		logger:        logger.With("component", "file_pipeline"),
	}
}

// Execute implements queue.Executor for file_processing messages.
func (p *FilePipeline) Execute(ctx context.Context, msg *ent.QueueMessage) error {
	fileKey := msg.Payload[queue.PayloadFileKey]
	if fileKey == "" {
		return fmt.Errorf("file_processing message %s missing file_key", msg.ID)
	}

	f, err := p.client.File.Get(ctx, fileKey)
	if err != nil {
		return fmt.Errorf("loading file %s: %w", fileKey, err)
	}
	if f.Status == file.StatusCompleted {
		p.logger.Info("file already completed, skipping redelivery", "file_key", fileKey)
		return nil
	}

	log := p.logger.With("file_key", fileKey, "tenant", f.Tenant)

	data, err := p.blobs.Get(ctx, fileKey)
	if err != nil {
		if errors.Is(err, blob.ErrNotFound) {
			// Non-retryable: the staging object is gone.
			p.failFile(ctx, f, "uploaded file is no longer available; please upload again")
			return nil
		}
		return fmt.Errorf("reading staging blob %s: %w", fileKey, err)
	}

	if err := p.setStatus(ctx, f, file.StatusProcessing, ""); err != nil {
		return err
	}

	// A prior attempt may already have planned chunks; never re-plan.
	existing, err := p.chunks.ListByFile(ctx, fileKey)
	if err != nil {
		return fmt.Errorf("listing chunks for %s: %w", fileKey, err)
	}
	if len(existing) > 0 {
		return p.processChunked(ctx, f, data, existing, log)
	}

	if chunks.NeedsChunking(f.ContentType, f.Size, p.cfg) {
		return p.planAndProcess(ctx, f, data, log)
	}

	text, err := p.extractor.Extract(ctx, data, f.ContentType, extract.Options{
		MemoryLimitMB: p.cfg.NonPDFChunkThresholdMB,
	})
	switch {
	case extract.IsMemoryLimit(err):
		// The size check passed but extraction still blew the budget; switch
		// strategy to chunked processing.
		log.Warn("single-pass extraction hit the memory budget, chunking", "error", err)
		return p.planAndProcess(ctx, f, data, log)
	case extract.IsNotImplemented(err):
		p.failFile(ctx, f, fmt.Sprintf("content type %s is not supported", f.ContentType))
		return nil
	case err != nil:
		return fmt.Errorf("extracting %s: %w", fileKey, err)
	}

	if err := p.setStatus(ctx, f, file.StatusIndexing, ""); err != nil {
		return err
	}
	if text != "" {
		if err := p.embedText(ctx, f, "file:"+fileKey, text, 0); err != nil {
			return err
		}
	}

	if err := p.promote(ctx, f, data, nil); err != nil {
		return err
	}
	return p.complete(ctx, f, log)
}

// planAndProcess creates the chunk records for an oversized file and runs
// them.
func (p *FilePipeline) planAndProcess(ctx context.Context, f *ent.File, data []byte, log *slog.Logger) error {
	pageCount := 0
	if f.ContentType == extract.ContentTypePDF {
		if n, err := extract.PDFPageCount(data); err == nil {
			pageCount = n
		} else {
			log.Warn("page count unavailable, estimating from size", "error", err)
		}
	}

	plan := chunks.PlanRanges(f.ContentType, f.Size, pageCount, p.cfg)
	rows, err := p.chunks.CreateChunks(ctx, f.ID, f.Tenant, plan)
	if err != nil {
		return fmt.Errorf("creating chunks for %s: %w", f.ID, err)
	}
	if err := p.setStatus(ctx, f, file.StatusChunked, ""); err != nil {
		return err
	}
	log.Info("file chunked", "strategy", plan.Strategy, "chunks", len(rows))
	return p.processChunked(ctx, f, data, rows, log)
}

// processChunked runs every non-terminal chunk in index order, then merges.
// Chunks left in processing by an interrupted attempt are re-run.
func (p *FilePipeline) processChunked(ctx context.Context, f *ent.File, data []byte, rows []*ent.FileProcessingChunk, log *slog.Logger) error {
	if err := p.setStatus(ctx, f, file.StatusIndexing, ""); err != nil {
		return err
	}
	for _, chunk := range rows {
		if chunk.Status == fileprocessingchunk.StatusCompleted || chunk.Status == fileprocessingchunk.StatusFailed {
			continue
		}
		if err := p.processChunk(ctx, f, data, chunk); err != nil {
			// Rate limits go back to the queue so the whole tenant backs off;
			// anything else is a per-chunk failure and the file continues.
			if llm.IsRateLimit(err) {
				return err
			}
			log.Warn("chunk processing failed", "chunk_id", chunk.ID, "error", err)
			if markErr := p.chunks.MarkFailed(ctx, chunk.ID, err.Error()); markErr != nil {
				return markErr
			}
		}
	}

	progress, err := p.chunks.MergeStatus(ctx, f.ID)
	if err != nil {
		return fmt.Errorf("merging chunk status for %s: %w", f.ID, err)
	}
	if !progress.Done() {
		return fmt.Errorf("file %s has %d chunks still pending", f.ID, progress.Pending)
	}

	if !progress.AllSucceeded() {
		p.failFile(ctx, f, fmt.Sprintf("%d of %d chunks failed during processing", progress.Failed, progress.Total))
		return nil
	}

	if err := p.promote(ctx, f, data, rows); err != nil {
		return err
	}
	return p.complete(ctx, f, log)
}

func (p *FilePipeline) processChunk(ctx context.Context, f *ent.File, data []byte, chunk *ent.FileProcessingChunk) error {
	if err := p.chunks.MarkProcessing(ctx, chunk.ID); err != nil {
		return err
	}

	opts := extract.Options{MemoryLimitMB: p.cfg.NonPDFChunkThresholdMB}
	slice := data
	if chunk.PageStart != nil {
		opts.PageStart = *chunk.PageStart
		opts.PageEnd = *chunk.PageEnd
	} else if chunk.ByteStart != nil {
		start, end := *chunk.ByteStart, *chunk.ByteEnd
		if end > int64(len(data)) {
			end = int64(len(data))
		}
		if start > end {
			start = end
		}
		slice = data[start:end]
	}

	text, err := p.extractor.Extract(ctx, slice, f.ContentType, opts)
	if err != nil {
		return fmt.Errorf("extracting chunk %d: %w", chunk.ChunkIndex, err)
	}

	vectorID := ""
	if text != "" {
		result, err := p.embedder.EmbedAndIndex(ctx, "chunk:"+chunk.ID, text, map[string]any{
			"file_key":    f.ID,
			"file_name":   f.FileName,
			"tenant":      f.Tenant,
			"contentType": vector.ContentTypeFileChunk,
			"chunk_index": float64(chunk.ChunkIndex),
		})
		if err != nil {
			return err
		}
		if len(result.VectorIDs) > 0 {
			vectorID = result.VectorIDs[0]
		}
	}
	return p.chunks.MarkCompleted(ctx, chunk.ID, vectorID)
}

// embedText writes the whole-file embedding used by extraction providers.
func (p *FilePipeline) embedText(ctx context.Context, f *ent.File, sourceID, text string, chunkIndex int) error {
	_, err := p.embedder.EmbedAndIndex(ctx, sourceID, text, map[string]any{
		"file_key":    f.ID,
		"file_name":   f.FileName,
		"tenant":      f.Tenant,
		"contentType": vector.ContentTypeFileChunk,
		"chunk_index": float64(chunkIndex),
	})
	if err != nil {
		return fmt.Errorf("embedding %s: %w", f.ID, err)
	}
	return nil
}

// manifest is the shard listing written next to promoted split files.
type manifest struct {
	FileKey     string          `json:"file_key"`
	FileName    string          `json:"file_name"`
	ContentType string          `json:"content_type"`
	TotalChunks int             `json:"total_chunks"`
	Shards      []manifestShard `json:"shards"`
}

type manifestShard struct {
	Index     int    `json:"index"`
	PageStart *int   `json:"page_start,omitempty"`
	PageEnd   *int   `json:"page_end,omitempty"`
	ByteStart *int64 `json:"byte_start,omitempty"`
	ByteEnd   *int64 `json:"byte_end,omitempty"`
	VectorID  string `json:"vector_id,omitempty"`
}

// promote copies the object from staging to library storage and deletes the
// staging copy best-effort. Split files also get a manifest.
func (p *FilePipeline) promote(ctx context.Context, f *ent.File, data []byte, rows []*ent.FileProcessingChunk) error {
	libraryKey := blob.LibraryKey(f.Tenant, f.FileName)
	if err := p.blobs.Put(ctx, libraryKey, data, f.ContentType); err != nil {
		return fmt.Errorf("promoting %s to library: %w", f.ID, err)
	}

	if len(rows) > 0 {
		m := manifest{
			FileKey:     f.ID,
			FileName:    f.FileName,
			ContentType: f.ContentType,
			TotalChunks: len(rows),
		}
		for _, chunk := range rows {
			shard := manifestShard{
				Index:     chunk.ChunkIndex,
				PageStart: chunk.PageStart,
				PageEnd:   chunk.PageEnd,
				ByteStart: chunk.ByteStart,
				ByteEnd:   chunk.ByteEnd,
			}
			if chunk.VectorID != nil {
				shard.VectorID = *chunk.VectorID
			}
			m.Shards = append(m.Shards, shard)
		}
		body, err := json.MarshalIndent(m, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding manifest for %s: %w", f.ID, err)
		}
		if err := p.blobs.Put(ctx, blob.ManifestKey(f.Tenant, f.FileName), body, "application/json"); err != nil {
			return fmt.Errorf("writing manifest for %s: %w", f.ID, err)
		}
	}

	if err := p.blobs.Delete(ctx, f.ID); err != nil {
		p.logger.Warn("staging blob cleanup failed", "file_key", f.ID, "error", err)
	}
	return nil
}

func (p *FilePipeline) complete(ctx context.Context, f *ent.File, log *slog.Logger) error {
	if err := p.setStatus(ctx, f, file.StatusCompleted, ""); err != nil {
		return err
	}
	p.notifications.NotifyBestEffort(ctx, NotifyInput{
		Tenant:    f.Tenant,
		Kind:      notification.KindFileProcessed,
		SubjectID: f.ID,
		Message:   fmt.Sprintf("%s processed and added to your library", f.FileName),
		Metadata:  map[string]string{"file_key": f.ID},
	})
	log.Info("file processing complete")
	return nil
}

// failFile marks a non-retryable failure and tells the user.
func (p *FilePipeline) failFile(ctx context.Context, f *ent.File, message string) {
	if err := p.setStatus(ctx, f, file.StatusError, message); err != nil {
		p.logger.Error("recording file failure failed", "file_key", f.ID, "error", err)
	}
	p.notifications.NotifyBestEffort(ctx, NotifyInput{
		Tenant:    f.Tenant,
		Kind:      notification.KindFileStatusUpdated,
		SubjectID: f.ID,
		Message:   fmt.Sprintf("%s could not be processed: %s", f.FileName, message),
		Metadata:  map[string]string{"file_key": f.ID},
	})
}

func (p *FilePipeline) setStatus(ctx context.Context, f *ent.File, status file.Status, errorMessage string) error {
	update := p.client.File.UpdateOneID(f.ID).SetStatus(status)
	if errorMessage != "" {
		update = update.SetErrorMessage(errorMessage)
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("updating file %s to %s: %w", f.ID, status, err)
	}
	f.Status = status
	return nil
}
