package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/loresmith/loresmith/ent"
	"github.com/loresmith/loresmith/ent/file"
	"github.com/loresmith/loresmith/ent/notification"
	"github.com/loresmith/loresmith/ent/queuemessage"
	"github.com/loresmith/loresmith/pkg/blob"
	"github.com/loresmith/loresmith/pkg/queue"
)

// MaxUploadSize caps one uploaded resource at 512 MB.
const MaxUploadSize = 512 << 20

// UploadFileInput contains the domain-level data for an upload.
type UploadFileInput struct {
	FileName    string
	ContentType string
	Data        []byte
}

// FileService handles resource intake: staging blob write, File row, and the
// file_processing job.
type FileService struct {
	client        *ent.Client
	blobs         blob.Store
	queue         *queue.Queue
	notifications *NotificationService
	logger        *slog.Logger
}

// NewFileService creates a new FileService.
func NewFileService(client *ent.Client, blobs blob.Store, q *queue.Queue, notifications *NotificationService, logger *slog.Logger) *FileService {
	if client == nil {
		panic("NewFileService: client must not be nil")
	}
	return &FileService{
		client:        client,
		blobs:         blobs,
		queue:         q,
		notifications: notifications,
		logger:        logger.With("component", "files"),
	}
}

// Upload writes the resource to staging storage, registers the File row in
// uploaded status, and enqueues processing. Returns the File row; its id is
// the file_key.
func (s *FileService) Upload(ctx context.Context, tenant string, input UploadFileInput) (*ent.File, error) {
	if err := validateFileName(input.FileName); err != nil {
		return nil, err
	}
	if len(input.Data) > MaxUploadSize {
		return nil, NewValidationError("data",
			fmt.Sprintf("file exceeds maximum size of %d bytes", MaxUploadSize))
	}
	contentType := input.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	fileKey := blob.StagingKey(tenant, input.FileName)
	existing, err := s.client.File.Get(ctx, fileKey)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to check for existing file: %w", err)
	}
	if existing != nil && existing.Status != file.StatusError && existing.Status != file.StatusTimeout {
		return nil, ErrAlreadyExists
	}

	if err := s.blobs.Put(ctx, fileKey, input.Data, contentType); err != nil {
		return nil, fmt.Errorf("failed to write staging blob: %w", err)
	}

	var row *ent.File
	if existing != nil {
		// Re-upload after a failed run restarts processing on the same key.
		row, err = s.client.File.UpdateOne(existing).
			SetContentType(contentType).
			SetSize(int64(len(input.Data))).
			SetStatus(file.StatusUploaded).
			ClearErrorMessage().
			Save(ctx)
	} else {
		row, err = s.client.File.Create().
			SetID(fileKey).
			SetTenant(tenant).
			SetFileName(input.FileName).
			SetContentType(contentType).
			SetSize(int64(len(input.Data))).
			SetStatus(file.StatusUploaded).
			Save(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to register file: %w", err)
	}

	if _, err := s.queue.Enqueue(ctx, queuemessage.KindFileProcessing, tenant, map[string]string{
		queue.PayloadFileKey: fileKey,
	}); err != nil {
		return nil, fmt.Errorf("failed to enqueue processing: %w", err)
	}

	s.notifications.NotifyBestEffort(ctx, NotifyInput{
		Tenant:    tenant,
		Kind:      notification.KindFileUploaded,
		SubjectID: fileKey,
		Message:   fmt.Sprintf("%s uploaded, processing started", input.FileName),
		Metadata:  map[string]string{"file_key": fileKey},
	})

	s.logger.Info("file uploaded", "tenant", tenant, "file_key", fileKey, "size", len(input.Data))
	return row, nil
}

// Get returns one file's metadata and status. Cross-tenant keys report not
// found.
func (s *FileService) Get(ctx context.Context, tenant, fileKey string) (*ent.File, error) {
	row, err := s.client.File.Query().
		Where(file.IDEQ(fileKey), file.TenantEQ(tenant)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load file: %w", err)
	}
	return row, nil
}

// List returns the tenant's files, newest first.
func (s *FileService) List(ctx context.Context, tenant string, limit int) ([]*ent.File, error) {
	if limit <= 0 {
		limit = 100
	}
	return s.client.File.Query().
		Where(file.TenantEQ(tenant)).
		Order(ent.Desc(file.FieldCreatedAt), ent.Asc(file.FieldID)).
		Limit(limit).
		All(ctx)
}

func validateFileName(name string) error {
	if name == "" {
		return NewValidationError("file_name", "file_name is required")
	}
	if strings.ContainsAny(name, "/\\") || name == "." || name == ".." {
		return NewValidationError("file_name", "file_name must not contain path separators")
	}
	return nil
}
