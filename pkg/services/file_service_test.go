package services

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loresmith/loresmith/ent"
	"github.com/loresmith/loresmith/ent/file"
	"github.com/loresmith/loresmith/ent/queuemessage"
	"github.com/loresmith/loresmith/pkg/blob"
	"github.com/loresmith/loresmith/pkg/config"
	"github.com/loresmith/loresmith/pkg/queue"
	testdb "github.com/loresmith/loresmith/test/database"
)

func setupFileService(t *testing.T) (*ent.Client, *blob.Memory, *FileService) {
	t.Helper()
	client := testdb.NewTestClient(t)
	blobs := blob.NewMemory()
	q := queue.New(client.Client, config.DefaultQueueConfig(), slog.Default())
	notifications := NewNotificationService(client.Client, slog.Default())
	svc := NewFileService(client.Client, blobs, q, notifications, slog.Default())
	return client.Client, blobs, svc
}

func TestFileService_Upload(t *testing.T) {
	client, blobs, svc := setupFileService(t)
	ctx := context.Background()

	row, err := svc.Upload(ctx, "acme", UploadFileInput{
		FileName:    "world.txt",
		ContentType: "text/plain",
		Data:        []byte("ancient lore"),
	})
	require.NoError(t, err)

	assert.Equal(t, blob.StagingKey("acme", "world.txt"), row.ID)
	assert.Equal(t, file.StatusUploaded, row.Status)
	assert.Equal(t, int64(12), row.Size)

	data, err := blobs.Get(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("ancient lore"), data)

	msgs, err := client.QueueMessage.Query().
		Where(queuemessage.KindEQ(queuemessage.KindFileProcessing)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, row.ID, msgs[0].Payload[queue.PayloadFileKey])
	assert.Equal(t, "acme", msgs[0].Tenant)
}

func TestFileService_UploadValidation(t *testing.T) {
	_, _, svc := setupFileService(t)
	ctx := context.Background()

	_, err := svc.Upload(ctx, "acme", UploadFileInput{FileName: "", Data: []byte("x")})
	assert.ErrorContains(t, err, "file_name is required")

	_, err = svc.Upload(ctx, "acme", UploadFileInput{FileName: "../escape.txt", Data: []byte("x")})
	assert.ErrorContains(t, err, "path separators")
}

func TestFileService_UploadDuplicateRejected(t *testing.T) {
	_, _, svc := setupFileService(t)
	ctx := context.Background()

	_, err := svc.Upload(ctx, "acme", UploadFileInput{FileName: "dup.txt", Data: []byte("one")})
	require.NoError(t, err)

	_, err = svc.Upload(ctx, "acme", UploadFileInput{FileName: "dup.txt", Data: []byte("two")})
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestFileService_ReuploadAfterFailureRestartsProcessing(t *testing.T) {
	client, _, svc := setupFileService(t)
	ctx := context.Background()

	row, err := svc.Upload(ctx, "acme", UploadFileInput{FileName: "retry.txt", Data: []byte("v1")})
	require.NoError(t, err)

	err = client.File.UpdateOne(row).
		SetStatus(file.StatusError).
		SetErrorMessage("extraction blew up").
		Exec(ctx)
	require.NoError(t, err)

	again, err := svc.Upload(ctx, "acme", UploadFileInput{FileName: "retry.txt", Data: []byte("v2 longer")})
	require.NoError(t, err)
	assert.Equal(t, row.ID, again.ID, "re-upload keeps the same file key")
	assert.Equal(t, file.StatusUploaded, again.Status)
	assert.Nil(t, again.ErrorMessage)
	assert.Equal(t, int64(9), again.Size)
}

func TestFileService_GetIsTenantScoped(t *testing.T) {
	_, _, svc := setupFileService(t)
	ctx := context.Background()

	row, err := svc.Upload(ctx, "acme", UploadFileInput{FileName: "secret.txt", Data: []byte("x")})
	require.NoError(t, err)

	got, err := svc.Get(ctx, "acme", row.ID)
	require.NoError(t, err)
	assert.Equal(t, row.ID, got.ID)

	_, err = svc.Get(ctx, "rival", row.ID)
	assert.ErrorIs(t, err, ErrNotFound, "cross-tenant lookups must report not found")
}
