package cleanup

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loresmith/loresmith/ent"
	"github.com/loresmith/loresmith/ent/file"
	"github.com/loresmith/loresmith/ent/notification"
	"github.com/loresmith/loresmith/pkg/blob"
	"github.com/loresmith/loresmith/pkg/config"
	"github.com/loresmith/loresmith/pkg/services"
	testdb "github.com/loresmith/loresmith/test/database"
)

type noopDrainer struct{}

func (noopDrainer) Drain(context.Context) (int, error) { return 0, nil }

type noopTrigger struct{}

func (noopTrigger) Run(context.Context) (int, error) { return 0, nil }

func setupService(t *testing.T) (*ent.Client, *blob.Memory, *Service) {
	t.Helper()
	client := testdb.NewTestClient(t)
	blobs := blob.NewMemory()
	notifications := services.NewNotificationService(client.Client, slog.Default())
	svc := NewService(config.DefaultRetentionConfig(), client.Client, blobs, noopDrainer{}, noopTrigger{}, notifications)
	return client.Client, blobs, svc
}

func createFile(t *testing.T, client *ent.Client, tenant, name string, status file.Status) *ent.File {
	t.Helper()
	row, err := client.File.Create().
		SetID(blob.StagingKey(tenant, name)).
		SetTenant(tenant).
		SetFileName(name).
		SetContentType("text/plain").
		SetSize(64).
		SetStatus(status).
		Save(context.Background())
	require.NoError(t, err)
	return row
}

func TestService_TimesOutStuckFiles(t *testing.T) {
	client, _, svc := setupService(t)
	ctx := context.Background()

	stuck := createFile(t, client, "acme", "stuck.txt", file.StatusProcessing)
	err := client.File.UpdateOne(stuck).
		SetUpdatedAt(time.Now().Add(-1 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	svc.runSweeps(ctx)

	updated, err := client.File.Get(ctx, stuck.ID)
	require.NoError(t, err)
	assert.Equal(t, file.StatusTimeout, updated.Status)
	require.NotNil(t, updated.ErrorMessage)

	count, err := client.Notification.Query().
		Where(notification.TenantEQ("acme"), notification.SubjectIDEQ(stuck.ID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "timing out should notify the tenant")
}

func TestService_PreservesActiveFiles(t *testing.T) {
	client, _, svc := setupService(t)
	ctx := context.Background()

	active := createFile(t, client, "acme", "active.txt", file.StatusIndexing)

	svc.runSweeps(ctx)

	updated, err := client.File.Get(ctx, active.ID)
	require.NoError(t, err)
	assert.Equal(t, file.StatusIndexing, updated.Status)
}

func TestService_CollectsOldStagingBlobs(t *testing.T) {
	client, blobs, svc := setupService(t)
	ctx := context.Background()

	// Orphan with no File row, past the GC age.
	orphanKey := blob.StagingKey("acme", "orphan.txt")
	require.NoError(t, blobs.Put(ctx, orphanKey, []byte("data"), "text/plain"))
	blobs.SetModified(orphanKey, time.Now().Add(-48*time.Hour))

	// Old blob whose file is still processing stays.
	busy := createFile(t, client, "acme", "busy.txt", file.StatusProcessing)
	require.NoError(t, blobs.Put(ctx, busy.ID, []byte("data"), "text/plain"))
	blobs.SetModified(busy.ID, time.Now().Add(-48*time.Hour))

	// Recent orphan stays.
	freshKey := blob.StagingKey("acme", "fresh.txt")
	require.NoError(t, blobs.Put(ctx, freshKey, []byte("data"), "text/plain"))

	svc.runSweeps(ctx)

	exists, err := blobs.Exists(ctx, orphanKey)
	require.NoError(t, err)
	assert.False(t, exists, "aged orphan should be collected")

	exists, err = blobs.Exists(ctx, busy.ID)
	require.NoError(t, err)
	assert.True(t, exists, "in-flight file's blob must survive")

	exists, err = blobs.Exists(ctx, freshKey)
	require.NoError(t, err)
	assert.True(t, exists, "recent blob must survive")
}

func TestService_ExpiresReadNotifications(t *testing.T) {
	client, _, svc := setupService(t)
	ctx := context.Background()

	old, err := client.Notification.Create().
		SetID("notif_old").
		SetTenant("acme").
		SetKind(notification.KindFileProcessed).
		SetSubjectID("staging/acme/a.txt").
		SetMessage("done").
		SetRead(true).
		SetCreatedAt(time.Now().Add(-60 * 24 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	unread, err := client.Notification.Create().
		SetID("notif_unread").
		SetTenant("acme").
		SetKind(notification.KindFileProcessed).
		SetSubjectID("staging/acme/b.txt").
		SetMessage("done").
		SetCreatedAt(time.Now().Add(-60 * 24 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	svc.runSweeps(ctx)

	_, err = client.Notification.Get(ctx, old.ID)
	assert.True(t, ent.IsNotFound(err), "read notification past TTL should be deleted")

	_, err = client.Notification.Get(ctx, unread.ID)
	assert.NoError(t, err, "unread notifications are kept regardless of age")
}
