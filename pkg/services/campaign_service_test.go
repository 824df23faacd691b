package services

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loresmith/loresmith/ent"
	"github.com/loresmith/loresmith/ent/campaign"
	"github.com/loresmith/loresmith/ent/file"
	"github.com/loresmith/loresmith/ent/queuemessage"
	"github.com/loresmith/loresmith/pkg/blob"
	"github.com/loresmith/loresmith/pkg/config"
	"github.com/loresmith/loresmith/pkg/queue"
	testdb "github.com/loresmith/loresmith/test/database"
)

func setupCampaignService(t *testing.T) (*ent.Client, *CampaignService) {
	t.Helper()
	client := testdb.NewTestClient(t)
	q := queue.New(client.Client, config.DefaultQueueConfig(), slog.Default())
	return client.Client, NewCampaignService(client.Client, q, slog.Default())
}

func completedFile(t *testing.T, client *ent.Client, tenant, name string) *ent.File {
	t.Helper()
	row, err := client.File.Create().
		SetID(blob.StagingKey(tenant, name)).
		SetTenant(tenant).
		SetFileName(name).
		SetContentType("text/plain").
		SetSize(128).
		SetStatus(file.StatusCompleted).
		Save(context.Background())
	require.NoError(t, err)
	return row
}

func TestCampaignService_CreateAndGet(t *testing.T) {
	_, svc := setupCampaignService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "acme", CreateCampaignInput{
		Name:        "Curse of Strahd",
		Description: "Gothic horror in Barovia",
	})
	require.NoError(t, err)
	assert.Equal(t, campaign.StatusActive, created.Status)

	got, err := svc.Get(ctx, "acme", created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Curse of Strahd", got.Name)

	_, err = svc.Get(ctx, "rival", created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCampaignService_CreateRequiresName(t *testing.T) {
	_, svc := setupCampaignService(t)

	_, err := svc.Create(context.Background(), "acme", CreateCampaignInput{})
	assert.ErrorContains(t, err, "campaign name is required")
}

func TestCampaignService_ArchiveHidesFromDefaultList(t *testing.T) {
	_, svc := setupCampaignService(t)
	ctx := context.Background()

	keep, err := svc.Create(ctx, "acme", CreateCampaignInput{Name: "Active"})
	require.NoError(t, err)
	retire, err := svc.Create(ctx, "acme", CreateCampaignInput{Name: "Finished"})
	require.NoError(t, err)

	archived, err := svc.Archive(ctx, "acme", retire.ID)
	require.NoError(t, err)
	assert.Equal(t, campaign.StatusArchived, archived.Status)

	// Archiving twice is a no-op.
	_, err = svc.Archive(ctx, "acme", retire.ID)
	require.NoError(t, err)

	active, err := svc.List(ctx, "acme", false)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, keep.ID, active[0].ID)

	all, err := svc.List(ctx, "acme", true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestCampaignService_LinkResource(t *testing.T) {
	client, svc := setupCampaignService(t)
	ctx := context.Background()

	camp, err := svc.Create(ctx, "acme", CreateCampaignInput{Name: "Campaign"})
	require.NoError(t, err)
	f := completedFile(t, client, "acme", "lore.txt")

	msg, err := svc.LinkResource(ctx, "acme", camp.ID, f.ID)
	require.NoError(t, err)
	assert.Equal(t, queuemessage.KindEntityExtraction, msg.Kind)
	assert.Equal(t, camp.ID, msg.Payload[queue.PayloadCampaignID])
	assert.Equal(t, f.ID, msg.Payload[queue.PayloadFileKey])
	assert.Equal(t, "lore.txt", msg.Payload[queue.PayloadSourceName])
}

func TestCampaignService_LinkResourceRejectsUnprocessedFile(t *testing.T) {
	client, svc := setupCampaignService(t)
	ctx := context.Background()

	camp, err := svc.Create(ctx, "acme", CreateCampaignInput{Name: "Campaign"})
	require.NoError(t, err)

	pending, err := client.File.Create().
		SetID(blob.StagingKey("acme", "pending.txt")).
		SetTenant("acme").
		SetFileName("pending.txt").
		SetContentType("text/plain").
		SetSize(10).
		SetStatus(file.StatusProcessing).
		Save(ctx)
	require.NoError(t, err)

	_, err = svc.LinkResource(ctx, "acme", camp.ID, pending.ID)
	assert.ErrorContains(t, err, "not ready for extraction")
}

func TestCampaignService_LinkResourceCrossTenant(t *testing.T) {
	client, svc := setupCampaignService(t)
	ctx := context.Background()

	camp, err := svc.Create(ctx, "acme", CreateCampaignInput{Name: "Campaign"})
	require.NoError(t, err)
	theirs := completedFile(t, client, "rival", "theirs.txt")

	_, err = svc.LinkResource(ctx, "acme", camp.ID, theirs.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
