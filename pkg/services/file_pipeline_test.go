package services

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loresmith/loresmith/ent"
	"github.com/loresmith/loresmith/ent/file"
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

// rateLimitedClient simulates a provider that is out of quota.
type rateLimitedClient struct{}

func (rateLimitedClient) CompleteStructured(context.Context, llm.StructuredRequest) (string, error) {
	return "", &llm.RateLimitError{Message: "quota exhausted"}
}

func (rateLimitedClient) Embed(context.Context, []string) ([][]float32, error) {
	return nil, &llm.RateLimitError{Message: "quota exhausted"}
}

func setupFilePipeline(t *testing.T, provider llm.Client) (*ent.Client, *blob.Memory, *chunks.Store, *FilePipeline) {
	t.Helper()
	client, blobs, _ := setupFileService(t)

	cfg := config.DefaultPipelineConfig()
	cfg.EmbeddingDim = 8
	chunkStore := chunks.NewStore(client, slog.Default())
	embedder := embedding.NewService(provider, vector.NewMemory(8), *cfg, slog.Default())
	notifications := NewNotificationService(client, slog.Default())
	pipeline := NewFilePipeline(client, blobs, chunkStore, extract.NewExtractor(slog.Default()),
		embedder, notifications, *cfg, slog.Default())
	return client, blobs, chunkStore, pipeline
}

func uploadForPipeline(t *testing.T, client *ent.Client, blobs *blob.Memory, name, content string) *ent.File {
	t.Helper()
	ctx := context.Background()
	key := blob.StagingKey("acme", name)
	require.NoError(t, blobs.Put(ctx, key, []byte(content), "text/plain"))
	row, err := client.File.Create().
		SetID(key).
		SetTenant("acme").
		SetFileName(name).
		SetContentType("text/plain").
		SetSize(int64(len(content))).
		SetStatus(file.StatusUploaded).
		Save(ctx)
	require.NoError(t, err)
	return row
}

func TestFilePipeline_SinglePassCompletes(t *testing.T) {
	client, blobs, _, pipeline := setupFilePipeline(t, llm.NewMock(8))
	ctx := context.Background()

	row := uploadForPipeline(t, client, blobs, "lore.txt", "the keep fell in winter")
	err := pipeline.Execute(ctx, &ent.QueueMessage{
		ID:      "msg_file_1",
		Tenant:  "acme",
		Payload: map[string]string{queue.PayloadFileKey: row.ID},
	})
	require.NoError(t, err)

	got, err := client.File.Get(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, file.StatusCompleted, got.Status)

	promoted, err := blobs.Get(ctx, blob.LibraryKey("acme", "lore.txt"))
	require.NoError(t, err)
	assert.Equal(t, []byte("the keep fell in winter"), promoted)
	_, err = blobs.Get(ctx, row.ID)
	assert.ErrorIs(t, err, blob.ErrNotFound, "staging copy is deleted after promotion")

	n, err := client.Notification.Query().
		Where(notification.KindEQ(notification.KindFileProcessed)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestFilePipeline_ChunkedFileCompletes(t *testing.T) {
	client, blobs, chunkStore, pipeline := setupFilePipeline(t, llm.NewMock(8))
	ctx := context.Background()

	row := uploadForPipeline(t, client, blobs, "big.txt", "chapter one of the campaign guide")
	_, err := chunkStore.CreateChunks(ctx, row.ID, "acme", chunks.Plan{
		Strategy: chunks.StrategyBytes,
		Ranges: []chunks.Range{
			{Index: 0, ByteStart: 0, ByteEnd: 16},
			{Index: 1, ByteStart: 16, ByteEnd: row.Size},
		},
	})
	require.NoError(t, err)

	err = pipeline.Execute(ctx, &ent.QueueMessage{
		ID:      "msg_file_2",
		Tenant:  "acme",
		Payload: map[string]string{queue.PayloadFileKey: row.ID},
	})
	require.NoError(t, err)

	got, err := client.File.Get(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, file.StatusCompleted, got.Status)

	_, err = blobs.Get(ctx, blob.ManifestKey("acme", "big.txt"))
	require.NoError(t, err, "split files get a shard manifest")
}

func TestFilePipeline_ChunkedBackoffLeavesFileIndexing(t *testing.T) {
	client, blobs, chunkStore, pipeline := setupFilePipeline(t, rateLimitedClient{})
	ctx := context.Background()

	row := uploadForPipeline(t, client, blobs, "stalled.txt", "content that will not embed today")
	_, err := chunkStore.CreateChunks(ctx, row.ID, "acme", chunks.Plan{
		Strategy: chunks.StrategyBytes,
		Ranges:   []chunks.Range{{Index: 0, ByteStart: 0, ByteEnd: row.Size}},
	})
	require.NoError(t, err)

	err = pipeline.Execute(ctx, &ent.QueueMessage{
		ID:      "msg_file_3",
		Tenant:  "acme",
		Payload: map[string]string{queue.PayloadFileKey: row.ID},
	})
	require.Error(t, err)
	assert.True(t, llm.IsRateLimit(err), "rate limits requeue the whole message")

	// The file entered the indexing phase before the provider backed off, and
	// the status must say so rather than sitting in processing or chunked.
	got, err := client.File.Get(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, file.StatusIndexing, got.Status)
}
