package dedup

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loresmith/loresmith/pkg/config"
	"github.com/loresmith/loresmith/pkg/embedding"
	"github.com/loresmith/loresmith/pkg/llm"
	"github.com/loresmith/loresmith/pkg/vector"
)

const testDim = 64

func newTestDeduplicator() (*Deduplicator, *vector.Memory, *embedding.Service) {
	cfg := *config.DefaultPipelineConfig()
	cfg.EmbeddingDim = testDim
	index := vector.NewMemory(testDim)
	embedder := embedding.NewService(llm.NewMock(testDim), index, cfg, slog.Default())
	return NewDeduplicator(embedder, index, cfg, slog.Default()), index, embedder
}

func indexEntity(t *testing.T, index *vector.Memory, entityID, campaignID, entityType, text string, createdAt float64) {
	t.Helper()
	err := index.Upsert(context.Background(), []vector.Record{{
		ID:     vector.ID("entity:"+entityID, ""),
		Values: llm.DeterministicVector(text, testDim),
		Metadata: map[string]any{
			"entity_id":   entityID,
			"campaign_id": campaignID,
			"contentType": vector.ContentTypeEntity,
			"entity_type": entityType,
			"created_at":  createdAt,
		},
	}})
	require.NoError(t, err)
}

func TestIsDuplicateExactMatch(t *testing.T) {
	d, index, _ := newTestDeduplicator()
	indexEntity(t, index, "c1_barliman", "c1", "character", "the innkeeper Barliman", 100)

	res, err := d.IsDuplicate(context.Background(), "the innkeeper Barliman", "c1", "character", "")
	require.NoError(t, err)
	assert.True(t, res.Duplicate)
	assert.Equal(t, "c1_barliman", res.ExistingID)
	assert.InDelta(t, 1.0, float64(res.Score), 0.0001)
}

func TestIsDuplicateRespectsEntityTypeFilter(t *testing.T) {
	d, index, _ := newTestDeduplicator()
	indexEntity(t, index, "c1_bree", "c1", "location", "the town of Bree", 100)

	// Same text, different entity type: not a duplicate.
	res, err := d.IsDuplicate(context.Background(), "the town of Bree", "c1", "character", "")
	require.NoError(t, err)
	assert.False(t, res.Duplicate)
}

func TestIsDuplicateRespectsCampaignIsolation(t *testing.T) {
	d, index, _ := newTestDeduplicator()
	indexEntity(t, index, "c2_zara", "c2", "character", "Zara the smuggler", 100)

	res, err := d.IsDuplicate(context.Background(), "Zara the smuggler", "c1", "character", "")
	require.NoError(t, err)
	assert.False(t, res.Duplicate)
}

func TestIsDuplicateExcludesSelf(t *testing.T) {
	d, index, _ := newTestDeduplicator()
	indexEntity(t, index, "c1_zara", "c1", "character", "Zara the smuggler", 100)

	res, err := d.IsDuplicate(context.Background(), "Zara the smuggler", "c1", "character", "c1_zara")
	require.NoError(t, err)
	assert.False(t, res.Duplicate)
}

func TestIsDuplicateTieBreaksToOlder(t *testing.T) {
	d, index, _ := newTestDeduplicator()
	// Identical vectors, different ages.
	indexEntity(t, index, "c1_newer", "c1", "character", "the grey wizard", 200)
	indexEntity(t, index, "c1_older", "c1", "character", "the grey wizard", 100)

	res, err := d.IsDuplicate(context.Background(), "the grey wizard", "c1", "character", "")
	require.NoError(t, err)
	require.True(t, res.Duplicate)
	assert.Equal(t, "c1_older", res.ExistingID)
}

func TestIsDuplicateBelowThreshold(t *testing.T) {
	d, index, _ := newTestDeduplicator()
	indexEntity(t, index, "c1_keep", "c1", "character", "an entirely different description of someone else", 100)

	res, err := d.IsDuplicate(context.Background(), "Zara the smuggler of the docks", "c1", "character", "")
	require.NoError(t, err)
	assert.False(t, res.Duplicate)
}
