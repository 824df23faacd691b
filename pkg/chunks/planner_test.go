package chunks

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loresmith/loresmith/pkg/config"
)

const mb = int64(1024 * 1024)

func TestNeedsChunking(t *testing.T) {
	cfg := *config.DefaultPipelineConfig()

	assert.False(t, NeedsChunking("application/pdf", 100*mb, cfg))
	assert.True(t, NeedsChunking("application/pdf", 101*mb, cfg))
	assert.False(t, NeedsChunking("text/plain", 128*mb, cfg))
	assert.True(t, NeedsChunking("text/plain", 129*mb, cfg))
}

func TestPlanRangesPDF(t *testing.T) {
	cfg := *config.DefaultPipelineConfig()

	plan := PlanRanges("application/pdf", 150*mb, 250, cfg)
	require.Equal(t, StrategyPages, plan.Strategy)
	require.Len(t, plan.Ranges, 3)
	assert.Equal(t, 1, plan.Ranges[0].PageStart)
	assert.Equal(t, 100, plan.Ranges[0].PageEnd)
	assert.Equal(t, 101, plan.Ranges[1].PageStart)
	assert.Equal(t, 200, plan.Ranges[1].PageEnd)
	assert.Equal(t, 201, plan.Ranges[2].PageStart)
	assert.Equal(t, 250, plan.Ranges[2].PageEnd)
}

func TestPlanRangesPDFLarge(t *testing.T) {
	cfg := *config.DefaultPipelineConfig()

	// Above the large threshold the page target halves.
	plan := PlanRanges("application/pdf", 250*mb, 100, cfg)
	require.Equal(t, StrategyPages, plan.Strategy)
	require.Len(t, plan.Ranges, 2)
	assert.Equal(t, 50, plan.Ranges[0].PageEnd)
	assert.Equal(t, 51, plan.Ranges[1].PageStart)
}

func TestPlanRangesPDFEstimatedPages(t *testing.T) {
	cfg := *config.DefaultPipelineConfig()

	// Unparseable PDF: page count estimated from size at 150 KB per page.
	size := 150 * mb
	plan := PlanRanges("application/pdf", size, 0, cfg)
	require.Equal(t, StrategyPages, plan.Strategy)

	wantPages := int(size / cfg.EstimatedPageBytes)
	last := plan.Ranges[len(plan.Ranges)-1]
	assert.Equal(t, wantPages, last.PageEnd)
}

func TestPlanRangesBytes(t *testing.T) {
	cfg := *config.DefaultPipelineConfig()

	size := 25 * mb
	plan := PlanRanges("text/plain", size, 0, cfg)
	require.Equal(t, StrategyBytes, plan.Strategy)
	require.Len(t, plan.Ranges, 3)
	assert.Equal(t, int64(0), plan.Ranges[0].ByteStart)
	assert.Equal(t, 10*mb, plan.Ranges[0].ByteEnd)
	assert.Equal(t, 20*mb, plan.Ranges[2].ByteStart)
	assert.Equal(t, size, plan.Ranges[2].ByteEnd)
}

func TestChunkID(t *testing.T) {
	id := ChunkID("staging/acme/big book.pdf", 3)
	assert.True(t, strings.HasPrefix(id, "chunk_staging_acme_big_book_pdf_3_"))

	// Random suffix keeps retried plans from colliding.
	assert.NotEqual(t, id, ChunkID("staging/acme/big book.pdf", 3))
}

func TestProgress(t *testing.T) {
	assert.False(t, Progress{}.Done())
	assert.True(t, Progress{Total: 2, Completed: 2}.AllSucceeded())
	assert.True(t, Progress{Total: 2, Completed: 1, Failed: 1}.Done())
	assert.False(t, Progress{Total: 2, Completed: 1, Failed: 1}.AllSucceeded())
	assert.False(t, Progress{Total: 3, Completed: 1, Pending: 2}.Done())
}
