package embedding

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loresmith/loresmith/pkg/config"
	"github.com/loresmith/loresmith/pkg/llm"
	"github.com/loresmith/loresmith/pkg/vector"
)

const testDim = 8

func newTestService(provider llm.Client) (*Service, *vector.Memory) {
	cfg := *config.DefaultPipelineConfig()
	cfg.EmbeddingDim = testDim
	index := vector.NewMemory(testDim)
	return NewService(provider, index, cfg, slog.Default()), index
}

// failingProvider always errors on Embed.
type failingProvider struct{ err error }

func (f *failingProvider) CompleteStructured(context.Context, llm.StructuredRequest) (string, error) {
	return "", errors.New("not scripted")
}

func (f *failingProvider) Embed(context.Context, []string) ([][]float32, error) {
	return nil, f.err
}

func TestEmbedAndIndexSingle(t *testing.T) {
	svc, index := newTestService(llm.NewMock(testDim))

	res, err := svc.EmbedAndIndex(context.Background(), "file:staging/acme/a.txt", "a short text",
		map[string]any{"tenant": "acme", "contentType": vector.ContentTypeFileContent})
	require.NoError(t, err)
	require.Len(t, res.VectorIDs, 1)
	assert.False(t, res.Fallback)
	assert.Equal(t, vector.ID("file:staging/acme/a.txt", ""), res.VectorIDs[0])

	rec, ok := index.Get(res.VectorIDs[0])
	require.True(t, ok)
	assert.Equal(t, "acme", rec.Metadata["tenant"])
	assert.Equal(t, "text-embedding-3-small", rec.Metadata["model"])
	_, hasFallback := rec.Metadata["fallback"]
	assert.False(t, hasFallback)
}

func TestEmbedAndIndexSplitsLongSource(t *testing.T) {
	svc, index := newTestService(llm.NewMock(testDim))

	long := strings.Repeat("lore ", 2000) // 10000 chars, splits at 3500
	res, err := svc.EmbedAndIndex(context.Background(), "entity:ent-1", long, nil)
	require.NoError(t, err)
	assert.Len(t, res.VectorIDs, 3)
	assert.Equal(t, 3, index.Len())

	rec, ok := index.Get(res.VectorIDs[1])
	require.True(t, ok)
	assert.Equal(t, 1, rec.Metadata["part"])
	assert.Equal(t, 3, rec.Metadata["parts"])
}

func TestEmbedAndIndexFallback(t *testing.T) {
	svc, index := newTestService(&failingProvider{err: errors.New("connection refused")})

	res, err := svc.EmbedAndIndex(context.Background(), "entity:ent-2", "some text", nil)
	require.NoError(t, err)
	assert.True(t, res.Fallback)

	rec, ok := index.Get(res.VectorIDs[0])
	require.True(t, ok)
	assert.Equal(t, true, rec.Metadata["fallback"])
	for _, v := range rec.Values {
		assert.GreaterOrEqual(t, v, float32(0))
		assert.LessOrEqual(t, v, float32(1))
	}
}

func TestEmbedAndIndexRateLimitPropagates(t *testing.T) {
	rle := &llm.RateLimitError{Message: "try again in 2s"}
	svc, index := newTestService(&failingProvider{err: rle})

	_, err := svc.EmbedAndIndex(context.Background(), "entity:ent-3", "text", nil)
	require.Error(t, err)
	assert.True(t, llm.IsRateLimit(err))
	assert.Equal(t, 0, index.Len())
}

func TestEmbedQueryNoFallback(t *testing.T) {
	svc, _ := newTestService(&failingProvider{err: errors.New("boom")})

	_, err := svc.EmbedQuery(context.Background(), "who rules Thornhold")
	assert.Error(t, err)
}

func TestSplitText(t *testing.T) {
	assert.Equal(t, []string{""}, SplitText("", 10))
	assert.Equal(t, []string{"abc"}, SplitText("abc", 10))

	pieces := SplitText(strings.Repeat("x", 25), 10)
	require.Len(t, pieces, 3)
	assert.Len(t, pieces[0], 10)
	assert.Len(t, pieces[2], 5)
}

func TestFallbackVectorDeterministic(t *testing.T) {
	a := FallbackVector("same text", 16)
	b := FallbackVector("same text", 16)
	c := FallbackVector("other text", 16)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}
