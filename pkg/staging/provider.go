package staging

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/loresmith/loresmith/pkg/blob"
	"github.com/loresmith/loresmith/pkg/embedding"
	"github.com/loresmith/loresmith/pkg/extract"
	"github.com/loresmith/loresmith/pkg/vector"
)

// ContentProvider yields the text of a resource for entity extraction.
// Empty content is a valid result and produces zero entities.
type ContentProvider interface {
	Content(ctx context.Context, tenant, fileKey string) (string, error)
}

// DirectFileProvider reads the blob and extracts its text in one pass. The
// default provider.
type DirectFileProvider struct {
	store     blob.Store
	extractor *extract.Extractor
	limitMB   int64
}

// NewDirectFileProvider creates the direct-read provider. limitMB bounds the
// single-pass extraction size.
func NewDirectFileProvider(store blob.Store, extractor *extract.Extractor, limitMB int64) *DirectFileProvider {
	return &DirectFileProvider{store: store, extractor: extractor, limitMB: limitMB}
}

func (p *DirectFileProvider) Content(ctx context.Context, tenant, fileKey string) (string, error) {
	key := fileKey
	data, err := p.store.Get(ctx, key)
	if errors.Is(err, blob.ErrNotFound) {
		// Promoted files move from staging to library keeping the name.
		key = promotedKey(tenant, fileKey)
		data, err = p.store.Get(ctx, key)
	}
	if err != nil {
		return "", fmt.Errorf("reading resource %s: %w", fileKey, err)
	}

	// The content type must come from the same object the bytes did, or a
	// promoted binary would be mistyped and extracted as raw bytes.
	contentType, err := p.store.ContentType(ctx, key)
	if err != nil {
		contentType = "text/plain"
	}

	text, err := p.extractor.Extract(ctx, data, contentType, extract.Options{MemoryLimitMB: p.limitMB})
	if err != nil {
		if extract.IsNotImplemented(err) {
			return "", nil
		}
		return "", fmt.Errorf("extracting %s: %w", fileKey, err)
	}
	return text, nil
}

func promotedKey(tenant, fileKey string) string {
	name := fileKey
	if idx := strings.LastIndexByte(fileKey, '/'); idx >= 0 {
		name = fileKey[idx+1:]
	}
	return blob.LibraryKey(tenant, name)
}

// SearchProvider reconstructs resource content from the file-chunk vectors
// already written during ingestion, instead of re-reading the blob. Used when
// the original blob is gone or too large to re-extract.
type SearchProvider struct {
	index  vector.Index
	embed  *embedding.Service
	logger *slog.Logger
	topK   int
}

// NewSearchProvider creates the vector-search-backed provider.
func NewSearchProvider(index vector.Index, embed *embedding.Service, topK int, logger *slog.Logger) *SearchProvider {
	if topK <= 0 {
		topK = 50
	}
	return &SearchProvider{index: index, embed: embed, topK: topK, logger: logger.With("component", "staging-search-provider")}
}

func (p *SearchProvider) Content(ctx context.Context, tenant, fileKey string) (string, error) {
	queryVec, err := p.embed.EmbedQuery(ctx, fileKey)
	if err != nil {
		return "", fmt.Errorf("embedding search key: %w", err)
	}
	matches, err := p.index.Query(ctx, vector.Query{
		Vector: queryVec,
		TopK:   p.topK,
		Filter: map[string]string{
			"tenant":      tenant,
			"file_key":    fileKey,
			"contentType": vector.ContentTypeFileChunk,
		},
		WithMetadata: true,
	})
	if err != nil {
		return "", fmt.Errorf("searching file chunks for %s: %w", fileKey, err)
	}

	type piece struct {
		part int
		text string
	}
	var pieces []piece
	for _, m := range matches {
		text, _ := m.Metadata["snippet"].(string)
		if text == "" {
			continue
		}
		part := 0
		if v, ok := m.Metadata["part"].(float64); ok {
			part = int(v)
		}
		pieces = append(pieces, piece{part: part, text: text})
	}
	sort.Slice(pieces, func(i, j int) bool { return pieces[i].part < pieces[j].part })

	var b strings.Builder
	for _, pc := range pieces {
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(pc.text)
	}
	return b.String(), nil
}
