package staging

import (
	"archive/zip"
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loresmith/loresmith/pkg/blob"
	"github.com/loresmith/loresmith/pkg/extract"
)

func docxFixture(t *testing.T, paragraphs ...string) []byte {
	t.Helper()
	var doc bytes.Buffer
	doc.WriteString(`<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, p := range paragraphs {
		doc.WriteString(`<w:p><w:r><w:t>` + p + `</w:t></w:r></w:p>`)
	}
	doc.WriteString(`</w:body></w:document>`)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write(doc.Bytes())
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestDirectFileProvider_ReadsStagingBlob(t *testing.T) {
	store := blob.NewMemory()
	provider := NewDirectFileProvider(store, extract.NewExtractor(slog.Default()), 0)
	ctx := context.Background()

	key := blob.StagingKey("acme", "notes.txt")
	require.NoError(t, store.Put(ctx, key, []byte("the keep fell in winter"), "text/plain"))

	text, err := provider.Content(ctx, "acme", key)
	require.NoError(t, err)
	assert.Equal(t, "the keep fell in winter", text)
}

func TestDirectFileProvider_PromotedBinaryKeepsContentType(t *testing.T) {
	store := blob.NewMemory()
	provider := NewDirectFileProvider(store, extract.NewExtractor(slog.Default()), 0)
	ctx := context.Background()

	// Only the promoted library copy exists, as after normal processing.
	data := docxFixture(t, "The Sunken Keep", "Home of Lord Maren")
	libKey := blob.LibraryKey("acme", "keep.docx")
	require.NoError(t, store.Put(ctx, libKey, data, extract.ContentTypeDOCX))

	text, err := provider.Content(ctx, "acme", blob.StagingKey("acme", "keep.docx"))
	require.NoError(t, err)
	assert.Equal(t, "The Sunken Keep\nHome of Lord Maren", text,
		"library fallback must extract with the promoted object's content type")
}

func TestDirectFileProvider_MissingEverywhere(t *testing.T) {
	store := blob.NewMemory()
	provider := NewDirectFileProvider(store, extract.NewExtractor(slog.Default()), 0)

	_, err := provider.Content(context.Background(), "acme", blob.StagingKey("acme", "gone.txt"))
	assert.ErrorIs(t, err, blob.ErrNotFound)
}
