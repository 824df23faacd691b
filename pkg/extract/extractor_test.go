package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestExtractor() *Extractor {
	return NewExtractor(slog.Default())
}

func TestExtractText(t *testing.T) {
	e := newTestExtractor()

	text, err := e.Extract(context.Background(), []byte("hello world"), "text/plain; charset=utf-8", Options{})
	require.NoError(t, err)
	assert.Equal(t, "hello world", text)

	// Invalid UTF-8 is replaced, not rejected.
	text, err = e.Extract(context.Background(), []byte{'o', 'k', 0xff, 0xfe}, "text/markdown", Options{})
	require.NoError(t, err)
	assert.Contains(t, text, "ok")
}

func TestExtractJSON(t *testing.T) {
	e := newTestExtractor()

	text, err := e.Extract(context.Background(), []byte(`{"name":"Zara","kind":"npc"}`), "application/json", Options{})
	require.NoError(t, err)
	assert.Contains(t, text, "\"name\": \"Zara\"")

	// Malformed JSON falls back to the raw bytes.
	text, err = e.Extract(context.Background(), []byte(`{not json`), "application/json", Options{})
	require.NoError(t, err)
	assert.Equal(t, "{not json", text)
}

func TestExtractUnsupported(t *testing.T) {
	e := newTestExtractor()

	_, err := e.Extract(context.Background(), []byte{0x89, 0x50}, "image/png", Options{})
	assert.True(t, IsNotImplemented(err))

	_, err = e.Extract(context.Background(), []byte("x"), "application/octet-stream", Options{})
	assert.True(t, IsNotImplemented(err))
}

func TestExtractMemoryLimit(t *testing.T) {
	e := newTestExtractor()

	data := make([]byte, 3*1024*1024)
	_, err := e.Extract(context.Background(), data, "application/pdf", Options{MemoryLimitMB: 2})
	require.True(t, IsMemoryLimit(err))

	var mle *MemoryLimitError
	require.ErrorAs(t, err, &mle)
	assert.Equal(t, int64(3), mle.FileSizeMB)
	assert.Equal(t, int64(2), mle.LimitMB)
}

func TestClassifyFailure(t *testing.T) {
	base := errors.New("pdfcpu: cannot allocate memory for object stream")
	classified := ClassifyFailure(base, 150, 100)
	assert.True(t, IsMemoryLimit(classified))

	plain := errors.New("pdfcpu: malformed xref table")
	assert.Equal(t, plain, ClassifyFailure(plain, 150, 100))

	assert.NoError(t, ClassifyFailure(nil, 0, 0))
}

func TestExtractDOCX(t *testing.T) {
	e := newTestExtractor()

	doc := `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>The Sunken Keep</w:t></w:r></w:p>
    <w:p><w:r><w:t>Home of </w:t></w:r><w:r><w:t>Lord Maren</w:t></w:r></w:p>
  </w:body>
</w:document>`

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(doc))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	text, err := e.Extract(context.Background(), buf.Bytes(), ContentTypeDOCX, Options{})
	require.NoError(t, err)
	assert.Equal(t, "The Sunken Keep\nHome of Lord Maren", text)
}

func TestExtractDOCXMissingDocument(t *testing.T) {
	e := newTestExtractor()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	_, err := zw.Create("word/styles.xml")
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, err = e.Extract(context.Background(), buf.Bytes(), ContentTypeDOCX, Options{})
	assert.ErrorContains(t, err, "word/document.xml")
}

func TestDecodeContentStream(t *testing.T) {
	stream := []byte(`BT /F1 12 Tf (Welcome to) Tj (Thornhold\n) Tj ET`)
	assert.Equal(t, "Welcome to Thornhold", decodeContentStream(stream))

	escaped := []byte(`(paren \( inside \))`)
	assert.Equal(t, "paren ( inside )", decodeContentStream(escaped))
}

func TestFormatPage(t *testing.T) {
	assert.Equal(t, "[Page 7]\nsome text", FormatPage(7, "some text"))
}
