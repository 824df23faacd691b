// Package extract converts uploaded file bytes into plain text for
// downstream embedding and entity extraction.
//
// PDF extraction goes through pdfcpu; DOCX is unpacked from its zip container
// and read out of word/document.xml. Oversized inputs and memory-pattern
// failures surface as MemoryLimitError so the pipeline can fall back to
// chunked processing.
package extract

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"
)

// Content types the extractor understands.
const (
	ContentTypePDF      = "application/pdf"
	ContentTypeDOCX     = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	ContentTypeText     = "text/plain"
	ContentTypeMarkdown = "text/markdown"
	ContentTypeJSON     = "application/json"
)

// Options constrain an extraction pass.
type Options struct {
	// PageStart and PageEnd limit PDF extraction to an inclusive 1-based
	// page range. Zero values mean the whole document.
	PageStart int
	PageEnd   int
	// MemoryLimitMB caps the file size processed in one pass. Zero disables
	// the proactive check.
	MemoryLimitMB int64
}

// Extractor converts file bytes to text by content type.
type Extractor struct {
	logger *slog.Logger
}

// NewExtractor creates an extractor.
func NewExtractor(logger *slog.Logger) *Extractor {
	return &Extractor{logger: logger.With("component", "extract")}
}

// Extract returns the text content of data. Returns NotImplementedError for
// unsupported content types and MemoryLimitError when data exceeds the
// configured single-pass budget.
func (e *Extractor) Extract(ctx context.Context, data []byte, contentType string, opts Options) (string, error) {
	sizeMB := int64(len(data)) / (1024 * 1024)
	if opts.MemoryLimitMB > 0 && sizeMB > opts.MemoryLimitMB {
		return "", &MemoryLimitError{FileSizeMB: sizeMB, LimitMB: opts.MemoryLimitMB}
	}

	base := baseContentType(contentType)
	switch {
	case base == ContentTypePDF:
		text, err := e.extractPDF(ctx, data, opts)
		if err != nil {
			return "", ClassifyFailure(err, sizeMB, opts.MemoryLimitMB)
		}
		return text, nil
	case base == ContentTypeDOCX:
		text, err := extractDOCX(data)
		if err != nil {
			return "", ClassifyFailure(err, sizeMB, opts.MemoryLimitMB)
		}
		return text, nil
	case base == ContentTypeJSON:
		return extractJSON(data), nil
	case base == ContentTypeMarkdown, base == ContentTypeText, strings.HasPrefix(base, "text/"):
		return extractText(data)
	case strings.HasPrefix(base, "image/"):
		return "", &NotImplementedError{ContentType: base}
	default:
		return "", &NotImplementedError{ContentType: base}
	}
}

// baseContentType strips parameters like "; charset=utf-8".
func baseContentType(contentType string) string {
	if idx := strings.IndexByte(contentType, ';'); idx >= 0 {
		contentType = contentType[:idx]
	}
	return strings.ToLower(strings.TrimSpace(contentType))
}

// extractText validates UTF-8, replacing invalid sequences.
func extractText(data []byte) (string, error) {
	if utf8.Valid(data) {
		return string(data), nil
	}
	return strings.ToValidUTF8(string(data), string(utf8.RuneError)), nil
}

// extractJSON pretty-prints JSON for readability; malformed input falls back
// to the raw text.
func extractJSON(data []byte) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return string(data)
	}
	return buf.String()
}

// FormatPage renders one extracted page with its page marker.
func FormatPage(pageNum int, text string) string {
	return fmt.Sprintf("[Page %d]\n%s", pageNum, text)
}
