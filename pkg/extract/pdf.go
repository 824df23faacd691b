package extract

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// pdfBatchSize is how many pages are extracted before yielding the goroutine,
// keeping long extractions responsive to cancellation.
const pdfBatchSize = 50

// pdfBatchPause is the yield between page batches.
const pdfBatchPause = 10 * time.Millisecond

// extractPDF extracts text page by page. Each non-empty page is rendered as
// "[Page N]\n<text>" and pages are joined by blank lines.
func (e *Extractor) extractPDF(ctx context.Context, data []byte, opts Options) (string, error) {
	conf := model.NewDefaultConfiguration()
	pdfCtx, err := api.ReadValidateAndOptimize(bytes.NewReader(data), conf)
	if err != nil {
		return "", fmt.Errorf("parsing pdf: %w", err)
	}

	pageCount := pdfCtx.PageCount
	start, end := 1, pageCount
	if opts.PageStart > 0 {
		start = opts.PageStart
	}
	if opts.PageEnd > 0 && opts.PageEnd < end {
		end = opts.PageEnd
	}
	if start > pageCount {
		return "", fmt.Errorf("page range starts at %d but document has %d pages", start, pageCount)
	}

	var pages []string
	failed := 0
	for page := start; page <= end; page++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if (page-start) > 0 && (page-start)%pdfBatchSize == 0 {
			select {
			case <-time.After(pdfBatchPause):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}

		reader, err := pdfcpu.ExtractPageContent(pdfCtx, page)
		if err != nil {
			failed++
			continue
		}
		raw, err := io.ReadAll(reader)
		if err != nil {
			failed++
			continue
		}
		text := decodeContentStream(raw)
		if text == "" {
			continue
		}
		pages = append(pages, FormatPage(page, text))
	}

	if failed > 0 {
		e.logger.Warn("pdf pages failed to extract", "failed", failed, "total", end-start+1)
	}
	return strings.Join(pages, "\n\n"), nil
}

// PDFPageCount returns the number of pages without extracting text. Used by
// the chunk planner.
func PDFPageCount(data []byte) (int, error) {
	conf := model.NewDefaultConfiguration()
	pdfCtx, err := api.ReadValidateAndOptimize(bytes.NewReader(data), conf)
	if err != nil {
		return 0, fmt.Errorf("parsing pdf: %w", err)
	}
	return pdfCtx.PageCount, nil
}

// decodeContentStream pulls literal strings out of a PDF content stream.
// Text lives in Tj/TJ operators as parenthesized literals with backslash
// escapes.
func decodeContentStream(content []byte) string {
	var out strings.Builder
	var current strings.Builder
	depth := 0

	str := string(content)
	for i := 0; i < len(str); i++ {
		ch := str[i]
		switch {
		case ch == '(' && (i == 0 || str[i-1] != '\\'):
			depth++
			if depth == 1 {
				current.Reset()
			}
		case ch == ')' && (i == 0 || str[i-1] != '\\'):
			if depth > 0 {
				depth--
				if depth == 0 && current.Len() > 0 {
					out.WriteString(current.String())
					out.WriteByte(' ')
				}
			}
		case depth > 0:
			if ch == '\\' && i+1 < len(str) {
				switch next := str[i+1]; next {
				case 'n':
					current.WriteByte('\n')
					i++
				case 'r':
					current.WriteByte('\r')
					i++
				case 't':
					current.WriteByte('\t')
					i++
				case '(', ')', '\\':
					current.WriteByte(next)
					i++
				default:
					current.WriteByte(ch)
				}
			} else {
				current.WriteByte(ch)
			}
		}
	}

	return strings.Join(strings.Fields(out.String()), " ")
}
