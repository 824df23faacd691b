// Package chunks plans and tracks chunked processing of oversized files.
//
// Files above the single-pass thresholds are split into page ranges (PDF) or
// byte ranges (everything else). Each range is persisted as a
// FileProcessingChunk row and processed by its own queue message; the file
// completes only when every chunk has.
package chunks

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/loresmith/loresmith/pkg/config"
	"github.com/loresmith/loresmith/pkg/extract"
)

// Strategy selects how a file is sliced.
type Strategy string

const (
	StrategyNone  Strategy = "none"
	StrategyPages Strategy = "pages"
	StrategyBytes Strategy = "bytes"
)

// Range is one slice of a file. Page ranges are 1-based inclusive; byte
// ranges are [start, end).
type Range struct {
	Index     int
	PageStart int
	PageEnd   int
	ByteStart int64
	ByteEnd   int64
}

// Plan is the chunking decision for one file.
type Plan struct {
	Strategy Strategy
	Ranges   []Range
}

// NeedsChunking reports whether a file exceeds the single-pass size threshold
// for its content type.
func NeedsChunking(contentType string, sizeBytes int64, cfg config.PipelineConfig) bool {
	if isPDF(contentType) {
		return sizeBytes > cfg.PDFChunkThresholdMB*1024*1024
	}
	return sizeBytes > cfg.NonPDFChunkThresholdMB*1024*1024
}

// PlanRanges computes the chunk ranges for a file.
//
// PDFs are split into page ranges: 100 pages per chunk, halved to 50 above
// the large-file threshold. pageCount <= 0 means the document could not be
// parsed for a count; the count is then estimated from the file size.
// Non-PDF files are split into fixed-size byte ranges.
func PlanRanges(contentType string, sizeBytes int64, pageCount int, cfg config.PipelineConfig) Plan {
	if isPDF(contentType) {
		if pageCount <= 0 {
			pageCount = int(sizeBytes / cfg.EstimatedPageBytes)
			if pageCount < 1 {
				pageCount = 1
			}
		}
		perChunk := cfg.PDFPagesPerChunk
		if sizeBytes > cfg.PDFLargeThresholdMB*1024*1024 {
			perChunk = cfg.PDFPagesPerChunkLarge
		}

		var ranges []Range
		for start := 1; start <= pageCount; start += perChunk {
			end := start + perChunk - 1
			if end > pageCount {
				end = pageCount
			}
			ranges = append(ranges, Range{
				Index:     len(ranges),
				PageStart: start,
				PageEnd:   end,
			})
		}
		return Plan{Strategy: StrategyPages, Ranges: ranges}
	}

	chunkSize := cfg.ByteChunkSizeMB * 1024 * 1024
	var ranges []Range
	for start := int64(0); start < sizeBytes; start += chunkSize {
		end := start + chunkSize
		if end > sizeBytes {
			end = sizeBytes
		}
		ranges = append(ranges, Range{
			Index:     len(ranges),
			ByteStart: start,
			ByteEnd:   end,
		})
	}
	if len(ranges) == 0 {
		ranges = append(ranges, Range{Index: 0, ByteStart: 0, ByteEnd: sizeBytes})
	}
	return Plan{Strategy: StrategyBytes, Ranges: ranges}
}

// ChunkID builds a unique chunk identifier that stays readable in logs:
// chunk_<sanitized file key>_<index>_<unix ts>_<random suffix>.
func ChunkID(fileKey string, index int) string {
	return fmt.Sprintf("chunk_%s_%d_%d_%s",
		sanitizeKey(fileKey), index, time.Now().Unix(), uuid.NewString()[:8])
}

func sanitizeKey(key string) string {
	var b strings.Builder
	b.Grow(len(key))
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

func isPDF(contentType string) bool {
	return strings.HasPrefix(strings.ToLower(contentType), extract.ContentTypePDF)
}
