// Package vector provides the vector index port: batched upserts, filtered
// similarity queries, and deletion, with Qdrant and in-memory implementations.
package vector

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"
)

// Content types stored in vector metadata. The contentType discriminator is
// how queries scope themselves to one record family.
const (
	ContentTypeFileContent   = "file_content"
	ContentTypeFileChunk     = "file_chunk"
	ContentTypeEntity        = "entity"
	ContentTypeSessionDigest = "session_digest"
	ContentTypeChangelog     = "changelog"
)

// ErrDimensionMismatch is returned when a record's vector length differs from
// the index dimension.
var ErrDimensionMismatch = errors.New("embedding dimension mismatch")

// ErrNotFinite is returned when a vector contains NaN or Inf values.
var ErrNotFinite = errors.New("embedding contains non-finite values")

var idPattern = regexp.MustCompile(`^v_[0-9a-f]{48}$`)

// Record is one vector plus its metadata.
type Record struct {
	ID       string
	Values   []float32
	Metadata map[string]any
}

// Match is one similarity query result.
type Match struct {
	ID       string
	Score    float32
	Metadata map[string]any
}

// Query describes a similarity search.
type Query struct {
	Vector []float32
	TopK   int
	// Filter is equality-matched against string metadata fields.
	Filter       map[string]string
	WithMetadata bool
}

// Index is the vector index port. All operations are idempotent.
type Index interface {
	Upsert(ctx context.Context, records []Record) error
	Query(ctx context.Context, q Query) ([]Match, error)
	DeleteByIDs(ctx context.Context, ids []string) error
}

// ID derives the deterministic vector id for a source object:
// "v_" + 48 hex chars of SHA-256 over sourceID+suffix. Always 50 bytes,
// within the 64-byte index limit.
func ID(sourceID, suffix string) string {
	sum := sha256.Sum256([]byte(sourceID + suffix))
	return "v_" + hex.EncodeToString(sum[:])[:48]
}

// ValidID reports whether id matches the v_<48 hex> scheme.
func ValidID(id string) bool {
	return idPattern.MatchString(id)
}

// Validate checks a record's id, dimension, and numeric finiteness.
func Validate(rec Record, dim int) error {
	if !ValidID(rec.ID) {
		return fmt.Errorf("invalid vector id %q", rec.ID)
	}
	if len(rec.Values) != dim {
		return fmt.Errorf("%w: got %d, want %d (id %s)", ErrDimensionMismatch, len(rec.Values), dim, rec.ID)
	}
	for i, v := range rec.Values {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return fmt.Errorf("%w: index %d (id %s)", ErrNotFinite, i, rec.ID)
		}
	}
	return nil
}

// SanitizeMetadata restricts metadata values to string | number | bool |
// []string; anything else is coerced to its string form.
func SanitizeMetadata(meta map[string]any) map[string]any {
	if meta == nil {
		return nil
	}
	out := make(map[string]any, len(meta))
	for k, v := range meta {
		switch val := v.(type) {
		case string, bool,
			int, int32, int64,
			float32, float64:
			out[k] = val
		case []string:
			out[k] = val
		default:
			out[k] = fmt.Sprintf("%v", val)
		}
	}
	return out
}

// SanitizeSnippet prepares a debugging text snippet for storage: strips
// control characters, collapses whitespace, caps at 200 chars.
func SanitizeSnippet(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r < 0x20 || r == 0x7f {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(r)
	}
	collapsed := strings.Join(strings.Fields(b.String()), " ")
	if len(collapsed) > 200 {
		collapsed = collapsed[:200]
	}
	return collapsed
}
