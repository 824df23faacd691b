package vector

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"
)

// Memory is an in-memory Index used by tests and local development. Scores
// are cosine similarity, matching the Qdrant collection configuration.
type Memory struct {
	dim     int
	mu      sync.RWMutex
	records map[string]Record
}

// NewMemory creates an empty in-memory index with the given dimension.
func NewMemory(dim int) *Memory {
	return &Memory{dim: dim, records: make(map[string]Record)}
}

// Upsert validates and stores records, replacing by id.
func (m *Memory) Upsert(_ context.Context, records []Record) error {
	for _, rec := range records {
		if err := Validate(rec, m.dim); err != nil {
			return err
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, rec := range records {
		stored := Record{
			ID:       rec.ID,
			Values:   append([]float32(nil), rec.Values...),
			Metadata: SanitizeMetadata(rec.Metadata),
		}
		m.records[rec.ID] = stored
	}
	return nil
}

// Query returns the topK records passing the filter, by cosine similarity.
func (m *Memory) Query(_ context.Context, q Query) ([]Match, error) {
	if len(q.Vector) != m.dim {
		return nil, fmt.Errorf("%w: query has %d, index wants %d", ErrDimensionMismatch, len(q.Vector), m.dim)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	var matches []Match
	for _, rec := range m.records {
		if !matchesFilter(rec.Metadata, q.Filter) {
			continue
		}
		match := Match{ID: rec.ID, Score: cosine(q.Vector, rec.Values)}
		if q.WithMetadata {
			meta := make(map[string]any, len(rec.Metadata))
			for k, v := range rec.Metadata {
				meta[k] = v
			}
			match.Metadata = meta
		}
		matches = append(matches, match)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].ID < matches[j].ID
	})
	if q.TopK > 0 && len(matches) > q.TopK {
		matches = matches[:q.TopK]
	}
	return matches, nil
}

// DeleteByIDs removes the given vectors.
func (m *Memory) DeleteByIDs(_ context.Context, ids []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, id := range ids {
		delete(m.records, id)
	}
	return nil
}

// Len returns the number of stored records. Test helper.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}

// Get returns a stored record by id. Test helper.
func (m *Memory) Get(id string) (Record, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.records[id]
	return rec, ok
}

func matchesFilter(meta map[string]any, filter map[string]string) bool {
	for field, want := range filter {
		got, ok := meta[field]
		if !ok {
			return false
		}
		s, ok := got.(string)
		if !ok || s != want {
			return false
		}
	}
	return true
}

func cosine(a, b []float32) float32 {
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return float32(dot / (math.Sqrt(na) * math.Sqrt(nb)))
}
