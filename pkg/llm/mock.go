package llm

import (
	"context"
	"fmt"
	"hash/fnv"
	"math"
	"sync"
)

// Mock is a scripted Client for tests. Structured completions are served from
// a FIFO queue of responses; embeddings are deterministic per input text.
type Mock struct {
	mu        sync.Mutex
	responses []mockResponse
	dim       int

	// CompletionCalls records every structured request, in order.
	CompletionCalls []StructuredRequest
	// EmbedCalls records every embeddings batch, in order.
	EmbedCalls [][]string
}

type mockResponse struct {
	content string
	err     error
}

// NewMock creates a mock producing vectors of the given dimension.
func NewMock(dim int) *Mock {
	return &Mock{dim: dim}
}

// QueueResponse appends a completion response to the script.
func (m *Mock) QueueResponse(content string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, mockResponse{content: content})
}

// QueueError appends a completion error to the script.
func (m *Mock) QueueError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, mockResponse{err: err})
}

func (m *Mock) CompleteStructured(_ context.Context, req StructuredRequest) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CompletionCalls = append(m.CompletionCalls, req)
	if len(m.responses) == 0 {
		return "", fmt.Errorf("mock llm: no scripted response for request %d", len(m.CompletionCalls))
	}
	next := m.responses[0]
	m.responses = m.responses[1:]
	if next.err != nil {
		return "", next.err
	}
	return next.content, nil
}

func (m *Mock) Embed(_ context.Context, texts []string) ([][]float32, error) {
	m.mu.Lock()
	m.EmbedCalls = append(m.EmbedCalls, append([]string(nil), texts...))
	m.mu.Unlock()

	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		vectors[i] = DeterministicVector(text, m.dim)
	}
	return vectors, nil
}

// DeterministicVector derives a stable unit-ish vector from text. Same text
// always embeds identically, so similarity assertions are reproducible.
func DeterministicVector(text string, dim int) []float32 {
	h := fnv.New64a()
	h.Write([]byte(text))
	seed := h.Sum64()

	vec := make([]float32, dim)
	for i := range vec {
		seed = seed*6364136223846793005 + 1442695040888963407
		vec[i] = float32(math.Sin(float64(seed%100000) + float64(i)))
	}
	return vec
}
