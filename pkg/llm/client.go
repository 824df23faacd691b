// Package llm wraps the external chat-completion and embeddings provider.
//
// The core consumes the provider through the Client interface: one
// structured-output chat call and one embeddings call. Rate-limit responses
// are surfaced as *RateLimitError carrying the provider's retry-after hint.
package llm

import (
	"context"
	"encoding/json"
)

// StructuredRequest is a chat-completion call with a JSON-schema-validated
// response contract.
type StructuredRequest struct {
	System     string
	User       string
	SchemaName string
	Schema     json.RawMessage
	MaxTokens  int
}

// Client is the LLM provider port.
type Client interface {
	// CompleteStructured runs a chat completion constrained by the request
	// schema and returns the raw JSON content.
	CompleteStructured(ctx context.Context, req StructuredRequest) (string, error)

	// Embed converts texts into fixed-dimension vectors, one per input, in
	// input order.
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}
