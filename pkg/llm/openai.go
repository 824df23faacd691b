package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"
)

// OpenAIOptions configures NewOpenAIClient.
type OpenAIOptions struct {
	BaseURL        string
	APIKey         string
	ChatModel      string
	EmbeddingModel string
	EmbeddingDim   int
	// RequestsPerMinute limits outbound calls client-side; zero disables
	// the limiter.
	RequestsPerMinute int
}

// OpenAIClient implements Client against an OpenAI-compatible API.
type OpenAIClient struct {
	api            *openai.Client
	chatModel      string
	embeddingModel string
	embeddingDim   int
	limiter        *rate.Limiter
	logger         *slog.Logger
}

// NewOpenAIClient builds a provider client. BaseURL may point at any
// OpenAI-compatible endpoint.
func NewOpenAIClient(opts OpenAIOptions, logger *slog.Logger) *OpenAIClient {
	cfg := openai.DefaultConfig(opts.APIKey)
	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}

	var limiter *rate.Limiter
	if opts.RequestsPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Limit(float64(opts.RequestsPerMinute)/60.0), opts.RequestsPerMinute)
	}

	return &OpenAIClient{
		api:            openai.NewClientWithConfig(cfg),
		chatModel:      opts.ChatModel,
		embeddingModel: opts.EmbeddingModel,
		embeddingDim:   opts.EmbeddingDim,
		limiter:        limiter,
		logger:         logger.With("component", "llm"),
	}
}

type rawSchema struct {
	raw json.RawMessage
}

func (s rawSchema) MarshalJSON() ([]byte, error) {
	return s.raw, nil
}

// CompleteStructured runs a schema-constrained chat completion.
func (c *OpenAIClient) CompleteStructured(ctx context.Context, req StructuredRequest) (string, error) {
	if err := c.wait(ctx); err != nil {
		return "", err
	}

	messages := []openai.ChatCompletionMessage{}
	if req.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.System,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.User,
	})

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     c.chatModel,
		Messages:  messages,
		MaxTokens: req.MaxTokens,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   req.SchemaName,
				Schema: rawSchema{raw: req.Schema},
				Strict: true,
			},
		},
	})
	if err != nil {
		return "", c.classify(err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("llm: empty completion response")
	}
	return resp.Choices[0].Message.Content, nil
}

// Embed converts texts into vectors in input order.
func (c *OpenAIClient) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	resp, err := c.api.CreateEmbeddings(ctx, openai.EmbeddingRequestStrings{
		Input:      texts,
		Model:      openai.EmbeddingModel(c.embeddingModel),
		Dimensions: c.embeddingDim,
	})
	if err != nil {
		return nil, c.classify(err)
	}
	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf("llm: got %d embeddings for %d inputs", len(resp.Data), len(texts))
	}

	vectors := make([][]float32, len(texts))
	for _, item := range resp.Data {
		if item.Index < 0 || item.Index >= len(texts) {
			return nil, fmt.Errorf("llm: embedding index %d out of range", item.Index)
		}
		vectors[item.Index] = item.Embedding
	}
	return vectors, nil
}

func (c *OpenAIClient) wait(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	return c.limiter.Wait(ctx)
}

// classify maps provider errors onto the package error taxonomy.
func (c *OpenAIClient) classify(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.HTTPStatusCode == http.StatusTooManyRequests {
			rle := &RateLimitError{Message: apiErr.Message}
			if hint, ok := ParseRetryAfter(apiErr.Message); ok {
				rle.RetryAfter = hint
			}
			c.logger.Warn("provider rate limit", "retry_after", rle.RetryAfter)
			return rle
		}
		if rle := ClassifyMessage(apiErr.Message); rle != nil {
			c.logger.Warn("provider rate limit", "retry_after", rle.RetryAfter)
			return rle
		}
		return fmt.Errorf("llm: provider error (status %d): %w", apiErr.HTTPStatusCode, err)
	}
	if rle := ClassifyMessage(err.Error()); rle != nil {
		return rle
	}
	return fmt.Errorf("llm: %w", err)
}
