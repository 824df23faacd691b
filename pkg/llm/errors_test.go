package llm

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRetryAfter(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    time.Duration
		ok      bool
	}{
		{"seconds suffix", "Rate limit reached. Please try again in 20s.", 20 * time.Second, true},
		{"fractional seconds", "Please try again in 1.5s", 1500 * time.Millisecond, true},
		{"spelled out", "try again in 5 seconds", 5 * time.Second, true},
		{"milliseconds", "try again in 250ms", 250 * time.Millisecond, true},
		{"retry after form", "retry after 2s", 2 * time.Second, true},
		{"no hint", "rate limit exceeded", 0, false},
		{"unrelated", "model not found", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseRetryAfter(tt.message)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyMessage(t *testing.T) {
	rle := ClassifyMessage("Rate limit reached for gpt-4o-mini. Please try again in 3s.")
	require.NotNil(t, rle)
	assert.Equal(t, 3*time.Second, rle.RetryAfter)

	assert.Nil(t, ClassifyMessage("invalid request: missing field"))
	assert.NotNil(t, ClassifyMessage("Too Many Requests"))
}

func TestRateLimitErrorWrapping(t *testing.T) {
	base := &RateLimitError{Message: "slow down", RetryAfter: 4 * time.Second}
	wrapped := fmt.Errorf("extracting entities: %w", base)

	assert.True(t, IsRateLimit(wrapped))
	hint, ok := RetryAfterHint(wrapped)
	require.True(t, ok)
	assert.Equal(t, 4*time.Second, hint)

	assert.False(t, IsRateLimit(errors.New("boom")))
}
