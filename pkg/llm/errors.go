package llm

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// RateLimitError is a provider rate-limit response. RetryAfter is zero when
// the provider gave no hint.
type RateLimitError struct {
	Message    string
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return "rate limited (retry after " + e.RetryAfter.String() + "): " + e.Message
	}
	return "rate limited: " + e.Message
}

// IsRateLimit reports whether err is (or wraps) a rate-limit error.
func IsRateLimit(err error) bool {
	var rle *RateLimitError
	return errors.As(err, &rle)
}

// RetryAfterHint extracts the provider retry-after hint, if any.
func RetryAfterHint(err error) (time.Duration, bool) {
	var rle *RateLimitError
	if errors.As(err, &rle) && rle.RetryAfter > 0 {
		return rle.RetryAfter, true
	}
	return 0, false
}

// retryAfterPattern matches hints like "try again in 1.5s", "try again in
// 20 seconds", "retry after 2s".
var retryAfterPattern = regexp.MustCompile(`(?i)(?:try again|retry)(?: after)?(?: in)?\s+([0-9]+(?:\.[0-9]+)?)\s*(ms|s|sec|second|seconds)?`)

// ParseRetryAfter extracts a retry-after hint from provider message text.
func ParseRetryAfter(message string) (time.Duration, bool) {
	m := retryAfterPattern.FindStringSubmatch(message)
	if m == nil {
		return 0, false
	}
	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	unit := strings.ToLower(m[2])
	switch unit {
	case "ms":
		return time.Duration(value * float64(time.Millisecond)), true
	default:
		return time.Duration(value * float64(time.Second)), true
	}
}

// rateLimitTextPatterns classify provider messages that arrive without a 429
// status code.
var rateLimitTextPatterns = []string{
	"rate limit",
	"rate_limit",
	"too many requests",
	"quota exceeded",
}

// ClassifyMessage converts a provider error message into a RateLimitError
// when it matches known rate-limit phrasing; otherwise returns nil.
func ClassifyMessage(message string) *RateLimitError {
	lower := strings.ToLower(message)
	for _, pattern := range rateLimitTextPatterns {
		if strings.Contains(lower, pattern) {
			rle := &RateLimitError{Message: message}
			if hint, ok := ParseRetryAfter(message); ok {
				rle.RetryAfter = hint
			}
			return rle
		}
	}
	return nil
}
