package queue

import (
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/loresmith/loresmith/pkg/config"
)

func TestBackoffDelay(t *testing.T) {
	base := 2 * time.Second
	limit := 300 * time.Second

	assert.Equal(t, 2*time.Second, backoffDelay(base, limit, 0))
	assert.Equal(t, 4*time.Second, backoffDelay(base, limit, 1))
	assert.Equal(t, 8*time.Second, backoffDelay(base, limit, 2))
	assert.Equal(t, 256*time.Second, backoffDelay(base, limit, 7))
	// Capped.
	assert.Equal(t, limit, backoffDelay(base, limit, 8))
	assert.Equal(t, limit, backoffDelay(base, limit, 60))
}

func TestTenantHolds(t *testing.T) {
	q := New(nil, config.DefaultQueueConfig(), slog.Default())

	assert.False(t, q.isHeld("acme"))

	q.holdTenant("acme", time.Now().Add(time.Minute))
	assert.True(t, q.isHeld("acme"))
	assert.False(t, q.isHeld("other"))
	assert.Equal(t, []string{"acme"}, q.heldTenants())

	// An earlier hold never shortens an existing one.
	q.holdTenant("acme", time.Now().Add(time.Second))
	assert.True(t, q.isHeld("acme"))

	// Expired holds clear lazily.
	q.holdTenant("expired", time.Now().Add(-time.Second))
	assert.False(t, q.isHeld("expired"))
}

func TestTruncateError(t *testing.T) {
	assert.Equal(t, "", truncateError(nil))
	assert.Equal(t, assert.AnError.Error(), truncateError(assert.AnError))

	long := errString(strings.Repeat("e", 3000))
	assert.Len(t, truncateError(long), 2000)
}

type errString string

func (e errString) Error() string { return string(e) }
