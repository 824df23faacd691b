package services

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loresmith/loresmith/ent/notification"
	testdb "github.com/loresmith/loresmith/test/database"
)

func TestNotificationService_NotifyAndList(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewNotificationService(client.Client, slog.Default())
	ctx := context.Background()

	_, err := svc.Notify(ctx, NotifyInput{
		Tenant:    "acme",
		Kind:      notification.KindFileUploaded,
		SubjectID: "staging/acme/a.txt",
		Message:   "a.txt uploaded",
	})
	require.NoError(t, err)

	second, err := svc.Notify(ctx, NotifyInput{
		Tenant:    "acme",
		Kind:      notification.KindFileProcessed,
		SubjectID: "staging/acme/a.txt",
		Message:   "a.txt processed",
		Metadata:  map[string]string{"file_key": "staging/acme/a.txt"},
	})
	require.NoError(t, err)

	rows, err := svc.List(ctx, "acme", false, 0)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.False(t, rows[0].Read)

	other, err := svc.List(ctx, "rival", false, 0)
	require.NoError(t, err)
	assert.Empty(t, other, "notifications are tenant scoped")

	require.NoError(t, svc.MarkRead(ctx, "acme", second.ID))

	unread, err := svc.List(ctx, "acme", true, 0)
	require.NoError(t, err)
	require.Len(t, unread, 1)
	assert.Equal(t, "a.txt uploaded", unread[0].Message)
}

func TestNotificationService_Validation(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewNotificationService(client.Client, slog.Default())
	ctx := context.Background()

	_, err := svc.Notify(ctx, NotifyInput{Kind: notification.KindFileUploaded, Message: "m"})
	assert.ErrorContains(t, err, "tenant is required")

	_, err = svc.Notify(ctx, NotifyInput{Tenant: "acme", Kind: notification.KindFileUploaded})
	assert.ErrorContains(t, err, "message is required")
}

func TestNotificationService_MarkReadCrossTenant(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewNotificationService(client.Client, slog.Default())
	ctx := context.Background()

	row, err := svc.Notify(ctx, NotifyInput{
		Tenant:  "acme",
		Kind:    notification.KindFileUploaded,
		Message: "mine",
	})
	require.NoError(t, err)

	err = svc.MarkRead(ctx, "rival", row.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
