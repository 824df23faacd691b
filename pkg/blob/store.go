// Package blob provides the object storage port used by the ingestion
// pipeline, with an S3 implementation and an in-memory one for tests.
package blob

import (
	"context"
	"errors"
	"fmt"
	"path"
	"time"
)

// ErrNotFound is returned when a key does not exist in the store.
var ErrNotFound = errors.New("blob not found")

// ObjectInfo describes one stored object.
type ObjectInfo struct {
	Key          string
	Size         int64
	ContentType  string
	LastModified time.Time
}

// Store is the blob storage port. All writes are idempotent; callers may
// retry any operation.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Exists(ctx context.Context, key string) (bool, error)
	Delete(ctx context.Context, key string) error
	// List returns objects whose key starts with prefix.
	List(ctx context.Context, prefix string) ([]ObjectInfo, error)
	ContentType(ctx context.Context, key string) (string, error)
}

// Key layout: staging/<tenant>/<file_name> during intake,
// library/<tenant>/<file_name> after promotion, and
// library/<tenant>/manifests/<file_name>.manifest.json for split files.

// StagingKey returns the intake key for a tenant's file.
func StagingKey(tenant, fileName string) string {
	return path.Join("staging", tenant, fileName)
}

// LibraryKey returns the post-promotion key for a tenant's file.
func LibraryKey(tenant, fileName string) string {
	return path.Join("library", tenant, fileName)
}

// ManifestKey returns the shard manifest key for a split file.
func ManifestKey(tenant, fileName string) string {
	return path.Join("library", tenant, "manifests", fileName+".manifest.json")
}

// TenantPrefix returns the prefix selecting every object of one tenant under
// the given root segment ("staging" or "library").
func TenantPrefix(root, tenant string) string {
	return fmt.Sprintf("%s/%s/", root, tenant)
}
