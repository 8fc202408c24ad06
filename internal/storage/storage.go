package storage

import (
	"context"
	"io"
)

// ObjectStorage is the media blob store. Keys are opaque; URLs are what the
// API hands back to clients.
type ObjectStorage interface {
	EnsureBucket(ctx context.Context) error
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Delete(ctx context.Context, key string) error
	URL(key string) string
}
