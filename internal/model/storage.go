package model

import (
	"context"
	"io"
)

// Storage is the media host holding image objects.
type Storage interface {
	Upload(ctx context.Context, key, contentType string, reader io.Reader, size int64) error
	Download(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
	URL(key string) string
	Ping(ctx context.Context) error
}
