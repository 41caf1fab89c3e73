package model

import (
	"context"
	"io"
)

// Storage is the blob store for uploaded images, addressed by a reference
// path independent of the relational schema.
type Storage interface {
	Upload(ctx context.Context, key string, reader io.Reader, contentType string) error
	Download(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
