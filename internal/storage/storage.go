// Package storage writes uploaded images to an S3-compatible bucket and
// builds the public URLs content rows point at.
package storage

import (
	"context"
	"io"
)

// Store is an object store holding publicly readable files.
type Store interface {
	Upload(ctx context.Context, path, contentType string, body io.Reader, size int64) error
	PublicURL(path string) string
}
