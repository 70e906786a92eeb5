// Package storage reads static downloadable assets such as the resume PDF.
// The backing medium is a local directory, an S3 bucket or a GCS bucket.
package storage

import (
	"context"
	"errors"
	"io"
	"time"
)

// ErrNotFound is returned when the requested asset does not exist.
var ErrNotFound = errors.New("asset not found")

// Asset is an open asset. Callers must Close it.
type Asset struct {
	io.ReadCloser
	ContentType string
	Size        int64 // -1 when unknown
	ModTime     time.Time
}

// AssetStore opens assets by key.
type AssetStore interface {
	// Open returns the asset stored under key, or ErrNotFound.
	Open(ctx context.Context, key string) (*Asset, error)
}
