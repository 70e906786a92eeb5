package storage

import (
	"context"
	"errors"
	"fmt"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// GCSStorage serves assets from a Google Cloud Storage bucket.
type GCSStorage struct {
	client *gcs.Client
	bucket string
}

var _ AssetStore = (*GCSStorage)(nil)

// NewGCSStorage creates a GCS client. An empty credentialsFile uses
// application default credentials.
func NewGCSStorage(ctx context.Context, bucket, credentialsFile string) (*GCSStorage, error) {
	if bucket == "" {
		return nil, errors.New("storage: gcs bucket is required")
	}
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	client, err := gcs.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("storage: gcs client: %w", err)
	}
	return &GCSStorage{client: client, bucket: bucket}, nil
}

func (s *GCSStorage) Open(ctx context.Context, key string) (*Asset, error) {
	rc, err := s.client.Bucket(s.bucket).Object(key).NewReader(ctx)
	if errors.Is(err, gcs.ErrObjectNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("storage: gcs object %q: %w", key, err)
	}
	return &Asset{
		ReadCloser:  rc,
		ContentType: rc.Attrs.ContentType,
		Size:        rc.Attrs.Size,
		ModTime:     rc.Attrs.LastModified,
	}, nil
}

// Close releases the underlying client.
func (s *GCSStorage) Close() error {
	return s.client.Close()
}
