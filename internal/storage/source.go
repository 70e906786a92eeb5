package storage

import (
	"context"
	"fmt"
)

// Source selects and configures an AssetStore.
type Source struct {
	Kind            string // "local", "s3" or "gcs"
	Dir             string // local only
	Bucket          string // s3 and gcs
	CredentialsFile string // gcs only, optional
}

// Open builds the AssetStore described by src.
func Open(ctx context.Context, src Source) (AssetStore, error) {
	switch src.Kind {
	case "", "local":
		return NewLocalStorage(src.Dir), nil
	case "s3":
		return NewS3Storage(ctx, src.Bucket)
	case "gcs":
		return NewGCSStorage(ctx, src.Bucket, src.CredentialsFile)
	default:
		return nil, fmt.Errorf("storage: unknown source %q", src.Kind)
	}
}
