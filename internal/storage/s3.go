package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// s3API is the subset of *s3.Client used here.
type s3API interface {
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Storage serves assets from an S3 bucket.
type S3Storage struct {
	client s3API
	bucket string
}

var _ AssetStore = (*S3Storage)(nil)

// NewS3Storage builds a client from the default AWS config chain
// (env vars, shared config, instance role).
func NewS3Storage(ctx context.Context, bucket string) (*S3Storage, error) {
	if bucket == "" {
		return nil, errors.New("storage: s3 bucket is required")
	}
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("storage: load aws config: %w", err)
	}
	return &S3Storage{client: s3.NewFromConfig(cfg), bucket: bucket}, nil
}

func (s *S3Storage) Open(ctx context.Context, key string) (*Asset, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("storage: s3 get %q: %w", key, err)
	}

	a := &Asset{ReadCloser: out.Body, Size: -1}
	if out.ContentType != nil {
		a.ContentType = *out.ContentType
	}
	if out.ContentLength != nil {
		a.Size = *out.ContentLength
	}
	if out.LastModified != nil {
		a.ModTime = *out.LastModified
	}
	return a, nil
}
