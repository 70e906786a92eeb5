package storage

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_Open(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "resume.pdf"), []byte("%PDF-1.4 test"), 0o644))

	a, err := NewLocalStorage(dir).Open(context.Background(), "resume.pdf")
	require.NoError(t, err)
	defer a.Close()

	body, err := io.ReadAll(a)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 test", string(body))
	assert.Equal(t, "application/pdf", a.ContentType)
	assert.Equal(t, int64(len("%PDF-1.4 test")), a.Size)
}

func TestLocalStorage_Missing(t *testing.T) {
	_, err := NewLocalStorage(t.TempDir()).Open(context.Background(), "resume.pdf")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocalStorage_Traversal(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "secret.pdf"), []byte("secret"), 0o644))
	assets := filepath.Join(root, "assets")
	require.NoError(t, os.MkdirAll(assets, 0o755))

	s := NewLocalStorage(assets)
	for _, key := range []string{"../secret.pdf", "..", "", "/etc/passwd", `..\secret.pdf`} {
		_, err := s.Open(context.Background(), key)
		assert.ErrorIs(t, err, ErrNotFound, "key %q", key)
	}
}

func TestLocalStorage_Directory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))

	_, err := NewLocalStorage(dir).Open(context.Background(), "sub")
	assert.ErrorIs(t, err, ErrNotFound)
}

type fakeS3 struct {
	objects map[string]string
	err     error
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	body, ok := f.objects[aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	modified := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	return &s3.GetObjectOutput{
		Body:          io.NopCloser(strings.NewReader(body)),
		ContentType:   aws.String("application/pdf"),
		ContentLength: aws.Int64(int64(len(body))),
		LastModified:  &modified,
	}, nil
}

func TestS3Storage_Open(t *testing.T) {
	s := &S3Storage{client: &fakeS3{objects: map[string]string{"resume.pdf": "pdf-bytes"}}, bucket: "b"}

	a, err := s.Open(context.Background(), "resume.pdf")
	require.NoError(t, err)
	defer a.Close()
	body, _ := io.ReadAll(a)
	assert.Equal(t, "pdf-bytes", string(body))
	assert.Equal(t, int64(9), a.Size)
	assert.Equal(t, "application/pdf", a.ContentType)
}

func TestS3Storage_NoSuchKey(t *testing.T) {
	s := &S3Storage{client: &fakeS3{objects: map[string]string{}}, bucket: "b"}

	_, err := s.Open(context.Background(), "resume.pdf")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestS3Storage_OtherError(t *testing.T) {
	s := &S3Storage{client: &fakeS3{err: errors.New("throttled")}, bucket: "b"}

	_, err := s.Open(context.Background(), "resume.pdf")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestOpen_SelectsSource(t *testing.T) {
	store, err := Open(context.Background(), Source{Kind: "local", Dir: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &LocalStorage{}, store)

	_, err = Open(context.Background(), Source{Kind: "ftp"})
	assert.Error(t, err)

	_, err = Open(context.Background(), Source{Kind: "s3"})
	assert.Error(t, err, "s3 without bucket must fail")
}
