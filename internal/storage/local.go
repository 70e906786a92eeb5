package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"mime"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage serves assets from a directory on disk.
type LocalStorage struct {
	baseDir string
}

// NewLocalStorage creates a LocalStorage rooted at baseDir.
func NewLocalStorage(baseDir string) *LocalStorage {
	return &LocalStorage{baseDir: baseDir}
}

var _ AssetStore = (*LocalStorage)(nil)

func (s *LocalStorage) Open(_ context.Context, key string) (*Asset, error) {
	if key == "" || strings.Contains(key, "..") || strings.ContainsAny(key, `\`) || filepath.IsAbs(key) {
		return nil, ErrNotFound
	}

	absDir, err := filepath.Abs(s.baseDir)
	if err != nil {
		return nil, fmt.Errorf("storage: abs: %w", err)
	}
	dest := filepath.Join(absDir, filepath.FromSlash(key))
	if !strings.HasPrefix(dest, absDir+string(filepath.Separator)) {
		return nil, ErrNotFound
	}

	f, err := os.Open(dest)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("storage: open: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("storage: stat: %w", err)
	}
	if info.IsDir() {
		f.Close()
		return nil, ErrNotFound
	}

	return &Asset{
		ReadCloser:  f,
		ContentType: mime.TypeByExtension(filepath.Ext(dest)),
		Size:        info.Size(),
		ModTime:     info.ModTime(),
	}, nil
}
