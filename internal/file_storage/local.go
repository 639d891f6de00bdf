package filestorage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// LocalStorage keeps uploaded bytes in a flat directory on disk.
type LocalStorage struct {
	dir string
}

func NewLocalStorage(dir string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStorage{dir: dir}, nil
}

func (l *LocalStorage) path(storageName string) string {
	// storage names are generated server side, Base is a backstop
	return filepath.Join(l.dir, filepath.Base(storageName))
}

func (l *LocalStorage) Save(ctx context.Context, storageName string, src io.Reader) (int64, error) {
	dst, err := os.Create(l.path(storageName))
	if err != nil {
		return 0, err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return 0, err
	}

	// Record the size read back from the stored file.
	info, err := os.Stat(l.path(storageName))
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

func (l *LocalStorage) Open(ctx context.Context, storageName string) (io.ReadCloser, int64, error) {
	f, err := os.Open(l.path(storageName))
	if err != nil {
		return nil, 0, err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, err
	}

	return f, info.Size(), nil
}

func (l *LocalStorage) Remove(ctx context.Context, storageName string) error {
	err := os.Remove(l.path(storageName))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
