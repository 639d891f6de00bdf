package filestorage

import (
	"context"
	"io"
)

// Storage is the flat content directory for uploaded file bytes,
// addressed by generated storage name.
type Storage interface {
	// Save writes src under storageName and returns the stored byte count.
	Save(ctx context.Context, storageName string, src io.Reader) (int64, error)

	// Open streams the stored bytes back together with their size.
	Open(ctx context.Context, storageName string) (io.ReadCloser, int64, error)

	// Remove deletes the stored bytes. A missing object is not an error.
	Remove(ctx context.Context, storageName string) error
}
