package filestorage

import (
	"context"
	"io"

	"github.com/Sovanra/DesignDeck/internal/config"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioStorage keeps uploaded bytes in a single object storage bucket.
type MinioStorage struct {
	client *minio.Client
	bucket string
}

func NewMinioStorage(cfg config.MinioConfig) (*MinioStorage, error) {
	client, err := minio.New(cfg.ENDPOINT, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.ACCESS_KEY, cfg.SECRET_KEY, ""),
		Secure: cfg.USE_SSL,
	})
	if err != nil {
		return nil, err
	}

	ms := &MinioStorage{client: client, bucket: cfg.BUCKET}
	if err := ms.createBucketIfNotExists(context.Background()); err != nil {
		return nil, err
	}

	return ms, nil
}

func (m *MinioStorage) createBucketIfNotExists(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return err
	}

	if !exists {
		err = m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{})
		if err != nil {
			return err
		}
	}

	return nil
}

func (m *MinioStorage) Save(ctx context.Context, storageName string, src io.Reader) (int64, error) {
	// size unknown up front, minio buffers with -1
	info, err := m.client.PutObject(ctx, m.bucket, storageName, src, -1, minio.PutObjectOptions{})
	if err != nil {
		return 0, err
	}
	return info.Size, nil
}

func (m *MinioStorage) Open(ctx context.Context, storageName string) (io.ReadCloser, int64, error) {
	obj, err := m.client.GetObject(ctx, m.bucket, storageName, minio.GetObjectOptions{})
	if err != nil {
		return nil, 0, err
	}

	info, err := obj.Stat()
	if err != nil {
		obj.Close()
		return nil, 0, err
	}

	return obj, info.Size, nil
}

func (m *MinioStorage) Remove(ctx context.Context, storageName string) error {
	return m.client.RemoveObject(ctx, m.bucket, storageName, minio.RemoveObjectOptions{})
}
