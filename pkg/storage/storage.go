package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/kurin/blazer/b2"
)

// FileStore antarmuka penyimpanan file lampiran tugas
type FileStore interface {
	Upload(ctx context.Context, key string, r io.Reader) (string, error)
	Delete(ctx context.Context, key string) error
}

// B2Storage penyimpanan file di bucket Backblaze B2
type B2Storage struct {
	client *b2.Client
	bucket *b2.Bucket
}

// NewB2Storage membuka koneksi ke bucket B2
func NewB2Storage(ctx context.Context, accountID, appKey, bucketName string) (*B2Storage, error) {
	client, err := b2.NewClient(ctx, accountID, appKey)
	if err != nil {
		return nil, fmt.Errorf("gagal membuat klien b2: %w", err)
	}

	bucket, err := client.Bucket(ctx, bucketName)
	if err != nil {
		return nil, fmt.Errorf("gagal mengambil bucket: %w", err)
	}

	return &B2Storage{client: client, bucket: bucket}, nil
}

// Upload mengunggah file dan mengembalikan URL publiknya
func (s *B2Storage) Upload(ctx context.Context, key string, r io.Reader) (string, error) {
	obj := s.bucket.Object(key)
	w := obj.NewWriter(ctx)

	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return "", fmt.Errorf("gagal menulis objek: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("gagal menutup writer: %w", err)
	}

	return fmt.Sprintf("%s/file/%s/%s", s.bucket.BaseURL(), s.bucket.Name(), key), nil
}

// Delete menghapus file dari bucket
func (s *B2Storage) Delete(ctx context.Context, key string) error {
	return s.bucket.Object(key).Delete(ctx)
}
