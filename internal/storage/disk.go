// Package storage persists uploaded files and returns URLs they can be fetched from.
//
// Two drivers are available:
//   - "local" stores under STORAGE_LOCAL_ROOT and is served by Handler.
//   - "s3" stores in an S3-compatible bucket (AWS S3, MinIO, R2).
package storage

import (
	"context"
	"errors"
	"fmt"

	"uniformshop-be/internal/config"
)

var (
	ErrNotFound   = errors.New("storage: object not found")
	ErrInvalidKey = errors.New("storage: invalid key")
)

type Disk interface {
	// Put stores content under key and returns its retrievable URL.
	Put(ctx context.Context, key string, content []byte, mimeType string) (string, error)
	Get(ctx context.Context, key string) ([]byte, error)
	URL(key string) string
}

// New builds the disk selected by STORAGE_DISK.
func New(ctx context.Context, cfg *config.Config) (Disk, error) {
	switch cfg.StorageDisk {
	case "", "local":
		return NewLocalDisk(cfg.StorageLocalRoot, cfg.StorageURL)
	case "s3":
		return NewS3Disk(ctx, S3Options{
			Bucket:   cfg.S3Bucket,
			Region:   cfg.S3Region,
			Key:      cfg.S3Key,
			Secret:   cfg.S3Secret,
			Endpoint: cfg.S3Endpoint,
			BaseURL:  cfg.S3URL,
		})
	}
	return nil, fmt.Errorf("storage: unknown disk %q", cfg.StorageDisk)
}
