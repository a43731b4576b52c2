package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

type localDisk struct {
	root    string
	baseURL string
}

func NewLocalDisk(root, baseURL string) (Disk, error) {
	if root == "" {
		root = "storage"
	}
	if !filepath.IsAbs(root) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("storage/local: %w", err)
		}
		root = filepath.Join(cwd, root)
	}

	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("storage/local: mkdir root: %w", err)
	}

	return &localDisk{
		root:    root,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// abs resolves key inside root, refusing keys with a ".." segment.
func (d *localDisk) abs(key string) (string, error) {
	for _, seg := range strings.Split(filepath.ToSlash(key), "/") {
		if seg == ".." {
			return "", ErrInvalidKey
		}
	}
	clean := path.Clean("/" + key)
	if clean == "/" {
		return "", ErrInvalidKey
	}
	return filepath.Join(d.root, filepath.FromSlash(strings.TrimPrefix(clean, "/"))), nil
}

func (d *localDisk) Put(ctx context.Context, key string, content []byte, mimeType string) (string, error) {
	full, err := d.abs(key)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("storage/local: mkdir: %w", err)
	}
	if err := os.WriteFile(full, content, 0o644); err != nil {
		return "", fmt.Errorf("storage/local: write %s: %w", key, err)
	}
	return d.URL(key), nil
}

func (d *localDisk) Get(ctx context.Context, key string) ([]byte, error) {
	full, err := d.abs(key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(full)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("storage/local: get %s: %w", key, err)
	}
	return data, nil
}

func (d *localDisk) URL(key string) string {
	return d.baseURL + "/" + strings.TrimLeft(key, "/")
}
