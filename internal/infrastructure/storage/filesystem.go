package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sequencehub/sequencehub/internal/shared/logger"
)

// FilesystemStorage stores objects as files under a root directory.
// Keys map to relative paths; traversal outside the root is rejected.
type FilesystemStorage struct {
	root   string
	logger logger.Interface
}

func NewFilesystemStorage(root string, log logger.Interface) (*FilesystemStorage, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve storage root: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage root: %w", err)
	}
	return &FilesystemStorage{root: abs, logger: log}, nil
}

func (s *FilesystemStorage) resolve(key string) (string, error) {
	if key == "" {
		return "", fmt.Errorf("empty storage key")
	}
	cleaned := filepath.Clean(filepath.FromSlash(key))
	if strings.HasPrefix(cleaned, "..") || filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("invalid storage key: %s", key)
	}
	return filepath.Join(s.root, cleaned), nil
}

func (s *FilesystemStorage) Put(ctx context.Context, key string, r io.Reader) (ObjectInfo, error) {
	return s.write(key, r, os.O_CREATE|os.O_WRONLY|os.O_TRUNC)
}

func (s *FilesystemStorage) Append(ctx context.Context, key string, r io.Reader) (ObjectInfo, error) {
	return s.write(key, r, os.O_CREATE|os.O_WRONLY|os.O_APPEND)
}

func (s *FilesystemStorage) write(key string, r io.Reader, flags int) (ObjectInfo, error) {
	path, err := s.resolve(key)
	if err != nil {
		return ObjectInfo{}, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return ObjectInfo{}, fmt.Errorf("failed to create object directory: %w", err)
	}

	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return ObjectInfo{}, fmt.Errorf("failed to open object %s: %w", key, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return ObjectInfo{}, fmt.Errorf("failed to write object %s: %w", key, err)
	}

	info, err := f.Stat()
	if err != nil {
		return ObjectInfo{}, fmt.Errorf("failed to stat object %s: %w", key, err)
	}

	return ObjectInfo{Key: key, SizeBytes: info.Size()}, nil
}

func (s *FilesystemStorage) Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error) {
	path, err := s.resolve(key)
	if err != nil {
		return nil, ObjectInfo{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ObjectInfo{}, fmt.Errorf("object not found: %s", key)
		}
		return nil, ObjectInfo{}, fmt.Errorf("failed to open object %s: %w", key, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, ObjectInfo{}, fmt.Errorf("failed to stat object %s: %w", key, err)
	}

	return f, ObjectInfo{Key: key, SizeBytes: info.Size()}, nil
}

func (s *FilesystemStorage) Delete(ctx context.Context, key string) error {
	path, err := s.resolve(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete object %s: %w", key, err)
	}
	return nil
}

func (s *FilesystemStorage) Stat(ctx context.Context, key string) (ObjectInfo, error) {
	path, err := s.resolve(key)
	if err != nil {
		return ObjectInfo{}, err
	}
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return ObjectInfo{}, fmt.Errorf("object not found: %s", key)
		}
		return ObjectInfo{}, fmt.Errorf("failed to stat object %s: %w", key, err)
	}
	return ObjectInfo{Key: key, SizeBytes: info.Size()}, nil
}
