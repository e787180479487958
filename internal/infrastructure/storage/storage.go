package storage

import (
	"context"
	"io"
)

// ObjectInfo describes a stored object.
type ObjectInfo struct {
	Key       string
	SizeBytes int64
}

// Storage abstracts the blob store holding packaged sequence files.
type Storage interface {
	// Put writes the object under key, replacing any existing content.
	Put(ctx context.Context, key string, r io.Reader) (ObjectInfo, error)
	// Append appends to the object under key, creating it if absent.
	Append(ctx context.Context, key string, r io.Reader) (ObjectInfo, error)
	// Get opens the object for reading. Caller closes the reader.
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)
	// Delete removes the object. Deleting a missing object is not an error.
	Delete(ctx context.Context, key string) error
	// Stat returns object metadata without opening it.
	Stat(ctx context.Context, key string) (ObjectInfo, error)
}
