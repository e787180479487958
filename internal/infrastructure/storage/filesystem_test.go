package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sequencehub/sequencehub/internal/shared/logger"
)

func newTestStorage(t *testing.T) *FilesystemStorage {
	t.Helper()
	s, err := NewFilesystemStorage(t.TempDir(), logger.NewLogger())
	require.NoError(t, err)
	return s
}

func TestFilesystemStorage_PutAndGet(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	info, err := s.Put(ctx, "products/prod_abc/v1.zip", strings.NewReader("sequence data"))
	require.NoError(t, err)
	assert.Equal(t, int64(13), info.SizeBytes)

	r, got, err := s.Get(ctx, "products/prod_abc/v1.zip")
	require.NoError(t, err)
	defer r.Close()

	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "sequence data", string(data))
	assert.Equal(t, int64(13), got.SizeBytes)
}

func TestFilesystemStorage_Append(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	_, err := s.Append(ctx, "uploads/up_1", strings.NewReader("chunk1"))
	require.NoError(t, err)
	info, err := s.Append(ctx, "uploads/up_1", strings.NewReader("chunk2"))
	require.NoError(t, err)
	assert.Equal(t, int64(12), info.SizeBytes)

	r, _, err := s.Get(ctx, "uploads/up_1")
	require.NoError(t, err)
	defer r.Close()
	data, _ := io.ReadAll(r)
	assert.Equal(t, "chunk1chunk2", string(data))
}

func TestFilesystemStorage_RejectsTraversal(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	_, err := s.Put(ctx, "../escape.zip", strings.NewReader("x"))
	assert.Error(t, err)

	_, err = s.Put(ctx, "/absolute.zip", strings.NewReader("x"))
	assert.Error(t, err)

	_, _, err = s.Get(ctx, "..")
	assert.Error(t, err)
}

func TestFilesystemStorage_DeleteMissingIsNoError(t *testing.T) {
	s := newTestStorage(t)
	assert.NoError(t, s.Delete(context.Background(), "does/not/exist"))
}

func TestFilesystemStorage_GetMissing(t *testing.T) {
	s := newTestStorage(t)
	_, _, err := s.Get(context.Background(), "missing.zip")
	assert.Error(t, err)
}
