package upload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOpenSession(t *testing.T, declaredSize int64) *Session {
	t.Helper()
	s, err := NewSession("up_test", 1, 2, "show.zip", "uploads/up_test", declaredSize)
	require.NoError(t, err)
	return s
}

func TestSession_AppendChunk(t *testing.T) {
	s := newOpenSession(t, 100)

	require.NoError(t, s.AppendChunk(60))
	assert.Equal(t, int64(60), s.ReceivedBytes())

	require.NoError(t, s.AppendChunk(40))
	assert.Equal(t, int64(100), s.ReceivedBytes())
}

func TestSession_AppendChunk_ExceedsDeclaredSize(t *testing.T) {
	s := newOpenSession(t, 100)

	require.NoError(t, s.AppendChunk(90))
	err := s.AppendChunk(20)
	assert.ErrorIs(t, err, ErrSizeExceeded)
	assert.Equal(t, int64(90), s.ReceivedBytes())
}

func TestSession_Complete(t *testing.T) {
	s := newOpenSession(t, 50)

	err := s.Complete()
	assert.ErrorIs(t, err, ErrIncompleteUpload)

	require.NoError(t, s.AppendChunk(50))
	require.NoError(t, s.Complete())
	assert.Equal(t, StatusCompleted, s.Status())

	assert.ErrorIs(t, s.AppendChunk(1), ErrSessionNotOpen)
	assert.ErrorIs(t, s.Complete(), ErrSessionNotOpen)
}

func TestSession_Abort(t *testing.T) {
	s := newOpenSession(t, 50)

	require.NoError(t, s.Abort())
	assert.Equal(t, StatusAborted, s.Status())
	assert.ErrorIs(t, s.AppendChunk(10), ErrSessionNotOpen)
}

func TestNewSession_Validation(t *testing.T) {
	_, err := NewSession("up_x", 0, 2, "a.zip", "k", 10)
	assert.Error(t, err)

	_, err = NewSession("up_x", 1, 2, "", "k", 10)
	assert.Error(t, err)

	_, err = NewSession("up_x", 1, 2, "a.zip", "k", 0)
	assert.Error(t, err)
}
