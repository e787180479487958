package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sequencehub/sequencehub/internal/domain/entitlement"
	"github.com/sequencehub/sequencehub/internal/infrastructure/token"
)

func TestPurgeExpiredDownloadTokensUseCase_Execute(t *testing.T) {
	tokenRepo := newFakeTokenRepo()

	live, err := entitlement.NewDownloadToken(token.Hash("live-token"), 9, 1, 10, "sellers/2/uploads/up_1", 5*time.Minute)
	require.NoError(t, err)
	require.NoError(t, tokenRepo.Create(context.Background(), live))

	stale, err := entitlement.ReconstructDownloadToken(
		2, token.Hash("stale-token"), 9, 1, 10, "sellers/2/uploads/up_1",
		time.Now().Add(-time.Minute), nil, time.Now().Add(-10*time.Minute))
	require.NoError(t, err)
	require.NoError(t, tokenRepo.Create(context.Background(), stale))

	uc := NewPurgeExpiredDownloadTokensUseCase(tokenRepo, testLogger())

	deleted, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	_, err = tokenRepo.GetByTokenHash(context.Background(), token.Hash("stale-token"))
	assert.Error(t, err)
	_, err = tokenRepo.GetByTokenHash(context.Background(), token.Hash("live-token"))
	assert.NoError(t, err)
}

func TestPurgeExpiredDownloadTokensUseCase_Execute_NothingToPurge(t *testing.T) {
	uc := NewPurgeExpiredDownloadTokensUseCase(newFakeTokenRepo(), testLogger())

	deleted, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Zero(t, deleted)
}
