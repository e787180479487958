package usecases

import (
	"context"
	"time"

	"github.com/sequencehub/sequencehub/internal/domain/entitlement"
	"github.com/sequencehub/sequencehub/internal/shared/logger"
)

// PurgeExpiredDownloadTokensUseCase deletes download tokens whose expiry has
// passed. Consumed tokens stay until they expire, so a replayed link keeps
// failing with an already-used error instead of a not-found.
type PurgeExpiredDownloadTokensUseCase struct {
	tokenRepo entitlement.DownloadTokenRepository
	logger    logger.Interface
}

// NewPurgeExpiredDownloadTokensUseCase creates a new purge expired download tokens use case
func NewPurgeExpiredDownloadTokensUseCase(
	tokenRepo entitlement.DownloadTokenRepository,
	logger logger.Interface,
) *PurgeExpiredDownloadTokensUseCase {
	return &PurgeExpiredDownloadTokensUseCase{
		tokenRepo: tokenRepo,
		logger:    logger,
	}
}

// Execute deletes every token that expired before now and reports the count.
func (uc *PurgeExpiredDownloadTokensUseCase) Execute(ctx context.Context) (int64, error) {
	deleted, err := uc.tokenRepo.DeleteExpired(ctx, time.Now())
	if err != nil {
		uc.logger.Errorw("failed to purge expired download tokens", "error", err)
		return 0, err
	}
	if deleted > 0 {
		uc.logger.Infow("expired download tokens purged", "deleted", deleted)
	}
	return deleted, nil
}
