package usecases

import (
	"context"

	"github.com/sequencehub/sequencehub/internal/domain/upload"
	"github.com/sequencehub/sequencehub/internal/infrastructure/storage"
	"github.com/sequencehub/sequencehub/internal/shared/authorization"
	"github.com/sequencehub/sequencehub/internal/shared/errors"
	"github.com/sequencehub/sequencehub/internal/shared/logger"
)

// AbortUploadUseCase cancels an open upload session and discards its bytes
type AbortUploadUseCase struct {
	sessionRepo upload.Repository
	store       storage.Storage
	logger      logger.Interface
}

// NewAbortUploadUseCase creates a new abort upload use case
func NewAbortUploadUseCase(
	sessionRepo upload.Repository,
	store storage.Storage,
	logger logger.Interface,
) *AbortUploadUseCase {
	return &AbortUploadUseCase{
		sessionRepo: sessionRepo,
		store:       store,
		logger:      logger,
	}
}

// Execute executes the abort upload use case
func (uc *AbortUploadUseCase) Execute(ctx context.Context, sellerID uint, sellerRole authorization.UserRole, sessionSID string) error {
	session, err := uc.sessionRepo.GetBySID(ctx, sessionSID)
	if err != nil {
		return err
	}
	if !authorization.CanAccessResource(sellerID, sellerRole, session) {
		return errors.NewForbiddenError("you do not own this upload")
	}

	if err := session.Abort(); err != nil {
		return errors.NewConflictError(err.Error())
	}

	if err := uc.store.Delete(ctx, session.StorageKey()); err != nil {
		uc.logger.Warnw("failed to delete aborted upload object", "upload_sid", session.SID(), "error", err)
	}
	if err := uc.sessionRepo.Update(ctx, session); err != nil {
		return err
	}

	uc.logger.Infow("upload aborted", "upload_sid", session.SID(), "seller_id", sellerID)
	return nil
}
