package usecases

import (
	"context"
	"io"

	"github.com/sequencehub/sequencehub/internal/application/upload/dto"
	"github.com/sequencehub/sequencehub/internal/domain/upload"
	"github.com/sequencehub/sequencehub/internal/infrastructure/storage"
	"github.com/sequencehub/sequencehub/internal/shared/authorization"
	"github.com/sequencehub/sequencehub/internal/shared/errors"
	"github.com/sequencehub/sequencehub/internal/shared/logger"
)

// UploadChunkUseCase appends one chunk to an open upload session. Chunks
// arrive in order; the session tracks the running byte count against the
// declared size.
type UploadChunkUseCase struct {
	sessionRepo upload.Repository
	store       storage.Storage
	logger      logger.Interface
}

// NewUploadChunkUseCase creates a new upload chunk use case
func NewUploadChunkUseCase(
	sessionRepo upload.Repository,
	store storage.Storage,
	logger logger.Interface,
) *UploadChunkUseCase {
	return &UploadChunkUseCase{
		sessionRepo: sessionRepo,
		store:       store,
		logger:      logger,
	}
}

// Execute executes the upload chunk use case
func (uc *UploadChunkUseCase) Execute(ctx context.Context, sellerID uint, sellerRole authorization.UserRole, sessionSID string, chunkSize int64, chunk io.Reader) (*dto.UploadSessionResponse, error) {
	session, err := uc.sessionRepo.GetBySID(ctx, sessionSID)
	if err != nil {
		return nil, err
	}
	if !authorization.CanAccessResource(sellerID, sellerRole, session) {
		return nil, errors.NewForbiddenError("you do not own this upload")
	}

	if err := session.AppendChunk(chunkSize); err != nil {
		switch err {
		case upload.ErrSessionNotOpen:
			return nil, errors.NewConflictError(err.Error())
		case upload.ErrSizeExceeded:
			return nil, errors.NewValidationError(err.Error())
		default:
			return nil, errors.NewValidationError(err.Error())
		}
	}

	info, err := uc.store.Append(ctx, session.StorageKey(), io.LimitReader(chunk, chunkSize))
	if err != nil {
		uc.logger.Errorw("failed to append upload chunk", "upload_sid", session.SID(), "error", err)
		return nil, errors.NewInternalError("failed to store upload chunk")
	}
	if info.SizeBytes != session.ReceivedBytes() {
		uc.logger.Errorw("stored size diverged from session accounting",
			"upload_sid", session.SID(), "stored", info.SizeBytes, "expected", session.ReceivedBytes())
		return nil, errors.NewConflictError("upload is out of sync, abort and restart")
	}

	if err := uc.sessionRepo.Update(ctx, session); err != nil {
		return nil, err
	}
	return ToSessionResponse(session), nil
}
