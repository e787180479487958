package usecases

import (
	"context"
	"io"
	"time"

	auditapp "github.com/sequencehub/sequencehub/internal/application/audit"
	"github.com/sequencehub/sequencehub/internal/domain/entitlement"
	"github.com/sequencehub/sequencehub/internal/domain/product"
	"github.com/sequencehub/sequencehub/internal/infrastructure/storage"
	"github.com/sequencehub/sequencehub/internal/infrastructure/token"
	"github.com/sequencehub/sequencehub/internal/shared/constants"
	"github.com/sequencehub/sequencehub/internal/shared/errors"
	"github.com/sequencehub/sequencehub/internal/shared/logger"
)

// DownloadStream is an open file stream ready to be sent to the client. The
// caller must close the reader.
type DownloadStream struct {
	Reader    io.ReadCloser
	FileName  string
	SizeBytes int64
}

// ServeDownloadUseCase redeems a one-time download token and opens the file
// it points at. The consume is a conditional update, so a token can be
// redeemed exactly once no matter how many requests race on it.
type ServeDownloadUseCase struct {
	tokenRepo entitlement.DownloadTokenRepository
	fileRepo  product.FileRepository
	store     storage.Storage
	recorder  *auditapp.Recorder
	logger    logger.Interface
}

// NewServeDownloadUseCase creates a new serve download use case
func NewServeDownloadUseCase(
	tokenRepo entitlement.DownloadTokenRepository,
	fileRepo product.FileRepository,
	store storage.Storage,
	recorder *auditapp.Recorder,
	logger logger.Interface,
) *ServeDownloadUseCase {
	return &ServeDownloadUseCase{
		tokenRepo: tokenRepo,
		fileRepo:  fileRepo,
		store:     store,
		recorder:  recorder,
		logger:    logger,
	}
}

// Execute executes the serve download use case. storageKey is the path the
// client requested; it must match the key the token was minted for.
func (uc *ServeDownloadUseCase) Execute(ctx context.Context, storageKey, plaintext string, req auditapp.RequestInfo) (*DownloadStream, error) {
	if plaintext == "" {
		return nil, errors.NewUnauthorizedError("download token is required")
	}

	consumed, err := uc.tokenRepo.ConsumeByTokenHash(ctx, token.Hash(plaintext), time.Now())
	if err != nil {
		switch err {
		case entitlement.ErrTokenAlreadyUsed:
			return nil, errors.NewForbiddenError(err.Error())
		case entitlement.ErrTokenExpired:
			return nil, errors.NewForbiddenError(err.Error())
		default:
			return nil, err
		}
	}

	if consumed.StorageKey() != storageKey {
		userID := consumed.UserID()
		uc.recorder.Record(ctx, constants.AuditDownloadAccessDenied, &userID, "storage_key", storageKey, map[string]any{
			"reason": "token was issued for a different file",
		}, req)
		return nil, errors.NewForbiddenError("token does not grant access to this file")
	}

	file, err := uc.fileRepo.GetByID(ctx, consumed.FileID())
	if err != nil {
		return nil, err
	}

	reader, info, err := uc.store.Get(ctx, consumed.StorageKey())
	if err != nil {
		uc.logger.Errorw("failed to open stored file", "storage_key", consumed.StorageKey(), "error", err)
		return nil, errors.NewInternalError("failed to open file")
	}

	userID := consumed.UserID()
	uc.recorder.Record(ctx, constants.AuditDownloadServed, &userID, "file", file.SID(), map[string]any{
		"file_name":  file.FileName(),
		"size_bytes": info.SizeBytes,
	}, req)

	uc.logger.Infow("download served", "file_sid", file.SID(), "user_id", userID)
	return &DownloadStream{
		Reader:    reader,
		FileName:  file.FileName(),
		SizeBytes: info.SizeBytes,
	}, nil
}
