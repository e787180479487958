package usecases

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"

	auditapp "github.com/sequencehub/sequencehub/internal/application/audit"
	"github.com/sequencehub/sequencehub/internal/application/upload/dto"
	"github.com/sequencehub/sequencehub/internal/domain/product"
	"github.com/sequencehub/sequencehub/internal/domain/upload"
	"github.com/sequencehub/sequencehub/internal/infrastructure/storage"
	"github.com/sequencehub/sequencehub/internal/shared/authorization"
	"github.com/sequencehub/sequencehub/internal/shared/constants"
	"github.com/sequencehub/sequencehub/internal/shared/errors"
	"github.com/sequencehub/sequencehub/internal/shared/id"
	"github.com/sequencehub/sequencehub/internal/shared/logger"
)

// CompleteUploadUseCase finalizes an upload session into a sequence file
// record. The stored object is hashed with SHA-256; when the seller already
// has a file with the same checksum the fresh object is discarded and the
// existing storage object is shared.
type CompleteUploadUseCase struct {
	sessionRepo upload.Repository
	fileRepo    product.FileRepository
	store       storage.Storage
	recorder    *auditapp.Recorder
	logger      logger.Interface
}

// NewCompleteUploadUseCase creates a new complete upload use case
func NewCompleteUploadUseCase(
	sessionRepo upload.Repository,
	fileRepo product.FileRepository,
	store storage.Storage,
	recorder *auditapp.Recorder,
	logger logger.Interface,
) *CompleteUploadUseCase {
	return &CompleteUploadUseCase{
		sessionRepo: sessionRepo,
		fileRepo:    fileRepo,
		store:       store,
		recorder:    recorder,
		logger:      logger,
	}
}

// Execute executes the complete upload use case
func (uc *CompleteUploadUseCase) Execute(ctx context.Context, sellerID uint, sellerRole authorization.UserRole, sessionSID string, req auditapp.RequestInfo) (*dto.CompleteUploadResponse, error) {
	session, err := uc.sessionRepo.GetBySID(ctx, sessionSID)
	if err != nil {
		return nil, err
	}
	if !authorization.CanAccessResource(sellerID, sellerRole, session) {
		return nil, errors.NewForbiddenError("you do not own this upload")
	}

	if err := session.Complete(); err != nil {
		switch err {
		case upload.ErrSessionNotOpen:
			return nil, errors.NewConflictError(err.Error())
		case upload.ErrIncompleteUpload:
			return nil, errors.NewValidationError(err.Error())
		default:
			return nil, errors.NewValidationError(err.Error())
		}
	}

	checksum, err := uc.hashObject(ctx, session.StorageKey())
	if err != nil {
		uc.logger.Errorw("failed to hash uploaded object", "upload_sid", session.SID(), "error", err)
		return nil, errors.NewInternalError("failed to verify uploaded file")
	}

	storageKey := session.StorageKey()
	deduplicated := false
	existing, err := uc.fileRepo.FindByChecksumForSeller(ctx, session.SellerID(), checksum)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if err := uc.store.Delete(ctx, session.StorageKey()); err != nil {
			uc.logger.Warnw("failed to delete duplicate upload object", "upload_sid", session.SID(), "error", err)
		}
		storageKey = existing.StorageKey()
		deduplicated = true
	}

	fileSID, err := id.GenerateWithPrefix(id.PrefixFile, id.DefaultLength)
	if err != nil {
		return nil, errors.NewInternalError("failed to generate file ID")
	}
	file, err := product.NewSequenceFile(fileSID, session.VersionID(), session.FileName(), storageKey, session.DeclaredSize(), checksum)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.fileRepo.Create(ctx, file); err != nil {
		return nil, err
	}
	if err := uc.sessionRepo.Update(ctx, session); err != nil {
		return nil, err
	}

	uc.recorder.Record(ctx, constants.AuditFileUploaded, &sellerID, "file", file.SID(), map[string]any{
		"file_name":    file.FileName(),
		"size_bytes":   file.SizeBytes(),
		"checksum":     checksum,
		"deduplicated": deduplicated,
	}, req)

	uc.logger.Infow("upload completed",
		"upload_sid", session.SID(), "file_sid", file.SID(),
		"checksum", checksum, "deduplicated", deduplicated)

	return &dto.CompleteUploadResponse{
		FileSID:      file.SID(),
		FileName:     file.FileName(),
		SizeBytes:    file.SizeBytes(),
		Checksum:     file.Checksum(),
		Deduplicated: deduplicated,
	}, nil
}

func (uc *CompleteUploadUseCase) hashObject(ctx context.Context, key string) (string, error) {
	r, _, err := uc.store.Get(ctx, key)
	if err != nil {
		return "", err
	}
	defer r.Close()

	h := sha256.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
