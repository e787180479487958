package usecases

import (
	"context"
	"fmt"

	"github.com/sequencehub/sequencehub/internal/application/upload/dto"
	"github.com/sequencehub/sequencehub/internal/domain/product"
	"github.com/sequencehub/sequencehub/internal/domain/upload"
	"github.com/sequencehub/sequencehub/internal/shared/authorization"
	"github.com/sequencehub/sequencehub/internal/shared/errors"
	"github.com/sequencehub/sequencehub/internal/shared/id"
	"github.com/sequencehub/sequencehub/internal/shared/logger"
)

// InitUploadUseCase opens a chunked upload session for a version file
type InitUploadUseCase struct {
	sessionRepo   upload.Repository
	versionRepo   product.VersionRepository
	productRepo   product.Repository
	maxUploadSize int64
	logger        logger.Interface
}

// NewInitUploadUseCase creates a new init upload use case
func NewInitUploadUseCase(
	sessionRepo upload.Repository,
	versionRepo product.VersionRepository,
	productRepo product.Repository,
	maxUploadSize int64,
	logger logger.Interface,
) *InitUploadUseCase {
	return &InitUploadUseCase{
		sessionRepo:   sessionRepo,
		versionRepo:   versionRepo,
		productRepo:   productRepo,
		maxUploadSize: maxUploadSize,
		logger:        logger,
	}
}

// Execute executes the init upload use case
func (uc *InitUploadUseCase) Execute(ctx context.Context, sellerID uint, sellerRole authorization.UserRole, request dto.InitUploadRequest) (*dto.UploadSessionResponse, error) {
	if request.SizeBytes > uc.maxUploadSize {
		return nil, errors.NewValidationError(fmt.Sprintf("file exceeds the maximum upload size of %d bytes", uc.maxUploadSize))
	}

	version, err := uc.versionRepo.GetBySID(ctx, request.VersionID)
	if err != nil {
		return nil, err
	}
	p, err := uc.productRepo.GetByID(ctx, version.ProductID())
	if err != nil {
		return nil, err
	}
	if !authorization.CanAccessResource(sellerID, sellerRole, p) {
		return nil, errors.NewForbiddenError("you do not own this product")
	}

	sid, err := id.GenerateWithPrefix(id.PrefixUpload, id.DefaultLength)
	if err != nil {
		return nil, errors.NewInternalError("failed to generate upload ID")
	}

	storageKey := fmt.Sprintf("sellers/%d/uploads/%s", sellerID, sid)
	session, err := upload.NewSession(sid, sellerID, version.ID(), request.FileName, storageKey, request.SizeBytes)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	uc.logger.Infow("upload session opened",
		"upload_sid", session.SID(), "version_sid", version.SID(),
		"seller_id", sellerID, "declared_size", request.SizeBytes)
	return ToSessionResponse(session), nil
}

// ToSessionResponse maps an upload session to its API representation.
func ToSessionResponse(s *upload.Session) *dto.UploadSessionResponse {
	return &dto.UploadSessionResponse{
		SID:           s.SID(),
		FileName:      s.FileName(),
		DeclaredSize:  s.DeclaredSize(),
		ReceivedBytes: s.ReceivedBytes(),
		Status:        s.Status().String(),
	}
}
