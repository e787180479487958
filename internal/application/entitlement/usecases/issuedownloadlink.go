package usecases

import (
	"context"
	"fmt"
	"time"

	auditapp "github.com/sequencehub/sequencehub/internal/application/audit"
	"github.com/sequencehub/sequencehub/internal/application/entitlement/dto"
	"github.com/sequencehub/sequencehub/internal/domain/entitlement"
	"github.com/sequencehub/sequencehub/internal/domain/product"
	sharedConfig "github.com/sequencehub/sequencehub/internal/shared/config"
	"github.com/sequencehub/sequencehub/internal/shared/constants"
	"github.com/sequencehub/sequencehub/internal/shared/errors"
	"github.com/sequencehub/sequencehub/internal/shared/logger"
)

// IssueDownloadLinkUseCase gates file access behind an active entitlement and
// the daily download cap, then mints a single-use expiring link for every file
// in the covered version. Every outcome, allowed or denied, leaves an audit
// entry.
type IssueDownloadLinkUseCase struct {
	entitlementRepo entitlement.Repository
	tokenRepo       entitlement.DownloadTokenRepository
	fileRepo        product.FileRepository
	versionRepo     product.VersionRepository
	generator       TokenGenerator
	recorder        *auditapp.Recorder
	downloadCfg     *sharedConfig.DownloadConfig
	baseURL         string
	logger          logger.Interface
}

// NewIssueDownloadLinkUseCase creates a new issue download link use case
func NewIssueDownloadLinkUseCase(
	entitlementRepo entitlement.Repository,
	tokenRepo entitlement.DownloadTokenRepository,
	fileRepo product.FileRepository,
	versionRepo product.VersionRepository,
	generator TokenGenerator,
	recorder *auditapp.Recorder,
	downloadCfg *sharedConfig.DownloadConfig,
	baseURL string,
	logger logger.Interface,
) *IssueDownloadLinkUseCase {
	return &IssueDownloadLinkUseCase{
		entitlementRepo: entitlementRepo,
		tokenRepo:       tokenRepo,
		fileRepo:        fileRepo,
		versionRepo:     versionRepo,
		generator:       generator,
		recorder:        recorder,
		downloadCfg:     downloadCfg,
		baseURL:         baseURL,
		logger:          logger,
	}
}

// Execute executes the issue download link use case
func (uc *IssueDownloadLinkUseCase) Execute(ctx context.Context, userID uint, request dto.IssueDownloadLinkRequest, req auditapp.RequestInfo) (*dto.DownloadLinksResponse, error) {
	ent, err := uc.entitlementRepo.GetBySID(ctx, request.EntitlementID)
	if err != nil {
		return nil, err
	}
	if ent.UserID() != userID {
		uc.denied(ctx, userID, ent.SID(), "entitlement belongs to another user", req)
		return nil, errors.NewForbiddenError("you are not entitled to this version")
	}

	version, err := uc.versionRepo.GetBySID(ctx, request.VersionID)
	if err != nil {
		return nil, err
	}
	if ent.VersionID() != version.ID() {
		uc.denied(ctx, userID, ent.SID(), "entitlement covers a different version", req)
		return nil, errors.NewForbiddenError("your purchase does not cover this version")
	}

	now := time.Now()
	if err := ent.CheckDownloadAllowed(now, uc.downloadCfg.DailyLimit); err != nil {
		switch err {
		case entitlement.ErrDownloadLimitReached:
			uc.recorder.Record(ctx, constants.AuditDownloadRateLimited, &userID, "entitlement", ent.SID(), map[string]any{
				"version_sid":    version.SID(),
				"download_count": ent.DownloadCount(),
				"daily_limit":    uc.downloadCfg.DailyLimit,
			}, req)
			return nil, errors.NewRateLimitedError(err.Error())
		case entitlement.ErrEntitlementInactive:
			uc.denied(ctx, userID, ent.SID(), "entitlement inactive", req)
			return nil, errors.NewForbiddenError(err.Error())
		default:
			return nil, errors.NewInternalError(err.Error())
		}
	}

	files, err := uc.fileRepo.GetByVersion(ctx, version.ID())
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errors.NewNotFoundError("this version has no downloadable files")
	}

	ttl := time.Duration(uc.downloadCfg.TokenTTLMinutes) * time.Minute
	links := make([]dto.DownloadLinkResponse, 0, len(files))
	for _, file := range files {
		plaintext, hash, err := uc.generator.Generate()
		if err != nil {
			return nil, errors.NewInternalError("failed to generate download token")
		}

		token, err := entitlement.NewDownloadToken(hash, userID, ent.ID(), file.ID(), file.StorageKey(), ttl)
		if err != nil {
			return nil, errors.NewInternalError(err.Error())
		}
		if err := uc.tokenRepo.Create(ctx, token); err != nil {
			return nil, err
		}

		links = append(links, dto.DownloadLinkResponse{
			FileID:    file.SID(),
			FileName:  file.FileName(),
			URL:       fmt.Sprintf("%s/api/media/%s?token=%s", uc.baseURL, file.StorageKey(), plaintext),
			ExpiresAt: token.ExpiresAt(),
		})
	}

	if err := uc.entitlementRepo.RecordDownload(ctx, ent.ID(), now); err != nil {
		return nil, err
	}
	ent.RecordDownload(now)

	uc.recorder.Record(ctx, constants.AuditDownloadLinkIssued, &userID, "entitlement", ent.SID(), map[string]any{
		"version_sid":    version.SID(),
		"file_count":     len(files),
		"download_count": ent.DownloadCount(),
	}, req)

	uc.logger.Infow("download links issued",
		"entitlement_sid", ent.SID(), "version_sid", version.SID(),
		"file_count", len(files), "user_id", userID)
	return &dto.DownloadLinksResponse{Links: links}, nil
}

func (uc *IssueDownloadLinkUseCase) denied(ctx context.Context, userID uint, entitlementSID, reason string, req auditapp.RequestInfo) {
	uc.recorder.Record(ctx, constants.AuditDownloadAccessDenied, &userID, "entitlement", entitlementSID, map[string]any{
		"reason": reason,
	}, req)
}
