package usecases

import (
	"context"

	"github.com/sequencehub/sequencehub/internal/application/product/dto"
	"github.com/sequencehub/sequencehub/internal/domain/product"
	"github.com/sequencehub/sequencehub/internal/shared/authorization"
	"github.com/sequencehub/sequencehub/internal/shared/errors"
	"github.com/sequencehub/sequencehub/internal/shared/logger"
	"github.com/sequencehub/sequencehub/internal/shared/services/markdown"
)

// GetProductUseCase assembles the product page payload. Unapproved listings
// are only visible to their owner and admins; everyone else gets a 404 so the
// moderation queue is not enumerable.
type GetProductUseCase struct {
	productRepo product.Repository
	versionRepo product.VersionRepository
	fileRepo    product.FileRepository
	markdown    markdown.Service
	logger      logger.Interface
}

// NewGetProductUseCase creates a new get product use case
func NewGetProductUseCase(
	productRepo product.Repository,
	versionRepo product.VersionRepository,
	fileRepo product.FileRepository,
	markdownSvc markdown.Service,
	logger logger.Interface,
) *GetProductUseCase {
	return &GetProductUseCase{
		productRepo: productRepo,
		versionRepo: versionRepo,
		fileRepo:    fileRepo,
		markdown:    markdownSvc,
		logger:      logger,
	}
}

// Execute executes the get product use case. actorID is zero for anonymous
// viewers.
func (uc *GetProductUseCase) Execute(ctx context.Context, actorID uint, actorRole authorization.UserRole, slugOrSID string) (*dto.ProductDetailResponse, error) {
	p, err := uc.productRepo.GetBySlug(ctx, slugOrSID)
	if err != nil {
		if !errors.IsNotFoundError(err) {
			return nil, err
		}
		p, err = uc.productRepo.GetBySID(ctx, slugOrSID)
		if err != nil {
			return nil, err
		}
	}

	if !p.IsPurchasable() && !authorization.CanAccessResource(actorID, actorRole, p) {
		return nil, errors.NewNotFoundError("product not found")
	}

	descriptionHTML, err := uc.markdown.ToHTMLSanitized(p.Description())
	if err != nil {
		uc.logger.Warnw("failed to render product description", "product_sid", p.SID(), "error", err)
		descriptionHTML = ""
	}

	versions, err := uc.versionRepo.GetByProduct(ctx, p.ID())
	if err != nil {
		return nil, err
	}

	versionResponses := make([]dto.VersionResponse, 0, len(versions))
	for _, v := range versions {
		files, err := uc.fileRepo.GetByVersion(ctx, v.ID())
		if err != nil {
			return nil, err
		}
		versionResponses = append(versionResponses, ToVersionResponse(v, files))
	}

	return &dto.ProductDetailResponse{
		ProductResponse: *ToProductResponse(p),
		Description:     p.Description(),
		DescriptionHTML: descriptionHTML,
		Versions:        versionResponses,
	}, nil
}

// ToVersionResponse maps a version and its files to the API representation.
func ToVersionResponse(v *product.Version, files []*product.SequenceFile) dto.VersionResponse {
	fileResponses := make([]dto.FileResponse, 0, len(files))
	for _, f := range files {
		fileResponses = append(fileResponses, dto.FileResponse{
			SID:       f.SID(),
			FileName:  f.FileName(),
			SizeBytes: f.SizeBytes(),
			Checksum:  f.Checksum(),
			CreatedAt: f.CreatedAt(),
		})
	}
	return dto.VersionResponse{
		SID:       v.SID(),
		Label:     v.Label(),
		Changelog: v.Changelog(),
		CreatedAt: v.CreatedAt(),
		Files:     fileResponses,
	}
}
