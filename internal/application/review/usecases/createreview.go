package usecases

import (
	"context"

	"github.com/sequencehub/sequencehub/internal/application/review/dto"
	"github.com/sequencehub/sequencehub/internal/domain/entitlement"
	"github.com/sequencehub/sequencehub/internal/domain/product"
	"github.com/sequencehub/sequencehub/internal/domain/review"
	"github.com/sequencehub/sequencehub/internal/shared/errors"
	"github.com/sequencehub/sequencehub/internal/shared/id"
	"github.com/sequencehub/sequencehub/internal/shared/logger"
	"github.com/sequencehub/sequencehub/internal/shared/services/markdown"
)

// CreateReviewUseCase posts a review. Only buyers holding an active
// entitlement for the product may review it; the review starts pending and
// does not affect the public rating until approved.
type CreateReviewUseCase struct {
	reviewRepo      review.Repository
	productRepo     product.Repository
	entitlementRepo entitlement.Repository
	markdown        markdown.Service
	logger          logger.Interface
}

// NewCreateReviewUseCase creates a new create review use case
func NewCreateReviewUseCase(
	reviewRepo review.Repository,
	productRepo product.Repository,
	entitlementRepo entitlement.Repository,
	markdownSvc markdown.Service,
	logger logger.Interface,
) *CreateReviewUseCase {
	return &CreateReviewUseCase{
		reviewRepo:      reviewRepo,
		productRepo:     productRepo,
		entitlementRepo: entitlementRepo,
		markdown:        markdownSvc,
		logger:          logger,
	}
}

// Execute executes the create review use case
func (uc *CreateReviewUseCase) Execute(ctx context.Context, userID uint, request dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	p, err := uc.productRepo.GetBySID(ctx, request.ProductID)
	if err != nil {
		return nil, err
	}

	entitled, err := uc.entitlementRepo.ExistsActiveForUserAndProduct(ctx, userID, p.ID())
	if err != nil {
		return nil, err
	}
	if !entitled {
		return nil, errors.NewForbiddenError("you can only review products you own")
	}

	sid, err := id.GenerateWithPrefix(id.PrefixReview, id.DefaultLength)
	if err != nil {
		return nil, errors.NewInternalError("failed to generate review ID")
	}

	// Review text is plain text; any markup is stripped on the way in.
	r, err := review.NewReview(sid, userID, p.ID(), request.Rating,
		uc.markdown.StripTags(request.Title), uc.markdown.StripTags(request.Comment))
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.reviewRepo.Create(ctx, r); err != nil {
		return nil, err
	}

	uc.logger.Infow("review created", "review_sid", r.SID(), "product_sid", p.SID(), "user_id", userID)
	return ToReviewResponse(r), nil
}

// ToReviewResponse maps a review aggregate to its API representation.
func ToReviewResponse(r *review.Review) *dto.ReviewResponse {
	return &dto.ReviewResponse{
		SID:       r.SID(),
		UserID:    r.UserID(),
		ProductID: r.ProductID(),
		Rating:    r.Rating(),
		Title:     r.Title(),
		Comment:   r.Comment(),
		Status:    r.Status().String(),
		CreatedAt: r.CreatedAt(),
		UpdatedAt: r.UpdatedAt(),
	}
}
