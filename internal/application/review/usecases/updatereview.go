package usecases

import (
	"context"

	"github.com/sequencehub/sequencehub/internal/application/review/dto"
	"github.com/sequencehub/sequencehub/internal/domain/review"
	"github.com/sequencehub/sequencehub/internal/shared/authorization"
	"github.com/sequencehub/sequencehub/internal/shared/errors"
	"github.com/sequencehub/sequencehub/internal/shared/logger"
	"github.com/sequencehub/sequencehub/internal/shared/services/markdown"
)

// UpdateReviewUseCase edits a review. Editing sends it back to moderation;
// when the old content was approved, the product aggregates are recomputed
// without it.
type UpdateReviewUseCase struct {
	reviewRepo review.Repository
	recomputer *RatingRecomputer
	markdown   markdown.Service
	logger     logger.Interface
}

// NewUpdateReviewUseCase creates a new update review use case
func NewUpdateReviewUseCase(
	reviewRepo review.Repository,
	recomputer *RatingRecomputer,
	markdownSvc markdown.Service,
	logger logger.Interface,
) *UpdateReviewUseCase {
	return &UpdateReviewUseCase{
		reviewRepo: reviewRepo,
		recomputer: recomputer,
		markdown:   markdownSvc,
		logger:     logger,
	}
}

// Execute executes the update review use case
func (uc *UpdateReviewUseCase) Execute(ctx context.Context, actorID uint, actorRole authorization.UserRole, reviewSID string, request dto.UpdateReviewRequest) (*dto.ReviewResponse, error) {
	r, err := uc.reviewRepo.GetBySID(ctx, reviewSID)
	if err != nil {
		return nil, err
	}

	if !authorization.CanAccessResource(actorID, actorRole, r) {
		return nil, errors.NewForbiddenError("you can only edit your own review")
	}

	wasApproved := r.IsApproved()
	if err := r.Edit(request.Rating, uc.markdown.StripTags(request.Title), uc.markdown.StripTags(request.Comment)); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.reviewRepo.Update(ctx, r); err != nil {
		return nil, err
	}

	if wasApproved {
		if err := uc.recomputer.Recompute(ctx, r.ProductID()); err != nil {
			uc.logger.Errorw("failed to recompute product rating", "product_id", r.ProductID(), "error", err)
		}
	}

	return ToReviewResponse(r), nil
}
