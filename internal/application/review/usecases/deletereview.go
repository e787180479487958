package usecases

import (
	"context"

	"github.com/sequencehub/sequencehub/internal/domain/review"
	"github.com/sequencehub/sequencehub/internal/shared/authorization"
	"github.com/sequencehub/sequencehub/internal/shared/errors"
	"github.com/sequencehub/sequencehub/internal/shared/logger"
)

// DeleteReviewUseCase removes a review. Owner or admin. Deleting an approved
// review triggers one rating recomputation for the product.
type DeleteReviewUseCase struct {
	reviewRepo review.Repository
	recomputer *RatingRecomputer
	logger     logger.Interface
}

// NewDeleteReviewUseCase creates a new delete review use case
func NewDeleteReviewUseCase(
	reviewRepo review.Repository,
	recomputer *RatingRecomputer,
	logger logger.Interface,
) *DeleteReviewUseCase {
	return &DeleteReviewUseCase{
		reviewRepo: reviewRepo,
		recomputer: recomputer,
		logger:     logger,
	}
}

// Execute executes the delete review use case
func (uc *DeleteReviewUseCase) Execute(ctx context.Context, actorID uint, actorRole authorization.UserRole, reviewSID string) error {
	r, err := uc.reviewRepo.GetBySID(ctx, reviewSID)
	if err != nil {
		return err
	}

	if !authorization.CanAccessResource(actorID, actorRole, r) {
		return errors.NewForbiddenError("you can only delete your own review")
	}

	wasApproved := r.IsApproved()
	if err := uc.reviewRepo.Delete(ctx, r.ID()); err != nil {
		return err
	}

	if wasApproved {
		if err := uc.recomputer.Recompute(ctx, r.ProductID()); err != nil {
			uc.logger.Errorw("failed to recompute product rating", "product_id", r.ProductID(), "error", err)
		}
	}

	uc.logger.Infow("review deleted", "review_sid", r.SID(), "actor_id", actorID)
	return nil
}
