package usecases

import (
	"context"

	"github.com/sequencehub/sequencehub/internal/domain/product"
	"github.com/sequencehub/sequencehub/internal/domain/review"
	"github.com/sequencehub/sequencehub/internal/shared/logger"
)

// RatingRecomputer rebuilds a product's denormalized rating aggregates from
// the full set of approved reviews. Called whenever a review enters or leaves
// the approved set.
type RatingRecomputer struct {
	reviewRepo  review.Repository
	productRepo product.Repository
	logger      logger.Interface
}

// NewRatingRecomputer creates a new rating recomputer
func NewRatingRecomputer(
	reviewRepo review.Repository,
	productRepo product.Repository,
	logger logger.Interface,
) *RatingRecomputer {
	return &RatingRecomputer{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// Recompute recalculates and persists the aggregates for one product.
func (rc *RatingRecomputer) Recompute(ctx context.Context, productID uint) error {
	ratings, err := rc.reviewRepo.GetApprovedRatings(ctx, productID)
	if err != nil {
		return err
	}

	summary := product.SummarizeRatings(ratings)
	if err := rc.productRepo.UpdateRatingSummary(ctx, productID, summary); err != nil {
		return err
	}

	rc.logger.Infow("product rating recomputed", "product_id", productID, "review_count", summary.ReviewCount)
	return nil
}
