package usecases

import (
	"context"

	"github.com/sequencehub/sequencehub/internal/application/review/dto"
	"github.com/sequencehub/sequencehub/internal/domain/review"
)

// ListModerationQueueUseCase lists reviews for the admin moderation queue.
// Defaults to pending reviews, oldest decisions first being handled by the
// repository ordering.
type ListModerationQueueUseCase struct {
	reviewRepo review.Repository
}

// NewListModerationQueueUseCase creates a new list moderation queue use case
func NewListModerationQueueUseCase(reviewRepo review.Repository) *ListModerationQueueUseCase {
	return &ListModerationQueueUseCase{reviewRepo: reviewRepo}
}

// Execute executes the list moderation queue use case
func (uc *ListModerationQueueUseCase) Execute(ctx context.Context, request dto.ListReviewsRequest) ([]*dto.ReviewResponse, int64, error) {
	status := request.Status
	if status == "" {
		status = review.StatusPending.String()
	}

	filter := review.ListFilter{
		Status:   status,
		Page:     request.Page,
		PageSize: request.PageSize,
	}
	normalizeReviewPagination(&filter)

	reviews, total, err := uc.reviewRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]*dto.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		responses = append(responses, ToReviewResponse(r))
	}
	return responses, total, nil
}
