package usecases

import (
	"context"

	auditapp "github.com/sequencehub/sequencehub/internal/application/audit"
	"github.com/sequencehub/sequencehub/internal/application/review/dto"
	"github.com/sequencehub/sequencehub/internal/domain/review"
	"github.com/sequencehub/sequencehub/internal/shared/constants"
	"github.com/sequencehub/sequencehub/internal/shared/errors"
	"github.com/sequencehub/sequencehub/internal/shared/logger"
)

// ModerateReviewUseCase applies an admin approve or reject decision to a
// review, then rebuilds the product aggregates when the approved set changed
type ModerateReviewUseCase struct {
	reviewRepo review.Repository
	recomputer *RatingRecomputer
	recorder   *auditapp.Recorder
	logger     logger.Interface
}

// NewModerateReviewUseCase creates a new moderate review use case
func NewModerateReviewUseCase(
	reviewRepo review.Repository,
	recomputer *RatingRecomputer,
	recorder *auditapp.Recorder,
	logger logger.Interface,
) *ModerateReviewUseCase {
	return &ModerateReviewUseCase{
		reviewRepo: reviewRepo,
		recomputer: recomputer,
		recorder:   recorder,
		logger:     logger,
	}
}

// Execute executes the moderate review use case
func (uc *ModerateReviewUseCase) Execute(ctx context.Context, adminID uint, reviewSID string, request dto.ModerateReviewRequest, req auditapp.RequestInfo) (*dto.ReviewResponse, error) {
	r, err := uc.reviewRepo.GetBySID(ctx, reviewSID)
	if err != nil {
		return nil, err
	}

	wasApproved := r.IsApproved()

	var action string
	switch request.Decision {
	case "approve":
		if err := r.Approve(); err != nil {
			return nil, errors.NewConflictError(err.Error())
		}
		action = constants.AuditReviewApproved
	case "reject":
		if err := r.Reject(); err != nil {
			return nil, errors.NewConflictError(err.Error())
		}
		action = constants.AuditReviewRejected
	default:
		return nil, errors.NewValidationError("decision must be approve or reject")
	}

	if err := uc.reviewRepo.Update(ctx, r); err != nil {
		return nil, err
	}

	if r.IsApproved() != wasApproved {
		if err := uc.recomputer.Recompute(ctx, r.ProductID()); err != nil {
			uc.logger.Errorw("failed to recompute product rating", "product_id", r.ProductID(), "error", err)
		}
	}

	uc.recorder.Record(ctx, action, &adminID, "review", r.SID(), map[string]any{
		"product_id": r.ProductID(),
		"rating":     r.Rating(),
	}, req)

	uc.logger.Infow("review moderated", "review_sid", r.SID(), "decision", request.Decision, "admin_id", adminID)
	return ToReviewResponse(r), nil
}
