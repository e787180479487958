package usecases

import (
	"context"

	auditapp "github.com/sequencehub/sequencehub/internal/application/audit"
	"github.com/sequencehub/sequencehub/internal/application/product/dto"
	"github.com/sequencehub/sequencehub/internal/domain/product"
	"github.com/sequencehub/sequencehub/internal/shared/constants"
	"github.com/sequencehub/sequencehub/internal/shared/errors"
	"github.com/sequencehub/sequencehub/internal/shared/logger"
)

// ModerateProductUseCase applies an admin approve or reject decision to a
// pending listing
type ModerateProductUseCase struct {
	productRepo product.Repository
	recorder    *auditapp.Recorder
	logger      logger.Interface
}

// NewModerateProductUseCase creates a new moderate product use case
func NewModerateProductUseCase(
	productRepo product.Repository,
	recorder *auditapp.Recorder,
	logger logger.Interface,
) *ModerateProductUseCase {
	return &ModerateProductUseCase{
		productRepo: productRepo,
		recorder:    recorder,
		logger:      logger,
	}
}

// Execute executes the moderate product use case
func (uc *ModerateProductUseCase) Execute(ctx context.Context, adminID uint, productSID string, request dto.ModerateProductRequest, req auditapp.RequestInfo) (*dto.ProductResponse, error) {
	p, err := uc.productRepo.GetBySID(ctx, productSID)
	if err != nil {
		return nil, err
	}

	var action string
	switch request.Decision {
	case "approve":
		if err := p.Approve(); err != nil {
			return nil, errors.NewConflictError(err.Error())
		}
		action = constants.AuditProductApproved
	case "reject":
		if err := p.Reject(); err != nil {
			return nil, errors.NewConflictError(err.Error())
		}
		action = constants.AuditProductRejected
	default:
		return nil, errors.NewValidationError("decision must be approve or reject")
	}

	if err := uc.productRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	metadata := map[string]any{"seller_id": p.SellerID()}
	if request.Reason != "" {
		metadata["reason"] = request.Reason
	}
	uc.recorder.Record(ctx, action, &adminID, "product", p.SID(), metadata, req)

	uc.logger.Infow("product moderated", "product_sid", p.SID(), "decision", request.Decision, "admin_id", adminID)
	return ToProductResponse(p), nil
}
