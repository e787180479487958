package usecases

import (
	"context"
	"fmt"

	"github.com/sequencehub/sequencehub/internal/application/order/dto"
	"github.com/sequencehub/sequencehub/internal/application/order/paymentgateway"
	"github.com/sequencehub/sequencehub/internal/domain/user"
	"github.com/sequencehub/sequencehub/internal/shared/errors"
	"github.com/sequencehub/sequencehub/internal/shared/logger"
)

// StartOnboardingUseCase starts payout onboarding for a seller. The gateway
// creates a connected account on first call; repeat calls reuse the linked
// account and just mint a fresh onboarding link.
type StartOnboardingUseCase struct {
	userRepo user.Repository
	gateway  paymentgateway.PaymentGateway
	baseURL  string
	logger   logger.Interface
}

// NewStartOnboardingUseCase creates a new start onboarding use case
func NewStartOnboardingUseCase(
	userRepo user.Repository,
	gateway paymentgateway.PaymentGateway,
	baseURL string,
	logger logger.Interface,
) *StartOnboardingUseCase {
	return &StartOnboardingUseCase{
		userRepo: userRepo,
		gateway:  gateway,
		baseURL:  baseURL,
		logger:   logger,
	}
}

// Execute executes the start onboarding use case
func (uc *StartOnboardingUseCase) Execute(ctx context.Context, sellerID uint, request dto.StartOnboardingRequest) (*dto.OnboardingResponse, error) {
	u, err := uc.userRepo.GetByID(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	if !u.Role().IsSeller() && !u.Role().IsAdmin() {
		return nil, errors.NewForbiddenError("only sellers can onboard for payouts")
	}

	returnURL := request.ReturnURL
	if returnURL == "" {
		returnURL = fmt.Sprintf("%s/seller/payouts", uc.baseURL)
	}
	refreshURL := request.RefreshURL
	if refreshURL == "" {
		refreshURL = fmt.Sprintf("%s/seller/payouts/restart", uc.baseURL)
	}

	gatewayReq := paymentgateway.OnboardingRequest{
		UserID:     u.ID(),
		Email:      u.Email().String(),
		ReturnURL:  returnURL,
		RefreshURL: refreshURL,
	}
	if accountID := u.CreatorAccountID(); accountID != nil {
		gatewayReq.AccountID = *accountID
	}

	resp, err := uc.gateway.CreateOnboardingLink(ctx, gatewayReq)
	if err != nil {
		uc.logger.Errorw("failed to create onboarding link", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("failed to start payout onboarding")
	}

	if u.CreatorAccountID() == nil {
		if err := u.LinkCreatorAccount(resp.AccountID); err != nil {
			return nil, errors.NewConflictError(err.Error())
		}
		if err := uc.userRepo.Update(ctx, u); err != nil {
			return nil, err
		}
	}

	uc.logger.Infow("payout onboarding started", "user_id", u.ID(), "account_id", resp.AccountID)
	return &dto.OnboardingResponse{OnboardingURL: resp.OnboardingURL}, nil
}
