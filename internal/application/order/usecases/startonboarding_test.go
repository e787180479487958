package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sequencehub/sequencehub/internal/application/order/dto"
	"github.com/sequencehub/sequencehub/internal/domain/user"
	uservo "github.com/sequencehub/sequencehub/internal/domain/user/valueobjects"
	"github.com/sequencehub/sequencehub/internal/shared/authorization"
	"github.com/sequencehub/sequencehub/internal/shared/errors"
)

type onboardingFixture struct {
	uc       *StartOnboardingUseCase
	userRepo *fakeUserRepo
	gateway  *fakeGateway
}

func newOnboardingFixture(t *testing.T, role authorization.UserRole, accountID *string) *onboardingFixture {
	t.Helper()

	email, err := uservo.NewEmail("seller@example.com")
	require.NoError(t, err)
	u, err := user.ReconstructUser(2, email, "Seller", role, "hash", true, accountID, false, time.Now(), time.Now())
	require.NoError(t, err)

	userRepo := newFakeUserRepo()
	require.NoError(t, userRepo.Create(context.Background(), u))

	gateway := &fakeGateway{}
	return &onboardingFixture{
		uc:       NewStartOnboardingUseCase(userRepo, gateway, "http://localhost:8080", testLogger()),
		userRepo: userRepo,
		gateway:  gateway,
	}
}

func TestStartOnboardingUseCase_Execute_FirstCallLinksAccount(t *testing.T) {
	fx := newOnboardingFixture(t, authorization.RoleSeller, nil)

	result, err := fx.uc.Execute(context.Background(), 2, dto.StartOnboardingRequest{})

	require.NoError(t, err)
	assert.Equal(t, "https://pay.example.com/onboard/acct_new", result.OnboardingURL)
	assert.Empty(t, fx.gateway.lastOnboarding.AccountID)
	assert.Equal(t, "http://localhost:8080/seller/payouts", fx.gateway.lastOnboarding.ReturnURL)
	assert.Equal(t, "http://localhost:8080/seller/payouts/restart", fx.gateway.lastOnboarding.RefreshURL)

	u, err := fx.userRepo.GetByID(context.Background(), 2)
	require.NoError(t, err)
	require.NotNil(t, u.CreatorAccountID())
	assert.Equal(t, "acct_new", *u.CreatorAccountID())
}

func TestStartOnboardingUseCase_Execute_RepeatCallReusesLinkedAccount(t *testing.T) {
	account := "acct_123"
	fx := newOnboardingFixture(t, authorization.RoleSeller, &account)

	result, err := fx.uc.Execute(context.Background(), 2, dto.StartOnboardingRequest{})

	require.NoError(t, err)
	assert.Equal(t, "acct_123", fx.gateway.lastOnboarding.AccountID)
	assert.Equal(t, "https://pay.example.com/onboard/acct_123", result.OnboardingURL)

	u, err := fx.userRepo.GetByID(context.Background(), 2)
	require.NoError(t, err)
	require.NotNil(t, u.CreatorAccountID())
	assert.Equal(t, "acct_123", *u.CreatorAccountID())
}

func TestStartOnboardingUseCase_Execute_CustomReturnURLs(t *testing.T) {
	fx := newOnboardingFixture(t, authorization.RoleSeller, nil)

	_, err := fx.uc.Execute(context.Background(), 2, dto.StartOnboardingRequest{
		ReturnURL:  "https://example.com/done",
		RefreshURL: "https://example.com/again",
	})

	require.NoError(t, err)
	assert.Equal(t, "https://example.com/done", fx.gateway.lastOnboarding.ReturnURL)
	assert.Equal(t, "https://example.com/again", fx.gateway.lastOnboarding.RefreshURL)
}

func TestStartOnboardingUseCase_Execute_BuyerRejected(t *testing.T) {
	fx := newOnboardingFixture(t, authorization.RoleBuyer, nil)

	result, err := fx.uc.Execute(context.Background(), 2, dto.StartOnboardingRequest{})

	assert.Nil(t, result)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeForbidden, appErr.Type)
	assert.Nil(t, fx.gateway.lastOnboarding)
}
