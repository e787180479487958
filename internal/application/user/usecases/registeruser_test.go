package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	auditapp "github.com/sequencehub/sequencehub/internal/application/audit"
	"github.com/sequencehub/sequencehub/internal/application/user/dto"
	"github.com/sequencehub/sequencehub/internal/domain/user"
	vo "github.com/sequencehub/sequencehub/internal/domain/user/valueobjects"
	"github.com/sequencehub/sequencehub/internal/shared/authorization"
	"github.com/sequencehub/sequencehub/internal/shared/constants"
	"github.com/sequencehub/sequencehub/internal/shared/errors"
)

func seedUser(t *testing.T, repo *fakeUserRepo, id uint, email string, role authorization.UserRole, password string, active bool) *user.User {
	t.Helper()

	addr, err := vo.NewEmail(email)
	require.NoError(t, err)

	u, err := user.ReconstructUser(id, addr, "Test User", role, "hashed:"+password, active, nil, false, time.Now(), time.Now())
	require.NoError(t, err)

	return repo.add(u)
}

func TestRegisterUserUseCase_Execute_Success(t *testing.T) {
	repo := newFakeUserRepo()
	email := &fakeEmailSender{}
	recorder, auditRepo := testRecorder()

	uc := NewRegisterUserUseCase(repo, fakeHasher{}, email, recorder, testLogger())

	result, err := uc.Execute(context.Background(), dto.RegisterUserRequest{
		Email:       "buyer@example.com",
		DisplayName: "Buyer",
		Password:    "Sup3rSecret",
	}, auditapp.RequestInfo{IPAddress: "10.0.0.1"})

	require.NoError(t, err)
	assert.Equal(t, "buyer@example.com", result.Email)
	assert.Equal(t, "buyer", result.Role)
	assert.True(t, result.IsActive)
	assert.Equal(t, 1, email.welcomeSent)

	require.Len(t, auditRepo.entries, 1)
	assert.Equal(t, constants.AuditUserRegistered, auditRepo.entries[0].Action())
}

func TestRegisterUserUseCase_Execute_SellerRole(t *testing.T) {
	repo := newFakeUserRepo()
	recorder, _ := testRecorder()

	uc := NewRegisterUserUseCase(repo, fakeHasher{}, &fakeEmailSender{}, recorder, testLogger())

	result, err := uc.Execute(context.Background(), dto.RegisterUserRequest{
		Email:       "seller@example.com",
		DisplayName: "Seller",
		Password:    "Sup3rSecret",
		Role:        "seller",
	}, auditapp.RequestInfo{})

	require.NoError(t, err)
	assert.Equal(t, "seller", result.Role)
	assert.False(t, result.PayoutsEnabled)
}

func TestRegisterUserUseCase_Execute_RejectsAdminRole(t *testing.T) {
	repo := newFakeUserRepo()
	recorder, _ := testRecorder()

	uc := NewRegisterUserUseCase(repo, fakeHasher{}, &fakeEmailSender{}, recorder, testLogger())

	result, err := uc.Execute(context.Background(), dto.RegisterUserRequest{
		Email:       "boss@example.com",
		DisplayName: "Boss",
		Password:    "Sup3rSecret",
		Role:        "admin",
	}, auditapp.RequestInfo{})

	assert.Nil(t, result)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
}

func TestRegisterUserUseCase_Execute_WeakPassword(t *testing.T) {
	repo := newFakeUserRepo()
	recorder, _ := testRecorder()

	uc := NewRegisterUserUseCase(repo, fakeHasher{}, &fakeEmailSender{}, recorder, testLogger())

	result, err := uc.Execute(context.Background(), dto.RegisterUserRequest{
		Email:       "buyer@example.com",
		DisplayName: "Buyer",
		Password:    "short",
	}, auditapp.RequestInfo{})

	assert.Nil(t, result)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
	assert.Empty(t, repo.users)
}

func TestRegisterUserUseCase_Execute_DuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, 1, "taken@example.com", authorization.RoleBuyer, "Sup3rSecret", true)
	recorder, _ := testRecorder()

	uc := NewRegisterUserUseCase(repo, fakeHasher{}, &fakeEmailSender{}, recorder, testLogger())

	result, err := uc.Execute(context.Background(), dto.RegisterUserRequest{
		Email:       "taken@example.com",
		DisplayName: "Dup",
		Password:    "Sup3rSecret",
	}, auditapp.RequestInfo{})

	assert.Nil(t, result)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeConflict, appErr.Type)
}

func TestRegisterUserUseCase_Execute_WelcomeEmailFailureIsNotFatal(t *testing.T) {
	repo := newFakeUserRepo()
	email := &fakeEmailSender{sendErr: assert.AnError}
	recorder, _ := testRecorder()

	uc := NewRegisterUserUseCase(repo, fakeHasher{}, email, recorder, testLogger())

	result, err := uc.Execute(context.Background(), dto.RegisterUserRequest{
		Email:       "buyer@example.com",
		DisplayName: "Buyer",
		Password:    "Sup3rSecret",
	}, auditapp.RequestInfo{})

	require.NoError(t, err)
	assert.NotNil(t, result)
}
