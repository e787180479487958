package usecases

import (
	"context"
	"fmt"

	auditapp "github.com/sequencehub/sequencehub/internal/application/audit"
	"github.com/sequencehub/sequencehub/internal/application/user/dto"
	"github.com/sequencehub/sequencehub/internal/domain/user"
	vo "github.com/sequencehub/sequencehub/internal/domain/user/valueobjects"
	"github.com/sequencehub/sequencehub/internal/shared/authorization"
	"github.com/sequencehub/sequencehub/internal/shared/constants"
	"github.com/sequencehub/sequencehub/internal/shared/errors"
	"github.com/sequencehub/sequencehub/internal/shared/logger"
)

// RegisterUserUseCase handles the business logic for account registration
type RegisterUserUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	email    EmailSender
	recorder *auditapp.Recorder
	logger   logger.Interface
}

// NewRegisterUserUseCase creates a new register user use case
func NewRegisterUserUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	email EmailSender,
	recorder *auditapp.Recorder,
	logger logger.Interface,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		email:    email,
		recorder: recorder,
		logger:   logger,
	}
}

// Execute executes the register user use case. The password policy runs
// before any database work so a weak password never costs a write.
func (uc *RegisterUserUseCase) Execute(ctx context.Context, request dto.RegisterUserRequest, req auditapp.RequestInfo) (*dto.UserResponse, error) {
	email, err := vo.NewEmail(request.Email)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	password, err := vo.NewPassword(request.Password)
	if err != nil {
		uc.logger.Warnw("registration rejected by password policy", "email", email.String())
		return nil, errors.NewValidationError(err.Error())
	}

	role := authorization.RoleBuyer
	if request.Role != "" {
		role = authorization.ParseUserRole(request.Role)
		if role == authorization.RoleAdmin {
			return nil, errors.NewValidationError("cannot self-register as admin")
		}
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, email.String())
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, errors.NewConflictError("email already registered")
	}

	hash, err := uc.hasher.Hash(password.String())
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser, err := user.NewUser(email, request.DisplayName, role, hash)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		return nil, err
	}

	userID := newUser.ID()
	uc.recorder.Record(ctx, constants.AuditUserRegistered, &userID, "user", fmt.Sprintf("%d", userID),
		map[string]any{"role": role.String()}, req)

	if err := uc.email.SendWelcomeEmail(email.String(), newUser.DisplayName()); err != nil {
		uc.logger.Warnw("failed to send welcome email", "user_id", userID, "error", err)
	}

	return ToUserResponse(newUser), nil
}

// ToUserResponse maps a user aggregate to its API representation.
func ToUserResponse(u *user.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:             u.ID(),
		Email:          u.Email().String(),
		DisplayName:    u.DisplayName(),
		Role:           u.Role().String(),
		IsActive:       u.IsActive(),
		PayoutsEnabled: u.PayoutsEnabled(),
		CreatedAt:      u.CreatedAt(),
	}
}
