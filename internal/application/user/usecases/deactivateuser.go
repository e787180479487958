package usecases

import (
	"context"
	"fmt"

	auditapp "github.com/sequencehub/sequencehub/internal/application/audit"
	"github.com/sequencehub/sequencehub/internal/domain/user"
	"github.com/sequencehub/sequencehub/internal/shared/constants"
	"github.com/sequencehub/sequencehub/internal/shared/errors"
	"github.com/sequencehub/sequencehub/internal/shared/logger"
)

// DeactivateUserUseCase disables an account. Admin only.
type DeactivateUserUseCase struct {
	userRepo user.Repository
	recorder *auditapp.Recorder
	logger   logger.Interface
}

// NewDeactivateUserUseCase creates a new deactivate user use case
func NewDeactivateUserUseCase(
	userRepo user.Repository,
	recorder *auditapp.Recorder,
	logger logger.Interface,
) *DeactivateUserUseCase {
	return &DeactivateUserUseCase{
		userRepo: userRepo,
		recorder: recorder,
		logger:   logger,
	}
}

// Execute executes the deactivate user use case
func (uc *DeactivateUserUseCase) Execute(ctx context.Context, adminID, targetID uint, req auditapp.RequestInfo) error {
	if adminID == targetID {
		return errors.NewValidationError("cannot deactivate your own account")
	}

	u, err := uc.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return err
	}
	if !u.IsActive() {
		return errors.NewConflictError("account is already deactivated")
	}

	u.Deactivate()
	if err := uc.userRepo.Update(ctx, u); err != nil {
		return err
	}

	uc.recorder.Record(ctx, constants.AuditUserDeactivated, &adminID, "user", fmt.Sprintf("%d", targetID),
		map[string]any{"target_email": u.Email().String()}, req)

	uc.logger.Infow("user deactivated", "admin_id", adminID, "user_id", targetID)
	return nil
}
