package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	application "inkwell/contexts/identity-access/account-service/application"
	domainerrors "inkwell/contexts/identity-access/account-service/domain/errors"
	"inkwell/contexts/identity-access/account-service/ports"
	"inkwell/internal/shared/identity"
)

// ChangeRoleCommand promotes or demotes an account. Admin only.
type ChangeRoleCommand struct {
	Actor     identity.Identity
	AccountID string
	Role      identity.Role
}

// ChangeRoleUseCase applies an admin role change to any account,
// soft-deleted ones included.
type ChangeRoleUseCase struct {
	Repository ports.Repository
	Clock      ports.Clock
	Logger     *slog.Logger
}

func (u ChangeRoleUseCase) Execute(ctx context.Context, cmd ChangeRoleCommand) error {
	logger := application.ResolveLogger(u.Logger)

	if !cmd.Actor.IsAdmin() {
		return domainerrors.ErrForbidden
	}
	if !cmd.Role.Valid() {
		return domainerrors.ErrInvalidRole
	}
	if strings.TrimSpace(cmd.AccountID) == "" {
		return domainerrors.ErrAccountNotFound
	}

	account, err := u.Repository.LookupAccount(ctx, cmd.AccountID)
	if err != nil {
		return err
	}

	account.Role = cmd.Role
	account.UpdatedAt = u.now()
	if err := u.Repository.UpdateAccount(ctx, account); err != nil {
		return err
	}

	logger.Info("account role changed",
		"event", "account_role_changed",
		"module", "identity-access/account-service",
		"layer", "application",
		"account_id", cmd.AccountID,
		"role", string(cmd.Role),
		"admin_id", cmd.Actor.UserID,
	)
	return nil
}

func (u ChangeRoleUseCase) now() time.Time {
	if u.Clock != nil {
		return u.Clock.Now().UTC()
	}
	return time.Now().UTC()
}
