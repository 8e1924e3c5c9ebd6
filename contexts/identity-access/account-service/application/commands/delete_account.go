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

// DeleteAccountCommand soft-deletes an account. Users may delete
// themselves; admins may delete anyone.
type DeleteAccountCommand struct {
	Actor     identity.Identity
	AccountID string
}

// DeleteAccountUseCase marks an account deleted. Deletion is terminal:
// no path resets the flag, and the row is never removed.
type DeleteAccountUseCase struct {
	Repository ports.Repository
	Clock      ports.Clock
	Logger     *slog.Logger
}

func (u DeleteAccountUseCase) Execute(ctx context.Context, cmd DeleteAccountCommand) error {
	logger := application.ResolveLogger(u.Logger)

	accountID := strings.TrimSpace(cmd.AccountID)
	if accountID == "" {
		return domainerrors.ErrAccountNotFound
	}
	if !identity.CanMutate(cmd.Actor, accountID, true) {
		return domainerrors.ErrForbidden
	}

	deleted, err := u.Repository.SoftDeleteAccount(ctx, accountID, u.now())
	if err != nil {
		return err
	}
	if !deleted {
		return domainerrors.ErrAccountNotFound
	}

	logger.Info("account soft deleted",
		"event", "account_soft_deleted",
		"module", "identity-access/account-service",
		"layer", "application",
		"account_id", accountID,
		"actor_id", cmd.Actor.UserID,
	)
	return nil
}

func (u DeleteAccountUseCase) now() time.Time {
	if u.Clock != nil {
		return u.Clock.Now().UTC()
	}
	return time.Now().UTC()
}
