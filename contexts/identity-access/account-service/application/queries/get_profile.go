package queries

import (
	"context"
	"log/slog"

	"inkwell/contexts/identity-access/account-service/domain/entities"
	domainerrors "inkwell/contexts/identity-access/account-service/domain/errors"
	"inkwell/contexts/identity-access/account-service/ports"
	"inkwell/internal/shared/identity"
)

// GetProfileUseCase returns the caller's own active account.
type GetProfileUseCase struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

func (u GetProfileUseCase) Execute(ctx context.Context, actor identity.Identity) (entities.Account, error) {
	if actor.IsAnonymous() {
		return entities.Account{}, domainerrors.ErrForbidden
	}
	return u.Repository.GetAccount(ctx, actor.UserID)
}
