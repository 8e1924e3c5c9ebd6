package queries

import (
	"context"
	"log/slog"

	"inkwell/contexts/identity-access/account-service/domain/entities"
	domainerrors "inkwell/contexts/identity-access/account-service/domain/errors"
	"inkwell/contexts/identity-access/account-service/ports"
	"inkwell/internal/shared/identity"
)

// ListAccountsUseCase returns all active accounts. Admin only.
type ListAccountsUseCase struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

func (u ListAccountsUseCase) Execute(ctx context.Context, actor identity.Identity) ([]entities.Account, error) {
	if !actor.IsAdmin() {
		return nil, domainerrors.ErrForbidden
	}
	return u.Repository.ListAccounts(ctx)
}
