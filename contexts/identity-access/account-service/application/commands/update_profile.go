package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	application "inkwell/contexts/identity-access/account-service/application"
	"inkwell/contexts/identity-access/account-service/domain/entities"
	domainerrors "inkwell/contexts/identity-access/account-service/domain/errors"
	"inkwell/contexts/identity-access/account-service/ports"
	"inkwell/internal/shared/identity"
)

// UpdateProfileCommand patches the caller's own username/email. Empty
// strings are treated as "not provided", so a field cannot be cleared.
type UpdateProfileCommand struct {
	Actor    identity.Identity
	Username string
	Email    string
}

// UpdateProfileUseCase applies a partial profile update.
type UpdateProfileUseCase struct {
	Repository ports.Repository
	Clock      ports.Clock
	Logger     *slog.Logger
}

func (u UpdateProfileUseCase) Execute(ctx context.Context, cmd UpdateProfileCommand) (entities.Account, error) {
	logger := application.ResolveLogger(u.Logger)

	if cmd.Actor.IsAnonymous() {
		return entities.Account{}, domainerrors.ErrForbidden
	}

	patch := ports.ProfilePatch{
		Username: strings.TrimSpace(cmd.Username),
		Email:    strings.TrimSpace(cmd.Email),
	}
	if patch.Username == "" && patch.Email == "" {
		return entities.Account{}, domainerrors.ErrNoUpdates
	}

	account, err := u.Repository.UpdateProfile(ctx, cmd.Actor.UserID, patch, u.now())
	if err != nil {
		return entities.Account{}, err
	}

	logger.Info("profile updated",
		"event", "account_profile_updated",
		"module", "identity-access/account-service",
		"layer", "application",
		"account_id", cmd.Actor.UserID,
	)
	return account, nil
}

func (u UpdateProfileUseCase) now() time.Time {
	if u.Clock != nil {
		return u.Clock.Now().UTC()
	}
	return time.Now().UTC()
}
