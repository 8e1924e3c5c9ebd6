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

// RegisterCommand contains transport-agnostic registration input. Role is
// optional and defaults to the regular user role.
type RegisterCommand struct {
	Username string
	Email    string
	Password string
	Role     identity.Role
}

// RegisterResult carries the identifier of the created account.
type RegisterResult struct {
	AccountID string `json:"account_id"`
}

// RegisterUseCase creates a new account with a hashed password.
type RegisterUseCase struct {
	Repository  ports.Repository
	Passwords   ports.PasswordHasher
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

// Execute validates input, enforces username/email uniqueness, and persists
// the account. Uniqueness counts soft-deleted rows: a deleted user's email
// permanently blocks re-registration.
func (u RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (RegisterResult, error) {
	logger := application.ResolveLogger(u.Logger)

	username := strings.TrimSpace(cmd.Username)
	email := strings.TrimSpace(cmd.Email)
	if username == "" || email == "" || cmd.Password == "" {
		return RegisterResult{}, domainerrors.ErrMissingFields
	}
	role := cmd.Role
	if role == "" {
		role = identity.RoleUser
	}
	if !role.Valid() {
		return RegisterResult{}, domainerrors.ErrInvalidRole
	}

	taken, err := u.Repository.AccountTaken(ctx, email, username)
	if err != nil {
		logger.Error("register uniqueness lookup failed",
			"event", "account_register_lookup_failed",
			"module", "identity-access/account-service",
			"layer", "application",
			"username", username,
			"error", err.Error(),
		)
		return RegisterResult{}, err
	}
	if taken {
		return RegisterResult{}, domainerrors.ErrAccountExists
	}

	hash, err := u.Passwords.Hash(cmd.Password)
	if err != nil {
		return RegisterResult{}, err
	}

	accountID, err := u.IDGenerator.NewID(ctx)
	if err != nil {
		return RegisterResult{}, err
	}

	now := u.now()
	account := entities.Account{
		AccountID:    accountID,
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := u.Repository.CreateAccount(ctx, account); err != nil {
		return RegisterResult{}, err
	}

	logger.Info("account registered",
		"event", "account_registered",
		"module", "identity-access/account-service",
		"layer", "application",
		"account_id", accountID,
		"role", string(role),
	)
	return RegisterResult{AccountID: accountID}, nil
}

func (u RegisterUseCase) now() time.Time {
	if u.Clock != nil {
		return u.Clock.Now().UTC()
	}
	return time.Now().UTC()
}
