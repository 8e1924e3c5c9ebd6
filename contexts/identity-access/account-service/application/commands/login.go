package commands

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	application "inkwell/contexts/identity-access/account-service/application"
	"inkwell/contexts/identity-access/account-service/domain/entities"
	domainerrors "inkwell/contexts/identity-access/account-service/domain/errors"
	"inkwell/contexts/identity-access/account-service/ports"
)

// LoginCommand contains credential input for authentication.
type LoginCommand struct {
	Email    string
	Password string
}

// LoginResult carries the signed token and the authenticated account.
type LoginResult struct {
	Token   string
	Account entities.Account
}

// LoginUseCase authenticates credentials and issues a signed token.
type LoginUseCase struct {
	Repository ports.Repository
	Passwords  ports.PasswordHasher
	Tokens     ports.TokenIssuer
	Logger     *slog.Logger
}

// Execute resolves the account by email and compares the password hash.
// Unknown email and wrong password collapse into the same error so the
// response does not leak which half failed.
func (u LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (LoginResult, error) {
	logger := application.ResolveLogger(u.Logger)

	email := strings.TrimSpace(cmd.Email)
	if email == "" || cmd.Password == "" {
		return LoginResult{}, domainerrors.ErrInvalidCredentials
	}

	account, err := u.Repository.GetAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrAccountNotFound) {
			return LoginResult{}, domainerrors.ErrInvalidCredentials
		}
		logger.Error("login account lookup failed",
			"event", "account_login_lookup_failed",
			"module", "identity-access/account-service",
			"layer", "application",
			"error", err.Error(),
		)
		return LoginResult{}, err
	}

	if err := u.Passwords.Compare(account.PasswordHash, cmd.Password); err != nil {
		logger.Warn("login rejected",
			"event", "account_login_rejected",
			"module", "identity-access/account-service",
			"layer", "application",
			"account_id", account.AccountID,
		)
		return LoginResult{}, domainerrors.ErrInvalidCredentials
	}

	token, err := u.Tokens.Issue(account.AccountID, account.Role)
	if err != nil {
		return LoginResult{}, err
	}

	logger.Info("account logged in",
		"event", "account_logged_in",
		"module", "identity-access/account-service",
		"layer", "application",
		"account_id", account.AccountID,
		"role", string(account.Role),
	)
	return LoginResult{Token: token, Account: account}, nil
}
