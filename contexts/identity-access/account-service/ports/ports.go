package ports

import (
	"context"
	"time"

	"inkwell/contexts/identity-access/account-service/domain/entities"
	"inkwell/internal/shared/identity"
)

// Clock abstracts current time for deterministic tests.
type Clock interface {
	Now() time.Time
}

// IDGenerator abstracts UUID generation for new account rows.
type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// ProfilePatch carries the fields of a partial profile update. Empty
// strings mean "not provided".
type ProfilePatch struct {
	Username string
	Email    string
}

// Repository is the persistence boundary for account state.
type Repository interface {
	// CreateAccount inserts a new account and surfaces
	// ErrAccountExists on a username/email uniqueness violation.
	CreateAccount(ctx context.Context, account entities.Account) error

	// GetAccount returns an active (non-deleted) account by id.
	GetAccount(ctx context.Context, accountID string) (entities.Account, error)

	// GetAccountByEmail resolves an account for login. Soft-deleted rows
	// are not excluded; the original behavior is preserved.
	GetAccountByEmail(ctx context.Context, email string) (entities.Account, error)

	// LookupAccount returns an account by id regardless of deletion state.
	// Role management operates on any row, matching the original.
	LookupAccount(ctx context.Context, accountID string) (entities.Account, error)

	// AccountTaken reports whether the email or username is already in
	// use. Soft-deleted rows still count: a deleted user's email blocks
	// re-registration.
	AccountTaken(ctx context.Context, email string, username string) (bool, error)

	// UpdateAccount persists a mutated account record.
	UpdateAccount(ctx context.Context, account entities.Account) error

	// UpdateProfile applies a partial patch to an active account and
	// returns the updated record. Uniqueness violations surface as
	// ErrAccountExists.
	UpdateProfile(ctx context.Context, accountID string, patch ProfilePatch, now time.Time) (entities.Account, error)

	// SoftDeleteAccount marks an active account deleted. Returns false
	// when the account is missing or already deleted.
	SoftDeleteAccount(ctx context.Context, accountID string, now time.Time) (bool, error)

	// ListAccounts returns all active accounts.
	ListAccounts(ctx context.Context) ([]entities.Account, error)
}

// PasswordHasher is the black-box hashing primitive.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hashed string, password string) error
}

// TokenIssuer mints signed identity credentials on login.
type TokenIssuer interface {
	Issue(accountID string, role identity.Role) (string, error)
}
