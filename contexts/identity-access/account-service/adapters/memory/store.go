package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"inkwell/contexts/identity-access/account-service/domain/entities"
	domainerrors "inkwell/contexts/identity-access/account-service/domain/errors"
	"inkwell/contexts/identity-access/account-service/ports"
)

// Store is an in-memory adapter implementing the repository port plus
// clock and id generation. It is intended for tests and local wiring.
type Store struct {
	mu       sync.RWMutex
	accounts map[string]entities.Account
}

func NewStore() *Store {
	return &Store{
		accounts: make(map[string]entities.Account),
	}
}

func (s *Store) CreateAccount(_ context.Context, account entities.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.accounts {
		if sameFold(existing.Email, account.Email) || sameFold(existing.Username, account.Username) {
			return domainerrors.ErrAccountExists
		}
	}
	s.accounts[account.AccountID] = account
	return nil
}

func (s *Store) GetAccount(_ context.Context, accountID string) (entities.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.accounts[accountID]
	if !ok || account.Deleted {
		return entities.Account{}, domainerrors.ErrAccountNotFound
	}
	return account, nil
}

// GetAccountByEmail intentionally ignores the deleted flag; login lookups
// preserve the original behavior.
func (s *Store) GetAccountByEmail(_ context.Context, email string) (entities.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, account := range s.accounts {
		if sameFold(account.Email, email) {
			return account, nil
		}
	}
	return entities.Account{}, domainerrors.ErrAccountNotFound
}

func (s *Store) LookupAccount(_ context.Context, accountID string) (entities.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.accounts[accountID]
	if !ok {
		return entities.Account{}, domainerrors.ErrAccountNotFound
	}
	return account, nil
}

func (s *Store) AccountTaken(_ context.Context, email string, username string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, account := range s.accounts {
		if sameFold(account.Email, email) || sameFold(account.Username, username) {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) UpdateAccount(_ context.Context, account entities.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[account.AccountID]; !ok {
		return domainerrors.ErrAccountNotFound
	}
	s.accounts[account.AccountID] = account
	return nil
}

func (s *Store) UpdateProfile(
	_ context.Context,
	accountID string,
	patch ports.ProfilePatch,
	now time.Time,
) (entities.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[accountID]
	if !ok || account.Deleted {
		return entities.Account{}, domainerrors.ErrAccountNotFound
	}

	for id, other := range s.accounts {
		if id == accountID {
			continue
		}
		if patch.Username != "" && sameFold(other.Username, patch.Username) {
			return entities.Account{}, domainerrors.ErrAccountExists
		}
		if patch.Email != "" && sameFold(other.Email, patch.Email) {
			return entities.Account{}, domainerrors.ErrAccountExists
		}
	}

	if patch.Username != "" {
		account.Username = patch.Username
	}
	if patch.Email != "" {
		account.Email = patch.Email
	}
	account.UpdatedAt = now
	s.accounts[accountID] = account
	return account, nil
}

func (s *Store) SoftDeleteAccount(_ context.Context, accountID string, now time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[accountID]
	if !ok || account.Deleted {
		return false, nil
	}
	account.Deleted = true
	account.UpdatedAt = now
	s.accounts[accountID] = account
	return true, nil
}

func (s *Store) ListAccounts(_ context.Context) ([]entities.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Account, 0, len(s.accounts))
	for _, account := range s.accounts {
		if account.Deleted {
			continue
		}
		items = append(items, account)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].Username < items[j].Username
		}
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items, nil
}

// Username implements the account directory consumed by the publishing
// context when rendering author references.
func (s *Store) Username(_ context.Context, accountID string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.accounts[accountID]
	if !ok {
		return "", domainerrors.ErrAccountNotFound
	}
	return account.Username, nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

func sameFold(a, b string) bool {
	return b != "" && strings.EqualFold(a, b)
}
