package unit

import (
	"context"
	"errors"
	"testing"
	"time"

	account "inkwell/contexts/identity-access/account-service"
	domainerrors "inkwell/contexts/identity-access/account-service/domain/errors"
	httptransport "inkwell/contexts/identity-access/account-service/transport/http"
	"inkwell/internal/platform/token"
	"inkwell/internal/shared/identity"
)

func newAccountModule() account.Module {
	tokens := token.NewService([]byte("unit-secret"), time.Hour, nil)
	return account.NewInMemoryModule(nil, tokens)
}

func TestAccountRegisterAndLoginRoundTrip(t *testing.T) {
	module := newAccountModule()
	ctx := context.Background()

	_, err := module.Handler.RegisterHandler(ctx, httptransport.RegisterRequest{
		Username: "ada",
		Email:    "ada@example.com",
		Password: "hunter2!",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	resp, err := module.Handler.LoginHandler(ctx, httptransport.LoginRequest{
		Email:    "ada@example.com",
		Password: "hunter2!",
	})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if resp.Token == "" {
		t.Fatalf("expected a signed token")
	}
	if resp.User.Username != "ada" || resp.User.Role != "user" {
		t.Fatalf("unexpected user summary %+v", resp.User)
	}
}

func TestAccountRegisterRejectsMissingFields(t *testing.T) {
	module := newAccountModule()

	_, err := module.Handler.RegisterHandler(context.Background(), httptransport.RegisterRequest{
		Username: "ada",
	})
	if !errors.Is(err, domainerrors.ErrMissingFields) {
		t.Fatalf("expected missing fields error, got %v", err)
	}
}

func TestAccountRegisterRejectsUnknownRole(t *testing.T) {
	module := newAccountModule()

	_, err := module.Handler.RegisterHandler(context.Background(), httptransport.RegisterRequest{
		Username: "ada",
		Email:    "ada@example.com",
		Password: "hunter2!",
		Role:     "superuser",
	})
	if !errors.Is(err, domainerrors.ErrInvalidRole) {
		t.Fatalf("expected invalid role error, got %v", err)
	}
}

func TestAccountLoginRejectsWrongPassword(t *testing.T) {
	module := newAccountModule()
	ctx := context.Background()

	if _, err := module.Handler.RegisterHandler(ctx, httptransport.RegisterRequest{
		Username: "ada",
		Email:    "ada@example.com",
		Password: "hunter2!",
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, err := module.Handler.LoginHandler(ctx, httptransport.LoginRequest{
		Email:    "ada@example.com",
		Password: "wrong",
	})
	if !errors.Is(err, domainerrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}

func TestAccountChangeRoleRequiresAdmin(t *testing.T) {
	module := newAccountModule()
	ctx := context.Background()

	if _, err := module.Handler.RegisterHandler(ctx, httptransport.RegisterRequest{
		Username: "ada",
		Email:    "ada@example.com",
		Password: "hunter2!",
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	target, err := module.Store.GetAccountByEmail(ctx, "ada@example.com")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}

	user := identity.Identity{UserID: "someone-else", Role: identity.RoleUser}
	if _, err := module.Handler.ChangeRoleHandler(ctx, user, target.AccountID, httptransport.ChangeRoleRequest{
		Role: "admin",
	}); !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected forbidden for non-admin, got %v", err)
	}

	admin := identity.Identity{UserID: "root-id", Role: identity.RoleAdmin}
	if _, err := module.Handler.ChangeRoleHandler(ctx, admin, target.AccountID, httptransport.ChangeRoleRequest{
		Role: "admin",
	}); err != nil {
		t.Fatalf("admin role change failed: %v", err)
	}

	updated, err := module.Store.GetAccount(ctx, target.AccountID)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if updated.Role != identity.RoleAdmin {
		t.Fatalf("expected promoted role, got %s", updated.Role)
	}
}

func TestAccountSoftDeleteIsMonotonic(t *testing.T) {
	module := newAccountModule()
	ctx := context.Background()

	if _, err := module.Handler.RegisterHandler(ctx, httptransport.RegisterRequest{
		Username: "ada",
		Email:    "ada@example.com",
		Password: "hunter2!",
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	target, err := module.Store.GetAccountByEmail(ctx, "ada@example.com")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	self := identity.Identity{UserID: target.AccountID, Role: identity.RoleUser}

	if _, err := module.Handler.DeleteAccountHandler(ctx, self, target.AccountID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := module.Handler.DeleteAccountHandler(ctx, self, target.AccountID); !errors.Is(err, domainerrors.ErrAccountNotFound) {
		t.Fatalf("expected not found on repeat delete, got %v", err)
	}

	// Login still resolves the account: the lookup deliberately skips the
	// deleted filter.
	if _, err := module.Handler.LoginHandler(ctx, httptransport.LoginRequest{
		Email:    "ada@example.com",
		Password: "hunter2!",
	}); err != nil {
		t.Fatalf("login after delete failed: %v", err)
	}

	// But the active-account read is gone.
	if _, err := module.Handler.GetProfileHandler(ctx, self); !errors.Is(err, domainerrors.ErrAccountNotFound) {
		t.Fatalf("expected profile not found, got %v", err)
	}
}

func TestAccountUpdateProfileRequiresChanges(t *testing.T) {
	module := newAccountModule()
	ctx := context.Background()

	if _, err := module.Handler.RegisterHandler(ctx, httptransport.RegisterRequest{
		Username: "ada",
		Email:    "ada@example.com",
		Password: "hunter2!",
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	target, err := module.Store.GetAccountByEmail(ctx, "ada@example.com")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	self := identity.Identity{UserID: target.AccountID, Role: identity.RoleUser}

	_, err = module.Handler.UpdateProfileHandler(ctx, self, httptransport.UpdateProfileRequest{})
	if !errors.Is(err, domainerrors.ErrNoUpdates) {
		t.Fatalf("expected no-updates error, got %v", err)
	}

	updated, err := module.Handler.UpdateProfileHandler(ctx, self, httptransport.UpdateProfileRequest{
		Username: "ada.l",
	})
	if err != nil {
		t.Fatalf("patch failed: %v", err)
	}
	if updated.Username != "ada.l" || updated.Email != "ada@example.com" {
		t.Fatalf("unexpected patched account %+v", updated)
	}
}
