package token

import (
	"errors"
	"testing"
	"time"

	"inkwell/internal/shared/identity"
)

func TestIssueAndVerifyRoundTrip(t *testing.T) {
	svc := NewService([]byte("fixture-secret"), time.Hour, nil)

	signed, err := svc.Issue("user-1", identity.RoleAdmin)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	id, err := svc.Verify(signed)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if id.UserID != "user-1" {
		t.Fatalf("expected userId user-1, got %q", id.UserID)
	}
	if id.Role != identity.RoleAdmin {
		t.Fatalf("expected admin role, got %q", id.Role)
	}
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	svc := NewService([]byte("fixture-secret"), time.Hour, nil)
	other := NewService([]byte("different-secret"), time.Hour, nil)

	signed, err := other.Issue("user-1", identity.RoleUser)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := svc.Verify(signed); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for foreign signature, got %v", err)
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	issuedAt := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := issuedAt
	svc := NewService([]byte("fixture-secret"), time.Hour, func() time.Time { return clock })

	signed, err := svc.Issue("user-1", identity.RoleUser)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	clock = issuedAt.Add(2 * time.Hour)
	if _, err := svc.Verify(signed); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestVerifyRejectsMalformedToken(t *testing.T) {
	svc := NewService([]byte("fixture-secret"), time.Hour, nil)

	for _, raw := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := svc.Verify(raw); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken for %q, got %v", raw, err)
		}
	}
}
