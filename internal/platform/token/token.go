package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"inkwell/internal/shared/identity"
)

// ErrInvalidToken covers malformed, tampered, and expired credentials.
// Callers on read paths degrade to the anonymous identity; write paths
// reject the request.
var ErrInvalidToken = errors.New("invalid token")

// Service issues and verifies the signed identity credentials carried in
// Authorization headers. The signing secret is injected at bootstrap, never
// read from ambient process state.
type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// claims mirrors the wire payload: userId and role, plus registered
// issued-at/expiry claims.
type claims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
	Role   string `json:"role"`
}

// NewService builds a token service. ttl defaults to one day, now defaults
// to wall-clock UTC; both are injectable for deterministic tests.
func NewService(secret []byte, ttl time.Duration, now func() time.Time) *Service {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &Service{
		secret: secret,
		ttl:    ttl,
		now:    now,
	}
}

// Issue produces a signed HS256 credential encoding the account id and role.
func (s *Service) Issue(accountID string, role identity.Role) (string, error) {
	if len(s.secret) == 0 {
		return "", errors.New("token signing secret is not configured")
	}
	issuedAt := s.now()
	payload := claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.ttl)),
		},
		UserID: accountID,
		Role:   string(role),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, payload).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a credential and returns the identity it
// carries. Any failure mode collapses to ErrInvalidToken.
func (s *Service) Verify(raw string) (identity.Identity, error) {
	if raw == "" {
		return identity.Anonymous, ErrInvalidToken
	}

	var parsed claims
	_, err := jwt.ParseWithClaims(raw, &parsed, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return identity.Anonymous, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if parsed.UserID == "" || !identity.Role(parsed.Role).Valid() {
		return identity.Anonymous, ErrInvalidToken
	}
	return identity.Identity{
		UserID: parsed.UserID,
		Role:   identity.Role(parsed.Role),
	}, nil
}
