package bcryptadapter

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher implements the password hashing port with bcrypt. Cost 0 falls
// back to bcrypt's default (10).
type Hasher struct {
	Cost int
}

func (h Hasher) Hash(password string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

func (h Hasher) Compare(hashed string, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password))
}
