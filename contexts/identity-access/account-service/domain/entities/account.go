package entities

import (
	"time"

	"inkwell/internal/shared/identity"
)

// Account is a registered platform user. The password hash never leaves the
// module; transport DTOs carry only public fields.
type Account struct {
	AccountID    string        `json:"account_id"`
	Username     string        `json:"username"`
	Email        string        `json:"email"`
	PasswordHash string        `json:"-"`
	Role         identity.Role `json:"role"`
	Deleted      bool          `json:"deleted"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}
