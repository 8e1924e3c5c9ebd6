package httptransport

// RegisterRequest is the request body for account registration.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

// LoginRequest is the request body for authentication.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AccountSummary is the public account shape embedded in login responses.
type AccountSummary struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// LoginResponse carries the signed token and the authenticated user.
type LoginResponse struct {
	Token string         `json:"token"`
	User  AccountSummary `json:"user"`
}

// ChangeRoleRequest is the request body for admin role updates.
type ChangeRoleRequest struct {
	Role string `json:"role"`
}

// UpdateProfileRequest is the partial-update body for the caller's profile.
type UpdateProfileRequest struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
}

// AccountResponse is the public account shape for profile and admin listings.
type AccountResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// MessageResponse is the generic success acknowledgement body.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the error body: a human-readable message plus optional
// detail. No machine-readable codes beyond the HTTP status.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
