package identity

// Role is the coarse account role carried inside signed tokens.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether the role is one of the supported values.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// Identity is the authenticated caller derived from a verified token.
// The zero value is the anonymous caller.
type Identity struct {
	UserID string
	Role   Role
}

// Anonymous is the identity of an unauthenticated caller.
var Anonymous = Identity{}

// IsAnonymous reports whether no authenticated user is attached.
func (i Identity) IsAnonymous() bool {
	return i.UserID == ""
}

// IsAdmin reports whether the caller carries the admin role.
func (i Identity) IsAdmin() bool {
	return !i.IsAnonymous() && i.Role == RoleAdmin
}
