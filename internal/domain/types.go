package domain

import "time"

// Role names carried in tokens.
const RoleAdmin = "admin"

// AuthContext carries the authenticated admin for the current request.
type AuthContext struct {
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// IsAdmin reports whether the context belongs to a logged-in admin.
func (a *AuthContext) IsAdmin() bool {
	return a != nil && a.Username != "" && a.Role == RoleAdmin
}

// RequireAdmin returns AuthRequiredError unless a is an admin session.
func RequireAdmin(a *AuthContext) error {
	if !a.IsAdmin() {
		return AuthRequiredError{}
	}
	return nil
}
