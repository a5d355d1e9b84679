package auth

// Principal is the authenticated caller of an operation. It is always passed
// explicitly to services.
type Principal struct {
	UserID string
	Roles  []string
}

// NewPrincipal creates a principal with the given subject and roles.
func NewPrincipal(userID string, roles ...string) Principal {
	return Principal{UserID: userID, Roles: roles}
}

// HasRole reports whether the principal carries role.
func (p Principal) HasRole(role string) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the principal carries the administrative role.
func (p Principal) IsAdmin() bool {
	return p.HasRole(RoleAdmin)
}

// IsAnonymous reports whether no identity is attached.
func (p Principal) IsAnonymous() bool {
	return p.UserID == ""
}
