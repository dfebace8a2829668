package entity

// Principal is the authenticated identity attached to a request
type Principal struct {
	ID       uint64
	Username string
	Role     string
}

// NewPrincipal builds a principal from an authenticated user
func NewPrincipal(user *User) *Principal {
	return &Principal{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
	}
}

// IsAdmin reports whether the principal holds the admin role
func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role == RoleAdmin
}
