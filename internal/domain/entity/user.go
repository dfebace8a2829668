package entity

// Known user roles
const (
	RoleUser  = "User"
	RoleAdmin = "Admin"
)

// UserField names a user attribute that may be used as a unique lookup key
type UserField string

// Lookup keys accepted by user searches
const (
	UserFieldID       UserField = "id"
	UserFieldUsername UserField = "username"
)

// UserFilterFields returns the closed set of permitted user lookup keys
func UserFilterFields() []string {
	return []string{string(UserFieldID), string(UserFieldUsername)}
}

// User represents a registered user of the bank
type User struct {
	ID        uint64 `validate:"required"`
	Username  string `validate:"required"`
	Password  string `validate:"required"`
	FirstName string `validate:"required"`
	LastName  string `validate:"required"`
	Role      string `validate:"required"`
}

// WithoutPassword returns a copy of the user with the password removed
func (u *User) WithoutPassword() *User {
	if u == nil {
		return nil
	}
	sanitized := *u
	sanitized.Password = ""
	return &sanitized
}

// IsAdmin reports whether the user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
