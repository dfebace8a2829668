package model

// Role represents the database model for user roles
type Role struct {
	ID   uint64 `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"not null;size:50;uniqueIndex"`
}

// TableName specifies the table name for Role
func (Role) TableName() string {
	return "roles"
}

// User represents the database model for users.
// Usernames are not unique at the store level; availability is checked before writes.
type User struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	Username  string `gorm:"not null;size:255;index"`
	Password  string `gorm:"not null;size:255"`
	FirstName string `gorm:"not null;size:255"`
	LastName  string `gorm:"not null;size:255"`
	RoleID    uint64 `gorm:"not null;index"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}

// UserRow is a user joined with the name of its role
type UserRow struct {
	ID        uint64
	Username  string
	Password  string
	FirstName string
	LastName  string
	RoleName  string
}
