package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_WithoutPassword(t *testing.T) {
	t.Run("Strips password from a copy", func(t *testing.T) {
		user := &User{ID: 1, Username: "aanderson", Password: "p4ssw0rd", FirstName: "Alice", LastName: "Anderson", Role: RoleAdmin}

		sanitized := user.WithoutPassword()

		assert.Empty(t, sanitized.Password)
		assert.Equal(t, "aanderson", sanitized.Username)
		assert.Equal(t, "p4ssw0rd", user.Password, "original must be untouched")
	})

	t.Run("Nil user", func(t *testing.T) {
		var user *User
		assert.Nil(t, user.WithoutPassword())
	})
}

func TestUser_IsAdmin(t *testing.T) {
	assert.True(t, (&User{Role: RoleAdmin}).IsAdmin())
	assert.False(t, (&User{Role: RoleUser}).IsAdmin())
}

func TestUserFilterFields(t *testing.T) {
	assert.ElementsMatch(t, []string{"id", "username"}, UserFilterFields())
}

func TestPrincipal(t *testing.T) {
	principal := NewPrincipal(&User{ID: 7, Username: "bbailey", Role: RoleUser})

	assert.Equal(t, uint64(7), principal.ID)
	assert.Equal(t, "bbailey", principal.Username)
	assert.False(t, principal.IsAdmin())

	var missing *Principal
	assert.False(t, missing.IsAdmin())
}
