package security

// PasswordHasher turns plaintext passwords into their stored form and checks candidates against it
type PasswordHasher interface {
	// Hash returns the stored representation of a password
	Hash(password string) (string, error)
	// Compare reports whether password matches the stored representation
	Compare(stored, password string) bool
}
