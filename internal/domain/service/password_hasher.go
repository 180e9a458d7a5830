// Package service defines the ports to infrastructure the usecases depend on:
// hashing, tokens, storage, notifications and the change feed.
package service

//go:generate mockery --all --with-expecter --case underscore --outpkg service --output ../../mocks/service

// PasswordHasher defines the interface for password hashing and verification.
type PasswordHasher interface {
	// Hash validates the password strength and generates a salted hash.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash to see if they match.
	Check(password, hash string) bool

	// ValidatePasswordStrength reports why a password is too weak, or nil.
	ValidatePasswordStrength(password string) error
}
