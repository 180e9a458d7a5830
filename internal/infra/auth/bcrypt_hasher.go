// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"
	"unicode"

	"eventhub/config"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/domain/service"
	"eventhub/internal/errors"

	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

var forbiddenPasswordWords = []string{"password", "admin", "eventhub", "qwerty"}

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a hasher with the cost from configuration.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg != nil && cfg.Auth != nil && cfg.Auth.BcryptCost > 0 {
		cost = cfg.Auth.BcryptCost
	}

	return NewBcryptHasherWithCost(cost)
}

// NewBcryptHasherWithCost creates a hasher with an explicit cost, clamped to bcrypt's bounds.
func NewBcryptHasherWithCost(cost int) service.PasswordHasher {
	if cost < bcrypt.MinCost {
		cost = bcrypt.MinCost
	}
	if cost > bcrypt.MaxCost {
		cost = bcrypt.MaxCost
	}

	return &bcryptHasher{cost: cost}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
func (h *bcryptHasher) Hash(password string) (string, error) {
	if err := h.ValidatePasswordStrength(password); err != nil {
		return "", err
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePasswordStrength checks length, character classes and forbidden words.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	switch {
	case len([]rune(password)) < minPasswordLength:
		return domainerrors.ErrWeakPassword.WithDetails("must be at least 8 characters long")
	case !h.hasLowercase(password):
		return domainerrors.ErrWeakPassword.WithDetails("must contain at least one lowercase letter")
	case !h.hasUppercase(password):
		return domainerrors.ErrWeakPassword.WithDetails("must contain at least one uppercase letter")
	case !h.hasNumbers(password):
		return domainerrors.ErrWeakPassword.WithDetails("must contain at least one number")
	case !h.hasSpecialChars(password):
		return domainerrors.ErrWeakPassword.WithDetails("must contain at least one special character")
	case h.containsForbiddenWords(password, forbiddenPasswordWords):
		return domainerrors.ErrWeakPassword.WithDetails("contains forbidden words")
	}

	return nil
}

func (h *bcryptHasher) hasUppercase(s string) bool {
	return strings.IndexFunc(s, unicode.IsUpper) >= 0
}

func (h *bcryptHasher) hasLowercase(s string) bool {
	return strings.IndexFunc(s, unicode.IsLower) >= 0
}

func (h *bcryptHasher) hasNumbers(s string) bool {
	return strings.IndexFunc(s, unicode.IsDigit) >= 0
}

func (h *bcryptHasher) hasSpecialChars(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsPunct(r) || unicode.IsSymbol(r)
	}) >= 0
}

func (h *bcryptHasher) containsForbiddenWords(s string, words []string) bool {
	lower := strings.ToLower(s)
	for _, w := range words {
		if strings.Contains(lower, w) {
			return true
		}
	}

	return false
}
