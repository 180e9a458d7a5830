package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderEmail is the provider name for email/password credentials.
const ProviderEmail = "email"

// Authentication represents a single method of logging in (a credential).
type Authentication struct {
	ID             uuid.UUID // The unique ID for this authentication record.
	UserID         uuid.UUID // Links this authentication method to the User it belongs to.
	Provider       string    // The authentication provider, currently always "email".
	ProviderUserID string    // Provider-side identifier; the email address for email credentials.
	PasswordHash   string    // Bcrypt-hashed password.
	CreatedAt      time.Time
}

// TokenPair is issued on login, registration and refresh.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int64  `json:"expiresIn"`
}
