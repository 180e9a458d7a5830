// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

//go:generate mockery --all --with-expecter --case underscore --outpkg usecase --output ../mocks/usecase

import (
	"context"

	"eventhub/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     entity.Role
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput returns the account together with a fresh token pair.
type AuthOutput struct {
	User   *entity.User
	Tokens entity.TokenPair
}

// AuthUsecase defines registration, login and token refresh.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	RefreshToken(ctx context.Context, refreshToken string) (*entity.TokenPair, error)
}
