// Package repository defines the persistence ports used by the usecases and the
// dashboard coordinator. Implementations live in internal/infra/persistence.
package repository

//go:generate mockery --all --with-expecter --case underscore --outpkg repository --output ../../mocks/repository

import (
	"context"
	"errors"

	"eventhub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is returned when no account has the requested id.
var ErrUserNotFound = errors.New("user not found")

// UserRepository stores planner, vendor and viewer accounts.
type UserRepository interface {
	// FindByID returns the account with the given id.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// Create inserts the account and fills its generated id.
	Create(ctx context.Context, user *entity.User) error

	// Update saves name and avatar changes.
	Update(ctx context.Context, user *entity.User) error
}
