package repository

import (
	"context"
	"errors"

	"eventhub/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrVendorProfileNotFound is returned when no vendor profile matches the lookup.
	ErrVendorProfileNotFound = errors.New("vendor profile not found")
	// ErrVendorProfileExists is returned when a user already has a vendor profile.
	ErrVendorProfileExists = errors.New("vendor profile already exists")
)

// VendorProfileRepository persists vendor profiles.
type VendorProfileRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.VendorProfile, error)

	// FindByUserID looks up the profile owned by a user. Returns ErrVendorProfileNotFound when absent.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.VendorProfile, error)

	Create(ctx context.Context, profile *entity.VendorProfile) error
	Update(ctx context.Context, profile *entity.VendorProfile) error
}
