package usecase

import (
	"context"

	"eventhub/internal/domain/entity"

	"github.com/google/uuid"
)

// VendorProfileInput carries the editable vendor profile fields.
type VendorProfileInput struct {
	BusinessName     string
	Description      string
	BusinessCategory string
}

// UpdateVendorProfileInput carries a partial vendor profile update.
type UpdateVendorProfileInput struct {
	BusinessName     *string
	Description      *string
	BusinessCategory *string
}

// VendorQRCode is a rendered share code.
type VendorQRCode struct {
	ShareURL string
	PNG      []byte
}

// VendorProfileUsecase manages the business profile of vendor accounts.
type VendorProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.VendorProfile, error)
	CreateProfile(ctx context.Context, userID uuid.UUID, input *VendorProfileInput) (*entity.VendorProfile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateVendorProfileInput) (*entity.VendorProfile, error)
	UploadLogo(ctx context.Context, userID uuid.UUID, file *UploadInput) (*entity.VendorProfile, error)
	ShareQRCode(ctx context.Context, userID uuid.UUID) (*VendorQRCode, error)
}
