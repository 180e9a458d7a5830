package usecase

import (
	"context"

	"eventhub/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase defines the interface for account profile operations.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)
	UploadAvatar(ctx context.Context, userID uuid.UUID, file *UploadInput) (*entity.User, error)
}

// UpdateProfileInput defines the data required to update a user profile.
type UpdateProfileInput struct {
	Name *string `json:"name,omitempty"`
}
