package impl

import (
	"context"
	"log/slog"
	"strings"

	"eventhub/config"
	deliverycontext "eventhub/internal/delivery/context"
	"eventhub/internal/domain/constants"
	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/domain/repository"
	"eventhub/internal/domain/service"
	"eventhub/internal/errors"
	"eventhub/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	userRepo      repository.UserRepository
	storage       service.FileStorage
	maxUploadSize int64
	logger        *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Storage  service.FileStorage
	Config   *config.Config
	Logger   *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		userRepo:      params.UserRepo,
		storage:       params.Storage,
		maxUploadSize: maxUploadSize(params.Config),
		logger:        params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile retrieves the account.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "failed to get user profile")
		}

		return nil, errors.Wrap(err, "failed to get user profile")
	}

	return user, nil
}

// UpdateProfile updates the display name.
func (srv *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	srv.log(ctx).Info("Updating user profile", userIDAttr(userID))

	user, err := srv.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails("name must not be empty")
		}
		user.Name = name
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update user profile")
	}

	return user, nil
}

// UploadAvatar stores a new avatar, points the user at it and deletes the previous one.
func (srv *profileService) UploadAvatar(ctx context.Context, userID uuid.UUID, file *usecase.UploadInput) (*entity.User, error) {
	contentType, err := validateImage(file, srv.maxUploadSize)
	if err != nil {
		return nil, err
	}

	user, err := srv.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	key, publicURL, err := srv.storage.Upload(ctx, constants.StoragePrefixAvatars, file.Filename, contentType, file.Data)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrUploadFailed, err.Error())
	}

	oldURL := user.AvatarURL
	user.AvatarURL = publicURL
	if err := srv.userRepo.Update(ctx, user); err != nil {
		if delErr := srv.storage.Delete(ctx, key); delErr != nil {
			srv.log(ctx).Warn("Failed to clean up orphaned avatar", slog.String("key", key), slog.Any("error", delErr))
		}

		return nil, errors.Wrap(err, "failed to save avatar url")
	}

	deleteReplacedUpload(ctx, srv.storage, srv.log(ctx), oldURL)
	srv.log(ctx).Info("Avatar updated", userIDAttr(userID), slog.String("key", key))

	return user, nil
}

func maxUploadSize(cfg *config.Config) int64 {
	if cfg == nil || cfg.Storage == nil {
		return defaultMaxUploadSize
	}

	return cfg.Storage.MaxUploadSize
}
