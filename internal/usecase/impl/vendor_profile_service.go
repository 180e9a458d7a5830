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

// vendorProfileService implements the VendorProfileUsecase interface.
type vendorProfileService struct {
	userRepo      repository.UserRepository
	vendorRepo    repository.VendorProfileRepository
	storage       service.FileStorage
	qrCodes       service.QRCodeService
	publisher     service.ChangePublisher
	vendorIDs     service.VendorIDCache
	maxUploadSize int64
	logger        *slog.Logger
}

// VendorProfileServiceParams holds dependencies for VendorProfileService, injected by Fx.
type VendorProfileServiceParams struct {
	fx.In

	UserRepo   repository.UserRepository
	VendorRepo repository.VendorProfileRepository
	Storage    service.FileStorage
	QRCodes    service.QRCodeService
	Publisher  service.ChangePublisher
	VendorIDs  service.VendorIDCache
	Config     *config.Config
	Logger     *slog.Logger
}

// NewVendorProfileService is the constructor for vendorProfileService.
func NewVendorProfileService(params VendorProfileServiceParams) usecase.VendorProfileUsecase {
	return &vendorProfileService{
		userRepo:      params.UserRepo,
		vendorRepo:    params.VendorRepo,
		storage:       params.Storage,
		qrCodes:       params.QRCodes,
		publisher:     params.Publisher,
		vendorIDs:     params.VendorIDs,
		maxUploadSize: maxUploadSize(params.Config),
		logger:        params.Logger,
	}
}

func (srv *vendorProfileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile returns the vendor profile owned by userID.
func (srv *vendorProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.VendorProfile, error) {
	profile, err := srv.vendorRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrVendorProfileNotFound) {
			return nil, errors.Wrap(domainerrors.ErrVendorProfileNotFound, "failed to get vendor profile")
		}

		return nil, errors.Wrap(err, "failed to get vendor profile")
	}

	return profile, nil
}

// CreateProfile onboards a vendor account.
func (srv *vendorProfileService) CreateProfile(ctx context.Context, userID uuid.UUID, input *usecase.VendorProfileInput) (*entity.VendorProfile, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "failed to load vendor account")
		}

		return nil, errors.Wrap(err, "failed to load vendor account")
	}
	if !user.IsVendor() {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "only vendor accounts can create a vendor profile")
	}

	profile := &entity.VendorProfile{
		UserID:           userID,
		BusinessName:     strings.TrimSpace(input.BusinessName),
		Description:      strings.TrimSpace(input.Description),
		BusinessCategory: strings.TrimSpace(input.BusinessCategory),
	}

	if err := srv.vendorRepo.Create(ctx, profile); err != nil {
		if errors.Is(err, repository.ErrVendorProfileExists) {
			return nil, errors.Wrap(domainerrors.ErrVendorProfileExists, "vendor profile already created")
		}

		return nil, errors.Wrap(err, "failed to create vendor profile")
	}

	srv.vendorIDs.Set(userID, profile.ID)
	publishChange(ctx, srv.publisher, srv.log(ctx), entity.ChangeEvent{
		Table:  entity.TableVendorProfiles,
		Kind:   entity.ChangeInsert,
		Record: vendorProfileRecord(profile),
	})

	srv.log(ctx).Info("Vendor profile created", userIDAttr(userID), slog.String("vendor_id", profile.ID.String()))

	return profile, nil
}

// UpdateProfile applies a partial update.
func (srv *vendorProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateVendorProfileInput) (*entity.VendorProfile, error) {
	return srv.update(ctx, userID, func(profile *entity.VendorProfile) {
		if input.BusinessName != nil {
			profile.BusinessName = strings.TrimSpace(*input.BusinessName)
		}
		if input.Description != nil {
			profile.Description = strings.TrimSpace(*input.Description)
		}
		if input.BusinessCategory != nil {
			profile.BusinessCategory = strings.TrimSpace(*input.BusinessCategory)
		}
	})
}

// UploadLogo stores a new logo and deletes the previous one.
func (srv *vendorProfileService) UploadLogo(ctx context.Context, userID uuid.UUID, file *usecase.UploadInput) (*entity.VendorProfile, error) {
	contentType, err := validateImage(file, srv.maxUploadSize)
	if err != nil {
		return nil, err
	}

	// Fail before uploading when there is no profile to attach the logo to.
	if _, err := srv.GetProfile(ctx, userID); err != nil {
		return nil, err
	}

	key, publicURL, err := srv.storage.Upload(ctx, constants.StoragePrefixLogos, file.Filename, contentType, file.Data)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrUploadFailed, err.Error())
	}

	var oldURL string
	profile, err := srv.update(ctx, userID, func(profile *entity.VendorProfile) {
		oldURL = profile.LogoURL
		profile.LogoURL = publicURL
	})
	if err != nil {
		if delErr := srv.storage.Delete(ctx, key); delErr != nil {
			srv.log(ctx).Warn("Failed to clean up orphaned logo", slog.String("key", key), slog.Any("error", delErr))
		}

		return nil, err
	}

	deleteReplacedUpload(ctx, srv.storage, srv.log(ctx), oldURL)

	return profile, nil
}

// ShareQRCode renders the vendor's share link as a QR code.
func (srv *vendorProfileService) ShareQRCode(ctx context.Context, userID uuid.UUID) (*usecase.VendorQRCode, error) {
	profile, err := srv.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrCodes.GenerateVendorQR(profile.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate vendor QR code")
	}

	return &usecase.VendorQRCode{
		ShareURL: srv.qrCodes.VendorShareURL(profile.ID),
		PNG:      png,
	}, nil
}

func (srv *vendorProfileService) update(ctx context.Context, userID uuid.UUID, apply func(*entity.VendorProfile)) (*entity.VendorProfile, error) {
	profile, err := srv.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	oldRecord := vendorProfileRecord(profile)
	apply(profile)

	if err := srv.vendorRepo.Update(ctx, profile); err != nil {
		if errors.Is(err, repository.ErrVendorProfileNotFound) {
			return nil, errors.Wrap(domainerrors.ErrVendorProfileNotFound, "failed to update vendor profile")
		}

		return nil, errors.Wrap(err, "failed to update vendor profile")
	}

	publishChange(ctx, srv.publisher, srv.log(ctx), entity.ChangeEvent{
		Table:     entity.TableVendorProfiles,
		Kind:      entity.ChangeUpdate,
		Record:    vendorProfileRecord(profile),
		OldRecord: oldRecord,
	})

	return profile, nil
}
