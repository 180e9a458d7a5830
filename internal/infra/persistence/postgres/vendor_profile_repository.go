package postgres

import (
	"context"

	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/domain/repository"
	"eventhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type vendorProfileRepository struct {
	db *gorm.DB
}

// NewVendorProfileRepository is the constructor for vendorProfileRepository.
func NewVendorProfileRepository(db *gorm.DB) repository.VendorProfileRepository {
	return &vendorProfileRepository{
		db: db,
	}
}

func (repo *vendorProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.VendorProfile, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *vendorProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.VendorProfile, error) {
	return repo.findOne(ctx, "user_id = ?", userID)
}

func (repo *vendorProfileRepository) findOne(ctx context.Context, cond string, arg any) (*entity.VendorProfile, error) {
	var profileM model.VendorProfileModel
	if err := repo.db.WithContext(ctx).Where(cond, arg).First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVendorProfileNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find vendor profile")
	}

	return toVendorProfileDomain(&profileM), nil
}

func (repo *vendorProfileRepository) Create(ctx context.Context, profile *entity.VendorProfile) error {
	profileM := fromVendorProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrVendorProfileExists
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("vendor profile owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create vendor profile")
	}

	profile.ID = profileM.ID
	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

func (repo *vendorProfileRepository) Update(ctx context.Context, profile *entity.VendorProfile) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VendorProfileModel{}).
		Where("id = ?", profile.ID).
		Updates(map[string]any{
			"business_name":     profile.BusinessName,
			"description":       profile.Description,
			"business_category": profile.BusinessCategory,
			"logo_url":          profile.LogoURL,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update vendor profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVendorProfileNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toVendorProfileDomain(data *model.VendorProfileModel) *entity.VendorProfile {
	if data == nil {
		return nil
	}

	return &entity.VendorProfile{
		ID:               data.ID,
		UserID:           data.UserID,
		BusinessName:     data.BusinessName,
		Description:      data.Description,
		BusinessCategory: data.BusinessCategory,
		LogoURL:          data.LogoURL,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

func fromVendorProfileDomain(data *entity.VendorProfile) *model.VendorProfileModel {
	if data == nil {
		return nil
	}

	return &model.VendorProfileModel{
		ID:               data.ID,
		UserID:           data.UserID,
		BusinessName:     data.BusinessName,
		Description:      data.Description,
		BusinessCategory: data.BusinessCategory,
		LogoURL:          data.LogoURL,
	}
}
