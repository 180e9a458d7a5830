package postgres

import (
	"context"
	"time"

	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/domain/repository"
	"eventhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type inquiryRepository struct {
	db *gorm.DB
}

// NewInquiryRepository is the constructor for inquiryRepository.
func NewInquiryRepository(db *gorm.DB) repository.InquiryRepository {
	return &inquiryRepository{
		db: db,
	}
}

func (repo *inquiryRepository) Create(ctx context.Context, inquiry *entity.Inquiry) error {
	inquiryM := fromInquiryDomain(inquiry)

	if err := repo.db.WithContext(ctx).Create(inquiryM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrVendorProfileNotFound.WrapMessage("inquiry vendor does not exist")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid inquiry status")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create inquiry")
	}

	inquiry.ID = inquiryM.ID
	inquiry.Status = entity.InquiryStatus(inquiryM.Status)
	inquiry.CreatedAt = inquiryM.CreatedAt
	inquiry.UpdatedAt = inquiryM.UpdatedAt

	return nil
}

func (repo *inquiryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Inquiry, error) {
	var inquiryM model.InquiryModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&inquiryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInquiryNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find inquiry")
	}

	return toInquiryDomain(&inquiryM), nil
}

func (repo *inquiryRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.InquiryStatus, respondedAt *time.Time) error {
	updates := map[string]any{"status": status.String()}
	if respondedAt != nil {
		updates["responded_at"] = gorm.Expr("COALESCE(responded_at, ?)", *respondedAt)
	}

	result := repo.db.WithContext(ctx).Model(&model.InquiryModel{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update inquiry status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrInquiryNotFound
	}

	return nil
}

type statusCount struct {
	Status string
	Count  int
}

func (repo *inquiryRepository) CountByVendor(ctx context.Context, vendorID uuid.UUID) (entity.InquiryCounts, error) {
	var rows []statusCount
	err := repo.db.WithContext(ctx).
		Model(&model.InquiryModel{}).
		Select("status, COUNT(*) AS count").
		Where("vendor_id = ?", vendorID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return entity.InquiryCounts{}, domainerrors.NewDatabaseExecuteError(err, "failed to count inquiries")
	}

	var counts entity.InquiryCounts
	for _, row := range rows {
		status := entity.InquiryStatus(row.Status)
		counts.Total += row.Count
		switch status {
		case entity.InquiryStatusNew:
			counts.New += row.Count
		case entity.InquiryStatusBooked:
			counts.Booked += row.Count
		}
		if status.CountsAsResponded() {
			counts.Responded += row.Count
		}
	}

	return counts, nil
}

func (repo *inquiryRepository) ListResponseTimes(ctx context.Context, vendorID uuid.UUID) ([]entity.ResponseSample, error) {
	var rows []struct {
		CreatedAt   time.Time
		RespondedAt time.Time
	}
	err := repo.db.WithContext(ctx).
		Model(&model.InquiryModel{}).
		Select("created_at, responded_at").
		Where("vendor_id = ? AND responded_at IS NOT NULL", vendorID).
		Scan(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list response times")
	}

	samples := make([]entity.ResponseSample, 0, len(rows))
	for _, row := range rows {
		samples = append(samples, entity.ResponseSample{CreatedAt: row.CreatedAt, RespondedAt: row.RespondedAt})
	}

	return samples, nil
}

func (repo *inquiryRepository) ListRecent(ctx context.Context, vendorID uuid.UUID, limit int) ([]*entity.Inquiry, error) {
	var inquiryModels []*model.InquiryModel
	err := repo.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Order("created_at DESC").
		Limit(limit).
		Find(&inquiryModels).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list recent inquiries")
	}

	return toInquiryDomains(inquiryModels), nil
}

func (repo *inquiryRepository) ListUpcomingBooked(ctx context.Context, vendorID uuid.UUID, from time.Time, limit int) ([]*entity.Inquiry, error) {
	var inquiryModels []*model.InquiryModel
	err := repo.db.WithContext(ctx).
		Where("vendor_id = ? AND status = ? AND event_date >= ?", vendorID, entity.InquiryStatusBooked.String(), from).
		Order("event_date ASC").
		Limit(limit).
		Find(&inquiryModels).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list upcoming bookings")
	}

	return toInquiryDomains(inquiryModels), nil
}

// --- Mapper Functions ---

func toInquiryDomains(models []*model.InquiryModel) []*entity.Inquiry {
	inquiries := make([]*entity.Inquiry, 0, len(models))
	for _, m := range models {
		inquiries = append(inquiries, toInquiryDomain(m))
	}

	return inquiries
}

func toInquiryDomain(data *model.InquiryModel) *entity.Inquiry {
	if data == nil {
		return nil
	}

	return &entity.Inquiry{
		ID:          data.ID,
		VendorID:    data.VendorID,
		ClientName:  data.ClientName,
		ClientEmail: data.ClientEmail,
		EventType:   data.EventType,
		EventDate:   data.EventDate,
		GuestCount:  data.GuestCount,
		Location:    data.Location,
		BudgetRange: data.BudgetRange,
		Message:     data.Message,
		Status:      entity.InquiryStatus(data.Status),
		RespondedAt: data.RespondedAt,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromInquiryDomain(data *entity.Inquiry) *model.InquiryModel {
	if data == nil {
		return nil
	}

	status := data.Status
	if status == "" {
		status = entity.InquiryStatusNew
	}

	return &model.InquiryModel{
		ID:          data.ID,
		VendorID:    data.VendorID,
		ClientName:  data.ClientName,
		ClientEmail: data.ClientEmail,
		EventType:   data.EventType,
		EventDate:   data.EventDate,
		GuestCount:  data.GuestCount,
		Location:    data.Location,
		BudgetRange: data.BudgetRange,
		Message:     data.Message,
		Status:      status.String(),
		RespondedAt: data.RespondedAt,
	}
}
