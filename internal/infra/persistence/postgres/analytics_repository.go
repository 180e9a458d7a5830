package postgres

import (
	"context"
	"time"

	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/domain/repository"
	"eventhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository is the constructor for analyticsRepository.
func NewAnalyticsRepository(db *gorm.DB) repository.AnalyticsRepository {
	return &analyticsRepository{
		db: db,
	}
}

// IncrementProfileViews upserts the (vendor, day) row, adding one view on conflict.
func (repo *analyticsRepository) IncrementProfileViews(ctx context.Context, vendorID uuid.UUID, day time.Time) (*entity.AnalyticsRecord, error) {
	recordM := &model.AnalyticsModel{
		VendorID:     vendorID,
		Date:         truncateToDay(day),
		ProfileViews: 1,
	}

	err := repo.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns: []clause.Column{{Name: "vendor_id"}, {Name: "date"}},
				DoUpdates: clause.Assignments(map[string]any{
					"profile_views": gorm.Expr("vendor_analytics.profile_views + 1"),
					"updated_at":    gorm.Expr("now()"),
				}),
			},
			clause.Returning{},
		).
		Create(recordM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return nil, domainerrors.ErrVendorProfileNotFound.WrapMessage("analytics vendor does not exist")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to record profile view")
	}

	return &entity.AnalyticsRecord{
		ID:           recordM.ID,
		VendorID:     recordM.VendorID,
		Date:         recordM.Date,
		ProfileViews: recordM.ProfileViews,
		CreatedAt:    recordM.CreatedAt,
		UpdatedAt:    recordM.UpdatedAt,
	}, nil
}

func (repo *analyticsRepository) SumProfileViews(ctx context.Context, vendorID uuid.UUID, from, to time.Time) (int, error) {
	var total int
	err := repo.db.WithContext(ctx).
		Model(&model.AnalyticsModel{}).
		Select("COALESCE(SUM(profile_views), 0)").
		Where("vendor_id = ? AND date >= ? AND date < ?", vendorID, truncateToDay(from), truncateToDay(to)).
		Scan(&total).Error
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to sum profile views")
	}

	return total, nil
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
