package usecase

import (
	"context"

	"eventhub/internal/domain/entity"

	"github.com/google/uuid"
)

// AnalyticsUsecase records vendor analytics.
type AnalyticsUsecase interface {
	RecordProfileView(ctx context.Context, vendorID uuid.UUID) (*entity.AnalyticsRecord, error)
}
