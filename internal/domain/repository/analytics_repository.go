package repository

import (
	"context"
	"time"

	"eventhub/internal/domain/entity"

	"github.com/google/uuid"
)

// AnalyticsRepository persists per-day vendor analytics.
type AnalyticsRepository interface {
	// IncrementProfileViews adds one view to the vendor's row for the given day, creating it if needed.
	IncrementProfileViews(ctx context.Context, vendorID uuid.UUID, day time.Time) (*entity.AnalyticsRecord, error)

	// SumProfileViews sums views for days in [from, to).
	SumProfileViews(ctx context.Context, vendorID uuid.UUID, from, to time.Time) (int, error)
}
