package entity

import (
	"time"

	"github.com/google/uuid"
)

// AnalyticsRecord is one vendor's profile-view count for a single day.
type AnalyticsRecord struct {
	ID           uuid.UUID
	VendorID     uuid.UUID
	Date         time.Time // Truncated to the day.
	ProfileViews int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
