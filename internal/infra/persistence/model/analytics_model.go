package model

import (
	"time"

	"github.com/google/uuid"
)

// AnalyticsModel mirrors the 'vendor_analytics' table, one row per vendor per day.
type AnalyticsModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	VendorID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_analytics_vendor_date"`
	Date         time.Time `gorm:"type:date;not null;uniqueIndex:idx_analytics_vendor_date"`
	ProfileViews int       `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AnalyticsModel) TableName() string {
	return "vendor_analytics"
}
