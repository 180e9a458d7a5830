package model

import (
	"time"

	"github.com/google/uuid"
)

// VendorProfileModel mirrors the 'vendor_profiles' table. UserID is unique and references users.id.
type VendorProfileModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	BusinessName     string    `gorm:"type:varchar(200)"`
	Description      string    `gorm:"type:text"`
	BusinessCategory string    `gorm:"type:varchar(100)"`
	LogoURL          string    `gorm:"type:text"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (VendorProfileModel) TableName() string {
	return "vendor_profiles"
}
