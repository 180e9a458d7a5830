package model

import (
	"time"

	"github.com/google/uuid"
)

// InquiryModel mirrors the 'vendor_inquiries' table.
type InquiryModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	VendorID    uuid.UUID  `gorm:"type:uuid;not null;index:idx_inquiries_vendor_created,priority:1"`
	ClientName  string     `gorm:"type:varchar(200)"`
	ClientEmail string     `gorm:"type:varchar(255)"`
	EventType   string     `gorm:"type:varchar(100)"`
	EventDate   *time.Time `gorm:"type:date"`
	GuestCount  int
	Location    string     `gorm:"type:varchar(255)"`
	BudgetRange string     `gorm:"type:varchar(100)"`
	Message     string     `gorm:"type:text"`
	Status      string     `gorm:"type:varchar(20);not null;default:new"`
	RespondedAt *time.Time
	CreatedAt   time.Time `gorm:"index:idx_inquiries_vendor_created,priority:2"`
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (InquiryModel) TableName() string {
	return "vendor_inquiries"
}
