package model

import (
	"time"

	"github.com/google/uuid"
)

// EventModel mirrors the 'events' table.
type EventModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PlannerID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(200);not null"`
	EventDate time.Time `gorm:"not null"`
	Venue     string    `gorm:"type:varchar(255)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (EventModel) TableName() string {
	return "events"
}

// GuestModel mirrors the 'guests' table.
type GuestModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	EventID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name       string    `gorm:"type:varchar(200);not null"`
	Email      string    `gorm:"type:varchar(255)"`
	RSVPStatus string    `gorm:"column:rsvp_status;type:varchar(20);not null;default:pending"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (GuestModel) TableName() string {
	return "guests"
}

// BudgetItemModel mirrors the 'budget_items' table.
type BudgetItemModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	EventID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Name          string    `gorm:"type:varchar(200);not null"`
	Category      string    `gorm:"type:varchar(100)"`
	EstimatedCost float64   `gorm:"type:numeric(12,2);not null;default:0"`
	ActualCost    float64   `gorm:"type:numeric(12,2);not null;default:0"`
	Paid          bool      `gorm:"not null;default:false"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (BudgetItemModel) TableName() string {
	return "budget_items"
}

// ChecklistItemModel mirrors the 'checklist_items' table.
type ChecklistItemModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	EventID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	Title       string     `gorm:"type:varchar(255);not null"`
	DueDate     *time.Time `gorm:"type:date"`
	Completed   bool       `gorm:"not null;default:false"`
	CompletedAt *time.Time
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ChecklistItemModel) TableName() string {
	return "checklist_items"
}
