package usecase

import (
	"context"
	"time"

	"eventhub/internal/domain/entity"

	"github.com/google/uuid"
)

// EventInput describes an event to create or replace.
type EventInput struct {
	Name      string
	EventDate time.Time
	Venue     string
}

// GuestInput describes a guest to add or replace. An empty RSVPStatus means pending.
type GuestInput struct {
	Name       string
	Email      string
	RSVPStatus entity.RSVPStatus
}

// BudgetItemInput describes a budget line to add or replace.
type BudgetItemInput struct {
	Name          string
	Category      string
	EstimatedCost float64
	ActualCost    float64
	Paid          bool
}

// ChecklistItemInput describes a planning task to add or replace.
type ChecklistItemInput struct {
	Title     string
	DueDate   *time.Time
	Completed bool
}

// GuestList is an event's guests with their summary.
type GuestList struct {
	Guests []*entity.Guest
	Stats  entity.GuestStats
}

// BudgetList is an event's budget lines with their summary.
type BudgetList struct {
	Items []*entity.BudgetItem
	Stats entity.BudgetStats
}

// Checklist is an event's planning tasks with their summary.
type Checklist struct {
	Items []*entity.ChecklistItem
	Stats entity.ChecklistStats
}

// PlannerUsecase aggregates the planner dashboard and manages the planner's
// events, guests, budgets and checklists. Rows owned by another planner are
// reported as not found.
type PlannerUsecase interface {
	GetDashboard(ctx context.Context, plannerID uuid.UUID) (*entity.PlannerDashboard, error)

	ListEvents(ctx context.Context, plannerID uuid.UUID) ([]*entity.Event, error)
	CreateEvent(ctx context.Context, plannerID uuid.UUID, input *EventInput) (*entity.Event, error)
	UpdateEvent(ctx context.Context, plannerID, eventID uuid.UUID, input *EventInput) (*entity.Event, error)
	DeleteEvent(ctx context.Context, plannerID, eventID uuid.UUID) error

	ListGuests(ctx context.Context, plannerID, eventID uuid.UUID) (*GuestList, error)
	AddGuest(ctx context.Context, plannerID, eventID uuid.UUID, input *GuestInput) (*entity.Guest, error)
	UpdateGuest(ctx context.Context, plannerID, guestID uuid.UUID, input *GuestInput) (*entity.Guest, error)
	RemoveGuest(ctx context.Context, plannerID, guestID uuid.UUID) error

	ListBudgetItems(ctx context.Context, plannerID, eventID uuid.UUID) (*BudgetList, error)
	AddBudgetItem(ctx context.Context, plannerID, eventID uuid.UUID, input *BudgetItemInput) (*entity.BudgetItem, error)
	UpdateBudgetItem(ctx context.Context, plannerID, itemID uuid.UUID, input *BudgetItemInput) (*entity.BudgetItem, error)
	RemoveBudgetItem(ctx context.Context, plannerID, itemID uuid.UUID) error

	ListChecklistItems(ctx context.Context, plannerID, eventID uuid.UUID) (*Checklist, error)
	AddChecklistItem(ctx context.Context, plannerID, eventID uuid.UUID, input *ChecklistItemInput) (*entity.ChecklistItem, error)
	UpdateChecklistItem(ctx context.Context, plannerID, itemID uuid.UUID, input *ChecklistItemInput) (*entity.ChecklistItem, error)
	RemoveChecklistItem(ctx context.Context, plannerID, itemID uuid.UUID) error
}
