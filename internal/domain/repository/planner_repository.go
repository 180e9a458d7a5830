package repository

import (
	"context"
	"errors"
	"time"

	"eventhub/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrEventNotFound is returned when an event does not exist or a planner has no events.
	ErrEventNotFound         = errors.New("event not found")
	ErrGuestNotFound         = errors.New("guest not found")
	ErrBudgetItemNotFound    = errors.New("budget item not found")
	ErrChecklistItemNotFound = errors.New("checklist item not found")
)

// PlannerRepository persists a planner's events and the guests, budget items
// and checklist items that belong to them.
type PlannerRepository interface {
	// FindCurrentEvent returns the planner's nearest event on or after now, falling back to the most
	// recently created one. Returns ErrEventNotFound when the planner has no events.
	FindCurrentEvent(ctx context.Context, plannerID uuid.UUID, now time.Time) (*entity.Event, error)

	// ListEvents returns the planner's events, soonest first.
	ListEvents(ctx context.Context, plannerID uuid.UUID) ([]*entity.Event, error)
	FindEventByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)
	CreateEvent(ctx context.Context, event *entity.Event) error
	UpdateEvent(ctx context.Context, event *entity.Event) error
	// DeleteEvent removes the event; its guests, budget and checklist cascade.
	DeleteEvent(ctx context.Context, id uuid.UUID) error

	ListGuests(ctx context.Context, eventID uuid.UUID) ([]*entity.Guest, error)
	FindGuestByID(ctx context.Context, id uuid.UUID) (*entity.Guest, error)
	CreateGuest(ctx context.Context, guest *entity.Guest) error
	UpdateGuest(ctx context.Context, guest *entity.Guest) error
	DeleteGuest(ctx context.Context, id uuid.UUID) error

	ListBudgetItems(ctx context.Context, eventID uuid.UUID) ([]*entity.BudgetItem, error)
	FindBudgetItemByID(ctx context.Context, id uuid.UUID) (*entity.BudgetItem, error)
	CreateBudgetItem(ctx context.Context, item *entity.BudgetItem) error
	UpdateBudgetItem(ctx context.Context, item *entity.BudgetItem) error
	DeleteBudgetItem(ctx context.Context, id uuid.UUID) error

	ListChecklistItems(ctx context.Context, eventID uuid.UUID) ([]*entity.ChecklistItem, error)
	FindChecklistItemByID(ctx context.Context, id uuid.UUID) (*entity.ChecklistItem, error)
	CreateChecklistItem(ctx context.Context, item *entity.ChecklistItem) error
	UpdateChecklistItem(ctx context.Context, item *entity.ChecklistItem) error
	DeleteChecklistItem(ctx context.Context, id uuid.UUID) error
}
