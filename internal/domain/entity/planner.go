package entity

import (
	"time"

	"github.com/google/uuid"
)

// Event is an occasion a planner is organising.
type Event struct {
	ID        uuid.UUID
	PlannerID uuid.UUID
	Name      string
	EventDate time.Time
	Venue     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RSVPStatus is a guest's response to an invitation.
type RSVPStatus string

const (
	RSVPPending   RSVPStatus = "pending"
	RSVPConfirmed RSVPStatus = "confirmed"
	RSVPDeclined  RSVPStatus = "declined"
)

// IsValid reports whether s is a known RSVP status.
func (s RSVPStatus) IsValid() bool {
	switch s {
	case RSVPPending, RSVPConfirmed, RSVPDeclined:
		return true
	default:
		return false
	}
}

// Guest is someone invited to an event.
type Guest struct {
	ID         uuid.UUID
	EventID    uuid.UUID
	Name       string
	Email      string
	RSVPStatus RSVPStatus
	CreatedAt  time.Time
}

// BudgetItem is one line of an event budget.
type BudgetItem struct {
	ID            uuid.UUID
	EventID       uuid.UUID
	Name          string
	Category      string
	EstimatedCost float64
	ActualCost    float64
	Paid          bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ChecklistItem is a planning task.
type ChecklistItem struct {
	ID          uuid.UUID
	EventID     uuid.UUID
	Title       string
	DueDate     *time.Time
	Completed   bool
	CompletedAt *time.Time
	CreatedAt   time.Time
}

// GuestStats summarises an event's guest list.
type GuestStats struct {
	Total     int `json:"total"`
	Confirmed int `json:"confirmed"`
	Pending   int `json:"pending"`
	Declined  int `json:"declined"`
}

// BudgetStats summarises an event's budget.
type BudgetStats struct {
	TotalEstimated  float64 `json:"totalEstimated"`
	TotalSpent      float64 `json:"totalSpent"`
	RemainingBudget float64 `json:"remainingBudget"`
	PercentageSpent float64 `json:"percentageSpent"`
	TotalItems      int     `json:"totalItems"`
	PaidItems       int     `json:"paidItems"`
	CategoriesCount int     `json:"categoriesCount"`
}

// ChecklistStats summarises an event's planning tasks.
type ChecklistStats struct {
	Total          int `json:"total"`
	Completed      int `json:"completed"`
	Overdue        int `json:"overdue"`
	Upcoming       int `json:"upcoming"`
	CompletionRate int `json:"completionRate"`
}

// ActivityKind classifies an entry in the planner's recent activity feed.
type ActivityKind string

const (
	ActivityGuestAdded    ActivityKind = "guest_added"
	ActivityTaskCompleted ActivityKind = "task_completed"
	ActivityBudgetUpdated ActivityKind = "budget_updated"
)

// Activity is one entry in the planner's recent activity feed.
type Activity struct {
	ID        uuid.UUID    `json:"id"`
	Kind      ActivityKind `json:"type"`
	Message   string       `json:"message"`
	Timestamp time.Time    `json:"timestamp"`
}

// Deadline is an incomplete task with an upcoming due date.
type Deadline struct {
	ID      uuid.UUID `json:"id"`
	Title   string    `json:"title"`
	DueDate time.Time `json:"dueDate"`
}

// PlannerDashboard aggregates a planner's current event.
type PlannerDashboard struct {
	HasEvent          bool       `json:"hasEvent"`
	EventID           uuid.UUID  `json:"eventId,omitempty"`
	EventName         string     `json:"eventName,omitempty"`
	EventDate         *time.Time `json:"eventDate,omitempty"`
	DaysUntilEvent    int        `json:"daysUntilEvent"`
	TotalGuests       int        `json:"totalGuests"`
	ConfirmedGuests   int        `json:"confirmedGuests"`
	TotalBudget       float64    `json:"totalBudget"`
	SpentBudget       float64    `json:"spentBudget"`
	CompletedTasks    int        `json:"completedTasks"`
	TotalTasks        int        `json:"totalTasks"`
	RecentActivity    []Activity `json:"recentActivity"`
	UpcomingDeadlines []Deadline `json:"upcomingDeadlines"`
}
