package handler

import (
	"time"

	"eventhub/internal/domain/entity"

	"github.com/google/uuid"
)

// UserResponse is the public view of an account.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	AvatarURL string    `json:"avatarUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func newUserResponse(u *entity.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role.String(),
		AvatarURL: u.AvatarURL,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	User   *UserResponse    `json:"user"`
	Tokens entity.TokenPair `json:"tokens"`
}

// VendorProfileResponse is the public view of a vendor profile.
type VendorProfileResponse struct {
	ID               uuid.UUID `json:"id"`
	UserID           uuid.UUID `json:"userId"`
	BusinessName     string    `json:"businessName"`
	Description      string    `json:"description"`
	BusinessCategory string    `json:"businessCategory"`
	LogoURL          string    `json:"logoUrl,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func newVendorProfileResponse(p *entity.VendorProfile) *VendorProfileResponse {
	return &VendorProfileResponse{
		ID:               p.ID,
		UserID:           p.UserID,
		BusinessName:     p.BusinessName,
		Description:      p.Description,
		BusinessCategory: p.BusinessCategory,
		LogoURL:          p.LogoURL,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

// InquiryResponse is the public view of an inquiry.
type InquiryResponse struct {
	ID          uuid.UUID  `json:"id"`
	VendorID    uuid.UUID  `json:"vendorId"`
	ClientName  string     `json:"clientName"`
	ClientEmail string     `json:"clientEmail"`
	EventType   string     `json:"eventType,omitempty"`
	EventDate   *time.Time `json:"eventDate,omitempty"`
	GuestCount  int        `json:"guestCount,omitempty"`
	Location    string     `json:"location,omitempty"`
	BudgetRange string     `json:"budgetRange,omitempty"`
	Message     string     `json:"message,omitempty"`
	Status      string     `json:"status"`
	RespondedAt *time.Time `json:"respondedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func newInquiryResponse(i *entity.Inquiry) *InquiryResponse {
	return &InquiryResponse{
		ID:          i.ID,
		VendorID:    i.VendorID,
		ClientName:  i.ClientName,
		ClientEmail: i.ClientEmail,
		EventType:   i.EventType,
		EventDate:   i.EventDate,
		GuestCount:  i.GuestCount,
		Location:    i.Location,
		BudgetRange: i.BudgetRange,
		Message:     i.Message,
		Status:      i.Status.String(),
		RespondedAt: i.RespondedAt,
		CreatedAt:   i.CreatedAt,
	}
}

// ProfileViewResponse reports the vendor's view count for the day.
type ProfileViewResponse struct {
	VendorID     uuid.UUID `json:"vendorId"`
	Date         string    `json:"date"`
	ProfileViews int       `json:"profileViews"`
}

// EventResponse is the public view of a planner's event.
type EventResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	EventDate time.Time `json:"eventDate"`
	Venue     string    `json:"venue,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func newEventResponse(e *entity.Event) *EventResponse {
	return &EventResponse{
		ID:        e.ID,
		Name:      e.Name,
		EventDate: e.EventDate,
		Venue:     e.Venue,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

// GuestResponse is the public view of a guest.
type GuestResponse struct {
	ID         uuid.UUID `json:"id"`
	EventID    uuid.UUID `json:"eventId"`
	Name       string    `json:"name"`
	Email      string    `json:"email,omitempty"`
	RSVPStatus string    `json:"rsvpStatus"`
	CreatedAt  time.Time `json:"createdAt"`
}

func newGuestResponse(g *entity.Guest) *GuestResponse {
	return &GuestResponse{
		ID:         g.ID,
		EventID:    g.EventID,
		Name:       g.Name,
		Email:      g.Email,
		RSVPStatus: string(g.RSVPStatus),
		CreatedAt:  g.CreatedAt,
	}
}

// BudgetItemResponse is the public view of a budget line.
type BudgetItemResponse struct {
	ID            uuid.UUID `json:"id"`
	EventID       uuid.UUID `json:"eventId"`
	Name          string    `json:"name"`
	Category      string    `json:"category,omitempty"`
	EstimatedCost float64   `json:"estimatedCost"`
	ActualCost    float64   `json:"actualCost"`
	Paid          bool      `json:"paid"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func newBudgetItemResponse(b *entity.BudgetItem) *BudgetItemResponse {
	return &BudgetItemResponse{
		ID:            b.ID,
		EventID:       b.EventID,
		Name:          b.Name,
		Category:      b.Category,
		EstimatedCost: b.EstimatedCost,
		ActualCost:    b.ActualCost,
		Paid:          b.Paid,
		UpdatedAt:     b.UpdatedAt,
	}
}

// ChecklistItemResponse is the public view of a planning task.
type ChecklistItemResponse struct {
	ID          uuid.UUID  `json:"id"`
	EventID     uuid.UUID  `json:"eventId"`
	Title       string     `json:"title"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

func newChecklistItemResponse(c *entity.ChecklistItem) *ChecklistItemResponse {
	return &ChecklistItemResponse{
		ID:          c.ID,
		EventID:     c.EventID,
		Title:       c.Title,
		DueDate:     c.DueDate,
		Completed:   c.Completed,
		CompletedAt: c.CompletedAt,
	}
}

// GuestListResponse is an event's guests with their RSVP summary.
type GuestListResponse struct {
	Guests []*GuestResponse  `json:"guests"`
	Stats  entity.GuestStats `json:"stats"`
}

// BudgetListResponse is an event's budget with its spending summary.
type BudgetListResponse struct {
	Items []*BudgetItemResponse `json:"items"`
	Stats entity.BudgetStats    `json:"stats"`
}

// ChecklistResponse is an event's tasks with their progress summary.
type ChecklistResponse struct {
	Items []*ChecklistItemResponse `json:"items"`
	Stats entity.ChecklistStats    `json:"stats"`
}

// MessageResponse acknowledges a request that returns no resource.
type MessageResponse struct {
	Message string `json:"message"`
}

// mapSlice converts each element with fn, never returning nil.
func mapSlice[S, D any](in []S, fn func(S) D) []D {
	out := make([]D, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}

	return out
}
