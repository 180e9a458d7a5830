package handler

import (
	"log/slog"
	"net/http"
	"time"

	"eventhub/internal/delivery/http/response"
	"eventhub/internal/domain/entity"
	"eventhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PlannerHandlerParams holds dependencies for PlannerHandler, injected by Fx.
type PlannerHandlerParams struct {
	fx.In

	PlannerUC usecase.PlannerUsecase
	Logger    *slog.Logger
}

// PlannerHandler serves the planner dashboard and the planner's event data.
type PlannerHandler struct {
	plannerUC usecase.PlannerUsecase
	logger    *slog.Logger
}

// NewPlannerHandler is the constructor for PlannerHandler
func NewPlannerHandler(params PlannerHandlerParams) *PlannerHandler {
	return &PlannerHandler{
		plannerUC: params.PlannerUC,
		logger:    params.Logger,
	}
}

// EventRequest represents the request body for creating or replacing an event
type EventRequest struct {
	Name      string    `json:"name" validate:"required,max=200"`
	EventDate time.Time `json:"eventDate" validate:"required"`
	Venue     string    `json:"venue" validate:"max=255"`
}

// GuestRequest represents the request body for adding or replacing a guest
type GuestRequest struct {
	Name       string `json:"name" validate:"required,max=200"`
	Email      string `json:"email" validate:"omitempty,email,max=255"`
	RSVPStatus string `json:"rsvpStatus" validate:"omitempty,oneof=pending confirmed declined"`
}

// BudgetItemRequest represents the request body for adding or replacing a budget line
type BudgetItemRequest struct {
	Name          string  `json:"name" validate:"required,max=200"`
	Category      string  `json:"category" validate:"max=100"`
	EstimatedCost float64 `json:"estimatedCost" validate:"min=0"`
	ActualCost    float64 `json:"actualCost" validate:"min=0"`
	Paid          bool    `json:"paid"`
}

// ChecklistItemRequest represents the request body for adding or replacing a task
type ChecklistItemRequest struct {
	Title     string     `json:"title" validate:"required,max=255"`
	DueDate   *time.Time `json:"dueDate"`
	Completed bool       `json:"completed"`
}

// GetDashboard returns the aggregate view of the planner's current event.
func (h *PlannerHandler) GetDashboard(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	dash, err := h.plannerUC.GetDashboard(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, dash)
}

// ListEvents returns the caller's events, soonest first.
func (h *PlannerHandler) ListEvents(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	events, err := h.plannerUC.ListEvents(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapSlice(events, newEventResponse))
}

// CreateEvent creates an event owned by the caller.
func (h *PlannerHandler) CreateEvent(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req EventRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	event, err := h.plannerUC.CreateEvent(c.Request().Context(), userID, req.input())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newEventResponse(event))
}

// UpdateEvent replaces one of the caller's events.
func (h *PlannerHandler) UpdateEvent(c echo.Context) error {
	userID, eventID, err := h.ownerAndID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req EventRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	event, err := h.plannerUC.UpdateEvent(c.Request().Context(), userID, eventID, req.input())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newEventResponse(event))
}

// DeleteEvent removes one of the caller's events with its guests, budget and tasks.
func (h *PlannerHandler) DeleteEvent(c echo.Context) error {
	userID, eventID, err := h.ownerAndID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.plannerUC.DeleteEvent(c.Request().Context(), userID, eventID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, MessageResponse{Message: "Event deleted successfully"})
}

// ListGuests returns an event's guests with their RSVP summary.
func (h *PlannerHandler) ListGuests(c echo.Context) error {
	userID, eventID, err := h.ownerAndID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	list, err := h.plannerUC.ListGuests(c.Request().Context(), userID, eventID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, GuestListResponse{
		Guests: mapSlice(list.Guests, newGuestResponse),
		Stats:  list.Stats,
	})
}

// AddGuest adds a guest to one of the caller's events.
func (h *PlannerHandler) AddGuest(c echo.Context) error {
	userID, eventID, err := h.ownerAndID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req GuestRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	guest, err := h.plannerUC.AddGuest(c.Request().Context(), userID, eventID, req.input())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newGuestResponse(guest))
}

// UpdateGuest replaces a guest on one of the caller's events.
func (h *PlannerHandler) UpdateGuest(c echo.Context) error {
	userID, guestID, err := h.ownerAndID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req GuestRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	guest, err := h.plannerUC.UpdateGuest(c.Request().Context(), userID, guestID, req.input())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newGuestResponse(guest))
}

// RemoveGuest deletes a guest from one of the caller's events.
func (h *PlannerHandler) RemoveGuest(c echo.Context) error {
	userID, guestID, err := h.ownerAndID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.plannerUC.RemoveGuest(c.Request().Context(), userID, guestID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, MessageResponse{Message: "Guest removed successfully"})
}

// ListBudgetItems returns an event's budget with its spending summary.
func (h *PlannerHandler) ListBudgetItems(c echo.Context) error {
	userID, eventID, err := h.ownerAndID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	list, err := h.plannerUC.ListBudgetItems(c.Request().Context(), userID, eventID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, BudgetListResponse{
		Items: mapSlice(list.Items, newBudgetItemResponse),
		Stats: list.Stats,
	})
}

// AddBudgetItem adds a budget line to one of the caller's events.
func (h *PlannerHandler) AddBudgetItem(c echo.Context) error {
	userID, eventID, err := h.ownerAndID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req BudgetItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	item, err := h.plannerUC.AddBudgetItem(c.Request().Context(), userID, eventID, req.input())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newBudgetItemResponse(item))
}

// UpdateBudgetItem replaces a budget line, including its paid flag.
func (h *PlannerHandler) UpdateBudgetItem(c echo.Context) error {
	userID, itemID, err := h.ownerAndID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req BudgetItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	item, err := h.plannerUC.UpdateBudgetItem(c.Request().Context(), userID, itemID, req.input())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newBudgetItemResponse(item))
}

// RemoveBudgetItem deletes a budget line.
func (h *PlannerHandler) RemoveBudgetItem(c echo.Context) error {
	userID, itemID, err := h.ownerAndID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.plannerUC.RemoveBudgetItem(c.Request().Context(), userID, itemID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, MessageResponse{Message: "Budget item removed successfully"})
}

// ListChecklistItems returns an event's tasks with their progress summary.
func (h *PlannerHandler) ListChecklistItems(c echo.Context) error {
	userID, eventID, err := h.ownerAndID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	list, err := h.plannerUC.ListChecklistItems(c.Request().Context(), userID, eventID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ChecklistResponse{
		Items: mapSlice(list.Items, newChecklistItemResponse),
		Stats: list.Stats,
	})
}

// AddChecklistItem adds a task to one of the caller's events.
func (h *PlannerHandler) AddChecklistItem(c echo.Context) error {
	userID, eventID, err := h.ownerAndID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ChecklistItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	item, err := h.plannerUC.AddChecklistItem(c.Request().Context(), userID, eventID, req.input())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newChecklistItemResponse(item))
}

// UpdateChecklistItem replaces a task, completing or reopening it.
func (h *PlannerHandler) UpdateChecklistItem(c echo.Context) error {
	userID, itemID, err := h.ownerAndID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ChecklistItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	item, err := h.plannerUC.UpdateChecklistItem(c.Request().Context(), userID, itemID, req.input())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newChecklistItemResponse(item))
}

// RemoveChecklistItem deletes a task.
func (h *PlannerHandler) RemoveChecklistItem(c echo.Context) error {
	userID, itemID, err := h.ownerAndID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.plannerUC.RemoveChecklistItem(c.Request().Context(), userID, itemID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, MessageResponse{Message: "Checklist item removed successfully"})
}

// ownerAndID returns the caller and the :id path parameter.
func (h *PlannerHandler) ownerAndID(c echo.Context) (uuid.UUID, uuid.UUID, error) {
	userID, err := currentUserID(c)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}

	return userID, id, nil
}

func (r *EventRequest) input() *usecase.EventInput {
	return &usecase.EventInput{Name: r.Name, EventDate: r.EventDate, Venue: r.Venue}
}

func (r *GuestRequest) input() *usecase.GuestInput {
	return &usecase.GuestInput{Name: r.Name, Email: r.Email, RSVPStatus: entity.RSVPStatus(r.RSVPStatus)}
}

func (r *BudgetItemRequest) input() *usecase.BudgetItemInput {
	return &usecase.BudgetItemInput{
		Name:          r.Name,
		Category:      r.Category,
		EstimatedCost: r.EstimatedCost,
		ActualCost:    r.ActualCost,
		Paid:          r.Paid,
	}
}

func (r *ChecklistItemRequest) input() *usecase.ChecklistItemInput {
	return &usecase.ChecklistItemInput{Title: r.Title, DueDate: r.DueDate, Completed: r.Completed}
}
