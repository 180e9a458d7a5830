package handler

import (
	"log/slog"
	"net/http"
	"time"

	"eventhub/internal/delivery/http/response"
	"eventhub/internal/domain/entity"
	"eventhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// InquiryHandlerParams holds dependencies for InquiryHandler, injected by Fx.
type InquiryHandlerParams struct {
	fx.In

	InquiryUC usecase.InquiryUsecase
	Logger    *slog.Logger
}

// InquiryHandler serves inquiry submission and the vendor status workflow.
type InquiryHandler struct {
	inquiryUC usecase.InquiryUsecase
	logger    *slog.Logger
}

// NewInquiryHandler is the constructor for InquiryHandler
func NewInquiryHandler(params InquiryHandlerParams) *InquiryHandler {
	return &InquiryHandler{
		inquiryUC: params.InquiryUC,
		logger:    params.Logger,
	}
}

// SubmitInquiryRequest represents the request body for a new inquiry
type SubmitInquiryRequest struct {
	ClientName  string     `json:"clientName" validate:"required,max=200"`
	ClientEmail string     `json:"clientEmail" validate:"required,email"`
	EventType   string     `json:"eventType" validate:"max=100"`
	EventDate   *time.Time `json:"eventDate"`
	GuestCount  int        `json:"guestCount" validate:"min=0"`
	Location    string     `json:"location" validate:"max=200"`
	BudgetRange string     `json:"budgetRange" validate:"max=100"`
	Message     string     `json:"message" validate:"max=5000"`
}

// UpdateInquiryStatusRequest represents the request body for a status change
type UpdateInquiryStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// Submit sends an inquiry to the vendor in the path.
func (h *InquiryHandler) Submit(c echo.Context) error {
	vendorID, err := pathUUID(c, "vendorID")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req SubmitInquiryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	inquiry, err := h.inquiryUC.Submit(c.Request().Context(), vendorID, &usecase.SubmitInquiryInput{
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		EventType:   req.EventType,
		EventDate:   req.EventDate,
		GuestCount:  req.GuestCount,
		Location:    req.Location,
		BudgetRange: req.BudgetRange,
		Message:     req.Message,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newInquiryResponse(inquiry))
}

// UpdateStatus moves one of the caller's inquiries to a new status.
func (h *InquiryHandler) UpdateStatus(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	inquiryID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateInquiryStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	inquiry, err := h.inquiryUC.UpdateStatus(c.Request().Context(), userID, inquiryID, entity.InquiryStatus(req.Status))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newInquiryResponse(inquiry))
}
