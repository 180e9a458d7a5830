package handler

import (
	"log/slog"
	"net/http"
	"time"

	"eventhub/internal/delivery/http/response"
	"eventhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AnalyticsHandlerParams holds dependencies for AnalyticsHandler, injected by Fx.
type AnalyticsHandlerParams struct {
	fx.In

	AnalyticsUC usecase.AnalyticsUsecase
	Logger      *slog.Logger
}

// AnalyticsHandler records vendor profile views.
type AnalyticsHandler struct {
	analyticsUC usecase.AnalyticsUsecase
	logger      *slog.Logger
}

// NewAnalyticsHandler is the constructor for AnalyticsHandler
func NewAnalyticsHandler(params AnalyticsHandlerParams) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsUC: params.AnalyticsUC,
		logger:      params.Logger,
	}
}

// RecordView counts a view of the vendor in the path.
func (h *AnalyticsHandler) RecordView(c echo.Context) error {
	vendorID, err := pathUUID(c, "vendorID")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	record, err := h.analyticsUC.RecordProfileView(c.Request().Context(), vendorID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &ProfileViewResponse{
		VendorID:     record.VendorID,
		Date:         record.Date.Format(time.DateOnly),
		ProfileViews: record.ProfileViews,
	})
}
