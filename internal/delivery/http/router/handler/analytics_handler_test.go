package handler

import (
	"net/http"
	"testing"
	"time"

	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	mockUsecase "eventhub/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsHandler_RecordView(t *testing.T) {
	vendorID := uuid.New()

	t.Run("returns today's count", func(t *testing.T) {
		analyticsUC := mockUsecase.NewMockAnalyticsUsecase(t)
		h := NewAnalyticsHandler(AnalyticsHandlerParams{AnalyticsUC: analyticsUC, Logger: testLogger()})
		e := newTestEcho()
		e.POST("/api/v1/vendors/:vendorID/views", h.RecordView, asUser(uuid.New()))

		analyticsUC.EXPECT().RecordProfileView(mock.Anything, vendorID).
			Return(&entity.AnalyticsRecord{
				VendorID:     vendorID,
				Date:         time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
				ProfileViews: 7,
			}, nil).
			Once()

		rec := serve(e, jsonRequest(http.MethodPost, "/api/v1/vendors/"+vendorID.String()+"/views", ""))

		require.Equal(t, http.StatusOK, rec.Code)

		var got ProfileViewResponse
		decodeData(t, rec, &got)
		assert.Equal(t, ProfileViewResponse{VendorID: vendorID, Date: "2026-03-09", ProfileViews: 7}, got)
	})

	t.Run("unknown vendor", func(t *testing.T) {
		analyticsUC := mockUsecase.NewMockAnalyticsUsecase(t)
		h := NewAnalyticsHandler(AnalyticsHandlerParams{AnalyticsUC: analyticsUC, Logger: testLogger()})
		e := newTestEcho()
		e.POST("/api/v1/vendors/:vendorID/views", h.RecordView, asUser(uuid.New()))

		analyticsUC.EXPECT().RecordProfileView(mock.Anything, vendorID).
			Return(nil, domainerrors.ErrVendorProfileNotFound).
			Once()

		rec := serve(e, jsonRequest(http.MethodPost, "/api/v1/vendors/"+vendorID.String()+"/views", ""))

		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}
