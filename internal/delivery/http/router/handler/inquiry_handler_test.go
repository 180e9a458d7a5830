package handler

import (
	"net/http"
	"testing"
	"time"

	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	mockUsecase "eventhub/internal/mocks/usecase"
	"eventhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestInquiryHandler(t *testing.T) (*InquiryHandler, *mockUsecase.MockInquiryUsecase) {
	inquiryUC := mockUsecase.NewMockInquiryUsecase(t)

	return NewInquiryHandler(InquiryHandlerParams{InquiryUC: inquiryUC, Logger: testLogger()}), inquiryUC
}

func TestInquiryHandler_Submit(t *testing.T) {
	vendorID := uuid.New()
	eventDate := time.Date(2026, 6, 20, 0, 0, 0, 0, time.UTC)
	h, inquiryUC := createTestInquiryHandler(t)
	e := newTestEcho()
	e.POST("/api/v1/vendors/:vendorID/inquiries", h.Submit, asUser(uuid.New(), entity.RolePlanner))

	inquiryUC.EXPECT().
		Submit(mock.Anything, vendorID, mock.MatchedBy(func(in *usecase.SubmitInquiryInput) bool {
			return in.ClientName == "Cy" &&
				in.ClientEmail == "cy@example.com" &&
				in.GuestCount == 80 &&
				in.EventDate != nil && in.EventDate.Equal(eventDate) &&
				in.BudgetRange == "$5,000 - $10,000"
		})).
		Return(&entity.Inquiry{
			ID:          uuid.New(),
			VendorID:    vendorID,
			ClientName:  "Cy",
			ClientEmail: "cy@example.com",
			Status:      entity.InquiryStatusNew,
		}, nil).
		Once()

	rec := serve(e, jsonRequest(http.MethodPost, "/api/v1/vendors/"+vendorID.String()+"/inquiries",
		`{"clientName":"Cy","clientEmail":"cy@example.com","eventDate":"2026-06-20T00:00:00Z","guestCount":80,"budgetRange":"$5,000 - $10,000"}`))

	require.Equal(t, http.StatusCreated, rec.Code)

	var got InquiryResponse
	decodeData(t, rec, &got)
	assert.Equal(t, "new", got.Status)
	assert.Equal(t, vendorID, got.VendorID)
}

func TestInquiryHandler_Submit_BadInput(t *testing.T) {
	tests := []struct {
		name   string
		target string
		body   string
	}{
		{
			name:   "vendor id is not a uuid",
			target: "/api/v1/vendors/nope/inquiries",
			body:   `{"clientName":"Cy","clientEmail":"cy@example.com"}`,
		},
		{
			name:   "invalid email",
			target: "/api/v1/vendors/" + uuid.NewString() + "/inquiries",
			body:   `{"clientName":"Cy","clientEmail":"cy"}`,
		},
		{
			name:   "negative guest count",
			target: "/api/v1/vendors/" + uuid.NewString() + "/inquiries",
			body:   `{"clientName":"Cy","clientEmail":"cy@example.com","guestCount":-1}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := createTestInquiryHandler(t)
			e := newTestEcho()
			e.POST("/api/v1/vendors/:vendorID/inquiries", h.Submit, asUser(uuid.New()))

			rec := serve(e, jsonRequest(http.MethodPost, tt.target, tt.body))

			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "VALIDATION_FAILED", errorBody(t, rec).Code)
		})
	}
}

func TestInquiryHandler_UpdateStatus(t *testing.T) {
	userID := uuid.New()
	inquiryID := uuid.New()

	tests := []struct {
		name       string
		ucErr      error
		wantStatus int
		wantCode   string
	}{
		{name: "responded", wantStatus: http.StatusOK},
		{name: "illegal transition", ucErr: domainerrors.ErrInvalidStatusTransition, wantStatus: http.StatusUnprocessableEntity, wantCode: "INVALID_STATUS_TRANSITION"},
		{name: "not the caller's inquiry", ucErr: domainerrors.ErrInquiryNotFound, wantStatus: http.StatusNotFound, wantCode: "INQUIRY_NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, inquiryUC := createTestInquiryHandler(t)
			e := newTestEcho()
			e.PATCH("/api/v1/vendor/inquiries/:id/status", h.UpdateStatus, asUser(userID, entity.RoleVendor))

			call := inquiryUC.EXPECT().UpdateStatus(mock.Anything, userID, inquiryID, entity.InquiryStatusResponded).Once()
			if tt.ucErr != nil {
				call.Return(nil, tt.ucErr)
			} else {
				call.Return(&entity.Inquiry{ID: inquiryID, Status: entity.InquiryStatusResponded}, nil)
			}

			rec := serve(e, jsonRequest(http.MethodPatch, "/api/v1/vendor/inquiries/"+inquiryID.String()+"/status", `{"status":"responded"}`))

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, errorBody(t, rec).Code)
			}
		})
	}
}
