package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/errors"
	mockUsecase "eventhub/internal/mocks/usecase"
	"eventhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPlannerHandler_GetDashboard(t *testing.T) {
	plannerID := uuid.New()

	t.Run("no event", func(t *testing.T) {
		plannerUC := mockUsecase.NewMockPlannerUsecase(t)
		h := NewPlannerHandler(PlannerHandlerParams{PlannerUC: plannerUC, Logger: testLogger()})
		e := newTestEcho()
		e.GET("/api/v1/planner/dashboard", h.GetDashboard, asUser(plannerID, entity.RolePlanner))

		plannerUC.EXPECT().GetDashboard(mock.Anything, plannerID).
			Return(&entity.PlannerDashboard{RecentActivity: []entity.Activity{}, UpcomingDeadlines: []entity.Deadline{}}, nil).
			Once()

		rec := serve(e, httptest.NewRequest(http.MethodGet, "/api/v1/planner/dashboard", nil))

		require.Equal(t, http.StatusOK, rec.Code)

		var got entity.PlannerDashboard
		decodeData(t, rec, &got)
		assert.False(t, got.HasEvent)
		assert.Empty(t, got.RecentActivity)
	})

	t.Run("unexpected failure is hidden", func(t *testing.T) {
		plannerUC := mockUsecase.NewMockPlannerUsecase(t)
		h := NewPlannerHandler(PlannerHandlerParams{PlannerUC: plannerUC, Logger: testLogger()})
		e := newTestEcho()
		e.GET("/api/v1/planner/dashboard", h.GetDashboard, asUser(plannerID, entity.RolePlanner))

		plannerUC.EXPECT().GetDashboard(mock.Anything, plannerID).
			Return(nil, errors.New("connection reset")).
			Once()

		rec := serve(e, httptest.NewRequest(http.MethodGet, "/api/v1/planner/dashboard", nil))

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		info := errorBody(t, rec)
		assert.Equal(t, "INTERNAL_ERROR", info.Code)
		assert.NotContains(t, rec.Body.String(), "connection reset")
	})
}

func newTestPlannerHandler(t *testing.T) (*PlannerHandler, *mockUsecase.MockPlannerUsecase) {
	t.Helper()

	plannerUC := mockUsecase.NewMockPlannerUsecase(t)

	return NewPlannerHandler(PlannerHandlerParams{PlannerUC: plannerUC, Logger: testLogger()}), plannerUC
}

func TestPlannerHandler_CreateEvent(t *testing.T) {
	plannerID := uuid.New()
	eventDate := time.Date(2026, 6, 20, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		body       string
		setupMock  func(*mockUsecase.MockPlannerUsecase)
		wantStatus int
		wantCode   string
	}{
		{
			name: "created",
			body: `{"name":"Spring Wedding","eventDate":"2026-06-20T15:00:00Z","venue":"Harbor Hall"}`,
			setupMock: func(m *mockUsecase.MockPlannerUsecase) {
				m.EXPECT().CreateEvent(mock.Anything, plannerID, &usecase.EventInput{
					Name:      "Spring Wedding",
					EventDate: eventDate,
					Venue:     "Harbor Hall",
				}).Return(&entity.Event{
					ID:        uuid.New(),
					PlannerID: plannerID,
					Name:      "Spring Wedding",
					EventDate: eventDate,
					Venue:     "Harbor Hall",
				}, nil).Once()
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing name",
			body:       `{"eventDate":"2026-06-20T15:00:00Z"}`,
			setupMock:  func(*mockUsecase.MockPlannerUsecase) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name:       "missing date",
			body:       `{"name":"Spring Wedding"}`,
			setupMock:  func(*mockUsecase.MockPlannerUsecase) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, plannerUC := newTestPlannerHandler(t)
			tt.setupMock(plannerUC)
			e := newTestEcho()
			e.POST("/api/v1/planner/events", h.CreateEvent, asUser(plannerID, entity.RolePlanner))

			rec := serve(e, jsonRequest(http.MethodPost, "/api/v1/planner/events", tt.body))

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, errorBody(t, rec).Code)

				return
			}

			var got EventResponse
			decodeData(t, rec, &got)
			assert.Equal(t, "Spring Wedding", got.Name)
			assert.True(t, eventDate.Equal(got.EventDate))
		})
	}
}

func TestPlannerHandler_UpdateBudgetItem(t *testing.T) {
	plannerID := uuid.New()
	itemID := uuid.New()
	eventID := uuid.New()

	t.Run("marks paid", func(t *testing.T) {
		h, plannerUC := newTestPlannerHandler(t)
		e := newTestEcho()
		e.PUT("/api/v1/planner/budget-items/:id", h.UpdateBudgetItem, asUser(plannerID, entity.RolePlanner))

		plannerUC.EXPECT().UpdateBudgetItem(mock.Anything, plannerID, itemID, &usecase.BudgetItemInput{
			Name:          "Catering",
			Category:      "food",
			EstimatedCost: 5000,
			ActualCost:    4800,
			Paid:          true,
		}).Return(&entity.BudgetItem{
			ID:            itemID,
			EventID:       eventID,
			Name:          "Catering",
			Category:      "food",
			EstimatedCost: 5000,
			ActualCost:    4800,
			Paid:          true,
		}, nil).Once()

		rec := serve(e, jsonRequest(http.MethodPut, "/api/v1/planner/budget-items/"+itemID.String(),
			`{"name":"Catering","category":"food","estimatedCost":5000,"actualCost":4800,"paid":true}`))

		require.Equal(t, http.StatusOK, rec.Code)

		var got BudgetItemResponse
		decodeData(t, rec, &got)
		assert.True(t, got.Paid)
		assert.Equal(t, eventID, got.EventID)
	})

	t.Run("negative cost", func(t *testing.T) {
		h, _ := newTestPlannerHandler(t)
		e := newTestEcho()
		e.PUT("/api/v1/planner/budget-items/:id", h.UpdateBudgetItem, asUser(plannerID, entity.RolePlanner))

		rec := serve(e, jsonRequest(http.MethodPut, "/api/v1/planner/budget-items/"+itemID.String(),
			`{"name":"Catering","estimatedCost":-1}`))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", errorBody(t, rec).Code)
	})

	t.Run("not found", func(t *testing.T) {
		h, plannerUC := newTestPlannerHandler(t)
		e := newTestEcho()
		e.PUT("/api/v1/planner/budget-items/:id", h.UpdateBudgetItem, asUser(plannerID, entity.RolePlanner))

		plannerUC.EXPECT().UpdateBudgetItem(mock.Anything, plannerID, itemID, mock.Anything).
			Return(nil, domainerrors.ErrBudgetItemNotFound).
			Once()

		rec := serve(e, jsonRequest(http.MethodPut, "/api/v1/planner/budget-items/"+itemID.String(), `{"name":"Catering"}`))

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "BUDGET_ITEM_NOT_FOUND", errorBody(t, rec).Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		h, _ := newTestPlannerHandler(t)
		e := newTestEcho()
		e.PUT("/api/v1/planner/budget-items/:id", h.UpdateBudgetItem, asUser(plannerID, entity.RolePlanner))

		rec := serve(e, jsonRequest(http.MethodPut, "/api/v1/planner/budget-items/not-a-uuid", `{"name":"Catering"}`))

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPlannerHandler_AddGuest_RejectsUnknownRSVP(t *testing.T) {
	plannerID := uuid.New()
	h, _ := newTestPlannerHandler(t)
	e := newTestEcho()
	e.POST("/api/v1/planner/events/:id/guests", h.AddGuest, asUser(plannerID, entity.RolePlanner))

	rec := serve(e, jsonRequest(http.MethodPost, "/api/v1/planner/events/"+uuid.NewString()+"/guests",
		`{"name":"Ada","rsvpStatus":"maybe"}`))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", errorBody(t, rec).Code)
}

func TestPlannerHandler_ListGuests(t *testing.T) {
	plannerID := uuid.New()
	eventID := uuid.New()
	h, plannerUC := newTestPlannerHandler(t)
	e := newTestEcho()
	e.GET("/api/v1/planner/events/:id/guests", h.ListGuests, asUser(plannerID, entity.RolePlanner))

	plannerUC.EXPECT().ListGuests(mock.Anything, plannerID, eventID).Return(&usecase.GuestList{
		Guests: []*entity.Guest{
			{ID: uuid.New(), EventID: eventID, Name: "Ada", RSVPStatus: entity.RSVPConfirmed},
			{ID: uuid.New(), EventID: eventID, Name: "Grace", RSVPStatus: entity.RSVPPending},
		},
		Stats: entity.GuestStats{Total: 2, Confirmed: 1, Pending: 1},
	}, nil).Once()

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/api/v1/planner/events/"+eventID.String()+"/guests", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var got GuestListResponse
	decodeData(t, rec, &got)
	require.Len(t, got.Guests, 2)
	assert.Equal(t, "confirmed", got.Guests[0].RSVPStatus)
	assert.Equal(t, entity.GuestStats{Total: 2, Confirmed: 1, Pending: 1}, got.Stats)
}

func TestPlannerHandler_DeleteEvent(t *testing.T) {
	plannerID := uuid.New()
	eventID := uuid.New()

	t.Run("deleted", func(t *testing.T) {
		h, plannerUC := newTestPlannerHandler(t)
		e := newTestEcho()
		e.DELETE("/api/v1/planner/events/:id", h.DeleteEvent, asUser(plannerID, entity.RolePlanner))

		plannerUC.EXPECT().DeleteEvent(mock.Anything, plannerID, eventID).Return(nil).Once()

		rec := serve(e, httptest.NewRequest(http.MethodDelete, "/api/v1/planner/events/"+eventID.String(), nil))

		require.Equal(t, http.StatusOK, rec.Code)

		var got MessageResponse
		decodeData(t, rec, &got)
		assert.Equal(t, "Event deleted successfully", got.Message)
	})

	t.Run("another planner's event", func(t *testing.T) {
		h, plannerUC := newTestPlannerHandler(t)
		e := newTestEcho()
		e.DELETE("/api/v1/planner/events/:id", h.DeleteEvent, asUser(plannerID, entity.RolePlanner))

		plannerUC.EXPECT().DeleteEvent(mock.Anything, plannerID, eventID).
			Return(domainerrors.ErrEventNotFound).
			Once()

		rec := serve(e, httptest.NewRequest(http.MethodDelete, "/api/v1/planner/events/"+eventID.String(), nil))

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "EVENT_NOT_FOUND", errorBody(t, rec).Code)
	})
}
