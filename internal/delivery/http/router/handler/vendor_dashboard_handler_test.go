package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"eventhub/internal/dashboard"
	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	mockUsecase "eventhub/internal/mocks/usecase"
	"eventhub/internal/usecase"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestVendorDashboardHandler(t *testing.T) (*VendorDashboardHandler, *mockUsecase.MockVendorDashboardUsecase) {
	dashboardUC := mockUsecase.NewMockVendorDashboardUsecase(t)

	return NewVendorDashboardHandler(VendorDashboardHandlerParams{
		DashboardUC: dashboardUC,
		Config:      testConfig(),
		Logger:      testLogger(),
	}), dashboardUC
}

func TestVendorDashboardHandler_GetDashboard(t *testing.T) {
	userID := uuid.New()
	vendorID := uuid.New()

	t.Run("passes slices and force", func(t *testing.T) {
		h, dashboardUC := createTestVendorDashboardHandler(t)
		e := newTestEcho()
		e.GET("/api/v1/vendor/dashboard", h.GetDashboard, asUser(userID, entity.RoleVendor))

		dashboardUC.EXPECT().
			Snapshot(mock.Anything, userID, &usecase.DashboardRefreshInput{
				Force:  true,
				Slices: []entity.Slice{entity.SliceStats, entity.SliceInquiries},
			}).
			Return(dashboard.Snapshot{State: dashboard.StateReady, UserID: userID, VendorID: &vendorID, Version: 4}, nil).
			Once()

		rec := serve(e, httptest.NewRequest(http.MethodGet, "/api/v1/vendor/dashboard?slices=stats,%20inquiries&force=true", nil))

		require.Equal(t, http.StatusOK, rec.Code)

		var got dashboard.Snapshot
		decodeData(t, rec, &got)
		assert.Equal(t, dashboard.StateReady, got.State)
		require.NotNil(t, got.VendorID)
		assert.Equal(t, vendorID, *got.VendorID)
		assert.Equal(t, uint64(4), got.Version)
	})

	t.Run("unknown slice", func(t *testing.T) {
		h, _ := createTestVendorDashboardHandler(t)
		e := newTestEcho()
		e.GET("/api/v1/vendor/dashboard", h.GetDashboard, asUser(userID, entity.RoleVendor))

		rec := serve(e, httptest.NewRequest(http.MethodGet, "/api/v1/vendor/dashboard?slices=stats,revenue", nil))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		info := errorBody(t, rec)
		assert.Equal(t, "VALIDATION_FAILED", info.Code)
		assert.Equal(t, "unknown dashboard slice: revenue", info.Details)
	})
}

func TestVendorDashboardHandler_Refresh(t *testing.T) {
	userID := uuid.New()
	h, dashboardUC := createTestVendorDashboardHandler(t)
	e := newTestEcho()
	e.POST("/api/v1/vendor/dashboard/refresh", h.Refresh, asUser(userID, entity.RoleVendor))

	dashboardUC.EXPECT().
		Snapshot(mock.Anything, userID, &usecase.DashboardRefreshInput{
			Force:  true,
			Slices: []entity.Slice{entity.SliceMonthlyGrowth},
		}).
		Return(dashboard.Snapshot{State: dashboard.StateNoVendor, Notice: dashboard.NoVendorNotice}, nil).
		Once()

	rec := serve(e, jsonRequest(http.MethodPost, "/api/v1/vendor/dashboard/refresh", `{"force":true,"slices":["monthlyGrowth"]}`))

	require.Equal(t, http.StatusOK, rec.Code)

	var got dashboard.Snapshot
	decodeData(t, rec, &got)
	assert.Equal(t, dashboard.StateNoVendor, got.State)
	assert.Equal(t, dashboard.NoVendorNotice, got.Notice)
}

func TestVendorDashboardHandler_Stream(t *testing.T) {
	userID := uuid.New()
	h, dashboardUC := createTestVendorDashboardHandler(t)
	e := newTestEcho()
	e.GET("/stream", h.Stream, asUser(userID, entity.RoleVendor))

	snapshots := make(chan dashboard.Snapshot, 4)
	snapshots <- dashboard.Snapshot{State: dashboard.StateUninitialized, UserID: userID, Version: 1}

	var stopped atomic.Bool
	dashboardUC.EXPECT().Watch(mock.Anything, userID).
		Return((<-chan dashboard.Snapshot)(snapshots), func() { stopped.Store(true) }, nil).
		Once()

	// The coordinator publishes through the watch channel; the mock does the same.
	dashboardUC.EXPECT().Snapshot(mock.Anything, userID, &usecase.DashboardRefreshInput{}).
		Run(func(context.Context, uuid.UUID, *usecase.DashboardRefreshInput) {
			snapshots <- dashboard.Snapshot{State: dashboard.StateReady, UserID: userID, Version: 2}
		}).
		Return(dashboard.Snapshot{}, nil).
		Once()
	dashboardUC.EXPECT().
		Snapshot(mock.Anything, userID, &usecase.DashboardRefreshInput{Force: true, Slices: []entity.Slice{entity.SliceStats}}).
		Run(func(context.Context, uuid.UUID, *usecase.DashboardRefreshInput) {
			snapshots <- dashboard.Snapshot{State: dashboard.StateReady, UserID: userID, Version: 3}
		}).
		Return(dashboard.Snapshot{}, nil).
		Once()

	srv := httptest.NewServer(e)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(srv.URL, "http")+"/stream", nil)
	require.NoError(t, err)
	defer conn.CloseNow()

	readVersion := func() uint64 {
		var msg StreamMessage
		require.NoError(t, wsjson.Read(ctx, conn, &msg))
		require.Equal(t, MessageTypeSnapshot, msg.Type)
		require.NotNil(t, msg.Payload)

		return msg.Payload.Version
	}

	assert.Equal(t, uint64(1), readVersion())
	assert.Equal(t, uint64(2), readVersion())

	require.NoError(t, wsjson.Write(ctx, conn, &StreamMessage{Type: MessageTypeRefresh, Force: true, Slices: []string{"stats"}}))
	assert.Equal(t, uint64(3), readVersion())

	require.NoError(t, conn.Close(websocket.StatusNormalClosure, ""))
	require.Eventually(t, stopped.Load, 2*time.Second, 10*time.Millisecond)
}

func TestVendorDashboardHandler_Stream_Origins(t *testing.T) {
	userID := uuid.New()
	h, dashboardUC := createTestVendorDashboardHandler(t)
	e := newTestEcho()
	e.GET("/stream", h.Stream, asUser(userID, entity.RoleVendor))

	dashboardUC.EXPECT().Watch(mock.Anything, userID).
		RunAndReturn(func(context.Context, uuid.UUID) (<-chan dashboard.Snapshot, func(), error) {
			snapshots := make(chan dashboard.Snapshot, 1)
			snapshots <- dashboard.Snapshot{State: dashboard.StateReady, UserID: userID, Version: 1}

			return snapshots, func() {}, nil
		}).
		Twice()
	dashboardUC.EXPECT().Snapshot(mock.Anything, userID, &usecase.DashboardRefreshInput{}).
		Return(dashboard.Snapshot{}, nil).
		Maybe()

	srv := httptest.NewServer(e)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/stream"
	dial := func(origin string) (*websocket.Conn, *http.Response, error) {
		return websocket.Dial(ctx, url, &websocket.DialOptions{
			HTTPHeader: http.Header{"Origin": []string{origin}},
		})
	}

	_, resp, err := dial("https://evil.example.net")
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	conn, _, err := dial("https://app.example.com")
	require.NoError(t, err)
	defer conn.CloseNow()

	var msg StreamMessage
	require.NoError(t, wsjson.Read(ctx, conn, &msg))
	require.NotNil(t, msg.Payload)
	assert.Equal(t, uint64(1), msg.Payload.Version)
	require.NoError(t, conn.Close(websocket.StatusNormalClosure, ""))
}

func TestVendorDashboardHandler_Stream_RegistryClosed(t *testing.T) {
	userID := uuid.New()
	h, dashboardUC := createTestVendorDashboardHandler(t)
	e := newTestEcho()
	e.GET("/stream", h.Stream, asUser(userID, entity.RoleVendor))

	closedErr := domainerrors.NewBaseError(http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "Dashboard is shutting down", "")
	dashboardUC.EXPECT().Watch(mock.Anything, userID).Return(nil, nil, closedErr).Once()

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/stream", nil))

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "SERVICE_UNAVAILABLE", errorBody(t, rec).Code)
}

func TestParseSlices(t *testing.T) {
	slices, err := parseSlices([]string{" stats", "", "upcomingEvents "})
	require.NoError(t, err)
	assert.Equal(t, []entity.Slice{entity.SliceStats, entity.SliceUpcomingEvents}, slices)

	_, err = parseSlices([]string{"bogus"})
	require.Error(t, err)
}
