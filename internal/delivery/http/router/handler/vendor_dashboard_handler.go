package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"eventhub/config"
	"eventhub/internal/dashboard"
	"eventhub/internal/delivery/http/response"
	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/usecase"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	streamWriteTimeout = 10 * time.Second

	// MessageTypeSnapshot carries a dashboard.Snapshot to the client.
	MessageTypeSnapshot = "dashboard.snapshot"
	// MessageTypeRefresh is sent by the client to request a refresh.
	MessageTypeRefresh = "refresh"
)

// VendorDashboardHandlerParams holds dependencies for VendorDashboardHandler, injected by Fx.
type VendorDashboardHandlerParams struct {
	fx.In

	DashboardUC usecase.VendorDashboardUsecase
	Config      *config.Config
	Logger      *slog.Logger
}

// VendorDashboardHandler exposes the dashboard coordinator over HTTP and websocket.
type VendorDashboardHandler struct {
	dashboardUC    usecase.VendorDashboardUsecase
	originPatterns []string
	logger         *slog.Logger
}

// NewVendorDashboardHandler is the constructor for VendorDashboardHandler
func NewVendorDashboardHandler(params VendorDashboardHandlerParams) *VendorDashboardHandler {
	var patterns []string
	if params.Config != nil {
		patterns = params.Config.OriginHosts()
	}

	return &VendorDashboardHandler{
		dashboardUC:    params.DashboardUC,
		originPatterns: patterns,
		logger:         params.Logger,
	}
}

// RefreshDashboardRequest represents the request body for a manual refresh
type RefreshDashboardRequest struct {
	Force  bool     `json:"force"`
	Slices []string `json:"slices"`
}

// StreamMessage is the websocket envelope in both directions.
type StreamMessage struct {
	Type    string              `json:"type"`
	Payload *dashboard.Snapshot `json:"payload,omitempty"`
	Force   bool                `json:"force,omitempty"`
	Slices  []string            `json:"slices,omitempty"`
}

// GetDashboard returns the current snapshot, loading stale slices first.
func (h *VendorDashboardHandler) GetDashboard(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var names []string
	if raw := c.QueryParam("slices"); raw != "" {
		names = strings.Split(raw, ",")
	}
	slices, err := parseSlices(names)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	force := c.QueryParam("force") == "true"

	snap, err := h.dashboardUC.Snapshot(c.Request().Context(), userID, &usecase.DashboardRefreshInput{
		Force:  force,
		Slices: slices,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, snap)
}

// Refresh reloads the requested slices, or all of them when none are named.
func (h *VendorDashboardHandler) Refresh(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req RefreshDashboardRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	slices, err := parseSlices(req.Slices)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	snap, err := h.dashboardUC.Snapshot(c.Request().Context(), userID, &usecase.DashboardRefreshInput{
		Force:  req.Force,
		Slices: slices,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, snap)
}

// Stream upgrades to a websocket that pushes every snapshot change and accepts
// refresh requests from the client.
func (h *VendorDashboardHandler) Stream(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	req := c.Request()
	snapshots, stop, err := h.dashboardUC.Watch(req.Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer stop()

	// The server write timeout would otherwise cut long-lived streams.
	if err := http.NewResponseController(c.Response()).SetWriteDeadline(time.Time{}); err != nil {
		h.logger.DebugContext(req.Context(), "Could not clear stream write deadline", slog.Any("error", err))
	}

	// Same-host origins are always accepted; others must match a configured host.
	conn, err := websocket.Accept(c.Response(), req, &websocket.AcceptOptions{
		OriginPatterns: h.originPatterns,
	})
	if err != nil {
		h.logger.WarnContext(req.Context(), "Dashboard stream upgrade failed", slog.Any("error", err))

		return nil
	}
	defer conn.CloseNow()

	ctx, cancel := context.WithCancel(req.Context())
	defer cancel()

	go h.refresh(ctx, userID, &usecase.DashboardRefreshInput{})
	go h.readLoop(ctx, cancel, conn, userID)

	for {
		select {
		case <-ctx.Done():
			conn.Close(websocket.StatusNormalClosure, "")

			return nil
		case snap, ok := <-snapshots:
			if !ok {
				conn.Close(websocket.StatusGoingAway, "dashboard closed")

				return nil
			}
			if err := h.write(ctx, conn, snap); err != nil {
				h.logger.DebugContext(ctx, "Dashboard stream write failed", slog.Any("error", err))

				return nil
			}
		}
	}
}

func (h *VendorDashboardHandler) write(ctx context.Context, conn *websocket.Conn, snap dashboard.Snapshot) error {
	ctx, cancel := context.WithTimeout(ctx, streamWriteTimeout)
	defer cancel()

	return wsjson.Write(ctx, conn, &StreamMessage{Type: MessageTypeSnapshot, Payload: &snap})
}

func (h *VendorDashboardHandler) readLoop(ctx context.Context, cancel context.CancelFunc, conn *websocket.Conn, userID uuid.UUID) {
	defer cancel()

	for {
		var msg StreamMessage
		if err := wsjson.Read(ctx, conn, &msg); err != nil {
			return
		}
		if msg.Type != MessageTypeRefresh {
			continue
		}

		slices, err := parseSlices(msg.Slices)
		if err != nil {
			h.logger.DebugContext(ctx, "Ignoring dashboard refresh with unknown slices", slog.Any("slices", msg.Slices))

			continue
		}
		go h.refresh(ctx, userID, &usecase.DashboardRefreshInput{Force: msg.Force, Slices: slices})
	}
}

// refresh drives the coordinator; the resulting snapshots reach the stream
// through the watch channel.
func (h *VendorDashboardHandler) refresh(ctx context.Context, userID uuid.UUID, input *usecase.DashboardRefreshInput) {
	if _, err := h.dashboardUC.Snapshot(ctx, userID, input); err != nil {
		h.logger.DebugContext(ctx, "Dashboard stream refresh failed", slog.Any("error", err))
	}
}

func parseSlices(names []string) ([]entity.Slice, error) {
	slices := make([]entity.Slice, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		slice := entity.Slice(name)
		if !slice.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown dashboard slice: " + name)
		}
		slices = append(slices, slice)
	}

	return slices, nil
}
