package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"eventhub/config"
	deliverycontext "eventhub/internal/delivery/context"
	"eventhub/internal/domain/constants"
	"eventhub/internal/errors"
	"eventhub/internal/infra/pubsub"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

type idTokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PubSubPushHandlerParams holds dependencies for PubSubPushHandler, injected by Fx.
type PubSubPushHandlerParams struct {
	fx.In

	Config *config.Config
	Hub    *pubsub.Hub
	Logger *slog.Logger
}

// PubSubPushHandler feeds push-delivered change events into the local hub.
type PubSubPushHandler struct {
	hub            *pubsub.Hub
	logger         *slog.Logger
	verifyPushAuth bool
	audience       string
	serviceAccount string
	validate       idTokenValidator
}

// NewPubSubPushHandler creates a new push handler
func NewPubSubPushHandler(params PubSubPushHandlerParams) *PubSubPushHandler {
	cfg := params.Config.PubSub

	handler := &PubSubPushHandler{
		hub:      params.Hub,
		logger:   params.Logger,
		validate: idtoken.Validate,
	}

	// Only Google push requests carry an OIDC token; dev environments skip it.
	if cfg != nil && cfg.Provider == constants.PubSubProviderGoogle && params.Config.Env.Env != constants.EnvDevelop {
		handler.verifyPushAuth = true
		if cfg.Google != nil {
			handler.audience = cfg.Google.Audience
			handler.serviceAccount = cfg.Google.ServiceAccountEmail
		}
	}

	return handler
}

// HandlePush decodes a push envelope and dispatches its change event.
// Malformed envelopes are acknowledged with 400 so they are not redelivered.
func (h *PubSubPushHandler) HandlePush(c echo.Context) error {
	req := c.Request()
	ctx := req.Context()

	if h.verifyPushAuth {
		if err := h.verifyToken(req); err != nil {
			h.logger.WarnContext(ctx, "[PubSub] Invalid push token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var msg pubsub.PushMessage
	if err := c.Bind(&msg); err != nil {
		h.logger.WarnContext(ctx, "[PubSub] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := msg.Event()
	if err != nil {
		h.logger.WarnContext(ctx, "[PubSub] Failed to decode change event",
			slog.String("message_id", msg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := extractRequestID(ctx, &msg)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	handled, err := h.hub.Dispatch(ctx, event)
	if err != nil {
		reqLogger.ErrorContext(ctx, "[PubSub] Failed to dispatch change event",
			slog.String("table", event.Table),
			slog.Any("error", err),
		)
		if errors.Is(err, pubsub.ErrInvalidEvent) {
			return c.NoContent(http.StatusBadRequest)
		}

		return c.NoContent(http.StatusInternalServerError)
	}

	reqLogger.DebugContext(ctx, "[PubSub] Change event delivered",
		slog.String("message_id", msg.Message.MessageID),
		slog.String("table", event.Table),
		slog.Int("handlers", handled),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers the publisher's request id, then the inbound header.
func extractRequestID(ctx context.Context, msg *pubsub.PushMessage) string {
	if requestID := msg.Message.Attributes["request_id"]; requestID != "" {
		return requestID
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyToken checks the OIDC token Google attaches to authenticated push requests.
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PubSubPushHandler) verifyToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	audience := h.audience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := h.validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	if h.serviceAccount != "" {
		if email, _ := payload.Claims["email"].(string); email != h.serviceAccount {
			return errors.Errorf("unexpected service account: %s", email)
		}
	}

	return nil
}
