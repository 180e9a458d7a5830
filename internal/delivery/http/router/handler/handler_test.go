package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"eventhub/config"
	deliverycontext "eventhub/internal/delivery/context"
	"eventhub/internal/delivery/http/middleware"
	"eventhub/internal/delivery/http/response"
	"eventhub/internal/delivery/http/validator"
	"eventhub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.HTTP.AllowedOrigins = []string{"https://app.example.com"}
	cfg.Storage = &config.StorageConfig{MaxUploadSize: 1024}
	cfg.PubSub = &config.PubSubConfig{Provider: "memory"}

	return cfg
}

// newTestEcho mirrors the server's validator and error handling without routes.
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(testLogger()).HandleHTTPError

	return e
}

// asUser stands in for the auth middleware.
func asUser(userID uuid.UUID, roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			deliverycontext.SetUser(c, userID, entity.Roles(roles).ToStrings())

			return next(c)
		}
	}
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func serve(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

// decodeData unmarshals the success envelope's data into out.
func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) *response.ErrorInfo {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return body.Error
}

func TestHealthCheck(t *testing.T) {
	e := newTestEcho()
	e.GET("/health", HealthCheck)

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestCurrentUserID_MissingIdentity(t *testing.T) {
	e := newTestEcho()
	e.GET("/me", func(c echo.Context) error {
		_, err := currentUserID(c)

		return response.HandleAppError(c, err)
	})

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/me", nil))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "UNAUTHORIZED", errorBody(t, rec).Code)
}
