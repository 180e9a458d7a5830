package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "eventhub/internal/delivery/context"
	"eventhub/internal/delivery/http/response"
	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/domain/service"
	"eventhub/internal/errors"
	mockService "eventhub/internal/mocks/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Error.Code
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID := uuid.New()
	validClaims := &service.Claims{
		Roles:            []string{"vendor"},
		Type:             service.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{Subject: userID.String()},
	}

	tests := []struct {
		name       string
		setup      func(req *http.Request, tokens *mockService.MockTokenService)
		wantStatus int
		wantCode   string
	}{
		{
			name:       "missing header",
			setup:      func(*http.Request, *mockService.MockTokenService) {},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "MISSING_TOKEN",
		},
		{
			name: "not a bearer token",
			setup: func(req *http.Request, _ *mockService.MockTokenService) {
				req.Header.Set(echo.HeaderAuthorization, "Basic abc")
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "MISSING_TOKEN",
		},
		{
			name: "query token ignored outside websocket",
			setup: func(req *http.Request, _ *mockService.MockTokenService) {
				req.URL.RawQuery = "access_token=good"
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "MISSING_TOKEN",
		},
		{
			name: "invalid token",
			setup: func(req *http.Request, tokens *mockService.MockTokenService) {
				req.Header.Set(echo.HeaderAuthorization, "Bearer bad")
				tokens.EXPECT().ValidateAccessToken("bad").Return(nil, errors.New("token is expired"))
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_TOKEN",
		},
		{
			name: "valid header",
			setup: func(req *http.Request, tokens *mockService.MockTokenService) {
				req.Header.Set(echo.HeaderAuthorization, "Bearer good")
				tokens.EXPECT().ValidateAccessToken("good").Return(validClaims, nil)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name: "websocket query token",
			setup: func(req *http.Request, tokens *mockService.MockTokenService) {
				req.URL.RawQuery = "access_token=good"
				req.Header.Set(echo.HeaderConnection, "Upgrade")
				req.Header.Set(echo.HeaderUpgrade, "websocket")
				tokens.EXPECT().ValidateAccessToken("good").Return(validClaims, nil)
			},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := mockService.NewMockTokenService(t)
			req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
			tt.setup(req, tokens)
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(req, rec)

			var gotUser uuid.UUID
			handler := NewAuthMiddleware(tokens).Authenticate(func(c echo.Context) error {
				gotUser, _ = deliverycontext.GetUserID(c)

				return okHandler(c)
			})
			require.NoError(t, handler(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, errorCode(t, rec))
			} else {
				assert.Equal(t, userID, gotUser)
			}
		})
	}
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		roles      []string
		setRoles   bool
		wantStatus int
	}{
		{name: "holds role", roles: []string{"vendor"}, setRoles: true, wantStatus: http.StatusNoContent},
		{name: "holds another allowed role", roles: []string{"planner"}, setRoles: true, wantStatus: http.StatusNoContent},
		{name: "wrong role", roles: []string{"viewer"}, setRoles: true, wantStatus: http.StatusForbidden},
		{name: "no identity", wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
			if tt.setRoles {
				deliverycontext.SetUser(c, uuid.New(), tt.roles)
			}

			mw := (&AuthMiddleware{}).RequireRole(entity.RoleVendor, entity.RolePlanner)
			require.NoError(t, mw(okHandler)(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "app error", err: errors.Wrap(domainerrors.ErrInquiryNotFound, "load"), wantStatus: http.StatusNotFound, wantCode: "INQUIRY_NOT_FOUND"},
		{name: "echo error", err: echo.NewHTTPError(http.StatusMethodNotAllowed), wantStatus: http.StatusMethodNotAllowed, wantCode: "HTTP_ERROR"},
		{name: "unknown error", err: errors.New("pq: connection refused"), wantStatus: http.StatusInternalServerError, wantCode: "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, errorCode(t, rec))
			assert.NotContains(t, rec.Body.String(), "connection refused")
		})
	}
}
