package context

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newEchoContext() echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestUser(t *testing.T) {
	t.Parallel()

	c := newEchoContext()
	_, ok := GetUserID(c)
	assert.False(t, ok)

	userID := uuid.New()
	SetUser(c, userID, []string{"vendor"})

	got, ok := GetUserID(c)
	assert.True(t, ok)
	assert.Equal(t, userID, got)

	roles, ok := GetRoles(c)
	assert.True(t, ok)
	assert.Equal(t, []string{"vendor"}, roles)
}

func TestRequestID(t *testing.T) {
	t.Parallel()

	c := newEchoContext()
	SetRequestID(c, "req-1")
	assert.Equal(t, "req-1", GetRequestID(c))

	ctx := WithRequestID(context.Background(), "req-2")
	assert.Equal(t, "req-2", GetRequestIDFromContext(ctx))
	assert.Empty(t, GetRequestIDFromContext(context.Background()))

	fromRequest := newEchoContext()
	fromRequest.SetRequest(fromRequest.Request().WithContext(ctx))
	assert.Equal(t, "req-2", GetRequestID(fromRequest))

	generated := GetRequestID(newEchoContext())
	_, err := uuid.Parse(generated)
	assert.NoError(t, err)
}

func TestGetLoggerOrDefault(t *testing.T) {
	t.Parallel()

	fallback := slog.Default()
	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))

	scoped := fallback.With(slog.String("request_id", "abc"))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))

	tagged := GetLoggerOrDefault(WithRequestID(context.Background(), "req-3"), fallback)
	assert.NotSame(t, fallback, tagged)
	assert.Nil(t, GetLoggerOrDefault(WithRequestID(context.Background(), "req-4"), nil))
}
