package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"eventhub/config"
	deliverycontext "eventhub/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		header    string
		propagate bool
	}{
		{name: "generated", header: ""},
		{name: "propagated", header: "caller-id", propagate: true},
		{name: "replaced when too long", header: strings.Repeat("x", maxRequestIDLength+1)},
		{name: "replaced when not printable", header: "bad id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, nil))

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var ctxID string
			handler := NewRequestIDMiddleware(logger).Process(func(c echo.Context) error {
				ctxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				deliverycontext.GetLoggerOrDefault(c.Request().Context(), nil).Info("inside")

				return nil
			})
			require.NoError(t, handler(c))

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			require.NotEmpty(t, got)
			if tt.propagate {
				assert.Equal(t, tt.header, got)
			} else {
				_, err := uuid.Parse(got)
				assert.NoError(t, err)
			}
			assert.Equal(t, got, ctxID)
			assert.Contains(t, buf.String(), `"request_id":"`+got+`"`)
		})
	}
}

func TestLoggerMiddleware_DebugOnly(t *testing.T) {
	t.Parallel()

	for _, debug := range []bool{false, true} {
		var buf bytes.Buffer
		cfg := &config.Config{}
		cfg.Env.Debug = debug
		mw := NewLoggerMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)), cfg)

		e := echo.New()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health?x=1", nil), httptest.NewRecorder())
		deliverycontext.SetUser(c, uuid.New(), nil)

		err := mw.Handle(func(c echo.Context) error { return c.NoContent(http.StatusTeapot) })(c)
		require.NoError(t, err)

		if debug {
			assert.Contains(t, buf.String(), `"status":418`)
			assert.Contains(t, buf.String(), `"user_id"`)
			assert.Contains(t, buf.String(), `"level":"WARN"`)
		} else {
			assert.Empty(t, buf.String())
		}
	}
}
