package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "eventhub/internal/delivery/context"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	deliverycontext.SetRequestID(c, "req-42")

	return c, rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestSuccess(t *testing.T) {
	t.Parallel()

	c, rec := newContext()
	require.NoError(t, Success(c, http.StatusCreated, map[string]int{"n": 1}))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"data":{"n":1},"meta":{"request_id":"req-42"}}`, rec.Body.String())
}

func TestHandleAppError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantDetails any
	}{
		{
			name:        "client error keeps details",
			err:         errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("name is required"), "handler"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_FAILED",
			wantDetails: "name is required",
		},
		{
			name:       "forbidden hides details",
			err:        domainerrors.ErrForbidden.WithDetails("role vendor required"),
			wantStatus: http.StatusForbidden,
			wantCode:   "FORBIDDEN",
		},
		{
			name:       "server error hides details",
			err:        domainerrors.NewDatabaseExecuteError(errors.New("boom"), "select failed"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "DATABASE_EXECUTE_FAILED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, rec := newContext()
			require.NoError(t, HandleAppError(c, tt.err))

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantDetails, body.Error.Details)
			assert.Equal(t, "req-42", body.Meta.RequestID)
		})
	}
}

func TestHandleAppError_PassesThroughPlainErrors(t *testing.T) {
	t.Parallel()

	c, rec := newContext()
	err := HandleAppError(c, errors.New("db down"))

	require.Error(t, err)
	assert.Zero(t, rec.Body.Len())
}
