package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	mockUsecase "eventhub/internal/mocks/usecase"
	"eventhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func multipartRequest(t *testing.T, target, field, filename string, data []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if field != "" {
		part, err := writer.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())

	return req
}

func createTestProfileHandler(t *testing.T) (*ProfileHandler, *mockUsecase.MockProfileUsecase) {
	profileUC := mockUsecase.NewMockProfileUsecase(t)

	return NewProfileHandler(ProfileHandlerParams{
		ProfileUC: profileUC,
		Config:    testConfig(),
		Logger:    testLogger(),
	}), profileUC
}

func TestProfileHandler_GetProfile(t *testing.T) {
	userID := uuid.New()
	h, profileUC := createTestProfileHandler(t)
	e := newTestEcho()
	e.GET("/api/v1/profile", h.GetProfile, asUser(userID, entity.RolePlanner))

	profileUC.EXPECT().GetProfile(mock.Anything, userID).
		Return(&entity.User{ID: userID, Name: "Ana", Role: entity.RolePlanner}, nil).
		Once()

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var got UserResponse
	decodeData(t, rec, &got)
	assert.Equal(t, "Ana", got.Name)
	assert.Equal(t, "planner", got.Role)
}

func TestProfileHandler_UpdateProfile(t *testing.T) {
	userID := uuid.New()
	h, profileUC := createTestProfileHandler(t)
	e := newTestEcho()
	e.PUT("/api/v1/profile", h.UpdateProfile, asUser(userID))

	profileUC.EXPECT().
		UpdateProfile(mock.Anything, userID, mock.MatchedBy(func(in *usecase.UpdateProfileInput) bool {
			return in.Name != nil && *in.Name == "Ben"
		})).
		Return(&entity.User{ID: userID, Name: "Ben"}, nil).
		Once()

	rec := serve(e, jsonRequest(http.MethodPut, "/api/v1/profile", `{"name":"Ben"}`))

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestProfileHandler_UploadAvatar(t *testing.T) {
	userID := uuid.New()
	png := []byte("\x89PNG\r\n\x1a\nfake")

	t.Run("passes the file to the usecase", func(t *testing.T) {
		h, profileUC := createTestProfileHandler(t)
		e := newTestEcho()
		e.POST("/api/v1/profile/avatar", h.UploadAvatar, asUser(userID))

		profileUC.EXPECT().
			UploadAvatar(mock.Anything, userID, mock.MatchedBy(func(in *usecase.UploadInput) bool {
				return in.Filename == "me.png" && bytes.Equal(in.Data, png)
			})).
			Return(&entity.User{ID: userID, AvatarURL: "/uploads/avatars/x.png"}, nil).
			Once()

		rec := serve(e, multipartRequest(t, "/api/v1/profile/avatar", uploadField, "me.png", png))

		require.Equal(t, http.StatusOK, rec.Code)

		var got UserResponse
		decodeData(t, rec, &got)
		assert.Equal(t, "/uploads/avatars/x.png", got.AvatarURL)
	})

	t.Run("reads at most one byte past the limit", func(t *testing.T) {
		h, profileUC := createTestProfileHandler(t)
		e := newTestEcho()
		e.POST("/api/v1/profile/avatar", h.UploadAvatar, asUser(userID))

		profileUC.EXPECT().
			UploadAvatar(mock.Anything, userID, mock.MatchedBy(func(in *usecase.UploadInput) bool {
				return len(in.Data) == 1025
			})).
			Return(nil, domainerrors.ErrFileTooLarge).
			Once()

		rec := serve(e, multipartRequest(t, "/api/v1/profile/avatar", uploadField, "big.png", make([]byte, 4096)))

		require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
		assert.Equal(t, "FILE_TOO_LARGE", errorBody(t, rec).Code)
	})

	t.Run("missing file field", func(t *testing.T) {
		h, _ := createTestProfileHandler(t)
		e := newTestEcho()
		e.POST("/api/v1/profile/avatar", h.UploadAvatar, asUser(userID))

		rec := serve(e, multipartRequest(t, "/api/v1/profile/avatar", "", "", nil))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", errorBody(t, rec).Code)
	})
}
