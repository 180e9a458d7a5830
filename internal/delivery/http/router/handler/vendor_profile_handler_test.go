package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	mockUsecase "eventhub/internal/mocks/usecase"
	"eventhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestVendorProfileHandler(t *testing.T) (*VendorProfileHandler, *mockUsecase.MockVendorProfileUsecase) {
	vendorUC := mockUsecase.NewMockVendorProfileUsecase(t)

	return NewVendorProfileHandler(VendorProfileHandlerParams{
		VendorProfileUC: vendorUC,
		Config:          testConfig(),
		Logger:          testLogger(),
	}), vendorUC
}

func TestVendorProfileHandler_CreateProfile(t *testing.T) {
	userID := uuid.New()
	vendorID := uuid.New()
	h, vendorUC := createTestVendorProfileHandler(t)
	e := newTestEcho()
	e.POST("/api/v1/vendor/profile", h.CreateProfile, asUser(userID, entity.RoleVendor))

	vendorUC.EXPECT().
		CreateProfile(mock.Anything, userID, &usecase.VendorProfileInput{
			BusinessName:     "Bloom Florals",
			BusinessCategory: "florist",
		}).
		Return(&entity.VendorProfile{ID: vendorID, UserID: userID, BusinessName: "Bloom Florals", BusinessCategory: "florist"}, nil).
		Once()

	rec := serve(e, jsonRequest(http.MethodPost, "/api/v1/vendor/profile",
		`{"businessName":"Bloom Florals","businessCategory":"florist"}`))

	require.Equal(t, http.StatusCreated, rec.Code)

	var got VendorProfileResponse
	decodeData(t, rec, &got)
	assert.Equal(t, vendorID, got.ID)
	assert.Equal(t, "Bloom Florals", got.BusinessName)
}

func TestVendorProfileHandler_CreateProfile_Exists(t *testing.T) {
	userID := uuid.New()
	h, vendorUC := createTestVendorProfileHandler(t)
	e := newTestEcho()
	e.POST("/api/v1/vendor/profile", h.CreateProfile, asUser(userID, entity.RoleVendor))

	vendorUC.EXPECT().CreateProfile(mock.Anything, userID, mock.Anything).
		Return(nil, domainerrors.ErrVendorProfileExists).
		Once()

	rec := serve(e, jsonRequest(http.MethodPost, "/api/v1/vendor/profile", `{"businessName":"Bloom"}`))

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "VENDOR_PROFILE_EXISTS", errorBody(t, rec).Code)
}

func TestVendorProfileHandler_ShareQRCode(t *testing.T) {
	userID := uuid.New()
	h, vendorUC := createTestVendorProfileHandler(t)
	e := newTestEcho()
	e.GET("/api/v1/vendor/profile/qr", h.ShareQRCode, asUser(userID, entity.RoleVendor))

	png := []byte("\x89PNG\r\n\x1a\nqr")
	vendorUC.EXPECT().ShareQRCode(mock.Anything, userID).
		Return(&usecase.VendorQRCode{ShareURL: "https://eventhub.example/vendors/v1", PNG: png}, nil).
		Once()

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/api/v1/vendor/profile/qr", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, "https://eventhub.example/vendors/v1", rec.Header().Get(headerShareURL))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestVendorProfileHandler_GetProfile_NotFound(t *testing.T) {
	userID := uuid.New()
	h, vendorUC := createTestVendorProfileHandler(t)
	e := newTestEcho()
	e.GET("/api/v1/vendor/profile", h.GetProfile, asUser(userID, entity.RoleVendor))

	vendorUC.EXPECT().GetProfile(mock.Anything, userID).
		Return(nil, domainerrors.ErrVendorProfileNotFound).
		Once()

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/api/v1/vendor/profile", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
}
