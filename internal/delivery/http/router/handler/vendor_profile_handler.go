package handler

import (
	"log/slog"
	"net/http"

	"eventhub/config"
	"eventhub/internal/delivery/http/response"
	"eventhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// headerShareURL exposes the encoded link next to the PNG body.
const headerShareURL = "X-Share-Url"

// VendorProfileHandlerParams holds dependencies for VendorProfileHandler, injected by Fx.
type VendorProfileHandlerParams struct {
	fx.In

	VendorProfileUC usecase.VendorProfileUsecase
	Config          *config.Config
	Logger          *slog.Logger
}

// VendorProfileHandler serves vendor onboarding and the vendor's own profile.
type VendorProfileHandler struct {
	vendorProfileUC usecase.VendorProfileUsecase
	maxUploadSize   int64
	logger          *slog.Logger
}

// NewVendorProfileHandler is the constructor for VendorProfileHandler
func NewVendorProfileHandler(params VendorProfileHandlerParams) *VendorProfileHandler {
	return &VendorProfileHandler{
		vendorProfileUC: params.VendorProfileUC,
		maxUploadSize:   params.Config.Storage.MaxUploadSize,
		logger:          params.Logger,
	}
}

// CreateVendorProfileRequest represents the onboarding request body
type CreateVendorProfileRequest struct {
	BusinessName     string `json:"businessName" validate:"required,max=200"`
	Description      string `json:"description" validate:"max=2000"`
	BusinessCategory string `json:"businessCategory" validate:"max=100"`
}

// UpdateVendorProfileRequest represents a partial profile update
type UpdateVendorProfileRequest struct {
	BusinessName     *string `json:"businessName" validate:"omitempty,min=1,max=200"`
	Description      *string `json:"description" validate:"omitempty,max=2000"`
	BusinessCategory *string `json:"businessCategory" validate:"omitempty,max=100"`
}

// GetProfile returns the caller's vendor profile.
func (h *VendorProfileHandler) GetProfile(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	profile, err := h.vendorProfileUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newVendorProfileResponse(profile))
}

// CreateProfile onboards the caller as a vendor.
func (h *VendorProfileHandler) CreateProfile(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CreateVendorProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	profile, err := h.vendorProfileUC.CreateProfile(c.Request().Context(), userID, &usecase.VendorProfileInput{
		BusinessName:     req.BusinessName,
		Description:      req.Description,
		BusinessCategory: req.BusinessCategory,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newVendorProfileResponse(profile))
}

// UpdateProfile applies a partial update to the caller's vendor profile.
func (h *VendorProfileHandler) UpdateProfile(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateVendorProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	profile, err := h.vendorProfileUC.UpdateProfile(c.Request().Context(), userID, &usecase.UpdateVendorProfileInput{
		BusinessName:     req.BusinessName,
		Description:      req.Description,
		BusinessCategory: req.BusinessCategory,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newVendorProfileResponse(profile))
}

// UploadLogo replaces the business logo with the multipart "file" field.
func (h *VendorProfileHandler) UploadLogo(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	file, err := readUpload(c, h.maxUploadSize)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	profile, err := h.vendorProfileUC.UploadLogo(c.Request().Context(), userID, file)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newVendorProfileResponse(profile))
}

// ShareQRCode returns the vendor's share link as a PNG QR code.
func (h *VendorProfileHandler) ShareQRCode(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	qr, err := h.vendorProfileUC.ShareQRCode(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(headerShareURL, qr.ShareURL)

	return c.Blob(http.StatusOK, "image/png", qr.PNG)
}
