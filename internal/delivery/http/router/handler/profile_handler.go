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

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Config    *config.Config
	Logger    *slog.Logger
}

// ProfileHandler serves the caller's own account.
type ProfileHandler struct {
	profileUC     usecase.ProfileUsecase
	maxUploadSize int64
	logger        *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC:     params.ProfileUC,
		maxUploadSize: params.Config.Storage.MaxUploadSize,
		logger:        params.Logger,
	}
}

// UpdateProfileRequest represents the request body for a profile update
type UpdateProfileRequest struct {
	Name *string `json:"name" validate:"omitempty,max=100"`
}

// GetProfile returns the current user.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.profileUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user))
}

// UpdateProfile changes the display name.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.profileUC.UpdateProfile(c.Request().Context(), userID, &usecase.UpdateProfileInput{Name: req.Name})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user))
}

// UploadAvatar replaces the avatar with the multipart "file" field.
func (h *ProfileHandler) UploadAvatar(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	file, err := readUpload(c, h.maxUploadSize)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.profileUC.UploadAvatar(c.Request().Context(), userID, file)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user))
}
