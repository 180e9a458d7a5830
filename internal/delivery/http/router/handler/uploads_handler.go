package handler

import (
	"log/slog"
	"net/http"
	"path"
	"strings"

	"eventhub/internal/delivery/http/response"
	"eventhub/internal/infra/storage"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UploadsHandlerParams holds dependencies for UploadsHandler, injected by Fx.
type UploadsHandlerParams struct {
	fx.In

	Storage *storage.BlobStorage
	Logger  *slog.Logger
}

// UploadsHandler serves uploaded avatars and logos straight from the bucket.
type UploadsHandler struct {
	storage *storage.BlobStorage
	logger  *slog.Logger
}

// NewUploadsHandler is the constructor for UploadsHandler
func NewUploadsHandler(params UploadsHandlerParams) *UploadsHandler {
	return &UploadsHandler{
		storage: params.Storage,
		logger:  params.Logger,
	}
}

// Serve streams the object named by the wildcard path.
func (h *UploadsHandler) Serve(c echo.Context) error {
	key := path.Clean(strings.TrimPrefix(c.Param("*"), "/"))
	if key == "." || key == ".." || strings.HasPrefix(key, "../") {
		return response.NotFound(c, "FILE_NOT_FOUND", "File not found")
	}

	data, contentType, err := h.storage.Read(c.Request().Context(), key)
	if err != nil {
		if storage.IsNotFound(err) {
			return response.NotFound(c, "FILE_NOT_FOUND", "File not found")
		}
		h.logger.ErrorContext(c.Request().Context(), "Failed to read upload",
			slog.String("key", key),
			slog.Any("error", err),
		)

		return response.InternalServerError(c, "INTERNAL_ERROR", "Failed to read file")
	}

	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}
	c.Response().Header().Set("Cache-Control", "public, max-age=86400")

	return c.Blob(http.StatusOK, contentType, data)
}
