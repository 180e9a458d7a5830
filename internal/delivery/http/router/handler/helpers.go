package handler

import (
	"io"

	deliverycontext "eventhub/internal/delivery/context"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/errors"
	"eventhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const uploadField = "file"

var errMissingIdentity = domainerrors.ErrUnauthorized.WithDetails("user identity missing from context")

func currentUserID(c echo.Context) (uuid.UUID, error) {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return uuid.Nil, errMissingIdentity
	}

	return userID, nil
}

func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails(name + " must be a UUID")
	}

	return id, nil
}

// bindAndValidate decodes the body into req and runs the struct validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	return errors.WithStack(c.Validate(req))
}

// readUpload reads the multipart file, stopping one byte past maxSize so the
// usecase can reject oversized files without buffering them whole.
func readUpload(c echo.Context, maxSize int64) (*usecase.UploadInput, error) {
	header, err := c.FormFile(uploadField)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("multipart field \"file\" is required")
	}

	file, err := header.Open()
	if err != nil {
		return nil, errors.Wrap(err, "failed to open uploaded file")
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxSize+1))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read uploaded file")
	}

	return &usecase.UploadInput{
		Filename:    header.Filename,
		ContentType: header.Header.Get(echo.HeaderContentType),
		Data:        data,
	}, nil
}
