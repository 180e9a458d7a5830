package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/domain/repository"
	"eventhub/internal/errors"
	mockRepo "eventhub/internal/mocks/repository"
	"eventhub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")
	gifBytes = []byte("GIF89a\x01\x00\x01\x00\x80\x00\x00")
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// expectTx makes txManager run the callback against factory and return its error.
func expectTx(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func assertAppError(t *testing.T, err error, want domainerrors.AppError) {
	t.Helper()

	require.Error(t, err)
	got, ok := errors.AsType[domainerrors.AppError](err)
	require.True(t, ok, "expected an AppError, got %v", err)
	assert.Equal(t, want.ErrorCode(), got.ErrorCode())
}

func TestValidateImage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		file     *usecase.UploadInput
		maxSize  int64
		wantType string
		wantErr  domainerrors.AppError
	}{
		{name: "png", file: &usecase.UploadInput{Data: pngBytes}, maxSize: 1024, wantType: "image/png"},
		{name: "gif ignores declared type", file: &usecase.UploadInput{Data: gifBytes, ContentType: "image/png"}, maxSize: 1024, wantType: "image/gif"},
		{name: "missing", file: nil, wantErr: domainerrors.ErrValidationFailed},
		{name: "empty", file: &usecase.UploadInput{}, wantErr: domainerrors.ErrValidationFailed},
		{name: "too large", file: &usecase.UploadInput{Data: pngBytes}, maxSize: 4, wantErr: domainerrors.ErrFileTooLarge},
		{name: "not an image", file: &usecase.UploadInput{Data: []byte("plain text")}, maxSize: 1024, wantErr: domainerrors.ErrUnsupportedFileType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := validateImage(tt.file, tt.maxSize)
			if tt.wantErr != nil {
				assertAppError(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, got)
		})
	}
}
