// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/domain/service"
	"eventhub/internal/usecase"
	"eventhub/internal/util"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

const defaultMaxUploadSize = 5 << 20

var allowedImageTypes = []string{"image/jpeg", "image/png", "image/webp", "image/gif"}

// validateImage checks the upload size and sniffs the content to make sure it is an image.
// The detected type is returned so a spoofed Content-Type header is never stored.
func validateImage(file *usecase.UploadInput, maxSize int64) (string, error) {
	if file == nil || len(file.Data) == 0 {
		return "", domainerrors.ErrValidationFailed.WrapMessage("file is required")
	}
	if maxSize <= 0 {
		maxSize = defaultMaxUploadSize
	}
	if int64(len(file.Data)) > maxSize {
		return "", domainerrors.ErrFileTooLarge.WithDetails("maximum size is " + util.FormatBytes(maxSize))
	}

	detected := mimetype.Detect(file.Data)
	for _, allowed := range allowedImageTypes {
		if detected.Is(allowed) {
			return allowed, nil
		}
	}

	return "", domainerrors.ErrUnsupportedFileType.WithDetails("detected " + detected.String())
}

// deleteReplacedUpload deletes the object behind oldURL if it belongs to storage. Failures are only logged.
func deleteReplacedUpload(ctx context.Context, storage service.FileStorage, logger *slog.Logger, oldURL string) {
	if oldURL == "" {
		return
	}
	key, ok := storage.KeyFromURL(oldURL)
	if !ok {
		return
	}
	if err := storage.Delete(ctx, key); err != nil {
		logger.Warn("Failed to delete replaced upload", slog.String("key", key), slog.Any("error", err))
	}
}

// publishChange announces a committed write. The write already succeeded, so a
// failed publish is logged and never surfaced to the caller.
func publishChange(ctx context.Context, publisher service.ChangePublisher, logger *slog.Logger, event entity.ChangeEvent) {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}
	if err := publisher.PublishChange(ctx, event); err != nil {
		logger.Warn("Failed to publish change",
			slog.String("table", event.Table),
			slog.String("kind", string(event.Kind)),
			slog.Any("error", err),
		)
	}
}

func inquiryRecord(inquiry *entity.Inquiry) map[string]string {
	record := map[string]string{
		"id":        inquiry.ID.String(),
		"vendor_id": inquiry.VendorID.String(),
		"status":    inquiry.Status.String(),
	}
	if inquiry.EventDate != nil {
		record["event_date"] = inquiry.EventDate.Format(time.DateOnly)
	}

	return record
}

func vendorProfileRecord(profile *entity.VendorProfile) map[string]string {
	return map[string]string{
		"id":                profile.ID.String(),
		"user_id":           profile.UserID.String(),
		"business_name":     profile.BusinessName,
		"business_category": profile.BusinessCategory,
	}
}

func analyticsRecord(record *entity.AnalyticsRecord) map[string]string {
	return map[string]string{
		"id":            record.ID.String(),
		"vendor_id":     record.VendorID.String(),
		"date":          record.Date.Format(time.DateOnly),
		"profile_views": strconv.Itoa(record.ProfileViews),
	}
}

func userIDAttr(userID uuid.UUID) slog.Attr {
	return slog.String("user_id", userID.String())
}
