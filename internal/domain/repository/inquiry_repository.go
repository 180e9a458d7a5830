package repository

import (
	"context"
	"errors"
	"time"

	"eventhub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrInquiryNotFound is returned when an inquiry does not exist.
var ErrInquiryNotFound = errors.New("inquiry not found")

// InquiryRepository persists inquiries and answers the dashboard's read queries.
type InquiryRepository interface {
	Create(ctx context.Context, inquiry *entity.Inquiry) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Inquiry, error)

	// UpdateStatus sets the status and, when respondedAt is non-nil, stamps responded_at if it is still empty.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.InquiryStatus, respondedAt *time.Time) error

	// CountByVendor returns per-status counts for the vendor's inquiries.
	CountByVendor(ctx context.Context, vendorID uuid.UUID) (entity.InquiryCounts, error)

	// ListResponseTimes returns created/responded pairs for inquiries that have been responded to.
	ListResponseTimes(ctx context.Context, vendorID uuid.UUID) ([]entity.ResponseSample, error)

	// ListRecent returns the newest inquiries first.
	ListRecent(ctx context.Context, vendorID uuid.UUID, limit int) ([]*entity.Inquiry, error)

	// ListUpcomingBooked returns booked inquiries with an event date on or after from, soonest first.
	ListUpcomingBooked(ctx context.Context, vendorID uuid.UUID, from time.Time, limit int) ([]*entity.Inquiry, error)
}
