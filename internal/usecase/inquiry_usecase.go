package usecase

import (
	"context"
	"time"

	"eventhub/internal/domain/entity"

	"github.com/google/uuid"
)

// SubmitInquiryInput is a prospective client's request to a vendor.
type SubmitInquiryInput struct {
	ClientName  string
	ClientEmail string
	EventType   string
	EventDate   *time.Time
	GuestCount  int
	Location    string
	BudgetRange string
	Message     string
}

// InquiryUsecase handles inquiry submission and the vendor's status workflow.
type InquiryUsecase interface {
	Submit(ctx context.Context, vendorID uuid.UUID, input *SubmitInquiryInput) (*entity.Inquiry, error)
	UpdateStatus(ctx context.Context, userID, inquiryID uuid.UUID, status entity.InquiryStatus) (*entity.Inquiry, error)
}
