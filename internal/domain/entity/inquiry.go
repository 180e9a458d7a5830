package entity

import (
	"time"

	"github.com/google/uuid"
)

// InquiryStatus is the lifecycle state of an inquiry.
type InquiryStatus string

const (
	InquiryStatusNew       InquiryStatus = "new"
	InquiryStatusResponded InquiryStatus = "responded"
	InquiryStatusBooked    InquiryStatus = "booked"
	InquiryStatusDeclined  InquiryStatus = "declined"
	InquiryStatusArchived  InquiryStatus = "archived"
)

var inquiryTransitions = map[InquiryStatus][]InquiryStatus{
	InquiryStatusNew:       {InquiryStatusResponded, InquiryStatusDeclined, InquiryStatusArchived},
	InquiryStatusResponded: {InquiryStatusBooked, InquiryStatusDeclined, InquiryStatusArchived},
	InquiryStatusBooked:    {InquiryStatusArchived, InquiryStatusDeclined},
	InquiryStatusDeclined:  {InquiryStatusArchived},
}

// String returns the string representation of the status.
func (s InquiryStatus) String() string {
	return string(s)
}

// IsValid checks if the status is a known value.
func (s InquiryStatus) IsValid() bool {
	switch s {
	case InquiryStatusNew, InquiryStatusResponded, InquiryStatusBooked, InquiryStatusDeclined, InquiryStatusArchived:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether a vendor may move an inquiry from s to next.
func (s InquiryStatus) CanTransitionTo(next InquiryStatus) bool {
	for _, allowed := range inquiryTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// CountsAsResponded reports whether the status counts toward the response rate.
func (s InquiryStatus) CountsAsResponded() bool {
	return s == InquiryStatusResponded || s == InquiryStatusBooked
}

// Inquiry is a prospective client's request sent to a vendor.
type Inquiry struct {
	ID          uuid.UUID
	VendorID    uuid.UUID
	ClientName  string
	ClientEmail string
	EventType   string
	EventDate   *time.Time
	GuestCount  int
	Location    string
	BudgetRange string // Free text such as "$5,000 - $10,000".
	Message     string
	Status      InquiryStatus
	RespondedAt *time.Time // Stamped the first time the vendor responds or books.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ResponseSample is the pair of timestamps used to compute response times.
type ResponseSample struct {
	CreatedAt   time.Time
	RespondedAt time.Time
}

// InquiryCounts holds per-status totals for one vendor.
type InquiryCounts struct {
	Total     int
	New       int
	Booked    int
	Responded int // responded or booked
}
