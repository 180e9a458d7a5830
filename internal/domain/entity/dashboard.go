package entity

import (
	"time"

	"github.com/google/uuid"
)

// Slice names one independently cached piece of the vendor dashboard.
type Slice string

const (
	SliceStats             Slice = "stats"
	SliceInquiries         Slice = "inquiries"
	SliceUpcomingEvents    Slice = "upcomingEvents"
	SliceProfileCompletion Slice = "profileCompletion"
	SliceMonthlyGrowth     Slice = "monthlyGrowth"
)

// AllSlices lists every dashboard slice in display order.
var AllSlices = []Slice{
	SliceStats,
	SliceInquiries,
	SliceUpcomingEvents,
	SliceProfileCompletion,
	SliceMonthlyGrowth,
}

// IsValid checks if the slice name is known.
func (s Slice) IsValid() bool {
	switch s {
	case SliceStats, SliceInquiries, SliceUpcomingEvents, SliceProfileCompletion, SliceMonthlyGrowth:
		return true
	default:
		return false
	}
}

// VendorStats summarises a vendor's inquiry activity.
type VendorStats struct {
	TotalInquiries     int    `json:"totalInquiries"`
	PendingInquiries   int    `json:"pendingInquiries"`
	TotalBookings      int    `json:"totalBookings"`
	RespondedInquiries int    `json:"respondedInquiries"`
	ProfileViews       int    `json:"profileViews"`
	ResponseRate       int    `json:"responseRate"`
	AvgResponseTime    string `json:"avgResponseTime"`
	BusinessName       string `json:"businessName"`
}

// RecentInquiry is the dashboard view of an inquiry.
type RecentInquiry struct {
	ID         uuid.UUID     `json:"id"`
	ClientName string        `json:"clientName"`
	EventType  string        `json:"eventType"`
	EventDate  *time.Time    `json:"eventDate,omitempty"`
	Message    string        `json:"message"`
	Status     InquiryStatus `json:"status"`
	CreatedAt  time.Time     `json:"createdAt"`
}

// UpcomingEventStatus is the display status of a booked event.
type UpcomingEventStatus string

// UpcomingEventConfirmed marks an event derived from a booked inquiry.
const UpcomingEventConfirmed UpcomingEventStatus = "confirmed"

// UpcomingEvent is a booked inquiry whose event date has not passed.
type UpcomingEvent struct {
	ID           uuid.UUID           `json:"id"`
	ClientName   string              `json:"clientName"`
	ClientEmail  string              `json:"clientEmail"`
	EventType    string              `json:"eventType"`
	EventDate    time.Time           `json:"eventDate"`
	Location     string              `json:"location,omitempty"`
	GuestCount   int                 `json:"guestCount,omitempty"`
	BudgetAmount int64               `json:"budgetAmount,omitempty"`
	Status       UpcomingEventStatus `json:"status"`
	Notes        string              `json:"notes,omitempty"`
	CreatedAt    time.Time           `json:"createdAt"`
}

// MonthlyGrowth compares this calendar month's profile views to last month's.
// HasBaseline is false when last month had no views, in which case Percent is 0
// and the consumer decides how to present "growth from nothing".
type MonthlyGrowth struct {
	Percent        int  `json:"percent"`
	HasBaseline    bool `json:"hasBaseline"`
	ThisMonthViews int  `json:"thisMonthViews"`
	LastMonthViews int  `json:"lastMonthViews"`
}
