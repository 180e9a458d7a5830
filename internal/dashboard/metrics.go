package dashboard

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"eventhub/internal/domain/entity"
)

const (
	defaultClientName = "Anonymous"
	defaultEventType  = "Event"
	noResponseData    = "N/A"
)

var budgetNumberPattern = regexp.MustCompile(`[\d,]+`)

// ResponseRate is the share of inquiries answered or booked, as a whole percent in [0, 100].
func ResponseRate(counts entity.InquiryCounts) int {
	if counts.Total <= 0 {
		return 0
	}

	rate := int(math.Round(float64(counts.Responded) / float64(counts.Total) * 100))

	return min(max(rate, 0), 100)
}

// FormatAverageResponseTime renders the mean time between an inquiry and its
// first response. Deltas are averaged as recorded, including negative ones.
func FormatAverageResponseTime(samples []entity.ResponseSample) string {
	if len(samples) == 0 {
		return noResponseData
	}

	var total time.Duration
	for _, s := range samples {
		total += s.RespondedAt.Sub(s.CreatedAt)
	}

	return formatResponseDuration(total / time.Duration(len(samples)))
}

func formatResponseDuration(avg time.Duration) string {
	hours := avg.Hours()
	switch {
	case hours < 1:
		return fmt.Sprintf("%d minutes", int(math.Round(avg.Minutes())))
	case hours < 24:
		return fmt.Sprintf("%.1f hours", hours)
	default:
		return fmt.Sprintf("%d days", int(math.Round(hours/24)))
	}
}

// ProfileCompletion is the percentage of completion fields the vendor has filled in.
func ProfileCompletion(profile *entity.VendorProfile) int {
	fields := profile.CompletionFields()
	if len(fields) == 0 {
		return 0
	}

	filled := 0
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			filled++
		}
	}

	return int(math.Round(float64(filled) / float64(len(fields)) * 100))
}

// ComputeMonthlyGrowth compares this month's views with last month's.
func ComputeMonthlyGrowth(thisMonth, lastMonth int) entity.MonthlyGrowth {
	growth := entity.MonthlyGrowth{
		ThisMonthViews: thisMonth,
		LastMonthViews: lastMonth,
	}
	if lastMonth <= 0 {
		return growth
	}

	growth.HasBaseline = true
	growth.Percent = int(math.Round(float64(thisMonth-lastMonth) / float64(lastMonth) * 100))

	return growth
}

// ParseBudgetAmount returns the first number in a free-text budget range, or 0.
func ParseBudgetAmount(budgetRange string) int64 {
	for _, match := range budgetNumberPattern.FindAllString(budgetRange, -1) {
		digits := strings.ReplaceAll(match, ",", "")
		if digits == "" {
			continue
		}

		amount, err := strconv.ParseInt(digits, 10, 64)
		if err != nil {
			return 0
		}

		return amount
	}

	return 0
}

// MonthBounds returns the starts of last month, this month and next month in loc.
func MonthBounds(now time.Time, loc *time.Location) (lastMonth, thisMonth, nextMonth time.Time) {
	if loc == nil {
		loc = time.UTC
	}

	local := now.In(loc)
	thisMonth = time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)

	return thisMonth.AddDate(0, -1, 0), thisMonth, thisMonth.AddDate(0, 1, 0)
}

// StartOfDay truncates now to midnight in loc.
func StartOfDay(now time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}

	local := now.In(loc)

	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// ToRecentInquiry maps an inquiry to its dashboard row.
func ToRecentInquiry(inquiry *entity.Inquiry) entity.RecentInquiry {
	return entity.RecentInquiry{
		ID:         inquiry.ID,
		ClientName: orDefault(inquiry.ClientName, defaultClientName),
		EventType:  orDefault(inquiry.EventType, defaultEventType),
		EventDate:  inquiry.EventDate,
		Message:    inquiry.Message,
		Status:     inquiry.Status,
		CreatedAt:  inquiry.CreatedAt,
	}
}

// ToUpcomingEvent maps a booked inquiry to an upcoming event.
func ToUpcomingEvent(inquiry *entity.Inquiry) entity.UpcomingEvent {
	event := entity.UpcomingEvent{
		ID:           inquiry.ID,
		ClientName:   orDefault(inquiry.ClientName, defaultClientName),
		ClientEmail:  inquiry.ClientEmail,
		EventType:    orDefault(inquiry.EventType, defaultEventType),
		Location:     inquiry.Location,
		GuestCount:   inquiry.GuestCount,
		BudgetAmount: ParseBudgetAmount(inquiry.BudgetRange),
		Status:       entity.UpcomingEventConfirmed,
		Notes:        inquiry.Message,
		CreatedAt:    inquiry.CreatedAt,
	}
	if inquiry.EventDate != nil {
		event.EventDate = *inquiry.EventDate
	}

	return event
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}
