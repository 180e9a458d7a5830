package dashboard

import (
	"testing"
	"time"

	"eventhub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestResponseRate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		counts entity.InquiryCounts
		want   int
	}{
		{name: "no inquiries", counts: entity.InquiryCounts{}, want: 0},
		{name: "responded and booked count", counts: entity.InquiryCounts{Total: 10, Responded: 6, Booked: 2}, want: 60},
		{name: "rounds half up", counts: entity.InquiryCounts{Total: 3, Responded: 2}, want: 67},
		{name: "all responded", counts: entity.InquiryCounts{Total: 4, Responded: 4}, want: 100},
		{name: "clamped above", counts: entity.InquiryCounts{Total: 2, Responded: 5}, want: 100},
		{name: "clamped below", counts: entity.InquiryCounts{Total: 2, Responded: -1}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ResponseRate(tt.counts)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, 100)
		})
	}
}

func TestFormatAverageResponseTime(t *testing.T) {
	t.Parallel()

	base := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	sample := func(d time.Duration) entity.ResponseSample {
		return entity.ResponseSample{CreatedAt: base, RespondedAt: base.Add(d)}
	}

	tests := []struct {
		name    string
		samples []entity.ResponseSample
		want    string
	}{
		{name: "no data", samples: nil, want: "N/A"},
		{name: "minutes", samples: []entity.ResponseSample{sample(30 * time.Minute)}, want: "30 minutes"},
		{name: "hours", samples: []entity.ResponseSample{sample(5 * time.Hour)}, want: "5.0 hours"},
		{name: "days", samples: []entity.ResponseSample{sample(72 * time.Hour)}, want: "3 days"},
		{name: "mean of samples", samples: []entity.ResponseSample{sample(time.Hour), sample(2 * time.Hour)}, want: "1.5 hours"},
		{name: "negative delta lowers the mean", samples: []entity.ResponseSample{sample(3 * time.Hour), sample(-time.Hour)}, want: "1.0 hours"},
		{name: "negative mean", samples: []entity.ResponseSample{sample(-time.Hour)}, want: "-60 minutes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, FormatAverageResponseTime(tt.samples))
		})
	}
}

func TestProfileCompletion(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, ProfileCompletion(nil))
	assert.Equal(t, 0, ProfileCompletion(&entity.VendorProfile{}))
	assert.Equal(t, 33, ProfileCompletion(&entity.VendorProfile{BusinessName: "Bloom"}))
	assert.Equal(t, 67, ProfileCompletion(&entity.VendorProfile{BusinessName: "Bloom", Description: "Florist"}))
	assert.Equal(t, 67, ProfileCompletion(&entity.VendorProfile{BusinessName: "Bloom", Description: "Florist", BusinessCategory: "   "}))
	assert.Equal(t, 100, ProfileCompletion(&entity.VendorProfile{BusinessName: "Bloom", Description: "Florist", BusinessCategory: "flowers"}))
}

func TestComputeMonthlyGrowth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		thisMonth int
		lastMonth int
		want      entity.MonthlyGrowth
	}{
		{
			name: "no baseline even with views",
			thisMonth: 40, lastMonth: 0,
			want: entity.MonthlyGrowth{Percent: 0, HasBaseline: false, ThisMonthViews: 40},
		},
		{
			name: "growth",
			thisMonth: 150, lastMonth: 100,
			want: entity.MonthlyGrowth{Percent: 50, HasBaseline: true, ThisMonthViews: 150, LastMonthViews: 100},
		},
		{
			name: "decline",
			thisMonth: 25, lastMonth: 100,
			want: entity.MonthlyGrowth{Percent: -75, HasBaseline: true, ThisMonthViews: 25, LastMonthViews: 100},
		},
		{
			name: "rounding",
			thisMonth: 4, lastMonth: 3,
			want: entity.MonthlyGrowth{Percent: 33, HasBaseline: true, ThisMonthViews: 4, LastMonthViews: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ComputeMonthlyGrowth(tt.thisMonth, tt.lastMonth))
		})
	}
}

func TestParseBudgetAmount(t *testing.T) {
	t.Parallel()

	tests := map[string]int64{
		"$5,000 - $10,000": 5000,
		"2500":             2500,
		"Under $1,200":     1200,
		"Flexible":         0,
		"":                 0,
		", then 300":       300,
	}

	for input, want := range tests {
		assert.Equal(t, want, ParseBudgetAmount(input), input)
	}
}

func TestMonthBounds(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 31, 23, 30, 0, 0, time.UTC)
	last, this, next := MonthBounds(now, nil)
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), last)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), this)
	assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), next)

	tokyo := time.FixedZone("JST", 9*60*60)
	_, this, _ = MonthBounds(now, tokyo)
	assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, tokyo), this)

	januaryNow := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	last, _, _ = MonthBounds(januaryNow, time.UTC)
	assert.Equal(t, time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), last)
}

func TestStartOfDay(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 15, 18, 45, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), StartOfDay(now, nil))
}

func TestToRecentInquiry_Defaults(t *testing.T) {
	t.Parallel()

	inquiry := &entity.Inquiry{ID: uuid.New(), Status: entity.InquiryStatusNew, Message: "Hi"}
	got := ToRecentInquiry(inquiry)

	assert.Equal(t, "Anonymous", got.ClientName)
	assert.Equal(t, "Event", got.EventType)
	assert.Equal(t, "Hi", got.Message)
	assert.Equal(t, entity.InquiryStatusNew, got.Status)
}

func TestToUpcomingEvent(t *testing.T) {
	t.Parallel()

	eventDate := time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC)
	inquiry := &entity.Inquiry{
		ID:          uuid.New(),
		ClientName:  "Dana",
		ClientEmail: "dana@example.com",
		EventType:   "Wedding",
		EventDate:   &eventDate,
		GuestCount:  120,
		Location:    "Lakeside",
		BudgetRange: "$12,500 - $15,000",
		Status:      entity.InquiryStatusBooked,
	}

	got := ToUpcomingEvent(inquiry)
	assert.Equal(t, entity.UpcomingEventConfirmed, got.Status)
	assert.Equal(t, int64(12500), got.BudgetAmount)
	assert.Equal(t, eventDate, got.EventDate)
	assert.Equal(t, "Dana", got.ClientName)
	assert.Equal(t, 120, got.GuestCount)
}
