package impl

import (
	"context"
	"testing"
	"time"

	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/domain/repository"
	"eventhub/internal/errors"
	mockRepo "eventhub/internal/mocks/repository"
	"eventhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var plannerTestNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func createTestPlannerService(t *testing.T) (*plannerService, *mockRepo.MockPlannerRepository) {
	repo := mockRepo.NewMockPlannerRepository(t)
	srv := NewPlannerService(PlannerServiceParams{PlannerRepo: repo, Logger: newDiscardLogger()}).(*plannerService)
	srv.now = func() time.Time { return plannerTestNow }

	return srv, repo
}

func ago(d time.Duration) time.Time { return plannerTestNow.Add(-d) }

func dueIn(d time.Duration) *time.Time {
	t := plannerTestNow.Add(d)

	return &t
}

func TestPlannerService_GetDashboard(t *testing.T) {
	srv, repo := createTestPlannerService(t)
	ctx := context.Background()
	plannerID := uuid.New()
	event := &entity.Event{ID: uuid.New(), PlannerID: plannerID, Name: "Spring Gala", EventDate: plannerTestNow.Add(36 * time.Hour)}
	day := 24 * time.Hour

	guests := []*entity.Guest{
		{ID: uuid.New(), Name: "Ana", RSVPStatus: entity.RSVPConfirmed, CreatedAt: ago(1 * day)},
		{ID: uuid.New(), Name: "Ben", RSVPStatus: entity.RSVPPending, CreatedAt: ago(2 * day)},
		{ID: uuid.New(), Name: "Cy", RSVPStatus: entity.RSVPConfirmed, CreatedAt: ago(3 * day)},
		{ID: uuid.New(), Name: "Di", RSVPStatus: entity.RSVPDeclined, CreatedAt: ago(4 * day)},
		{ID: uuid.New(), Name: "Old", RSVPStatus: entity.RSVPConfirmed, CreatedAt: ago(10 * day)},
	}
	budget := []*entity.BudgetItem{
		{ID: uuid.New(), Name: "Venue", EstimatedCost: 5000, ActualCost: 4800.5, UpdatedAt: ago(5 * time.Hour)},
		{ID: uuid.New(), Name: "Flowers", EstimatedCost: 800, UpdatedAt: ago(30 * day)},
	}
	checklist := []*entity.ChecklistItem{
		{ID: uuid.New(), Title: "Book venue", Completed: true, CompletedAt: func() *time.Time { t := ago(time.Hour); return &t }()},
		{ID: uuid.New(), Title: "Send invites", DueDate: dueIn(3 * day)},
		{ID: uuid.New(), Title: "Hire DJ", DueDate: dueIn(2 * day)},
		{ID: uuid.New(), Title: "Overdue", DueDate: dueIn(-day)},
		{ID: uuid.New(), Title: "Far away", DueDate: dueIn(45 * day)},
		{ID: uuid.New(), Title: "Done early", Completed: true, DueDate: dueIn(day)},
	}

	repo.EXPECT().FindCurrentEvent(ctx, plannerID, plannerTestNow).Return(event, nil)
	repo.EXPECT().ListGuests(mock.Anything, event.ID).Return(guests, nil)
	repo.EXPECT().ListBudgetItems(mock.Anything, event.ID).Return(budget, nil)
	repo.EXPECT().ListChecklistItems(mock.Anything, event.ID).Return(checklist, nil)

	dash, err := srv.GetDashboard(ctx, plannerID)
	require.NoError(t, err)

	assert.True(t, dash.HasEvent)
	assert.Equal(t, "Spring Gala", dash.EventName)
	assert.Equal(t, 2, dash.DaysUntilEvent)
	assert.Equal(t, 5, dash.TotalGuests)
	assert.Equal(t, 3, dash.ConfirmedGuests)
	assert.InDelta(t, 5800.0, dash.TotalBudget, 0.001)
	assert.InDelta(t, 4800.5, dash.SpentBudget, 0.001)
	assert.Equal(t, 2, dash.CompletedTasks)
	assert.Equal(t, 6, dash.TotalTasks)

	messages := make([]string, 0, len(dash.RecentActivity))
	for _, a := range dash.RecentActivity {
		messages = append(messages, a.Message)
	}
	assert.Equal(t, []string{
		"Completed: Book venue",
		"Paid Venue: $4800.5",
		"Added Ana to guest list",
		"Added Ben to guest list",
		"Added Cy to guest list",
	}, messages)

	require.Len(t, dash.UpcomingDeadlines, 2)
	assert.Equal(t, "Hire DJ", dash.UpcomingDeadlines[0].Title)
	assert.Equal(t, "Send invites", dash.UpcomingDeadlines[1].Title)
}

func TestPlannerService_GetDashboard_NoEvent(t *testing.T) {
	srv, repo := createTestPlannerService(t)
	ctx := context.Background()
	plannerID := uuid.New()

	repo.EXPECT().FindCurrentEvent(ctx, plannerID, plannerTestNow).Return(nil, repository.ErrEventNotFound)

	dash, err := srv.GetDashboard(ctx, plannerID)
	require.NoError(t, err)
	assert.False(t, dash.HasEvent)
	assert.NotNil(t, dash.RecentActivity)
	assert.NotNil(t, dash.UpcomingDeadlines)
}

func TestPlannerService_GetDashboard_ListFailure(t *testing.T) {
	srv, repo := createTestPlannerService(t)
	ctx := context.Background()
	event := &entity.Event{ID: uuid.New(), EventDate: plannerTestNow}

	repo.EXPECT().FindCurrentEvent(ctx, event.PlannerID, plannerTestNow).Return(event, nil)
	repo.EXPECT().ListGuests(mock.Anything, event.ID).Return(nil, errors.New("connection reset"))
	repo.EXPECT().ListBudgetItems(mock.Anything, event.ID).Return(nil, nil).Maybe()
	repo.EXPECT().ListChecklistItems(mock.Anything, event.ID).Return(nil, nil).Maybe()

	_, err := srv.GetDashboard(ctx, event.PlannerID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list guests")
}

func TestDaysUntil(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		event time.Time
		want  int
	}{
		{name: "partial day rounds up", event: plannerTestNow.Add(time.Hour), want: 1},
		{name: "exact days", event: plannerTestNow.Add(72 * time.Hour), want: 3},
		{name: "past event", event: plannerTestNow.Add(-50 * time.Hour), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, daysUntil(plannerTestNow, tt.event))
		})
	}
}

func TestRecentActivity_CapsEachKind(t *testing.T) {
	t.Parallel()

	var guests []*entity.Guest
	for i := range 5 {
		guests = append(guests, &entity.Guest{ID: uuid.New(), Name: "g", CreatedAt: ago(time.Duration(i+1) * time.Hour)})
	}

	activity := recentActivity(plannerTestNow, guests, nil, nil)
	require.Len(t, activity, activityPerKind)
	assert.True(t, activity[0].Timestamp.After(activity[1].Timestamp))
}

func TestRecentActivity_PaidBudgetItem(t *testing.T) {
	t.Parallel()

	budget := []*entity.BudgetItem{
		{ID: uuid.New(), Name: "Cake", EstimatedCost: 300, Paid: true, UpdatedAt: ago(time.Hour)},
		{ID: uuid.New(), Name: "Band", EstimatedCost: 900, UpdatedAt: ago(2 * time.Hour)},
	}

	activity := recentActivity(plannerTestNow, nil, budget, nil)
	require.Len(t, activity, 2)
	assert.Equal(t, "Paid Cake: $300", activity[0].Message)
	assert.Equal(t, "Added budget item: Band", activity[1].Message)
}

func TestPlannerService_CreateEvent(t *testing.T) {
	ctx := context.Background()
	plannerID := uuid.New()

	t.Run("trims and stores", func(t *testing.T) {
		srv, repo := createTestPlannerService(t)
		date := time.Date(2026, 9, 12, 17, 0, 0, 0, time.FixedZone("CEST", 2*60*60))

		repo.EXPECT().CreateEvent(ctx, mock.MatchedBy(func(e *entity.Event) bool {
			return e.PlannerID == plannerID && e.Name == "Harvest Dinner" && e.Venue == "Barn" && e.EventDate.Location() == time.UTC
		})).RunAndReturn(func(_ context.Context, e *entity.Event) error {
			e.ID = uuid.New()

			return nil
		}).Once()

		event, err := srv.CreateEvent(ctx, plannerID, &usecase.EventInput{Name: "  Harvest Dinner ", EventDate: date, Venue: " Barn"})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, event.ID)
		assert.True(t, event.EventDate.Equal(date))
	})

	t.Run("requires a name and date", func(t *testing.T) {
		srv, _ := createTestPlannerService(t)

		_, err := srv.CreateEvent(ctx, plannerID, &usecase.EventInput{Name: " ", EventDate: plannerTestNow})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

		_, err = srv.CreateEvent(ctx, plannerID, &usecase.EventInput{Name: "Gala"})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestPlannerService_OtherPlannersRowsAreHidden(t *testing.T) {
	ctx := context.Background()
	plannerID := uuid.New()
	event := &entity.Event{ID: uuid.New(), PlannerID: uuid.New(), Name: "Not yours"}

	t.Run("event", func(t *testing.T) {
		srv, repo := createTestPlannerService(t)
		repo.EXPECT().FindEventByID(ctx, event.ID).Return(event, nil).Once()

		err := srv.DeleteEvent(ctx, plannerID, event.ID)
		assert.ErrorIs(t, err, domainerrors.ErrEventNotFound)
	})

	t.Run("guest", func(t *testing.T) {
		srv, repo := createTestPlannerService(t)
		guest := &entity.Guest{ID: uuid.New(), EventID: event.ID, Name: "Ana"}
		repo.EXPECT().FindGuestByID(ctx, guest.ID).Return(guest, nil).Once()
		repo.EXPECT().FindEventByID(ctx, event.ID).Return(event, nil).Once()

		err := srv.RemoveGuest(ctx, plannerID, guest.ID)
		assert.ErrorIs(t, err, domainerrors.ErrGuestNotFound)
	})

	t.Run("missing budget item", func(t *testing.T) {
		srv, repo := createTestPlannerService(t)
		itemID := uuid.New()
		repo.EXPECT().FindBudgetItemByID(ctx, itemID).Return(nil, repository.ErrBudgetItemNotFound).Once()

		_, err := srv.UpdateBudgetItem(ctx, plannerID, itemID, &usecase.BudgetItemInput{Name: "Venue"})
		assert.ErrorIs(t, err, domainerrors.ErrBudgetItemNotFound)
	})
}

func TestPlannerService_UpdateBudgetItem_MarksPaid(t *testing.T) {
	srv, repo := createTestPlannerService(t)
	ctx := context.Background()
	plannerID := uuid.New()
	event := &entity.Event{ID: uuid.New(), PlannerID: plannerID}
	item := &entity.BudgetItem{ID: uuid.New(), EventID: event.ID, Name: "Venue", EstimatedCost: 5000}

	repo.EXPECT().FindBudgetItemByID(ctx, item.ID).Return(item, nil).Twice()
	repo.EXPECT().FindEventByID(ctx, event.ID).Return(event, nil).Twice()
	repo.EXPECT().UpdateBudgetItem(ctx, mock.MatchedBy(func(b *entity.BudgetItem) bool {
		return b.Paid && b.ActualCost == 4800 && b.UpdatedAt.Equal(plannerTestNow)
	})).Return(nil).Once()

	updated, err := srv.UpdateBudgetItem(ctx, plannerID, item.ID, &usecase.BudgetItemInput{
		Name: "Venue", Category: "venue", EstimatedCost: 5000, ActualCost: 4800, Paid: true,
	})
	require.NoError(t, err)
	assert.True(t, updated.Paid)

	_, err = srv.UpdateBudgetItem(ctx, plannerID, item.ID, &usecase.BudgetItemInput{Name: "Venue", ActualCost: -1})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestPlannerService_UpdateChecklistItem_CompletionStamp(t *testing.T) {
	ctx := context.Background()
	plannerID := uuid.New()
	event := &entity.Event{ID: uuid.New(), PlannerID: plannerID}
	earlier := ago(48 * time.Hour)

	tests := []struct {
		name      string
		item      *entity.ChecklistItem
		completed bool
		want      *time.Time
	}{
		{
			name:      "completing stamps now",
			item:      &entity.ChecklistItem{ID: uuid.New(), EventID: event.ID, Title: "Book DJ"},
			completed: true,
			want:      &plannerTestNow,
		},
		{
			name:      "already complete keeps the first stamp",
			item:      &entity.ChecklistItem{ID: uuid.New(), EventID: event.ID, Title: "Book DJ", Completed: true, CompletedAt: &earlier},
			completed: true,
			want:      &earlier,
		},
		{
			name:      "reopening clears the stamp",
			item:      &entity.ChecklistItem{ID: uuid.New(), EventID: event.ID, Title: "Book DJ", Completed: true, CompletedAt: &earlier},
			completed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, repo := createTestPlannerService(t)
			repo.EXPECT().FindChecklistItemByID(ctx, tt.item.ID).Return(tt.item, nil).Once()
			repo.EXPECT().FindEventByID(ctx, event.ID).Return(event, nil).Once()
			repo.EXPECT().UpdateChecklistItem(ctx, tt.item).Return(nil).Once()

			got, err := srv.UpdateChecklistItem(ctx, plannerID, tt.item.ID, &usecase.ChecklistItemInput{Title: "Book DJ", Completed: tt.completed})
			require.NoError(t, err)
			assert.Equal(t, tt.completed, got.Completed)
			if tt.want == nil {
				assert.Nil(t, got.CompletedAt)
			} else {
				require.NotNil(t, got.CompletedAt)
				assert.True(t, tt.want.Equal(*got.CompletedAt))
			}
		})
	}
}

func TestPlannerService_AddGuest(t *testing.T) {
	ctx := context.Background()
	plannerID := uuid.New()
	event := &entity.Event{ID: uuid.New(), PlannerID: plannerID}

	t.Run("defaults to pending", func(t *testing.T) {
		srv, repo := createTestPlannerService(t)
		repo.EXPECT().FindEventByID(ctx, event.ID).Return(event, nil).Once()
		repo.EXPECT().CreateGuest(ctx, mock.MatchedBy(func(g *entity.Guest) bool {
			return g.EventID == event.ID && g.RSVPStatus == entity.RSVPPending && g.Email == "ana@example.com"
		})).Return(nil).Once()

		guest, err := srv.AddGuest(ctx, plannerID, event.ID, &usecase.GuestInput{Name: "Ana", Email: " Ana@Example.com "})
		require.NoError(t, err)
		assert.Equal(t, "Ana", guest.Name)
	})

	t.Run("rejects unknown rsvp", func(t *testing.T) {
		srv, repo := createTestPlannerService(t)
		repo.EXPECT().FindEventByID(ctx, event.ID).Return(event, nil).Once()

		_, err := srv.AddGuest(ctx, plannerID, event.ID, &usecase.GuestInput{Name: "Ana", RSVPStatus: "maybe"})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestPlannerService_ListsCarryStats(t *testing.T) {
	srv, repo := createTestPlannerService(t)
	ctx := context.Background()
	plannerID := uuid.New()
	event := &entity.Event{ID: uuid.New(), PlannerID: plannerID}
	day := 24 * time.Hour

	repo.EXPECT().FindEventByID(ctx, event.ID).Return(event, nil).Times(3)
	repo.EXPECT().ListGuests(ctx, event.ID).Return([]*entity.Guest{
		{RSVPStatus: entity.RSVPConfirmed}, {RSVPStatus: entity.RSVPPending}, {RSVPStatus: entity.RSVPDeclined}, {RSVPStatus: entity.RSVPConfirmed},
	}, nil).Once()
	repo.EXPECT().ListBudgetItems(ctx, event.ID).Return([]*entity.BudgetItem{
		{Category: "venue", EstimatedCost: 4000, ActualCost: 4200, Paid: true},
		{Category: "food", EstimatedCost: 1000, ActualCost: 300},
		{Category: "venue", EstimatedCost: 1000},
	}, nil).Once()
	repo.EXPECT().ListChecklistItems(ctx, event.ID).Return([]*entity.ChecklistItem{
		{Completed: true},
		{DueDate: dueIn(-2 * day)},
		{DueDate: dueIn(5 * day)},
		{DueDate: dueIn(60 * day)},
		{},
	}, nil).Once()

	guests, err := srv.ListGuests(ctx, plannerID, event.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.GuestStats{Total: 4, Confirmed: 2, Pending: 1, Declined: 1}, guests.Stats)

	budget, err := srv.ListBudgetItems(ctx, plannerID, event.ID)
	require.NoError(t, err)
	assert.InDelta(t, 6000.0, budget.Stats.TotalEstimated, 0.001)
	assert.InDelta(t, 4500.0, budget.Stats.TotalSpent, 0.001)
	assert.InDelta(t, 1500.0, budget.Stats.RemainingBudget, 0.001)
	assert.InDelta(t, 75.0, budget.Stats.PercentageSpent, 0.001)
	assert.Equal(t, 1, budget.Stats.PaidItems)
	assert.Equal(t, 2, budget.Stats.CategoriesCount)

	checklist, err := srv.ListChecklistItems(ctx, plannerID, event.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ChecklistStats{Total: 5, Completed: 1, Overdue: 1, Upcoming: 1, CompletionRate: 20}, checklist.Stats)
}
