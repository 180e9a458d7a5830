package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	deliverycontext "eventhub/internal/delivery/context"
	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/domain/repository"
	"eventhub/internal/errors"
	"eventhub/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const (
	activityWindow       = 7 * 24 * time.Hour
	percentScale         = 100
	activityPerKind      = 3
	deadlineWindow       = 30 * 24 * time.Hour
	maxUpcomingDeadlines = 5
)

// plannerService implements the PlannerUsecase interface.
type plannerService struct {
	plannerRepo repository.PlannerRepository
	now         func() time.Time
	logger      *slog.Logger
}

// PlannerServiceParams holds dependencies for PlannerService, injected by Fx.
type PlannerServiceParams struct {
	fx.In

	PlannerRepo repository.PlannerRepository
	Logger      *slog.Logger
}

// NewPlannerService is the constructor for plannerService.
func NewPlannerService(params PlannerServiceParams) usecase.PlannerUsecase {
	return &plannerService{
		plannerRepo: params.PlannerRepo,
		now:         time.Now,
		logger:      params.Logger,
	}
}

func (srv *plannerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetDashboard aggregates the planner's current event.
func (srv *plannerService) GetDashboard(ctx context.Context, plannerID uuid.UUID) (*entity.PlannerDashboard, error) {
	now := srv.now()

	event, err := srv.plannerRepo.FindCurrentEvent(ctx, plannerID, now)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return emptyPlannerDashboard(), nil
		}

		return nil, errors.Wrap(err, "failed to find current event")
	}

	var (
		guests    []*entity.Guest
		budget    []*entity.BudgetItem
		checklist []*entity.ChecklistItem
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		guests, err = srv.plannerRepo.ListGuests(gctx, event.ID)

		return errors.Wrap(err, "failed to list guests")
	})
	g.Go(func() error {
		var err error
		budget, err = srv.plannerRepo.ListBudgetItems(gctx, event.ID)

		return errors.Wrap(err, "failed to list budget items")
	})
	g.Go(func() error {
		var err error
		checklist, err = srv.plannerRepo.ListChecklistItems(gctx, event.ID)

		return errors.Wrap(err, "failed to list checklist items")
	})
	if err := g.Wait(); err != nil {
		srv.log(ctx).Error("Failed to load planner dashboard",
			slog.String("event_id", event.ID.String()),
			slog.Any("error", err),
		)

		return nil, err
	}

	eventDate := event.EventDate
	dash := &entity.PlannerDashboard{
		HasEvent:          true,
		EventID:           event.ID,
		EventName:         event.Name,
		EventDate:         &eventDate,
		DaysUntilEvent:    daysUntil(now, event.EventDate),
		TotalGuests:       len(guests),
		TotalTasks:        len(checklist),
		RecentActivity:    recentActivity(now, guests, budget, checklist),
		UpcomingDeadlines: upcomingDeadlines(now, checklist),
	}

	for _, guest := range guests {
		if guest.RSVPStatus == entity.RSVPConfirmed {
			dash.ConfirmedGuests++
		}
	}
	for _, item := range budget {
		dash.TotalBudget += item.EstimatedCost
		dash.SpentBudget += item.ActualCost
	}
	for _, task := range checklist {
		if task.Completed {
			dash.CompletedTasks++
		}
	}

	return dash, nil
}

func emptyPlannerDashboard() *entity.PlannerDashboard {
	return &entity.PlannerDashboard{
		RecentActivity:    []entity.Activity{},
		UpcomingDeadlines: []entity.Deadline{},
	}
}

// daysUntil rounds partial days up and never goes below zero.
func daysUntil(now, eventDate time.Time) int {
	days := math.Ceil(eventDate.Sub(now).Hours() / 24)

	return max(0, int(days))
}

func recentActivity(now time.Time, guests []*entity.Guest, budget []*entity.BudgetItem, checklist []*entity.ChecklistItem) []entity.Activity {
	since := now.Add(-activityWindow)

	var added []entity.Activity
	for _, guest := range guests {
		if guest.CreatedAt.After(since) {
			added = append(added, entity.Activity{
				ID:        guest.ID,
				Kind:      entity.ActivityGuestAdded,
				Message:   fmt.Sprintf("Added %s to guest list", guest.Name),
				Timestamp: guest.CreatedAt,
			})
		}
	}

	var completed []entity.Activity
	for _, task := range checklist {
		if task.Completed && task.CompletedAt != nil && task.CompletedAt.After(since) {
			completed = append(completed, entity.Activity{
				ID:        task.ID,
				Kind:      entity.ActivityTaskCompleted,
				Message:   "Completed: " + task.Title,
				Timestamp: *task.CompletedAt,
			})
		}
	}

	var updated []entity.Activity
	for _, item := range budget {
		if !item.UpdatedAt.After(since) {
			continue
		}
		message := "Added budget item: " + item.Name
		if item.Paid || item.ActualCost > 0 {
			amount := item.ActualCost
			if amount == 0 {
				amount = item.EstimatedCost
			}
			message = fmt.Sprintf("Paid %s: $%s", item.Name, strconv.FormatFloat(amount, 'f', -1, 64))
		}
		updated = append(updated, entity.Activity{
			ID:        item.ID,
			Kind:      entity.ActivityBudgetUpdated,
			Message:   message,
			Timestamp: item.UpdatedAt,
		})
	}

	activity := make([]entity.Activity, 0, 3*activityPerKind)
	activity = append(activity, newestFirst(added)...)
	activity = append(activity, newestFirst(completed)...)
	activity = append(activity, newestFirst(updated)...)
	slices.SortStableFunc(activity, func(a, b entity.Activity) int {
		return b.Timestamp.Compare(a.Timestamp)
	})

	return activity
}

// newestFirst returns at most activityPerKind entries, newest first.
func newestFirst(activity []entity.Activity) []entity.Activity {
	slices.SortStableFunc(activity, func(a, b entity.Activity) int {
		return b.Timestamp.Compare(a.Timestamp)
	})

	return activity[:min(len(activity), activityPerKind)]
}

func upcomingDeadlines(now time.Time, checklist []*entity.ChecklistItem) []entity.Deadline {
	until := now.Add(deadlineWindow)

	deadlines := make([]entity.Deadline, 0, maxUpcomingDeadlines)
	for _, task := range checklist {
		if task.Completed || task.DueDate == nil {
			continue
		}
		if task.DueDate.After(now) && !task.DueDate.After(until) {
			deadlines = append(deadlines, entity.Deadline{
				ID:      task.ID,
				Title:   task.Title,
				DueDate: *task.DueDate,
			})
		}
	}

	slices.SortStableFunc(deadlines, func(a, b entity.Deadline) int {
		return a.DueDate.Compare(b.DueDate)
	})

	return deadlines[:min(len(deadlines), maxUpcomingDeadlines)]
}

// ListEvents returns the planner's events, soonest first.
func (srv *plannerService) ListEvents(ctx context.Context, plannerID uuid.UUID) ([]*entity.Event, error) {
	events, err := srv.plannerRepo.ListEvents(ctx, plannerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list events")
	}

	return events, nil
}

// CreateEvent starts a new event for the planner.
func (srv *plannerService) CreateEvent(ctx context.Context, plannerID uuid.UUID, input *usecase.EventInput) (*entity.Event, error) {
	event := &entity.Event{PlannerID: plannerID}
	if err := applyEventInput(event, input); err != nil {
		return nil, err
	}

	if err := srv.plannerRepo.CreateEvent(ctx, event); err != nil {
		return nil, errors.Wrap(err, "failed to create event")
	}

	srv.log(ctx).Info("Event created",
		slog.String("event_id", event.ID.String()),
		slog.String("planner_id", plannerID.String()),
	)

	return event, nil
}

// UpdateEvent replaces the editable fields of one of the planner's events.
func (srv *plannerService) UpdateEvent(ctx context.Context, plannerID, eventID uuid.UUID, input *usecase.EventInput) (*entity.Event, error) {
	event, err := srv.ownedEvent(ctx, plannerID, eventID)
	if err != nil {
		return nil, err
	}

	if err := applyEventInput(event, input); err != nil {
		return nil, err
	}
	event.UpdatedAt = srv.now().UTC()

	if err := srv.plannerRepo.UpdateEvent(ctx, event); err != nil {
		return nil, errors.Wrap(notFoundAs(err, repository.ErrEventNotFound, domainerrors.ErrEventNotFound), "failed to update event")
	}

	return event, nil
}

// DeleteEvent removes one of the planner's events with everything attached to it.
func (srv *plannerService) DeleteEvent(ctx context.Context, plannerID, eventID uuid.UUID) error {
	if _, err := srv.ownedEvent(ctx, plannerID, eventID); err != nil {
		return err
	}

	if err := srv.plannerRepo.DeleteEvent(ctx, eventID); err != nil {
		return errors.Wrap(notFoundAs(err, repository.ErrEventNotFound, domainerrors.ErrEventNotFound), "failed to delete event")
	}

	srv.log(ctx).Info("Event deleted",
		slog.String("event_id", eventID.String()),
		slog.String("planner_id", plannerID.String()),
	)

	return nil
}

// ListGuests returns an event's guest list and RSVP summary.
func (srv *plannerService) ListGuests(ctx context.Context, plannerID, eventID uuid.UUID) (*usecase.GuestList, error) {
	if _, err := srv.ownedEvent(ctx, plannerID, eventID); err != nil {
		return nil, err
	}

	guests, err := srv.plannerRepo.ListGuests(ctx, eventID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list guests")
	}

	return &usecase.GuestList{Guests: guests, Stats: guestStats(guests)}, nil
}

// AddGuest invites a guest to one of the planner's events.
func (srv *plannerService) AddGuest(ctx context.Context, plannerID, eventID uuid.UUID, input *usecase.GuestInput) (*entity.Guest, error) {
	if _, err := srv.ownedEvent(ctx, plannerID, eventID); err != nil {
		return nil, err
	}

	guest := &entity.Guest{EventID: eventID}
	if err := applyGuestInput(guest, input); err != nil {
		return nil, err
	}

	if err := srv.plannerRepo.CreateGuest(ctx, guest); err != nil {
		return nil, errors.Wrap(err, "failed to add guest")
	}

	return guest, nil
}

// UpdateGuest replaces a guest's details and RSVP.
func (srv *plannerService) UpdateGuest(ctx context.Context, plannerID, guestID uuid.UUID, input *usecase.GuestInput) (*entity.Guest, error) {
	guest, err := srv.ownedGuest(ctx, plannerID, guestID)
	if err != nil {
		return nil, err
	}

	if err := applyGuestInput(guest, input); err != nil {
		return nil, err
	}

	if err := srv.plannerRepo.UpdateGuest(ctx, guest); err != nil {
		return nil, errors.Wrap(notFoundAs(err, repository.ErrGuestNotFound, domainerrors.ErrGuestNotFound), "failed to update guest")
	}

	return guest, nil
}

// RemoveGuest takes a guest off the list.
func (srv *plannerService) RemoveGuest(ctx context.Context, plannerID, guestID uuid.UUID) error {
	if _, err := srv.ownedGuest(ctx, plannerID, guestID); err != nil {
		return err
	}

	err := srv.plannerRepo.DeleteGuest(ctx, guestID)

	return errors.Wrap(notFoundAs(err, repository.ErrGuestNotFound, domainerrors.ErrGuestNotFound), "failed to remove guest")
}

// ListBudgetItems returns an event's budget and its spending summary.
func (srv *plannerService) ListBudgetItems(ctx context.Context, plannerID, eventID uuid.UUID) (*usecase.BudgetList, error) {
	if _, err := srv.ownedEvent(ctx, plannerID, eventID); err != nil {
		return nil, err
	}

	items, err := srv.plannerRepo.ListBudgetItems(ctx, eventID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list budget items")
	}

	return &usecase.BudgetList{Items: items, Stats: budgetStats(items)}, nil
}

// AddBudgetItem adds a budget line to one of the planner's events.
func (srv *plannerService) AddBudgetItem(ctx context.Context, plannerID, eventID uuid.UUID, input *usecase.BudgetItemInput) (*entity.BudgetItem, error) {
	if _, err := srv.ownedEvent(ctx, plannerID, eventID); err != nil {
		return nil, err
	}

	item := &entity.BudgetItem{EventID: eventID}
	if err := applyBudgetItemInput(item, input); err != nil {
		return nil, err
	}

	if err := srv.plannerRepo.CreateBudgetItem(ctx, item); err != nil {
		return nil, errors.Wrap(err, "failed to add budget item")
	}

	return item, nil
}

// UpdateBudgetItem replaces a budget line, including whether it is paid.
func (srv *plannerService) UpdateBudgetItem(ctx context.Context, plannerID, itemID uuid.UUID, input *usecase.BudgetItemInput) (*entity.BudgetItem, error) {
	item, err := srv.ownedBudgetItem(ctx, plannerID, itemID)
	if err != nil {
		return nil, err
	}

	if err := applyBudgetItemInput(item, input); err != nil {
		return nil, err
	}
	item.UpdatedAt = srv.now().UTC()

	if err := srv.plannerRepo.UpdateBudgetItem(ctx, item); err != nil {
		return nil, errors.Wrap(notFoundAs(err, repository.ErrBudgetItemNotFound, domainerrors.ErrBudgetItemNotFound), "failed to update budget item")
	}

	return item, nil
}

// RemoveBudgetItem deletes a budget line.
func (srv *plannerService) RemoveBudgetItem(ctx context.Context, plannerID, itemID uuid.UUID) error {
	if _, err := srv.ownedBudgetItem(ctx, plannerID, itemID); err != nil {
		return err
	}

	err := srv.plannerRepo.DeleteBudgetItem(ctx, itemID)

	return errors.Wrap(notFoundAs(err, repository.ErrBudgetItemNotFound, domainerrors.ErrBudgetItemNotFound), "failed to remove budget item")
}

// ListChecklistItems returns an event's tasks and their progress summary.
func (srv *plannerService) ListChecklistItems(ctx context.Context, plannerID, eventID uuid.UUID) (*usecase.Checklist, error) {
	if _, err := srv.ownedEvent(ctx, plannerID, eventID); err != nil {
		return nil, err
	}

	items, err := srv.plannerRepo.ListChecklistItems(ctx, eventID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list checklist items")
	}

	return &usecase.Checklist{Items: items, Stats: checklistStats(srv.now(), items)}, nil
}

// AddChecklistItem adds a task to one of the planner's events.
func (srv *plannerService) AddChecklistItem(ctx context.Context, plannerID, eventID uuid.UUID, input *usecase.ChecklistItemInput) (*entity.ChecklistItem, error) {
	if _, err := srv.ownedEvent(ctx, plannerID, eventID); err != nil {
		return nil, err
	}

	item := &entity.ChecklistItem{EventID: eventID}
	if err := srv.applyChecklistItemInput(item, input); err != nil {
		return nil, err
	}

	if err := srv.plannerRepo.CreateChecklistItem(ctx, item); err != nil {
		return nil, errors.Wrap(err, "failed to add checklist item")
	}

	return item, nil
}

// UpdateChecklistItem replaces a task. Completing it stamps the completion
// time once; reopening it clears the stamp.
func (srv *plannerService) UpdateChecklistItem(ctx context.Context, plannerID, itemID uuid.UUID, input *usecase.ChecklistItemInput) (*entity.ChecklistItem, error) {
	item, err := srv.ownedChecklistItem(ctx, plannerID, itemID)
	if err != nil {
		return nil, err
	}

	if err := srv.applyChecklistItemInput(item, input); err != nil {
		return nil, err
	}

	if err := srv.plannerRepo.UpdateChecklistItem(ctx, item); err != nil {
		return nil, errors.Wrap(notFoundAs(err, repository.ErrChecklistItemNotFound, domainerrors.ErrChecklistItemNotFound), "failed to update checklist item")
	}

	return item, nil
}

// RemoveChecklistItem deletes a task.
func (srv *plannerService) RemoveChecklistItem(ctx context.Context, plannerID, itemID uuid.UUID) error {
	if _, err := srv.ownedChecklistItem(ctx, plannerID, itemID); err != nil {
		return err
	}

	err := srv.plannerRepo.DeleteChecklistItem(ctx, itemID)

	return errors.Wrap(notFoundAs(err, repository.ErrChecklistItemNotFound, domainerrors.ErrChecklistItemNotFound), "failed to remove checklist item")
}

// ownedEvent loads an event and reports other planners' events as missing.
func (srv *plannerService) ownedEvent(ctx context.Context, plannerID, eventID uuid.UUID) (*entity.Event, error) {
	event, err := srv.plannerRepo.FindEventByID(ctx, eventID)
	if err != nil {
		return nil, errors.Wrap(notFoundAs(err, repository.ErrEventNotFound, domainerrors.ErrEventNotFound), "failed to find event")
	}
	if event.PlannerID != plannerID {
		return nil, errors.Wrap(domainerrors.ErrEventNotFound, "event belongs to another planner")
	}

	return event, nil
}

func (srv *plannerService) ownedGuest(ctx context.Context, plannerID, guestID uuid.UUID) (*entity.Guest, error) {
	guest, err := srv.plannerRepo.FindGuestByID(ctx, guestID)
	if err != nil {
		return nil, errors.Wrap(notFoundAs(err, repository.ErrGuestNotFound, domainerrors.ErrGuestNotFound), "failed to find guest")
	}
	if err := srv.checkEventOwner(ctx, plannerID, guest.EventID, domainerrors.ErrGuestNotFound); err != nil {
		return nil, err
	}

	return guest, nil
}

func (srv *plannerService) ownedBudgetItem(ctx context.Context, plannerID, itemID uuid.UUID) (*entity.BudgetItem, error) {
	item, err := srv.plannerRepo.FindBudgetItemByID(ctx, itemID)
	if err != nil {
		return nil, errors.Wrap(notFoundAs(err, repository.ErrBudgetItemNotFound, domainerrors.ErrBudgetItemNotFound), "failed to find budget item")
	}
	if err := srv.checkEventOwner(ctx, plannerID, item.EventID, domainerrors.ErrBudgetItemNotFound); err != nil {
		return nil, err
	}

	return item, nil
}

func (srv *plannerService) ownedChecklistItem(ctx context.Context, plannerID, itemID uuid.UUID) (*entity.ChecklistItem, error) {
	item, err := srv.plannerRepo.FindChecklistItemByID(ctx, itemID)
	if err != nil {
		return nil, errors.Wrap(notFoundAs(err, repository.ErrChecklistItemNotFound, domainerrors.ErrChecklistItemNotFound), "failed to find checklist item")
	}
	if err := srv.checkEventOwner(ctx, plannerID, item.EventID, domainerrors.ErrChecklistItemNotFound); err != nil {
		return nil, err
	}

	return item, nil
}

// checkEventOwner reports a row under another planner's event as notFound.
func (srv *plannerService) checkEventOwner(ctx context.Context, plannerID, eventID uuid.UUID, notFound *domainerrors.BaseError) error {
	if _, err := srv.ownedEvent(ctx, plannerID, eventID); err != nil {
		if errors.Is(err, domainerrors.ErrEventNotFound) {
			return errors.Wrap(notFound, "row belongs to another planner")
		}

		return err
	}

	return nil
}

// notFoundAs swaps a repository sentinel for the matching domain error.
func notFoundAs(err, sentinel error, domainErr *domainerrors.BaseError) error {
	if errors.Is(err, sentinel) {
		return domainErr
	}

	return err
}

func requiredText(field, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", domainerrors.ErrValidationFailed.WithDetails(field + " is required")
	}

	return value, nil
}

func applyEventInput(event *entity.Event, input *usecase.EventInput) error {
	name, err := requiredText("name", input.Name)
	if err != nil {
		return err
	}
	if input.EventDate.IsZero() {
		return domainerrors.ErrValidationFailed.WithDetails("eventDate is required")
	}

	event.Name = name
	event.EventDate = input.EventDate.UTC()
	event.Venue = strings.TrimSpace(input.Venue)

	return nil
}

func applyGuestInput(guest *entity.Guest, input *usecase.GuestInput) error {
	name, err := requiredText("name", input.Name)
	if err != nil {
		return err
	}

	status := input.RSVPStatus
	if status == "" {
		status = entity.RSVPPending
	}
	if !status.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unknown rsvp status %q", status))
	}

	guest.Name = name
	guest.Email = normalizeEmail(input.Email)
	guest.RSVPStatus = status

	return nil
}

func applyBudgetItemInput(item *entity.BudgetItem, input *usecase.BudgetItemInput) error {
	name, err := requiredText("name", input.Name)
	if err != nil {
		return err
	}
	if input.EstimatedCost < 0 || input.ActualCost < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("costs cannot be negative")
	}

	item.Name = name
	item.Category = strings.TrimSpace(input.Category)
	item.EstimatedCost = input.EstimatedCost
	item.ActualCost = input.ActualCost
	item.Paid = input.Paid

	return nil
}

func (srv *plannerService) applyChecklistItemInput(item *entity.ChecklistItem, input *usecase.ChecklistItemInput) error {
	title, err := requiredText("title", input.Title)
	if err != nil {
		return err
	}

	item.Title = title
	item.DueDate = input.DueDate
	switch {
	case !input.Completed:
		item.CompletedAt = nil
	case !item.Completed || item.CompletedAt == nil:
		now := srv.now().UTC()
		item.CompletedAt = &now
	}
	item.Completed = input.Completed

	return nil
}

func guestStats(guests []*entity.Guest) entity.GuestStats {
	stats := entity.GuestStats{Total: len(guests)}
	for _, guest := range guests {
		switch guest.RSVPStatus {
		case entity.RSVPConfirmed:
			stats.Confirmed++
		case entity.RSVPDeclined:
			stats.Declined++
		default:
			stats.Pending++
		}
	}

	return stats
}

func budgetStats(items []*entity.BudgetItem) entity.BudgetStats {
	stats := entity.BudgetStats{TotalItems: len(items)}
	categories := make(map[string]struct{})
	for _, item := range items {
		stats.TotalEstimated += item.EstimatedCost
		stats.TotalSpent += item.ActualCost
		if item.Paid {
			stats.PaidItems++
		}
		if item.Category != "" {
			categories[item.Category] = struct{}{}
		}
	}

	stats.RemainingBudget = stats.TotalEstimated - stats.TotalSpent
	if stats.TotalEstimated > 0 {
		stats.PercentageSpent = stats.TotalSpent / stats.TotalEstimated * percentScale
	}
	stats.CategoriesCount = len(categories)

	return stats
}

// checklistStats counts open tasks due before today as overdue and those due
// within the deadline window as upcoming.
func checklistStats(now time.Time, items []*entity.ChecklistItem) entity.ChecklistStats {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	until := now.Add(deadlineWindow)

	stats := entity.ChecklistStats{Total: len(items)}
	for _, item := range items {
		if item.Completed {
			stats.Completed++

			continue
		}
		if item.DueDate == nil {
			continue
		}
		switch {
		case item.DueDate.Before(today):
			stats.Overdue++
		case !item.DueDate.After(until):
			stats.Upcoming++
		}
	}

	if stats.Total > 0 {
		stats.CompletionRate = int(math.Round(float64(stats.Completed) / float64(stats.Total) * percentScale))
	}

	return stats
}
