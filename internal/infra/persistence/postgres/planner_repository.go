package postgres

import (
	"context"
	"time"

	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/domain/repository"
	"eventhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type plannerRepository struct {
	db *gorm.DB
}

// NewPlannerRepository is the constructor for plannerRepository.
func NewPlannerRepository(db *gorm.DB) repository.PlannerRepository {
	return &plannerRepository{
		db: db,
	}
}

// --- Events ---

func (repo *plannerRepository) FindCurrentEvent(ctx context.Context, plannerID uuid.UUID, now time.Time) (*entity.Event, error) {
	var eventM model.EventModel
	err := repo.db.WithContext(ctx).
		Where("planner_id = ? AND event_date >= ?", plannerID, now).
		Order("event_date ASC").
		First(&eventM).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = repo.db.WithContext(ctx).
			Where("planner_id = ?", plannerID).
			Order("created_at DESC").
			First(&eventM).Error
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEventNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find current event")
	}

	return toEventDomain(&eventM), nil
}

func (repo *plannerRepository) ListEvents(ctx context.Context, plannerID uuid.UUID) ([]*entity.Event, error) {
	var eventModels []*model.EventModel
	err := repo.db.WithContext(ctx).
		Where("planner_id = ?", plannerID).
		Order("event_date ASC").
		Find(&eventModels).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list events")
	}

	events := make([]*entity.Event, 0, len(eventModels))
	for _, e := range eventModels {
		events = append(events, toEventDomain(e))
	}

	return events, nil
}

func (repo *plannerRepository) FindEventByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	var eventM model.EventModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&eventM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEventNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find event")
	}

	return toEventDomain(&eventM), nil
}

func (repo *plannerRepository) CreateEvent(ctx context.Context, event *entity.Event) error {
	eventM := &model.EventModel{
		PlannerID: event.PlannerID,
		Name:      event.Name,
		EventDate: event.EventDate,
		Venue:     event.Venue,
	}

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("event planner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create event")
	}

	event.ID = eventM.ID
	event.CreatedAt = eventM.CreatedAt
	event.UpdatedAt = eventM.UpdatedAt

	return nil
}

func (repo *plannerRepository) UpdateEvent(ctx context.Context, event *entity.Event) error {
	result := repo.db.WithContext(ctx).
		Model(&model.EventModel{}).
		Where("id = ?", event.ID).
		Updates(map[string]any{
			"name":       event.Name,
			"event_date": event.EventDate,
			"venue":      event.Venue,
			"updated_at": event.UpdatedAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update event")
	}
	if result.RowsAffected == 0 {
		return repository.ErrEventNotFound
	}

	return nil
}

func (repo *plannerRepository) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	return repo.deleteByID(ctx, &model.EventModel{}, id, repository.ErrEventNotFound, "failed to delete event")
}

// --- Guests ---

func (repo *plannerRepository) ListGuests(ctx context.Context, eventID uuid.UUID) ([]*entity.Guest, error) {
	var guestModels []*model.GuestModel
	err := repo.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("created_at ASC").
		Find(&guestModels).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list guests")
	}

	guests := make([]*entity.Guest, 0, len(guestModels))
	for _, g := range guestModels {
		guests = append(guests, toGuestDomain(g))
	}

	return guests, nil
}

func (repo *plannerRepository) FindGuestByID(ctx context.Context, id uuid.UUID) (*entity.Guest, error) {
	var guestM model.GuestModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&guestM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGuestNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find guest")
	}

	return toGuestDomain(&guestM), nil
}

func (repo *plannerRepository) CreateGuest(ctx context.Context, guest *entity.Guest) error {
	guestM := &model.GuestModel{
		EventID:    guest.EventID,
		Name:       guest.Name,
		Email:      guest.Email,
		RSVPStatus: string(guest.RSVPStatus),
	}

	if err := repo.db.WithContext(ctx).Create(guestM).Error; err != nil {
		return childWriteError(err, "failed to create guest")
	}

	guest.ID = guestM.ID
	guest.CreatedAt = guestM.CreatedAt

	return nil
}

func (repo *plannerRepository) UpdateGuest(ctx context.Context, guest *entity.Guest) error {
	result := repo.db.WithContext(ctx).
		Model(&model.GuestModel{}).
		Where("id = ?", guest.ID).
		Updates(map[string]any{
			"name":        guest.Name,
			"email":       guest.Email,
			"rsvp_status": string(guest.RSVPStatus),
		})
	if result.Error != nil {
		return childWriteError(result.Error, "failed to update guest")
	}
	if result.RowsAffected == 0 {
		return repository.ErrGuestNotFound
	}

	return nil
}

func (repo *plannerRepository) DeleteGuest(ctx context.Context, id uuid.UUID) error {
	return repo.deleteByID(ctx, &model.GuestModel{}, id, repository.ErrGuestNotFound, "failed to delete guest")
}

// --- Budget items ---

func (repo *plannerRepository) ListBudgetItems(ctx context.Context, eventID uuid.UUID) ([]*entity.BudgetItem, error) {
	var itemModels []*model.BudgetItemModel
	err := repo.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("created_at ASC").
		Find(&itemModels).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list budget items")
	}

	items := make([]*entity.BudgetItem, 0, len(itemModels))
	for _, b := range itemModels {
		items = append(items, toBudgetItemDomain(b))
	}

	return items, nil
}

func (repo *plannerRepository) FindBudgetItemByID(ctx context.Context, id uuid.UUID) (*entity.BudgetItem, error) {
	var itemM model.BudgetItemModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBudgetItemNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find budget item")
	}

	return toBudgetItemDomain(&itemM), nil
}

func (repo *plannerRepository) CreateBudgetItem(ctx context.Context, item *entity.BudgetItem) error {
	itemM := &model.BudgetItemModel{
		EventID:       item.EventID,
		Name:          item.Name,
		Category:      item.Category,
		EstimatedCost: item.EstimatedCost,
		ActualCost:    item.ActualCost,
		Paid:          item.Paid,
	}

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		return childWriteError(err, "failed to create budget item")
	}

	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt
	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

func (repo *plannerRepository) UpdateBudgetItem(ctx context.Context, item *entity.BudgetItem) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BudgetItemModel{}).
		Where("id = ?", item.ID).
		Updates(map[string]any{
			"name":           item.Name,
			"category":       item.Category,
			"estimated_cost": item.EstimatedCost,
			"actual_cost":    item.ActualCost,
			"paid":           item.Paid,
			"updated_at":     item.UpdatedAt,
		})
	if result.Error != nil {
		return childWriteError(result.Error, "failed to update budget item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBudgetItemNotFound
	}

	return nil
}

func (repo *plannerRepository) DeleteBudgetItem(ctx context.Context, id uuid.UUID) error {
	return repo.deleteByID(ctx, &model.BudgetItemModel{}, id, repository.ErrBudgetItemNotFound, "failed to delete budget item")
}

// --- Checklist items ---

func (repo *plannerRepository) ListChecklistItems(ctx context.Context, eventID uuid.UUID) ([]*entity.ChecklistItem, error) {
	var itemModels []*model.ChecklistItemModel
	err := repo.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("due_date ASC NULLS LAST, created_at ASC").
		Find(&itemModels).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list checklist items")
	}

	items := make([]*entity.ChecklistItem, 0, len(itemModels))
	for _, c := range itemModels {
		items = append(items, toChecklistItemDomain(c))
	}

	return items, nil
}

func (repo *plannerRepository) FindChecklistItemByID(ctx context.Context, id uuid.UUID) (*entity.ChecklistItem, error) {
	var itemM model.ChecklistItemModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrChecklistItemNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find checklist item")
	}

	return toChecklistItemDomain(&itemM), nil
}

func (repo *plannerRepository) CreateChecklistItem(ctx context.Context, item *entity.ChecklistItem) error {
	itemM := &model.ChecklistItemModel{
		EventID:     item.EventID,
		Title:       item.Title,
		DueDate:     item.DueDate,
		Completed:   item.Completed,
		CompletedAt: item.CompletedAt,
	}

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		return childWriteError(err, "failed to create checklist item")
	}

	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt

	return nil
}

func (repo *plannerRepository) UpdateChecklistItem(ctx context.Context, item *entity.ChecklistItem) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ChecklistItemModel{}).
		Where("id = ?", item.ID).
		Updates(map[string]any{
			"title":        item.Title,
			"due_date":     item.DueDate,
			"completed":    item.Completed,
			"completed_at": item.CompletedAt,
		})
	if result.Error != nil {
		return childWriteError(result.Error, "failed to update checklist item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrChecklistItemNotFound
	}

	return nil
}

func (repo *plannerRepository) DeleteChecklistItem(ctx context.Context, id uuid.UUID) error {
	return repo.deleteByID(ctx, &model.ChecklistItemModel{}, id, repository.ErrChecklistItemNotFound, "failed to delete checklist item")
}

func (repo *plannerRepository) deleteByID(ctx context.Context, value any, id uuid.UUID, notFound error, details string) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(value)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, details)
	}
	if result.RowsAffected == 0 {
		return notFound
	}

	return nil
}

// childWriteError maps constraint failures on guest, budget and checklist rows.
func childWriteError(err error, details string) error {
	switch {
	case isForeignKeyConstraintViolation(err):
		return domainerrors.ErrEventNotFound.WrapMessage("parent event does not exist")
	case isCheckConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WrapMessage(details)
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}

// --- Mapper Functions ---

func toEventDomain(data *model.EventModel) *entity.Event {
	return &entity.Event{
		ID:        data.ID,
		PlannerID: data.PlannerID,
		Name:      data.Name,
		EventDate: data.EventDate,
		Venue:     data.Venue,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toGuestDomain(data *model.GuestModel) *entity.Guest {
	return &entity.Guest{
		ID:         data.ID,
		EventID:    data.EventID,
		Name:       data.Name,
		Email:      data.Email,
		RSVPStatus: entity.RSVPStatus(data.RSVPStatus),
		CreatedAt:  data.CreatedAt,
	}
}

func toBudgetItemDomain(data *model.BudgetItemModel) *entity.BudgetItem {
	return &entity.BudgetItem{
		ID:            data.ID,
		EventID:       data.EventID,
		Name:          data.Name,
		Category:      data.Category,
		EstimatedCost: data.EstimatedCost,
		ActualCost:    data.ActualCost,
		Paid:          data.Paid,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func toChecklistItemDomain(data *model.ChecklistItemModel) *entity.ChecklistItem {
	return &entity.ChecklistItem{
		ID:          data.ID,
		EventID:     data.EventID,
		Title:       data.Title,
		DueDate:     data.DueDate,
		Completed:   data.Completed,
		CompletedAt: data.CompletedAt,
		CreatedAt:   data.CreatedAt,
	}
}
