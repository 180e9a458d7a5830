package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	deliverycontext "eventhub/internal/delivery/context"
	"eventhub/internal/domain/constants"
	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/domain/repository"
	"eventhub/internal/domain/service"
	"eventhub/internal/errors"
	"eventhub/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// inquiryService implements the InquiryUsecase interface.
type inquiryService struct {
	txManager   repository.TransactionManager
	vendorRepo  repository.VendorProfileRepository
	inquiryRepo repository.InquiryRepository
	notifier    service.NotificationService
	publisher   service.ChangePublisher
	now         func() time.Time
	logger      *slog.Logger
}

// InquiryServiceParams holds dependencies for InquiryService, injected by Fx.
type InquiryServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	VendorRepo  repository.VendorProfileRepository
	InquiryRepo repository.InquiryRepository
	Notifier    service.NotificationService
	Publisher   service.ChangePublisher
	Logger      *slog.Logger
}

// NewInquiryService is the constructor for inquiryService.
func NewInquiryService(params InquiryServiceParams) usecase.InquiryUsecase {
	return &inquiryService{
		txManager:   params.TxManager,
		vendorRepo:  params.VendorRepo,
		inquiryRepo: params.InquiryRepo,
		notifier:    params.Notifier,
		publisher:   params.Publisher,
		now:         time.Now,
		logger:      params.Logger,
	}
}

func (srv *inquiryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Submit stores a new inquiry for vendorID and tells the vendor about it.
func (srv *inquiryService) Submit(ctx context.Context, vendorID uuid.UUID, input *usecase.SubmitInquiryInput) (*entity.Inquiry, error) {
	if _, err := srv.vendorRepo.FindByID(ctx, vendorID); err != nil {
		if errors.Is(err, repository.ErrVendorProfileNotFound) {
			return nil, errors.Wrap(domainerrors.ErrVendorProfileNotFound, "inquiry vendor does not exist")
		}

		return nil, errors.Wrap(err, "failed to load inquiry vendor")
	}

	inquiry := &entity.Inquiry{
		VendorID:    vendorID,
		ClientName:  strings.TrimSpace(input.ClientName),
		ClientEmail: normalizeEmail(input.ClientEmail),
		EventType:   strings.TrimSpace(input.EventType),
		EventDate:   input.EventDate,
		GuestCount:  input.GuestCount,
		Location:    strings.TrimSpace(input.Location),
		BudgetRange: strings.TrimSpace(input.BudgetRange),
		Message:     strings.TrimSpace(input.Message),
		Status:      entity.InquiryStatusNew,
	}

	if err := srv.inquiryRepo.Create(ctx, inquiry); err != nil {
		return nil, errors.Wrap(err, "failed to create inquiry")
	}

	publishChange(ctx, srv.publisher, srv.log(ctx), entity.ChangeEvent{
		Table:  entity.TableVendorInquiries,
		Kind:   entity.ChangeInsert,
		Record: inquiryRecord(inquiry),
	})
	srv.notifyVendor(ctx, inquiry)

	srv.log(ctx).Info("Inquiry submitted",
		slog.String("inquiry_id", inquiry.ID.String()),
		slog.String("vendor_id", vendorID.String()),
	)

	return inquiry, nil
}

func (srv *inquiryService) notifyVendor(ctx context.Context, inquiry *entity.Inquiry) {
	topic := constants.VendorTopicPrefix + inquiry.VendorID.String()

	clientName := inquiry.ClientName
	if clientName == "" {
		clientName = "Someone"
	}
	eventType := inquiry.EventType
	if eventType == "" {
		eventType = "an event"
	}

	data := map[string]string{
		"type":       "new_inquiry",
		"inquiry_id": inquiry.ID.String(),
		"vendor_id":  inquiry.VendorID.String(),
	}

	err := srv.notifier.SendTopicNotification(ctx, topic, "New inquiry",
		fmt.Sprintf("%s sent you an inquiry about %s", clientName, eventType), data)
	if err != nil {
		srv.log(ctx).Warn("Failed to notify vendor about inquiry",
			slog.String("inquiry_id", inquiry.ID.String()),
			slog.Any("error", err),
		)
	}
}

// UpdateStatus moves one of the vendor's inquiries through the status workflow.
func (srv *inquiryService) UpdateStatus(ctx context.Context, userID, inquiryID uuid.UUID, status entity.InquiryStatus) (*entity.Inquiry, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unknown status %q", status))
	}

	var before, after entity.Inquiry

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		vendorRepo := repoFactory.NewVendorProfileRepository()
		inquiryRepo := repoFactory.NewInquiryRepository()

		profile, err := vendorRepo.FindByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrVendorProfileNotFound) {
				return errors.Wrap(domainerrors.ErrVendorProfileNotFound, "caller has no vendor profile")
			}

			return errors.Wrap(err, "failed to find vendor profile")
		}

		inquiry, err := inquiryRepo.FindByID(ctx, inquiryID)
		if err != nil {
			if errors.Is(err, repository.ErrInquiryNotFound) {
				return errors.Wrap(domainerrors.ErrInquiryNotFound, "failed to find inquiry")
			}

			return errors.Wrap(err, "failed to find inquiry")
		}
		// Other vendors' inquiries are reported as missing.
		if inquiry.VendorID != profile.ID {
			return errors.Wrap(domainerrors.ErrInquiryNotFound, "inquiry belongs to another vendor")
		}

		if !inquiry.Status.CanTransitionTo(status) {
			return domainerrors.ErrInvalidStatusTransition.WithDetails(
				fmt.Sprintf("cannot move inquiry from %s to %s", inquiry.Status, status))
		}

		before = *inquiry
		after = *inquiry
		after.Status = status

		var respondedAt *time.Time
		if status.CountsAsResponded() && inquiry.RespondedAt == nil {
			now := srv.now().UTC()
			respondedAt = &now
			after.RespondedAt = &now
		}

		return errors.Wrap(inquiryRepo.UpdateStatus(ctx, inquiryID, status, respondedAt), "failed to update inquiry status")
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update inquiry status",
			slog.String("inquiry_id", inquiryID.String()),
			slog.String("status", status.String()),
			slog.Any("error", err),
		)

		return nil, err
	}

	publishChange(ctx, srv.publisher, srv.log(ctx), entity.ChangeEvent{
		Table:     entity.TableVendorInquiries,
		Kind:      entity.ChangeUpdate,
		Record:    inquiryRecord(&after),
		OldRecord: inquiryRecord(&before),
	})

	return &after, nil
}
