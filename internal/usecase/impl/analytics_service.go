package impl

import (
	"context"
	"log/slog"
	"time"

	"eventhub/config"
	"eventhub/internal/dashboard"
	deliverycontext "eventhub/internal/delivery/context"
	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/domain/repository"
	"eventhub/internal/domain/service"
	"eventhub/internal/errors"
	"eventhub/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// analyticsService implements the AnalyticsUsecase interface.
type analyticsService struct {
	vendorRepo    repository.VendorProfileRepository
	analyticsRepo repository.AnalyticsRepository
	publisher     service.ChangePublisher
	location      *time.Location
	now           func() time.Time
	logger        *slog.Logger
}

// AnalyticsServiceParams holds dependencies for AnalyticsService, injected by Fx.
type AnalyticsServiceParams struct {
	fx.In

	VendorRepo    repository.VendorProfileRepository
	AnalyticsRepo repository.AnalyticsRepository
	Publisher     service.ChangePublisher
	Config        *config.Config
	Logger        *slog.Logger
}

// NewAnalyticsService is the constructor for analyticsService.
func NewAnalyticsService(params AnalyticsServiceParams) usecase.AnalyticsUsecase {
	loc := time.UTC
	if params.Config != nil && params.Config.Dashboard != nil {
		loc = params.Config.Dashboard.Location()
	}

	return &analyticsService{
		vendorRepo:    params.VendorRepo,
		analyticsRepo: params.AnalyticsRepo,
		publisher:     params.Publisher,
		location:      loc,
		now:           time.Now,
		logger:        params.Logger,
	}
}

// RecordProfileView counts one view of the vendor's profile for today.
func (srv *analyticsService) RecordProfileView(ctx context.Context, vendorID uuid.UUID) (*entity.AnalyticsRecord, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	if _, err := srv.vendorRepo.FindByID(ctx, vendorID); err != nil {
		if errors.Is(err, repository.ErrVendorProfileNotFound) {
			return nil, errors.Wrap(domainerrors.ErrVendorProfileNotFound, "viewed vendor does not exist")
		}

		return nil, errors.Wrap(err, "failed to load viewed vendor")
	}

	day := dashboard.StartOfDay(srv.now(), srv.location)
	record, err := srv.analyticsRepo.IncrementProfileViews(ctx, vendorID, day)
	if err != nil {
		return nil, errors.Wrap(err, "failed to record profile view")
	}

	kind := entity.ChangeUpdate
	if record.ProfileViews == 1 {
		kind = entity.ChangeInsert
	}
	publishChange(ctx, srv.publisher, logger, entity.ChangeEvent{
		Table:  entity.TableVendorAnalytics,
		Kind:   kind,
		Record: analyticsRecord(record),
	})

	return record, nil
}
