package impl

import (
	"context"
	"testing"
	"time"

	"eventhub/config"
	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/domain/repository"
	mockRepo "eventhub/internal/mocks/repository"
	mockService "eventhub/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsService_RecordProfileView(t *testing.T) {
	tests := []struct {
		name     string
		views    int
		wantKind entity.ChangeKind
	}{
		{name: "first view of the day", views: 1, wantKind: entity.ChangeInsert},
		{name: "later view", views: 7, wantKind: entity.ChangeUpdate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vendorRepo := mockRepo.NewMockVendorProfileRepository(t)
			analyticsRepo := mockRepo.NewMockAnalyticsRepository(t)
			publisher := mockService.NewMockChangePublisher(t)
			ctx := context.Background()
			vendorID := uuid.New()

			srv := NewAnalyticsService(AnalyticsServiceParams{
				VendorRepo:    vendorRepo,
				AnalyticsRepo: analyticsRepo,
				Publisher:     publisher,
				Config:        &config.Config{Dashboard: &config.DashboardConfig{}},
				Logger:        newDiscardLogger(),
			}).(*analyticsService)
			srv.location = time.UTC
			srv.now = func() time.Time { return time.Date(2026, 5, 2, 18, 45, 0, 0, time.UTC) }

			day := time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC)
			vendorRepo.EXPECT().FindByID(ctx, vendorID).Return(&entity.VendorProfile{ID: vendorID}, nil)
			analyticsRepo.EXPECT().IncrementProfileViews(ctx, vendorID, day).Return(&entity.AnalyticsRecord{
				ID: uuid.New(), VendorID: vendorID, Date: day, ProfileViews: tt.views,
			}, nil)
			publisher.EXPECT().PublishChange(ctx, mock.MatchedBy(func(e entity.ChangeEvent) bool {
				return e.Table == entity.TableVendorAnalytics && e.Kind == tt.wantKind
			})).Return(nil)

			record, err := srv.RecordProfileView(ctx, vendorID)
			require.NoError(t, err)
			assert.Equal(t, tt.views, record.ProfileViews)
		})
	}
}

func TestAnalyticsService_RecordProfileView_UnknownVendor(t *testing.T) {
	vendorRepo := mockRepo.NewMockVendorProfileRepository(t)
	ctx := context.Background()
	vendorID := uuid.New()

	srv := NewAnalyticsService(AnalyticsServiceParams{
		VendorRepo:    vendorRepo,
		AnalyticsRepo: mockRepo.NewMockAnalyticsRepository(t),
		Publisher:     mockService.NewMockChangePublisher(t),
		Logger:        newDiscardLogger(),
	})

	vendorRepo.EXPECT().FindByID(ctx, vendorID).Return(nil, repository.ErrVendorProfileNotFound)

	_, err := srv.RecordProfileView(ctx, vendorID)
	assertAppError(t, err, domainerrors.ErrVendorProfileNotFound)
}
