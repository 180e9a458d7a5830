package usecase

import (
	"context"

	"eventhub/internal/dashboard"
	"eventhub/internal/domain/entity"

	"github.com/google/uuid"
)

// DashboardRefreshInput selects what a dashboard refresh loads.
// Empty Slices means every slice.
type DashboardRefreshInput struct {
	Force  bool
	Slices []entity.Slice
}

// VendorDashboardUsecase serves the live vendor dashboard. Each user gets one
// coordinator that is kept alive while it is in use and reaped when idle.
type VendorDashboardUsecase interface {
	// Snapshot refreshes the user's dashboard and returns the resulting state.
	Snapshot(ctx context.Context, userID uuid.UUID, input *DashboardRefreshInput) (dashboard.Snapshot, error)

	// Watch streams snapshots for userID until the returned stop function is called.
	Watch(ctx context.Context, userID uuid.UUID) (<-chan dashboard.Snapshot, func(), error)

	// Sessions returns the number of live coordinators.
	Sessions() int

	// ReapIdle closes coordinators idle for longer than the configured timeout.
	ReapIdle() int
}
