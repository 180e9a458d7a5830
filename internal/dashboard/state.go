package dashboard

import (
	"time"

	"eventhub/internal/domain/entity"

	"github.com/google/uuid"
)

// State is the coordinator's orchestration state.
type State string

const (
	StateUninitialized     State = "uninitialized"
	StateResolvingVendorID State = "resolving-vendor-id"
	StateNoVendor          State = "no-vendor"
	StateVendorFound       State = "vendor-found"
	StateLoadingSlices     State = "loading-slices"
	StateReady             State = "ready"
	StateError             State = "error"
)

// NoVendorNotice is shown to accounts without a vendor profile.
const NoVendorNotice = "Vendor profile not found. This dashboard is only available for vendor accounts. " +
	"If you believe this is an error, please complete vendor onboarding or contact support."

// Snapshot is an immutable copy of the dashboard state.
type Snapshot struct {
	State                 State                            `json:"state"`
	UserID                uuid.UUID                        `json:"userId"`
	VendorID              *uuid.UUID                       `json:"vendorId,omitempty"`
	VendorLookupCompleted bool                             `json:"vendorLookupCompleted"`
	Loading               bool                             `json:"loading"`
	Notice                string                           `json:"notice,omitempty"`
	Stats                 *entity.VendorStats              `json:"stats"`
	RecentInquiries       []entity.RecentInquiry           `json:"recentInquiries"`
	UpcomingEvents        []entity.UpcomingEvent           `json:"upcomingEvents"`
	ProfileCompletion     int                              `json:"profileCompletion"`
	MonthlyGrowth         entity.MonthlyGrowth             `json:"monthlyGrowth"`
	SliceLoading          map[entity.Slice]bool            `json:"sliceLoading"`
	SliceErrors           map[entity.Slice]*DashboardError `json:"sliceErrors,omitempty"`
	Error                 string                           `json:"error,omitempty"`
	DashboardError        *DashboardError                  `json:"dashboardError,omitempty"`
	CachedAt              map[entity.Slice]time.Time       `json:"cachedAt,omitempty"`
	Version               uint64                           `json:"version"`
}

// IsLoading reports whether a single slice is being fetched.
func (s Snapshot) IsLoading(slice entity.Slice) bool {
	return s.SliceLoading[slice]
}
