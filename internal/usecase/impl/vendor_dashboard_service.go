package impl

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"eventhub/config"
	"eventhub/internal/dashboard"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/domain/repository"
	"eventhub/internal/domain/service"
	"eventhub/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

var errRegistryClosed = domainerrors.NewBaseError(http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "Dashboard is shutting down", "")

const (
	defaultSessionIdleTimeout = 10 * time.Minute
	minReapInterval           = time.Second
)

// dashboardSession is one user's coordinator. inUse counts in-flight requests
// and open watches; a session is only reaped while inUse is zero.
type dashboardSession struct {
	coordinator *dashboard.Coordinator
	inUse       int
	lastUsed    time.Time
}

// vendorDashboardService implements the VendorDashboardUsecase interface as a
// registry of per-user coordinators.
type vendorDashboardService struct {
	deps        dashboard.Deps
	opts        dashboard.Options
	idleTimeout time.Duration
	now         func() time.Time
	logger      *slog.Logger

	mu       sync.Mutex
	sessions map[uuid.UUID]*dashboardSession
	closed   bool
}

// VendorDashboardServiceParams holds dependencies for VendorDashboardService, injected by Fx.
type VendorDashboardServiceParams struct {
	fx.In

	Lc            fx.Lifecycle
	UserRepo      repository.UserRepository
	VendorRepo    repository.VendorProfileRepository
	InquiryRepo   repository.InquiryRepository
	AnalyticsRepo repository.AnalyticsRepository
	Feed          service.ChangeFeed
	VendorIDs     service.VendorIDCache
	Config        *config.Config
	Logger        *slog.Logger
}

// NewVendorDashboardService builds the session registry and runs its idle reaper
// for the lifetime of the application.
func NewVendorDashboardService(params VendorDashboardServiceParams) usecase.VendorDashboardUsecase {
	opts := dashboard.DefaultOptions()
	idleTimeout := defaultSessionIdleTimeout
	if params.Config != nil && params.Config.Dashboard != nil {
		opts = dashboard.OptionsFromConfig(params.Config.Dashboard)
		if params.Config.Dashboard.SessionIdleTimeout > 0 {
			idleTimeout = params.Config.Dashboard.SessionIdleTimeout
		}
	}

	srv := newVendorDashboardService(dashboard.Deps{
		Users:     params.UserRepo,
		Vendors:   params.VendorRepo,
		Inquiries: params.InquiryRepo,
		Analytics: params.AnalyticsRepo,
		Feed:      params.Feed,
		VendorIDs: params.VendorIDs,
		Logger:    params.Logger,
	}, opts, idleTimeout, params.Logger)

	var stop chan struct{}
	var done chan struct{}
	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			stop = make(chan struct{})
			done = make(chan struct{})
			go srv.reapLoop(stop, done)

			return nil
		},
		OnStop: func(context.Context) error {
			if stop != nil {
				close(stop)
				<-done
			}
			srv.closeAll()

			return nil
		},
	})

	return srv
}

func newVendorDashboardService(deps dashboard.Deps, opts dashboard.Options, idleTimeout time.Duration, logger *slog.Logger) *vendorDashboardService {
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &vendorDashboardService{
		deps:        deps,
		opts:        opts,
		idleTimeout: idleTimeout,
		now:         now,
		logger:      logger,
		sessions:    make(map[uuid.UUID]*dashboardSession),
	}
}

// Snapshot refreshes the user's dashboard. Backend failures are reported inside
// the snapshot, so the only error is a shut-down registry.
func (srv *vendorDashboardService) Snapshot(ctx context.Context, userID uuid.UUID, input *usecase.DashboardRefreshInput) (dashboard.Snapshot, error) {
	session, err := srv.acquire(userID)
	if err != nil {
		return dashboard.Snapshot{}, err
	}
	defer srv.release(session)

	if input == nil {
		input = &usecase.DashboardRefreshInput{}
	}

	return session.coordinator.Refresh(ctx, input.Force, input.Slices...), nil
}

// Watch keeps the user's session alive until stop is called.
func (srv *vendorDashboardService) Watch(_ context.Context, userID uuid.UUID) (<-chan dashboard.Snapshot, func(), error) {
	session, err := srv.acquire(userID)
	if err != nil {
		return nil, nil, err
	}

	ch, unwatch := session.coordinator.Watch()

	var once sync.Once

	return ch, func() {
		once.Do(func() {
			unwatch()
			srv.release(session)
		})
	}, nil
}

// Sessions returns the number of live coordinators.
func (srv *vendorDashboardService) Sessions() int {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return len(srv.sessions)
}

// ReapIdle closes unused sessions idle for longer than the idle timeout.
func (srv *vendorDashboardService) ReapIdle() int {
	cutoff := srv.now().Add(-srv.idleTimeout)

	srv.mu.Lock()
	var idle []*dashboard.Coordinator
	for userID, session := range srv.sessions {
		if session.inUse == 0 && session.lastUsed.Before(cutoff) {
			idle = append(idle, session.coordinator)
			delete(srv.sessions, userID)
		}
	}
	srv.mu.Unlock()

	for _, coordinator := range idle {
		coordinator.Close()
	}
	if len(idle) > 0 {
		srv.logger.Debug("Reaped idle dashboard sessions", slog.Int("count", len(idle)))
	}

	return len(idle)
}

func (srv *vendorDashboardService) acquire(userID uuid.UUID) (*dashboardSession, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.closed {
		return nil, errRegistryClosed
	}

	session, ok := srv.sessions[userID]
	if !ok {
		coordinator := dashboard.New(srv.deps, srv.opts)
		coordinator.SetUser(userID)
		session = &dashboardSession{coordinator: coordinator}
		srv.sessions[userID] = session
	}
	session.inUse++
	session.lastUsed = srv.now()

	return session, nil
}

func (srv *vendorDashboardService) release(session *dashboardSession) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	session.inUse--
	session.lastUsed = srv.now()
}

func (srv *vendorDashboardService) reapLoop(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(max(srv.idleTimeout/2, minReapInterval))
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			srv.ReapIdle()
		}
	}
}

func (srv *vendorDashboardService) closeAll() {
	srv.mu.Lock()
	srv.closed = true
	sessions := srv.sessions
	srv.sessions = make(map[uuid.UUID]*dashboardSession)
	srv.mu.Unlock()

	for _, session := range sessions {
		session.coordinator.Close()
	}
}
