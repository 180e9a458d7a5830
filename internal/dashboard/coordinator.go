// Package dashboard coordinates the vendor dashboard: it resolves the vendor
// behind a user, loads the dashboard slices concurrently, caches each slice on
// its own clock and refreshes exactly the affected slices on row changes.
package dashboard

import (
	"context"
	"log/slog"
	"maps"
	"slices"
	"sync"
	"time"

	"eventhub/config"
	"eventhub/internal/domain/entity"
	"eventhub/internal/domain/repository"
	"eventhub/internal/domain/service"
	"eventhub/internal/errors"
	"eventhub/internal/retry"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	recentInquiriesLimit = 5
	upcomingEventsLimit  = 10
)

const (
	opResolveVendorID     = "resolveVendorID"
	opFetchStats          = "fetchVendorStats"
	opFetchInquiries      = "fetchRecentInquiries"
	opFetchUpcomingEvents = "fetchUpcomingEvents"
	opProfileCompletion   = "calculateProfileCompletion"
	opMonthlyGrowth       = "calculateMonthlyGrowth"
)

var sliceOperations = map[entity.Slice]string{
	entity.SliceStats:             opFetchStats,
	entity.SliceInquiries:         opFetchInquiries,
	entity.SliceUpcomingEvents:    opFetchUpcomingEvents,
	entity.SliceProfileCompletion: opProfileCompletion,
	entity.SliceMonthlyGrowth:     opMonthlyGrowth,
}

// Deps are the backends a Coordinator reads from.
type Deps struct {
	Users     repository.UserRepository
	Vendors   repository.VendorProfileRepository
	Inquiries repository.InquiryRepository
	Analytics repository.AnalyticsRepository
	Feed      service.ChangeFeed
	VendorIDs service.VendorIDCache
	Logger    *slog.Logger
}

// Options tune caching, retries and calendar math.
type Options struct {
	CacheTTL               time.Duration
	VendorLookupAttempts   int
	VendorLookupDelay      time.Duration
	QueryAttempts          int
	SecondaryQueryAttempts int
	QueryDelay             time.Duration
	Location               *time.Location
	Now                    func() time.Time
}

// DefaultOptions returns the production defaults.
func DefaultOptions() Options {
	return Options{
		CacheTTL:               DefaultCacheTTL,
		VendorLookupAttempts:   3,
		VendorLookupDelay:      time.Second,
		QueryAttempts:          3,
		SecondaryQueryAttempts: 2,
		QueryDelay:             time.Second,
		Location:               time.UTC,
		Now:                    time.Now,
	}
}

// OptionsFromConfig builds Options from the dashboard config section.
func OptionsFromConfig(cfg *config.DashboardConfig) Options {
	opts := DefaultOptions()
	if cfg == nil {
		return opts
	}

	if cfg.CacheTTL > 0 {
		opts.CacheTTL = cfg.CacheTTL
	}
	if cfg.VendorLookupAttempts > 0 {
		opts.VendorLookupAttempts = cfg.VendorLookupAttempts
	}
	if cfg.VendorLookupDelay > 0 {
		opts.VendorLookupDelay = cfg.VendorLookupDelay
	}
	if cfg.QueryAttempts > 0 {
		opts.QueryAttempts = cfg.QueryAttempts
	}
	if cfg.SecondaryQueryAttempts > 0 {
		opts.SecondaryQueryAttempts = cfg.SecondaryQueryAttempts
	}
	if cfg.QueryDelay > 0 {
		opts.QueryDelay = cfg.QueryDelay
	}
	opts.Location = cfg.Location()

	return opts
}

type subscriptionSpec struct {
	filter entity.ChangeFilter
	slices []entity.Slice
}

// Coordinator owns the dashboard state of one user. It is safe for concurrent use.
type Coordinator struct {
	deps     Deps
	opts     Options
	resolver *Resolver
	cache    *Cache
	logger   *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	bg     sync.WaitGroup

	mu sync.Mutex
	// generation changes on SetUser and Close; completions from an older generation are dropped.
	generation            uint64
	version               uint64
	closed                bool
	userID                uuid.UUID
	state                 State
	vendorID              uuid.UUID
	vendorLookupCompleted bool
	lookupFailed          bool
	awaitingProfile       bool
	resolving             chan struct{}
	notice                string

	stats      *entity.VendorStats
	inquiries  []entity.RecentInquiry
	upcoming   []entity.UpcomingEvent
	completion int
	growth     entity.MonthlyGrowth

	loading   map[entity.Slice]bool
	sliceErrs map[entity.Slice]*DashboardError
	lastErr   *DashboardError

	subs []service.Subscription

	// onboarding watches for the profile of a vendor that has none yet.
	onboarding  service.Subscription
	watchers    map[uint64]chan Snapshot
	nextWatcher uint64
}

// New creates a coordinator with no user.
func New(deps Deps, opts Options) *Coordinator {
	defaults := DefaultOptions()
	if opts.Now == nil {
		opts.Now = defaults.Now
	}
	if opts.Location == nil {
		opts.Location = defaults.Location
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}

	ctx, cancel := context.WithCancel(context.Background())
	logger := deps.Logger.With(slog.String("component", "vendor_dashboard"))

	return &Coordinator{
		deps: deps,
		opts: opts,
		resolver: NewResolver(
			deps.Users, deps.Vendors, deps.VendorIDs,
			opts.VendorLookupAttempts, opts.VendorLookupDelay, logger,
		),
		cache:     NewCache(opts.CacheTTL, opts.Now),
		logger:    logger,
		ctx:       ctx,
		cancel:    cancel,
		state:     StateUninitialized,
		loading:   make(map[entity.Slice]bool, len(entity.AllSlices)),
		sliceErrs: make(map[entity.Slice]*DashboardError, len(entity.AllSlices)),
		watchers:  make(map[uint64]chan Snapshot),
	}
}

// SetUser switches the coordinator to another user. All state from the previous
// user is discarded and its subscriptions are closed.
func (c *Coordinator) SetUser(userID uuid.UUID) {
	c.mu.Lock()
	if c.closed || c.userID == userID {
		c.mu.Unlock()

		return
	}

	subs := c.resetLocked()
	c.userID = userID
	c.notifyLocked()
	c.mu.Unlock()

	unsubscribeAll(subs)
}

// UserID returns the current user.
func (c *Coordinator) UserID() uuid.UUID {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.userID
}

// Refresh resolves the vendor if needed and loads the given slices, or all of
// them when none are named. Unforced loads are served from valid cache cells.
// A forced refresh also looks again for a vendor profile that was missing.
// Failures are recorded in the returned snapshot, never returned.
func (c *Coordinator) Refresh(ctx context.Context, force bool, only ...entity.Slice) Snapshot {
	targets := normalizeSlices(only)

	bound, release := c.bind(ctx)
	defer release()

	gen, vendorID, ok := c.ensureVendor(bound, force)
	if ok {
		c.loadSlices(bound, gen, vendorID, force, targets)
	}

	return c.Snapshot()
}

// Snapshot returns a copy of the current state.
func (c *Coordinator) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.snapshotLocked()
}

// Watch returns a channel that always holds the latest snapshot. Updates
// coalesce when the reader is slow. The returned func stops the watch.
func (c *Coordinator) Watch() (<-chan Snapshot, func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ch := make(chan Snapshot, 1)
	if c.closed {
		close(ch)

		return ch, func() {}
	}

	id := c.nextWatcher
	c.nextWatcher++
	ch <- c.snapshotLocked()
	c.watchers[id] = ch

	return ch, func() {
		c.mu.Lock()
		defer c.mu.Unlock()

		if w, ok := c.watchers[id]; ok {
			delete(c.watchers, id)
			close(w)
		}
	}
}

// Close cancels in-flight work, closes subscriptions and watchers and waits
// for background refreshes to stop.
func (c *Coordinator) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()

		return
	}

	c.closed = true
	c.generation++
	subs := c.subs
	c.subs = nil
	if c.onboarding != nil {
		subs = append(subs, c.onboarding)
		c.onboarding = nil
	}
	for id, w := range c.watchers {
		delete(c.watchers, id)
		close(w)
	}
	c.mu.Unlock()

	c.cancel()
	unsubscribeAll(subs)
	c.bg.Wait()
}

// bind derives a context that ends with either ctx or the coordinator.
func (c *Coordinator) bind(ctx context.Context) (context.Context, context.CancelFunc) {
	bound, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(c.ctx, cancel)

	return bound, func() {
		stop()
		cancel()
	}
}

// ensureVendor resolves the vendor unless an earlier lookup settled it. A
// forced call repeats the lookup for a vendor still awaiting a profile.
func (c *Coordinator) ensureVendor(ctx context.Context, force bool) (uint64, uuid.UUID, bool) {
	for {
		c.mu.Lock()
		if c.closed || c.userID == uuid.Nil {
			c.mu.Unlock()

			return 0, uuid.Nil, false
		}

		recheck := force && c.awaitingProfile
		if c.vendorLookupCompleted && !c.lookupFailed && !recheck {
			gen, vendorID := c.generation, c.vendorID
			c.mu.Unlock()

			return gen, vendorID, vendorID != uuid.Nil
		}

		if wait := c.resolving; wait != nil {
			c.mu.Unlock()
			select {
			case <-wait:
				// The lookup we waited on is as fresh as our own would be.
				force = false

				continue
			case <-ctx.Done():
				return 0, uuid.Nil, false
			}
		}

		gen, userID := c.generation, c.userID
		done := make(chan struct{})
		c.resolving = done
		c.state = StateResolvingVendorID
		c.notifyLocked()
		c.mu.Unlock()

		outcome := c.resolver.Resolve(ctx, userID)

		c.mu.Lock()
		if c.resolving == done {
			c.resolving = nil
		}
		close(done)

		if gen != c.generation || c.closed {
			c.mu.Unlock()

			return 0, uuid.Nil, false
		}

		c.applyOutcomeLocked(outcome)
		c.notifyLocked()
		var onboarding service.Subscription
		if outcome.Kind == OutcomeFound {
			onboarding, c.onboarding = c.onboarding, nil
		}
		c.mu.Unlock()

		switch {
		case outcome.Kind == OutcomeNotApplicable && outcome.AwaitingProfile:
			c.watchOnboarding(gen, userID)

			return 0, uuid.Nil, false
		case outcome.Kind != OutcomeFound:
			return 0, uuid.Nil, false
		}

		if onboarding != nil {
			onboarding.Unsubscribe()
		}
		c.subscribe(gen, userID, outcome.VendorID)

		return gen, outcome.VendorID, true
	}
}

func (c *Coordinator) applyOutcomeLocked(outcome Outcome) {
	c.vendorLookupCompleted = true
	c.lookupFailed = false
	c.awaitingProfile = outcome.Kind == OutcomeNotApplicable && outcome.AwaitingProfile

	switch outcome.Kind {
	case OutcomeFound:
		c.vendorID = outcome.VendorID
		c.state = StateVendorFound
		c.notice = ""
		if c.lastErr != nil && c.lastErr.Operation == opResolveVendorID {
			c.lastErr = nil
		}
	case OutcomeNotApplicable:
		c.vendorID = uuid.Nil
		c.state = StateNoVendor
		c.notice = NoVendorNotice
	default:
		c.lookupFailed = true
		c.state = StateError
		c.lastErr = Classify(opResolveVendorID, outcome.Err)
	}
}

func (c *Coordinator) loadSlices(ctx context.Context, gen uint64, vendorID uuid.UUID, force bool, targets []entity.Slice) {
	g, gctx := errgroup.WithContext(ctx)
	for _, slice := range targets {
		g.Go(func() error {
			c.loadSlice(gctx, gen, vendorID, slice, force)

			return nil
		})
	}
	_ = g.Wait()
}

func (c *Coordinator) loadSlice(ctx context.Context, gen uint64, vendorID uuid.UUID, slice entity.Slice, force bool) {
	c.mu.Lock()
	if gen != c.generation || c.closed {
		c.mu.Unlock()

		return
	}

	if !force {
		if value, ok := c.cache.Get(slice); ok && !isDefaultValue(slice, value) {
			c.applyValueLocked(slice, value)
			c.notifyLocked()
			c.mu.Unlock()

			return
		}
	}

	c.loading[slice] = true
	if c.lastErr != nil && c.lastErr == c.sliceErrs[slice] {
		c.lastErr = nil
	}
	c.recomputeStateLocked()
	c.notifyLocked()
	c.mu.Unlock()

	value, err := c.fetchSlice(ctx, slice, vendorID)

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation || c.closed {
		return
	}

	c.loading[slice] = false
	if err != nil {
		dErr := Classify(sliceOperations[slice], err)
		c.sliceErrs[slice] = dErr
		c.lastErr = dErr
		c.logger.Warn("Dashboard slice failed",
			slog.String("slice", string(slice)),
			slog.String("vendor_id", vendorID.String()),
			slog.String("error_type", string(dErr.Type)),
			slog.Any("error", err),
		)
	} else {
		c.applyValueLocked(slice, value)
		c.cache.Put(slice, value)
		delete(c.sliceErrs, slice)
	}

	c.recomputeStateLocked()
	c.notifyLocked()
}

func (c *Coordinator) fetchSlice(ctx context.Context, slice entity.Slice, vendorID uuid.UUID) (any, error) {
	switch slice {
	case entity.SliceStats:
		return c.fetchStats(ctx, vendorID)
	case entity.SliceInquiries:
		return c.fetchRecentInquiries(ctx, vendorID)
	case entity.SliceUpcomingEvents:
		return c.fetchUpcomingEvents(ctx, vendorID)
	case entity.SliceProfileCompletion:
		return c.fetchProfileCompletion(ctx, vendorID)
	case entity.SliceMonthlyGrowth:
		return c.fetchMonthlyGrowth(ctx, vendorID)
	default:
		return nil, errors.Errorf("unknown dashboard slice %q", slice)
	}
}

func (c *Coordinator) fetchStats(ctx context.Context, vendorID uuid.UUID) (*entity.VendorStats, error) {
	counts, err := query(ctx, c, c.opts.QueryAttempts, func(ctx context.Context) (entity.InquiryCounts, error) {
		return c.deps.Inquiries.CountByVendor(ctx, vendorID)
	})
	if err != nil {
		return nil, err
	}

	samples, err := query(ctx, c, c.opts.QueryAttempts, func(ctx context.Context) ([]entity.ResponseSample, error) {
		return c.deps.Inquiries.ListResponseTimes(ctx, vendorID)
	})
	if err != nil {
		return nil, err
	}

	_, monthStart, nextMonth := MonthBounds(c.opts.Now(), c.opts.Location)
	views, err := query(ctx, c, c.opts.QueryAttempts, func(ctx context.Context) (int, error) {
		return c.deps.Analytics.SumProfileViews(ctx, vendorID, monthStart, nextMonth)
	})
	if err != nil {
		return nil, err
	}

	businessName := entity.DefaultBusinessName
	profile, err := c.deps.Vendors.FindByID(ctx, vendorID)
	if err != nil {
		c.logger.Warn("Could not fetch business name", slog.String("vendor_id", vendorID.String()), slog.Any("error", err))
	} else {
		businessName = profile.DisplayName()
	}

	return &entity.VendorStats{
		TotalInquiries:     counts.Total,
		PendingInquiries:   counts.New,
		TotalBookings:      counts.Booked,
		RespondedInquiries: counts.Responded,
		ProfileViews:       views,
		ResponseRate:       ResponseRate(counts),
		AvgResponseTime:    FormatAverageResponseTime(samples),
		BusinessName:       businessName,
	}, nil
}

func (c *Coordinator) fetchRecentInquiries(ctx context.Context, vendorID uuid.UUID) ([]entity.RecentInquiry, error) {
	rows, err := query(ctx, c, c.opts.QueryAttempts, func(ctx context.Context) ([]*entity.Inquiry, error) {
		return c.deps.Inquiries.ListRecent(ctx, vendorID, recentInquiriesLimit)
	})
	if err != nil {
		return nil, err
	}

	out := make([]entity.RecentInquiry, 0, len(rows))
	for _, row := range rows {
		out = append(out, ToRecentInquiry(row))
	}

	return out, nil
}

func (c *Coordinator) fetchUpcomingEvents(ctx context.Context, vendorID uuid.UUID) ([]entity.UpcomingEvent, error) {
	today := StartOfDay(c.opts.Now(), c.opts.Location)
	rows, err := query(ctx, c, c.opts.QueryAttempts, func(ctx context.Context) ([]*entity.Inquiry, error) {
		return c.deps.Inquiries.ListUpcomingBooked(ctx, vendorID, today, upcomingEventsLimit)
	})
	if err != nil {
		return nil, err
	}

	out := make([]entity.UpcomingEvent, 0, len(rows))
	for _, row := range rows {
		out = append(out, ToUpcomingEvent(row))
	}

	return out, nil
}

func (c *Coordinator) fetchProfileCompletion(ctx context.Context, vendorID uuid.UUID) (int, error) {
	profile, err := query(ctx, c, c.opts.SecondaryQueryAttempts, func(ctx context.Context) (*entity.VendorProfile, error) {
		return c.deps.Vendors.FindByID(ctx, vendorID)
	})
	if err != nil {
		if errors.Is(err, repository.ErrVendorProfileNotFound) {
			return 0, nil
		}

		return 0, err
	}

	return ProfileCompletion(profile), nil
}

func (c *Coordinator) fetchMonthlyGrowth(ctx context.Context, vendorID uuid.UUID) (entity.MonthlyGrowth, error) {
	lastMonth, thisMonth, nextMonth := MonthBounds(c.opts.Now(), c.opts.Location)

	current, err := query(ctx, c, c.opts.SecondaryQueryAttempts, func(ctx context.Context) (int, error) {
		return c.deps.Analytics.SumProfileViews(ctx, vendorID, thisMonth, nextMonth)
	})
	if err != nil {
		return entity.MonthlyGrowth{}, err
	}

	previous, err := query(ctx, c, c.opts.SecondaryQueryAttempts, func(ctx context.Context) (int, error) {
		return c.deps.Analytics.SumProfileViews(ctx, vendorID, lastMonth, thisMonth)
	})
	if err != nil {
		return entity.MonthlyGrowth{}, err
	}

	return ComputeMonthlyGrowth(current, previous), nil
}

func query[T any](ctx context.Context, c *Coordinator, attempts int, op func(ctx context.Context) (T, error)) (T, error) {
	return retry.Do(ctx, retry.Policy{
		MaxAttempts: attempts,
		BaseDelay:   c.opts.QueryDelay,
		Retryable:   isRetryable,
	}, op)
}

func (c *Coordinator) subscribe(gen uint64, userID, vendorID uuid.UUID) {
	if c.deps.Feed == nil {
		return
	}

	vendor := vendorID.String()
	specs := []subscriptionSpec{
		{
			filter: entity.ChangeFilter{
				Table:  entity.TableVendorInquiries,
				Equals: map[string]string{"vendor_id": vendor},
			},
			slices: []entity.Slice{entity.SliceStats, entity.SliceInquiries},
		},
		{
			filter: entity.ChangeFilter{
				Table:  entity.TableVendorInquiries,
				Equals: map[string]string{"vendor_id": vendor, "status": string(entity.InquiryStatusBooked)},
			},
			slices: []entity.Slice{entity.SliceStats, entity.SliceUpcomingEvents},
		},
		{
			filter: entity.ChangeFilter{
				Table:  entity.TableVendorAnalytics,
				Equals: map[string]string{"vendor_id": vendor},
			},
			slices: []entity.Slice{entity.SliceStats, entity.SliceMonthlyGrowth},
		},
		{
			filter: entity.ChangeFilter{
				Table:  entity.TableVendorProfiles,
				Equals: map[string]string{"user_id": userID.String()},
			},
			slices: []entity.Slice{entity.SliceProfileCompletion},
		},
	}

	subs := make([]service.Subscription, 0, len(specs))
	for _, spec := range specs {
		sub, err := c.deps.Feed.Subscribe(c.ctx, spec.filter, c.changeHandler(gen, spec.slices))
		if err != nil {
			c.logger.Warn("Failed to subscribe to change feed",
				slog.String("table", spec.filter.Table),
				slog.String("vendor_id", vendor),
				slog.Any("error", err),
			)

			continue
		}
		subs = append(subs, sub)
	}

	c.mu.Lock()
	if gen != c.generation || c.closed {
		c.mu.Unlock()
		unsubscribeAll(subs)

		return
	}
	c.subs = append(c.subs, subs...)
	c.mu.Unlock()
}

// watchOnboarding subscribes to the user's vendor profile row so that the
// profile created by onboarding resolves the vendor without a new session.
func (c *Coordinator) watchOnboarding(gen uint64, userID uuid.UUID) {
	if c.deps.Feed == nil {
		return
	}

	c.mu.Lock()
	if gen != c.generation || c.closed || c.onboarding != nil {
		c.mu.Unlock()

		return
	}
	c.mu.Unlock()

	filter := entity.ChangeFilter{
		Table:  entity.TableVendorProfiles,
		Equals: map[string]string{"user_id": userID.String()},
	}
	sub, err := c.deps.Feed.Subscribe(c.ctx, filter, c.onboardingHandler(gen))
	if err != nil {
		c.logger.Warn("Failed to watch for vendor profile",
			slog.String("user_id", userID.String()),
			slog.Any("error", err),
		)

		return
	}

	c.mu.Lock()
	if gen != c.generation || c.closed || c.onboarding != nil || !c.awaitingProfile {
		c.mu.Unlock()
		sub.Unsubscribe()

		return
	}
	c.onboarding = sub
	c.mu.Unlock()
}

func (c *Coordinator) onboardingHandler(gen uint64) service.ChangeHandler {
	return func(_ context.Context, event entity.ChangeEvent) {
		if event.Kind == entity.ChangeDelete {
			return
		}

		c.mu.Lock()
		if gen != c.generation || c.closed || !c.awaitingProfile {
			c.mu.Unlock()

			return
		}
		c.bg.Add(1)
		c.mu.Unlock()

		c.logger.Debug("Vendor profile created, resolving vendor", slog.String("kind", string(event.Kind)))

		go func() {
			defer c.bg.Done()
			c.Refresh(c.ctx, true)
		}()
	}
}

func (c *Coordinator) changeHandler(gen uint64, targets []entity.Slice) service.ChangeHandler {
	return func(_ context.Context, event entity.ChangeEvent) {
		c.mu.Lock()
		if gen != c.generation || c.closed {
			c.mu.Unlock()

			return
		}
		vendorID := c.vendorID
		c.bg.Add(1)
		c.mu.Unlock()

		c.logger.Debug("Change event received",
			slog.String("table", event.Table),
			slog.String("kind", string(event.Kind)),
			slog.String("vendor_id", vendorID.String()),
		)

		go func() {
			defer c.bg.Done()
			c.loadSlices(c.ctx, gen, vendorID, true, targets)
		}()
	}
}

// resetLocked clears everything tied to the current user and returns the
// subscriptions the caller must close.
func (c *Coordinator) resetLocked() []service.Subscription {
	c.generation++
	subs := c.subs
	c.subs = nil
	if c.onboarding != nil {
		subs = append(subs, c.onboarding)
		c.onboarding = nil
	}

	c.state = StateUninitialized
	c.vendorID = uuid.Nil
	c.vendorLookupCompleted = false
	c.lookupFailed = false
	c.awaitingProfile = false
	c.resolving = nil
	c.notice = ""
	c.stats = nil
	c.inquiries = nil
	c.upcoming = nil
	c.completion = 0
	c.growth = entity.MonthlyGrowth{}
	clear(c.loading)
	clear(c.sliceErrs)
	c.lastErr = nil
	c.cache.Clear()

	return subs
}

func (c *Coordinator) applyValueLocked(slice entity.Slice, value any) {
	switch slice {
	case entity.SliceStats:
		c.stats, _ = value.(*entity.VendorStats)
	case entity.SliceInquiries:
		c.inquiries, _ = value.([]entity.RecentInquiry)
	case entity.SliceUpcomingEvents:
		c.upcoming, _ = value.([]entity.UpcomingEvent)
	case entity.SliceProfileCompletion:
		c.completion, _ = value.(int)
	case entity.SliceMonthlyGrowth:
		c.growth, _ = value.(entity.MonthlyGrowth)
	}
}

func (c *Coordinator) recomputeStateLocked() {
	if !c.vendorLookupCompleted || c.vendorID == uuid.Nil {
		return
	}

	switch {
	case slices.ContainsFunc(entity.AllSlices, func(s entity.Slice) bool { return c.loading[s] }):
		c.state = StateLoadingSlices
	case len(c.sliceErrs) > 0:
		c.state = StateError
	default:
		c.state = StateReady
	}
}

func (c *Coordinator) notifyLocked() {
	c.version++
	if len(c.watchers) == 0 {
		return
	}

	snap := c.snapshotLocked()
	for _, w := range c.watchers {
		select {
		case w <- snap:
		default:
			select {
			case <-w:
			default:
			}
			select {
			case w <- snap:
			default:
			}
		}
	}
}

func (c *Coordinator) snapshotLocked() Snapshot {
	snap := Snapshot{
		State:                 c.state,
		UserID:                c.userID,
		VendorLookupCompleted: c.vendorLookupCompleted,
		Loading:               !c.vendorLookupCompleted,
		Notice:                c.notice,
		RecentInquiries:       slices.Clone(c.inquiries),
		UpcomingEvents:        slices.Clone(c.upcoming),
		ProfileCompletion:     c.completion,
		MonthlyGrowth:         c.growth,
		SliceLoading:          make(map[entity.Slice]bool, len(entity.AllSlices)),
		CachedAt:              c.cache.Timestamps(),
		Version:               c.version,
	}

	if c.vendorID != uuid.Nil {
		id := c.vendorID
		snap.VendorID = &id
	}
	if c.stats != nil {
		stats := *c.stats
		snap.Stats = &stats
	}
	if snap.RecentInquiries == nil {
		snap.RecentInquiries = []entity.RecentInquiry{}
	}
	if snap.UpcomingEvents == nil {
		snap.UpcomingEvents = []entity.UpcomingEvent{}
	}
	for _, s := range entity.AllSlices {
		snap.SliceLoading[s] = c.loading[s]
	}
	if len(c.sliceErrs) > 0 {
		snap.SliceErrors = maps.Clone(c.sliceErrs)
	}
	if c.lastErr != nil {
		snap.Error = c.lastErr.Message
		snap.DashboardError = c.lastErr
	}

	return snap
}

func normalizeSlices(only []entity.Slice) []entity.Slice {
	if len(only) == 0 {
		return entity.AllSlices
	}

	out := make([]entity.Slice, 0, len(only))
	for _, s := range only {
		if s.IsValid() && !slices.Contains(out, s) {
			out = append(out, s)
		}
	}

	return out
}

func unsubscribeAll(subs []service.Subscription) {
	for _, sub := range subs {
		sub.Unsubscribe()
	}
}
