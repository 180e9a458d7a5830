package dashboard

import (
	"context"
	"log/slog"
	"time"

	"eventhub/internal/domain/repository"
	"eventhub/internal/domain/service"
	"eventhub/internal/errors"
	"eventhub/internal/retry"

	"github.com/google/uuid"
)

// OutcomeKind tags the result of a vendor-id lookup.
type OutcomeKind int

const (
	// OutcomeFound means the user owns a vendor profile.
	OutcomeFound OutcomeKind = iota + 1
	// OutcomeNotApplicable means the user is not a vendor or has no profile yet.
	OutcomeNotApplicable
	// OutcomeFailed means the lookup could not be completed.
	OutcomeFailed
)

// Outcome is the tagged result of Resolver.Resolve.
type Outcome struct {
	Kind     OutcomeKind
	VendorID uuid.UUID
	Err      error
	// AwaitingProfile marks a vendor whose profile does not exist yet.
	AwaitingProfile bool
}

// Resolver finds the vendor profile id for a user.
type Resolver struct {
	users    repository.UserRepository
	vendors  repository.VendorProfileRepository
	cache    service.VendorIDCache
	attempts int
	delay    time.Duration
	logger   *slog.Logger
}

// NewResolver creates a resolver. cache may be nil.
func NewResolver(
	users repository.UserRepository,
	vendors repository.VendorProfileRepository,
	cache service.VendorIDCache,
	attempts int,
	delay time.Duration,
	logger *slog.Logger,
) *Resolver {
	return &Resolver{
		users:    users,
		vendors:  vendors,
		cache:    cache,
		attempts: attempts,
		delay:    delay,
		logger:   logger,
	}
}

// Resolve looks up the user's role once and, for vendors, the profile with a
// fixed-delay retry while it does not exist yet.
func (r *Resolver) Resolve(ctx context.Context, userID uuid.UUID) Outcome {
	if r.cache != nil {
		if vendorID, ok := r.cache.Get(userID); ok {
			return Outcome{Kind: OutcomeFound, VendorID: vendorID}
		}
	}

	user, err := r.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return Outcome{Kind: OutcomeNotApplicable}
		}
		r.logger.Error("Failed to look up user role", slog.String("user_id", userID.String()), slog.Any("error", err))

		return Outcome{Kind: OutcomeFailed, Err: err}
	}

	if !user.IsVendor() {
		r.logger.Debug("User is not a vendor", slog.String("user_id", userID.String()), slog.String("role", user.Role.String()))

		return Outcome{Kind: OutcomeNotApplicable}
	}

	policy := retry.Policy{
		MaxAttempts: r.attempts,
		BaseDelay:   r.delay,
		Retryable: func(err error) bool {
			return errors.Is(err, repository.ErrVendorProfileNotFound)
		},
		OnRetry: func(attempt int, _ error, delay time.Duration) {
			r.logger.Debug("Vendor profile not found yet, retrying",
				slog.String("user_id", userID.String()),
				slog.Int("attempt", attempt),
				slog.Duration("delay", delay),
			)
		},
	}

	profile, err := retry.Do(ctx, policy, func(ctx context.Context) (uuid.UUID, error) {
		p, err := r.vendors.FindByUserID(ctx, userID)
		if err != nil {
			return uuid.Nil, err
		}

		return p.ID, nil
	})
	switch {
	case err == nil:
		if r.cache != nil {
			r.cache.Set(userID, profile)
		}

		return Outcome{Kind: OutcomeFound, VendorID: profile}
	case errors.Is(err, repository.ErrVendorProfileNotFound):
		r.logger.Info("Vendor profile not found after retries", slog.String("user_id", userID.String()), slog.Int("attempts", r.attempts))

		return Outcome{Kind: OutcomeNotApplicable, AwaitingProfile: true}
	default:
		r.logger.Error("Failed to look up vendor profile", slog.String("user_id", userID.String()), slog.Any("error", err))

		return Outcome{Kind: OutcomeFailed, Err: err}
	}
}
