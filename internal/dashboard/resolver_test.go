package dashboard

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"eventhub/internal/domain/entity"
	"eventhub/internal/domain/repository"
	"eventhub/internal/errors"
	mockRepo "eventhub/internal/mocks/repository"
	mockService "eventhub/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type resolverFixtures struct {
	users    *mockRepo.MockUserRepository
	vendors  *mockRepo.MockVendorProfileRepository
	cache    *mockService.MockVendorIDCache
	resolver *Resolver
}

func createTestResolver(t *testing.T, delay time.Duration) resolverFixtures {
	users := mockRepo.NewMockUserRepository(t)
	vendors := mockRepo.NewMockVendorProfileRepository(t)
	cache := mockService.NewMockVendorIDCache(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return resolverFixtures{
		users:    users,
		vendors:  vendors,
		cache:    cache,
		resolver: NewResolver(users, vendors, cache, 3, delay, logger),
	}
}

func TestResolver_NonVendorNeverRetries(t *testing.T) {
	fx := createTestResolver(t, time.Second)
	ctx := context.Background()
	userID := uuid.New()

	fx.cache.EXPECT().Get(userID).Return(uuid.Nil, false).Once()
	fx.users.EXPECT().FindByID(mock.Anything, userID).
		Return(&entity.User{ID: userID, Role: entity.RolePlanner}, nil).Once()

	start := time.Now()
	outcome := fx.resolver.Resolve(ctx, userID)

	assert.Equal(t, OutcomeNotApplicable, outcome.Kind)
	assert.False(t, outcome.AwaitingProfile)
	assert.Less(t, time.Since(start), 500*time.Millisecond)
	fx.vendors.AssertNotCalled(t, "FindByUserID", mock.Anything, mock.Anything)
}

func TestResolver_VendorWithoutProfileTriesThreeTimes(t *testing.T) {
	delay := 20 * time.Millisecond
	fx := createTestResolver(t, delay)
	ctx := context.Background()
	userID := uuid.New()

	fx.cache.EXPECT().Get(userID).Return(uuid.Nil, false).Once()
	fx.users.EXPECT().FindByID(mock.Anything, userID).
		Return(&entity.User{ID: userID, Role: entity.RoleVendor}, nil).Once()

	var calls []time.Time
	fx.vendors.EXPECT().FindByUserID(mock.Anything, userID).
		Run(func(context.Context, uuid.UUID) { calls = append(calls, time.Now()) }).
		Return(nil, repository.ErrVendorProfileNotFound).Times(3)

	outcome := fx.resolver.Resolve(ctx, userID)

	assert.Equal(t, OutcomeNotApplicable, outcome.Kind)
	assert.True(t, outcome.AwaitingProfile)
	assert.Len(t, calls, 3)
	for i := 1; i < len(calls); i++ {
		assert.GreaterOrEqual(t, calls[i].Sub(calls[i-1]), delay)
	}
}

func TestResolver_ProfileAppearsOnRetry(t *testing.T) {
	fx := createTestResolver(t, time.Millisecond)
	ctx := context.Background()
	userID, vendorID := uuid.New(), uuid.New()

	fx.cache.EXPECT().Get(userID).Return(uuid.Nil, false).Once()
	fx.users.EXPECT().FindByID(mock.Anything, userID).
		Return(&entity.User{ID: userID, Role: entity.RoleVendor}, nil).Once()
	fx.vendors.EXPECT().FindByUserID(mock.Anything, userID).
		Return(nil, repository.ErrVendorProfileNotFound).Once()
	fx.vendors.EXPECT().FindByUserID(mock.Anything, userID).
		Return(&entity.VendorProfile{ID: vendorID, UserID: userID}, nil).Once()
	fx.cache.EXPECT().Set(userID, vendorID).Return().Once()

	outcome := fx.resolver.Resolve(ctx, userID)

	assert.Equal(t, OutcomeFound, outcome.Kind)
	assert.Equal(t, vendorID, outcome.VendorID)
}

func TestResolver_CacheHitSkipsLookups(t *testing.T) {
	fx := createTestResolver(t, time.Second)
	userID, vendorID := uuid.New(), uuid.New()

	fx.cache.EXPECT().Get(userID).Return(vendorID, true).Once()

	outcome := fx.resolver.Resolve(context.Background(), userID)

	assert.Equal(t, OutcomeFound, outcome.Kind)
	assert.Equal(t, vendorID, outcome.VendorID)
}

func TestResolver_BackendErrorFailsWithoutRetry(t *testing.T) {
	fx := createTestResolver(t, time.Second)
	userID := uuid.New()
	backendErr := errors.New("connection refused")

	fx.cache.EXPECT().Get(userID).Return(uuid.Nil, false).Once()
	fx.users.EXPECT().FindByID(mock.Anything, userID).
		Return(&entity.User{ID: userID, Role: entity.RoleVendor}, nil).Once()
	fx.vendors.EXPECT().FindByUserID(mock.Anything, userID).Return(nil, backendErr).Once()

	outcome := fx.resolver.Resolve(context.Background(), userID)

	assert.Equal(t, OutcomeFailed, outcome.Kind)
	assert.ErrorIs(t, outcome.Err, backendErr)
}

func TestResolver_UnknownUserIsNotApplicable(t *testing.T) {
	fx := createTestResolver(t, time.Second)
	userID := uuid.New()

	fx.cache.EXPECT().Get(userID).Return(uuid.Nil, false).Once()
	fx.users.EXPECT().FindByID(mock.Anything, userID).Return(nil, repository.ErrUserNotFound).Once()

	outcome := fx.resolver.Resolve(context.Background(), userID)

	assert.Equal(t, OutcomeNotApplicable, outcome.Kind)
}
