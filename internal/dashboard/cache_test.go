package dashboard

import (
	"sync"
	"testing"
	"time"

	"eventhub/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(now time.Time) *fakeClock {
	return &fakeClock{now: now}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

func TestCache_Expiry(t *testing.T) {
	t.Parallel()

	clock := newFakeClock(time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC))
	cache := NewCache(5*time.Minute, clock.Now)

	_, ok := cache.Get(entity.SliceStats)
	assert.False(t, ok)

	stats := &entity.VendorStats{TotalInquiries: 3}
	cache.Put(entity.SliceStats, stats)

	clock.Advance(4*time.Minute + 59*time.Second)
	got, ok := cache.Get(entity.SliceStats)
	assert.True(t, ok)
	assert.Same(t, stats, got)

	clock.Advance(time.Second)
	_, ok = cache.Get(entity.SliceStats)
	assert.False(t, ok)
}

func TestCache_CellsAreIndependent(t *testing.T) {
	t.Parallel()

	clock := newFakeClock(time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC))
	cache := NewCache(time.Minute, clock.Now)

	first := cache.Put(entity.SliceStats, &entity.VendorStats{})
	clock.Advance(30 * time.Second)
	second := cache.Put(entity.SliceProfileCompletion, 67)

	stamps := cache.Timestamps()
	assert.Equal(t, first, stamps[entity.SliceStats])
	assert.Equal(t, second, stamps[entity.SliceProfileCompletion])
	assert.NotContains(t, stamps, entity.SliceInquiries)

	clock.Advance(45 * time.Second)
	_, statsValid := cache.Get(entity.SliceStats)
	_, completionValid := cache.Get(entity.SliceProfileCompletion)
	assert.False(t, statsValid)
	assert.True(t, completionValid)

	cache.Clear()
	assert.Empty(t, cache.Timestamps())
}

func TestCache_DefaultTTL(t *testing.T) {
	t.Parallel()

	cache := NewCache(0, nil)
	assert.Equal(t, DefaultCacheTTL, cache.ttl)
}

func TestIsDefaultValue(t *testing.T) {
	t.Parallel()

	assert.True(t, isDefaultValue(entity.SliceStats, (*entity.VendorStats)(nil)))
	assert.False(t, isDefaultValue(entity.SliceStats, &entity.VendorStats{}))

	assert.True(t, isDefaultValue(entity.SliceInquiries, []entity.RecentInquiry{}))
	assert.False(t, isDefaultValue(entity.SliceInquiries, []entity.RecentInquiry{{ClientName: "A"}}))

	assert.True(t, isDefaultValue(entity.SliceUpcomingEvents, []entity.UpcomingEvent(nil)))
	assert.False(t, isDefaultValue(entity.SliceUpcomingEvents, []entity.UpcomingEvent{{ClientName: "A"}}))

	assert.True(t, isDefaultValue(entity.SliceProfileCompletion, 0))
	assert.False(t, isDefaultValue(entity.SliceProfileCompletion, 33))

	assert.True(t, isDefaultValue(entity.SliceMonthlyGrowth, entity.MonthlyGrowth{ThisMonthViews: 10}))
	assert.False(t, isDefaultValue(entity.SliceMonthlyGrowth, entity.MonthlyGrowth{Percent: -5, HasBaseline: true}))

	assert.True(t, isDefaultValue(entity.SliceStats, "unexpected"))
}
