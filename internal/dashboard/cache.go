package dashboard

import (
	"sync"
	"time"

	"eventhub/internal/domain/entity"
)

// DefaultCacheTTL is how long a slice value is served without re-querying.
const DefaultCacheTTL = 5 * time.Minute

type cacheCell struct {
	value any
	at    time.Time
}

// Cache keeps one timestamped value per dashboard slice. Cells expire independently.
type Cache struct {
	mu    sync.RWMutex
	ttl   time.Duration
	now   func() time.Time
	cells map[entity.Slice]cacheCell
}

// NewCache creates a cache whose cells are valid for ttl.
func NewCache(ttl time.Duration, now func() time.Time) *Cache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if now == nil {
		now = time.Now
	}

	return &Cache{
		ttl:   ttl,
		now:   now,
		cells: make(map[entity.Slice]cacheCell, len(entity.AllSlices)),
	}
}

// Get returns the slice's value while its cell is still valid.
func (c *Cache) Get(slice entity.Slice) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	cell, ok := c.cells[slice]
	if !ok || c.now().Sub(cell.at) >= c.ttl {
		return nil, false
	}

	return cell.value, true
}

// Put stores value for slice stamped with the current time.
func (c *Cache) Put(slice entity.Slice, value any) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	at := c.now()
	c.cells[slice] = cacheCell{value: value, at: at}

	return at
}

// Timestamp returns when slice was last written.
func (c *Cache) Timestamp(slice entity.Slice) (time.Time, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	cell, ok := c.cells[slice]

	return cell.at, ok
}

// Timestamps returns the write time of every populated cell.
func (c *Cache) Timestamps() map[entity.Slice]time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make(map[entity.Slice]time.Time, len(c.cells))
	for slice, cell := range c.cells {
		out[slice] = cell.at
	}

	return out
}

// Clear drops every cell.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	clear(c.cells)
}

// isDefaultValue reports whether a cached value is the slice's empty value, which
// never short-circuits a fetch.
func isDefaultValue(slice entity.Slice, value any) bool {
	switch v := value.(type) {
	case *entity.VendorStats:
		return v == nil
	case []entity.RecentInquiry:
		return len(v) == 0
	case []entity.UpcomingEvent:
		return len(v) == 0
	case int:
		return slice != entity.SliceProfileCompletion || v <= 0
	case entity.MonthlyGrowth:
		return v.Percent == 0
	default:
		return true
	}
}
