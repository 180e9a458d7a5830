// Package cache provides in-process caches backed by ristretto.
package cache

import (
	"time"

	"eventhub/config"
	"eventhub/internal/domain/service"
	"eventhub/internal/errors"

	"github.com/dgraph-io/ristretto/v2"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	defaultVendorCacheTTL = 30 * time.Minute
	vendorCacheMaxEntries = 100_000
)

// VendorIDCache maps user ids to their vendor profile id.
type VendorIDCache struct {
	c   *ristretto.Cache[string, uuid.UUID]
	ttl time.Duration
}

// NewVendorIDCache creates a cache holding up to maxEntries ids for ttl.
func NewVendorIDCache(maxEntries int64, ttl time.Duration) (*VendorIDCache, error) {
	if ttl <= 0 {
		ttl = defaultVendorCacheTTL
	}

	c, err := ristretto.NewCache(&ristretto.Config[string, uuid.UUID]{
		NumCounters: maxEntries * 10,
		MaxCost:     maxEntries,
		BufferItems: 64,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create vendor id cache")
	}

	return &VendorIDCache{c: c, ttl: ttl}, nil
}

// Get returns the cached vendor id for userID.
func (v *VendorIDCache) Get(userID uuid.UUID) (uuid.UUID, bool) {
	return v.c.Get(userID.String())
}

// Set caches vendorID for userID. The write is visible to Get once it returns.
func (v *VendorIDCache) Set(userID, vendorID uuid.UUID) {
	v.c.SetWithTTL(userID.String(), vendorID, 1, v.ttl)
	v.c.Wait()
}

// Invalidate drops the entry for userID.
func (v *VendorIDCache) Invalidate(userID uuid.UUID) {
	v.c.Del(userID.String())
}

// Close releases the cache's background goroutines.
func (v *VendorIDCache) Close() {
	v.c.Close()
}

// Params holds the dependencies for the fx provider.
type Params struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
}

// NewVendorIDCacheFromConfig is the fx provider for the vendor id cache.
func NewVendorIDCacheFromConfig(params Params) (service.VendorIDCache, error) {
	ttl := defaultVendorCacheTTL
	if params.Config.Dashboard != nil && params.Config.Dashboard.VendorCacheTTL > 0 {
		ttl = params.Config.Dashboard.VendorCacheTTL
	}

	vc, err := NewVendorIDCache(vendorCacheMaxEntries, ttl)
	if err != nil {
		return nil, err
	}

	params.Lifecycle.Append(fx.StopHook(vc.Close))

	return vc, nil
}
