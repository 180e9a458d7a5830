package cache

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVendorIDCache_SetGetInvalidate(t *testing.T) {
	vc, err := NewVendorIDCache(100, time.Minute)
	require.NoError(t, err)
	t.Cleanup(vc.Close)

	userID, vendorID := uuid.New(), uuid.New()

	_, ok := vc.Get(userID)
	assert.False(t, ok)

	vc.Set(userID, vendorID)
	got, ok := vc.Get(userID)
	require.True(t, ok)
	assert.Equal(t, vendorID, got)

	vc.Invalidate(userID)
	_, ok = vc.Get(userID)
	assert.False(t, ok)
}

func TestVendorIDCache_Expires(t *testing.T) {
	vc, err := NewVendorIDCache(100, 50*time.Millisecond)
	require.NoError(t, err)
	t.Cleanup(vc.Close)

	userID := uuid.New()
	vc.Set(userID, uuid.New())

	assert.Eventually(t, func() bool {
		_, ok := vc.Get(userID)
		return !ok
	}, 3*time.Second, 20*time.Millisecond)
}

func TestVendorIDCache_DefaultTTL(t *testing.T) {
	vc, err := NewVendorIDCache(10, 0)
	require.NoError(t, err)
	t.Cleanup(vc.Close)

	assert.Equal(t, defaultVendorCacheTTL, vc.ttl)
}
