package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
env:
  env: develop
  serviceName: eventhub
http:
  port: 8080
secretKey:
  access: access-secret
  refresh: refresh-secret
dashboard:
  cacheTTL: 2m
  timezone: Asia/Taipei
pubsub:
  provider: nats
  nats:
    url: nats://localhost:4222
`

func TestLoadWithEnv_OverridesFromEnvironment(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(sampleYAML), 0o600))
	t.Chdir(dir)
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DASHBOARD_CACHETTL", "90s")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "eventhub", cfg.Env.ServiceName)
	require.NotNil(t, cfg.Dashboard)
	assert.Equal(t, 90*time.Second, cfg.Dashboard.CacheTTL)
	assert.Equal(t, "nats://localhost:4222", cfg.PubSub.NATS.URL)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		PubSub: &PubSubConfig{NATS: &NATSConfig{URL: "nats://x"}},
	}
	cfg.applyDefaults()

	assert.Equal(t, 5*time.Minute, cfg.Dashboard.CacheTTL)
	assert.Equal(t, 3, cfg.Dashboard.VendorLookupAttempts)
	assert.Equal(t, time.Second, cfg.Dashboard.VendorLookupDelay)
	assert.Equal(t, 3, cfg.Dashboard.QueryAttempts)
	assert.Equal(t, 2, cfg.Dashboard.SecondaryQueryAttempts)
	assert.Equal(t, 10*time.Minute, cfg.Dashboard.SessionIdleTimeout)
	assert.Equal(t, "memory", cfg.PubSub.Provider)
	assert.Equal(t, defaultPubSubSubject, cfg.PubSub.NATS.Subject)
	assert.Equal(t, "mem://", cfg.Storage.BucketURL)
	assert.Equal(t, int64(defaultMaxUploadSize), cfg.Storage.MaxUploadSize)
	assert.Equal(t, 15*time.Minute, cfg.Token.AccessTTL)
	assert.Equal(t, defaultSlowQueryThreshold, cfg.Database.SlowQueryThreshold)
	assert.Equal(t, time.UTC, cfg.Dashboard.Location())
}

func TestDashboardConfig_LocationFallsBackToUTC(t *testing.T) {
	t.Parallel()

	d := &DashboardConfig{Timezone: "Not/AZone"}
	assert.Equal(t, time.UTC, d.Location())
}

func TestConfig_OriginHosts(t *testing.T) {
	cfg := &Config{}
	cfg.HTTP.AllowedOrigins = []string{"https://app.example.com", " ", "http://localhost:3000", "*.example.org"}

	assert.Equal(t, []string{"app.example.com", "localhost:3000", "*.example.org"}, cfg.OriginHosts())
	assert.Empty(t, (&Config{}).OriginHosts())
}
