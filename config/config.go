package config

import (
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultMaxUploadSize      = 5 << 20
	defaultSlowQueryThreshold = 200 * time.Millisecond
	defaultPubSubSubject      = "eventhub.changes"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		// AllowedOrigins are the browser origins allowed for CORS and websocket upgrades
		AllowedOrigins []string `json:"allowedOrigins" yaml:"allowedOrigins"`
		Timeouts       struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Migrations controls the embedded goose migrations run at startup
	Migrations *MigrationsConfig `json:"migrations" yaml:"migrations"`

	// Database tunes query logging
	Database *DatabaseConfig `json:"database" yaml:"database"`

	SecretKey struct {
		Access  string `json:"access" yaml:"access"`
		Refresh string `json:"refresh" yaml:"refresh"`
	} `json:"secretKey" yaml:"secretKey"`

	Token *TokenConfig `json:"token" yaml:"token"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Dashboard configuration for the vendor dashboard coordinator
	Dashboard *DashboardConfig `json:"dashboard" yaml:"dashboard"`

	// PubSub configuration for the change feed transport
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Storage configuration for avatar and logo uploads
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// QRCode configuration for vendor share codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

// OriginHosts returns the host part of each allowed origin.
func (c *Config) OriginHosts() []string {
	hosts := make([]string, 0, len(c.HTTP.AllowedOrigins))
	for _, origin := range c.HTTP.AllowedOrigins {
		origin = strings.TrimSpace(origin)
		if origin == "" {
			continue
		}
		if u, err := url.Parse(origin); err == nil && u.Host != "" {
			hosts = append(hosts, u.Host)

			continue
		}
		hosts = append(hosts, origin)
	}

	return hosts
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// MigrationsConfig defines startup migration behaviour
type MigrationsConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
}

// DatabaseConfig defines query logging thresholds
type DatabaseConfig struct {
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
}

// TokenConfig defines JWT lifetimes
type TokenConfig struct {
	AccessTTL  time.Duration `json:"accessTTL" yaml:"accessTTL"`
	RefreshTTL time.Duration `json:"refreshTTL" yaml:"refreshTTL"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost int `json:"bcryptCost" yaml:"bcryptCost"`
}

// DashboardConfig defines caching, retry and session settings of the vendor dashboard
type DashboardConfig struct {
	CacheTTL               time.Duration `json:"cacheTTL" yaml:"cacheTTL"`
	VendorLookupAttempts   int           `json:"vendorLookupAttempts" yaml:"vendorLookupAttempts"`
	VendorLookupDelay      time.Duration `json:"vendorLookupDelay" yaml:"vendorLookupDelay"`
	QueryAttempts          int           `json:"queryAttempts" yaml:"queryAttempts"`
	SecondaryQueryAttempts int           `json:"secondaryQueryAttempts" yaml:"secondaryQueryAttempts"`
	QueryDelay             time.Duration `json:"queryDelay" yaml:"queryDelay"`
	SessionIdleTimeout     time.Duration `json:"sessionIdleTimeout" yaml:"sessionIdleTimeout"`
	VendorCacheTTL         time.Duration `json:"vendorCacheTTL" yaml:"vendorCacheTTL"`
	Timezone               string        `json:"timezone" yaml:"timezone"`
}

// PubSubConfig defines the change feed transport
type PubSubConfig struct {
	// Provider type: "memory", "local", "google", "nats" or "none"
	Provider string `json:"provider" yaml:"provider"`

	// Topic ID for the google provider
	TopicID string `json:"topicId" yaml:"topicId"`

	Local  *LocalPubSubConfig  `json:"local" yaml:"local"`
	Google *GooglePubSubConfig `json:"google" yaml:"google"`
	NATS   *NATSConfig         `json:"nats" yaml:"nats"`
}

// LocalPubSubConfig points the local provider at a push endpoint
type LocalPubSubConfig struct {
	PushEndpoint string `json:"pushEndpoint" yaml:"pushEndpoint"`
}

// GooglePubSubConfig defines Google Pub/Sub publishing and push verification
type GooglePubSubConfig struct {
	ProjectID           string `json:"projectId" yaml:"projectId"`
	Audience            string `json:"audience" yaml:"audience"`
	ServiceAccountEmail string `json:"serviceAccountEmail" yaml:"serviceAccountEmail"`
	CredentialsPath     string `json:"credentialsPath" yaml:"credentialsPath"`
}

// NATSConfig defines the NATS change feed bridge
type NATSConfig struct {
	URL     string `json:"url" yaml:"url"`
	Subject string `json:"subject" yaml:"subject"`
}

// StorageConfig defines the upload bucket
type StorageConfig struct {
	// BucketURL is a gocloud URL such as mem://, file:///var/uploads or gs://bucket
	BucketURL     string `json:"bucketUrl" yaml:"bucketUrl"`
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`
	MaxUploadSize int64  `json:"maxUploadSize" yaml:"maxUploadSize"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	Enabled         bool   `json:"enabled" yaml:"enabled"`
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	ShareBaseURL         string `json:"shareBaseUrl" yaml:"shareBaseUrl"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	cfg.applyDefaults()

	return cfg, nil
}

// applyDefaults fills optional sections so consumers never nil-check them.
func (c *Config) applyDefaults() {
	if c.Migrations == nil {
		c.Migrations = &MigrationsConfig{}
	}

	if c.Database == nil {
		c.Database = &DatabaseConfig{}
	}
	if c.Database.SlowQueryThreshold <= 0 {
		c.Database.SlowQueryThreshold = defaultSlowQueryThreshold
	}

	if c.Token == nil {
		c.Token = &TokenConfig{}
	}
	if c.Token.AccessTTL <= 0 {
		c.Token.AccessTTL = 15 * time.Minute
	}
	if c.Token.RefreshTTL <= 0 {
		c.Token.RefreshTTL = 7 * 24 * time.Hour
	}

	if c.Auth == nil {
		c.Auth = &AuthConfig{}
	}

	if c.Dashboard == nil {
		c.Dashboard = &DashboardConfig{}
	}
	c.Dashboard.applyDefaults()

	if c.PubSub == nil {
		c.PubSub = &PubSubConfig{}
	}
	if c.PubSub.Provider == "" {
		c.PubSub.Provider = "memory"
	}
	if c.PubSub.NATS != nil && c.PubSub.NATS.Subject == "" {
		c.PubSub.NATS.Subject = defaultPubSubSubject
	}

	if c.Storage == nil {
		c.Storage = &StorageConfig{}
	}
	if c.Storage.BucketURL == "" {
		c.Storage.BucketURL = "mem://"
	}
	if c.Storage.MaxUploadSize <= 0 {
		c.Storage.MaxUploadSize = defaultMaxUploadSize
	}

	if c.Firebase == nil {
		c.Firebase = &FirebaseConfig{}
	}

	if c.QRCode == nil {
		c.QRCode = &QRCodeConfig{}
	}
	if c.QRCode.Size <= 0 {
		c.QRCode.Size = 256
	}
}

func (d *DashboardConfig) applyDefaults() {
	if d.CacheTTL <= 0 {
		d.CacheTTL = 5 * time.Minute
	}
	if d.VendorLookupAttempts <= 0 {
		d.VendorLookupAttempts = 3
	}
	if d.VendorLookupDelay <= 0 {
		d.VendorLookupDelay = time.Second
	}
	if d.QueryAttempts <= 0 {
		d.QueryAttempts = 3
	}
	if d.SecondaryQueryAttempts <= 0 {
		d.SecondaryQueryAttempts = 2
	}
	if d.QueryDelay <= 0 {
		d.QueryDelay = time.Second
	}
	if d.SessionIdleTimeout <= 0 {
		d.SessionIdleTimeout = 10 * time.Minute
	}
	if d.VendorCacheTTL <= 0 {
		d.VendorCacheTTL = 30 * time.Minute
	}
	if d.Timezone == "" {
		d.Timezone = "UTC"
	}
}

// Location resolves the configured dashboard time zone, falling back to UTC.
func (d *DashboardConfig) Location() *time.Location {
	loc, err := time.LoadLocation(d.Timezone)
	if err != nil {
		return time.UTC
	}

	return loc
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
