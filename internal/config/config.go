package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	Identity  IdentityConfig  `yaml:"identity"`
	Sync      SyncConfig      `yaml:"sync"`
	Units     UnitsConfig     `yaml:"units"`
	Notes     NotesConfig     `yaml:"notes"`
	Dashboard DashboardConfig `yaml:"dashboard"`
	Redis     RedisConfig     `yaml:"redis"`
}

// RedisConfig holds the optional Redis connection used to coordinate
// scheduled sync passes across instances. An empty URL disables it.
type RedisConfig struct {
	URL         string        `yaml:"url"          env:"REDIS_URL"`
	DialTimeout time.Duration `yaml:"dial_timeout" env:"REDIS_DIAL_TIMEOUT" env-default:"5s"`
}

// Enabled reports whether a Redis URL is configured.
func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.URL) != ""
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-User-ID,X-User-Name,X-Request-ID"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`

	// SyncTriggerPerMinute limits manual sync triggers per caller.
	SyncTriggerPerMinute int `yaml:"sync_trigger_per_minute" env:"SERVER_SYNC_TRIGGER_PER_MINUTE" env-default:"6"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// IdentityConfig names the headers an upstream gateway uses to pass the
// authenticated user.
type IdentityConfig struct {
	UserIDHeader   string `yaml:"user_id_header"   env:"IDENTITY_USER_ID_HEADER"   env-default:"X-User-ID"`
	UserNameHeader string `yaml:"user_name_header" env:"IDENTITY_USER_NAME_HEADER" env-default:"X-User-Name"`
}

// SyncConfig holds smart pin synchronizer settings.
type SyncConfig struct {
	Enabled  bool          `yaml:"enabled"  env:"SYNC_ENABLED"  env-default:"true"`
	Schedule string        `yaml:"schedule" env:"SYNC_SCHEDULE" env-default:"@every 15m"`
	Timeout  time.Duration `yaml:"timeout"  env:"SYNC_TIMEOUT"  env-default:"2m"`

	BillDueSoonDays   int `yaml:"bill_due_soon_days"   env:"SYNC_BILL_DUE_SOON_DAYS"   env-default:"7"`
	BillSentGraceDays int `yaml:"bill_sent_grace_days" env:"SYNC_BILL_SENT_GRACE_DAYS" env-default:"3"`
	TicketDueSoonDays int `yaml:"ticket_due_soon_days" env:"SYNC_TICKET_DUE_SOON_DAYS" env-default:"3"`

	MessageWindowDays int    `yaml:"message_window_days" env:"SYNC_MESSAGE_WINDOW_DAYS" env-default:"7"`
	PackageWindowDays int    `yaml:"package_window_days" env:"SYNC_PACKAGE_WINDOW_DAYS" env-default:"14"`
	MessageFetchLimit int    `yaml:"message_fetch_limit" env:"SYNC_MESSAGE_FETCH_LIMIT" env-default:"500"`
	MessageSource     string `yaml:"message_source"      env:"SYNC_MESSAGE_SOURCE"      env-default:"buildinglink"`

	// ClassificationCacheTTL memoizes message classifications; 0 disables.
	ClassificationCacheTTL time.Duration `yaml:"classification_cache_ttl" env:"SYNC_CLASSIFICATION_CACHE_TTL" env-default:"1h"`

	// LockTTL bounds how long one instance holds the cluster-wide sync lock.
	LockTTL time.Duration `yaml:"lock_ttl" env:"SYNC_LOCK_TTL" env-default:"5m"`
}

// MessageWindow returns MessageWindowDays as a duration.
func (s SyncConfig) MessageWindow() time.Duration {
	return days(s.MessageWindowDays)
}

// PackageWindow returns PackageWindowDays as a duration.
func (s SyncConfig) PackageWindow() time.Duration {
	return days(s.PackageWindowDays)
}

func days(n int) time.Duration {
	return time.Duration(n) * 24 * time.Hour
}

// UnitsConfig holds the two residence unit tokens recognised in messages.
type UnitsConfig struct {
	Primary   string `yaml:"primary"   env:"UNITS_PRIMARY"   env-required:"true"`
	Secondary string `yaml:"secondary" env:"UNITS_SECONDARY" env-required:"true"`
}

// NotesConfig holds pin note settings.
type NotesConfig struct {
	MaxLength int `yaml:"max_length" env:"NOTES_MAX_LENGTH" env-default:"2000"`
}

// DashboardConfig holds the day thresholds of the pinned dashboard tiers.
type DashboardConfig struct {
	UrgentDays   int `yaml:"urgent_days"   env:"DASHBOARD_URGENT_DAYS"   env-default:"3"`
	UpcomingDays int `yaml:"upcoming_days" env:"DASHBOARD_UPCOMING_DAYS" env-default:"7"`
}

// AllowedOriginList returns the configured origins, trimmed, empty entries dropped.
func (c CORSConfig) AllowedOriginList() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
