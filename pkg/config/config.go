package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App      AppConfig
	DB       DBConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Backend  BackendConfig
	Cron     CronConfig
	Snapshot SnapshotConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"STREETIFY_APP_ENV" required:"true"`
	Port         string `envconfig:"STREETIFY_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"STREETIFY_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"STREETIFY_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"STREETIFY_DB_DSN" default:"streetify.db"`
	Driver string `envconfig:"STREETIFY_DB_DRIVER" default:"sqlite"`

	MaxOpenConns    int           `envconfig:"STREETIFY_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"STREETIFY_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"STREETIFY_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"STREETIFY_DB_CONN_MAX_IDLE_TIME" default:"10m"`

	AutoMigrate bool `envconfig:"STREETIFY_DB_AUTO_MIGRATE" default:"true"`
}

// UsesSQLite reports whether the archive runs on the embedded driver.
func (db DBConfig) UsesSQLite() bool {
	return strings.EqualFold(db.Driver, "sqlite")
}

type RedisConfig struct {
	URL          string        `envconfig:"STREETIFY_REDIS_URL" required:"true"`
	Address      string        `envconfig:"STREETIFY_REDIS_ADDR"`
	Password     string        `envconfig:"STREETIFY_REDIS_PASSWORD"`
	DB           int           `envconfig:"STREETIFY_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"STREETIFY_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"STREETIFY_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"STREETIFY_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"STREETIFY_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"STREETIFY_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret                 string `envconfig:"STREETIFY_JWT_SECRET" required:"true"`
	Issuer                 string `envconfig:"STREETIFY_JWT_ISSUER" required:"true"`
	ExpirationMinutes      int    `envconfig:"STREETIFY_JWT_EXPIRATION_MINUTES" required:"true"`
	RefreshTokenTTLMinutes int    `envconfig:"STREETIFY_REFRESH_TOKEN_TTL_MINUTES" default:"43200"`
}

// RefreshTokenTTL returns the refresh token TTL configured in minutes.
func (j JWTConfig) RefreshTokenTTL() time.Duration {
	if j.RefreshTokenTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.RefreshTokenTTLMinutes) * time.Minute
}

// BackendConfig tunes the mocked remote backend. Every remote call is a
// stub that sleeps for MockDelay and returns canned sample data.
type BackendConfig struct {
	MockDelay   time.Duration `envconfig:"STREETIFY_BACKEND_MOCK_DELAY" default:"350ms"`
	SampleSeed  int64         `envconfig:"STREETIFY_BACKEND_SAMPLE_SEED" default:"1"`
	FailureRate float64       `envconfig:"STREETIFY_BACKEND_FAILURE_RATE" default:"0"`
}

type CronConfig struct {
	Interval time.Duration `envconfig:"STREETIFY_CRON_INTERVAL" default:"1m"`
	LockTTL  time.Duration `envconfig:"STREETIFY_CRON_LOCK_TTL" default:"5m"`
}

// SnapshotConfig controls persistence of state-store snapshots to Redis.
type SnapshotConfig struct {
	Enabled bool          `envconfig:"STREETIFY_SNAPSHOT_ENABLED" default:"true"`
	TTL     time.Duration `envconfig:"STREETIFY_SNAPSHOT_TTL" default:"168h"`
}
