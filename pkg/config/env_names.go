package config

// EnvPrefix is intentionally empty: every variable carries the full
// STREETIFY_ prefix in its envconfig tag.
const EnvPrefix = ""

const (
	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

const (
	EnvAppEnv       = "STREETIFY_APP_ENV"
	EnvPort         = "STREETIFY_APP_PORT"
	EnvLogLevel     = "STREETIFY_LOG_LEVEL"
	EnvDBDSN        = "STREETIFY_DB_DSN"
	EnvDBDriver     = "STREETIFY_DB_DRIVER"
	EnvRedisURL     = "STREETIFY_REDIS_URL"
	EnvJWTSecret    = "STREETIFY_JWT_SECRET"
	EnvJWTIssuer    = "STREETIFY_JWT_ISSUER"
	EnvJWTExpMins   = "STREETIFY_JWT_EXPIRATION_MINUTES"
	EnvRefreshTTL   = "STREETIFY_REFRESH_TOKEN_TTL_MINUTES"
	EnvBackendDelay = "STREETIFY_BACKEND_MOCK_DELAY"
	EnvCronInterval = "STREETIFY_CRON_INTERVAL"
)
