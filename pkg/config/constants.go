package config

const EnvPrefix = "SWIPESHOP"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	StoreBackendSQL   = "sql"
	StoreBackendMongo = "mongo"
)

const (
	DBDriverPostgres = "postgres"
	DBDriverSQLite   = "sqlite"
)

const (
	EnvAppEnv       = "SWIPESHOP_APP_ENV"
	EnvPort         = "SWIPESHOP_APP_PORT"
	EnvLogLevel     = "SWIPESHOP_LOG_LEVEL"
	EnvStoreBackend = "SWIPESHOP_STORE_BACKEND"

	EnvDBDSN      = "SWIPESHOP_DB_DSN"
	EnvDBDriver   = "SWIPESHOP_DB_DRIVER"
	EnvDBHost     = "SWIPESHOP_DB_HOST"
	EnvDBUser     = "SWIPESHOP_DB_USER"
	EnvDBName     = "SWIPESHOP_DB_NAME"
	EnvRedisURL   = "SWIPESHOP_REDIS_URL"
	EnvMongoURI   = "SWIPESHOP_MONGO_URI"
	EnvMongoDB    = "SWIPESHOP_MONGO_DATABASE"
	EnvJWTSecret  = "SWIPESHOP_JWT_SECRET"
	EnvJWTIssuer  = "SWIPESHOP_JWT_ISSUER"
	EnvJWTExpMins = "SWIPESHOP_JWT_EXPIRATION_MINUTES"

	EnvFeedDefaultLoadAmount = "SWIPESHOP_FEED_DEFAULT_LOAD_AMOUNT"
	EnvFeedRateLimit         = "SWIPESHOP_FEED_RATE_LIMIT"
	EnvFeedRateLimitWindow   = "SWIPESHOP_FEED_RATE_LIMIT_WINDOW"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
