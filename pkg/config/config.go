package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	Store        StoreConfig
	DB           DBConfig
	Redis        RedisConfig
	Mongo        MongoConfig
	JWT          JWTConfig
	Feed         FeedConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Store.validate(); err != nil {
		return nil, err
	}
	if cfg.Store.UsesSQL() {
		if err := cfg.DB.ensureDSN(); err != nil {
			return nil, err
		}
	}
	if cfg.Store.UsesMongo() && cfg.Mongo.URI == "" {
		return nil, fmt.Errorf("%s is required when %s=%s", EnvMongoURI, EnvStoreBackend, StoreBackendMongo)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string   `envconfig:"SWIPESHOP_APP_ENV" required:"true"`
	Port         string   `envconfig:"SWIPESHOP_APP_PORT" default:"8080"`
	LogLevel     string   `envconfig:"SWIPESHOP_LOG_LEVEL" default:"info"`
	LogWarnStack bool     `envconfig:"SWIPESHOP_LOG_WARN_STACK" default:"false"`
	CORSOrigins  []string `envconfig:"SWIPESHOP_CORS_ORIGINS" default:"http://localhost:3000"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd) || strings.EqualFold(a.Env, "production")
}

// StoreConfig selects where reference lists and the catalog live.
type StoreConfig struct {
	Backend string `envconfig:"SWIPESHOP_STORE_BACKEND" default:"sql"`
}

func (s StoreConfig) normalized() string {
	return strings.ToLower(strings.TrimSpace(s.Backend))
}

func (s StoreConfig) UsesSQL() bool {
	return s.normalized() == StoreBackendSQL
}

func (s StoreConfig) UsesMongo() bool {
	return s.normalized() == StoreBackendMongo
}

func (s StoreConfig) validate() error {
	if s.UsesSQL() || s.UsesMongo() {
		return nil
	}
	return fmt.Errorf("%s must be %q or %q, got %q", EnvStoreBackend, StoreBackendSQL, StoreBackendMongo, s.Backend)
}

type DBConfig struct {
	DSN    string `envconfig:"SWIPESHOP_DB_DSN"`
	Driver string `envconfig:"SWIPESHOP_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"SWIPESHOP_DB_HOST"`
	LegacyPort     int    `envconfig:"SWIPESHOP_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"SWIPESHOP_DB_USER"`
	LegacyPassword string `envconfig:"SWIPESHOP_DB_PASSWORD"`
	LegacyName     string `envconfig:"SWIPESHOP_DB_NAME"`
	LegacySSLMode  string `envconfig:"SWIPESHOP_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"SWIPESHOP_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"SWIPESHOP_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"SWIPESHOP_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"SWIPESHOP_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// RedisConfig is optional; an empty URL disables rate limiting.
type RedisConfig struct {
	URL          string        `envconfig:"SWIPESHOP_REDIS_URL"`
	PoolSize     int           `envconfig:"SWIPESHOP_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"SWIPESHOP_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"SWIPESHOP_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"SWIPESHOP_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"SWIPESHOP_REDIS_WRITE_TIMEOUT" default:"5s"`
}

func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.URL) != ""
}

type MongoConfig struct {
	URI            string        `envconfig:"SWIPESHOP_MONGO_URI"`
	Database       string        `envconfig:"SWIPESHOP_MONGO_DATABASE" default:"swipeshop"`
	ConnectTimeout time.Duration `envconfig:"SWIPESHOP_MONGO_CONNECT_TIMEOUT" default:"10s"`
	MaxPoolSize    uint64        `envconfig:"SWIPESHOP_MONGO_MAX_POOL_SIZE" default:"20"`
}

type JWTConfig struct {
	Secret            string `envconfig:"SWIPESHOP_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"SWIPESHOP_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"SWIPESHOP_JWT_EXPIRATION_MINUTES" default:"60"`
}

func (j JWTConfig) Expiration() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return time.Hour
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

type FeedConfig struct {
	DefaultLoadAmount int           `envconfig:"SWIPESHOP_FEED_DEFAULT_LOAD_AMOUNT" default:"5"`
	RateLimit         int           `envconfig:"SWIPESHOP_FEED_RATE_LIMIT" default:"120"`
	RateLimitWindow   time.Duration `envconfig:"SWIPESHOP_FEED_RATE_LIMIT_WINDOW" default:"1m"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"SWIPESHOP_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
