package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

const (
	DriverMemory = "memory"
	DriverMongo  = "mongo"
)

type Config struct {
	Port          string `env:"PORT,           default=5000"`
	Env           string `env:"ENV,            default=development"`
	LogLevel      string `env:"LOG_LEVEL,      default=info"`
	StorageDriver string `env:"STORAGE_DRIVER, default=memory"`
	SeedCatalog   bool   `env:"SEED_CATALOG,   default=true"`

	Admin    AdminConfig
	Currency CurrencyConfig
	Mongo    MongoConfig
	Redis    RedisConfig
}

// AdminConfig holds the single admin credential pair and token settings.
// An empty JWTSecret keeps the fixed shared-secret token.
type AdminConfig struct {
	Username  string        `env:"ADMIN_USERNAME,   default=admin"`
	Password  string        `env:"ADMIN_PASSWORD,   default=admin123"`
	Token     string        `env:"ADMIN_TOKEN,      default=admin-token"`
	JWTSecret string        `env:"ADMIN_JWT_SECRET"`
	TokenTTL  time.Duration `env:"ADMIN_TOKEN_TTL,  default=24h"`
}

type CurrencyConfig struct {
	USDToKES float64 `env:"USD_TO_KES, default=150"`
}

type MongoConfig struct {
	URI      string        `env:"MONGO_URI,     default=mongodb://localhost:27017"`
	Database string        `env:"MONGO_DB,      default=storefront"`
	Timeout  time.Duration `env:"MONGO_TIMEOUT, default=10s"`
}

// RedisConfig enables Idempotency-Key support when Addr is set.
type RedisConfig struct {
	Addr           string        `env:"REDIS_ADDR"`
	Password       string        `env:"REDIS_PASSWORD"`
	DB             int           `env:"REDIS_DB,        default=0"`
	Timeout        time.Duration `env:"REDIS_TIMEOUT,   default=5s"`
	IdempotencyTTL time.Duration `env:"IDEMPOTENCY_TTL, default=24h"`
}

// IsDevelopment reports whether human-friendly logging should be used.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	cfg, err := LoadWith(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// LoadWith reads configuration from the given lookuper and validates it.
func LoadWith(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.StorageDriver {
	case DriverMemory, DriverMongo:
	default:
		return fmt.Errorf("STORAGE_DRIVER must be %q or %q, got %q", DriverMemory, DriverMongo, c.StorageDriver)
	}
	if c.Admin.Username == "" || c.Admin.Password == "" {
		return fmt.Errorf("ADMIN_USERNAME and ADMIN_PASSWORD must be set")
	}
	if c.Admin.JWTSecret == "" && c.Admin.Token == "" {
		return fmt.Errorf("one of ADMIN_TOKEN or ADMIN_JWT_SECRET must be set")
	}
	if c.Currency.USDToKES <= 0 {
		return fmt.Errorf("USD_TO_KES must be positive")
	}
	return nil
}
