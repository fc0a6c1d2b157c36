package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// StoreTimeout bounds every Mongo and Redis call.
	StoreTimeout time.Duration `env:"STORE_TIMEOUT, default=5s"`

	Mongo      MongoConfig
	Redis      RedisConfig
	Session    SessionConfig
	SuperAdmin SuperAdminConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=shs"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

type SessionConfig struct {
	TTL          time.Duration `env:"SESSION_TTL,   default=1440h"`
	BcryptCost   int           `env:"BCRYPT_COST,   default=10"`
	PurgeWorkers int           `env:"PURGE_WORKERS, default=4"`
}

// SuperAdminConfig seeds the initial superadmin. Seeding is skipped when
// Username or Password is empty.
type SuperAdminConfig struct {
	Username    string `env:"SUPERADMIN_USERNAME"`
	Password    string `env:"SUPERADMIN_PASSWORD"`
	DisplayName string `env:"SUPERADMIN_DISPLAY_NAME, default=Super Admin"`
}

// IsProduction reports whether the service runs with ENV=production.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.Session.TTL <= 0 {
		return nil, fmt.Errorf("config: SESSION_TTL must be positive, got %s", cfg.Session.TTL)
	}
	return &cfg, nil
}
