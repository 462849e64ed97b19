package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

var Empty = new(Config)

// Catalog cache backends.
const (
	CacheMemory = "memory"
	CacheRedis  = "redis"
	CacheNone   = "none"
)

type Config struct {
	AppEnv       string `envconfig:"APP_ENV"`
	Port         int    `envconfig:"PORT"`
	SentryDSN    string `envconfig:"SENTRY_DSN"`
	AllowOrigins string `envconfig:"ALLOW_ORIGINS"`

	DB struct {
		Driver    string `envconfig:"DB_DRIVER"`
		Name      string `envconfig:"DB_NAME"`
		Host      string `envconfig:"DB_HOST"`
		Port      int    `envconfig:"DB_PORT"`
		User      string `envconfig:"DB_USER"`
		Pass      string `envconfig:"DB_PASS"`
		EnableSSL bool   `envconfig:"ENABLE_SSL"`
	}
	Catalog struct {
		BaseURL   string        `envconfig:"CATALOG_BASE_URL" default:"https://api.sampleapis.com/movies"`
		Timeout   time.Duration `envconfig:"CATALOG_TIMEOUT" default:"10s"`
		CacheTTL  time.Duration `envconfig:"CATALOG_CACHE_TTL" default:"10m"`
		RateLimit float64       `envconfig:"CATALOG_RATE_LIMIT" default:"5"`
		Cache     string        `envconfig:"CATALOG_CACHE" default:"memory"`
	}
	Redis struct {
		Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
		Password string `envconfig:"REDIS_PASSWORD"`
		DB       int    `envconfig:"REDIS_DB"`
	}
}

func LoadConfig() (*Config, error) {
	// load default .env file, ignore the error
	_ = godotenv.Load()

	cfg := new(Config)
	err := envconfig.Process("", cfg)
	if err != nil {
		return nil, fmt.Errorf("load config error: %v", err)
	}

	switch cfg.Catalog.Cache {
	case CacheMemory, CacheRedis, CacheNone:
	default:
		return nil, fmt.Errorf("load config error: unknown CATALOG_CACHE %q", cfg.Catalog.Cache)
	}

	return cfg, nil
}
