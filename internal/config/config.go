package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// Server
	Port        string `env:"PORT" envDefault:"8080"`
	CORSOrigins string `env:"CORS_ORIGINS" envDefault:"*"`
	AppEnv      string `env:"APP_ENV" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Session tokens
	JWTSecret        string        `env:"JWT_SECRET"`
	JWTSessionExpiry time.Duration `env:"JWT_SESSION_EXPIRY" envDefault:"24h"`

	// Session registry
	SessionIdleTTL       time.Duration `env:"SESSION_IDLE_TTL" envDefault:"2h"`
	SessionSweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL" envDefault:"10m"`

	// Catalog file; empty uses the embedded catalog
	CatalogPath string `env:"CATALOG_PATH"`

	// Simulated latency before login, onboarding and counsellor replies
	AuthDelay       time.Duration `env:"AUTH_DELAY" envDefault:"0s"`
	OnboardingDelay time.Duration `env:"ONBOARDING_DELAY" envDefault:"0s"`
	ReplyDelay      time.Duration `env:"REPLY_DELAY" envDefault:"0s"`

	// Error log sink: none, postgres or sqlite
	LogSink      string        `env:"LOG_SINK" envDefault:"none"`
	LogRetention time.Duration `env:"LOG_RETENTION" envDefault:"720h"`
	DBHost       string        `env:"DB_HOST" envDefault:"localhost"`
	DBPort       string        `env:"DB_PORT" envDefault:"5432"`
	DBUser       string        `env:"DB_USER" envDefault:"postgres"`
	DBPassword   string        `env:"DB_PASSWORD"`
	DBName       string        `env:"DB_NAME" envDefault:"counsellor"`
	DBSSLMode    string        `env:"DB_SSLMODE" envDefault:"disable"`
	SQLitePath   string        `env:"SQLITE_PATH" envDefault:"counsellor-logs.db"`

	// Error tracking
	SentryDSN string `env:"SENTRY_DSN"`

	// Tracing
	OTelEnabled      bool    `env:"OTEL_ENABLED" envDefault:"false"`
	OTelEndpoint     string  `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OTelInsecure     bool    `env:"OTEL_EXPORTER_OTLP_INSECURE" envDefault:"false"`
	OTelSamplerRatio float64 `env:"OTEL_SAMPLER_RATIO" envDefault:"0.1"`
}

const (
	LogSinkNone     = "none"
	LogSinkPostgres = "postgres"
	LogSinkSQLite   = "sqlite"
)

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	switch cfg.LogSink {
	case LogSinkNone, LogSinkPostgres, LogSinkSQLite:
	default:
		return nil, fmt.Errorf("unknown LOG_SINK %q", cfg.LogSink)
	}
	return &cfg, nil
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}
