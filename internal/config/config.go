package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string `env:"DB_HOST"`
	Port               string `env:"DB_PORT" envDefault:"5432"`
	User               string `env:"DB_USER"`
	Password           string `env:"DB_PASSWORD"`
	Name               string `env:"DB_NAME"`
	SSLMode            string `env:"DB_SSLMODE" envDefault:"disable"`
	MaxOpenConns       int    `env:"DB_MAX_OPEN_CONNS" envDefault:"10"`
	MaxIdleConns       int    `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetimeSec int    `env:"DB_CONN_MAX_LIFETIME_SEC" envDefault:"300"`
	AutoMigrate        bool   `env:"DB_AUTO_MIGRATE" envDefault:"true"`
}

// Validate reports missing connection settings.
func (d DatabaseConfig) Validate() error {
	if d.Host == "" || d.Port == "" || d.User == "" || d.Name == "" {
		return fmt.Errorf("invalid database config: host, port, user, and name are required")
	}
	return nil
}

// MinIOConfig holds object storage settings for MinIO.
type MinIOConfig struct {
	Endpoint  string `env:"MINIO_ENDPOINT"`
	AccessKey string `env:"MINIO_ACCESS_KEY"`
	SecretKey string `env:"MINIO_SECRET_KEY"`
	Bucket    string `env:"MINIO_BUCKET" envDefault:"gauzy"`
	UseSSL    bool   `env:"MINIO_USE_SSL" envDefault:"false"`
}

// Enabled reports whether object storage was configured at all.
func (m MinIOConfig) Enabled() bool {
	return m.Endpoint != ""
}

// LogConfig controls the JSON logger.
type LogConfig struct {
	Level    string `env:"LOG_LEVEL" envDefault:"info"`
	TimeZone string `env:"LOG_TIMEZONE" envDefault:"UTC"`
}

// Location resolves TimeZone, falling back to UTC.
func (l LogConfig) Location() *time.Location {
	loc, err := time.LoadLocation(l.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// I18nConfig lists the UI languages served by the API.
type I18nConfig struct {
	DefaultLanguage    string   `env:"DEFAULT_LANGUAGE" envDefault:"en"`
	SupportedLanguages []string `env:"SUPPORTED_LANGUAGES" envDefault:"en,bg" envSeparator:","`
}

// SelectionConfig controls the lifetime of per-session selection stores.
type SelectionConfig struct {
	IdleTTL       time.Duration `env:"SELECTION_IDLE_TTL" envDefault:"30m"`
	SweepInterval time.Duration `env:"SELECTION_SWEEP_INTERVAL" envDefault:"1m"`
}

// TracingConfig mirrors the standard OTEL_* variables.
type TracingConfig struct {
	Disabled    bool    `env:"OTEL_SDK_DISABLED" envDefault:"false"`
	ServiceName string  `env:"OTEL_SERVICE_NAME" envDefault:"gauzy"`
	Protocol    string  `env:"OTEL_EXPORTER_OTLP_PROTOCOL" envDefault:"grpc"`
	Endpoint    string  `env:"OTEL_EXPORTER_OTLP_TRACES_ENDPOINT"`
	Sampler     string  `env:"OTEL_TRACES_SAMPLER" envDefault:"parentbased_traceidratio"`
	SamplerArg  float64 `env:"OTEL_TRACES_SAMPLER_ARG" envDefault:"1.0"`
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost   string `env:"APP_HOST" envDefault:"localhost:8080"`
	Port      string `env:"PORT" envDefault:"8080"`
	Database  DatabaseConfig
	MinIO     MinIOConfig
	Log       LogConfig
	I18n      I18nConfig
	Selection SelectionConfig
	Tracing   TracingConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() (*AppConfig, error) {
	cfg := &AppConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
