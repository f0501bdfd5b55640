package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	CORS     CORSConfig
	Log      LogConfig
	Snapshot SnapshotConfig
	Metrics  MetricsConfig
	Reports  ReportsConfig
	Media    MediaConfig
	Dispatch DispatchConfig
}

type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type JWTConfig struct {
	Secret     string
	Expiration time.Duration
	Issuer     string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// SnapshotConfig controls persistence of the lifecycle engine state.
type SnapshotConfig struct {
	Key           string
	WriterWorkers int
	WriterRetries int
	RetryDelay    time.Duration
}

// MetricsConfig toggles the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool
}

// ReportsConfig governs invoice and export generation.
type ReportsConfig struct {
	Enabled      bool
	CompanyName  string
	CompanyEmail string
}

// MediaConfig controls on-disk photo storage and signed download links.
type MediaConfig struct {
	Dir           string
	SigningSecret string
	URLTTL        time.Duration
}

// DispatchConfig carries operational defaults for the single-mechanic setup.
type DispatchConfig struct {
	DefaultMechanicID string
	QuoteValidity     time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.Database = DatabaseConfig{
		Host:         v.GetString("DB_HOST"),
		Port:         v.GetInt("DB_PORT"),
		User:         v.GetString("DB_USER"),
		Password:     v.GetString("DB_PASSWORD"),
		Name:         v.GetString("DB_NAME"),
		SSLMode:      v.GetString("DB_SSL_MODE"),
		MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
		MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
	}

	cfg.Redis = RedisConfig{
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.JWT = JWTConfig{
		Secret:     v.GetString("JWT_SECRET"),
		Expiration: parseDuration(v.GetString("JWT_EXPIRATION"), 24*time.Hour),
		Issuer:     v.GetString("JWT_ISSUER"),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Snapshot = SnapshotConfig{
		Key:           v.GetString("SNAPSHOT_KEY"),
		WriterWorkers: v.GetInt("SNAPSHOT_WRITER_WORKERS"),
		WriterRetries: v.GetInt("SNAPSHOT_WRITER_RETRIES"),
		RetryDelay:    parseDuration(v.GetString("SNAPSHOT_WRITER_RETRY_DELAY"), time.Second),
	}

	cfg.Metrics = MetricsConfig{
		Enabled: v.GetBool("ENABLE_METRICS"),
	}

	cfg.Reports = ReportsConfig{
		Enabled:      v.GetBool("ENABLE_REPORTS"),
		CompanyName:  v.GetString("REPORTS_COMPANY_NAME"),
		CompanyEmail: v.GetString("REPORTS_COMPANY_EMAIL"),
	}

	cfg.Media = MediaConfig{
		Dir:           v.GetString("MEDIA_DIR"),
		SigningSecret: v.GetString("MEDIA_SIGNING_SECRET"),
		URLTTL:        parseDuration(v.GetString("MEDIA_URL_TTL"), 24*time.Hour),
	}

	cfg.Dispatch = DispatchConfig{
		DefaultMechanicID: v.GetString("DISPATCH_DEFAULT_MECHANIC_ID"),
		QuoteValidity:     parseDuration(v.GetString("DISPATCH_QUOTE_VALIDITY"), 7*24*time.Hour),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "heinicus_dispatch")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("JWT_SECRET", "dev_secret")
	v.SetDefault("JWT_EXPIRATION", "24h")
	v.SetDefault("JWT_ISSUER", "heinicus-dispatch")

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("SNAPSHOT_KEY", "heinicus-mechanic-storage")
	v.SetDefault("SNAPSHOT_WRITER_WORKERS", 1)
	v.SetDefault("SNAPSHOT_WRITER_RETRIES", 3)
	v.SetDefault("SNAPSHOT_WRITER_RETRY_DELAY", "1s")

	v.SetDefault("ENABLE_METRICS", true)
	v.SetDefault("ENABLE_REPORTS", true)
	v.SetDefault("REPORTS_COMPANY_NAME", "Heinicus Mobile Mechanic")
	v.SetDefault("REPORTS_COMPANY_EMAIL", "billing@heinicus.com")

	v.SetDefault("MEDIA_DIR", "./media")
	v.SetDefault("MEDIA_SIGNING_SECRET", "dev_media_secret")
	v.SetDefault("MEDIA_URL_TTL", "24h")

	v.SetDefault("DISPATCH_DEFAULT_MECHANIC_ID", "mechanic-cody")
	v.SetDefault("DISPATCH_QUOTE_VALIDITY", "168h")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
