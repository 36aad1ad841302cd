package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the portal.
type Config struct {
	App     AppConfig
	Session SessionConfig
	Catalog CatalogConfig
	Redis   RedisConfig
	Logger  LoggerConfig
	Client  ClientConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// SessionConfig controls token issuance and session storage.
type SessionConfig struct {
	StoreKind  string
	FileDir    string
	TokenTTL   time.Duration
	IssueDelay time.Duration
}

// CatalogConfig holds the simulated catalog latencies.
type CatalogConfig struct {
	ListDelay   time.Duration
	DetailDelay time.Duration
}

// RedisConfig holds Redis connection values for the redis-backed session store.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// ClientConfig configures the terminal browser.
type ClientConfig struct {
	APIBaseURL string
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "videogames-portal"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Session: SessionConfig{
			StoreKind:  getEnv("SESSION_STORE", "file"),
			FileDir:    getEnv("SESSION_FILE_DIR", "."),
			TokenTTL:   time.Duration(getEnvAsInt("SESSION_TOKEN_TTL_HOURS", 24)) * time.Hour,
			IssueDelay: time.Duration(getEnvAsInt("SESSION_ISSUE_DELAY_MS", 1000)) * time.Millisecond,
		},
		Catalog: CatalogConfig{
			ListDelay:   time.Duration(getEnvAsInt("CATALOG_LIST_DELAY_MS", 800)) * time.Millisecond,
			DetailDelay: time.Duration(getEnvAsInt("CATALOG_DETAIL_DELAY_MS", 600)) * time.Millisecond,
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Client: ClientConfig{
			APIBaseURL: getEnv("PORTAL_API_URL", ""),
		},
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}
