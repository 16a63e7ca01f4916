package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	AppPort   string
	AppEnv    string
	AppBundle string // host application identifier; default bundle for requests
	LogLevel  string

	NotifyBaseURL   string
	NotifyToken     string
	NotifyUserID    string
	NotifyNamespace string
	NotifyTimeout   time.Duration

	JWTSecret string
	JWTExpiry time.Duration

	AllowedOrigins []string // CORS allowed origins of the preview backend
	RateLimitRPS   int
	RateLimitBurst int
	TrustProxy     bool // rate limit by X-Forwarded-For instead of RemoteAddr
	PreviewSeed    bool
}

// Load reads all configuration from environment variables.
func Load() *Config {
	return &Config{
		AppPort:   getEnv("APP_PORT", "3000"),
		AppEnv:    getEnv("APP_ENV", "development"),
		AppBundle: getEnv("APP_BUNDLE", ""),
		LogLevel:  getEnv("LOG_LEVEL", "info"),

		NotifyBaseURL:   getEnv("NOTIFY_BASE_URL", "http://localhost:3000"),
		NotifyToken:     getEnv("NOTIFY_TOKEN", ""),
		NotifyUserID:    getEnv("NOTIFY_USER_ID", ""),
		NotifyNamespace: getEnv("NOTIFY_NAMESPACE", "default"),
		NotifyTimeout:   getEnvDuration("NOTIFY_TIMEOUT", 30*time.Second),

		JWTSecret: getEnv("JWT_SECRET", "dev-secret-change-me"),
		JWTExpiry: time.Duration(getEnvInt("JWT_EXPIRY_HOURS", 24)) * time.Hour,

		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
		RateLimitRPS:   getEnvInt("RATE_LIMIT_RPS", 20),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 40),
		TrustProxy:     getEnvBool("TRUST_PROXY", false),
		PreviewSeed:    getEnvBool("PREVIEW_SEED", true),
	}
}

// IsProduction reports whether APP_ENV is "production".
func (c *Config) IsProduction() bool { return strings.EqualFold(c.AppEnv, "production") }

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

// getEnvDuration accepts Go durations ("15s") or a bare number of seconds.
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second
	}
	return fallback
}
