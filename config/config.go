package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultEmailFrom        = "Episolve <onboarding@resend.dev>"
	DefaultEmailFromWebsite = "Episolve Website <onboarding@resend.dev>"
	DefaultAdminEmailTo     = "contact@episolve.com"
	DefaultSQLitePath       = "episolve.db"
)

type Config struct {
	Port        string
	DBUrl       string // postgres:// for Postgres, anything else is a SQLite path
	Environment string
	LogLevel    string

	RunMigrations bool
	DBTimeout     time.Duration

	// Email (Resend)
	ResendAPIKey     string
	EmailFrom        string // confirmations and welcome mail
	EmailFromWebsite string // admin notifications
	AdminEmailTo     string
	EmailTimeout     time.Duration

	// Redis/Upstash Configuration
	UpstashRedisURL      string
	UpstashRedisPassword string

	// Client IP resolution. Forwarding headers are ignored unless the
	// peer is one of TrustedProxies or TrustedPlatform names an edge header.
	TrustedProxies  []string
	TrustedPlatform string

	// Rate Limiting Configuration
	RateLimitWindowSeconds int
	RateLimitFormThreshold int
}

func LoadConfig() (*Config, error) {
	// .env is a local convenience; absent in deployed environments.
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		DBUrl:       getEnv("DATABASE_URL", DefaultSQLitePath),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		RunMigrations: getEnvBool("RUN_MIGRATIONS", true),
		DBTimeout:     time.Duration(getEnvInt("DB_TIMEOUT_SECONDS", 5)) * time.Second,

		ResendAPIKey:     strings.TrimSpace(getEnv("RESEND_API_KEY", "")),
		EmailFrom:        getEnv("EMAIL_FROM", DefaultEmailFrom),
		EmailFromWebsite: getEnv("EMAIL_FROM_WEBSITE", DefaultEmailFromWebsite),
		AdminEmailTo:     getEnv("ADMIN_EMAIL_TO", DefaultAdminEmailTo),
		EmailTimeout:     time.Duration(getEnvInt("EMAIL_TIMEOUT_SECONDS", 10)) * time.Second,

		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),

		TrustedProxies:  getEnvList("TRUSTED_PROXIES"),
		TrustedPlatform: getEnv("TRUSTED_PLATFORM", ""),

		RateLimitWindowSeconds: getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitFormThreshold: getEnvInt("RATE_LIMIT_FORM_THRESHOLD", 10),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values that would only fail later at runtime.
func (c *Config) Validate() error {
	if p, err := strconv.Atoi(c.Port); err != nil || p <= 0 || p > 65535 {
		return fmt.Errorf("config: PORT %q is not a valid port", c.Port)
	}
	if c.DBUrl == "" {
		return fmt.Errorf("config: DATABASE_URL is empty")
	}
	if c.DBTimeout <= 0 || c.EmailTimeout <= 0 {
		return fmt.Errorf("config: DB_TIMEOUT_SECONDS and EMAIL_TIMEOUT_SECONDS must be positive")
	}
	if c.RateLimitWindowSeconds <= 0 || c.RateLimitFormThreshold <= 0 {
		return fmt.Errorf("config: rate limit window and threshold must be positive")
	}
	for _, proxy := range c.TrustedProxies {
		if _, _, err := net.ParseCIDR(proxy); err != nil && net.ParseIP(proxy) == nil {
			return fmt.Errorf("config: TRUSTED_PROXIES entry %q is not an IP or CIDR", proxy)
		}
	}
	if c.AdminEmailTo == "" {
		return fmt.Errorf("config: ADMIN_EMAIL_TO is empty")
	}
	return nil
}

// EmailEnabled reports whether a real provider key is configured.
func (c *Config) EmailEnabled() bool {
	return c.ResendAPIKey != ""
}

func (c *Config) RateLimitWindow() time.Duration {
	return time.Duration(c.RateLimitWindowSeconds) * time.Second
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

// getEnvList splits a comma-separated variable, dropping empty items
func getEnvList(key string) []string {
	var out []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
