package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	DbHost    string
	DbPort    string
	DbUser    string
	DbPass    string
	DbName    string
	DbSSLMode string

	JWTSecret      string
	AccessTokenTTL string

	AdminUsername string
	AdminPassword string

	Log      string
	LogLevel string
	LogDir   string
	Env      string // dev|prod

	RedisURL         string
	NavCacheTTL      string
	NavCacheMaxStale string
	CacheWarmSpec    string

	AllowedOrigins  []string
	ShutdownTimeout string
}

// LoadConfig загружает .env, читает переменные окружения и выставляет дефолты.
// Ничего не логирует, чтобы не создавать зависимость от logger.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	cfg := &Config{
		Port:      def(os.Getenv("PORT"), "8080"),
		DbHost:    os.Getenv("DB_HOST"),
		DbPort:    def(os.Getenv("DB_PORT"), "5432"),
		DbUser:    os.Getenv("DB_USER"),
		DbPass:    os.Getenv("DB_PASSWORD"),
		DbName:    os.Getenv("DB_NAME"),
		DbSSLMode: def(os.Getenv("DB_SSLMODE"), "disable"),

		JWTSecret:      os.Getenv("JWT_SECRET"),
		AccessTokenTTL: def(os.Getenv("ACCESS_TOKEN_EXPIRY"), "12h"),

		AdminUsername: os.Getenv("ADMIN_USERNAME"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),

		Log:      os.Getenv("LOG"),
		LogLevel: strings.ToLower(def(os.Getenv("LOGLEVEL"), "info")),
		LogDir:   def(os.Getenv("LOG_DIR"), "logs"),
		Env:      strings.ToLower(def(os.Getenv("ENV"), "prod")),

		RedisURL:         os.Getenv("REDIS_URL"),
		NavCacheTTL:      def(os.Getenv("NAV_CACHE_TTL"), "5m"),
		NavCacheMaxStale: def(os.Getenv("NAV_CACHE_MAX_STALE"), "30m"),
		CacheWarmSpec:    def(os.Getenv("CACHE_WARM_SPEC"), "@every 4m"),

		AllowedOrigins:  splitCSV(def(os.Getenv("CORS_ORIGINS"), "*")),
		ShutdownTimeout: def(os.Getenv("SHUTDOWN_TIMEOUT"), "10s"),
	}

	return cfg, nil
}

// Validate возвращает предупреждения и фатальную ошибку (если критично).
func (c *Config) Validate() (warnings []string, err error) {
	if c.DbHost == "" || c.DbUser == "" || c.DbName == "" {
		return nil, fmt.Errorf("incomplete DB config (DB_HOST/DB_USER/DB_NAME)")
	}

	if strings.TrimSpace(c.JWTSecret) == "" {
		if c.Env == "prod" {
			return nil, fmt.Errorf("JWT_SECRET is required in prod")
		}
		warnings = append(warnings, "JWT_SECRET is empty")
	}

	for name, raw := range map[string]string{
		"ACCESS_TOKEN_EXPIRY": c.AccessTokenTTL,
		"NAV_CACHE_TTL":       c.NavCacheTTL,
		"NAV_CACHE_MAX_STALE": c.NavCacheMaxStale,
		"SHUTDOWN_TIMEOUT":    c.ShutdownTimeout,
	} {
		if _, perr := time.ParseDuration(raw); perr != nil {
			return nil, fmt.Errorf("%s: %w", name, perr)
		}
	}
	if c.NavCacheMaxStaleDuration() < c.NavCacheTTLDuration() {
		warnings = append(warnings, "NAV_CACHE_MAX_STALE is shorter than NAV_CACHE_TTL, stale serving disabled")
	}

	if c.AdminUsername == "" || c.AdminPassword == "" {
		warnings = append(warnings, "ADMIN_USERNAME/ADMIN_PASSWORD not set, admin bootstrap skipped")
	}

	if c.RedisURL == "" {
		warnings = append(warnings, "REDIS_URL is empty, navigation cache is per-instance only")
	}

	return warnings, nil
}

// GetDSN: полная DSN (с паролем)
func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DbUser, c.DbPass, c.DbHost, c.DbPort, c.DbName, c.DbSSLMode,
	)
}

// GetDSNSafe: DSN без пароля (для логов)
func (c *Config) GetDSNSafe() string {
	return fmt.Sprintf(
		"postgres://%s:***@%s:%s/%s?sslmode=%s",
		c.DbUser, c.DbHost, c.DbPort, c.DbName, c.DbSSLMode,
	)
}

func (c *Config) AccessTokenDuration() time.Duration {
	return durationOr(c.AccessTokenTTL, 12*time.Hour)
}

func (c *Config) NavCacheTTLDuration() time.Duration {
	return durationOr(c.NavCacheTTL, 5*time.Minute)
}

func (c *Config) NavCacheMaxStaleDuration() time.Duration {
	return durationOr(c.NavCacheMaxStale, 30*time.Minute)
}

func (c *Config) ShutdownDuration() time.Duration {
	return durationOr(c.ShutdownTimeout, 10*time.Second)
}

func def(v, d string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return d
	}
	return v
}

func durationOr(raw string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
