package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config carries everything the process reads from the environment, including
// the admin credential pair the login endpoint compares against.
type Config struct {
	Port string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	AllowedOrigins string
	BodyLimitBytes int
	RateLimitMax   int
	RateLimitSecs  int

	AdminUsername string
	AdminPassword string
	JWTSecret     string
}

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// envInt reads an int env var with a default fallback.
func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

// Load reads .env if present, then the environment. A missing .env is fine in
// deployed environments where variables come from the platform.
func Load() Config {
	_ = godotenv.Load()

	bodyLimitBytes := envInt("BODY_LIMIT_BYTES", 0)
	if bodyLimitBytes <= 0 {
		bodyLimitBytes = envInt("BODY_LIMIT_MB", 4) * 1024 * 1024
	}

	return Config{
		Port: envStr("PORT", "8080"),

		DBHost:     envStr("DB_HOST", "localhost"),
		DBUser:     envStr("DB_USER", "postgres"),
		DBPassword: envStr("DB_PASSWORD", "postgres"),
		DBName:     envStr("DB_NAME", "garage"),
		DBPort:     envStr("DB_PORT", "5432"),

		AllowedOrigins: envStr("ALLOWED_ORIGINS", "*"),
		BodyLimitBytes: bodyLimitBytes,
		RateLimitMax:   envInt("RATE_LIMIT_MAX", 60),
		RateLimitSecs:  envInt("RATE_LIMIT_WINDOW_SECONDS", 60),

		AdminUsername: envStr("ADMIN_USERNAME", "admin"),
		AdminPassword: envStr("ADMIN_PASSWORD", "admin123"),
		JWTSecret:     envStr("JWT_SECRET", "garage-dev-secret"),
	}
}
