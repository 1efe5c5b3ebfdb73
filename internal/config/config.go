package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultJWTSecret is used when JWT_SECRET is unset. Only suitable for local development.
const DefaultJWTSecret = "your-secret-key"

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort      string
	ShutdownTimeout time.Duration
	LogLevel        string
	SwaggerHost     string
	CORSOrigins     []string

	Database DatabaseConfig
	Redis    RedisConfig
	Auth     AuthConfig
	Seed     SeedConfig
}

// DatabaseConfig describes the MySQL connection and its pool bounds.
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	// DSN overrides the fields above when set.
	DSN         string
	PoolSize    int
	MaxOverflow int
}

// RedisConfig holds the token revocation cache settings. An empty Addr disables it.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// AuthConfig defines token signing and password hashing parameters.
type AuthConfig struct {
	JWTSecret  string
	TokenTTL   time.Duration
	BcryptCost int
}

// SeedConfig is the demo account created by cmd/seed.
type SeedConfig struct {
	Name     string
	Email    string
	Password string
}

// Load builds Config from environment with sensible defaults. A .env file in the
// working directory is read first when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:      getEnv("SERVER_PORT", "8000"),
		ShutdownTimeout: time.Duration(getEnvInt("SHUTDOWN_TIMEOUT_SECONDS", 10)) * time.Second,
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		SwaggerHost:     os.Getenv("SWAGGER_HOST"),
		CORSOrigins:     getEnvList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		Database: DatabaseConfig{
			Host:        getEnv("DB_HOST", "mysql"),
			Port:        getEnvInt("DB_PORT", 3306),
			User:        getEnv("DB_USER", "task_user"),
			Password:    getEnv("DB_PASSWORD", "task_pass"),
			Name:        getEnv("DB_NAME", "task_manager"),
			DSN:         os.Getenv("MYSQL_DSN"),
			PoolSize:    getEnvInt("DB_POOL_SIZE", 10),
			MaxOverflow: getEnvInt("DB_MAX_OVERFLOW", 20),
		},
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Auth: AuthConfig{
			JWTSecret:  getEnv("JWT_SECRET", DefaultJWTSecret),
			TokenTTL:   time.Duration(getEnvInt("JWT_EXPIRES_MINUTES", 60)) * time.Minute,
			BcryptCost: getEnvInt("AUTH_BCRYPT_COST", 10),
		},
		Seed: SeedConfig{
			Name:     getEnv("SEED_NAME", "Demo User"),
			Email:    getEnv("SEED_EMAIL", "demo@example.com"),
			Password: getEnv("SEED_PASSWORD", "demo123"),
		},
	}
}

// UsesDefaultSecret reports whether tokens are signed with the built-in development key.
func (c *Config) UsesDefaultSecret() bool {
	return c.Auth.JWTSecret == DefaultJWTSecret
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
