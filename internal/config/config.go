package config

import (
	"errors"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env          string
	LogLevel     string
	Port         int
	ClientOrigin string
	DBFile       string
	JWTSecret    string
	TokenTTL     time.Duration
	DemoSeed     bool
}

var (
	cfg  *Config
	once sync.Once
)

func Load() *Config {
	once.Do(func() {
		_ = godotenv.Load()
		cfg = &Config{
			Env:          getEnv("APP_ENV", "development"),
			LogLevel:     getEnv("LOG_LEVEL", "info"),
			Port:         getEnvInt("PORT", 5005),
			ClientOrigin: getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
			DBFile:       getEnv("DB_FILE", "data/db.json"),
			JWTSecret:    getEnv("JWT_SECRET", "dev-secret-change-me"),
			TokenTTL:     getEnvDuration("TOKEN_TTL", 168*time.Hour),
			DemoSeed:     getEnvBool("DEMO_SEED", true),
		}
		if err := cfg.Validate(); err != nil {
			panic("Invalid config: " + err.Error())
		}
	})
	return cfg
}

func (c *Config) Validate() error {
	if c.DBFile == "" {
		return errors.New("DB_FILE must not be empty")
	}
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET must not be empty")
	}
	if c.TokenTTL <= 0 {
		return errors.New("TOKEN_TTL must be positive")
	}
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return errors.New("APP_ENV must be one of: development, staging, production")
	}
	return nil
}

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

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
