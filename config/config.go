package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port    string
	GinMode string

	// Database
	DatabaseURL    string
	DBMaxOpenConns int
	DBMaxIdleConns int
	DBConnLifetime time.Duration
	DBLogLevel     string
	SeedData       bool

	// Auth
	JWTSecret string
	JWTTTL    time.Duration

	AllowedOrigins []string

	// Login throttling, per client IP
	LoginRatePerMinute int
	LoginRateBurst     int
}

func Load() *Config {
	// A missing .env is normal outside development.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: could not read .env file: %v", err)
	}

	return &Config{
		Port:    getEnv("PORT", "5000"),
		GinMode: getEnv("GIN_MODE", "debug"),

		DatabaseURL:    getEnv("DATABASE_URL", buildDSN()),
		DBMaxOpenConns: getEnvInt("DB_MAX_OPEN_CONNS", 10),
		DBMaxIdleConns: getEnvInt("DB_MAX_IDLE_CONNS", 5),
		DBConnLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", time.Hour),
		DBLogLevel:     getEnv("DB_LOG_LEVEL", "warn"),
		SeedData:       getEnvBool("SEED_DATA", true),

		JWTSecret: getEnv("JWT_SECRET", "your-secret-key"),
		JWTTTL:    getEnvDuration("JWT_TTL", 24*time.Hour),

		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "*")),

		LoginRatePerMinute: getEnvInt("LOGIN_RATE_PER_MINUTE", 20),
		LoginRateBurst:     getEnvInt("LOGIN_RATE_BURST", 5),
	}
}

// buildDSN assembles a MySQL DSN from the discrete DB_* variables.
func buildDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		getEnv("DB_USER", "root"),
		getEnv("DB_PASSWORD", ""),
		getEnv("DB_HOST", "127.0.0.1"),
		getEnv("DB_PORT", "3306"),
		getEnv("DB_NAME", "immat"),
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
