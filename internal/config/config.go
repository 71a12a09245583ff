package config

import (
	"os"
	"strconv"

	"todo_webapp/internal/logger"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// AnonUserID is the fallback identity attached to todos created without a
// signed-in user. Override with ANON_USER_ID; the row itself is created by
// cmd/seed_user.
const AnonUserID = "00000000-0000-0000-0000-000000000001"

type Config struct {
	AppPort     string
	DatabaseURL string

	// Anonymous user for unauthenticated todo creation
	AnonUserID    string
	AnonUserEmail string

	// Redis rate limiter (optional; limiter fails open when unset)
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	APIRateLimit         int
	APIRateWindowSeconds int

	LogLevel string
	LogJSON  bool
}

// Load reads configuration from the environment, with .env as a fallback.
func Load() *Config {
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		logger.Fatal("DATABASE_URL is not set")
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	anonID := os.Getenv("ANON_USER_ID")
	if anonID == "" {
		anonID = AnonUserID
	} else if _, err := uuid.Parse(anonID); err != nil {
		logger.Fatal("ANON_USER_ID is not a valid UUID", "value", anonID)
	}

	anonEmail := os.Getenv("ANON_USER_EMAIL")
	if anonEmail == "" {
		anonEmail = "anonymous@localhost"
	}

	redisDB := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			redisDB = n
		}
	}

	apiRateLimit := 60
	if v := os.Getenv("API_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			apiRateLimit = n
		}
	}

	apiRateWindow := 60
	if v := os.Getenv("API_RATE_WINDOW_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			apiRateWindow = n
		}
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	return &Config{
		AppPort:              port,
		DatabaseURL:          dbURL,
		AnonUserID:           anonID,
		AnonUserEmail:        anonEmail,
		RedisAddr:            os.Getenv("REDIS_ADDR"),
		RedisPassword:        os.Getenv("REDIS_PASSWORD"),
		RedisDB:              redisDB,
		APIRateLimit:         apiRateLimit,
		APIRateWindowSeconds: apiRateWindow,
		LogLevel:             logLevel,
		LogJSON:              os.Getenv("LOG_JSON") == "true",
	}
}
