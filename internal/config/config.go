package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"todo_api/internal/logger"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrMissingDatabaseURL = errors.New("DATABASE_URL is not set")
	ErrMissingJWTSecret   = errors.New("JWT_SECRET is not set")
)

type Config struct {
	AppPort     string
	AppVersion  string
	DatabaseURL string
	AutoMigrate bool

	JWTSecret string
	JWTTTL    time.Duration
	JWTIssuer string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	BcryptCost int

	// Rate limits
	AuthRateLimit  int
	AuthRateWindow time.Duration
	APIRateLimit   int
	APIRateWindow  time.Duration

	LogLevel string
	LogJSON  bool
}

// Load reads .env (if present) and the process environment.
// Missing required settings are fatal.
func Load() *Config {
	_ = godotenv.Load()

	cfg, err := FromEnv(os.Getenv)
	if err != nil {
		logger.Fatal("invalid configuration", "error", err)
	}
	return cfg
}

// FromEnv builds a Config from the given lookup function.
func FromEnv(getenv func(string) string) (*Config, error) {
	dbURL := getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, ErrMissingDatabaseURL
	}

	jwtSecret := getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, ErrMissingJWTSecret
	}

	port := getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	issuer := getenv("JWT_ISSUER")
	if issuer == "" {
		issuer = "todo_api"
	}

	version := getenv("APP_VERSION")
	if version == "" {
		version = "dev"
	}

	cost := positiveInt(getenv("BCRYPT_COST"), bcrypt.DefaultCost)
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &Config{
		AppPort:     port,
		AppVersion:  version,
		DatabaseURL: dbURL,
		AutoMigrate: getenv("AUTO_MIGRATE") == "true",

		JWTSecret: jwtSecret,
		JWTTTL:    time.Duration(positiveInt(getenv("JWT_TTL_MINUTES"), 60)) * time.Minute,
		JWTIssuer: issuer,

		RedisAddr:     getenv("REDIS_ADDR"),
		RedisPassword: getenv("REDIS_PASSWORD"),
		RedisDB:       positiveInt(getenv("REDIS_DB"), 0),

		BcryptCost: cost,

		// 5 попыток входа в минуту по умолчанию
		AuthRateLimit:  positiveInt(getenv("AUTH_RATE_LIMIT"), 5),
		AuthRateWindow: time.Duration(positiveInt(getenv("AUTH_RATE_WINDOW_SECONDS"), 60)) * time.Second,
		APIRateLimit:   positiveInt(getenv("API_RATE_LIMIT"), 120),
		APIRateWindow:  time.Duration(positiveInt(getenv("API_RATE_WINDOW_SECONDS"), 60)) * time.Second,

		LogLevel: strings.ToLower(getenv("LOG_LEVEL")),
		LogJSON:  getenv("LOG_FORMAT") == "json",
	}, nil
}

// positiveInt parses v, falling back to def when v is empty, malformed or not positive.
func positiveInt(v string, def int) int {
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n <= 0 {
		return def
	}
	return n
}
