package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Lock backends.
const (
	LockLocal = "local"
	LockRedis = "redis"
)

// Config holds service configuration.
type Config struct {
	DatabaseURL   string
	RedisURL      string
	ServerAddr    string
	JWTSecret     string
	VoteTTL       time.Duration
	LockBackend   string
	LockTTL       time.Duration
	MigrationsDir string
	RunMigrations bool
	EventStream   string
	CORSOrigin    string
	LogLevel      string
}

// Load reads configuration from the environment, after applying an optional
// .env file from the working directory.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		user := getenv("POSTGRES_USER", "marketplace")
		pass := getenv("POSTGRES_PASSWORD", "marketplace")
		db := getenv("POSTGRES_DB", "marketplace")
		host := getenv("POSTGRES_HOST", "localhost")
		port := getenv("POSTGRES_PORT", "5432")
		sslmode := getenv("DATABASE_SSLMODE", "disable")
		dsn = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", user, pass, host, port, db, sslmode)
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	backend := strings.ToLower(getenv("LOCK_BACKEND", LockLocal))
	if backend != LockLocal && backend != LockRedis {
		return nil, fmt.Errorf("unknown LOCK_BACKEND %q", backend)
	}

	redisURL, ok := os.LookupEnv("REDIS_URL")
	if !ok {
		redisURL = "redis://localhost:6379/0"
	}
	stream, ok := os.LookupEnv("EVENT_STREAM")
	if !ok {
		stream = "marketplace.deal-events"
	}
	if redisURL == "" && backend == LockRedis {
		return nil, errors.New("LOCK_BACKEND=redis needs REDIS_URL")
	}

	return &Config{
		DatabaseURL:   dsn,
		RedisURL:      redisURL,
		ServerAddr:    getenv("SERVER_ADDR", "0.0.0.0:4000"),
		JWTSecret:     secret,
		VoteTTL:       parseDuration(os.Getenv("VOTE_TTL"), time.Hour),
		LockBackend:   backend,
		LockTTL:       parseDuration(os.Getenv("LOCK_TTL"), 10*time.Second),
		MigrationsDir: getenv("MIGRATIONS_DIR", "internal/migrations"),
		RunMigrations: parseBool(os.Getenv("RUN_MIGRATIONS"), true),
		EventStream:   stream,
		CORSOrigin:    getenv("CORS_ORIGIN", "http://localhost:5173"),
		LogLevel:      getenv("LOG_LEVEL", "info"),
	}, nil
}

func getenv(key, def string) string {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	return val
}

func parseDuration(val string, def time.Duration) time.Duration {
	if val == "" {
		return def
	}
	d, err := time.ParseDuration(val)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func parseBool(val string, def bool) bool {
	if val == "" {
		return def
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return def
	}
	return b
}
